package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	id := uuid.New()

	t.Run("marshals the payload", func(t *testing.T) {
		evt := New(PayrollPaid, "payroll", id, map[string]string{"net_pay": "4200.00"})
		assert.Equal(t, PayrollPaid, evt.Type)
		assert.Equal(t, id, evt.ResourceID)
		assert.NotEqual(t, uuid.Nil, evt.ID)
		assert.JSONEq(t, `{"net_pay":"4200.00"}`, string(evt.Payload))
	})

	t.Run("drops a payload that cannot be marshalled", func(t *testing.T) {
		evt := New(PayrollPaid, "payroll", id, func() {})
		assert.Nil(t, evt.Payload)
	})
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	evt := New(InterviewScheduled, "interview", uuid.New(), nil)
	require.NoError(t, p.Publish(context.Background(), evt))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "event published", line["msg"])
	assert.Equal(t, string(InterviewScheduled), line["event_type"])
	assert.Equal(t, evt.ResourceID.String(), line["resource_id"])
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	require.NoError(t, r.Publish(context.Background(), New(PayrollProcessed, "payroll", uuid.New(), nil)))
	require.NoError(t, r.Publish(context.Background(), New(PayrollPaid, "payroll", uuid.New(), nil)))
	assert.Equal(t, []Type{PayrollProcessed, PayrollPaid}, r.Types())

	r.Err = assert.AnError
	assert.ErrorIs(t, r.Publish(context.Background(), Event{}), assert.AnError)
	assert.Len(t, r.Events, 2)
}

func TestNewKafkaPublisherRequiresConfig(t *testing.T) {
	_, err := NewKafkaPublisher(context.Background(), KafkaConfig{Topic: "hr-events"}, slog.Default())
	assert.Error(t, err)

	_, err = NewKafkaPublisher(context.Background(), KafkaConfig{Brokers: []string{"localhost:9092"}}, slog.Default())
	assert.Error(t, err)
}
