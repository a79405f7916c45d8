//go:build integration

package events_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"hrms/internal/events"
	"hrms/pkg/testutil/containers"
)

func TestKafkaPublisherRoundTrip(t *testing.T) {
	broker := containers.NewRedpandaContainer(t)
	defer broker.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	publisher, err := events.NewKafkaPublisher(ctx, events.KafkaConfig{
		Brokers:           broker.Brokers,
		Topic:             "hr-events",
		Partitions:        1,
		ReplicationFactor: 1,
	}, slog.Default())
	require.NoError(t, err)
	defer publisher.Close()
	require.NoError(t, publisher.Ping(ctx))

	evt := events.New(events.PayrollProcessed, "payroll", uuid.New(), map[string]string{"net_pay": "4200.00"})
	require.NoError(t, publisher.Publish(ctx, evt))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker.Brokers...),
		kgo.ConsumeTopics("hr-events"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())
	records := fetches.Records()
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, evt.ResourceID.String(), string(rec.Key))
	require.Len(t, rec.Headers, 1)
	assert.Equal(t, string(events.PayrollProcessed), string(rec.Headers[0].Value))

	var got events.Event
	require.NoError(t, json.Unmarshal(rec.Value, &got))
	assert.Equal(t, evt.ID, got.ID)
}
