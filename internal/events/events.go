// Package events carries cascade events from governed operations to the
// notification layer. Delivery is best-effort: a publish failure never
// changes the result of the operation that produced the event.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hrms/pkg/domain"
)

// Type names a cascade event.
type Type string

const (
	InterviewScheduled       Type = "interview.scheduled"
	InterviewStatusChanged   Type = "interview.status_changed"
	ApplicationStatusChanged Type = "application.status_changed"
	OnboardingTaskCompleted  Type = "onboarding.task_completed"
	PayrollProcessed         Type = "payroll.processed"
	PayrollPaid              Type = "payroll.paid"
	EmployeeTerminated       Type = "employee.terminated"
)

// Event is the envelope published for every cascade.
type Event struct {
	ID           uuid.UUID          `json:"id"`
	Type         Type               `json:"type"`
	ResourceType string             `json:"resource_type"`
	ResourceID   uuid.UUID          `json:"resource_id"`
	OwnerID      *domain.EmployeeID `json:"owner_id,omitempty"`
	ActorID      domain.UserID      `json:"actor_id"`
	OccurredAt   time.Time          `json:"occurred_at"`
	Payload      json.RawMessage    `json:"payload,omitempty"`
}

// New builds an event, marshalling payload. A payload that cannot be
// marshalled is dropped rather than failing the event.
func New(typ Type, resourceType string, resourceID uuid.UUID, payload any) Event {
	evt := Event{ID: uuid.New(), Type: typ, ResourceType: resourceType, ResourceID: resourceID}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			evt.Payload = raw
		}
	}
	return evt
}

// Publisher delivers events to subscribers.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// LogPublisher writes events to the log. It is used when no broker is
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, evt Event) error {
	p.logger.InfoContext(ctx, "event published",
		"event_id", evt.ID,
		"event_type", evt.Type,
		"resource_type", evt.ResourceType,
		"resource_id", evt.ResourceID,
	)
	return nil
}

// Recorder keeps published events in memory for tests.
type Recorder struct {
	Events []Event
	Err    error
}

func (r *Recorder) Publish(_ context.Context, evt Event) error {
	if r.Err != nil {
		return r.Err
	}
	r.Events = append(r.Events, evt)
	return nil
}

// Types returns the types of the recorded events in order.
func (r *Recorder) Types() []Type {
	out := make([]Type, 0, len(r.Events))
	for _, e := range r.Events {
		out = append(out, e.Type)
	}
	return out
}
