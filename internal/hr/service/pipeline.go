package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hrms/internal/access"
	"hrms/internal/audit"
	"hrms/internal/events"
	hrmetrics "hrms/internal/hr/metrics"
	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/platform/sentinel"
	"hrms/pkg/requestcontext"
)

// operation carries one governed call through the pipeline stages. Stages
// run in a fixed order and the first failure aborts the rest: nothing is
// audited unless the mutation succeeded.
type operation struct {
	s      *Service
	ctx    context.Context
	span   trace.Span
	entity string
	action audit.Action
	actor  domain.Actor
	scope  access.Scope
	start  time.Time
}

// begin resolves the actor's scope. A missing actor or a failed resolution
// denies the operation before any store access.
func (s *Service) begin(ctx context.Context, entity string, action audit.Action) (*operation, error) {
	ctx, span := s.tracer.Start(ctx, "hr."+entity+"."+string(action),
		trace.WithAttributes(
			attribute.String("hr.entity", entity),
			attribute.String("hr.action", string(action)),
		))
	op := &operation{s: s, ctx: ctx, span: span, entity: entity, action: action, start: time.Now()}

	actor, ok := requestcontext.Actor(ctx)
	if !ok {
		err := dErrors.AccessDenied("no authenticated actor")
		op.end(err)
		return nil, err
	}
	op.actor = actor
	span.SetAttributes(attribute.String("hr.actor_role", actor.Role.String()))

	_, resolveSpan := s.tracer.Start(ctx, "access.resolve")
	scope, err := s.resolver.ResolveScope(ctx, actor)
	resolveSpan.End()
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeForbidden) {
			err = dErrors.AccessDenied("scope resolution failed")
		}
		op.end(err)
		return nil, err
	}
	op.scope = scope
	return op, nil
}

// check rejects an owner outside the actor's scope.
func (op *operation) check(owner domain.EmployeeID) error {
	return access.Check(op.scope, owner)
}

// requireUnrestricted guards org-wide records that have no single owner.
func (op *operation) requireUnrestricted() error {
	if op.scope.Kind() != access.ScopeAll {
		return dErrors.AccessDenied("operation requires organisation-wide access")
	}
	return nil
}

// validate runs a business-rule check under its own span.
func (op *operation) validate(fn func() error) error {
	_, span := op.s.tracer.Start(op.ctx, "workflow.validate")
	defer span.End()
	if err := fn(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// mutate runs the store writes in one store transaction under their own
// span. A cascade written inside fn commits or rolls back with the primary
// change.
func (op *operation) mutate(fn func(ctx context.Context) error) error {
	ctx, span := op.s.tracer.Start(op.ctx, "store.mutate")
	defer span.End()
	if err := op.s.store.RunInTx(ctx, fn); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// record writes the audit entry. It must only be called after the mutation
// (or read) succeeded; failures are logged by the recorder and swallowed.
func (op *operation) record(resourceID *uuid.UUID, before, after any) {
	op.recordAs(op.action, resourceID, before, after)
}

func (op *operation) recordAs(action audit.Action, resourceID *uuid.UUID, before, after any) {
	op.recordFor(op.entity, action, resourceID, before, after)
}

// recordFor audits a cascade applied to a record of another type.
func (op *operation) recordFor(resourceType string, action audit.Action, resourceID *uuid.UUID, before, after any) {
	if op.s.audit == nil {
		return
	}
	op.s.audit.Record(op.ctx, audit.Entry{
		ActorID:      op.actor.ID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Before:       before,
		After:        after,
	})
}

// publish hands a cascade event to the notification layer. Delivery failures
// never affect the operation result.
func (op *operation) publish(evt events.Event) {
	if op.s.publisher == nil {
		return
	}
	evt.ActorID = op.actor.ID
	evt.OccurredAt = now(op.ctx)
	if err := op.s.publisher.Publish(op.ctx, evt); err != nil {
		op.s.metrics.IncEventFailure(string(evt.Type))
		op.s.logger.WarnContext(op.ctx, "event publish failed",
			"request_id", requestID(op.ctx),
			"event_type", evt.Type,
			"resource_id", evt.ResourceID,
			"error", err,
		)
	}
}

// end classifies the result for metrics and logs unexpected failures.
func (op *operation) end(err error) {
	defer op.span.End()
	outcome := hrmetrics.OutcomeSuccess
	if err != nil {
		op.span.SetStatus(codes.Error, err.Error())
		outcome = classify(err)
		switch outcome {
		case hrmetrics.OutcomeRejected:
			reason := string(dErrors.ReasonOf(err))
			if reason == "" {
				reason = "OTHER"
			}
			op.s.metrics.IncRejection(op.entity, reason)
		case hrmetrics.OutcomeDenied:
			op.s.logger.InfoContext(op.ctx, "operation denied",
				"request_id", requestID(op.ctx),
				"entity", op.entity,
				"action", op.action,
				"role", op.actor.Role,
			)
		case hrmetrics.OutcomeError:
			op.s.logger.ErrorContext(op.ctx, "operation failed",
				"request_id", requestID(op.ctx),
				"entity", op.entity,
				"action", op.action,
				"error", err,
			)
		}
	}
	op.s.metrics.ObserveOperation(op.entity, string(op.action), outcome, time.Since(op.start))
}

func classify(err error) string {
	de, ok := dErrors.As(err)
	if !ok {
		return hrmetrics.OutcomeError
	}
	switch de.Code {
	case dErrors.CodeForbidden, dErrors.CodeUnauthorized:
		return hrmetrics.OutcomeDenied
	case dErrors.CodeInternal, dErrors.CodeTimeout:
		return hrmetrics.OutcomeError
	default:
		return hrmetrics.OutcomeRejected
	}
}

// storeErr translates store failures. Coded errors raised inside Execute
// callbacks pass through untouched.
func storeErr(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, notFound)
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.Wrap(err, dErrors.CodeConflict, "conflicting record")
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeInternal, "storage unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, "storage timed out")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "storage failure")
	}
}

func requestID(ctx context.Context) string {
	return requestcontext.RequestID(ctx)
}

func requestTime(ctx context.Context) time.Time {
	return requestcontext.Now(ctx)
}

func idPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

func employeeRef(id domain.EmployeeID) *uuid.UUID {
	u := uuid.UUID(id)
	return &u
}
