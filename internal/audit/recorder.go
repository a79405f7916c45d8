package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/platform/sentinel"
	"hrms/pkg/requestcontext"
)

const (
	defaultSummaryWindow = 30 * 24 * time.Hour
	defaultTopN          = 10
)

// Recorder writes and reads the audit trail.
//
// Record is best-effort: a failed write is logged once at WARN and never
// reaches the caller, so a committed mutation is never reported as failed
// because its audit entry could not be stored.
type Recorder struct {
	store   Store
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
	topN    int
}

// Option configures the Recorder.
type Option func(*Recorder)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(r *Recorder) {
		r.metrics = m
	}
}

// WithTopN sets how many actors and resources Summarize ranks.
func WithTopN(n int) Option {
	return func(r *Recorder) {
		if n > 0 {
			r.topN = n
		}
	}
}

func NewRecorder(store Store, opts ...Option) *Recorder {
	r := &Recorder{
		store:  store,
		logger: slog.Default(),
		tracer: otel.Tracer("hrms/audit"),
		topN:   defaultTopN,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Record persists one audit entry, enriched with the client IP, user agent,
// request id and request time carried by ctx.
func (r *Recorder) Record(ctx context.Context, entry Entry) {
	ctx, span := r.tracer.Start(ctx, "audit.record", trace.WithAttributes(
		attribute.String("audit.action", string(entry.Action)),
		attribute.String("audit.resource_type", entry.ResourceType),
	))
	defer span.End()

	record, err := r.build(ctx, entry)
	if err == nil {
		err = r.store.Append(ctx, record)
	}
	if err != nil {
		span.RecordError(err)
		r.metrics.incWriteFailures()
		r.logger.WarnContext(ctx, "audit write failed",
			"request_id", requestcontext.RequestID(ctx),
			"action", entry.Action,
			"resource_type", entry.ResourceType,
			"resource_id", entry.ResourceID,
			"error", err,
		)
		return
	}
	r.metrics.incWritten(entry.Action)
}

func (r *Recorder) build(ctx context.Context, entry Entry) (*Record, error) {
	before, err := snapshot(entry.Before)
	if err != nil {
		return nil, fmt.Errorf("marshal before snapshot: %w", err)
	}
	after, err := snapshot(entry.After)
	if err != nil {
		return nil, fmt.Errorf("marshal after snapshot: %w", err)
	}
	return &Record{
		ID:           uuid.New(),
		ActorID:      entry.ActorID,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Before:       before,
		After:        after,
		IPAddress:    requestcontext.ClientIP(ctx),
		UserAgent:    requestcontext.UserAgent(ctx),
		RequestID:    requestcontext.RequestID(ctx),
		Timestamp:    requestcontext.Now(ctx).UTC(),
	}, nil
}

func snapshot(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	if raw, ok := v.(json.RawMessage); ok {
		return raw, nil
	}
	return json.Marshal(v)
}

// Query returns one page of records matching filter, newest first.
func (r *Recorder) Query(ctx context.Context, filter Filter, page Page) (*QueryResult, error) {
	page = page.Normalize()
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, dErrors.New(dErrors.CodeValidation, "from must not be after to")
	}
	records, total, err := r.store.Query(ctx, filter, page)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to query audit logs")
	}
	if records == nil {
		records = []Record{}
	}
	return &QueryResult{Records: records, Total: total, Page: page.Number, Limit: page.Size}, nil
}

// Get returns a single record.
func (r *Recorder) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	record, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "audit log not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load audit log")
	}
	return record, nil
}

// Summarize counts records by action and ranks actors and resources inside
// the trailing window, 30 days when window is not positive. Per-day totals
// always cover the trailing 30 days. The aggregates run concurrently and the
// first failure cancels the rest.
func (r *Recorder) Summarize(ctx context.Context, window time.Duration) (*Summary, error) {
	if window <= 0 {
		window = defaultSummaryWindow
	}
	now := requestcontext.Now(ctx).UTC()
	since := now.Add(-window)
	summary := &Summary{From: since, To: now}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		byAction, err := r.store.CountByAction(gctx, since)
		summary.ByAction = byAction
		return err
	})
	g.Go(func() error {
		daily, err := r.store.DailyCounts(gctx, dayStart(now.Add(-defaultSummaryWindow)))
		summary.Daily = daily
		return err
	})
	g.Go(func() error {
		actors, err := r.store.TopActors(gctx, since, r.topN)
		summary.TopActors = actors
		return err
	})
	g.Go(func() error {
		resources, err := r.store.TopResources(gctx, since, r.topN)
		summary.TopResources = resources
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to summarize audit logs")
	}

	if summary.ByAction == nil {
		summary.ByAction = map[Action]int{}
	}
	if summary.Daily == nil {
		summary.Daily = []DayCount{}
	}
	if summary.TopActors == nil {
		summary.TopActors = []ActorCount{}
	}
	if summary.TopResources == nil {
		summary.TopResources = []ResourceCount{}
	}
	return summary, nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Purge deletes records older than the clamped retention period and records
// the cleanup itself. Running it again with nothing to delete is a no-op that
// reports deletedCount 0.
func (r *Recorder) Purge(ctx context.Context, actorID domain.UserID, retentionDays int) (*PurgeResult, error) {
	days := ClampRetention(retentionDays)
	cutoff := requestcontext.Now(ctx).UTC().AddDate(0, 0, -days)

	deleted, err := r.store.DeleteBefore(ctx, cutoff)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to purge audit logs")
	}
	r.metrics.addPurged(deleted)

	result := &PurgeResult{DeletedCount: deleted, CutoffDate: cutoff, RetentionDays: days}
	r.logger.InfoContext(ctx, "audit logs purged",
		"request_id", requestcontext.RequestID(ctx),
		"deleted", deleted,
		"cutoff", cutoff,
		"retention_days", days,
	)
	r.Record(ctx, Entry{
		ActorID:      actorID,
		Action:       ActionDelete,
		ResourceType: ResourceCleanup,
		After:        result,
	})
	return result, nil
}
