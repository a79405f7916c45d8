package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrms/internal/audit"
	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/platform/httputil"
	"hrms/pkg/platform/middleware/admin"
	"hrms/pkg/requestcontext"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Service defines the audit operations exposed over HTTP.
type Service interface {
	Query(ctx context.Context, filter audit.Filter, page audit.Page) (*audit.QueryResult, error)
	Get(ctx context.Context, id uuid.UUID) (*audit.Record, error)
	Summarize(ctx context.Context, window time.Duration) (*audit.Summary, error)
	Purge(ctx context.Context, actorID domain.UserID, retentionDays int) (*audit.PurgeResult, error)
	Export(ctx context.Context, filter audit.Filter, w io.Writer) (int, error)
}

// Handler serves the /audit-logs endpoints. Reading requires ADMIN or HR;
// cleanup requires ADMIN.
type Handler struct {
	service          Service
	logger           *slog.Logger
	defaultRetention int
}

func New(service Service, logger *slog.Logger, defaultRetentionDays int) *Handler {
	return &Handler{service: service, logger: logger, defaultRetention: defaultRetentionDays}
}

// Register mounts the audit routes. Authentication must already be applied.
func (h *Handler) Register(r chi.Router) {
	r.Route("/audit-logs", func(r chi.Router) {
		r.Use(admin.RequireRoles(h.logger, domain.RoleAdmin, domain.RoleHR))
		r.Get("/", h.HandleQuery)
		r.Get("/summary", h.HandleSummary)
		r.Get("/export", h.HandleExport)
		r.With(admin.RequireRoles(h.logger, domain.RoleAdmin)).Delete("/cleanup", h.HandleCleanup)
		r.Get("/{id}", h.HandleGet)
	})
}

// HandleQuery handles GET /audit-logs.
func (h *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, page, err := parseQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := h.service.Query(ctx, filter, page)
	if err != nil {
		h.fail(ctx, w, "audit query failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

type recordResponse struct {
	audit.Record
	Changes any `json:"changes"`
}

// HandleGet handles GET /audit-logs/{id} and includes the JSON patch from
// the before to the after snapshot.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	rec, err := h.service.Get(ctx, id)
	if err != nil {
		h.fail(ctx, w, "audit get failed", err)
		return
	}
	patch, err := rec.Changes()
	if err != nil {
		h.logger.WarnContext(ctx, "audit snapshot diff failed",
			"request_id", requestcontext.RequestID(ctx),
			"audit_id", id,
			"error", err,
		)
	}
	resp := recordResponse{Record: *rec, Changes: []any{}}
	if patch != nil {
		resp.Changes = patch
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleSummary handles GET /audit-logs/summary?window_days=.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var window time.Duration
	if raw := r.URL.Query().Get("window_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "window_days must be a positive integer"))
			return
		}
		window = time.Duration(days) * 24 * time.Hour
	}
	summary, err := h.service.Summarize(ctx, window)
	if err != nil {
		h.fail(ctx, w, "audit summary failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

// HandleExport handles GET /audit-logs/export and streams an XLSX workbook.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter, _, err := parseQuery(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var buf bytes.Buffer
	n, err := h.service.Export(ctx, filter, &buf)
	if err != nil {
		h.fail(ctx, w, "audit export failed", err)
		return
	}
	filename := "audit-logs-" + requestcontext.Now(ctx).UTC().Format("20060102-150405") + ".xlsx"
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("X-Total-Count", strconv.Itoa(n))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// HandleCleanup handles DELETE /audit-logs/cleanup?retention_days=.
func (h *Handler) HandleCleanup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	days := h.defaultRetention
	if raw := r.URL.Query().Get("retention_days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "retention_days must be an integer"))
			return
		}
		days = parsed
	}
	res, err := h.service.Purge(ctx, requestcontext.UserID(ctx), days)
	if err != nil {
		h.fail(ctx, w, "audit cleanup failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg, "request_id", requestcontext.RequestID(ctx), "error", err)
	}
	httputil.WriteError(w, err)
}

func parseQuery(r *http.Request) (audit.Filter, audit.Page, error) {
	q := r.URL.Query()
	var (
		filter audit.Filter
		page   audit.Page
	)
	if v := q.Get("actor_id"); v != "" {
		id, err := domain.ParseUserID(v)
		if err != nil {
			return filter, page, err
		}
		filter.ActorID = &id
	}
	if v := q.Get("action"); v != "" {
		action := audit.Action(strings.ToUpper(v))
		if !action.IsValid() {
			return filter, page, dErrors.New(dErrors.CodeBadRequest, "unknown action "+v)
		}
		filter.Action = action
	}
	filter.ResourceType = q.Get("resource_type")
	if v := q.Get("resource_id"); v != "" {
		id, err := domain.ParseID(v)
		if err != nil {
			return filter, page, err
		}
		filter.ResourceID = &id
	}
	filter.IPContains = q.Get("ip_address")
	if v := q.Get("from"); v != "" {
		t, err := parseTime(v, false)
		if err != nil {
			return filter, page, dErrors.New(dErrors.CodeBadRequest, "from must be RFC3339 or YYYY-MM-DD")
		}
		filter.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := parseTime(v, true)
		if err != nil {
			return filter, page, dErrors.New(dErrors.CodeBadRequest, "to must be RFC3339 or YYYY-MM-DD")
		}
		filter.To = &t
	}
	var err error
	if page.Number, err = intParam(q.Get("page")); err != nil {
		return filter, page, dErrors.New(dErrors.CodeBadRequest, "page must be an integer")
	}
	if page.Size, err = intParam(q.Get("limit")); err != nil {
		return filter, page, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer")
	}
	return filter, page, nil
}

// parseTime accepts RFC3339 or a bare date. A bare upper bound covers the
// whole day.
func parseTime(v string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
