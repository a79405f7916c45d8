package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	audithandler "hrms/internal/audit/handler"
	"hrms/internal/events"
	hrhandler "hrms/internal/hr/handler"
	jwttoken "hrms/internal/jwt_token"
	"hrms/internal/platform/metrics"
	"hrms/pkg/platform/httputil"
	"hrms/pkg/platform/middleware/auth"
	"hrms/pkg/platform/middleware/metadata"
	"hrms/pkg/platform/middleware/request"
	"hrms/pkg/platform/middleware/requesttime"
)

const (
	tokenIssuer   = "hrms"
	tokenAudience = "hrms-api"
)

func (a *app) router(d *deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(request.Recovery(a.log))
	r.Use(request.Logger(a.log))
	r.Use(metrics.New().Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", healthHandler(d))
	r.Handle("/metrics", metrics.Handler())

	validator := jwttoken.NewJWTService(a.cfg.Server.JWTSecret, tokenIssuer, tokenAudience)
	r.Group(func(r chi.Router) {
		r.Use(request.Timeout(a.cfg.Server.RequestTimeout))
		r.Use(auth.RequireAuth(validator, a.log))
		hrhandler.New(d.hr, a.log).Register(r)
		audithandler.New(d.audit, a.log, a.cfg.Audit.RetentionDays).Register(r)
	})

	return cors.New(cors.Options{
		AllowedOrigins:   a.cfg.Server.CORSOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", request.HeaderRequestID},
		ExposedHeaders:   []string{"X-Total-Count", request.HeaderRequestID, "Content-Disposition"},
	}).Handler(r)
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type pinger interface {
	Ping(ctx context.Context) error
}

// healthHandler reports 503 when Postgres or a configured Redis or Kafka is
// unreachable.
func healthHandler(d *deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: map[string]string{}}
		check := func(name string, err error) {
			if err != nil {
				resp.Status = "degraded"
				resp.Checks[name] = err.Error()
				return
			}
			resp.Checks[name] = "ok"
		}

		check("postgres", d.db.PingContext(ctx))
		if d.redis != nil {
			check("redis", d.redis.Health(ctx))
		}
		if p, ok := d.publisher.(pinger); ok {
			check("kafka", p.Ping(ctx))
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		httputil.WriteJSON(w, status, resp)
	}
}

var _ pinger = (*events.KafkaPublisher)(nil)
