package admin

import (
	"log/slog"
	"net/http"
	"slices"

	"hrms/pkg/domain"
	"hrms/pkg/requestcontext"
)

// RequireRoles rejects requests whose actor role is not in roles. It must run
// after auth.RequireAuth.
func RequireRoles(logger *slog.Logger, roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			actor, ok := requestcontext.Actor(ctx)
			if !ok || !slices.Contains(roles, actor.Role) {
				logger.WarnContext(ctx, "role check failed",
					"request_id", requestcontext.RequestID(ctx),
					"role", actor.Role,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"forbidden","reason":"ACCESS_DENIED","error_description":"insufficient role"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
