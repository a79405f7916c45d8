package auth

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"hrms/pkg/domain"
	"hrms/pkg/requestcontext"
)

// JWTValidator defines the interface for validating JWT tokens
type JWTValidator interface {
	ValidateToken(tokenString string) (*JWTClaims, error)
}

// JWTClaims represents the claims we expect from the JWT validator
type JWTClaims struct {
	UserID     string
	Role       string
	EmployeeID string // empty for accounts without an employee profile
}

// writeJSONError writes a JSON error response with the given status code and error details.
func writeJSONError(w http.ResponseWriter, status int, errCode, errDesc string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(fmt.Appendf(nil, `{"error":"%s","error_description":"%s"}`, errCode, errDesc))
}

// ActorFromClaims rebuilds the request actor. Every claim is re-parsed so a
// token with an unknown role or malformed employee id never yields an actor.
func ActorFromClaims(claims *JWTClaims) (domain.Actor, error) {
	userID, err := domain.ParseUserID(claims.UserID)
	if err != nil {
		return domain.Actor{}, err
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Actor{}, err
	}
	actor := domain.Actor{ID: userID, Role: role}
	if claims.EmployeeID != "" {
		employeeID, err := domain.ParseEmployeeID(claims.EmployeeID)
		if err != nil {
			return domain.Actor{}, err
		}
		actor.OwnedEntityID = &employeeID
	}
	return actor, nil
}

func RequireAuth(validator JWTValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := requestcontext.RequestID(ctx)

			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			actor, err := ActorFromClaims(claims)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid actor claims",
					"error", err,
					"request_id", requestID,
				)
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid token claims")
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithActor(ctx, actor)))
		})
	}
}
