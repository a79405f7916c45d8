package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms/pkg/domain"
	"hrms/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (v stubValidator) ValidateToken(string) (*JWTClaims, error) { return v.claims, v.err }

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := domain.NewUserID()
	employeeID := domain.NewEmployeeID()

	var got domain.Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = requestcontext.Actor(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	cases := []struct {
		name   string
		header string
		v      stubValidator
		status int
	}{
		{"missing header", "", stubValidator{}, http.StatusUnauthorized},
		{"not bearer", "Basic abc", stubValidator{}, http.StatusUnauthorized},
		{"invalid token", "Bearer x", stubValidator{err: errors.New("bad")}, http.StatusUnauthorized},
		{"unknown role", "Bearer x", stubValidator{claims: &JWTClaims{UserID: userID.String(), Role: "ROOT"}}, http.StatusUnauthorized},
		{"bad employee id", "Bearer x", stubValidator{claims: &JWTClaims{UserID: userID.String(), Role: "EMPLOYEE", EmployeeID: "nope"}}, http.StatusUnauthorized},
		{"valid", "Bearer x", stubValidator{claims: &JWTClaims{UserID: userID.String(), Role: "EMPLOYEE", EmployeeID: employeeID.String()}}, http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			RequireAuth(tc.v, logger)(next).ServeHTTP(rr, req)
			assert.Equal(t, tc.status, rr.Code)
		})
	}

	require.NotNil(t, got.OwnedEntityID)
	assert.Equal(t, employeeID, *got.OwnedEntityID)
	assert.Equal(t, domain.RoleEmployee, got.Role)
}
