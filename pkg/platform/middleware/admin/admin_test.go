package admin

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hrms/pkg/domain"
	"hrms/pkg/requestcontext"
)

func TestRequireRoles(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := RequireRoles(logger, domain.RoleAdmin, domain.RoleHR)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(actor *domain.Actor) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if actor != nil {
			req = req.WithContext(requestcontext.WithActor(req.Context(), *actor))
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, serve(&domain.Actor{Role: domain.RoleHR}))
	assert.Equal(t, http.StatusForbidden, serve(&domain.Actor{Role: domain.RoleManager}))
	assert.Equal(t, http.StatusForbidden, serve(nil))
}
