package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"hrms/internal/access"
	"hrms/internal/audit"
	auditmemory "hrms/internal/audit/store/memory"
	"hrms/internal/events"
	"hrms/internal/hr/models"
	"hrms/internal/hr/service"
	hrmemory "hrms/internal/hr/store/memory"
	jwttoken "hrms/internal/jwt_token"
	"hrms/internal/platform/config"
	"hrms/pkg/domain"
	"hrms/pkg/testutil"
)

type RouterSuite struct {
	suite.Suite
	app     *app
	sqlMock sqlmock.Sqlmock
	store   *hrmemory.InMemoryStore
	router  http.Handler
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

// SetupSuite builds the router once: the HTTP metrics register with the
// default Prometheus registry.
func (s *RouterSuite) SetupSuite() {
	rawDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	s.Require().NoError(err)
	s.sqlMock = mock

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.app = &app{
		cfg: &config.Config{
			Server: config.Server{
				JWTSecret:      "router-test-secret",
				RequestTimeout: 5 * time.Second,
				CORSOrigins:    []string{"https://hr.example"},
			},
			Audit: config.Audit{RetentionDays: 365},
		},
		log: logger,
	}

	s.store = hrmemory.New()
	recorder := audit.NewRecorder(auditmemory.New(), audit.WithLogger(logger))
	d := &deps{
		db:        sqlx.NewDb(rawDB, "postgres"),
		publisher: events.NewLogPublisher(logger),
		audit:     recorder,
		hr: service.New(s.store, access.NewResolver(s.store), recorder,
			service.WithLogger(logger),
			service.WithPublisher(events.NewLogPublisher(logger)),
		),
	}
	s.router = s.app.router(d)
}

func (s *RouterSuite) token(actor domain.Actor) string {
	token, err := jwttoken.NewJWTService(s.app.cfg.Server.JWTSecret, tokenIssuer, tokenAudience).
		GenerateAccessToken(actor, time.Minute)
	s.Require().NoError(err)
	return token
}

func (s *RouterSuite) TestHealth() {
	s.Run("healthy", func() {
		s.sqlMock.ExpectPing()
		rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		testutil.AssertStatusOK(s.T(), rr)
		s.NotEmpty(rr.Header().Get("X-Request-ID"))
	})

	s.Run("database down", func() {
		s.sqlMock.ExpectPing().WillReturnError(errors.New("connection refused"))
		rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		s.Equal(http.StatusServiceUnavailable, rr.Code)
		testutil.AssertJSONContains(s.T(), rr, "status", "degraded")
	})
	s.NoError(s.sqlMock.ExpectationsWereMet())
}

func (s *RouterSuite) TestAPIRequiresToken() {
	rr := testutil.DoRequest(s.router, httptest.NewRequest(http.MethodGet, "/employees/", nil))
	s.Equal(http.StatusUnauthorized, rr.Code)
}

func (s *RouterSuite) TestScopedRequestThroughTheStack() {
	ctx := context.Background()
	self := &models.Employee{
		ID: domain.NewEmployeeID(), FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
		Position: "Engineer", Status: models.EmployeeActive, Salary: decimal.NewFromInt(100),
		HireDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	other := &models.Employee{
		ID: domain.NewEmployeeID(), FirstName: "Alan", LastName: "Turing", Email: "alan@example.com",
		Position: "Engineer", Status: models.EmployeeActive, Salary: decimal.NewFromInt(100),
		HireDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.CreateEmployee(ctx, self))
	s.Require().NoError(s.store.CreateEmployee(ctx, other))

	bearer := "Bearer " + s.token(testutil.Employee(self.ID))

	req := httptest.NewRequest(http.MethodGet, "/employees/", nil)
	req.Header.Set("Authorization", bearer)
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatusOK(s.T(), rr)
	s.Equal("1", rr.Header().Get("X-Total-Count"))

	req = httptest.NewRequest(http.MethodGet, "/employees/"+other.ID.String(), nil)
	req.Header.Set("Authorization", bearer)
	rr = testutil.DoRequest(s.router, req)
	s.Equal(http.StatusForbidden, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/audit-logs/", nil)
	req.Header.Set("Authorization", bearer)
	rr = testutil.DoRequest(s.router, req)
	s.Equal(http.StatusForbidden, rr.Code)
}

func (s *RouterSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/employees/", nil)
	req.Header.Set("Origin", "https://hr.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rr := testutil.DoRequest(s.router, req)
	s.Equal("https://hr.example", rr.Header().Get("Access-Control-Allow-Origin"))
}
