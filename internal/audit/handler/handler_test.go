package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"hrms/internal/audit"
	"hrms/internal/audit/handler/mocks"
	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

type AuditHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestAuditHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuditHandlerSuite))
}

func (s *AuditHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	New(s.service, logger, 365).Register(s.router)
}

func (s *AuditHandlerSuite) do(req *http.Request, actor domain.Actor) *http.Request {
	return testutil.WithActor(req, actor)
}

func (s *AuditHandlerSuite) TestQueryParsesFilters() {
	actor := domain.NewUserID()
	s.service.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, f audit.Filter, p audit.Page) (*audit.QueryResult, error) {
			s.Equal(actor, *f.ActorID)
			s.Equal(audit.ActionUpdate, f.Action)
			s.Equal("payroll_record", f.ResourceType)
			s.Equal("10.0", f.IPContains)
			s.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *f.From)
			s.Equal(time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), *f.To)
			s.Equal(audit.Page{Number: 2, Size: 10}, p)
			return &audit.QueryResult{Records: []audit.Record{}, Total: 0, Page: 2, Limit: 10}, nil
		})

	req := testutil.NewRequest(s.T(), http.MethodGet,
		"/audit-logs/?actor_id="+actor.String()+"&action=update&resource_type=payroll_record&ip_address=10.0&from=2024-01-01&to=2024-01-31&page=2&limit=10")
	rr := testutil.DoRequest(s.router, s.do(req, testutil.HR()))

	testutil.AssertStatusOK(s.T(), rr)
	res := testutil.UnmarshalResponse[audit.QueryResult](s.T(), rr)
	s.Equal(2, res.Page)
}

func (s *AuditHandlerSuite) TestQueryRejectsBadInput() {
	for _, q := range []string{"action=PATCH", "actor_id=nope", "from=yesterday", "page=x"} {
		s.Run(q, func() {
			req := testutil.NewRequest(s.T(), http.MethodGet, "/audit-logs/?"+q)
			rr := testutil.DoRequest(s.router, s.do(req, testutil.Admin()))
			s.Equal(http.StatusBadRequest, rr.Code)
		})
	}
}

func (s *AuditHandlerSuite) TestReadRequiresPrivilegedRole() {
	for _, actor := range []domain.Actor{testutil.Manager(domain.NewEmployeeID()), testutil.Employee(domain.NewEmployeeID())} {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/audit-logs/")
		rr := testutil.DoRequest(s.router, s.do(req, actor))
		testutil.AssertReason(s.T(), rr, http.StatusForbidden, "ACCESS_DENIED")
	}
}

func (s *AuditHandlerSuite) TestCleanup() {
	s.Run("admin with explicit retention", func() {
		admin := testutil.Admin()
		s.service.EXPECT().Purge(gomock.Any(), admin.ID, 29).
			Return(&audit.PurgeResult{DeletedCount: 0, RetentionDays: 30}, nil)

		req := testutil.NewRequest(s.T(), http.MethodDelete, "/audit-logs/cleanup?retention_days=29")
		rr := testutil.DoRequest(s.router, s.do(req, admin))
		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "retentionDays", float64(30))
	})

	s.Run("default retention", func() {
		s.service.EXPECT().Purge(gomock.Any(), gomock.Any(), 365).Return(&audit.PurgeResult{RetentionDays: 365}, nil)
		req := testutil.NewRequest(s.T(), http.MethodDelete, "/audit-logs/cleanup")
		rr := testutil.DoRequest(s.router, s.do(req, testutil.Admin()))
		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("HR cannot purge", func() {
		req := testutil.NewRequest(s.T(), http.MethodDelete, "/audit-logs/cleanup?retention_days=90")
		rr := testutil.DoRequest(s.router, s.do(req, testutil.HR()))
		s.Equal(http.StatusForbidden, rr.Code)
	})

	s.Run("non-numeric retention", func() {
		req := testutil.NewRequest(s.T(), http.MethodDelete, "/audit-logs/cleanup?retention_days=forever")
		rr := testutil.DoRequest(s.router, s.do(req, testutil.Admin()))
		s.Equal(http.StatusBadRequest, rr.Code)
	})
}

func (s *AuditHandlerSuite) TestGetIncludesChanges() {
	id := uuid.New()
	s.service.EXPECT().Get(gomock.Any(), id).Return(&audit.Record{
		ID:     id,
		Action: audit.ActionUpdate,
		Before: []byte(`{"status":"DRAFT"}`),
		After:  []byte(`{"status":"PROCESSED"}`),
	}, nil)

	req := testutil.NewRequest(s.T(), http.MethodGet, "/audit-logs/"+id.String())
	rr := testutil.DoRequest(s.router, s.do(req, testutil.Admin()))
	testutil.AssertStatusOK(s.T(), rr)

	body := testutil.UnmarshalResponse[map[string]any](s.T(), rr)
	changes := (*body)["changes"].([]any)
	s.Require().Len(changes, 1)
	s.Equal("replace", changes[0].(map[string]any)["op"])
}

func (s *AuditHandlerSuite) TestGetNotFound() {
	s.service.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, dErrors.New(dErrors.CodeNotFound, "audit log not found"))
	req := testutil.NewRequest(s.T(), http.MethodGet, "/audit-logs/"+uuid.NewString())
	rr := testutil.DoRequest(s.router, s.do(req, testutil.Admin()))
	s.Equal(http.StatusNotFound, rr.Code)
}

func (s *AuditHandlerSuite) TestExport() {
	s.service.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ audit.Filter, w io.Writer) (int, error) {
			_, err := w.Write([]byte("PK"))
			return 3, err
		})
	req := testutil.NewRequest(s.T(), http.MethodGet, "/audit-logs/export?action=DELETE")
	rr := testutil.DoRequest(s.router, s.do(req, testutil.HR()))

	testutil.AssertStatusOK(s.T(), rr)
	s.Equal(xlsxContentType, rr.Header().Get("Content-Type"))
	s.Contains(rr.Header().Get("Content-Disposition"), ".xlsx")
	s.Equal("3", rr.Header().Get("X-Total-Count"))
}

func (s *AuditHandlerSuite) TestInternalErrorHidesCause() {
	s.service.EXPECT().Summarize(gomock.Any(), 7*24*time.Hour).
		Return(nil, dErrors.Wrap(errors.New("pq: relation missing"), dErrors.CodeInternal, "failed to summarize audit logs"))
	req := testutil.NewRequest(s.T(), http.MethodGet, "/audit-logs/summary?window_days=7")
	rr := testutil.DoRequest(s.router, s.do(req, testutil.Admin()))

	s.Equal(http.StatusInternalServerError, rr.Code)
	s.NotContains(rr.Body.String(), "relation")
}
