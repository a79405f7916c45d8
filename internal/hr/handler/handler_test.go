package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"hrms/internal/hr/handler/mocks"
	"hrms/internal/hr/models"
	"hrms/internal/hr/service"
	"hrms/internal/workflow"
	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks

type HRHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestHRHandlerSuite(t *testing.T) {
	suite.Run(t, new(HRHandlerSuite))
}

func (s *HRHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func (s *HRHandlerSuite) TestListEmployeesParsesFilters() {
	dept := uuid.New()
	manager := domain.NewEmployeeID()
	s.service.EXPECT().ListEmployees(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q service.EmployeeQuery) (*models.Page[*models.Employee], error) {
			s.Equal("ACTIVE", q.Status)
			s.Equal(dept, *q.DepartmentID)
			s.Equal(manager, *q.ManagerID)
			s.Equal(5, q.Limit)
			s.Equal(10, q.Offset)
			return &models.Page[*models.Employee]{Items: []*models.Employee{}, Total: 42, Limit: 5, Offset: 10}, nil
		})

	req := testutil.NewRequest(s.T(), http.MethodGet,
		"/employees/?status=ACTIVE&department_id="+dept.String()+"&manager_id="+manager.String()+"&limit=5&offset=10")
	rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))

	testutil.AssertStatusOK(s.T(), rr)
	s.Equal("42", rr.Header().Get("X-Total-Count"))
	page := testutil.UnmarshalResponse[models.Page[*models.Employee]](s.T(), rr)
	s.Equal(42, page.Total)
}

func (s *HRHandlerSuite) TestListRejectsBadQuery() {
	for _, q := range []string{"limit=x", "offset=-1", "department_id=nope", "manager_id=" + uuid.Nil.String()} {
		s.Run(q, func() {
			req := testutil.NewRequest(s.T(), http.MethodGet, "/employees/?"+q)
			rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.Admin()))
			s.Equal(http.StatusBadRequest, rr.Code)
		})
	}
}

func (s *HRHandlerSuite) TestCreateEmployee() {
	s.Run("created", func() {
		s.service.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req *models.CreateEmployeeRequest) (*models.Employee, error) {
				s.Equal("ada@example.com", req.Email)
				return &models.Employee{ID: domain.NewEmployeeID(), Email: req.Email}, nil
			})
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/employees/", map[string]any{
			"first_name": "Ada",
			"last_name":  "Lovelace",
			"email":      "ada@example.com",
			"position":   "Engineer",
			"salary":     "5000",
			"hire_date":  "2024-01-15T00:00:00Z",
		})
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
	})

	s.Run("missing fields are a validation error", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/employees/", map[string]any{"first_name": "Ada"})
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnprocessableEntity, string(dErrors.CodeValidation))
	})

	s.Run("unknown field is a bad request", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/employees/", `{"nickname":"ada"}`)
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

func (s *HRHandlerSuite) TestDeleteRendersOutcome() {
	s.Run("hard delete is no content", func() {
		id := domain.NewEmployeeID()
		s.service.EXPECT().DeleteEmployee(gomock.Any(), id).Return(nil, nil)
		req := testutil.NewRequest(s.T(), http.MethodDelete, "/employees/"+id.String())
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
		testutil.AssertStatus(s.T(), rr, http.StatusNoContent)
	})

	s.Run("soft delete returns the terminated employee", func() {
		id := domain.NewEmployeeID()
		s.service.EXPECT().DeleteEmployee(gomock.Any(), id).
			Return(&models.Employee{ID: id, Status: models.EmployeeTerminated}, nil)
		req := testutil.NewRequest(s.T(), http.MethodDelete, "/employees/"+id.String())
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
		testutil.AssertStatusOK(s.T(), rr)
		testutil.AssertJSONContains(s.T(), rr, "status", string(models.EmployeeTerminated))
	})

	s.Run("processed payroll is cancelled", func() {
		id := uuid.New()
		s.service.EXPECT().DeletePayroll(gomock.Any(), id).
			Return(&models.PayrollRecord{ID: id, Status: workflow.PayrollCancelled}, nil)
		req := testutil.NewRequest(s.T(), http.MethodDelete, "/payroll/"+id.String())
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("department", func() {
		id := uuid.New()
		s.service.EXPECT().DeleteDepartment(gomock.Any(), id).Return(nil)
		req := testutil.NewRequest(s.T(), http.MethodDelete, "/departments/"+id.String())
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
		testutil.AssertStatus(s.T(), rr, http.StatusNoContent)
	})
}

func (s *HRHandlerSuite) TestMalformedPathID() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/payroll/not-a-uuid")
	rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeInvalidInput))
}

func (s *HRHandlerSuite) TestServiceErrorsKeepTheirReason() {
	cases := []struct {
		name   string
		err    error
		status int
		reason dErrors.Reason
	}{
		{"access denied", dErrors.AccessDenied("out of scope"), http.StatusForbidden, dErrors.ReasonAccessDenied},
		{"transition", dErrors.Rejected(dErrors.ReasonInvalidStatusTransition, "bad move"), http.StatusUnprocessableEntity, dErrors.ReasonInvalidStatusTransition},
		{"not processed", dErrors.Rejected(dErrors.ReasonPayrollNotProcessed, "draft"), http.StatusUnprocessableEntity, dErrors.ReasonPayrollNotProcessed},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			id := uuid.New()
			s.service.EXPECT().PayPayroll(gomock.Any(), id).Return(nil, tc.err)
			req := testutil.NewRequest(s.T(), http.MethodPost, "/payroll/"+id.String()+"/pay")
			rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.Admin()))
			testutil.AssertReason(s.T(), rr, tc.status, string(tc.reason))
		})
	}

	s.Run("internal errors are opaque", func() {
		id := uuid.New()
		s.service.EXPECT().GetDocument(gomock.Any(), id).
			Return(nil, dErrors.Wrap(io.ErrUnexpectedEOF, dErrors.CodeInternal, "load document"))
		req := testutil.NewRequest(s.T(), http.MethodGet, "/documents/"+id.String())
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
		body := testutil.UnmarshalErrorResponse(s.T(), rr)
		s.Equal(http.StatusInternalServerError, rr.Code)
		s.Empty(body.Description)
	})
}

func (s *HRHandlerSuite) TestOverlapDetails() {
	conflicting := uuid.New()
	s.service.EXPECT().CreatePayroll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req *models.CreatePayrollRequest) (*models.PayrollRecord, error) {
			s.True(decimal.NewFromInt(4000).Equal(req.BaseSalary))
			return nil, dErrors.Rejected(dErrors.ReasonOverlappingPayPeriod, "period overlaps").
				WithDetail("conflicting_record_ids", []string{conflicting.String()})
		})
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/payroll/", map[string]any{
		"employee_id":  domain.NewEmployeeID().String(),
		"period_start": "2024-01-01T00:00:00Z",
		"period_end":   "2024-02-01T00:00:00Z",
		"base_salary":  "4000",
	})
	rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))

	testutil.AssertReason(s.T(), rr, http.StatusUnprocessableEntity, string(dErrors.ReasonOverlappingPayPeriod))
	body := testutil.UnmarshalErrorResponse(s.T(), rr)
	s.Equal([]any{conflicting.String()}, body.Details["conflicting_record_ids"])
}

func (s *HRHandlerSuite) TestApplicationStatus() {
	id := uuid.New()
	s.Run("valid status is forwarded", func() {
		s.service.EXPECT().UpdateApplicationStatus(gomock.Any(), id, workflow.ApplicationUnderReview).
			Return(&models.Application{ID: id, Status: workflow.ApplicationUnderReview}, nil)
		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/applications/"+id.String()+"/status",
			map[string]string{"status": "UNDER_REVIEW"})
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("unknown status never reaches the service", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/applications/"+id.String()+"/status",
			map[string]string{"status": "SHORTLISTED"})
		rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
		testutil.AssertStatus(s.T(), rr, http.StatusUnprocessableEntity)
	})
}

func (s *HRHandlerSuite) TestBulkUpdateOnboarding() {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	s.service.EXPECT().BulkUpdateOnboardingTasks(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req *models.BulkUpdateOnboardingRequest) ([]*models.OnboardingTask, error) {
			s.Equal(ids, req.TaskIDs)
			now := time.Now()
			return []*models.OnboardingTask{
				{ID: ids[0], Status: workflow.OnboardingInProgress, UpdatedAt: now},
				{ID: ids[1], Status: workflow.OnboardingInProgress, UpdatedAt: now},
			}, nil
		})
	req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/onboarding-tasks/bulk-update", map[string]any{
		"task_ids": ids,
		"status":   "IN_PROGRESS",
	})
	rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))

	testutil.AssertStatusOK(s.T(), rr)
	res := testutil.UnmarshalResponse[bulkUpdateResponse](s.T(), rr)
	s.Equal(2, res.Updated)
}

func (s *HRHandlerSuite) TestPayrollActions() {
	id := uuid.New()
	s.service.EXPECT().ProcessPayroll(gomock.Any(), id).
		Return(&models.PayrollRecord{ID: id, Status: workflow.PayrollProcessed}, nil)
	req := testutil.NewRequest(s.T(), http.MethodPost, "/payroll/"+id.String()+"/process")
	rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.Admin()))
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONContains(s.T(), rr, "status", string(workflow.PayrollProcessed))
}

func (s *HRHandlerSuite) TestDocumentFilters() {
	s.service.EXPECT().ListDocuments(gomock.Any(), "CONTRACT", 0, 0).
		Return(&models.Page[*models.Document]{Items: []*models.Document{}}, nil)
	req := testutil.NewRequest(s.T(), http.MethodGet, "/documents/?category=CONTRACT")
	rr := testutil.DoRequest(s.router, testutil.WithActor(req, testutil.Employee(domain.NewEmployeeID())))
	testutil.AssertStatusOK(s.T(), rr)
	s.Equal("0", rr.Header().Get("X-Total-Count"))

	id := uuid.New()
	s.service.EXPECT().DownloadDocument(gomock.Any(), id).Return(&models.Document{ID: id}, nil)
	req = testutil.NewRequest(s.T(), http.MethodGet, "/documents/"+id.String()+"/download")
	rr = testutil.DoRequest(s.router, testutil.WithActor(req, testutil.HR()))
	testutil.AssertStatusOK(s.T(), rr)
}
