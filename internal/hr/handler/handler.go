// Package handler exposes the HR entities over HTTP. Scope and workflow rules
// are enforced by the service; the handler only parses and renders.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"hrms/internal/hr/models"
	"hrms/internal/hr/service"
	"hrms/internal/workflow"
	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/platform/httputil"
	"hrms/pkg/requestcontext"
)

// Service is the HR operation surface served by the handler.
type Service interface {
	ListEmployees(ctx context.Context, q service.EmployeeQuery) (*models.Page[*models.Employee], error)
	GetEmployee(ctx context.Context, id domain.EmployeeID) (*models.Employee, error)
	CreateEmployee(ctx context.Context, req *models.CreateEmployeeRequest) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id domain.EmployeeID, req *models.UpdateEmployeeRequest) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id domain.EmployeeID) (*models.Employee, error)

	ListDepartments(ctx context.Context, limit, offset int) (*models.Page[*models.Department], error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error)
	CreateDepartment(ctx context.Context, req *models.CreateDepartmentRequest) (*models.Department, error)
	UpdateDepartment(ctx context.Context, id uuid.UUID, req *models.UpdateDepartmentRequest) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error

	ListJobPostings(ctx context.Context, status string, limit, offset int) (*models.Page[*models.JobPosting], error)
	GetJobPosting(ctx context.Context, id uuid.UUID) (*models.JobPosting, error)
	CreateJobPosting(ctx context.Context, req *models.CreateJobPostingRequest) (*models.JobPosting, error)
	UpdateJobPosting(ctx context.Context, id uuid.UUID, req *models.UpdateJobPostingRequest) (*models.JobPosting, error)
	DeleteJobPosting(ctx context.Context, id uuid.UUID) (*models.JobPosting, error)

	ListApplications(ctx context.Context, jobPostingID *uuid.UUID, status string, limit, offset int) (*models.Page[*models.Application], error)
	GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error)
	CreateApplication(ctx context.Context, req *models.CreateApplicationRequest) (*models.Application, error)
	UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status workflow.ApplicationStatus) (*models.Application, error)

	ListInterviews(ctx context.Context, applicationID *uuid.UUID, status string, limit, offset int) (*models.Page[*models.Interview], error)
	GetInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error)
	ScheduleInterview(ctx context.Context, req *models.ScheduleInterviewRequest) (*models.Interview, error)
	UpdateInterview(ctx context.Context, id uuid.UUID, req *models.UpdateInterviewRequest) (*models.Interview, error)
	CancelInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error)

	ListOnboardingTasks(ctx context.Context, status string, limit, offset int) (*models.Page[*models.OnboardingTask], error)
	GetOnboardingTask(ctx context.Context, id uuid.UUID) (*models.OnboardingTask, error)
	CreateOnboardingTask(ctx context.Context, req *models.CreateOnboardingTaskRequest) (*models.OnboardingTask, error)
	UpdateOnboardingTask(ctx context.Context, id uuid.UUID, req *models.UpdateOnboardingTaskRequest) (*models.OnboardingTask, error)
	BulkUpdateOnboardingTasks(ctx context.Context, req *models.BulkUpdateOnboardingRequest) ([]*models.OnboardingTask, error)
	CancelOnboardingTask(ctx context.Context, id uuid.UUID) (*models.OnboardingTask, error)

	ListPayroll(ctx context.Context, q service.PayrollQuery) (*models.Page[*models.PayrollRecord], error)
	GetPayroll(ctx context.Context, id uuid.UUID) (*models.PayrollRecord, error)
	CreatePayroll(ctx context.Context, req *models.CreatePayrollRequest) (*models.PayrollRecord, error)
	UpdatePayroll(ctx context.Context, id uuid.UUID, req *models.UpdatePayrollRequest) (*models.PayrollRecord, error)
	ProcessPayroll(ctx context.Context, id uuid.UUID) (*models.PayrollRecord, error)
	PayPayroll(ctx context.Context, id uuid.UUID) (*models.PayrollRecord, error)
	DeletePayroll(ctx context.Context, id uuid.UUID) (*models.PayrollRecord, error)

	ListDocuments(ctx context.Context, category string, limit, offset int) (*models.Page[*models.Document], error)
	GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error)
	DownloadDocument(ctx context.Context, id uuid.UUID) (*models.Document, error)
	CreateDocument(ctx context.Context, req *models.CreateDocumentRequest) (*models.Document, error)
	UpdateDocument(ctx context.Context, id uuid.UUID, req *models.UpdateDocumentRequest) (*models.Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the HR routes. Authentication must already be applied.
func (h *Handler) Register(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.HandleListEmployees)
		r.Post("/", h.HandleCreateEmployee)
		r.Get("/{id}", h.HandleGetEmployee)
		r.Put("/{id}", h.HandleUpdateEmployee)
		r.Delete("/{id}", h.HandleDeleteEmployee)
	})
	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.HandleListDepartments)
		r.Post("/", h.HandleCreateDepartment)
		r.Get("/{id}", h.HandleGetDepartment)
		r.Put("/{id}", h.HandleUpdateDepartment)
		r.Delete("/{id}", h.HandleDeleteDepartment)
	})
	r.Route("/job-postings", func(r chi.Router) {
		r.Get("/", h.HandleListJobPostings)
		r.Post("/", h.HandleCreateJobPosting)
		r.Get("/{id}", h.HandleGetJobPosting)
		r.Put("/{id}", h.HandleUpdateJobPosting)
		r.Delete("/{id}", h.HandleDeleteJobPosting)
	})
	r.Route("/applications", func(r chi.Router) {
		r.Get("/", h.HandleListApplications)
		r.Post("/", h.HandleCreateApplication)
		r.Get("/{id}", h.HandleGetApplication)
		r.Put("/{id}/status", h.HandleUpdateApplicationStatus)
	})
	r.Route("/interviews", func(r chi.Router) {
		r.Get("/", h.HandleListInterviews)
		r.Post("/", h.HandleScheduleInterview)
		r.Get("/{id}", h.HandleGetInterview)
		r.Put("/{id}", h.HandleUpdateInterview)
		r.Delete("/{id}", h.HandleCancelInterview)
	})
	r.Route("/onboarding-tasks", func(r chi.Router) {
		r.Get("/", h.HandleListOnboardingTasks)
		r.Post("/", h.HandleCreateOnboardingTask)
		r.Put("/bulk-update", h.HandleBulkUpdateOnboardingTasks)
		r.Get("/{id}", h.HandleGetOnboardingTask)
		r.Put("/{id}", h.HandleUpdateOnboardingTask)
		r.Delete("/{id}", h.HandleCancelOnboardingTask)
	})
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/", h.HandleListPayroll)
		r.Post("/", h.HandleCreatePayroll)
		r.Get("/{id}", h.HandleGetPayroll)
		r.Put("/{id}", h.HandleUpdatePayroll)
		r.Delete("/{id}", h.HandleDeletePayroll)
		r.Post("/{id}/process", h.HandleProcessPayroll)
		r.Post("/{id}/pay", h.HandlePayPayroll)
	})
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", h.HandleListDocuments)
		r.Post("/", h.HandleCreateDocument)
		r.Get("/{id}", h.HandleGetDocument)
		r.Put("/{id}", h.HandleUpdateDocument)
		r.Delete("/{id}", h.HandleDeleteDocument)
		r.Get("/{id}/download", h.HandleDownloadDocument)
	})
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg, "request_id", requestcontext.RequestID(ctx), "error", err)
	}
	httputil.WriteError(w, err)
}

// decode reads and validates a request body of type T.
func decode[T any](h *Handler, w http.ResponseWriter, r *http.Request) (*T, bool) {
	ctx := r.Context()
	return httputil.DecodeAndPrepare[T](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
}

func writePage[T any](w http.ResponseWriter, page *models.Page[T]) {
	w.Header().Set("X-Total-Count", strconv.Itoa(page.Total))
	httputil.WriteJSON(w, http.StatusOK, page)
}

// writeRemoved answers a delete: 204 when the record is gone, otherwise the
// record in its new terminal state.
func writeRemoved[T any](w http.ResponseWriter, v *T) {
	if v == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

func idParam(r *http.Request) (uuid.UUID, error) {
	return domain.ParseID(chi.URLParam(r, "id"))
}

func employeeIDParam(r *http.Request) (domain.EmployeeID, error) {
	return domain.ParseEmployeeID(chi.URLParam(r, "id"))
}

// pagination reads limit and offset. Absent values become zero and the
// service applies its defaults.
func pagination(r *http.Request) (limit, offset int, err error) {
	q := r.URL.Query()
	if limit, err = intParam(q.Get("limit")); err != nil || limit < 0 {
		return 0, 0, dErrors.New(dErrors.CodeBadRequest, "limit must be a non-negative integer")
	}
	if offset, err = intParam(q.Get("offset")); err != nil || offset < 0 {
		return 0, 0, dErrors.New(dErrors.CodeBadRequest, "offset must be a non-negative integer")
	}
	return limit, offset, nil
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

// optionalID parses a uuid query filter; empty means no filter.
func optionalID(r *http.Request, name string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := domain.ParseID(v)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid "+name)
	}
	return &id, nil
}

func optionalEmployeeID(r *http.Request, name string) (*domain.EmployeeID, error) {
	id, err := optionalID(r, name)
	if err != nil || id == nil {
		return nil, err
	}
	eid := domain.EmployeeID(*id)
	return &eid, nil
}
