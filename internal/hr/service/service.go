// Package service runs every governed HR operation through the access-scoped
// pipeline: resolve scope, check the owner, validate the business rule,
// mutate, then record the audit entry.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"hrms/internal/access"
	"hrms/internal/audit"
	"hrms/internal/events"
	hrmetrics "hrms/internal/hr/metrics"
	"hrms/internal/hr/models"
	"hrms/internal/workflow"
	"hrms/pkg/domain"
)

type EmployeeStore interface {
	GetEmployee(ctx context.Context, id domain.EmployeeID) (*models.Employee, error)
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, int, error)
	// FindEmployees returns the employees that exist among ids.
	FindEmployees(ctx context.Context, ids []domain.EmployeeID) ([]*models.Employee, error)
	CreateEmployee(ctx context.Context, e *models.Employee) error
	ExecuteEmployee(ctx context.Context, id domain.EmployeeID, validate func(*models.Employee) error, mutate func(*models.Employee)) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id domain.EmployeeID) error
	// CountEmployeeDependents counts the records that still reference id.
	CountEmployeeDependents(ctx context.Context, id domain.EmployeeID) (models.EmployeeDependents, error)
}

type DepartmentStore interface {
	GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error)
	ListDepartments(ctx context.Context, limit, offset int) ([]*models.Department, int, error)
	CreateDepartment(ctx context.Context, d *models.Department) error
	ExecuteDepartment(ctx context.Context, id uuid.UUID, validate func(*models.Department) error, mutate func(*models.Department)) (*models.Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
	CountDepartmentEmployees(ctx context.Context, id uuid.UUID) (int, error)
}

type RecruitingStore interface {
	GetJobPosting(ctx context.Context, id uuid.UUID) (*models.JobPosting, error)
	ListJobPostings(ctx context.Context, filter models.ListFilter) ([]*models.JobPosting, int, error)
	CreateJobPosting(ctx context.Context, j *models.JobPosting) error
	ExecuteJobPosting(ctx context.Context, id uuid.UUID, validate func(*models.JobPosting) error, mutate func(*models.JobPosting)) (*models.JobPosting, error)
	DeleteJobPosting(ctx context.Context, id uuid.UUID) error
	CountApplications(ctx context.Context, jobPostingID uuid.UUID) (int, error)

	GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListApplications(ctx context.Context, filter models.ApplicationFilter) ([]*models.Application, int, error)
	CreateApplication(ctx context.Context, a *models.Application) error
	ExecuteApplication(ctx context.Context, id uuid.UUID, validate func(*models.Application) error, mutate func(*models.Application)) (*models.Application, error)

	GetInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error)
	ListInterviews(ctx context.Context, filter models.InterviewFilter) ([]*models.Interview, int, error)
	CreateInterview(ctx context.Context, i *models.Interview) error
	ExecuteInterview(ctx context.Context, id uuid.UUID, validate func(*models.Interview) error, mutate func(*models.Interview)) (*models.Interview, error)
}

type OnboardingStore interface {
	GetOnboardingTask(ctx context.Context, id uuid.UUID) (*models.OnboardingTask, error)
	ListOnboardingTasks(ctx context.Context, filter models.ListFilter) ([]*models.OnboardingTask, int, error)
	// CreateOnboardingTask returns sentinel.ErrConflict when a non-cancelled
	// task with the same employee and title already exists.
	CreateOnboardingTask(ctx context.Context, t *models.OnboardingTask) error
	FindOnboardingTasks(ctx context.Context, ids []uuid.UUID) ([]*models.OnboardingTask, error)
	ExecuteOnboardingTask(ctx context.Context, id uuid.UUID, validate func(*models.OnboardingTask) error, mutate func(*models.OnboardingTask)) (*models.OnboardingTask, error)
	// ExecuteOnboardingTasks applies validate and mutate to every task under
	// one lock. Nothing is written when any validate call fails.
	ExecuteOnboardingTasks(ctx context.Context, ids []uuid.UUID, validate func(*models.OnboardingTask) error, mutate func(*models.OnboardingTask)) ([]*models.OnboardingTask, error)
}

type PayrollStore interface {
	GetPayroll(ctx context.Context, id uuid.UUID) (*models.PayrollRecord, error)
	ListPayroll(ctx context.Context, filter models.PayrollFilter) ([]*models.PayrollRecord, int, error)
	// PeriodClaims returns the periods of non-cancelled records for employee.
	PeriodClaims(ctx context.Context, employeeID domain.EmployeeID) ([]workflow.PeriodClaim, error)
	// CreatePayroll and ExecutePayroll return sentinel.ErrConflict when the
	// stored period overlaps another non-cancelled record.
	CreatePayroll(ctx context.Context, p *models.PayrollRecord) error
	ExecutePayroll(ctx context.Context, id uuid.UUID, validate func(*models.PayrollRecord) error, mutate func(*models.PayrollRecord)) (*models.PayrollRecord, error)
	DeletePayroll(ctx context.Context, id uuid.UUID) error
}

type DocumentStore interface {
	GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error)
	ListDocuments(ctx context.Context, filter models.ListFilter) ([]*models.Document, int, error)
	CreateDocument(ctx context.Context, d *models.Document) error
	ExecuteDocument(ctx context.Context, id uuid.UUID, validate func(*models.Document) error, mutate func(*models.Document)) (*models.Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

// Store is the full persistence surface the HR services need. RunInTx makes
// every store call made with the callback's context commit or roll back
// together.
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	EmployeeStore
	DepartmentStore
	RecruitingStore
	OnboardingStore
	PayrollStore
	DocumentStore
}

type ScopeResolver interface {
	ResolveScope(ctx context.Context, actor domain.Actor) (access.Scope, error)
}

type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry)
}

// HierarchyCache drops cached direct reports after org changes.
type HierarchyCache interface {
	Invalidate(ctx context.Context, managerIDs ...domain.EmployeeID) error
}

// Service exposes the governed HR operations.
type Service struct {
	store     Store
	resolver  ScopeResolver
	audit     AuditRecorder
	publisher events.Publisher
	hierarchy HierarchyCache
	logger    *slog.Logger
	metrics   *hrmetrics.Metrics
	tracer    trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *hrmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func WithHierarchyCache(c HierarchyCache) Option {
	return func(s *Service) {
		s.hierarchy = c
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service.
func New(store Store, resolver ScopeResolver, recorder AuditRecorder, opts ...Option) *Service {
	s := &Service{
		store:    store,
		resolver: resolver,
		audit:    recorder,
		logger:   slog.Default(),
		tracer:   otel.Tracer("hrms/hr"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) invalidateHierarchy(ctx context.Context, managers ...*domain.EmployeeID) {
	if s.hierarchy == nil {
		return
	}
	ids := make([]domain.EmployeeID, 0, len(managers))
	for _, m := range managers {
		if m != nil && !m.IsNil() {
			ids = append(ids, *m)
		}
	}
	if len(ids) == 0 {
		return
	}
	if err := s.hierarchy.Invalidate(ctx, ids...); err != nil {
		s.logger.WarnContext(ctx, "hierarchy cache invalidation failed",
			"request_id", requestID(ctx),
			"error", err,
		)
	}
}

func now(ctx context.Context) time.Time {
	return requestTime(ctx).UTC()
}
