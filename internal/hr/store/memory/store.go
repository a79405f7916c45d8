// Package memory is an in-memory HR store for tests and local development.
// One lock guards every table, so cross-table checks (pay period overlap,
// duplicate onboarding tasks) are serialised with the write they protect.
//
// Execute callbacks run under the write lock and must not call back into the
// store. RunInTx holds the write lock for the whole callback; store calls made
// with its context reuse the lock instead of taking it again.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hrms/internal/hr/models"
	"hrms/internal/workflow"
	"hrms/pkg/domain"
	"hrms/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu           sync.RWMutex
	employees    map[domain.EmployeeID]*models.Employee
	departments  map[uuid.UUID]*models.Department
	postings     map[uuid.UUID]*models.JobPosting
	applications map[uuid.UUID]*models.Application
	interviews   map[uuid.UUID]*models.Interview
	tasks        map[uuid.UUID]*models.OnboardingTask
	payroll      map[uuid.UUID]*models.PayrollRecord
	documents    map[uuid.UUID]*models.Document
}

func New() *InMemoryStore {
	return &InMemoryStore{
		employees:    make(map[domain.EmployeeID]*models.Employee),
		departments:  make(map[uuid.UUID]*models.Department),
		postings:     make(map[uuid.UUID]*models.JobPosting),
		applications: make(map[uuid.UUID]*models.Application),
		interviews:   make(map[uuid.UUID]*models.Interview),
		tasks:        make(map[uuid.UUID]*models.OnboardingTask),
		payroll:      make(map[uuid.UUID]*models.PayrollRecord),
		documents:    make(map[uuid.UUID]*models.Document),
	}
}

type txKey struct{}

// RunInTx runs fn with the write lock held. When fn fails every table is
// restored to its state before the call. Nested calls join the outer one.
func (s *InMemoryStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.holds(ctx) {
		return fn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(saved)
		return err
	}
	return nil
}

func (s *InMemoryStore) holds(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*InMemoryStore)
	return owner == s
}

func (s *InMemoryStore) lock(ctx context.Context) func() {
	if s.holds(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *InMemoryStore) rlock(ctx context.Context) func() {
	if s.holds(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

// tables is a shallow copy of every map. Writes always replace map values
// with fresh clones, so the copy is enough to roll back.
type tables struct {
	employees    map[domain.EmployeeID]*models.Employee
	departments  map[uuid.UUID]*models.Department
	postings     map[uuid.UUID]*models.JobPosting
	applications map[uuid.UUID]*models.Application
	interviews   map[uuid.UUID]*models.Interview
	tasks        map[uuid.UUID]*models.OnboardingTask
	payroll      map[uuid.UUID]*models.PayrollRecord
	documents    map[uuid.UUID]*models.Document
}

func (s *InMemoryStore) snapshot() tables {
	return tables{
		employees:    maps.Clone(s.employees),
		departments:  maps.Clone(s.departments),
		postings:     maps.Clone(s.postings),
		applications: maps.Clone(s.applications),
		interviews:   maps.Clone(s.interviews),
		tasks:        maps.Clone(s.tasks),
		payroll:      maps.Clone(s.payroll),
		documents:    maps.Clone(s.documents),
	}
}

func (s *InMemoryStore) restore(t tables) {
	s.employees = t.employees
	s.departments = t.departments
	s.postings = t.postings
	s.applications = t.applications
	s.interviews = t.interviews
	s.tasks = t.tasks
	s.payroll = t.payroll
	s.documents = t.documents
}

// ---------------------------------------------------------------------------
// Employees
// ---------------------------------------------------------------------------

func (s *InMemoryStore) GetEmployee(ctx context.Context, id domain.EmployeeID) (*models.Employee, error) {
	defer s.rlock(ctx)()
	e, ok := s.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee %s: %w", id, sentinel.ErrNotFound)
	}
	return e.Clone(), nil
}

func (s *InMemoryStore) ListEmployees(ctx context.Context, f models.EmployeeFilter) ([]*models.Employee, int, error) {
	defer s.rlock(ctx)()
	var out []*models.Employee
	for _, e := range s.employees {
		if !f.Allows(e.OwnerID()) || !matchStatus(f.Status, string(e.Status)) {
			continue
		}
		if f.DepartmentID != nil && (e.DepartmentID == nil || *e.DepartmentID != *f.DepartmentID) {
			continue
		}
		if f.ManagerID != nil && (e.ManagerID == nil || *e.ManagerID != *f.ManagerID) {
			continue
		}
		out = append(out, e.Clone())
	}
	sortNewest(out, func(e *models.Employee) (time.Time, uuid.UUID) { return e.CreatedAt, uuid.UUID(e.ID) })
	return paginate(out, f.ListFilter), len(out), nil
}

func (s *InMemoryStore) FindEmployees(ctx context.Context, ids []domain.EmployeeID) ([]*models.Employee, error) {
	defer s.rlock(ctx)()
	out := make([]*models.Employee, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.employees[id]; ok {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}

func (s *InMemoryStore) CreateEmployee(ctx context.Context, e *models.Employee) error {
	defer s.lock(ctx)()
	for _, existing := range s.employees {
		if strings.EqualFold(existing.Email, e.Email) {
			return fmt.Errorf("employee email %s: %w", e.Email, sentinel.ErrConflict)
		}
	}
	s.employees[e.ID] = e.Clone()
	return nil
}

func (s *InMemoryStore) ExecuteEmployee(ctx context.Context, id domain.EmployeeID, validate func(*models.Employee) error, mutate func(*models.Employee)) (*models.Employee, error) {
	defer s.lock(ctx)()
	cur, ok := s.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee %s: %w", id, sentinel.ErrNotFound)
	}
	next := cur.Clone()
	if err := validate(next); err != nil {
		return nil, err
	}
	mutate(next)
	for otherID, other := range s.employees {
		if otherID != id && strings.EqualFold(other.Email, next.Email) {
			return nil, fmt.Errorf("employee email %s: %w", next.Email, sentinel.ErrConflict)
		}
	}
	s.employees[id] = next
	return next.Clone(), nil
}

func (s *InMemoryStore) DeleteEmployee(ctx context.Context, id domain.EmployeeID) error {
	defer s.lock(ctx)()
	if _, ok := s.employees[id]; !ok {
		return fmt.Errorf("employee %s: %w", id, sentinel.ErrNotFound)
	}
	delete(s.employees, id)
	return nil
}

func (s *InMemoryStore) CountEmployeeDependents(ctx context.Context, id domain.EmployeeID) (models.EmployeeDependents, error) {
	defer s.rlock(ctx)()
	var d models.EmployeeDependents
	for _, e := range s.employees {
		if isEmployee(e.ManagerID, id) && e.Status != models.EmployeeTerminated {
			d.Reports++
		}
	}
	for _, p := range s.payroll {
		if p.EmployeeID == id {
			d.Payroll++
		}
	}
	for _, i := range s.interviews {
		if i.LeadInterviewerID == id || slices.Contains(i.InterviewerIDs, id) {
			d.Interviews++
		}
	}
	for _, t := range s.tasks {
		if t.EmployeeID == id || isEmployee(t.AssigneeID, id) {
			d.OnboardingTasks++
		}
	}
	for _, doc := range s.documents {
		if doc.EmployeeID == id {
			d.Documents++
		}
	}
	for _, dep := range s.departments {
		if isEmployee(dep.HeadID, id) {
			d.DepartmentsLed++
		}
	}
	return d, nil
}

func isEmployee(ref *domain.EmployeeID, id domain.EmployeeID) bool {
	return ref != nil && *ref == id
}

// DirectReports implements access.Directory: employees whose manager is
// managerID, one level only.
func (s *InMemoryStore) DirectReports(ctx context.Context, managerID domain.EmployeeID) ([]domain.EmployeeID, error) {
	defer s.rlock(ctx)()
	var out []domain.EmployeeID
	for _, e := range s.employees {
		if e.ManagerID != nil && *e.ManagerID == managerID {
			out = append(out, e.ID)
		}
	}
	slices.SortFunc(out, func(a, b domain.EmployeeID) int { return bytes.Compare(a[:], b[:]) })
	return out, nil
}

// ---------------------------------------------------------------------------
// Departments
// ---------------------------------------------------------------------------

func (s *InMemoryStore) GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	defer s.rlock(ctx)()
	d, ok := s.departments[id]
	if !ok {
		return nil, fmt.Errorf("department %s: %w", id, sentinel.ErrNotFound)
	}
	return d.Clone(), nil
}

func (s *InMemoryStore) ListDepartments(ctx context.Context, limit, offset int) ([]*models.Department, int, error) {
	defer s.rlock(ctx)()
	out := make([]*models.Department, 0, len(s.departments))
	for _, d := range s.departments {
		out = append(out, d.Clone())
	}
	slices.SortFunc(out, func(a, b *models.Department) int { return strings.Compare(a.Name, b.Name) })
	return paginate(out, models.ListFilter{Limit: limit, Offset: offset}), len(out), nil
}

func (s *InMemoryStore) CreateDepartment(ctx context.Context, d *models.Department) error {
	defer s.lock(ctx)()
	for _, existing := range s.departments {
		if strings.EqualFold(existing.Name, d.Name) {
			return fmt.Errorf("department name %s: %w", d.Name, sentinel.ErrConflict)
		}
	}
	s.departments[d.ID] = d.Clone()
	return nil
}

func (s *InMemoryStore) ExecuteDepartment(ctx context.Context, id uuid.UUID, validate func(*models.Department) error, mutate func(*models.Department)) (*models.Department, error) {
	defer s.lock(ctx)()
	cur, ok := s.departments[id]
	if !ok {
		return nil, fmt.Errorf("department %s: %w", id, sentinel.ErrNotFound)
	}
	next := cur.Clone()
	if err := validate(next); err != nil {
		return nil, err
	}
	mutate(next)
	for otherID, other := range s.departments {
		if otherID != id && strings.EqualFold(other.Name, next.Name) {
			return nil, fmt.Errorf("department name %s: %w", next.Name, sentinel.ErrConflict)
		}
	}
	s.departments[id] = next
	return next.Clone(), nil
}

func (s *InMemoryStore) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	defer s.lock(ctx)()
	if _, ok := s.departments[id]; !ok {
		return fmt.Errorf("department %s: %w", id, sentinel.ErrNotFound)
	}
	delete(s.departments, id)
	return nil
}

func (s *InMemoryStore) CountDepartmentEmployees(ctx context.Context, id uuid.UUID) (int, error) {
	defer s.rlock(ctx)()
	n := 0
	for _, e := range s.employees {
		if e.DepartmentID != nil && *e.DepartmentID == id && e.Status != models.EmployeeTerminated {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Recruiting
// ---------------------------------------------------------------------------

func (s *InMemoryStore) GetJobPosting(ctx context.Context, id uuid.UUID) (*models.JobPosting, error) {
	defer s.rlock(ctx)()
	j, ok := s.postings[id]
	if !ok {
		return nil, fmt.Errorf("job posting %s: %w", id, sentinel.ErrNotFound)
	}
	return j.Clone(), nil
}

func (s *InMemoryStore) ListJobPostings(ctx context.Context, f models.ListFilter) ([]*models.JobPosting, int, error) {
	defer s.rlock(ctx)()
	var out []*models.JobPosting
	for _, j := range s.postings {
		if matchStatus(f.Status, string(j.Status)) {
			out = append(out, j.Clone())
		}
	}
	sortNewest(out, func(j *models.JobPosting) (time.Time, uuid.UUID) { return j.CreatedAt, j.ID })
	return paginate(out, f), len(out), nil
}

func (s *InMemoryStore) CreateJobPosting(ctx context.Context, j *models.JobPosting) error {
	defer s.lock(ctx)()
	s.postings[j.ID] = j.Clone()
	return nil
}

func (s *InMemoryStore) ExecuteJobPosting(ctx context.Context, id uuid.UUID, validate func(*models.JobPosting) error, mutate func(*models.JobPosting)) (*models.JobPosting, error) {
	defer s.lock(ctx)()
	cur, ok := s.postings[id]
	if !ok {
		return nil, fmt.Errorf("job posting %s: %w", id, sentinel.ErrNotFound)
	}
	next := cur.Clone()
	if err := validate(next); err != nil {
		return nil, err
	}
	mutate(next)
	s.postings[id] = next
	return next.Clone(), nil
}

func (s *InMemoryStore) DeleteJobPosting(ctx context.Context, id uuid.UUID) error {
	defer s.lock(ctx)()
	if _, ok := s.postings[id]; !ok {
		return fmt.Errorf("job posting %s: %w", id, sentinel.ErrNotFound)
	}
	for _, a := range s.applications {
		if a.JobPostingID == id {
			return fmt.Errorf("job posting %s has applications: %w", id, sentinel.ErrInUse)
		}
	}
	delete(s.postings, id)
	return nil
}

func (s *InMemoryStore) CountApplications(ctx context.Context, jobPostingID uuid.UUID) (int, error) {
	defer s.rlock(ctx)()
	n := 0
	for _, a := range s.applications {
		if a.JobPostingID == jobPostingID {
			n++
		}
	}
	return n, nil
}

func (s *InMemoryStore) GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	defer s.rlock(ctx)()
	a, ok := s.applications[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, sentinel.ErrNotFound)
	}
	return a.Clone(), nil
}

func (s *InMemoryStore) ListApplications(ctx context.Context, f models.ApplicationFilter) ([]*models.Application, int, error) {
	defer s.rlock(ctx)()
	var out []*models.Application
	for _, a := range s.applications {
		if !matchStatus(f.Status, string(a.Status)) {
			continue
		}
		if f.JobPostingID != nil && a.JobPostingID != *f.JobPostingID {
			continue
		}
		out = append(out, a.Clone())
	}
	sortNewest(out, func(a *models.Application) (time.Time, uuid.UUID) { return a.CreatedAt, a.ID })
	return paginate(out, f.ListFilter), len(out), nil
}

func (s *InMemoryStore) CreateApplication(ctx context.Context, a *models.Application) error {
	defer s.lock(ctx)()
	if _, ok := s.postings[a.JobPostingID]; !ok {
		return fmt.Errorf("job posting %s: %w", a.JobPostingID, sentinel.ErrNotFound)
	}
	s.applications[a.ID] = a.Clone()
	return nil
}

func (s *InMemoryStore) ExecuteApplication(ctx context.Context, id uuid.UUID, validate func(*models.Application) error, mutate func(*models.Application)) (*models.Application, error) {
	defer s.lock(ctx)()
	cur, ok := s.applications[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, sentinel.ErrNotFound)
	}
	next := cur.Clone()
	if err := validate(next); err != nil {
		return nil, err
	}
	mutate(next)
	s.applications[id] = next
	return next.Clone(), nil
}

func (s *InMemoryStore) GetInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	defer s.rlock(ctx)()
	i, ok := s.interviews[id]
	if !ok {
		return nil, fmt.Errorf("interview %s: %w", id, sentinel.ErrNotFound)
	}
	return i.Clone(), nil
}

func (s *InMemoryStore) ListInterviews(ctx context.Context, f models.InterviewFilter) ([]*models.Interview, int, error) {
	defer s.rlock(ctx)()
	var out []*models.Interview
	for _, i := range s.interviews {
		if !f.Allows(i.OwnerID()) || !matchStatus(f.Status, string(i.Status)) {
			continue
		}
		if f.ApplicationID != nil && i.ApplicationID != *f.ApplicationID {
			continue
		}
		out = append(out, i.Clone())
	}
	sortNewest(out, func(i *models.Interview) (time.Time, uuid.UUID) { return i.ScheduledAt, i.ID })
	return paginate(out, f.ListFilter), len(out), nil
}

func (s *InMemoryStore) CreateInterview(ctx context.Context, i *models.Interview) error {
	defer s.lock(ctx)()
	if _, ok := s.applications[i.ApplicationID]; !ok {
		return fmt.Errorf("application %s: %w", i.ApplicationID, sentinel.ErrNotFound)
	}
	s.interviews[i.ID] = i.Clone()
	return nil
}

func (s *InMemoryStore) ExecuteInterview(ctx context.Context, id uuid.UUID, validate func(*models.Interview) error, mutate func(*models.Interview)) (*models.Interview, error) {
	defer s.lock(ctx)()
	cur, ok := s.interviews[id]
	if !ok {
		return nil, fmt.Errorf("interview %s: %w", id, sentinel.ErrNotFound)
	}
	next := cur.Clone()
	if err := validate(next); err != nil {
		return nil, err
	}
	mutate(next)
	s.interviews[id] = next
	return next.Clone(), nil
}

// ---------------------------------------------------------------------------
// Onboarding
// ---------------------------------------------------------------------------

func (s *InMemoryStore) GetOnboardingTask(ctx context.Context, id uuid.UUID) (*models.OnboardingTask, error) {
	defer s.rlock(ctx)()
	t, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("onboarding task %s: %w", id, sentinel.ErrNotFound)
	}
	return t.Clone(), nil
}

func (s *InMemoryStore) ListOnboardingTasks(ctx context.Context, f models.ListFilter) ([]*models.OnboardingTask, int, error) {
	defer s.rlock(ctx)()
	var out []*models.OnboardingTask
	for _, t := range s.tasks {
		if f.Allows(t.OwnerID()) && matchStatus(f.Status, string(t.Status)) {
			out = append(out, t.Clone())
		}
	}
	sortNewest(out, func(t *models.OnboardingTask) (time.Time, uuid.UUID) { return t.CreatedAt, t.ID })
	return paginate(out, f), len(out), nil
}

func (s *InMemoryStore) CreateOnboardingTask(ctx context.Context, t *models.OnboardingTask) error {
	defer s.lock(ctx)()
	if s.duplicateTaskLocked(t) {
		return fmt.Errorf("onboarding task %q: %w", t.Title, sentinel.ErrConflict)
	}
	s.tasks[t.ID] = t.Clone()
	return nil
}

// duplicateTaskLocked matches the partial unique index on
// (employee_id, lower(title)) over non-cancelled tasks.
func (s *InMemoryStore) duplicateTaskLocked(t *models.OnboardingTask) bool {
	if t.Status == workflow.OnboardingCancelled {
		return false
	}
	for _, other := range s.tasks {
		if other.ID == t.ID || other.Status == workflow.OnboardingCancelled {
			continue
		}
		if other.EmployeeID == t.EmployeeID && strings.EqualFold(other.Title, t.Title) {
			return true
		}
	}
	return false
}

func (s *InMemoryStore) FindOnboardingTasks(ctx context.Context, ids []uuid.UUID) ([]*models.OnboardingTask, error) {
	defer s.rlock(ctx)()
	out := make([]*models.OnboardingTask, 0, len(ids))
	for _, id := range ids {
		if t, ok := s.tasks[id]; ok {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (s *InMemoryStore) ExecuteOnboardingTask(ctx context.Context, id uuid.UUID, validate func(*models.OnboardingTask) error, mutate func(*models.OnboardingTask)) (*models.OnboardingTask, error) {
	defer s.lock(ctx)()
	cur, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("onboarding task %s: %w", id, sentinel.ErrNotFound)
	}
	next := cur.Clone()
	if err := validate(next); err != nil {
		return nil, err
	}
	mutate(next)
	if s.duplicateTaskLocked(next) {
		return nil, fmt.Errorf("onboarding task %q: %w", next.Title, sentinel.ErrConflict)
	}
	s.tasks[id] = next
	return next.Clone(), nil
}

func (s *InMemoryStore) ExecuteOnboardingTasks(ctx context.Context, ids []uuid.UUID, validate func(*models.OnboardingTask) error, mutate func(*models.OnboardingTask)) ([]*models.OnboardingTask, error) {
	defer s.lock(ctx)()
	staged := make([]*models.OnboardingTask, 0, len(ids))
	for _, id := range ids {
		cur, ok := s.tasks[id]
		if !ok {
			return nil, fmt.Errorf("onboarding task %s: %w", id, sentinel.ErrNotFound)
		}
		next := cur.Clone()
		if err := validate(next); err != nil {
			return nil, err
		}
		staged = append(staged, next)
	}
	out := make([]*models.OnboardingTask, 0, len(staged))
	for _, next := range staged {
		mutate(next)
		s.tasks[next.ID] = next
		out = append(out, next.Clone())
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Payroll
// ---------------------------------------------------------------------------

func (s *InMemoryStore) GetPayroll(ctx context.Context, id uuid.UUID) (*models.PayrollRecord, error) {
	defer s.rlock(ctx)()
	p, ok := s.payroll[id]
	if !ok {
		return nil, fmt.Errorf("payroll record %s: %w", id, sentinel.ErrNotFound)
	}
	return p.Clone(), nil
}

func (s *InMemoryStore) ListPayroll(ctx context.Context, f models.PayrollFilter) ([]*models.PayrollRecord, int, error) {
	defer s.rlock(ctx)()
	var out []*models.PayrollRecord
	for _, p := range s.payroll {
		if !f.Allows(p.OwnerID()) || !matchStatus(f.Status, string(p.Status)) {
			continue
		}
		if f.EmployeeID != nil && p.EmployeeID != *f.EmployeeID {
			continue
		}
		out = append(out, p.Clone())
	}
	sortNewest(out, func(p *models.PayrollRecord) (time.Time, uuid.UUID) { return p.PeriodStart, p.ID })
	return paginate(out, f.ListFilter), len(out), nil
}

func (s *InMemoryStore) PeriodClaims(ctx context.Context, employeeID domain.EmployeeID) ([]workflow.PeriodClaim, error) {
	defer s.rlock(ctx)()
	return s.claimsLocked(employeeID), nil
}

func (s *InMemoryStore) claimsLocked(employeeID domain.EmployeeID) []workflow.PeriodClaim {
	var claims []workflow.PeriodClaim
	for _, p := range s.payroll {
		if p.EmployeeID == employeeID && p.Status != workflow.PayrollCancelled {
			claims = append(claims, workflow.PeriodClaim{RecordID: p.ID, Period: p.Period()})
		}
	}
	return claims
}

// overlapsLocked is the in-memory form of the payroll exclusion constraint.
func (s *InMemoryStore) overlapsLocked(p *models.PayrollRecord) bool {
	if p.Status == workflow.PayrollCancelled {
		return false
	}
	return workflow.CheckOverlap(p.Period(), s.claimsLocked(p.EmployeeID), p.ID) != nil
}

func (s *InMemoryStore) CreatePayroll(ctx context.Context, p *models.PayrollRecord) error {
	defer s.lock(ctx)()
	if s.overlapsLocked(p) {
		return fmt.Errorf("payroll period for %s: %w", p.EmployeeID, sentinel.ErrConflict)
	}
	s.payroll[p.ID] = p.Clone()
	return nil
}

func (s *InMemoryStore) ExecutePayroll(ctx context.Context, id uuid.UUID, validate func(*models.PayrollRecord) error, mutate func(*models.PayrollRecord)) (*models.PayrollRecord, error) {
	defer s.lock(ctx)()
	cur, ok := s.payroll[id]
	if !ok {
		return nil, fmt.Errorf("payroll record %s: %w", id, sentinel.ErrNotFound)
	}
	next := cur.Clone()
	if err := validate(next); err != nil {
		return nil, err
	}
	mutate(next)
	if s.overlapsLocked(next) {
		return nil, fmt.Errorf("payroll period for %s: %w", next.EmployeeID, sentinel.ErrConflict)
	}
	s.payroll[id] = next
	return next.Clone(), nil
}

func (s *InMemoryStore) DeletePayroll(ctx context.Context, id uuid.UUID) error {
	defer s.lock(ctx)()
	if _, ok := s.payroll[id]; !ok {
		return fmt.Errorf("payroll record %s: %w", id, sentinel.ErrNotFound)
	}
	delete(s.payroll, id)
	return nil
}

// ---------------------------------------------------------------------------
// Documents
// ---------------------------------------------------------------------------

func (s *InMemoryStore) GetDocument(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	defer s.rlock(ctx)()
	d, ok := s.documents[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, sentinel.ErrNotFound)
	}
	return d.Clone(), nil
}

// ListDocuments treats the filter status as the document category.
func (s *InMemoryStore) ListDocuments(ctx context.Context, f models.ListFilter) ([]*models.Document, int, error) {
	defer s.rlock(ctx)()
	var out []*models.Document
	for _, d := range s.documents {
		if f.Allows(d.OwnerID()) && matchStatus(f.Status, d.Category) {
			out = append(out, d.Clone())
		}
	}
	sortNewest(out, func(d *models.Document) (time.Time, uuid.UUID) { return d.CreatedAt, d.ID })
	return paginate(out, f), len(out), nil
}

func (s *InMemoryStore) CreateDocument(ctx context.Context, d *models.Document) error {
	defer s.lock(ctx)()
	s.documents[d.ID] = d.Clone()
	return nil
}

func (s *InMemoryStore) ExecuteDocument(ctx context.Context, id uuid.UUID, validate func(*models.Document) error, mutate func(*models.Document)) (*models.Document, error) {
	defer s.lock(ctx)()
	cur, ok := s.documents[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, sentinel.ErrNotFound)
	}
	next := cur.Clone()
	if err := validate(next); err != nil {
		return nil, err
	}
	mutate(next)
	s.documents[id] = next
	return next.Clone(), nil
}

func (s *InMemoryStore) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	defer s.lock(ctx)()
	if _, ok := s.documents[id]; !ok {
		return fmt.Errorf("document %s: %w", id, sentinel.ErrNotFound)
	}
	delete(s.documents, id)
	return nil
}

func matchStatus(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

// sortNewest orders by the key time descending, then id for stable pages.
func sortNewest[T any](items []T, key func(T) (time.Time, uuid.UUID)) {
	slices.SortStableFunc(items, func(a, b T) int {
		ta, ia := key(a)
		tb, ib := key(b)
		if c := tb.Compare(ta); c != 0 {
			return c
		}
		return bytes.Compare(ia[:], ib[:])
	})
}

func paginate[T any](items []T, f models.ListFilter) []T {
	if f.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if f.Limit > 0 && f.Offset+f.Limit < end {
		end = f.Offset + f.Limit
	}
	return items[f.Offset:end]
}
