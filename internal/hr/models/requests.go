package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hrms/internal/workflow"
	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
)

// Request bodies. Struct tags cover shape; Validate covers what tags cannot
// express (decimal ranges, enum membership, cross-field rules).

type CreateEmployeeRequest struct {
	UserID       *domain.UserID     `json:"user_id"`
	FirstName    string             `json:"first_name" validate:"required,max=100"`
	LastName     string             `json:"last_name" validate:"required,max=100"`
	Email        string             `json:"email" validate:"required,email"`
	Position     string             `json:"position" validate:"required,max=120"`
	DepartmentID *uuid.UUID         `json:"department_id"`
	ManagerID    *domain.EmployeeID `json:"manager_id"`
	Salary       decimal.Decimal    `json:"salary"`
	HireDate     time.Time          `json:"hire_date" validate:"required"`
}

func (r *CreateEmployeeRequest) Validate() error {
	if r.Salary.IsNegative() {
		return fieldError("salary", "must not be negative")
	}
	return nil
}

func (r *CreateEmployeeRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Position = strings.TrimSpace(r.Position)
}

type UpdateEmployeeRequest struct {
	FirstName    *string            `json:"first_name" validate:"omitempty,max=100"`
	LastName     *string            `json:"last_name" validate:"omitempty,max=100"`
	Email        *string            `json:"email" validate:"omitempty,email"`
	Position     *string            `json:"position" validate:"omitempty,max=120"`
	DepartmentID *uuid.UUID         `json:"department_id"`
	ManagerID    *domain.EmployeeID `json:"manager_id"`
	ClearManager bool               `json:"clear_manager"`
	Status       *EmployeeStatus    `json:"status"`
	Salary       *decimal.Decimal   `json:"salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	if r.Status != nil && !r.Status.IsValid() {
		return fieldError("status", "unknown employee status")
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		return fieldError("salary", "must not be negative")
	}
	if r.ClearManager && r.ManagerID != nil {
		return fieldError("manager_id", "cannot be set together with clear_manager")
	}
	return nil
}

type CreateDepartmentRequest struct {
	Name        string             `json:"name" validate:"required,max=120"`
	Description string             `json:"description" validate:"max=1000"`
	HeadID      *domain.EmployeeID `json:"head_id"`
}

type UpdateDepartmentRequest struct {
	Name        *string            `json:"name" validate:"omitempty,min=1,max=120"`
	Description *string            `json:"description" validate:"omitempty,max=1000"`
	HeadID      *domain.EmployeeID `json:"head_id"`
}

type CreateJobPostingRequest struct {
	Title          string           `json:"title" validate:"required,max=200"`
	Description    string           `json:"description" validate:"max=10000"`
	DepartmentID   *uuid.UUID       `json:"department_id"`
	Location       string           `json:"location" validate:"max=200"`
	EmploymentType string           `json:"employment_type" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERN"`
	Status         JobPostingStatus `json:"status"`
}

func (r *CreateJobPostingRequest) Validate() error {
	if r.Status != "" && !r.Status.IsValid() {
		return fieldError("status", "unknown job posting status")
	}
	return nil
}

type UpdateJobPostingRequest struct {
	Title          *string           `json:"title" validate:"omitempty,min=1,max=200"`
	Description    *string           `json:"description" validate:"omitempty,max=10000"`
	Location       *string           `json:"location" validate:"omitempty,max=200"`
	EmploymentType *string           `json:"employment_type" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERN"`
	Status         *JobPostingStatus `json:"status"`
}

func (r *UpdateJobPostingRequest) Validate() error {
	if r.Status != nil && !r.Status.IsValid() {
		return fieldError("status", "unknown job posting status")
	}
	return nil
}

type CreateApplicationRequest struct {
	JobPostingID   uuid.UUID `json:"job_posting_id" validate:"required"`
	CandidateName  string    `json:"candidate_name" validate:"required,max=200"`
	CandidateEmail string    `json:"candidate_email" validate:"required,email"`
	ResumeURL      string    `json:"resume_url" validate:"omitempty,url"`
}

type UpdateApplicationStatusRequest struct {
	Status workflow.ApplicationStatus `json:"status" validate:"required"`
}

func (r *UpdateApplicationStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return fieldError("status", "unknown application status")
	}
	return nil
}

type ScheduleInterviewRequest struct {
	ApplicationID     uuid.UUID           `json:"application_id" validate:"required"`
	LeadInterviewerID domain.EmployeeID   `json:"lead_interviewer_id" validate:"required"`
	InterviewerIDs    []domain.EmployeeID `json:"interviewer_ids" validate:"max=10"`
	ScheduledAt       time.Time           `json:"scheduled_at" validate:"required"`
	DurationMinutes   int                 `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	Location          string              `json:"location" validate:"max=200"`
	Kind              string              `json:"kind" validate:"omitempty,oneof=PHONE VIDEO ONSITE TECHNICAL"`
}

type UpdateInterviewRequest struct {
	ScheduledAt     *time.Time                `json:"scheduled_at"`
	DurationMinutes *int                      `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	Location        *string                   `json:"location" validate:"omitempty,max=200"`
	Status          *workflow.InterviewStatus `json:"status"`
	Feedback        *string                   `json:"feedback" validate:"omitempty,max=5000"`
	Rating          *int                      `json:"rating" validate:"omitempty,min=1,max=5"`
}

func (r *UpdateInterviewRequest) Validate() error {
	if r.Status != nil && !r.Status.IsValid() {
		return fieldError("status", "unknown interview status")
	}
	return nil
}

type CreateOnboardingTaskRequest struct {
	EmployeeID  domain.EmployeeID  `json:"employee_id" validate:"required"`
	Title       string             `json:"title" validate:"required,max=200"`
	Description string             `json:"description" validate:"max=2000"`
	AssigneeID  *domain.EmployeeID `json:"assignee_id"`
	DueDate     *time.Time         `json:"due_date"`
}

func (r *CreateOnboardingTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

type UpdateOnboardingTaskRequest struct {
	Title       *string                    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string                    `json:"description" validate:"omitempty,max=2000"`
	AssigneeID  *domain.EmployeeID         `json:"assignee_id"`
	DueDate     *time.Time                 `json:"due_date"`
	Status      *workflow.OnboardingStatus `json:"status"`
}

func (r *UpdateOnboardingTaskRequest) Validate() error {
	if r.Status != nil && !r.Status.IsValid() {
		return fieldError("status", "unknown onboarding status")
	}
	return nil
}

type BulkUpdateOnboardingRequest struct {
	TaskIDs []uuid.UUID               `json:"task_ids" validate:"required,min=1,max=100,dive,required"`
	Status  workflow.OnboardingStatus `json:"status" validate:"required"`
}

func (r *BulkUpdateOnboardingRequest) Validate() error {
	if !r.Status.IsValid() {
		return fieldError("status", "unknown onboarding status")
	}
	return nil
}

type CreatePayrollRequest struct {
	EmployeeID  domain.EmployeeID `json:"employee_id" validate:"required"`
	PeriodStart time.Time         `json:"period_start" validate:"required"`
	PeriodEnd   time.Time         `json:"period_end" validate:"required"`
	BaseSalary  decimal.Decimal   `json:"base_salary"`
	Overtime    decimal.Decimal   `json:"overtime"`
	Bonus       decimal.Decimal   `json:"bonus"`
	Allowances  decimal.Decimal   `json:"allowances"`
	Deductions  decimal.Decimal   `json:"deductions"`
	Tax         decimal.Decimal   `json:"tax"`
	Currency    string            `json:"currency" validate:"omitempty,len=3,uppercase"`
	Notes       string            `json:"notes" validate:"max=2000"`
}

func (r *CreatePayrollRequest) Validate() error {
	amounts := map[string]decimal.Decimal{
		"base_salary": r.BaseSalary,
		"overtime":    r.Overtime,
		"bonus":       r.Bonus,
		"allowances":  r.Allowances,
		"deductions":  r.Deductions,
		"tax":         r.Tax,
	}
	for field, v := range amounts {
		if v.IsNegative() {
			return fieldError(field, "must not be negative")
		}
	}
	return nil
}

type UpdatePayrollRequest struct {
	PeriodStart *time.Time       `json:"period_start"`
	PeriodEnd   *time.Time       `json:"period_end"`
	BaseSalary  *decimal.Decimal `json:"base_salary"`
	Overtime    *decimal.Decimal `json:"overtime"`
	Bonus       *decimal.Decimal `json:"bonus"`
	Allowances  *decimal.Decimal `json:"allowances"`
	Deductions  *decimal.Decimal `json:"deductions"`
	Tax         *decimal.Decimal `json:"tax"`
	Currency    *string          `json:"currency" validate:"omitempty,len=3,uppercase"`
	Notes       *string          `json:"notes" validate:"omitempty,max=2000"`
}

func (r *UpdatePayrollRequest) Validate() error {
	amounts := map[string]*decimal.Decimal{
		"base_salary": r.BaseSalary,
		"overtime":    r.Overtime,
		"bonus":       r.Bonus,
		"allowances":  r.Allowances,
		"deductions":  r.Deductions,
		"tax":         r.Tax,
	}
	for field, v := range amounts {
		if v != nil && v.IsNegative() {
			return fieldError(field, "must not be negative")
		}
	}
	return nil
}

// TouchesFigures reports whether any monetary field is being changed.
func (r *UpdatePayrollRequest) TouchesFigures() bool {
	return r.BaseSalary != nil || r.Overtime != nil || r.Bonus != nil ||
		r.Allowances != nil || r.Deductions != nil || r.Tax != nil
}

type CreateDocumentRequest struct {
	EmployeeID  domain.EmployeeID `json:"employee_id" validate:"required"`
	Title       string            `json:"title" validate:"required,max=200"`
	Category    string            `json:"category" validate:"omitempty,oneof=CONTRACT ID PAYSLIP CERTIFICATE POLICY OTHER"`
	FileName    string            `json:"file_name" validate:"required,max=255"`
	ContentType string            `json:"content_type" validate:"required,max=100"`
	SizeBytes   int64             `json:"size_bytes" validate:"gte=0"`
	StorageKey  string            `json:"storage_key" validate:"required,max=500"`
}

type UpdateDocumentRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	Category *string `json:"category" validate:"omitempty,oneof=CONTRACT ID PAYSLIP CERTIFICATE POLICY OTHER"`
}

func fieldError(field, msg string) error {
	return dErrors.New(dErrors.CodeValidation, field+" "+msg).
		WithDetail("fields", map[string]string{field: msg})
}
