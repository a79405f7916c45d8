package models

import (
	"time"

	"github.com/google/uuid"

	"hrms/internal/workflow"
	"hrms/pkg/domain"
)

type OnboardingTask struct {
	ID          uuid.UUID                 `json:"id" db:"id"`
	EmployeeID  domain.EmployeeID         `json:"employee_id" db:"employee_id"`
	Title       string                    `json:"title" db:"title"`
	Description string                    `json:"description" db:"description"`
	AssigneeID  *domain.EmployeeID        `json:"assignee_id,omitempty" db:"assignee_id"`
	DueDate     *time.Time                `json:"due_date,omitempty" db:"due_date"`
	Status      workflow.OnboardingStatus `json:"status" db:"status"`
	CompletedAt *time.Time                `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt   time.Time                 `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at" db:"updated_at"`
}

func (t *OnboardingTask) OwnerID() domain.EmployeeID { return t.EmployeeID }

func (t *OnboardingTask) Clone() *OnboardingTask {
	c := *t
	return &c
}

// ApplyStatus moves the task to status and keeps CompletedAt consistent.
func (t *OnboardingTask) ApplyStatus(status workflow.OnboardingStatus, now time.Time) {
	t.CompletedAt = workflow.StampCompletion(status, t.CompletedAt, now)
	t.Status = status
	t.UpdatedAt = now
}
