package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hrms/pkg/domain"
)

type EmployeeStatus string

const (
	EmployeeActive     EmployeeStatus = "ACTIVE"
	EmployeeOnLeave    EmployeeStatus = "ON_LEAVE"
	EmployeeTerminated EmployeeStatus = "TERMINATED"
)

func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeActive, EmployeeOnLeave, EmployeeTerminated:
		return true
	default:
		return false
	}
}

type Employee struct {
	ID           domain.EmployeeID  `json:"id" db:"id"`
	UserID       *domain.UserID     `json:"user_id,omitempty" db:"user_id"`
	FirstName    string             `json:"first_name" db:"first_name"`
	LastName     string             `json:"last_name" db:"last_name"`
	Email        string             `json:"email" db:"email"`
	Position     string             `json:"position" db:"position"`
	DepartmentID *uuid.UUID         `json:"department_id,omitempty" db:"department_id"`
	ManagerID    *domain.EmployeeID `json:"manager_id,omitempty" db:"manager_id"`
	Status       EmployeeStatus     `json:"status" db:"status"`
	Salary       decimal.Decimal    `json:"salary" db:"salary"`
	HireDate     time.Time          `json:"hire_date" db:"hire_date"`
	TerminatedAt *time.Time         `json:"terminated_at,omitempty" db:"terminated_at"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" db:"updated_at"`
}

// OwnerID is the employee itself.
func (e *Employee) OwnerID() domain.EmployeeID { return e.ID }

func (e *Employee) IsActive() bool { return e.Status == EmployeeActive }

func (e *Employee) Clone() *Employee {
	c := *e
	return &c
}

// EmployeeFilter narrows employee lists.
type EmployeeFilter struct {
	ListFilter
	DepartmentID *uuid.UUID
	ManagerID    *domain.EmployeeID
}

type Department struct {
	ID          uuid.UUID          `json:"id" db:"id"`
	Name        string             `json:"name" db:"name"`
	Description string             `json:"description" db:"description"`
	HeadID      *domain.EmployeeID `json:"head_id,omitempty" db:"head_id"`
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" db:"updated_at"`
}

func (d *Department) Clone() *Department {
	c := *d
	return &c
}

// EmployeeDependents counts the records that still reference an employee.
// Any of them turns a delete into a termination.
type EmployeeDependents struct {
	Reports         int `db:"reports"`
	Payroll         int `db:"payroll"`
	Interviews      int `db:"interviews"`
	OnboardingTasks int `db:"onboarding_tasks"`
	Documents       int `db:"documents"`
	DepartmentsLed  int `db:"departments_led"`
}

func (d EmployeeDependents) Any() bool {
	return d.Reports+d.Payroll+d.Interviews+d.OnboardingTasks+d.Documents+d.DepartmentsLed > 0
}
