package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hrms/internal/workflow"
	"hrms/pkg/domain"
)

type PayrollRecord struct {
	ID          uuid.UUID              `json:"id" db:"id"`
	EmployeeID  domain.EmployeeID      `json:"employee_id" db:"employee_id"`
	PeriodStart time.Time              `json:"period_start" db:"period_start"`
	PeriodEnd   time.Time              `json:"period_end" db:"period_end"`
	BaseSalary  decimal.Decimal        `json:"base_salary" db:"base_salary"`
	Overtime    decimal.Decimal        `json:"overtime" db:"overtime"`
	Bonus       decimal.Decimal        `json:"bonus" db:"bonus"`
	Allowances  decimal.Decimal        `json:"allowances" db:"allowances"`
	Deductions  decimal.Decimal        `json:"deductions" db:"deductions"`
	Tax         decimal.Decimal        `json:"tax" db:"tax"`
	GrossSalary decimal.Decimal        `json:"gross_salary" db:"gross_salary"`
	NetPay      decimal.Decimal        `json:"net_pay" db:"net_pay"`
	Currency    string                 `json:"currency" db:"currency"`
	Status      workflow.PayrollStatus `json:"status" db:"status"`
	Notes       string                 `json:"notes,omitempty" db:"notes"`
	ProcessedAt *time.Time             `json:"processed_at,omitempty" db:"processed_at"`
	PaidAt      *time.Time             `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt   time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at" db:"updated_at"`
}

func (p *PayrollRecord) OwnerID() domain.EmployeeID { return p.EmployeeID }

func (p *PayrollRecord) Clone() *PayrollRecord {
	c := *p
	return &c
}

func (p *PayrollRecord) Period() workflow.Period {
	return workflow.Period{Start: p.PeriodStart, End: p.PeriodEnd}
}

func (p *PayrollRecord) Figures() workflow.PayFigures {
	return workflow.PayFigures{
		BaseSalary:  p.BaseSalary,
		Overtime:    p.Overtime,
		Bonus:       p.Bonus,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		Tax:         p.Tax,
		GrossSalary: p.GrossSalary,
		NetPay:      p.NetPay,
	}
}

// SetFigures copies the monetary fields back from f.
func (p *PayrollRecord) SetFigures(f workflow.PayFigures) {
	p.BaseSalary = f.BaseSalary
	p.Overtime = f.Overtime
	p.Bonus = f.Bonus
	p.Allowances = f.Allowances
	p.Deductions = f.Deductions
	p.Tax = f.Tax
	p.GrossSalary = f.GrossSalary
	p.NetPay = f.NetPay
}

// PayrollFilter narrows payroll lists.
type PayrollFilter struct {
	ListFilter
	EmployeeID *domain.EmployeeID
}

type Document struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	EmployeeID  domain.EmployeeID `json:"employee_id" db:"employee_id"`
	Title       string            `json:"title" db:"title"`
	Category    string            `json:"category" db:"category"`
	FileName    string            `json:"file_name" db:"file_name"`
	ContentType string            `json:"content_type" db:"content_type"`
	SizeBytes   int64             `json:"size_bytes" db:"size_bytes"`
	StorageKey  string            `json:"storage_key" db:"storage_key"`
	UploadedBy  domain.UserID     `json:"uploaded_by" db:"uploaded_by"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

func (d *Document) OwnerID() domain.EmployeeID { return d.EmployeeID }

func (d *Document) Clone() *Document {
	c := *d
	return &c
}
