package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hrms/internal/hr/models"
	pgplatform "hrms/internal/platform/postgres"
	"hrms/internal/workflow"
	"hrms/pkg/domain"
	txcontext "hrms/pkg/platform/tx"
)

var payrollColumns = []string{
	"id", "employee_id", "period_start", "period_end", "base_salary", "overtime", "bonus",
	"allowances", "deductions", "tax", "gross_salary", "net_pay", "currency", "status", "notes",
	"processed_at", "paid_at", "created_at", "updated_at",
}

func (s *Store) GetPayroll(ctx context.Context, id uuid.UUID) (*models.PayrollRecord, error) {
	var p models.PayrollRecord
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &p, selectSQL("payroll_records", payrollColumns)+` WHERE id = $1`, id)
	if err != nil {
		return nil, pgplatform.Classify(err, "payroll record "+id.String())
	}
	return &p, nil
}

func (s *Store) ListPayroll(ctx context.Context, f models.PayrollFilter) ([]*models.PayrollRecord, int, error) {
	p := &predicate{}
	if !p.owners("employee_id", f.ListFilter) {
		return []*models.PayrollRecord{}, 0, nil
	}
	p.status("status", f.Status)
	if f.EmployeeID != nil {
		p.add("employee_id = $%d", *f.EmployeeID)
	}
	return list[*models.PayrollRecord](ctx, txcontext.Use(ctx, s.db), "payroll_records", payrollColumns, p,
		"period_start DESC, id", f.Limit, f.Offset)
}

func (s *Store) PeriodClaims(ctx context.Context, employeeID domain.EmployeeID) ([]workflow.PeriodClaim, error) {
	var rows []struct {
		ID          uuid.UUID `db:"id"`
		PeriodStart time.Time `db:"period_start"`
		PeriodEnd   time.Time `db:"period_end"`
	}
	err := txcontext.Use(ctx, s.db).SelectContext(ctx, &rows, `
		SELECT id, period_start, period_end
		FROM payroll_records
		WHERE employee_id = $1 AND status <> 'CANCELLED'
		ORDER BY period_start
	`, employeeID)
	if err != nil {
		return nil, pgplatform.Classify(err, "payroll period claims")
	}
	claims := make([]workflow.PeriodClaim, 0, len(rows))
	for _, r := range rows {
		claims = append(claims, workflow.PeriodClaim{
			RecordID: r.ID,
			Period:   workflow.Period{Start: r.PeriodStart, End: r.PeriodEnd},
		})
	}
	return claims, nil
}

// CreatePayroll relies on payroll_records_no_overlap; concurrent creates for
// the same employee and period leave exactly one row.
func (s *Store) CreatePayroll(ctx context.Context, p *models.PayrollRecord) error {
	return namedExec(ctx, txcontext.Use(ctx, s.db), insertSQL("payroll_records", payrollColumns), p, "insert payroll record")
}

func (s *Store) ExecutePayroll(ctx context.Context, id uuid.UUID, validate func(*models.PayrollRecord) error, mutate func(*models.PayrollRecord)) (*models.PayrollRecord, error) {
	return execute(ctx, s,
		func(ctx context.Context, q txcontext.Querier) (*models.PayrollRecord, error) {
			var p models.PayrollRecord
			err := q.GetContext(ctx, &p, selectSQL("payroll_records", payrollColumns)+` WHERE id = $1 FOR UPDATE`, id)
			if err != nil {
				return nil, pgplatform.Classify(err, "payroll record "+id.String())
			}
			return &p, nil
		},
		validate, mutate,
		func(ctx context.Context, q txcontext.Querier, p *models.PayrollRecord) error {
			return namedExec(ctx, q, updateSQL("payroll_records", payrollColumns), p, "update payroll record")
		},
	)
}

func (s *Store) DeletePayroll(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, txcontext.Use(ctx, s.db), "payroll_records", id, "payroll record "+id.String())
}
