package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"hrms/internal/audit"
	"hrms/internal/events"
	"hrms/internal/hr/models"
	"hrms/internal/workflow"
	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/platform/sentinel"
)

const defaultCurrency = "USD"

// PayrollQuery is the caller-supplied part of a payroll list.
type PayrollQuery struct {
	EmployeeID *domain.EmployeeID
	Status     string
	Limit      int
	Offset     int
}

func (s *Service) ListPayroll(ctx context.Context, q PayrollQuery) (page *models.Page[*models.PayrollRecord], err error) {
	op, err := s.begin(ctx, models.ResourcePayroll, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	filter := models.PayrollFilter{
		ListFilter: models.ScopedFilter(op.scope, q.Status, q.Limit, q.Offset),
		EmployeeID: q.EmployeeID,
	}
	items, total, err := s.store.ListPayroll(op.ctx, filter)
	if err != nil {
		return nil, storeErr(err, "payroll record not found")
	}
	op.record(nil, nil, nil)
	return models.NewPage(items, total, filter.ListFilter), nil
}

func (s *Service) GetPayroll(ctx context.Context, id uuid.UUID) (p *models.PayrollRecord, err error) {
	op, err := s.begin(ctx, models.ResourcePayroll, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	p, err = s.store.GetPayroll(op.ctx, id)
	if err != nil {
		return nil, payrollErr(err)
	}
	if err = op.check(p.OwnerID()); err != nil {
		return nil, err
	}
	op.record(idPtr(p.ID), nil, nil)
	return p, nil
}

// CreatePayroll stores a DRAFT record with gross and net derived from the
// components. The period must not overlap another live record of the
// employee.
func (s *Service) CreatePayroll(ctx context.Context, req *models.CreatePayrollRequest) (p *models.PayrollRecord, err error) {
	op, err := s.begin(ctx, models.ResourcePayroll, audit.ActionCreate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	period := workflow.Period{Start: req.PeriodStart.UTC(), End: req.PeriodEnd.UTC()}
	err = op.validate(func() error {
		if err := period.Validate(); err != nil {
			return err
		}
		if _, err := s.store.GetEmployee(op.ctx, req.EmployeeID); err != nil {
			return employeeErr(err)
		}
		claims, err := s.store.PeriodClaims(op.ctx, req.EmployeeID)
		if err != nil {
			return storeErr(err, "payroll record not found")
		}
		return workflow.CheckOverlap(period, claims, uuid.Nil)
	})
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	ts := now(op.ctx)
	p = &models.PayrollRecord{
		ID:          uuid.New(),
		EmployeeID:  req.EmployeeID,
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		Currency:    currency,
		Status:      workflow.PayrollDraft,
		Notes:       req.Notes,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	p.SetFigures(workflow.PayFigures{
		BaseSalary: req.BaseSalary,
		Overtime:   req.Overtime,
		Bonus:      req.Bonus,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
		Tax:        req.Tax,
	}.Recalculate())

	err = op.mutate(func(ctx context.Context) error {
		return s.store.CreatePayroll(ctx, p)
	})
	if err != nil {
		return nil, payrollErr(err)
	}
	op.record(idPtr(p.ID), nil, p)
	return p, nil
}

// UpdatePayroll edits a non-PAID record. Net pay is recomputed whenever a
// monetary field changes and a changed period is re-checked for overlap.
func (s *Service) UpdatePayroll(ctx context.Context, id uuid.UUID, req *models.UpdatePayrollRequest) (p *models.PayrollRecord, err error) {
	op, err := s.begin(ctx, models.ResourcePayroll, audit.ActionUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	current, err := s.store.GetPayroll(op.ctx, id)
	if err != nil {
		return nil, payrollErr(err)
	}
	claims, err := s.store.PeriodClaims(op.ctx, current.EmployeeID)
	if err != nil {
		return nil, storeErr(err, "payroll record not found")
	}

	ts := now(op.ctx)
	var before *models.PayrollRecord
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		p, execErr = s.store.ExecutePayroll(ctx, id,
			func(cur *models.PayrollRecord) error {
				if err := op.check(cur.OwnerID()); err != nil {
					return err
				}
				before = cur.Clone()
				return op.validate(func() error {
					if err := workflow.ValidateModify(cur.Status); err != nil {
						return err
					}
					period := updatedPeriod(cur, req)
					if err := period.Validate(); err != nil {
						return err
					}
					if cur.Status == workflow.PayrollCancelled {
						return nil
					}
					return workflow.CheckOverlap(period, claims, cur.ID)
				})
			},
			func(cur *models.PayrollRecord) {
				applyPayrollUpdate(cur, req, ts)
			},
		)
		return execErr
	})
	if err != nil {
		return nil, payrollErr(err)
	}
	op.record(idPtr(p.ID), before, p)
	return p, nil
}

// ProcessPayroll moves a DRAFT record to PROCESSED once its figures
// reconcile and its employee is ACTIVE.
func (s *Service) ProcessPayroll(ctx context.Context, id uuid.UUID) (p *models.PayrollRecord, err error) {
	op, err := s.begin(ctx, models.ResourcePayroll, audit.ActionUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	current, err := s.store.GetPayroll(op.ctx, id)
	if err != nil {
		return nil, payrollErr(err)
	}
	employee, err := s.store.GetEmployee(op.ctx, current.EmployeeID)
	if err != nil {
		return nil, employeeErr(err)
	}

	ts := now(op.ctx)
	var before *models.PayrollRecord
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		p, execErr = s.store.ExecutePayroll(ctx, id,
			func(cur *models.PayrollRecord) error {
				before = cur.Clone()
				return op.validate(func() error {
					return workflow.ValidateProcess(cur.Status, cur.Figures(), employee.IsActive())
				})
			},
			func(cur *models.PayrollRecord) {
				cur.Status = workflow.PayrollProcessed
				cur.ProcessedAt = &ts
				cur.UpdatedAt = ts
			},
		)
		return execErr
	})
	if err != nil {
		return nil, payrollErr(err)
	}
	op.record(idPtr(p.ID), before, p)
	op.publish(payrollEvent(events.PayrollProcessed, p))
	return p, nil
}

// PayPayroll moves a PROCESSED record to PAID.
func (s *Service) PayPayroll(ctx context.Context, id uuid.UUID) (p *models.PayrollRecord, err error) {
	op, err := s.begin(ctx, models.ResourcePayroll, audit.ActionUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	ts := now(op.ctx)
	var before *models.PayrollRecord
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		p, execErr = s.store.ExecutePayroll(ctx, id,
			func(cur *models.PayrollRecord) error {
				before = cur.Clone()
				return op.validate(func() error { return workflow.ValidatePay(cur.Status) })
			},
			func(cur *models.PayrollRecord) {
				cur.Status = workflow.PayrollPaid
				cur.PaidAt = &ts
				cur.UpdatedAt = ts
			},
		)
		return execErr
	})
	if err != nil {
		return nil, payrollErr(err)
	}
	op.record(idPtr(p.ID), before, p)
	op.publish(payrollEvent(events.PayrollPaid, p))
	return p, nil
}

// DeletePayroll removes a DRAFT record and cancels a PROCESSED one. PAID
// records cannot be deleted. The cancelled record is returned; a removed one
// yields nil.
func (s *Service) DeletePayroll(ctx context.Context, id uuid.UUID) (p *models.PayrollRecord, err error) {
	op, err := s.begin(ctx, models.ResourcePayroll, audit.ActionDelete)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	current, err := s.store.GetPayroll(op.ctx, id)
	if err != nil {
		return nil, payrollErr(err)
	}
	var disposition workflow.CancelDisposition
	err = op.validate(func() error {
		var err error
		disposition, err = workflow.ValidateCancel(current.Status)
		return err
	})
	if err != nil {
		return nil, err
	}

	if disposition == workflow.HardDelete {
		err = op.mutate(func(ctx context.Context) error {
			return s.store.DeletePayroll(ctx, id)
		})
		if err != nil {
			return nil, payrollErr(err)
		}
		op.record(idPtr(id), current, nil)
		return nil, nil
	}

	ts := now(op.ctx)
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		p, execErr = s.store.ExecutePayroll(ctx, id,
			func(cur *models.PayrollRecord) error {
				current = cur.Clone()
				_, err := workflow.ValidateCancel(cur.Status)
				return err
			},
			func(cur *models.PayrollRecord) {
				cur.Status = workflow.PayrollCancelled
				cur.UpdatedAt = ts
			},
		)
		return execErr
	})
	if err != nil {
		return nil, payrollErr(err)
	}
	op.record(idPtr(id), current, p)
	return p, nil
}

func updatedPeriod(p *models.PayrollRecord, req *models.UpdatePayrollRequest) workflow.Period {
	period := p.Period()
	if req.PeriodStart != nil {
		period.Start = req.PeriodStart.UTC()
	}
	if req.PeriodEnd != nil {
		period.End = req.PeriodEnd.UTC()
	}
	return period
}

func applyPayrollUpdate(p *models.PayrollRecord, req *models.UpdatePayrollRequest, ts time.Time) {
	period := updatedPeriod(p, req)
	p.PeriodStart, p.PeriodEnd = period.Start, period.End
	if req.TouchesFigures() {
		f := p.Figures()
		if req.BaseSalary != nil {
			f.BaseSalary = *req.BaseSalary
		}
		if req.Overtime != nil {
			f.Overtime = *req.Overtime
		}
		if req.Bonus != nil {
			f.Bonus = *req.Bonus
		}
		if req.Allowances != nil {
			f.Allowances = *req.Allowances
		}
		if req.Deductions != nil {
			f.Deductions = *req.Deductions
		}
		if req.Tax != nil {
			f.Tax = *req.Tax
		}
		p.SetFigures(f.Recalculate())
	}
	if req.Currency != nil {
		p.Currency = *req.Currency
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	p.UpdatedAt = ts
}

func payrollEvent(typ events.Type, p *models.PayrollRecord) events.Event {
	evt := events.New(typ, models.ResourcePayroll, p.ID, map[string]any{
		"period_start": p.PeriodStart,
		"period_end":   p.PeriodEnd,
		"net_pay":      p.NetPay.StringFixed(2),
		"currency":     p.Currency,
	})
	owner := p.EmployeeID
	evt.OwnerID = &owner
	return evt
}

func payrollErr(err error) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "payroll record not found")
	case errors.Is(err, sentinel.ErrConflict):
		return workflow.OverlapError()
	}
	return storeErr(err, "payroll record not found")
}
