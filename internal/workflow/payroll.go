package workflow

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dErrors "hrms/pkg/domain-errors"
)

// reconcileTolerance is the largest accepted gap between stored and computed
// pay figures.
var reconcileTolerance = decimal.RequireFromString("0.01")

// PayFigures holds the monetary fields of a payroll record.
type PayFigures struct {
	BaseSalary  decimal.Decimal
	Overtime    decimal.Decimal
	Bonus       decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	Tax         decimal.Decimal
	GrossSalary decimal.Decimal
	NetPay      decimal.Decimal
}

// ComputedGross is base + overtime + bonus + allowances.
func (f PayFigures) ComputedGross() decimal.Decimal {
	return f.BaseSalary.Add(f.Overtime).Add(f.Bonus).Add(f.Allowances)
}

// ComputedNet is gross - deductions - tax, using the computed gross.
func (f PayFigures) ComputedNet() decimal.Decimal {
	return f.ComputedGross().Sub(f.Deductions).Sub(f.Tax)
}

// Recalculate returns f with gross and net derived from the component fields.
func (f PayFigures) Recalculate() PayFigures {
	f.GrossSalary = f.ComputedGross()
	f.NetPay = f.ComputedNet()
	return f
}

// Reconcile verifies the stored gross and net match the component fields
// within 0.01.
func (f PayFigures) Reconcile() error {
	gross, net := f.ComputedGross(), f.ComputedNet()
	if f.GrossSalary.Sub(gross).Abs().GreaterThan(reconcileTolerance) ||
		f.NetPay.Sub(net).Abs().GreaterThan(reconcileTolerance) {
		return dErrors.Rejected(dErrors.ReasonCalculationError,
			"stored gross or net pay does not match the payroll components").
			WithDetail("expected_gross_salary", gross.StringFixed(2)).
			WithDetail("expected_net_pay", net.StringFixed(2)).
			WithDetail("gross_salary", f.GrossSalary.StringFixed(2)).
			WithDetail("net_pay", f.NetPay.StringFixed(2))
	}
	return nil
}

// ValidateProcess checks the process action: the record must be DRAFT, the
// owning employee ACTIVE and the figures must reconcile.
func ValidateProcess(status PayrollStatus, figures PayFigures, employeeActive bool) error {
	if status == PayrollPaid {
		return alreadyPaid()
	}
	if status != PayrollDraft {
		return dErrors.Rejected(dErrors.ReasonInvalidStatusTransition,
			fmt.Sprintf("cannot process a payroll record in status %s", status)).
			WithDetail("current_status", string(status)).
			WithDetail("valid_transitions", names(status.Next()))
	}
	if !employeeActive {
		return dErrors.Rejected(dErrors.ReasonEmployeeInactive,
			"payroll can only be processed for an active employee")
	}
	return figures.Reconcile()
}

// ValidatePay checks the pay action: the record must be exactly PROCESSED.
func ValidatePay(status PayrollStatus) error {
	switch status {
	case PayrollProcessed:
		return nil
	case PayrollPaid:
		return alreadyPaid()
	default:
		return dErrors.Rejected(dErrors.ReasonPayrollNotProcessed,
			"payroll must be processed before it is paid").
			WithDetail("current_status", string(status))
	}
}

// ValidateModify rejects any change to a PAID record.
func ValidateModify(status PayrollStatus) error {
	if status == PayrollPaid {
		return alreadyPaid()
	}
	return nil
}

// CancelDisposition describes how a payroll delete is carried out.
type CancelDisposition int

const (
	// HardDelete removes a DRAFT record.
	HardDelete CancelDisposition = iota
	// SoftCancel moves the record to CANCELLED.
	SoftCancel
)

// ValidateCancel decides how a payroll record is deleted. PAID records are
// terminal and cannot be deleted.
func ValidateCancel(status PayrollStatus) (CancelDisposition, error) {
	switch status {
	case PayrollDraft:
		return HardDelete, nil
	case PayrollProcessed, PayrollCancelled:
		return SoftCancel, nil
	case PayrollPaid:
		return SoftCancel, alreadyPaid()
	default:
		return SoftCancel, ValidateTransition(EntityPayroll, status, PayrollCancelled)
	}
}

func alreadyPaid() error {
	return dErrors.Rejected(dErrors.ReasonPayrollAlreadyPaid, "paid payroll records cannot be modified")
}

// Period is a half-open pay period [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}

// Validate rejects empty or inverted periods.
func (p Period) Validate() error {
	if !p.End.After(p.Start) {
		return dErrors.New(dErrors.CodeValidation, "pay period end must be after its start")
	}
	return nil
}

// Overlaps reports whether two half-open periods share any instant.
// Adjacent periods, where one ends exactly when the other starts, do not.
func (p Period) Overlaps(q Period) bool {
	return p.Start.Before(q.End) && q.Start.Before(p.End)
}

// PeriodClaim is an existing non-cancelled pay period of an employee.
type PeriodClaim struct {
	RecordID uuid.UUID
	Period   Period
}

// CheckOverlap rejects candidate when it overlaps any existing claim. The
// record being updated, if any, is excluded via self.
func CheckOverlap(candidate Period, existing []PeriodClaim, self uuid.UUID) error {
	var conflicts []string
	for _, claim := range existing {
		if claim.RecordID == self {
			continue
		}
		if candidate.Overlaps(claim.Period) {
			conflicts = append(conflicts, claim.RecordID.String())
		}
	}
	if len(conflicts) == 0 {
		return nil
	}
	return OverlapError(conflicts...)
}

// OverlapError builds the OVERLAPPING_PAY_PERIOD rejection.
func OverlapError(conflictingIDs ...string) error {
	err := dErrors.Rejected(dErrors.ReasonOverlappingPayPeriod,
		"pay period overlaps an existing payroll record for this employee")
	if len(conflictingIDs) > 0 {
		err = err.WithDetail("conflicting_record_ids", conflictingIDs)
	}
	return err
}
