package workflow

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	dErrors "hrms/pkg/domain-errors"
)

type PayrollSuite struct {
	suite.Suite
}

func TestPayrollSuite(t *testing.T) {
	suite.Run(t, new(PayrollSuite))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func figures(net string) PayFigures {
	return PayFigures{
		BaseSalary:  dec("5000"),
		Overtime:    dec("200"),
		Bonus:       dec("0"),
		Allowances:  dec("0"),
		Deductions:  dec("300"),
		Tax:         dec("700"),
		GrossSalary: dec("5200"),
		NetPay:      dec(net),
	}
}

func day(d string) time.Time {
	t, err := time.Parse(time.DateOnly, d)
	if err != nil {
		panic(err)
	}
	return t
}

func (s *PayrollSuite) TestProcessReconciliation() {
	s.Run("net of 4200 reconciles", func() {
		s.NoError(ValidateProcess(PayrollDraft, figures("4200"), true))
	})

	s.Run("within tolerance", func() {
		s.NoError(ValidateProcess(PayrollDraft, figures("4200.01"), true))
	})

	for _, net := range []string{"4300", "4199.98", "0"} {
		s.Run("net "+net+" is a calculation error", func() {
			err := ValidateProcess(PayrollDraft, figures(net), true)
			s.Equal(dErrors.ReasonCalculationError, dErrors.ReasonOf(err))
			de, _ := dErrors.As(err)
			s.Equal("4200.00", de.Details["expected_net_pay"])
		})
	}

	s.Run("gross mismatch", func() {
		f := figures("4200")
		f.GrossSalary = dec("5000")
		s.Equal(dErrors.ReasonCalculationError, dErrors.ReasonOf(ValidateProcess(PayrollDraft, f, true)))
	})
}

func (s *PayrollSuite) TestProcessPreconditions() {
	s.Equal(dErrors.ReasonEmployeeInactive,
		dErrors.ReasonOf(ValidateProcess(PayrollDraft, figures("4200"), false)))
	s.Equal(dErrors.ReasonInvalidStatusTransition,
		dErrors.ReasonOf(ValidateProcess(PayrollProcessed, figures("4200"), true)))
	s.Equal(dErrors.ReasonPayrollAlreadyPaid,
		dErrors.ReasonOf(ValidateProcess(PayrollPaid, figures("4200"), true)))
}

func (s *PayrollSuite) TestPay() {
	s.NoError(ValidatePay(PayrollProcessed))
	s.Equal(dErrors.ReasonPayrollNotProcessed, dErrors.ReasonOf(ValidatePay(PayrollDraft)))
	s.Equal(dErrors.ReasonPayrollNotProcessed, dErrors.ReasonOf(ValidatePay(PayrollCancelled)))
	s.Equal(dErrors.ReasonPayrollAlreadyPaid, dErrors.ReasonOf(ValidatePay(PayrollPaid)))
}

func (s *PayrollSuite) TestModifyAndCancel() {
	s.NoError(ValidateModify(PayrollDraft))
	s.Equal(dErrors.ReasonPayrollAlreadyPaid, dErrors.ReasonOf(ValidateModify(PayrollPaid)))

	disp, err := ValidateCancel(PayrollDraft)
	s.NoError(err)
	s.Equal(HardDelete, disp)

	disp, err = ValidateCancel(PayrollProcessed)
	s.NoError(err)
	s.Equal(SoftCancel, disp)

	_, err = ValidateCancel(PayrollPaid)
	s.Equal(dErrors.ReasonPayrollAlreadyPaid, dErrors.ReasonOf(err))
}

func (s *PayrollSuite) TestRecalculate() {
	f := PayFigures{
		BaseSalary: dec("3000.50"), Overtime: dec("120.25"), Bonus: dec("50"),
		Allowances: dec("10"), Deductions: dec("80.75"), Tax: dec("400"),
	}.Recalculate()
	s.True(f.GrossSalary.Equal(dec("3180.75")))
	s.True(f.NetPay.Equal(dec("2700")))
	s.NoError(f.Reconcile())
}

func (s *PayrollSuite) TestPeriodOverlap() {
	first := Period{Start: day("2024-01-01"), End: day("2024-01-15")}
	existing := []PeriodClaim{{RecordID: uuid.New(), Period: first}}

	s.Run("overlapping period rejected", func() {
		err := CheckOverlap(Period{Start: day("2024-01-10"), End: day("2024-01-20")}, existing, uuid.Nil)
		s.Equal(dErrors.ReasonOverlappingPayPeriod, dErrors.ReasonOf(err))
		de, _ := dErrors.As(err)
		s.Equal([]string{existing[0].RecordID.String()}, de.Details["conflicting_record_ids"])
	})

	s.Run("adjacent period accepted", func() {
		s.NoError(CheckOverlap(Period{Start: day("2024-01-15"), End: day("2024-01-31")}, existing, uuid.Nil))
	})

	s.Run("enclosing period rejected", func() {
		err := CheckOverlap(Period{Start: day("2023-12-01"), End: day("2024-02-01")}, existing, uuid.Nil)
		s.Equal(dErrors.ReasonOverlappingPayPeriod, dErrors.ReasonOf(err))
	})

	s.Run("record does not conflict with itself", func() {
		s.NoError(CheckOverlap(first, existing, existing[0].RecordID))
	})

	s.Run("overlap is symmetric", func() {
		a := Period{Start: day("2024-01-10"), End: day("2024-01-20")}
		s.Equal(first.Overlaps(a), a.Overlaps(first))
	})
}

func (s *PayrollSuite) TestPeriodValidate() {
	s.NoError(Period{Start: day("2024-01-01"), End: day("2024-01-02")}.Validate())
	s.Error(Period{Start: day("2024-01-02"), End: day("2024-01-02")}.Validate())
	s.Error(Period{Start: day("2024-01-03"), End: day("2024-01-02")}.Validate())
}
