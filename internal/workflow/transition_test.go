package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dErrors "hrms/pkg/domain-errors"
)

type TransitionSuite struct {
	suite.Suite
}

func TestTransitionSuite(t *testing.T) {
	suite.Run(t, new(TransitionSuite))
}

func (s *TransitionSuite) TestIdentityTransitionAlwaysAllowed() {
	for _, st := range InterviewStatuses {
		s.NoError(ValidateTransition(EntityInterview, st, st), st)
	}
	for _, st := range OnboardingStatuses {
		s.NoError(ValidateTransition(EntityOnboarding, st, st), st)
	}
	for _, st := range PayrollStatuses {
		s.NoError(ValidateTransition(EntityPayroll, st, st), st)
	}
}

func (s *TransitionSuite) TestInterviewTable() {
	allowed := map[InterviewStatus][]InterviewStatus{
		InterviewScheduled:   {InterviewInProgress, InterviewCancelled, InterviewRescheduled, InterviewNoShow},
		InterviewInProgress:  {InterviewCompleted, InterviewCancelled},
		InterviewCompleted:   {},
		InterviewCancelled:   {InterviewScheduled},
		InterviewRescheduled: {InterviewScheduled, InterviewCancelled},
		InterviewNoShow:      {InterviewScheduled},
	}
	assertTable(s.T(), EntityInterview, InterviewStatuses, allowed)
}

func (s *TransitionSuite) TestOnboardingTable() {
	allowed := map[OnboardingStatus][]OnboardingStatus{
		OnboardingPending:    {OnboardingInProgress, OnboardingCancelled},
		OnboardingInProgress: {OnboardingCompleted, OnboardingPending, OnboardingCancelled},
		OnboardingCompleted:  {OnboardingInProgress},
		OnboardingCancelled:  {OnboardingPending, OnboardingInProgress},
	}
	assertTable(s.T(), EntityOnboarding, OnboardingStatuses, allowed)
}

func (s *TransitionSuite) TestPayrollTable() {
	allowed := map[PayrollStatus][]PayrollStatus{
		PayrollDraft:     {PayrollProcessed, PayrollCancelled},
		PayrollProcessed: {PayrollPaid, PayrollCancelled},
		PayrollPaid:      {},
		PayrollCancelled: {},
	}
	assertTable(s.T(), EntityPayroll, PayrollStatuses, allowed)
}

func (s *TransitionSuite) TestRejectionCarriesValidNextStates() {
	err := ValidateTransition(EntityInterview, InterviewCompleted, InterviewInProgress)
	s.Require().Error(err)
	s.Equal(dErrors.ReasonInvalidStatusTransition, dErrors.ReasonOf(err))

	de, ok := dErrors.As(err)
	s.Require().True(ok)
	s.Equal("COMPLETED", de.Details["current_status"])
	s.Equal([]string{}, de.Details["valid_transitions"])

	err = ValidateTransition(EntityOnboarding, OnboardingPending, OnboardingCompleted)
	de, _ = dErrors.As(err)
	s.Equal([]string{"IN_PROGRESS", "CANCELLED"}, de.Details["valid_transitions"])
}

func (s *TransitionSuite) TestUnknownStatusRejected() {
	err := ValidateTransition(EntityInterview, InterviewScheduled, InterviewStatus("ARCHIVED"))
	s.Require().Error(err)
	s.Equal(dErrors.ReasonInvalidStatusTransition, dErrors.ReasonOf(err))
}

func assertTable[S Status[S]](t *testing.T, entity Entity, all []S, allowed map[S][]S) {
	t.Helper()
	require.Len(t, allowed, len(all), "every status needs a row")
	for _, from := range all {
		for _, to := range all {
			err := ValidateTransition(entity, from, to)
			legal := from == to
			for _, a := range allowed[from] {
				if a == to {
					legal = true
				}
			}
			if legal {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.Error(t, err, "%s -> %s", from, to)
			}
		}
	}
}
