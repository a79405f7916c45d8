package workflow

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "hrms/pkg/domain-errors"
)

type InterviewSuite struct {
	suite.Suite
}

func TestInterviewSuite(t *testing.T) {
	suite.Run(t, new(InterviewSuite))
}

func ptr[T any](v T) *T { return &v }

func (s *InterviewSuite) TestCompletionPreconditions() {
	s.Run("feedback missing", func() {
		err := ValidateInterviewTransition(InterviewInProgress, InterviewCompleted, InterviewResult{Rating: ptr(4)})
		s.Equal(dErrors.ReasonFeedbackRequired, dErrors.ReasonOf(err))
	})

	s.Run("blank feedback", func() {
		err := ValidateInterviewTransition(InterviewInProgress, InterviewCompleted,
			InterviewResult{Feedback: ptr("   "), Rating: ptr(4)})
		s.Equal(dErrors.ReasonFeedbackRequired, dErrors.ReasonOf(err))
	})

	s.Run("rating missing", func() {
		err := ValidateInterviewTransition(InterviewInProgress, InterviewCompleted,
			InterviewResult{Feedback: ptr("solid")})
		s.Equal(dErrors.ReasonRatingRequired, dErrors.ReasonOf(err))
	})

	s.Run("rating out of range", func() {
		err := ValidateInterviewTransition(InterviewInProgress, InterviewCompleted,
			InterviewResult{Feedback: ptr("solid"), Rating: ptr(6)})
		s.Equal(dErrors.ReasonRatingRequired, dErrors.ReasonOf(err))
	})

	s.Run("stored values satisfy the precondition", func() {
		stored := InterviewResult{Feedback: ptr("noted earlier"), Rating: ptr(2)}
		merged := stored.Merge(InterviewResult{})
		s.NoError(ValidateInterviewTransition(InterviewInProgress, InterviewCompleted, merged))
	})

	s.Run("table is checked before preconditions", func() {
		err := ValidateInterviewTransition(InterviewScheduled, InterviewCompleted,
			InterviewResult{Feedback: ptr("ok"), Rating: ptr(5)})
		s.Equal(dErrors.ReasonInvalidStatusTransition, dErrors.ReasonOf(err))
	})
}

func (s *InterviewSuite) TestCompletedNeverReturnsToInProgress() {
	payloads := []InterviewResult{
		{},
		{Feedback: ptr("x")},
		{Feedback: ptr("x"), Rating: ptr(5)},
	}
	for _, p := range payloads {
		err := ValidateInterviewTransition(InterviewCompleted, InterviewInProgress, p)
		s.Equal(dErrors.ReasonInvalidStatusTransition, dErrors.ReasonOf(err))
	}
}

func (s *InterviewSuite) TestApplicationCascade() {
	cases := []struct {
		name    string
		from    InterviewStatus
		to      InterviewStatus
		rating  *int
		changed bool
		want    ApplicationStatus
		applies bool
	}{
		{"passing rating", InterviewInProgress, InterviewCompleted, ptr(3), true, ApplicationUnderReview, true},
		{"top rating", InterviewInProgress, InterviewCompleted, ptr(5), true, ApplicationUnderReview, true},
		{"failing rating", InterviewInProgress, InterviewCompleted, ptr(2), true, ApplicationRejected, true},
		{"no show", InterviewScheduled, InterviewNoShow, nil, false, ApplicationRejected, true},
		{"already no show", InterviewNoShow, InterviewNoShow, nil, false, "", false},
		{"re-rated completed", InterviewCompleted, InterviewCompleted, ptr(1), true, ApplicationRejected, true},
		{"completed untouched", InterviewCompleted, InterviewCompleted, ptr(4), false, "", false},
		{"cancelled", InterviewScheduled, InterviewCancelled, nil, false, "", false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			got, ok := ApplicationCascade(tc.from, tc.to, InterviewResult{Rating: tc.rating}, tc.changed)
			s.Equal(tc.applies, ok)
			s.Equal(tc.want, got)
		})
	}
}
