package workflow

import (
	"strings"

	dErrors "hrms/pkg/domain-errors"
)

const (
	MinRating = 1
	MaxRating = 5

	// passingRating is the lowest completion rating that keeps the linked
	// application moving forward.
	passingRating = 3
)

// InterviewResult is the feedback and rating known for an interview, merged
// from the stored record and the incoming change.
type InterviewResult struct {
	Feedback *string
	Rating   *int
}

// Merge overlays the non-nil fields of update on r.
func (r InterviewResult) Merge(update InterviewResult) InterviewResult {
	if update.Feedback != nil {
		r.Feedback = update.Feedback
	}
	if update.Rating != nil {
		r.Rating = update.Rating
	}
	return r
}

// ValidateInterviewTransition applies the interview table plus the completion
// precondition: COMPLETED needs non-blank feedback and a rating in 1..5,
// taken from the request or already stored.
func ValidateInterviewTransition(from, to InterviewStatus, result InterviewResult) error {
	if err := ValidateTransition(EntityInterview, from, to); err != nil {
		return err
	}
	if to != InterviewCompleted {
		return nil
	}
	if result.Feedback == nil || strings.TrimSpace(*result.Feedback) == "" {
		return dErrors.Rejected(dErrors.ReasonFeedbackRequired,
			"feedback is required to complete an interview")
	}
	if result.Rating == nil || *result.Rating < MinRating || *result.Rating > MaxRating {
		return dErrors.Rejected(dErrors.ReasonRatingRequired,
			"a rating between 1 and 5 is required to complete an interview")
	}
	return nil
}

// ApplicationCascade returns the status the linked application must move to
// after an interview change, and false when the application is unaffected.
//
// Entering NO_SHOW rejects the application. Completing the interview, or
// re-rating a completed one, moves it to UNDER_REVIEW for ratings of 3 and
// above and to REJECTED below that.
func ApplicationCascade(from, to InterviewStatus, result InterviewResult, ratingChanged bool) (ApplicationStatus, bool) {
	switch to {
	case InterviewNoShow:
		if from == InterviewNoShow {
			return "", false
		}
		return ApplicationRejected, true
	case InterviewCompleted:
		if from == InterviewCompleted && !ratingChanged {
			return "", false
		}
		if result.Rating == nil {
			return "", false
		}
		if *result.Rating >= passingRating {
			return ApplicationUnderReview, true
		}
		return ApplicationRejected, true
	default:
		return "", false
	}
}
