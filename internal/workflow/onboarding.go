package workflow

import "time"

// StampCompletion returns the completion timestamp a task should carry after
// moving from one status to another. Entering COMPLETED sets it if absent;
// any status other than COMPLETED clears it.
func StampCompletion(to OnboardingStatus, completedAt *time.Time, now time.Time) *time.Time {
	if to != OnboardingCompleted {
		return nil
	}
	if completedAt != nil {
		return completedAt
	}
	stamped := now
	return &stamped
}
