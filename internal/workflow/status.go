// Package workflow validates status transitions for governed HR records.
//
// Transition tables are fixed per entity type. Every status type exposes Next,
// an exhaustive switch over its values, so adding a status forces a review of
// the table it belongs to.
package workflow

// Entity names a record type governed by a transition table.
type Entity string

const (
	EntityInterview  Entity = "interview"
	EntityOnboarding Entity = "onboarding_task"
	EntityPayroll    Entity = "payroll_record"
)

type InterviewStatus string

const (
	InterviewScheduled   InterviewStatus = "SCHEDULED"
	InterviewInProgress  InterviewStatus = "IN_PROGRESS"
	InterviewCompleted   InterviewStatus = "COMPLETED"
	InterviewCancelled   InterviewStatus = "CANCELLED"
	InterviewRescheduled InterviewStatus = "RESCHEDULED"
	InterviewNoShow      InterviewStatus = "NO_SHOW"
)

// InterviewStatuses lists every interview status in table order.
var InterviewStatuses = []InterviewStatus{
	InterviewScheduled, InterviewInProgress, InterviewCompleted,
	InterviewCancelled, InterviewRescheduled, InterviewNoShow,
}

func (s InterviewStatus) Next() []InterviewStatus {
	switch s {
	case InterviewScheduled:
		return []InterviewStatus{InterviewInProgress, InterviewCancelled, InterviewRescheduled, InterviewNoShow}
	case InterviewInProgress:
		return []InterviewStatus{InterviewCompleted, InterviewCancelled}
	case InterviewCompleted:
		return []InterviewStatus{}
	case InterviewCancelled:
		return []InterviewStatus{InterviewScheduled}
	case InterviewRescheduled:
		return []InterviewStatus{InterviewScheduled, InterviewCancelled}
	case InterviewNoShow:
		return []InterviewStatus{InterviewScheduled}
	default:
		return []InterviewStatus{}
	}
}

func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewScheduled, InterviewInProgress, InterviewCompleted,
		InterviewCancelled, InterviewRescheduled, InterviewNoShow:
		return true
	default:
		return false
	}
}

type OnboardingStatus string

const (
	OnboardingPending    OnboardingStatus = "PENDING"
	OnboardingInProgress OnboardingStatus = "IN_PROGRESS"
	OnboardingCompleted  OnboardingStatus = "COMPLETED"
	OnboardingCancelled  OnboardingStatus = "CANCELLED"
)

var OnboardingStatuses = []OnboardingStatus{
	OnboardingPending, OnboardingInProgress, OnboardingCompleted, OnboardingCancelled,
}

func (s OnboardingStatus) Next() []OnboardingStatus {
	switch s {
	case OnboardingPending:
		return []OnboardingStatus{OnboardingInProgress, OnboardingCancelled}
	case OnboardingInProgress:
		return []OnboardingStatus{OnboardingCompleted, OnboardingPending, OnboardingCancelled}
	case OnboardingCompleted:
		return []OnboardingStatus{OnboardingInProgress}
	case OnboardingCancelled:
		return []OnboardingStatus{OnboardingPending, OnboardingInProgress}
	default:
		return []OnboardingStatus{}
	}
}

func (s OnboardingStatus) IsValid() bool {
	switch s {
	case OnboardingPending, OnboardingInProgress, OnboardingCompleted, OnboardingCancelled:
		return true
	default:
		return false
	}
}

type PayrollStatus string

const (
	PayrollDraft     PayrollStatus = "DRAFT"
	PayrollProcessed PayrollStatus = "PROCESSED"
	PayrollPaid      PayrollStatus = "PAID"
	PayrollCancelled PayrollStatus = "CANCELLED"
)

var PayrollStatuses = []PayrollStatus{
	PayrollDraft, PayrollProcessed, PayrollPaid, PayrollCancelled,
}

// Next lists the statuses reachable through the process, pay and delete
// actions. Payroll status is never set directly by an update.
func (s PayrollStatus) Next() []PayrollStatus {
	switch s {
	case PayrollDraft:
		return []PayrollStatus{PayrollProcessed, PayrollCancelled}
	case PayrollProcessed:
		return []PayrollStatus{PayrollPaid, PayrollCancelled}
	case PayrollPaid:
		return []PayrollStatus{}
	case PayrollCancelled:
		return []PayrollStatus{}
	default:
		return []PayrollStatus{}
	}
}

func (s PayrollStatus) IsValid() bool {
	switch s {
	case PayrollDraft, PayrollProcessed, PayrollPaid, PayrollCancelled:
		return true
	default:
		return false
	}
}

// ApplicationStatus is the status of a job application. It has no table of
// its own; it moves as a side effect of interview transitions.
type ApplicationStatus string

const (
	ApplicationApplied      ApplicationStatus = "APPLIED"
	ApplicationUnderReview  ApplicationStatus = "UNDER_REVIEW"
	ApplicationInterviewing ApplicationStatus = "INTERVIEWING"
	ApplicationRejected     ApplicationStatus = "REJECTED"
	ApplicationHired        ApplicationStatus = "HIRED"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationApplied, ApplicationUnderReview, ApplicationInterviewing,
		ApplicationRejected, ApplicationHired:
		return true
	default:
		return false
	}
}
