package models

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"hrms/internal/workflow"
	"hrms/pkg/domain"
)

type JobPostingStatus string

const (
	JobPostingDraft  JobPostingStatus = "DRAFT"
	JobPostingOpen   JobPostingStatus = "OPEN"
	JobPostingClosed JobPostingStatus = "CLOSED"
)

func (s JobPostingStatus) IsValid() bool {
	switch s {
	case JobPostingDraft, JobPostingOpen, JobPostingClosed:
		return true
	default:
		return false
	}
}

type JobPosting struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	Title          string           `json:"title" db:"title"`
	Description    string           `json:"description" db:"description"`
	DepartmentID   *uuid.UUID       `json:"department_id,omitempty" db:"department_id"`
	Location       string           `json:"location" db:"location"`
	EmploymentType string           `json:"employment_type" db:"employment_type"`
	Status         JobPostingStatus `json:"status" db:"status"`
	CreatedBy      domain.UserID    `json:"created_by" db:"created_by"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

func (j *JobPosting) Clone() *JobPosting {
	c := *j
	return &c
}

type Application struct {
	ID             uuid.UUID                  `json:"id" db:"id"`
	JobPostingID   uuid.UUID                  `json:"job_posting_id" db:"job_posting_id"`
	CandidateName  string                     `json:"candidate_name" db:"candidate_name"`
	CandidateEmail string                     `json:"candidate_email" db:"candidate_email"`
	ResumeURL      string                     `json:"resume_url,omitempty" db:"resume_url"`
	Status         workflow.ApplicationStatus `json:"status" db:"status"`
	CreatedAt      time.Time                  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time                  `json:"updated_at" db:"updated_at"`
}

func (a *Application) Clone() *Application {
	c := *a
	return &c
}

// ApplicationFilter narrows application lists.
type ApplicationFilter struct {
	ListFilter
	JobPostingID *uuid.UUID
}

// Interview is owned by its lead interviewer; managers see the interviews
// led by themselves or their direct reports.
type Interview struct {
	ID                uuid.UUID                `json:"id" db:"id"`
	ApplicationID     uuid.UUID                `json:"application_id" db:"application_id"`
	LeadInterviewerID domain.EmployeeID        `json:"lead_interviewer_id" db:"lead_interviewer_id"`
	InterviewerIDs    []domain.EmployeeID      `json:"interviewer_ids" db:"-"`
	ScheduledAt       time.Time                `json:"scheduled_at" db:"scheduled_at"`
	DurationMinutes   int                      `json:"duration_minutes" db:"duration_minutes"`
	Location          string                   `json:"location" db:"location"`
	Kind              string                   `json:"kind" db:"kind"`
	Status            workflow.InterviewStatus `json:"status" db:"status"`
	Feedback          *string                  `json:"feedback,omitempty" db:"feedback"`
	Rating            *int                     `json:"rating,omitempty" db:"rating"`
	CreatedAt         time.Time                `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time                `json:"updated_at" db:"updated_at"`
}

func (i *Interview) OwnerID() domain.EmployeeID { return i.LeadInterviewerID }

func (i *Interview) Result() workflow.InterviewResult {
	return workflow.InterviewResult{Feedback: i.Feedback, Rating: i.Rating}
}

func (i *Interview) Clone() *Interview {
	c := *i
	c.InterviewerIDs = slices.Clone(i.InterviewerIDs)
	if i.Feedback != nil {
		f := *i.Feedback
		c.Feedback = &f
	}
	if i.Rating != nil {
		r := *i.Rating
		c.Rating = &r
	}
	return &c
}

// InterviewFilter narrows interview lists.
type InterviewFilter struct {
	ListFilter
	ApplicationID *uuid.UUID
}
