package service

import (
	"context"
	"errors"
	"slices"
	"strings"
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

const defaultInterviewMinutes = 60

// ---------------------------------------------------------------------------
// Job postings
// ---------------------------------------------------------------------------

func (s *Service) ListJobPostings(ctx context.Context, status string, limit, offset int) (page *models.Page[*models.JobPosting], err error) {
	op, err := s.begin(ctx, models.ResourceJobPosting, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	filter := models.ScopedFilter(op.scope, status, limit, offset)
	filter.Unrestricted = true
	items, total, err := s.store.ListJobPostings(op.ctx, filter)
	if err != nil {
		return nil, storeErr(err, "job posting not found")
	}
	op.record(nil, nil, nil)
	return models.NewPage(items, total, filter), nil
}

func (s *Service) GetJobPosting(ctx context.Context, id uuid.UUID) (j *models.JobPosting, err error) {
	op, err := s.begin(ctx, models.ResourceJobPosting, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	j, err = s.store.GetJobPosting(op.ctx, id)
	if err != nil {
		return nil, jobPostingErr(err)
	}
	op.record(idPtr(j.ID), nil, nil)
	return j, nil
}

func (s *Service) CreateJobPosting(ctx context.Context, req *models.CreateJobPostingRequest) (j *models.JobPosting, err error) {
	op, err := s.begin(ctx, models.ResourceJobPosting, audit.ActionCreate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	if err = op.validate(func() error { return s.requireDepartment(op.ctx, req.DepartmentID) }); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.JobPostingDraft
	}
	ts := now(op.ctx)
	j = &models.JobPosting{
		ID:             uuid.New(),
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		DepartmentID:   req.DepartmentID,
		Location:       req.Location,
		EmploymentType: req.EmploymentType,
		Status:         status,
		CreatedBy:      op.actor.ID,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	err = op.mutate(func(ctx context.Context) error {
		return s.store.CreateJobPosting(ctx, j)
	})
	if err != nil {
		return nil, jobPostingErr(err)
	}
	op.record(idPtr(j.ID), nil, j)
	return j, nil
}

func (s *Service) UpdateJobPosting(ctx context.Context, id uuid.UUID, req *models.UpdateJobPostingRequest) (j *models.JobPosting, err error) {
	op, err := s.begin(ctx, models.ResourceJobPosting, audit.ActionUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	ts := now(op.ctx)
	var before *models.JobPosting
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		j, execErr = s.store.ExecuteJobPosting(ctx, id,
			func(cur *models.JobPosting) error {
				before = cur.Clone()
				return nil
			},
			func(cur *models.JobPosting) {
				if req.Title != nil {
					cur.Title = strings.TrimSpace(*req.Title)
				}
				if req.Description != nil {
					cur.Description = *req.Description
				}
				if req.Location != nil {
					cur.Location = *req.Location
				}
				if req.EmploymentType != nil {
					cur.EmploymentType = *req.EmploymentType
				}
				if req.Status != nil {
					cur.Status = *req.Status
				}
				cur.UpdatedAt = ts
			},
		)
		return execErr
	})
	if err != nil {
		return nil, jobPostingErr(err)
	}
	op.record(idPtr(j.ID), before, j)
	return j, nil
}

// DeleteJobPosting closes a posting that has applications and removes one
// that has none. The closed posting is returned; a removed one yields nil.
func (s *Service) DeleteJobPosting(ctx context.Context, id uuid.UUID) (j *models.JobPosting, err error) {
	op, err := s.begin(ctx, models.ResourceJobPosting, audit.ActionDelete)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	current, err := s.store.GetJobPosting(op.ctx, id)
	if err != nil {
		return nil, jobPostingErr(err)
	}
	n, err := s.store.CountApplications(op.ctx, id)
	if err != nil {
		return nil, storeErr(err, "job posting not found")
	}

	if n == 0 {
		err = op.mutate(func(ctx context.Context) error {
			return s.store.DeleteJobPosting(ctx, id)
		})
		if err != nil {
			return nil, jobPostingErr(err)
		}
		op.record(idPtr(id), current, nil)
		return nil, nil
	}

	ts := now(op.ctx)
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		j, execErr = s.store.ExecuteJobPosting(ctx, id,
			func(cur *models.JobPosting) error {
				current = cur.Clone()
				return nil
			},
			func(cur *models.JobPosting) {
				cur.Status = models.JobPostingClosed
				cur.UpdatedAt = ts
			},
		)
		return execErr
	})
	if err != nil {
		return nil, jobPostingErr(err)
	}
	op.record(idPtr(id), current, j)
	return j, nil
}

func jobPostingErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.NotFound(dErrors.ReasonJobPostingNotFound, "job posting not found")
	}
	return storeErr(err, "job posting not found")
}

// ---------------------------------------------------------------------------
// Applications
// ---------------------------------------------------------------------------

func (s *Service) ListApplications(ctx context.Context, jobPostingID *uuid.UUID, status string, limit, offset int) (page *models.Page[*models.Application], err error) {
	op, err := s.begin(ctx, models.ResourceApplication, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	filter := models.ApplicationFilter{
		ListFilter:   models.ScopedFilter(op.scope, status, limit, offset),
		JobPostingID: jobPostingID,
	}
	filter.Unrestricted = true
	items, total, err := s.store.ListApplications(op.ctx, filter)
	if err != nil {
		return nil, storeErr(err, "application not found")
	}
	op.record(nil, nil, nil)
	return models.NewPage(items, total, filter.ListFilter), nil
}

func (s *Service) GetApplication(ctx context.Context, id uuid.UUID) (a *models.Application, err error) {
	op, err := s.begin(ctx, models.ResourceApplication, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	a, err = s.store.GetApplication(op.ctx, id)
	if err != nil {
		return nil, applicationErr(err)
	}
	op.record(idPtr(a.ID), nil, nil)
	return a, nil
}

func (s *Service) CreateApplication(ctx context.Context, req *models.CreateApplicationRequest) (a *models.Application, err error) {
	op, err := s.begin(ctx, models.ResourceApplication, audit.ActionCreate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	err = op.validate(func() error {
		posting, err := s.store.GetJobPosting(op.ctx, req.JobPostingID)
		if err != nil {
			return jobPostingErr(err)
		}
		if posting.Status != models.JobPostingOpen {
			return dErrors.Rejected(dErrors.ReasonJobPostingNotOpen, "job posting is not accepting applications").
				WithDetail("status", posting.Status)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ts := now(op.ctx)
	a = &models.Application{
		ID:             uuid.New(),
		JobPostingID:   req.JobPostingID,
		CandidateName:  strings.TrimSpace(req.CandidateName),
		CandidateEmail: strings.ToLower(strings.TrimSpace(req.CandidateEmail)),
		ResumeURL:      req.ResumeURL,
		Status:         workflow.ApplicationApplied,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	err = op.mutate(func(ctx context.Context) error {
		return s.store.CreateApplication(ctx, a)
	})
	if err != nil {
		return nil, applicationErr(err)
	}
	op.record(idPtr(a.ID), nil, a)
	return a, nil
}

func (s *Service) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status workflow.ApplicationStatus) (a *models.Application, err error) {
	op, err := s.begin(ctx, models.ResourceApplication, audit.ActionUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.requireUnrestricted(); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown application status")
	}
	ts := now(op.ctx)
	var change *applicationChange
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		change, execErr = s.writeApplicationStatus(ctx, id, toStatus(status), ts)
		return execErr
	})
	if err != nil {
		return nil, applicationErr(err)
	}
	op.record(idPtr(change.after.ID), change.before, change.after)
	op.publish(applicationStatusChanged(change.before, change.after))
	return change.after, nil
}

// applicationChange is one application status write with its prior state.
type applicationChange struct {
	before *models.Application
	after  *models.Application
}

func (c *applicationChange) changed() bool {
	return c != nil && c.before.Status != c.after.Status
}

func toStatus(status workflow.ApplicationStatus) func(workflow.ApplicationStatus) workflow.ApplicationStatus {
	return func(workflow.ApplicationStatus) workflow.ApplicationStatus { return status }
}

// writeApplicationStatus moves an application to next(current) inside the
// caller's transaction. Unchanged applications are left untouched.
func (s *Service) writeApplicationStatus(ctx context.Context, id uuid.UUID, next func(workflow.ApplicationStatus) workflow.ApplicationStatus, ts time.Time) (*applicationChange, error) {
	var before *models.Application
	after, err := s.store.ExecuteApplication(ctx, id,
		func(cur *models.Application) error {
			before = cur.Clone()
			return nil
		},
		func(cur *models.Application) {
			if to := next(cur.Status); to != cur.Status {
				cur.Status = to
				cur.UpdatedAt = ts
			}
		},
	)
	if err != nil {
		return nil, applicationErr(err)
	}
	return &applicationChange{before: before, after: after}, nil
}

// recordCascade audits and announces a cascaded application change. It runs
// only after the transaction that wrote the change committed.
func (op *operation) recordCascade(c *applicationChange) {
	if !c.changed() {
		return
	}
	op.recordFor(models.ResourceApplication, audit.ActionUpdate, idPtr(c.after.ID), c.before, c.after)
	op.publish(applicationStatusChanged(c.before, c.after))
}

func applicationStatusChanged(before, after *models.Application) events.Event {
	return events.New(events.ApplicationStatusChanged, models.ResourceApplication, after.ID, map[string]any{
		"job_posting_id":  after.JobPostingID,
		"previous_status": before.Status,
		"status":          after.Status,
	})
}

func applicationErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.NotFound(dErrors.ReasonApplicationNotFound, "application not found")
	}
	return storeErr(err, "application not found")
}

// ---------------------------------------------------------------------------
// Interviews
// ---------------------------------------------------------------------------

func (s *Service) ListInterviews(ctx context.Context, applicationID *uuid.UUID, status string, limit, offset int) (page *models.Page[*models.Interview], err error) {
	op, err := s.begin(ctx, models.ResourceInterview, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	filter := models.InterviewFilter{
		ListFilter:    models.ScopedFilter(op.scope, status, limit, offset),
		ApplicationID: applicationID,
	}
	items, total, err := s.store.ListInterviews(op.ctx, filter)
	if err != nil {
		return nil, storeErr(err, "interview not found")
	}
	op.record(nil, nil, nil)
	return models.NewPage(items, total, filter.ListFilter), nil
}

func (s *Service) GetInterview(ctx context.Context, id uuid.UUID) (i *models.Interview, err error) {
	op, err := s.begin(ctx, models.ResourceInterview, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	i, err = s.store.GetInterview(op.ctx, id)
	if err != nil {
		return nil, storeErr(err, "interview not found")
	}
	if err = op.check(i.OwnerID()); err != nil {
		return nil, err
	}
	op.record(idPtr(i.ID), nil, nil)
	return i, nil
}

// ScheduleInterview creates a SCHEDULED interview and, in the same
// transaction, moves an APPLIED or UNDER_REVIEW application to INTERVIEWING.
func (s *Service) ScheduleInterview(ctx context.Context, req *models.ScheduleInterviewRequest) (i *models.Interview, err error) {
	op, err := s.begin(ctx, models.ResourceInterview, audit.ActionCreate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.check(req.LeadInterviewerID); err != nil {
		return nil, err
	}
	panel := interviewPanel(req.LeadInterviewerID, req.InterviewerIDs)
	var application *models.Application
	err = op.validate(func() error {
		var err error
		application, err = s.store.GetApplication(op.ctx, req.ApplicationID)
		if err != nil {
			return applicationErr(err)
		}
		return s.requireInterviewers(op.ctx, panel)
	})
	if err != nil {
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = defaultInterviewMinutes
	}
	ts := now(op.ctx)
	i = &models.Interview{
		ID:                uuid.New(),
		ApplicationID:     req.ApplicationID,
		LeadInterviewerID: req.LeadInterviewerID,
		InterviewerIDs:    panel,
		ScheduledAt:       req.ScheduledAt.UTC(),
		DurationMinutes:   duration,
		Location:          req.Location,
		Kind:              req.Kind,
		Status:            workflow.InterviewScheduled,
		CreatedAt:         ts,
		UpdatedAt:         ts,
	}
	var cascade *applicationChange
	err = op.mutate(func(ctx context.Context) error {
		if err := s.store.CreateInterview(ctx, i); err != nil {
			return err
		}
		var execErr error
		cascade, execErr = s.writeApplicationStatus(ctx, application.ID, startInterviewing, ts)
		return execErr
	})
	if err != nil {
		return nil, storeErr(err, "interview not found")
	}
	op.record(idPtr(i.ID), nil, i)
	op.recordCascade(cascade)

	evt := events.New(events.InterviewScheduled, models.ResourceInterview, i.ID, map[string]any{
		"application_id":  i.ApplicationID,
		"scheduled_at":    i.ScheduledAt,
		"interviewer_ids": i.InterviewerIDs,
		"location":        i.Location,
	})
	lead := i.LeadInterviewerID
	evt.OwnerID = &lead
	op.publish(evt)
	return i, nil
}

// UpdateInterview applies field changes and a status transition. Completing
// or re-rating an interview and marking it NO_SHOW cascade to the linked
// application in the same transaction; both are audited after commit.
func (s *Service) UpdateInterview(ctx context.Context, id uuid.UUID, req *models.UpdateInterviewRequest) (i *models.Interview, err error) {
	op, err := s.begin(ctx, models.ResourceInterview, audit.ActionUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	ts := now(op.ctx)
	update := workflow.InterviewResult{Feedback: req.Feedback, Rating: req.Rating}
	var before *models.Interview
	var cascade *applicationChange
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		i, execErr = s.store.ExecuteInterview(ctx, id,
			func(cur *models.Interview) error {
				if err := op.check(cur.OwnerID()); err != nil {
					return err
				}
				before = cur.Clone()
				to := cur.Status
				if req.Status != nil {
					to = *req.Status
				}
				return op.validate(func() error {
					return workflow.ValidateInterviewTransition(cur.Status, to, cur.Result().Merge(update))
				})
			},
			func(cur *models.Interview) {
				applyInterviewUpdate(cur, req, ts)
			},
		)
		if execErr != nil {
			return execErr
		}
		ratingChanged := !sameRating(before.Rating, i.Rating)
		target, ok := workflow.ApplicationCascade(before.Status, i.Status, i.Result(), ratingChanged)
		if !ok {
			return nil
		}
		cascade, execErr = s.writeApplicationStatus(ctx, i.ApplicationID, toStatus(target), ts)
		return execErr
	})
	if err != nil {
		return nil, storeErr(err, "interview not found")
	}
	op.record(idPtr(i.ID), before, i)
	op.recordCascade(cascade)
	if before.Status != i.Status {
		evt := events.New(events.InterviewStatusChanged, models.ResourceInterview, i.ID, map[string]any{
			"previous_status": before.Status,
			"status":          i.Status,
		})
		lead := i.LeadInterviewerID
		evt.OwnerID = &lead
		op.publish(evt)
	}
	return i, nil
}

// CancelInterview is the delete operation for interviews: the record is kept
// and moved to CANCELLED.
func (s *Service) CancelInterview(ctx context.Context, id uuid.UUID) (i *models.Interview, err error) {
	op, err := s.begin(ctx, models.ResourceInterview, audit.ActionDelete)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	ts := now(op.ctx)
	var before *models.Interview
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		i, execErr = s.store.ExecuteInterview(ctx, id,
			func(cur *models.Interview) error {
				if err := op.check(cur.OwnerID()); err != nil {
					return err
				}
				before = cur.Clone()
				return op.validate(func() error {
					return workflow.ValidateTransition(workflow.EntityInterview, cur.Status, workflow.InterviewCancelled)
				})
			},
			func(cur *models.Interview) {
				cur.Status = workflow.InterviewCancelled
				cur.UpdatedAt = ts
			},
		)
		return execErr
	})
	if err != nil {
		return nil, storeErr(err, "interview not found")
	}
	op.record(idPtr(i.ID), before, i)
	return i, nil
}

// startInterviewing moves early-stage applications to INTERVIEWING.
func startInterviewing(status workflow.ApplicationStatus) workflow.ApplicationStatus {
	if status == workflow.ApplicationApplied || status == workflow.ApplicationUnderReview {
		return workflow.ApplicationInterviewing
	}
	return status
}

// requireInterviewers rejects the whole panel when any id is not an active
// employee, listing every invalid id.
func (s *Service) requireInterviewers(ctx context.Context, ids []domain.EmployeeID) error {
	found, err := s.store.FindEmployees(ctx, ids)
	if err != nil {
		return storeErr(err, "employee not found")
	}
	valid := make(map[domain.EmployeeID]bool, len(found))
	for _, e := range found {
		if e.Status != models.EmployeeTerminated {
			valid[e.ID] = true
		}
	}
	var invalid []string
	for _, id := range ids {
		if !valid[id] {
			invalid = append(invalid, id.String())
		}
	}
	if len(invalid) > 0 {
		return dErrors.NotFound(dErrors.ReasonInterviewerNotFound, "one or more interviewers do not exist").
			WithDetail("invalid_interviewer_ids", invalid)
	}
	return nil
}

func applyInterviewUpdate(i *models.Interview, req *models.UpdateInterviewRequest, ts time.Time) {
	if req.ScheduledAt != nil {
		i.ScheduledAt = req.ScheduledAt.UTC()
	}
	if req.DurationMinutes != nil {
		i.DurationMinutes = *req.DurationMinutes
	}
	if req.Location != nil {
		i.Location = *req.Location
	}
	if req.Feedback != nil {
		f := *req.Feedback
		i.Feedback = &f
	}
	if req.Rating != nil {
		r := *req.Rating
		i.Rating = &r
	}
	if req.Status != nil {
		i.Status = *req.Status
	}
	i.UpdatedAt = ts
}

// interviewPanel returns the lead followed by the other interviewers with
// duplicates removed.
func interviewPanel(lead domain.EmployeeID, others []domain.EmployeeID) []domain.EmployeeID {
	panel := []domain.EmployeeID{lead}
	for _, id := range others {
		if !slices.Contains(panel, id) {
			panel = append(panel, id)
		}
	}
	return panel
}

func sameRating(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
