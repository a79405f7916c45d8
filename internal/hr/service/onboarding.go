package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"hrms/internal/audit"
	"hrms/internal/events"
	"hrms/internal/hr/models"
	"hrms/internal/workflow"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/platform/sentinel"
)

func (s *Service) ListOnboardingTasks(ctx context.Context, status string, limit, offset int) (page *models.Page[*models.OnboardingTask], err error) {
	op, err := s.begin(ctx, models.ResourceOnboarding, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	filter := models.ScopedFilter(op.scope, status, limit, offset)
	items, total, err := s.store.ListOnboardingTasks(op.ctx, filter)
	if err != nil {
		return nil, storeErr(err, "onboarding task not found")
	}
	op.record(nil, nil, nil)
	return models.NewPage(items, total, filter), nil
}

func (s *Service) GetOnboardingTask(ctx context.Context, id uuid.UUID) (t *models.OnboardingTask, err error) {
	op, err := s.begin(ctx, models.ResourceOnboarding, audit.ActionRead)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	t, err = s.store.GetOnboardingTask(op.ctx, id)
	if err != nil {
		return nil, onboardingErr(err)
	}
	if err = op.check(t.OwnerID()); err != nil {
		return nil, err
	}
	op.record(idPtr(t.ID), nil, nil)
	return t, nil
}

// CreateOnboardingTask adds a PENDING task. The store rejects a second
// non-cancelled task with the same title for the same employee.
func (s *Service) CreateOnboardingTask(ctx context.Context, req *models.CreateOnboardingTaskRequest) (t *models.OnboardingTask, err error) {
	op, err := s.begin(ctx, models.ResourceOnboarding, audit.ActionCreate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.check(req.EmployeeID); err != nil {
		return nil, err
	}
	req.Normalize()
	err = op.validate(func() error {
		if _, err := s.store.GetEmployee(op.ctx, req.EmployeeID); err != nil {
			return employeeErr(err)
		}
		return s.requireEmployee(op.ctx, req.AssigneeID)
	})
	if err != nil {
		return nil, err
	}

	ts := now(op.ctx)
	t = &models.OnboardingTask{
		ID:          uuid.New(),
		EmployeeID:  req.EmployeeID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		Status:      workflow.OnboardingPending,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	err = op.mutate(func(ctx context.Context) error {
		return s.store.CreateOnboardingTask(ctx, t)
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, duplicateTask(req.Title)
		}
		return nil, onboardingErr(err)
	}
	op.record(idPtr(t.ID), nil, t)
	return t, nil
}

func (s *Service) UpdateOnboardingTask(ctx context.Context, id uuid.UUID, req *models.UpdateOnboardingTaskRequest) (t *models.OnboardingTask, err error) {
	op, err := s.begin(ctx, models.ResourceOnboarding, audit.ActionUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	if err = op.validate(func() error { return s.requireEmployee(op.ctx, req.AssigneeID) }); err != nil {
		return nil, err
	}

	ts := now(op.ctx)
	var before *models.OnboardingTask
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		t, execErr = s.store.ExecuteOnboardingTask(ctx, id,
			func(cur *models.OnboardingTask) error {
				if err := op.check(cur.OwnerID()); err != nil {
					return err
				}
				before = cur.Clone()
				if req.Status == nil {
					return nil
				}
				return op.validate(func() error {
					return workflow.ValidateTransition(workflow.EntityOnboarding, cur.Status, *req.Status)
				})
			},
			func(cur *models.OnboardingTask) {
				if req.Title != nil {
					cur.Title = strings.TrimSpace(*req.Title)
				}
				if req.Description != nil {
					cur.Description = *req.Description
				}
				if req.AssigneeID != nil {
					cur.AssigneeID = req.AssigneeID
				}
				if req.DueDate != nil {
					cur.DueDate = req.DueDate
				}
				status := cur.Status
				if req.Status != nil {
					status = *req.Status
				}
				cur.ApplyStatus(status, ts)
			},
		)
		return execErr
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) && !errors.Is(err, sentinel.ErrInUse) && before != nil {
			title := before.Title
			if req.Title != nil {
				title = strings.TrimSpace(*req.Title)
			}
			return nil, duplicateTask(title)
		}
		return nil, onboardingErr(err)
	}
	op.record(idPtr(t.ID), before, t)
	s.announceCompletion(op, before, t)
	return t, nil
}

// BulkUpdateOnboardingTasks moves every listed task to status, or none of
// them. Missing ids are reported together.
func (s *Service) BulkUpdateOnboardingTasks(ctx context.Context, req *models.BulkUpdateOnboardingRequest) (tasks []*models.OnboardingTask, err error) {
	op, err := s.begin(ctx, models.ResourceOnboarding, audit.ActionBulkUpdate)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	ids := uniqueIDs(req.TaskIDs)
	err = op.validate(func() error {
		found, err := s.store.FindOnboardingTasks(op.ctx, ids)
		if err != nil {
			return storeErr(err, "onboarding task not found")
		}
		present := make(map[uuid.UUID]bool, len(found))
		for _, t := range found {
			present[t.ID] = true
		}
		var missing []string
		for _, id := range ids {
			if !present[id] {
				missing = append(missing, id.String())
			}
		}
		if len(missing) > 0 {
			return dErrors.NotFound(dErrors.ReasonTaskNotFound, "one or more onboarding tasks do not exist").
				WithDetail("missing_task_ids", missing)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ts := now(op.ctx)
	befores := make([]*models.OnboardingTask, 0, len(ids))
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		tasks, execErr = s.store.ExecuteOnboardingTasks(ctx, ids,
			func(cur *models.OnboardingTask) error {
				if err := op.check(cur.OwnerID()); err != nil {
					return err
				}
				befores = append(befores, cur.Clone())
				err := workflow.ValidateTransition(workflow.EntityOnboarding, cur.Status, req.Status)
				if de, ok := dErrors.As(err); ok {
					return de.WithDetail("task_id", cur.ID.String())
				}
				return err
			},
			func(cur *models.OnboardingTask) {
				cur.ApplyStatus(req.Status, ts)
			},
		)
		return execErr
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.NotFound(dErrors.ReasonTaskNotFound, "one or more onboarding tasks do not exist")
		}
		return nil, storeErr(err, "onboarding task not found")
	}
	op.record(nil, befores, tasks)
	byID := make(map[uuid.UUID]*models.OnboardingTask, len(befores))
	for _, b := range befores {
		byID[b.ID] = b
	}
	for _, t := range tasks {
		s.announceCompletion(op, byID[t.ID], t)
	}
	return tasks, nil
}

// CancelOnboardingTask is the delete operation for onboarding tasks.
func (s *Service) CancelOnboardingTask(ctx context.Context, id uuid.UUID) (t *models.OnboardingTask, err error) {
	op, err := s.begin(ctx, models.ResourceOnboarding, audit.ActionDelete)
	if err != nil {
		return nil, err
	}
	defer func() { op.end(err) }()

	ts := now(op.ctx)
	var before *models.OnboardingTask
	err = op.mutate(func(ctx context.Context) error {
		var execErr error
		t, execErr = s.store.ExecuteOnboardingTask(ctx, id,
			func(cur *models.OnboardingTask) error {
				if err := op.check(cur.OwnerID()); err != nil {
					return err
				}
				before = cur.Clone()
				return op.validate(func() error {
					return workflow.ValidateTransition(workflow.EntityOnboarding, cur.Status, workflow.OnboardingCancelled)
				})
			},
			func(cur *models.OnboardingTask) {
				cur.ApplyStatus(workflow.OnboardingCancelled, ts)
			},
		)
		return execErr
	})
	if err != nil {
		return nil, onboardingErr(err)
	}
	op.record(idPtr(t.ID), before, t)
	return t, nil
}

func (s *Service) announceCompletion(op *operation, before, after *models.OnboardingTask) {
	if after.Status != workflow.OnboardingCompleted || (before != nil && before.Status == workflow.OnboardingCompleted) {
		return
	}
	evt := events.New(events.OnboardingTaskCompleted, models.ResourceOnboarding, after.ID, map[string]any{
		"title":        after.Title,
		"completed_at": after.CompletedAt,
	})
	owner := after.EmployeeID
	evt.OwnerID = &owner
	op.publish(evt)
}

func duplicateTask(title string) error {
	return dErrors.Rejected(dErrors.ReasonDuplicateTask, "an onboarding task with this title already exists for the employee").
		WithDetail("title", title)
}

func onboardingErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.NotFound(dErrors.ReasonTaskNotFound, "onboarding task not found")
	}
	return storeErr(err, "onboarding task not found")
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
