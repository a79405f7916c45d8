package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"hrms/internal/hr/models"
	pgplatform "hrms/internal/platform/postgres"
	"hrms/pkg/platform/sentinel"
	txcontext "hrms/pkg/platform/tx"
)

var onboardingColumns = []string{
	"id", "employee_id", "title", "description", "assignee_id", "due_date", "status",
	"completed_at", "created_at", "updated_at",
}

func (s *Store) GetOnboardingTask(ctx context.Context, id uuid.UUID) (*models.OnboardingTask, error) {
	var t models.OnboardingTask
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &t, selectSQL("onboarding_tasks", onboardingColumns)+` WHERE id = $1`, id)
	if err != nil {
		return nil, pgplatform.Classify(err, "onboarding task "+id.String())
	}
	return &t, nil
}

func (s *Store) ListOnboardingTasks(ctx context.Context, f models.ListFilter) ([]*models.OnboardingTask, int, error) {
	p := &predicate{}
	if !p.owners("employee_id", f) {
		return []*models.OnboardingTask{}, 0, nil
	}
	p.status("status", f.Status)
	return list[*models.OnboardingTask](ctx, txcontext.Use(ctx, s.db), "onboarding_tasks", onboardingColumns, p,
		"created_at DESC, id", f.Limit, f.Offset)
}

// CreateOnboardingTask relies on onboarding_tasks_title_key for duplicate
// titles.
func (s *Store) CreateOnboardingTask(ctx context.Context, t *models.OnboardingTask) error {
	return namedExec(ctx, txcontext.Use(ctx, s.db), insertSQL("onboarding_tasks", onboardingColumns), t, "insert onboarding task")
}

func (s *Store) FindOnboardingTasks(ctx context.Context, ids []uuid.UUID) ([]*models.OnboardingTask, error) {
	if len(ids) == 0 {
		return []*models.OnboardingTask{}, nil
	}
	var out []*models.OnboardingTask
	err := txcontext.Use(ctx, s.db).SelectContext(ctx, &out,
		selectSQL("onboarding_tasks", onboardingColumns)+` WHERE id = ANY($1)`, pq.Array(uuidStrings(ids)))
	if err != nil {
		return nil, pgplatform.Classify(err, "find onboarding tasks")
	}
	return out, nil
}

func (s *Store) ExecuteOnboardingTask(ctx context.Context, id uuid.UUID, validate func(*models.OnboardingTask) error, mutate func(*models.OnboardingTask)) (*models.OnboardingTask, error) {
	return execute(ctx, s,
		func(ctx context.Context, q txcontext.Querier) (*models.OnboardingTask, error) {
			var t models.OnboardingTask
			err := q.GetContext(ctx, &t, selectSQL("onboarding_tasks", onboardingColumns)+` WHERE id = $1 FOR UPDATE`, id)
			if err != nil {
				return nil, pgplatform.Classify(err, "onboarding task "+id.String())
			}
			return &t, nil
		},
		validate, mutate,
		func(ctx context.Context, q txcontext.Querier, t *models.OnboardingTask) error {
			return namedExec(ctx, q, updateSQL("onboarding_tasks", onboardingColumns), t, "update onboarding task")
		},
	)
}

// ExecuteOnboardingTasks locks every task in id order, validates them all and
// only then writes. The result follows the order of ids.
func (s *Store) ExecuteOnboardingTasks(ctx context.Context, ids []uuid.UUID, validate func(*models.OnboardingTask) error, mutate func(*models.OnboardingTask)) ([]*models.OnboardingTask, error) {
	var out []*models.OnboardingTask
	err := s.inTx(ctx, func(ctx context.Context, q txcontext.Querier) error {
		var locked []*models.OnboardingTask
		err := q.SelectContext(ctx, &locked,
			selectSQL("onboarding_tasks", onboardingColumns)+` WHERE id = ANY($1) ORDER BY id FOR UPDATE`,
			pq.Array(uuidStrings(ids)))
		if err != nil {
			return pgplatform.Classify(err, "lock onboarding tasks")
		}
		byID := make(map[uuid.UUID]*models.OnboardingTask, len(locked))
		for _, t := range locked {
			byID[t.ID] = t
		}
		staged := make([]*models.OnboardingTask, 0, len(ids))
		for _, id := range ids {
			t, ok := byID[id]
			if !ok {
				return fmt.Errorf("onboarding task %s: %w", id, sentinel.ErrNotFound)
			}
			if err := validate(t); err != nil {
				return err
			}
			staged = append(staged, t)
		}
		query := updateSQL("onboarding_tasks", onboardingColumns)
		for _, t := range staged {
			mutate(t)
			if err := namedExec(ctx, q, query, t, "update onboarding task"); err != nil {
				return err
			}
		}
		out = staged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
