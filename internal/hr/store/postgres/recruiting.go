package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"hrms/internal/hr/models"
	pgplatform "hrms/internal/platform/postgres"
	"hrms/pkg/domain"
	txcontext "hrms/pkg/platform/tx"
)

var jobPostingColumns = []string{
	"id", "title", "description", "department_id", "location", "employment_type",
	"status", "created_by", "created_at", "updated_at",
}

var applicationColumns = []string{
	"id", "job_posting_id", "candidate_name", "candidate_email", "resume_url", "status",
	"created_at", "updated_at",
}

var interviewColumns = []string{
	"id", "application_id", "lead_interviewer_id", "interviewer_ids", "scheduled_at",
	"duration_minutes", "location", "kind", "status", "feedback", "rating", "created_at", "updated_at",
}

func (s *Store) GetJobPosting(ctx context.Context, id uuid.UUID) (*models.JobPosting, error) {
	var j models.JobPosting
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &j, selectSQL("job_postings", jobPostingColumns)+` WHERE id = $1`, id)
	if err != nil {
		return nil, pgplatform.Classify(err, "job posting "+id.String())
	}
	return &j, nil
}

func (s *Store) ListJobPostings(ctx context.Context, f models.ListFilter) ([]*models.JobPosting, int, error) {
	p := &predicate{}
	p.status("status", f.Status)
	return list[*models.JobPosting](ctx, txcontext.Use(ctx, s.db), "job_postings", jobPostingColumns, p,
		"created_at DESC, id", f.Limit, f.Offset)
}

func (s *Store) CreateJobPosting(ctx context.Context, j *models.JobPosting) error {
	return namedExec(ctx, txcontext.Use(ctx, s.db), insertSQL("job_postings", jobPostingColumns), j, "insert job posting")
}

func (s *Store) ExecuteJobPosting(ctx context.Context, id uuid.UUID, validate func(*models.JobPosting) error, mutate func(*models.JobPosting)) (*models.JobPosting, error) {
	return execute(ctx, s,
		func(ctx context.Context, q txcontext.Querier) (*models.JobPosting, error) {
			var j models.JobPosting
			err := q.GetContext(ctx, &j, selectSQL("job_postings", jobPostingColumns)+` WHERE id = $1 FOR UPDATE`, id)
			if err != nil {
				return nil, pgplatform.Classify(err, "job posting "+id.String())
			}
			return &j, nil
		},
		validate, mutate,
		func(ctx context.Context, q txcontext.Querier, j *models.JobPosting) error {
			return namedExec(ctx, q, updateSQL("job_postings", jobPostingColumns), j, "update job posting")
		},
	)
}

// DeleteJobPosting fails with ErrConflict while applications reference the
// posting.
func (s *Store) DeleteJobPosting(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, txcontext.Use(ctx, s.db), "job_postings", id, "job posting "+id.String())
}

func (s *Store) CountApplications(ctx context.Context, jobPostingID uuid.UUID) (int, error) {
	var n int
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &n,
		`SELECT COUNT(*) FROM applications WHERE job_posting_id = $1`, jobPostingID)
	if err != nil {
		return 0, pgplatform.Classify(err, "count applications")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Applications
// ---------------------------------------------------------------------------

func (s *Store) GetApplication(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var a models.Application
	err := txcontext.Use(ctx, s.db).GetContext(ctx, &a, selectSQL("applications", applicationColumns)+` WHERE id = $1`, id)
	if err != nil {
		return nil, pgplatform.Classify(err, "application "+id.String())
	}
	return &a, nil
}

func (s *Store) ListApplications(ctx context.Context, f models.ApplicationFilter) ([]*models.Application, int, error) {
	p := &predicate{}
	p.status("status", f.Status)
	if f.JobPostingID != nil {
		p.add("job_posting_id = $%d", *f.JobPostingID)
	}
	return list[*models.Application](ctx, txcontext.Use(ctx, s.db), "applications", applicationColumns, p,
		"created_at DESC, id", f.Limit, f.Offset)
}

// CreateApplication reports a missing posting as ErrConflict through the
// foreign key; the service checks the posting first.
func (s *Store) CreateApplication(ctx context.Context, a *models.Application) error {
	return namedExec(ctx, txcontext.Use(ctx, s.db), insertSQL("applications", applicationColumns), a, "insert application")
}

func (s *Store) ExecuteApplication(ctx context.Context, id uuid.UUID, validate func(*models.Application) error, mutate func(*models.Application)) (*models.Application, error) {
	return execute(ctx, s,
		func(ctx context.Context, q txcontext.Querier) (*models.Application, error) {
			var a models.Application
			err := q.GetContext(ctx, &a, selectSQL("applications", applicationColumns)+` WHERE id = $1 FOR UPDATE`, id)
			if err != nil {
				return nil, pgplatform.Classify(err, "application "+id.String())
			}
			return &a, nil
		},
		validate, mutate,
		func(ctx context.Context, q txcontext.Querier, a *models.Application) error {
			return namedExec(ctx, q, updateSQL("applications", applicationColumns), a, "update application")
		},
	)
}

// ---------------------------------------------------------------------------
// Interviews
// ---------------------------------------------------------------------------

// interviewRow carries the panel as a uuid[] column.
type interviewRow struct {
	models.Interview
	Panel pq.StringArray `db:"interviewer_ids"`
}

func newInterviewRow(i *models.Interview) *interviewRow {
	return &interviewRow{Interview: *i, Panel: employeeIDStrings(i.InterviewerIDs)}
}

func (r *interviewRow) toModel() (*models.Interview, error) {
	i := r.Interview
	i.InterviewerIDs = make([]domain.EmployeeID, 0, len(r.Panel))
	for _, raw := range r.Panel {
		id, err := domain.ParseEmployeeID(raw)
		if err != nil {
			return nil, fmt.Errorf("interview %s panel: %w", i.ID, err)
		}
		i.InterviewerIDs = append(i.InterviewerIDs, id)
	}
	return &i, nil
}

func (s *Store) getInterview(ctx context.Context, q txcontext.Querier, id uuid.UUID, lock bool) (*models.Interview, error) {
	query := selectSQL("interviews", interviewColumns) + ` WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	var row interviewRow
	if err := q.GetContext(ctx, &row, query, id); err != nil {
		return nil, pgplatform.Classify(err, "interview "+id.String())
	}
	return row.toModel()
}

func (s *Store) GetInterview(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	return s.getInterview(ctx, txcontext.Use(ctx, s.db), id, false)
}

func (s *Store) ListInterviews(ctx context.Context, f models.InterviewFilter) ([]*models.Interview, int, error) {
	p := &predicate{}
	if !p.owners("lead_interviewer_id", f.ListFilter) {
		return []*models.Interview{}, 0, nil
	}
	p.status("status", f.Status)
	if f.ApplicationID != nil {
		p.add("application_id = $%d", *f.ApplicationID)
	}
	rows, total, err := list[*interviewRow](ctx, txcontext.Use(ctx, s.db), "interviews", interviewColumns, p,
		"scheduled_at DESC, id", f.Limit, f.Offset)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*models.Interview, 0, len(rows))
	for _, r := range rows {
		i, err := r.toModel()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, i)
	}
	return out, total, nil
}

func (s *Store) CreateInterview(ctx context.Context, i *models.Interview) error {
	return namedExec(ctx, txcontext.Use(ctx, s.db), insertSQL("interviews", interviewColumns), newInterviewRow(i), "insert interview")
}

func (s *Store) ExecuteInterview(ctx context.Context, id uuid.UUID, validate func(*models.Interview) error, mutate func(*models.Interview)) (*models.Interview, error) {
	return execute(ctx, s,
		func(ctx context.Context, q txcontext.Querier) (*models.Interview, error) {
			return s.getInterview(ctx, q, id, true)
		},
		validate, mutate,
		func(ctx context.Context, q txcontext.Querier, i *models.Interview) error {
			return namedExec(ctx, q, updateSQL("interviews", interviewColumns), newInterviewRow(i), "update interview")
		},
	)
}
