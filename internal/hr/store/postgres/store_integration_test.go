//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"hrms/internal/hr/models"
	hrpostgres "hrms/internal/hr/store/postgres"
	"hrms/internal/workflow"
	"hrms/pkg/domain"
	"hrms/pkg/platform/sentinel"
	"hrms/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *hrpostgres.Store
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = hrpostgres.New(s.pg.DB)
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) TearDownSuite() {
	s.pg.Close()
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx,
		"documents", "payroll_records", "onboarding_tasks", "interviews",
		"applications", "job_postings", "employees", "departments"))
}

func (s *PostgresStoreSuite) employee(manager *domain.EmployeeID) *models.Employee {
	now := time.Now().UTC().Truncate(time.Microsecond)
	e := &models.Employee{
		ID:        domain.NewEmployeeID(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     uuid.NewString() + "@example.com",
		Position:  "Engineer",
		ManagerID: manager,
		Status:    models.EmployeeActive,
		Salary:    decimal.NewFromInt(5000),
		HireDate:  time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.store.CreateEmployee(s.ctx, e))
	return e
}

func payroll(employee domain.EmployeeID, start time.Time, days int) *models.PayrollRecord {
	return &models.PayrollRecord{
		ID:          uuid.New(),
		EmployeeID:  employee,
		PeriodStart: start,
		PeriodEnd:   start.AddDate(0, 0, days),
		BaseSalary:  decimal.NewFromInt(5000),
		GrossSalary: decimal.NewFromInt(5000),
		NetPay:      decimal.NewFromInt(5000),
		Currency:    "USD",
		Status:      workflow.PayrollDraft,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func (s *PostgresStoreSuite) TestEmployeeRoundTrip() {
	boss := s.employee(nil)
	report := s.employee(&boss.ID)

	got, err := s.store.GetEmployee(s.ctx, report.ID)
	s.Require().NoError(err)
	s.Equal(boss.ID, *got.ManagerID)
	s.True(got.Salary.Equal(decimal.NewFromInt(5000)))

	reports, err := s.store.DirectReports(s.ctx, boss.ID)
	s.Require().NoError(err)
	s.Equal([]domain.EmployeeID{report.ID}, reports)

	d, err := s.store.CountEmployeeDependents(s.ctx, boss.ID)
	s.Require().NoError(err)
	s.Equal(1, d.Reports)
	s.Zero(d.Payroll)
	s.Zero(d.Interviews)

	dup := *boss
	dup.ID = domain.NewEmployeeID()
	s.ErrorIs(s.store.CreateEmployee(s.ctx, &dup), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestConcurrentOverlappingPayroll() {
	e := s.employee(nil)
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var wins, conflicts atomic.Int64
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			err := s.store.CreatePayroll(s.ctx, payroll(e.ID, jan, 14))
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, sentinel.ErrConflict):
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	s.Require().NoError(g.Wait())
	s.EqualValues(1, wins.Load())
	s.EqualValues(7, conflicts.Load())

	s.Run("adjacent period is accepted", func() {
		s.NoError(s.store.CreatePayroll(s.ctx, payroll(e.ID, jan.AddDate(0, 0, 14), 14)))
	})

	s.Run("claims list live periods", func() {
		claims, err := s.store.PeriodClaims(s.ctx, e.ID)
		s.Require().NoError(err)
		s.Len(claims, 2)
	})
}

func (s *PostgresStoreSuite) TestCancelledPayrollReleasesPeriod() {
	e := s.employee(nil)
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := payroll(e.ID, jan, 14)
	s.Require().NoError(s.store.CreatePayroll(s.ctx, p))

	_, err := s.store.ExecutePayroll(s.ctx, p.ID,
		func(*models.PayrollRecord) error { return nil },
		func(cur *models.PayrollRecord) { cur.Status = workflow.PayrollCancelled },
	)
	s.Require().NoError(err)
	s.NoError(s.store.CreatePayroll(s.ctx, payroll(e.ID, jan, 14)))
}

func (s *PostgresStoreSuite) TestOnboardingTitleUniqueness() {
	e := s.employee(nil)
	task := func(title string) *models.OnboardingTask {
		now := time.Now().UTC()
		return &models.OnboardingTask{
			ID: uuid.New(), EmployeeID: e.ID, Title: title,
			Status: workflow.OnboardingPending, CreatedAt: now, UpdatedAt: now,
		}
	}

	first := task("Laptop")
	s.Require().NoError(s.store.CreateOnboardingTask(s.ctx, first))
	s.ErrorIs(s.store.CreateOnboardingTask(s.ctx, task("laptop")), sentinel.ErrConflict)

	_, err := s.store.ExecuteOnboardingTasks(s.ctx, []uuid.UUID{first.ID},
		func(*models.OnboardingTask) error { return nil },
		func(cur *models.OnboardingTask) { cur.Status = workflow.OnboardingCancelled },
	)
	s.Require().NoError(err)
	s.NoError(s.store.CreateOnboardingTask(s.ctx, task("Laptop")))
}

func (s *PostgresStoreSuite) TestInterviewPanelRoundTrip() {
	lead := s.employee(nil)
	panelist := s.employee(nil)
	now := time.Now().UTC().Truncate(time.Microsecond)

	posting := &models.JobPosting{ID: uuid.New(), Title: "SRE", Status: models.JobPostingOpen,
		CreatedBy: domain.NewUserID(), CreatedAt: now, UpdatedAt: now}
	s.Require().NoError(s.store.CreateJobPosting(s.ctx, posting))
	app := &models.Application{ID: uuid.New(), JobPostingID: posting.ID, CandidateName: "Kim",
		CandidateEmail: "kim@example.com", Status: workflow.ApplicationApplied, CreatedAt: now, UpdatedAt: now}
	s.Require().NoError(s.store.CreateApplication(s.ctx, app))

	interview := &models.Interview{
		ID: uuid.New(), ApplicationID: app.ID, LeadInterviewerID: lead.ID,
		InterviewerIDs: []domain.EmployeeID{lead.ID, panelist.ID},
		ScheduledAt:    now, DurationMinutes: 60, Status: workflow.InterviewScheduled,
		CreatedAt: now, UpdatedAt: now,
	}
	s.Require().NoError(s.store.CreateInterview(s.ctx, interview))

	got, err := s.store.GetInterview(s.ctx, interview.ID)
	s.Require().NoError(err)
	s.Equal(interview.InterviewerIDs, got.InterviewerIDs)

	s.ErrorIs(s.store.DeleteJobPosting(s.ctx, posting.ID), sentinel.ErrConflict)
}
