package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"hrms/internal/audit"
	"hrms/internal/audit/mocks"
	"hrms/internal/audit/store/memory"
	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
	"hrms/pkg/requestcontext"
)

//go:generate mockgen -source=store.go -destination=mocks/store_mock.go -package=mocks

type RecorderSuite struct {
	suite.Suite
	store    *memory.InMemoryStore
	logs     *bytes.Buffer
	recorder *audit.Recorder
	now      time.Time
	ctx      context.Context
	actor    domain.UserID
}

func TestRecorderSuite(t *testing.T) {
	suite.Run(t, new(RecorderSuite))
}

func (s *RecorderSuite) SetupTest() {
	s.store = memory.New()
	s.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(s.logs, nil))
	s.recorder = audit.NewRecorder(s.store, audit.WithLogger(logger), audit.WithTopN(2))
	s.now = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	s.actor = domain.NewUserID()

	ctx := requestcontext.WithTime(context.Background(), s.now)
	ctx = requestcontext.WithClientMetadata(ctx, "198.51.100.4", "curl/8.0")
	s.ctx = requestcontext.WithRequestID(ctx, "req-42")
}

func (s *RecorderSuite) at(t time.Time) context.Context {
	return requestcontext.WithTime(s.ctx, t)
}

func (s *RecorderSuite) warnings() int {
	return strings.Count(s.logs.String(), "level=WARN")
}

func (s *RecorderSuite) TestRecordCapturesRequestContext() {
	resourceID := uuid.New()
	s.recorder.Record(s.ctx, audit.Entry{
		ActorID:      s.actor,
		Action:       audit.ActionCreate,
		ResourceType: "employee",
		ResourceID:   &resourceID,
		After:        map[string]string{"status": "ACTIVE"},
	})

	records := s.store.All()
	s.Require().Len(records, 1)
	rec := records[0]
	s.Equal(s.actor, rec.ActorID)
	s.Equal(audit.ActionCreate, rec.Action)
	s.Equal(&resourceID, rec.ResourceID)
	s.Nil(rec.Before)
	s.JSONEq(`{"status":"ACTIVE"}`, string(rec.After))
	s.Equal("198.51.100.4", rec.IPAddress)
	s.Equal("curl/8.0", rec.UserAgent)
	s.Equal("req-42", rec.RequestID)
	s.Equal(s.now, rec.Timestamp)
	s.Zero(s.warnings())
}

func (s *RecorderSuite) TestRecordFailureIsSwallowedAndWarnedOnce() {
	ctrl := gomock.NewController(s.T())
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	logger := slog.New(slog.NewTextHandler(s.logs, nil))
	recorder := audit.NewRecorder(store, audit.WithLogger(logger))

	s.NotPanics(func() {
		recorder.Record(s.ctx, audit.Entry{ActorID: s.actor, Action: audit.ActionUpdate, ResourceType: "payroll_record"})
	})
	s.Equal(1, s.warnings())
	s.Contains(s.logs.String(), "audit write failed")
	s.Contains(s.logs.String(), "request_id=req-42")
}

func (s *RecorderSuite) TestRecordUnmarshalableSnapshotWarnsOnce() {
	s.recorder.Record(s.ctx, audit.Entry{
		ActorID: s.actor, Action: audit.ActionUpdate, ResourceType: "document",
		After: map[string]any{"bad": make(chan int)},
	})
	s.Empty(s.store.All())
	s.Equal(1, s.warnings())
}

func (s *RecorderSuite) TestQuery() {
	other := domain.NewUserID()
	for i := range 5 {
		s.recorder.Record(s.at(s.now.Add(time.Duration(i)*time.Minute)), audit.Entry{
			ActorID: s.actor, Action: audit.ActionUpdate, ResourceType: "interview",
		})
	}
	s.recorder.Record(s.ctx, audit.Entry{ActorID: other, Action: audit.ActionDelete, ResourceType: "document"})

	s.Run("newest first with pagination", func() {
		res, err := s.recorder.Query(s.ctx, audit.Filter{ActorID: &s.actor}, audit.Page{Number: 1, Size: 2})
		s.Require().NoError(err)
		s.Equal(5, res.Total)
		s.Require().Len(res.Records, 2)
		s.Equal(s.now.Add(4*time.Minute), res.Records[0].Timestamp)
		s.Equal(s.now.Add(3*time.Minute), res.Records[1].Timestamp)
	})

	s.Run("inclusive time bounds", func() {
		from, to := s.now.Add(time.Minute), s.now.Add(3*time.Minute)
		res, err := s.recorder.Query(s.ctx, audit.Filter{From: &from, To: &to}, audit.Page{})
		s.Require().NoError(err)
		s.Equal(3, res.Total)
		s.Equal(audit.DefaultPageSize, res.Limit)
	})

	s.Run("ip substring", func() {
		res, err := s.recorder.Query(s.ctx, audit.Filter{IPContains: "51.100"}, audit.Page{})
		s.Require().NoError(err)
		s.Equal(6, res.Total)
	})

	s.Run("action filter", func() {
		res, err := s.recorder.Query(s.ctx, audit.Filter{Action: audit.ActionDelete}, audit.Page{})
		s.Require().NoError(err)
		s.Equal(1, res.Total)
		s.Equal(other, res.Records[0].ActorID)
	})

	s.Run("inverted range rejected", func() {
		from, to := s.now, s.now.Add(-time.Hour)
		_, err := s.recorder.Query(s.ctx, audit.Filter{From: &from, To: &to}, audit.Page{})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *RecorderSuite) TestGet() {
	s.recorder.Record(s.ctx, audit.Entry{
		ActorID: s.actor, Action: audit.ActionUpdate, ResourceType: "onboarding_task",
		Before: map[string]string{"status": "PENDING"},
		After:  map[string]string{"status": "IN_PROGRESS"},
	})
	rec, err := s.recorder.Get(s.ctx, s.store.All()[0].ID)
	s.Require().NoError(err)

	patch, err := rec.Changes()
	s.Require().NoError(err)
	s.Require().Len(patch, 1)
	s.Equal("replace", patch[0].Type)
	s.Equal("/status", patch[0].Path)

	_, err = s.recorder.Get(s.ctx, uuid.New())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *RecorderSuite) TestSummarize() {
	busy, quiet := domain.NewUserID(), domain.NewUserID()
	for i := range 3 {
		s.recorder.Record(s.at(s.now.AddDate(0, 0, -i)), audit.Entry{ActorID: busy, Action: audit.ActionUpdate, ResourceType: "employee"})
	}
	s.recorder.Record(s.ctx, audit.Entry{ActorID: quiet, Action: audit.ActionCreate, ResourceType: "document"})
	s.recorder.Record(s.at(s.now.AddDate(0, 0, -45)), audit.Entry{ActorID: quiet, Action: audit.ActionDelete, ResourceType: "document"})

	summary, err := s.recorder.Summarize(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal(map[audit.Action]int{audit.ActionUpdate: 3, audit.ActionCreate: 1}, summary.ByAction)
	s.Len(summary.Daily, 3)
	s.Require().Len(summary.TopActors, 2)
	s.Equal(busy, summary.TopActors[0].ActorID)
	s.Equal(3, summary.TopActors[0].Count)
	s.Len(summary.TopResources, 2)
	s.Equal(s.now, summary.To)
}

func (s *RecorderSuite) TestSummarizeStoreFailure() {
	ctrl := gomock.NewController(s.T())
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().CountByAction(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).AnyTimes()
	store.EXPECT().DailyCounts(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().TopActors(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	store.EXPECT().TopResources(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := audit.NewRecorder(store).Summarize(s.ctx, time.Hour)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *RecorderSuite) TestPurge() {
	s.Run("retention is clamped", func() {
		s.Equal(30, audit.ClampRetention(29))
		s.Equal(3650, audit.ClampRetention(4000))
		s.Equal(365, audit.ClampRetention(365))

		res, err := s.recorder.Purge(s.ctx, s.actor, 29)
		s.Require().NoError(err)
		s.Equal(30, res.RetentionDays)
		s.Equal(s.now.AddDate(0, 0, -30), res.CutoffDate)

		res, err = s.recorder.Purge(s.ctx, s.actor, 4000)
		s.Require().NoError(err)
		s.Equal(3650, res.RetentionDays)
	})

	s.store.Clear()

	s.Run("deletes only records older than the cutoff", func() {
		s.recorder.Record(s.at(s.now.AddDate(-2, 0, 0)), audit.Entry{ActorID: s.actor, Action: audit.ActionRead, ResourceType: "employee"})
		s.recorder.Record(s.at(s.now.AddDate(0, 0, -10)), audit.Entry{ActorID: s.actor, Action: audit.ActionRead, ResourceType: "employee"})

		res, err := s.recorder.Purge(s.ctx, s.actor, 365)
		s.Require().NoError(err)
		s.Equal(int64(1), res.DeletedCount)
	})

	s.Run("nothing to delete reports zero", func() {
		res, err := s.recorder.Purge(s.at(s.now.Add(time.Minute)), s.actor, 365)
		s.Require().NoError(err)
		s.Equal(int64(0), res.DeletedCount)
	})

	s.Run("each purge records itself", func() {
		res, err := s.recorder.Query(s.ctx, audit.Filter{ResourceType: audit.ResourceCleanup}, audit.Page{})
		s.Require().NoError(err)
		s.Equal(2, res.Total)

		var after map[string]any
		s.Require().NoError(json.Unmarshal(res.Records[0].After, &after))
		s.Equal(float64(0), after["deletedCount"])
		s.Equal(float64(365), after["retentionDays"])
		s.Contains(after, "cutoffDate")
		s.Equal(audit.ActionDelete, res.Records[0].Action)
		s.Equal(s.actor, res.Records[0].ActorID)
	})
}

func (s *RecorderSuite) TestExport() {
	resourceID := uuid.New()
	s.recorder.Record(s.ctx, audit.Entry{
		ActorID: s.actor, Action: audit.ActionDownload, ResourceType: "document", ResourceID: &resourceID,
	})

	var buf bytes.Buffer
	n, err := s.recorder.Export(s.ctx, audit.Filter{}, &buf)
	s.Require().NoError(err)
	s.Equal(1, n)

	f, err := excelize.OpenReader(&buf)
	s.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("Audit Logs")
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("Action", rows[0][3])
	s.Equal("DOWNLOAD", rows[1][3])
	s.Equal(resourceID.String(), rows[1][5])
}
