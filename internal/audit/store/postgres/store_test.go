package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"

	"hrms/internal/audit"
	"hrms/pkg/domain"
	"hrms/pkg/platform/sentinel"
)

type StoreSuite struct {
	suite.Suite
	mock  sqlmock.Sqlmock
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	db, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.mock = mock
	s.store = New(sqlx.NewDb(db, "postgres"))
	s.ctx = context.Background()
}

func (s *StoreSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *StoreSuite) TestAppend() {
	resourceID := uuid.New()
	rec := &audit.Record{
		ID:           uuid.New(),
		ActorID:      domain.NewUserID(),
		Action:       audit.ActionUpdate,
		ResourceType: "payroll_record",
		ResourceID:   &resourceID,
		Before:       []byte(`{"status":"DRAFT"}`),
		After:        []byte(`{"status":"PROCESSED"}`),
		IPAddress:    "10.0.0.1",
		Timestamp:    time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}

	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO audit_logs")).
		WithArgs(rec.ID, uuid.UUID(rec.ActorID), "UPDATE", "payroll_record", resourceID,
			`{"status":"DRAFT"}`, `{"status":"PROCESSED"}`, "10.0.0.1", nil, nil, rec.Timestamp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.Require().NoError(s.store.Append(s.ctx, rec))
}

func (s *StoreSuite) TestAppendNullSnapshots() {
	rec := &audit.Record{
		ID:           uuid.New(),
		ActorID:      domain.NewUserID(),
		Action:       audit.ActionRead,
		ResourceType: "employee",
		Timestamp:    time.Now().UTC(),
	}
	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO audit_logs")).
		WithArgs(rec.ID, uuid.UUID(rec.ActorID), "READ", "employee", nil, nil, nil, nil, nil, nil, rec.Timestamp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s.Require().NoError(s.store.Append(s.ctx, rec))
}

func (s *StoreSuite) TestGetNotFound() {
	id := uuid.New()
	s.mock.ExpectQuery(regexp.QuoteMeta("FROM audit_logs WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := s.store.Get(s.ctx, id)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *StoreSuite) TestQueryBuildsFilter() {
	actor := domain.NewUserID()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	filter := audit.Filter{
		ActorID:    &actor,
		Action:     audit.ActionDelete,
		IPContains: "10.0_",
		From:       &from,
		To:         &to,
	}
	where := " WHERE actor_id = $1 AND action = $2 AND ip_address ILIKE ('%' || $3 || '%') ESCAPE '\\' AND created_at >= $4 AND created_at <= $5"

	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM audit_logs"+where)).
		WithArgs(uuid.UUID(actor), "DELETE", `10.0\_`, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	id := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "actor_id", "action", "resource_type", "resource_id", "before_snapshot",
		"after_snapshot", "ip_address", "user_agent", "request_id", "created_at",
	}).AddRow(id.String(), uuid.UUID(actor).String(), "DELETE", "document", nil, []byte(`{"a":1}`), nil, "10.0_1", nil, "req-1", from)
	s.mock.ExpectQuery(regexp.QuoteMeta(where+" ORDER BY created_at DESC, id DESC LIMIT $6 OFFSET $7")).
		WithArgs(uuid.UUID(actor), "DELETE", `10.0\_`, from, to, 20, 20).
		WillReturnRows(rows)

	records, total, err := s.store.Query(s.ctx, filter, audit.Page{Number: 2, Size: 20})
	s.Require().NoError(err)
	s.Equal(1, total)
	s.Require().Len(records, 1)
	s.Equal(id, records[0].ID)
	s.Nil(records[0].ResourceID)
	s.JSONEq(`{"a":1}`, string(records[0].Before))
	s.Nil(records[0].After)
	s.Equal("req-1", records[0].RequestID)
	s.Empty(records[0].UserAgent)
}

func (s *StoreSuite) TestDeleteBefore() {
	cutoff := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	s.mock.ExpectExec(regexp.QuoteMeta("DELETE FROM audit_logs WHERE created_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := s.store.DeleteBefore(s.ctx, cutoff)
	s.Require().NoError(err)
	s.Equal(int64(7), n)
}

func (s *StoreSuite) TestCountByAction() {
	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.mock.ExpectQuery(regexp.QuoteMeta("GROUP BY action")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"action", "count"}).
			AddRow("CREATE", 4).
			AddRow("UPDATE", 2))

	counts, err := s.store.CountByAction(s.ctx, since)
	s.Require().NoError(err)
	s.Equal(map[audit.Action]int{audit.ActionCreate: 4, audit.ActionUpdate: 2}, counts)
}
