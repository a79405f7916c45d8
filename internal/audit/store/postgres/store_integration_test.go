//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"hrms/internal/audit"
	"hrms/pkg/domain"
	"hrms/pkg/testutil/containers"
)

type StoreIntegrationSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *Store
	ctx   context.Context
}

func TestStoreIntegrationSuite(t *testing.T) {
	suite.Run(t, new(StoreIntegrationSuite))
}

func (s *StoreIntegrationSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = New(s.pg.DB)
	s.ctx = context.Background()
}

func (s *StoreIntegrationSuite) TearDownSuite() {
	s.pg.Close()
}

func (s *StoreIntegrationSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(s.ctx, "audit_logs"))
}

func (s *StoreIntegrationSuite) appendAt(actor domain.UserID, action audit.Action, ip string, at time.Time) *audit.Record {
	resourceID := uuid.New()
	rec := &audit.Record{
		ID:           uuid.New(),
		ActorID:      actor,
		Action:       action,
		ResourceType: "employee",
		ResourceID:   &resourceID,
		After:        []byte(`{"status":"ACTIVE"}`),
		IPAddress:    ip,
		Timestamp:    at.UTC().Truncate(time.Microsecond),
	}
	s.Require().NoError(s.store.Append(s.ctx, rec))
	return rec
}

func (s *StoreIntegrationSuite) TestRoundTripAndQuery() {
	actor := domain.NewUserID()
	now := time.Now().UTC()
	old := s.appendAt(actor, audit.ActionCreate, "192.168.1.10", now.Add(-2*time.Hour))
	recent := s.appendAt(actor, audit.ActionUpdate, "10.1.1.1", now.Add(-time.Hour))
	s.appendAt(domain.NewUserID(), audit.ActionRead, "192.168.1.11", now)

	got, err := s.store.Get(s.ctx, old.ID)
	s.Require().NoError(err)
	s.True(old.Timestamp.Equal(got.Timestamp))
	s.JSONEq(`{"status":"ACTIVE"}`, string(got.After))
	s.Nil(got.Before)

	records, total, err := s.store.Query(s.ctx, audit.Filter{ActorID: &actor}, audit.Page{Number: 1, Size: 10})
	s.Require().NoError(err)
	s.Equal(2, total)
	s.Equal([]uuid.UUID{recent.ID, old.ID}, []uuid.UUID{records[0].ID, records[1].ID})

	_, total, err = s.store.Query(s.ctx, audit.Filter{IPContains: "192.168"}, audit.Page{Number: 1, Size: 10})
	s.Require().NoError(err)
	s.Equal(2, total)

	lte := recent.Timestamp
	_, total, err = s.store.Query(s.ctx, audit.Filter{From: &old.Timestamp, To: &lte}, audit.Page{Number: 1, Size: 10})
	s.Require().NoError(err)
	s.Equal(2, total, "both bounds are inclusive")
}

func (s *StoreIntegrationSuite) TestAggregatesAndPurge() {
	actor := domain.NewUserID()
	now := time.Now().UTC()
	s.appendAt(actor, audit.ActionCreate, "", now.AddDate(0, 0, -400))
	s.appendAt(actor, audit.ActionUpdate, "", now.Add(-time.Hour))
	s.appendAt(actor, audit.ActionUpdate, "", now)

	counts, err := s.store.CountByAction(s.ctx, now.AddDate(0, 0, -30))
	s.Require().NoError(err)
	s.Equal(map[audit.Action]int{audit.ActionUpdate: 2}, counts)

	actors, err := s.store.TopActors(s.ctx, now.AddDate(0, 0, -30), 5)
	s.Require().NoError(err)
	s.Require().Len(actors, 1)
	s.Equal(2, actors[0].Count)

	daily, err := s.store.DailyCounts(s.ctx, now.AddDate(0, 0, -30))
	s.Require().NoError(err)
	s.NotEmpty(daily)

	deleted, err := s.store.DeleteBefore(s.ctx, now.AddDate(0, 0, -365))
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	deleted, err = s.store.DeleteBefore(s.ctx, now.AddDate(0, 0, -365))
	s.Require().NoError(err)
	s.Equal(int64(0), deleted)
}
