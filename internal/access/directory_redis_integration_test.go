//go:build integration

package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"hrms/pkg/domain"
	"hrms/pkg/testutil/containers"
)

type RedisDirectorySuite struct {
	suite.Suite
	redis     *containers.RedisContainer
	source    *fakeDirectory
	directory *RedisDirectory
	ctx       context.Context
}

func TestRedisDirectorySuite(t *testing.T) {
	suite.Run(t, new(RedisDirectorySuite))
}

func (s *RedisDirectorySuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.ctx = context.Background()
}

func (s *RedisDirectorySuite) TearDownSuite() {
	s.redis.Close()
}

func (s *RedisDirectorySuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(s.ctx))
	s.source = &fakeDirectory{reports: map[domain.EmployeeID][]domain.EmployeeID{}}
	s.directory = NewRedisDirectory(s.redis.Client, s.source, WithTTL(time.Minute))
}

func (s *RedisDirectorySuite) TestCachesReports() {
	manager := domain.NewEmployeeID()
	report := domain.NewEmployeeID()
	s.source.reports[manager] = []domain.EmployeeID{report}

	first, err := s.directory.DirectReports(s.ctx, manager)
	s.Require().NoError(err)
	s.Equal([]domain.EmployeeID{report}, first)

	second, err := s.directory.DirectReports(s.ctx, manager)
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Equal(1, s.source.calls, "second lookup is served from redis")
}

func (s *RedisDirectorySuite) TestCachesEmptyReports() {
	manager := domain.NewEmployeeID()

	reports, err := s.directory.DirectReports(s.ctx, manager)
	s.Require().NoError(err)
	s.Empty(reports)

	reports, err = s.directory.DirectReports(s.ctx, manager)
	s.Require().NoError(err)
	s.Empty(reports)
	s.Equal(1, s.source.calls)
}

func (s *RedisDirectorySuite) TestInvalidate() {
	manager := domain.NewEmployeeID()
	_, err := s.directory.DirectReports(s.ctx, manager)
	s.Require().NoError(err)

	added := domain.NewEmployeeID()
	s.source.reports[manager] = []domain.EmployeeID{added}
	s.Require().NoError(s.directory.Invalidate(s.ctx, manager))

	reports, err := s.directory.DirectReports(s.ctx, manager)
	s.Require().NoError(err)
	s.Equal([]domain.EmployeeID{added}, reports)
}

func (s *RedisDirectorySuite) TestSourceFailurePropagates() {
	s.source.err = errors.New("db down")
	_, err := s.directory.DirectReports(s.ctx, domain.NewEmployeeID())
	s.Require().Error(err)
}
