package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"hrms/pkg/domain"
	dErrors "hrms/pkg/domain-errors"
)

type fakeDirectory struct {
	reports map[domain.EmployeeID][]domain.EmployeeID
	err     error
	calls   int
}

func (f *fakeDirectory) DirectReports(_ context.Context, managerID domain.EmployeeID) ([]domain.EmployeeID, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.EmployeeID(nil), f.reports[managerID]...), nil
}

type ResolverSuite struct {
	suite.Suite
	ctx       context.Context
	directory *fakeDirectory
	resolver  *Resolver

	manager  domain.EmployeeID
	reportA  domain.EmployeeID
	reportB  domain.EmployeeID
	skipLvl  domain.EmployeeID
	stranger domain.EmployeeID
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverSuite))
}

func (s *ResolverSuite) SetupTest() {
	s.ctx = context.Background()
	s.manager = domain.NewEmployeeID()
	s.reportA = domain.NewEmployeeID()
	s.reportB = domain.NewEmployeeID()
	s.skipLvl = domain.NewEmployeeID()
	s.stranger = domain.NewEmployeeID()
	s.directory = &fakeDirectory{reports: map[domain.EmployeeID][]domain.EmployeeID{
		s.manager: {s.reportA, s.reportB},
		s.reportA: {s.skipLvl},
	}}
	s.resolver = NewResolver(s.directory)
}

func (s *ResolverSuite) actor(role domain.Role, owned *domain.EmployeeID) domain.Actor {
	return domain.Actor{ID: domain.NewUserID(), Role: role, OwnedEntityID: owned}
}

func (s *ResolverSuite) TestPrivilegedRoles() {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleHR} {
		s.Run(string(role)+" sees everything", func() {
			scope, err := s.resolver.ResolveScope(s.ctx, s.actor(role, nil))
			s.Require().NoError(err)
			s.Equal(ScopeAll, scope.Kind())
			s.True(scope.Allows(s.stranger))
			_, unrestricted := scope.OwnerIDs()
			s.True(unrestricted)
		})
	}
	s.Equal(0, s.directory.calls, "privileged roles never consult the hierarchy")
}

func (s *ResolverSuite) TestEmployee() {
	s.Run("sees only own records", func() {
		self := domain.NewEmployeeID()
		scope, err := s.resolver.ResolveScope(s.ctx, s.actor(domain.RoleEmployee, &self))
		s.Require().NoError(err)
		s.Equal(ScopeOwnedOnly, scope.Kind())
		s.True(scope.Allows(self))
		s.False(scope.Allows(s.stranger))

		ids, unrestricted := scope.OwnerIDs()
		s.False(unrestricted)
		s.Equal([]domain.EmployeeID{self}, ids)
	})

	s.Run("without employee profile is denied", func() {
		_, err := s.resolver.ResolveScope(s.ctx, s.actor(domain.RoleEmployee, nil))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		s.Equal(dErrors.ReasonAccessDenied, dErrors.ReasonOf(err))
	})
}

func (s *ResolverSuite) TestManager() {
	s.Run("sees direct reports and self only", func() {
		scope, err := s.resolver.ResolveScope(s.ctx, s.actor(domain.RoleManager, &s.manager))
		s.Require().NoError(err)
		s.Equal(ScopeOwnerSet, scope.Kind())

		ids, unrestricted := scope.OwnerIDs()
		s.False(unrestricted)
		s.ElementsMatch([]domain.EmployeeID{s.manager, s.reportA, s.reportB}, ids)

		s.True(scope.Allows(s.manager))
		s.True(scope.Allows(s.reportA))
		s.False(scope.Allows(s.skipLvl), "reports of reports are not visible")
		s.False(scope.Allows(s.stranger))
		s.False(scope.Allows(domain.EmployeeID{}))
	})

	s.Run("manager with no reports sees self", func() {
		lonely := domain.NewEmployeeID()
		scope, err := s.resolver.ResolveScope(s.ctx, s.actor(domain.RoleManager, &lonely))
		s.Require().NoError(err)
		ids, _ := scope.OwnerIDs()
		s.Equal([]domain.EmployeeID{lonely}, ids)
	})

	s.Run("hierarchy failure fails closed", func() {
		s.directory.err = errors.New("connection refused")
		defer func() { s.directory.err = nil }()

		scope, err := s.resolver.ResolveScope(s.ctx, s.actor(domain.RoleManager, &s.manager))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		s.False(scope.Allows(s.manager), "zero scope allows nothing")
	})

	s.Run("without employee profile is denied", func() {
		_, err := s.resolver.ResolveScope(s.ctx, s.actor(domain.RoleManager, nil))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})
}

func (s *ResolverSuite) TestUnknownRole() {
	_, err := s.resolver.ResolveScope(s.ctx, s.actor(domain.Role("AUDITOR"), nil))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *ResolverSuite) TestCheck() {
	scope := OwnerSet(s.reportA)
	s.NoError(Check(scope, s.reportA))
	err := Check(scope, s.stranger)
	s.Require().Error(err)
	s.Equal(dErrors.ReasonAccessDenied, dErrors.ReasonOf(err))
	s.Error(Check(Scope{}, s.reportA), "zero scope denies")
}
