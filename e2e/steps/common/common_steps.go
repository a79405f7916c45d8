package common

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	AuthenticateAs(role, employeeID string) error
	Logout()
	EmployeeID(alias string) string
	Status() int
	Field(name string) (any, error)
}

// RegisterSteps registers authentication and response assertion steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^I am authenticated as (ADMIN|HR)$`, steps.authenticateAsPrivileged)
	ctx.Step(`^I am authenticated as (MANAGER|EMPLOYEE) "([^"]*)"$`, steps.authenticateAsEmployee)
	ctx.Step(`^I am not authenticated$`, steps.anonymous)

	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response reason should be "([^"]*)"$`, steps.reasonShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, steps.fieldShouldBe)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) authenticateAsPrivileged(_ context.Context, role string) error {
	return s.tc.AuthenticateAs(role, "")
}

func (s *commonSteps) authenticateAsEmployee(_ context.Context, role, alias string) error {
	id := s.tc.EmployeeID(alias)
	if id == "" {
		return fmt.Errorf("unknown employee %q", alias)
	}
	return s.tc.AuthenticateAs(role, id)
}

func (s *commonSteps) anonymous(context.Context) error {
	s.tc.Logout()
	return nil
}

func (s *commonSteps) statusShouldBe(_ context.Context, want int) error {
	if got := s.tc.Status(); got != want {
		return fmt.Errorf("expected status %d, got %d", want, got)
	}
	return nil
}

func (s *commonSteps) reasonShouldBe(ctx context.Context, want string) error {
	return s.fieldShouldBe(ctx, "reason", want)
}

func (s *commonSteps) fieldShouldBe(_ context.Context, field, want string) error {
	got, err := s.tc.Field(field)
	if err != nil {
		return err
	}
	if fmt.Sprint(got) != want {
		return fmt.Errorf("expected %s=%q, got %q", field, want, fmt.Sprint(got))
	}
	return nil
}
