package access

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	AuthenticateAs(role, employeeID string) error
	Do(method, path string, body any) error
	Status() int
	Field(name string) (any, error)
	EmployeeID(alias string) string
	RememberEmployee(alias string) error
}

// RegisterSteps registers org hierarchy and scope steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &accessSteps{tc: tc}

	ctx.Step(`^an employee "([^"]*)" exists$`, steps.employeeExists)
	ctx.Step(`^an employee "([^"]*)" reporting to "([^"]*)" exists$`, steps.employeeReportingExists)
	ctx.Step(`^I request employee "([^"]*)"$`, steps.requestEmployee)
	ctx.Step(`^I list employees$`, steps.listEmployees)
	ctx.Step(`^the list total should be (\d+)$`, steps.totalShouldBe)
}

type accessSteps struct {
	tc TestContext
}

func (s *accessSteps) employeeExists(ctx context.Context, alias string) error {
	return s.create(alias, "")
}

func (s *accessSteps) employeeReportingExists(ctx context.Context, alias, manager string) error {
	id := s.tc.EmployeeID(manager)
	if id == "" {
		return fmt.Errorf("unknown manager %q", manager)
	}
	return s.create(alias, id)
}

// create seeds an employee as HR; scenarios authenticate afterwards.
func (s *accessSteps) create(alias, managerID string) error {
	if err := s.tc.AuthenticateAs("HR", ""); err != nil {
		return err
	}
	body := map[string]any{
		"first_name": alias,
		"last_name":  "E2E",
		"email":      alias + "-" + uuid.NewString()[:8] + "@e2e.example",
		"position":   "Engineer",
		"salary":     "5000",
		"hire_date":  "2024-01-02T00:00:00Z",
	}
	if managerID != "" {
		body["manager_id"] = managerID
	}
	if err := s.tc.Do(http.MethodPost, "/employees/", body); err != nil {
		return err
	}
	if s.tc.Status() != http.StatusCreated {
		return fmt.Errorf("create employee %q: status %d", alias, s.tc.Status())
	}
	return s.tc.RememberEmployee(alias)
}

func (s *accessSteps) requestEmployee(ctx context.Context, alias string) error {
	return s.tc.Do(http.MethodGet, "/employees/"+s.tc.EmployeeID(alias), nil)
}

func (s *accessSteps) listEmployees(context.Context) error {
	return s.tc.Do(http.MethodGet, "/employees/?limit=100", nil)
}

func (s *accessSteps) totalShouldBe(_ context.Context, want int) error {
	got, err := s.tc.Field("total")
	if err != nil {
		return err
	}
	if fmt.Sprint(got) != strconv.Itoa(want) {
		return fmt.Errorf("expected total %d, got %v", want, got)
	}
	return nil
}
