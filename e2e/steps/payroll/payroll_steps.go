package payroll

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	Do(method, path string, body any) error
	Status() int
	EmployeeID(alias string) string
	RecordID(alias string) string
	RememberRecord(alias string) error
}

// RegisterSteps registers payroll workflow steps.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &payrollSteps{tc: tc}

	ctx.Step(`^I create payroll "([^"]*)" for "([^"]*)" from "([^"]*)" to "([^"]*)" with base salary "([^"]*)"$`, steps.createPayroll)
	ctx.Step(`^I (process|pay) payroll "([^"]*)"$`, steps.advancePayroll)
	ctx.Step(`^I delete payroll "([^"]*)"$`, steps.deletePayroll)
}

type payrollSteps struct {
	tc TestContext
}

func (s *payrollSteps) createPayroll(_ context.Context, alias, employee, from, to, base string) error {
	id := s.tc.EmployeeID(employee)
	if id == "" {
		return fmt.Errorf("unknown employee %q", employee)
	}
	err := s.tc.Do(http.MethodPost, "/payroll/", map[string]any{
		"employee_id":  id,
		"period_start": from + "T00:00:00Z",
		"period_end":   to + "T00:00:00Z",
		"base_salary":  base,
	})
	if err != nil {
		return err
	}
	if s.tc.Status() == http.StatusCreated {
		return s.tc.RememberRecord(alias)
	}
	return nil
}

func (s *payrollSteps) advancePayroll(_ context.Context, action, alias string) error {
	return s.tc.Do(http.MethodPost, "/payroll/"+s.tc.RecordID(alias)+"/"+action, nil)
}

func (s *payrollSteps) deletePayroll(_ context.Context, alias string) error {
	return s.tc.Do(http.MethodDelete, "/payroll/"+s.tc.RecordID(alias), nil)
}
