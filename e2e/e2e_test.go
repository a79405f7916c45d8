package e2e

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
)

// TestFeatures runs the scenarios against HRMS_E2E_URL, e.g.
//
//	HRMS_E2E_URL=http://localhost:8080 go test ./...
func TestFeatures(t *testing.T) {
	if os.Getenv("HRMS_E2E_URL") == "" {
		t.Skip("HRMS_E2E_URL not set")
	}
	suite := godog.TestSuite{
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			RegisterSteps(ctx, NewTestContext())
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("e2e scenarios failed")
	}
}
