// Package e2e drives a running hrms server through Gherkin scenarios.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hrms/e2e/steps/access"
	"hrms/e2e/steps/common"
	"hrms/e2e/steps/payroll"
)

// TestContext holds the state of one scenario: the current caller and the
// last response.
type TestContext struct {
	BaseURL   string
	Secret    string
	client    *http.Client
	token     string
	status    int
	body      []byte
	Employees map[string]string
	Records   map[string]string
}

func NewTestContext() *TestContext {
	base := os.Getenv("HRMS_E2E_URL")
	secret := os.Getenv("HRMS_SERVER_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-key-change-in-production"
	}
	return &TestContext{
		BaseURL:   strings.TrimRight(base, "/"),
		Secret:    secret,
		client:    &http.Client{Timeout: 10 * time.Second},
		Employees: map[string]string{},
		Records:   map[string]string{},
	}
}

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		return c, nil
	})
	common.RegisterSteps(ctx, tc)
	access.RegisterSteps(ctx, tc)
	payroll.RegisterSteps(ctx, tc)
}

func (tc *TestContext) reset() {
	tc.token, tc.status, tc.body = "", 0, nil
	tc.Employees = map[string]string{}
	tc.Records = map[string]string{}
}

// AuthenticateAs signs a token the way the identity provider would.
func (tc *TestContext) AuthenticateAs(role, employeeID string) error {
	claims := jwt.MapClaims{
		"user_id": uuid.NewString(),
		"role":    role,
		"iss":     "hrms",
		"aud":     []string{"hrms-api"},
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(10 * time.Minute).Unix(),
	}
	if employeeID != "" {
		claims["employee_id"] = employeeID
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(tc.Secret))
	if err != nil {
		return err
	}
	tc.token = token
	return nil
}

// Logout drops the bearer token so the next request is anonymous.
func (tc *TestContext) Logout() { tc.token = "" }

func (tc *TestContext) Do(method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, tc.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tc.token != "" {
		req.Header.Set("Authorization", "Bearer "+tc.token)
	}
	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	tc.status = resp.StatusCode
	tc.body, err = io.ReadAll(resp.Body)
	return err
}

func (tc *TestContext) Status() int { return tc.status }

// Field reads a top-level field of the last JSON response.
func (tc *TestContext) Field(name string) (any, error) {
	var m map[string]any
	if err := json.Unmarshal(tc.body, &m); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %s", tc.body)
	}
	v, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("field %q missing in %s", name, tc.body)
	}
	return v, nil
}

func (tc *TestContext) Remember(kind map[string]string, alias string) error {
	id, err := tc.Field("id")
	if err != nil {
		return err
	}
	kind[alias] = fmt.Sprint(id)
	return nil
}

func (tc *TestContext) EmployeeID(alias string) string { return tc.Employees[alias] }
func (tc *TestContext) RememberEmployee(alias string) error {
	return tc.Remember(tc.Employees, alias)
}
func (tc *TestContext) RecordID(alias string) string { return tc.Records[alias] }
func (tc *TestContext) RememberRecord(alias string) error {
	return tc.Remember(tc.Records, alias)
}
