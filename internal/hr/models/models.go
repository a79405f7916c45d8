// Package models holds the governed HR records and their list filters.
package models

import (
	"hrms/internal/access"
	"hrms/pkg/domain"
)

// Resource types used in audit records and metrics.
const (
	ResourceEmployee    = "employee"
	ResourceDepartment  = "department"
	ResourceJobPosting  = "job_posting"
	ResourceApplication = "application"
	ResourceInterview   = "interview"
	ResourceOnboarding  = "onboarding_task"
	ResourcePayroll     = "payroll_record"
	ResourceDocument    = "document"
)

// ListFilter is the common part of every list query. Owners is the storage
// predicate derived from the actor's scope; nil with Unrestricted false
// matches nothing.
type ListFilter struct {
	Owners       []domain.EmployeeID
	Unrestricted bool
	Status       string
	Limit        int
	Offset       int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ScopedFilter translates scope into a list predicate.
func ScopedFilter(scope access.Scope, status string, limit, offset int) ListFilter {
	owners, unrestricted := scope.OwnerIDs()
	if limit < 1 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return ListFilter{Owners: owners, Unrestricted: unrestricted, Status: status, Limit: limit, Offset: offset}
}

// Allows reports whether owner passes the filter's owner predicate.
func (f ListFilter) Allows(owner domain.EmployeeID) bool {
	if f.Unrestricted {
		return true
	}
	for _, o := range f.Owners {
		if o == owner {
			return true
		}
	}
	return false
}

// Page is a list result with the total matching count.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPage never returns a nil Items slice.
func NewPage[T any](items []T, total int, f ListFilter) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Total: total, Limit: f.Limit, Offset: f.Offset}
}
