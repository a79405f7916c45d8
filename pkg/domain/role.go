package domain

import dErrors "hrms/pkg/domain-errors"

// Role is the closed set of actor roles. Every switch over Role must be
// exhaustive so a new role forces review of the scope rules.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

var validRoles = map[Role]bool{
	RoleAdmin:    true,
	RoleHR:       true,
	RoleManager:  true,
	RoleEmployee: true,
}

// ParseRole constructs a Role from external input (token claims).
func ParseRole(s string) (Role, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "role cannot be empty")
	}
	r := Role(s)
	if !r.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid role")
	}
	return r, nil
}

func (r Role) IsValid() bool { return validRoles[r] }

// IsPrivileged reports whether the role sees every record (ADMIN, HR).
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleHR
}

func (r Role) String() string { return string(r) }

// Actor is the authenticated identity performing an operation. It is rebuilt
// from the auth token on every request and never mutated.
type Actor struct {
	ID            UserID
	Role          Role
	OwnedEntityID *EmployeeID
}

// HasEmployee reports whether the actor is linked to an employee record.
func (a Actor) HasEmployee() bool {
	return a.OwnedEntityID != nil && !a.OwnedEntityID.IsNil()
}
