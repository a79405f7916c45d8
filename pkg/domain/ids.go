package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/google/uuid"

	dErrors "hrms/pkg/domain-errors"
)

// UserID identifies an authenticated account.
type UserID uuid.UUID

// EmployeeID identifies an employee record. Governed entities are owned by an
// employee, so scope checks compare EmployeeIDs.
type EmployeeID uuid.UUID

// NewEmployeeID returns a fresh random EmployeeID.
func NewEmployeeID() EmployeeID { return EmployeeID(uuid.New()) }

// NewUserID returns a fresh random UserID.
func NewUserID() UserID { return UserID(uuid.New()) }

// ParseUserID parses external input into a UserID. Nil and malformed values are rejected.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s, "user id")
	return UserID(u), err
}

// ParseEmployeeID parses external input into an EmployeeID.
func ParseEmployeeID(s string) (EmployeeID, error) {
	u, err := parseUUID(s, "employee id")
	return EmployeeID(u), err
}

// ParseID parses a generic record id using the same rules as the typed ids.
func ParseID(s string) (uuid.UUID, error) {
	return parseUUID(s, "id")
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be nil")
	}
	return u, nil
}

func (id UserID) String() string { return uuid.UUID(id).String() }
func (id UserID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id UserID) Value() (driver.Value, error) { return uuid.UUID(id).Value() }

func (id *UserID) Scan(src any) error { return (*uuid.UUID)(id).Scan(src) }

func (id EmployeeID) String() string { return uuid.UUID(id).String() }
func (id EmployeeID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id EmployeeID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

func (id *EmployeeID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(b)
}

func (id EmployeeID) Value() (driver.Value, error) {
	if id.IsNil() {
		return nil, nil
	}
	return uuid.UUID(id).Value()
}

func (id *EmployeeID) Scan(src any) error {
	if src == nil {
		*id = EmployeeID{}
		return nil
	}
	if err := (*uuid.UUID)(id).Scan(src); err != nil {
		return fmt.Errorf("scan employee id: %w", err)
	}
	return nil
}
