// Package domainerrors carries coded errors across service boundaries.
//
// A Code classifies the failure for transport mapping (HTTP status). A Reason is
// the stable, machine-readable business reason returned to API callers, e.g.
// INVALID_STATUS_TRANSITION. Details carry structured context such as the set
// of valid next states or the ids that failed a lookup.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies an error for transport mapping.
type Code string

const (
	CodeBadRequest         Code = "bad_request"
	CodeInvalidInput       Code = "invalid_input"
	CodeValidation         Code = "validation_error"
	CodeInvariantViolation Code = "invariant_violation"
	CodeUnauthorized       Code = "unauthorized"
	CodeForbidden          Code = "forbidden"
	CodeNotFound           Code = "not_found"
	CodeConflict           Code = "conflict"
	CodeTimeout            Code = "timeout"
	CodeInternal           Code = "internal_error"
)

// Reason is a stable business reason code surfaced to callers.
type Reason string

const (
	ReasonAccessDenied            Reason = "ACCESS_DENIED"
	ReasonInvalidStatusTransition Reason = "INVALID_STATUS_TRANSITION"
	ReasonFeedbackRequired        Reason = "FEEDBACK_REQUIRED"
	ReasonRatingRequired          Reason = "RATING_REQUIRED"
	ReasonCalculationError        Reason = "CALCULATION_ERROR"
	ReasonOverlappingPayPeriod    Reason = "OVERLAPPING_PAY_PERIOD"
	ReasonEmployeeInactive        Reason = "EMPLOYEE_INACTIVE"
	ReasonPayrollAlreadyPaid      Reason = "PAYROLL_ALREADY_PAID"
	ReasonPayrollNotProcessed     Reason = "PAYROLL_NOT_PROCESSED"
	ReasonDuplicateTask           Reason = "DUPLICATE_TASK"
	ReasonEmployeeNotFound        Reason = "EMPLOYEE_NOT_FOUND"
	ReasonDepartmentNotFound      Reason = "DEPARTMENT_NOT_FOUND"
	ReasonManagerNotFound         Reason = "MANAGER_NOT_FOUND"
	ReasonJobPostingNotFound      Reason = "JOB_POSTING_NOT_FOUND"
	ReasonApplicationNotFound     Reason = "APPLICATION_NOT_FOUND"
	ReasonInterviewerNotFound     Reason = "INTERVIEWER_NOT_FOUND"
	ReasonTaskNotFound            Reason = "TASK_NOT_FOUND"
	ReasonJobPostingNotOpen       Reason = "JOB_POSTING_NOT_OPEN"
	ReasonRecordInUse             Reason = "RECORD_IN_USE"
)

// Error is the coded error type returned by services.
type Error struct {
	Code    Code
	Reason  Reason
	Message string
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Code != CodeInternal {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error. The cause is kept
// for logging via errors.Unwrap but never rendered for internal errors.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

// Rejected builds a business-rule rejection with a stable reason.
func Rejected(reason Reason, msg string) *Error {
	return &Error{Code: CodeValidation, Reason: reason, Message: msg}
}

// NotFound builds a missing-dependency error with a stable reason.
func NotFound(reason Reason, msg string) *Error {
	return &Error{Code: CodeNotFound, Reason: reason, Message: msg}
}

// InUse builds the conflict returned when other records still reference the
// target of a write.
func InUse(msg string) *Error {
	return &Error{Code: CodeConflict, Reason: ReasonRecordInUse, Message: msg}
}

// AccessDenied builds the fail-closed scope error.
func AccessDenied(msg string) *Error {
	return &Error{Code: CodeForbidden, Reason: ReasonAccessDenied, Message: msg}
}

// WithDetail returns the error with an extra structured detail.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// As extracts the first *Error in the chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether err carries code anywhere in its chain.
func HasCode(err error, code Code) bool {
	de, ok := As(err)
	return ok && de.Code == code
}

// Is is an alias of HasCode kept for handler readability.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}

// ReasonOf returns the business reason carried by err, or "".
func ReasonOf(err error) Reason {
	if de, ok := As(err); ok {
		return de.Reason
	}
	return ""
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeInvalidInput:
		return http.StatusBadRequest
	case CodeValidation, CodeInvariantViolation:
		return http.StatusUnprocessableEntity
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
