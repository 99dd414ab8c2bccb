package errors

import (
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this date"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// StateTransitionError represents a disallowed status transition
type StateTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("invalid %s status transition from %q to %q", e.Entity, e.From, e.To)
}

// Is enables errors.Is() comparison for StateTransitionError
func (e *StateTransitionError) Is(target error) bool {
	_, ok := target.(*StateTransitionError)
	return ok
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrTaskNotFound         = &NotFoundError{Entity: "task"}
	ErrAttendanceNotFound   = &NotFoundError{Entity: "attendance record"}
	ErrLeaveNotFound        = &NotFoundError{Entity: "leave request"}
	ErrExpenseNotFound      = &NotFoundError{Entity: "expense"}
	ErrSummaryNotFound      = &NotFoundError{Entity: "monthly summary"}
	ErrSessionNotFound      = &NotFoundError{Entity: "session"}
)

// Already Exists Errors
var (
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this slug"}
	ErrAttendanceExists   = &AlreadyExistsError{Entity: "attendance record", Context: "for this date"}
)

// Authentication and Authorization Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrAccountDisabled    = &AuthenticationError{Message: "account is disabled"}
	ErrUnauthorized       = &AuthenticationError{Message: "authentication required"}
	ErrForbidden          = &AuthorizationError{Message: "insufficient permissions"}
	ErrScopeViolation     = &AuthorizationError{Message: "record is outside your organization scope"}
)
