package errors

import (
	"errors"
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

// ConflictError represents a uniqueness or capacity violation
type ConflictError struct {
	Entity  string
	Context string // e.g. "for this date, time range and place"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s conflict %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
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

// DuplicateError is returned when a notification ledger insert loses the
// uniqueness race. Callers treat it as "already handled", not as a failure.
type DuplicateError struct {
	Key string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("notification already recorded for %s", e.Key)
}

// DispatchError wraps a mail transport failure for a single send attempt
type DispatchError struct {
	Reason string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch failed: %s", e.Reason)
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

// Entity Not Found Errors
var (
	ErrTeamNotFound               = &NotFoundError{Entity: "team"}
	ErrPlaceNotFound              = &NotFoundError{Entity: "place"}
	ErrExhibitorNotFound          = &NotFoundError{Entity: "exhibitor"}
	ErrShiftNotFound              = &NotFoundError{Entity: "shift"}
	ErrUserNotFound               = &NotFoundError{Entity: "user"}
	ErrNotificationConfigNotFound = &NotFoundError{Entity: "notification config"}
)

// Conflict Errors
var (
	ErrShiftSlotExists = &ConflictError{Entity: "shift", Context: "for this date, time range and place"}
	ErrShiftFull       = &ConflictError{Entity: "shift", Context: "at place capacity"}
	ErrExhibitorInUse  = &ConflictError{Entity: "exhibitor", Context: "still assigned to shifts"}
	ErrTeamExists      = &ConflictError{Entity: "team", Context: "with this name"}
	ErrUserEmailExists = &ConflictError{Entity: "user", Context: "with this email"}
	ErrPlaceNameExists = &ConflictError{Entity: "place", Context: "with this name in the team"}
)

// Business Logic Errors
var (
	ErrInvalidTimeRange       = errors.New("invalid time range")
	ErrInvalidGeneratePattern = errors.New("invalid shift generation pattern")
	ErrInvalidRole            = errors.New("invalid role")
	ErrInvalidOffsetKind      = errors.New("invalid notification offset kind")
	ErrUserHasNoEmail         = errors.New("user has no email address")
)

// Authentication Errors
var (
	ErrMissingSchedulerToken = &AuthenticationError{Message: "missing or invalid scheduler token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsDuplicate checks if an error is a DuplicateError
func IsDuplicate(err error) bool {
	var duplicateErr *DuplicateError
	return errors.As(err, &duplicateErr)
}

// IsDispatch checks if an error is a DispatchError
func IsDispatch(err error) bool {
	var dispatchErr *DispatchError
	return errors.As(err, &dispatchErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewDuplicateError creates a DuplicateError for a ledger key
func NewDuplicateError(key string) error {
	return &DuplicateError{Key: key}
}

// NewDispatchError wraps a transport failure reason
func NewDispatchError(reason string) error {
	return &DispatchError{Reason: reason}
}
