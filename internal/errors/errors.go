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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this source"
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

// ConfigurationError represents an invalid rule or system configuration.
// These are rejected synchronously at create/update time, never deferred
// to evaluation time.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
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
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrBranchNotFound     = &NotFoundError{Entity: "branch"}
	ErrSourceNotFound     = &NotFoundError{Entity: "source"}
	ErrLeadNotFound       = &NotFoundError{Entity: "lead"}
	ErrRuleNotFound       = &NotFoundError{Entity: "assignment rule"}
	ErrRuleMemberNotFound = &NotFoundError{Entity: "rule member"}
)

// Already Exists Errors
var (
	ErrUserExists   = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrBranchExists = &AlreadyExistsError{Entity: "branch", Context: "with this name"}
	ErrSourceExists = &AlreadyExistsError{Entity: "source", Context: "with this name"}
	ErrLeadExists   = &AlreadyExistsError{Entity: "lead", Context: "with this external id for the source"}
	ErrMemberExists = &AlreadyExistsError{Entity: "rule member", Context: "for this user in the rule"}
)

// Rule Configuration Errors
var (
	ErrFallbackSelfReference    = &ConfigurationError{Message: "a rule cannot be its own fallback"}
	ErrFallbackCycle            = &ConfigurationError{Message: "fallback chain contains a cycle"}
	ErrMixedMemberModes         = &ConfigurationError{Message: "rule members mix percentage and weight modes"}
	ErrRuleReferencedAsFallback = &ConfigurationError{Message: "rule is referenced as another rule's fallback"}
	ErrMemberUserNotAssignable  = &ConfigurationError{Message: "member user is not an active assignable agent"}
	ErrInvalidWeightedConfig    = &ConfigurationError{Message: "weighted rule requires a valid mode in config"}
	ErrInvalidTimeWindow        = &ConfigurationError{Message: "active_from/active_to must be HH:MM"}
	ErrInvalidActiveDays        = &ConfigurationError{Message: "active_days must be weekdays 0-6"}
	ErrInvalidPercentage        = &ConfigurationError{Message: "percentage must be greater than 0 and at most 100"}
	ErrInvalidWeight            = &ConfigurationError{Message: "weight must be a positive integer"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrAssigneeNotAssignable   = errors.New("assignee is not an active assignable agent")
	ErrSourceInactive          = errors.New("source is inactive")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrUserInactive       = &AuthenticationError{Message: "user account is deactivated"}
	ErrInsufficientRole   = &AuthorizationError{Message: "insufficient permissions for this operation"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
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

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
