package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "lead"}
		assert.Equal(t, "lead not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "lead"}
		err2 := &NotFoundError{Entity: "lead"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "lead"}
		err2 := &NotFoundError{Entity: "source"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrLeadNotFound, ErrLeadNotFound))
		assert.False(t, errors.Is(ErrLeadNotFound, ErrRuleNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrRuleNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrUserNotFound)))
		assert.False(t, IsNotFound(ErrMemberExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "lead", Context: "with this external id for the source"}
		assert.Equal(t, "lead already exists with this external id for the source", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "branch"}
		assert.Equal(t, "branch already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrLeadExists, ErrLeadExists))
		assert.False(t, errors.Is(ErrLeadExists, ErrMemberExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestConfigurationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ConfigurationError{Message: "fallback chain contains a cycle"}
		assert.Equal(t, "fallback chain contains a cycle", err.Error())
	})

	t.Run("IsConfiguration helper", func(t *testing.T) {
		assert.True(t, IsConfiguration(ErrFallbackCycle))
		assert.True(t, IsConfiguration(ErrFallbackSelfReference))
		assert.True(t, IsConfiguration(ErrMixedMemberModes))
		assert.True(t, IsConfiguration(ErrRuleReferencedAsFallback))
		assert.True(t, IsConfiguration(NewConfigurationError("custom")))
		assert.False(t, IsConfiguration(ErrLeadNotFound))
	})

	t.Run("wrapped configuration error", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to save rule: %w", ErrInvalidTimeWindow)
		assert.True(t, IsConfiguration(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "priority", Message: "must be non-negative"}
		assert.Equal(t, "validation error: priority - must be non-negative", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "required")))
		assert.False(t, IsValidation(ErrLeadNotFound))
	})
}

func TestAuthenticationErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrUserInactive))
		assert.False(t, IsAuthentication(ErrInsufficientRole))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrInsufficientRole))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})
}
