package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorClassification(t *testing.T) {
	notFound := NewNotFoundError("tire")
	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsConflict(notFound))
	assert.Equal(t, "resource not found: tire", notFound.Error())

	conflict := NewConflictError("duplicate tuple")
	assert.True(t, IsConflict(conflict))
	assert.False(t, IsNotFound(conflict))

	validation := NewValidationError("brand", "brand is required")
	assert.True(t, IsValidationError(validation))
	assert.Contains(t, validation.Error(), "field: brand")
}

func TestDomainErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("listing tires: %w", NewNotFoundError("tire"))
	assert.True(t, IsNotFound(err))

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "tire", domainErr.Message)
}
