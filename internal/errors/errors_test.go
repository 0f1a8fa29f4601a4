package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "component"}
		assert.Equal(t, "component not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "component"}
		err2 := &NotFoundError{Entity: "component"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "component"}
		err2 := &NotFoundError{Entity: "drawing"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrComponentNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup failed: %w", ErrDrawingNotFound)))
		assert.False(t, IsNotFound(ErrInvalidStatus))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "milestone template", Context: "with this name in the project"}
		assert.Equal(t, "milestone template already exists with this name in the project", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "component"}
		assert.Equal(t, "component already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTemplateExists))
		assert.False(t, IsAlreadyExists(ErrComponentNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "weights", Message: "must sum to 100"}
		assert.Equal(t, "validation error: weights - must sum to 100", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "missing drawing number"}
		assert.Equal(t, "validation error: missing drawing number", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("weights", "must sum to 100")))
		assert.False(t, IsValidation(ErrComponentNotFound))
	})
}

func TestFormatError(t *testing.T) {
	t.Run("Error message includes input", func(t *testing.T) {
		err := &FormatError{Input: "P-1001 1of", Message: "not in sheet notation"}
		assert.Equal(t, `format error: "P-1001 1of" - not in sheet notation`, err.Error())
	})

	t.Run("IsFormat helper", func(t *testing.T) {
		assert.True(t, IsFormat(NewFormatError("x", "bad")))
		assert.False(t, IsFormat(NewValidationError("", "bad")))
	})
}

func TestReconciliationConflictError(t *testing.T) {
	err := &ReconciliationConflictError{
		ComponentID:    "VALVE001",
		DrawingNumber:  "P-1001 01of01",
		InstanceNumber: 2,
	}
	assert.Contains(t, err.Error(), "VALVE001")
	assert.Contains(t, err.Error(), "instance 2")
	assert.True(t, IsReconciliationConflict(err))
	assert.False(t, IsReconciliationConflict(ErrComponentNotFound))
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewPersistenceError("component create", cause)

	assert.Contains(t, err.Error(), "component create")
	assert.True(t, IsPersistence(err))
	assert.True(t, errors.Is(err, cause))
}
