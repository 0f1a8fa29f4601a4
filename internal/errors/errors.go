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
	Context string // Additional context like "on this drawing"
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

// ValidationError represents a validation error (bad template weights,
// missing required import field, malformed request)
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

// FormatError represents an unparseable identifier, such as a drawing
// number that is not in canonical sheet notation
type FormatError struct {
	Input   string
	Message string
}

func (e *FormatError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("format error: %q - %s", e.Input, e.Message)
	}
	return fmt.Sprintf("format error: %s", e.Message)
}

// ReconciliationConflictError is raised when two import rows explicitly
// resolve to the same component id + drawing + instance number through
// user-supplied (non-generated) data
type ReconciliationConflictError struct {
	ComponentID    string
	DrawingNumber  string
	InstanceNumber int
}

func (e *ReconciliationConflictError) Error() string {
	return fmt.Sprintf("reconciliation conflict: %s instance %d on drawing %s is claimed by more than one row",
		e.ComponentID, e.InstanceNumber, e.DrawingNumber)
}

// PersistenceError wraps a storage-layer failure
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrProjectNotFound           = &NotFoundError{Entity: "project"}
	ErrDrawingNotFound           = &NotFoundError{Entity: "drawing"}
	ErrComponentNotFound         = &NotFoundError{Entity: "component"}
	ErrMilestoneTemplateNotFound = &NotFoundError{Entity: "milestone template"}
	ErrMilestoneNotFound         = &NotFoundError{Entity: "milestone"}
	ErrImportJobNotFound         = &NotFoundError{Entity: "import job"}
)

// Already Exists Errors
var (
	ErrProjectExists   = &AlreadyExistsError{Entity: "project", Context: "with this name"}
	ErrComponentExists = &AlreadyExistsError{Entity: "component", Context: "with this instance number on the drawing"}
	ErrTemplateExists  = &AlreadyExistsError{Entity: "milestone template", Context: "with this name in the project"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidWorkflowType     = errors.New("invalid workflow type")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrImportJobNotPending     = errors.New("import job has already been run")
	ErrEmptyImportBatch        = errors.New("import batch contains no rows")
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

// IsFormat checks if an error is a FormatError
func IsFormat(err error) bool {
	var formatErr *FormatError
	return errors.As(err, &formatErr)
}

// IsReconciliationConflict checks if an error is a ReconciliationConflictError
func IsReconciliationConflict(err error) bool {
	var conflictErr *ReconciliationConflictError
	return errors.As(err, &conflictErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFormatError creates a new FormatError
func NewFormatError(input, message string) error {
	return &FormatError{Input: input, Message: message}
}

// NewPersistenceError wraps a storage failure with the operation name
func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
