// Package errors provides custom error types for the podium system.
// These errors enable programmatic error checking and keep the distinction
// between recoverable per-row data-quality problems and fatal integrity
// violations visible at every call site.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the podium system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates that a resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingNaturalKey indicates a row whose identity cannot be established
	ErrMissingNaturalKey = errors.New("missing natural key")

	// ErrDuplicateID indicates an identifier collision in a merged table
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrReferentialGap indicates a foreign key without a matching row
	ErrReferentialGap = errors.New("referential gap")

	// ErrReadOnly indicates an attempt to modify a read-only resource
	ErrReadOnly = errors.New("read only")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// MissingNaturalKeyError reports an incoming row that cannot be reconciled
// because every field of its natural key is empty. The row is rejected and
// recorded on the run report, never merged.
type MissingNaturalKeyError struct {
	Table  string
	Source string // source row identifier, e.g. the Paris athlete code
}

// Error implements the error interface
func (e *MissingNaturalKeyError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s row %s has no usable natural key", e.Table, e.Source)
	}
	return fmt.Sprintf("%s row has no usable natural key", e.Table)
}

// Is implements errors.Is support
func (e *MissingNaturalKeyError) Is(target error) bool {
	return target == ErrMissingNaturalKey
}

// NewMissingNaturalKeyError creates a new MissingNaturalKeyError
func NewMissingNaturalKeyError(table, source string) *MissingNaturalKeyError {
	return &MissingNaturalKeyError{Table: table, Source: source}
}

// DuplicateIDError reports an identifier collision in a merged table. A newly
// minted identifier colliding with an existing one signals a logic error in
// the minting policy, so this error is always fatal for the merge run.
type DuplicateIDError struct {
	Table string
	ID    string
}

// Error implements the error interface
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate identifier %s in %s table", e.ID, e.Table)
}

// Is implements errors.Is support
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// NewDuplicateIDError creates a new DuplicateIDError
func NewDuplicateIDError(table, id string) *DuplicateIDError {
	return &DuplicateIDError{Table: table, ID: id}
}

// ReferentialGapError reports an event result row whose foreign key does not
// resolve to any row in the referenced table after the merge. The offending
// row is excluded from the final output and reported.
type ReferentialGapError struct {
	Table    string // referenced table
	Key      string // foreign key column
	ID       string // unresolved identifier
	ResultID string // event result row carrying the dangling reference
}

// Error implements the error interface
func (e *ReferentialGapError) Error() string {
	return fmt.Sprintf("event result %s references %s %s=%s which does not exist", e.ResultID, e.Table, e.Key, e.ID)
}

// Is implements errors.Is support
func (e *ReferentialGapError) Is(target error) bool {
	return target == ErrReferentialGap
}

// NewReferentialGapError creates a new ReferentialGapError
func NewReferentialGapError(table, key, id, resultID string) *ReferentialGapError {
	return &ReferentialGapError{Table: table, Key: key, ID: id, ResultID: resultID}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// MergeError represents an error during table merge operations
type MergeError struct {
	Table string
	IDs   []string
	Err   error
}

// Error implements the error interface
func (e *MergeError) Error() string {
	if len(e.IDs) > 0 {
		return fmt.Sprintf("merge error in %s table for IDs %v: %v", e.Table, e.IDs, e.Err)
	}
	return fmt.Sprintf("merge error in %s table: %v", e.Table, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *MergeError) Unwrap() error {
	return e.Err
}

// NewMergeError creates a new MergeError
func NewMergeError(table string, ids []string, err error) *MergeError {
	return &MergeError{Table: table, IDs: ids, Err: err}
}

// ParseError represents an error when parsing tabular or config data
type ParseError struct {
	Format  string // "csv", "yaml"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMissingNaturalKey checks if an error is a missing natural key rejection
func IsMissingNaturalKey(err error) bool {
	return errors.Is(err, ErrMissingNaturalKey)
}

// IsDuplicateID checks if an error is an identifier collision
func IsDuplicateID(err error) bool {
	return errors.Is(err, ErrDuplicateID)
}

// IsReferentialGap checks if an error is a dangling foreign key
func IsReferentialGap(err error) bool {
	return errors.Is(err, ErrReferentialGap)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
