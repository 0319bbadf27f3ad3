package contract

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyncFailed is the user-facing error reported for any failed save.
var ErrSyncFailed = errors.New("failed to sync, check your connection")

// ErrInvalidInput marks input rejected by a sanitizer or validator.
var ErrInvalidInput = errors.New("invalid input")

// ErrSurveyDisabled is returned when an online survey response arrives while its gate is off.
var ErrSurveyDisabled = errors.New("online survey is not enabled")

// ErrSchoolMismatch is returned when pending edits of one school are saved for another.
var ErrSchoolMismatch = errors.New("pending edits belong to a different school")

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message"`
}

// ValidationError is returned for rejected config values and sanitizer failures.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Err:    ErrInvalidInput,
		Fields: []FieldError{{Field: field, Message: message}},
	}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Err.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%v: %s", e.Err, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

// SyncError wraps a remote failure for one source. It matches ErrSyncFailed
// and the underlying cause with errors.Is.
type SyncError struct {
	Source string
	Err    error
}

func (e *SyncError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%v: %v", ErrSyncFailed, e.Err)
	}
	return fmt.Sprintf("%v (source %s): %v", ErrSyncFailed, e.Source, e.Err)
}

func (e *SyncError) Unwrap() []error { return []error{ErrSyncFailed, e.Err} }

// CorruptedStateError reports a local cache entry that could not be decoded.
type CorruptedStateError struct {
	Key string
	Err error
}

func (e *CorruptedStateError) Error() string {
	return fmt.Sprintf("corrupted local state %q: %v", e.Key, e.Err)
}

func (e *CorruptedStateError) Unwrap() error { return e.Err }
