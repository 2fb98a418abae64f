package contextfs

import (
	"errors"
	"fmt"
)

// --- Error Types ---

// ValidationError reports malformed or missing caller input. It is always
// returned before any I/O is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Reason)
	}
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Reason)
}

// FileSystemError reports a failure of the storage primitive or of entity
// serialization. Message is the original failure's message; Cause keeps the
// original error for errors.Is / errors.As.
type FileSystemError struct {
	Op         string
	Path       string
	Message    string
	EntityType EntityType
	EntityID   string
	Cause      error
}

func (e *FileSystemError) Error() string {
	msg := fmt.Sprintf("filesystem error during %s of %s: %s", e.Op, e.Path, e.Message)
	if e.EntityType != "" || e.EntityID != "" {
		msg += fmt.Sprintf(" (entityType=%s, entityId=%s)", e.EntityType, e.EntityID)
	}
	return msg
}

func (e *FileSystemError) Unwrap() error {
	return e.Cause
}

// Context returns the structured diagnosis context attached to the error.
// It is empty for plain read and write failures.
func (e *FileSystemError) Context() map[string]string {
	ctx := make(map[string]string, 2)
	if e.EntityType != "" {
		ctx["entityType"] = string(e.EntityType)
	}
	if e.EntityID != "" {
		ctx["entityId"] = e.EntityID
	}
	return ctx
}

func newFileSystemError(op, path string, cause error) *FileSystemError {
	return &FileSystemError{
		Op:      op,
		Path:    path,
		Message: cause.Error(),
		Cause:   cause,
	}
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsFileSystemError reports whether err is, or wraps, a *FileSystemError.
func IsFileSystemError(err error) bool {
	var fe *FileSystemError
	return errors.As(err, &fe)
}
