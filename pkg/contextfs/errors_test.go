package contextfs_test

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/arthur-debert/contextfs/pkg/contextfs"
)

func TestValidationErrorMessage(t *testing.T) {
	err := &contextfs.ValidationError{Field: "path", Reason: "path required"}
	if got := err.Error(); got != "validation error for path: path required" {
		t.Errorf("Unexpected message %q", got)
	}

	bare := &contextfs.ValidationError{Reason: "bad input"}
	if got := bare.Error(); got != "validation error: bad input" {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestFileSystemError(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrPermission}
	err := &contextfs.FileSystemError{
		Op:         "write",
		Path:       "/x",
		Message:    cause.Error(),
		EntityType: contextfs.TypeTask,
		EntityID:   "T1",
		Cause:      cause,
	}

	msg := err.Error()
	for _, want := range []string{"write", "/x", "permission denied", "entityType=task", "entityId=T1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected %q in %q", want, msg)
		}
	}

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("Expected errors.Is to reach the cause")
	}

	ctx := err.Context()
	if ctx["entityType"] != "task" || ctx["entityId"] != "T1" {
		t.Errorf("Unexpected context %v", ctx)
	}

	plain := &contextfs.FileSystemError{Op: "read", Path: "/y", Message: "gone"}
	if len(plain.Context()) != 0 {
		t.Errorf("Expected empty context, got %v", plain.Context())
	}
	if strings.Contains(plain.Error(), "entityType") {
		t.Errorf("Did not expect entity context in %q", plain.Error())
	}
}

func TestErrorPredicates(t *testing.T) {
	ve := &contextfs.ValidationError{Reason: "x"}
	fe := &contextfs.FileSystemError{Op: "read", Path: "p", Message: "m"}

	if !contextfs.IsValidationError(fmt.Errorf("wrapped: %w", ve)) {
		t.Error("Expected wrapped ValidationError to match")
	}
	if contextfs.IsValidationError(fe) {
		t.Error("FileSystemError is not a ValidationError")
	}
	if !contextfs.IsFileSystemError(fmt.Errorf("wrapped: %w", fe)) {
		t.Error("Expected wrapped FileSystemError to match")
	}
	if contextfs.IsFileSystemError(errors.New("plain")) {
		t.Error("Plain error is not a FileSystemError")
	}
}
