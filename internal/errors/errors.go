// Package errors provides the error taxonomy for Chronex.
//
// Only two kinds of failure ever reach the user: a missing session
// identity and an uncategorized internal fault, both rendered through
// the same template. Remote-backend failures are recovered by local
// fallback and persistence failures are logged and swallowed.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Category defines how an error is handled by the orchestrator.
type Category int

const (
	// CategoryAuth errors require re-authentication; surfaced to the user.
	CategoryAuth Category = iota

	// CategoryRemote errors trigger local fallback; never surfaced.
	CategoryRemote

	// CategoryPersistence errors are logged and swallowed.
	CategoryPersistence

	// CategoryInternal errors are surfaced via the generic template.
	CategoryInternal
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryAuth:
		return "auth"
	case CategoryRemote:
		return "remote"
	case CategoryPersistence:
		return "persistence"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error codes.
const (
	CodeAuthRequired    = "AUTH_REQUIRED"
	CodeRemoteUnavail   = "REMOTE_UNAVAILABLE"
	CodeRemoteMalformed = "REMOTE_MALFORMED"
	CodePersistence     = "PERSISTENCE_FAILED"
	CodeInternal        = "INTERNAL"
)

// AppError is the main error type for all Chronex errors.
type AppError struct {
	Code     string
	Message  string
	Category Category
	Inner    error
}

// Error returns the error message.
func (e *AppError) Error() string {
	var sb strings.Builder

	if e.Code != "" {
		sb.WriteString("[")
		sb.WriteString(e.Code)
		sb.WriteString("] ")
	}

	sb.WriteString(e.Message)

	if e.Inner != nil {
		innerMsg := e.Inner.Error()
		if innerMsg != "" && innerMsg != e.Message {
			sb.WriteString(": ")
			sb.WriteString(innerMsg)
		}
	}

	return sb.String()
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Inner
}

// Is checks if the target error is contained in this error.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Inner, target)
}

// New creates a new AppError.
func New(code, message string, category Category) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Category: category,
	}
}

// Wrap wraps an existing error with code and category.
func Wrap(err error, code, message string, category Category) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:     code,
		Message:  message,
		Category: category,
		Inner:    err,
	}
}

// Unauthenticated creates a missing-session-identity error.
func Unauthenticated() *AppError {
	return New(CodeAuthRequired, "no authenticated session", CategoryAuth)
}

// RemoteUnavailable wraps a remote-backend transport or status failure.
func RemoteUnavailable(err error) *AppError {
	return Wrap(err, CodeRemoteUnavail, "remote backend unavailable", CategoryRemote)
}

// RemoteMalformed marks a remote response that carried no usable text.
// Handled identically to RemoteUnavailable: recovered via local fallback.
func RemoteMalformed(detail string) *AppError {
	return New(CodeRemoteMalformed, fmt.Sprintf("malformed remote response: %s", detail), CategoryRemote)
}

// Persistence wraps a store write/read failure.
func Persistence(err error) *AppError {
	return Wrap(err, CodePersistence, "persistence failed", CategoryPersistence)
}

// Internal wraps an uncategorized orchestration fault.
func Internal(err error) *AppError {
	return Wrap(err, CodeInternal, "internal error", CategoryInternal)
}

// GetCategory extracts the category from an error.
// Unknown errors default to CategoryInternal.
func GetCategory(err error) Category {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Category
	}
	return CategoryInternal
}

// IsRemote reports whether err is a recoverable remote-backend failure.
func IsRemote(err error) bool {
	return err != nil && GetCategory(err) == CategoryRemote
}

// UserMessage renders the uniform user-visible error template.
// Every fault that reaches the user goes through this, so callers
// never see raw internals.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return fmt.Sprintf("⚠️ Chronex AI encountered a problem: %s. Please try again.", appErr.Message)
	}
	return fmt.Sprintf("⚠️ Chronex AI encountered a problem: %s. Please try again.", err.Error())
}
