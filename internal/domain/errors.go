package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrModuleNotFound indicates the module content could not be loaded.
	ErrModuleNotFound = errors.New("module not found")
	// ErrDiplomaNotFound is returned when a user has no diploma row yet.
	ErrDiplomaNotFound = errors.New("diploma not found")
	// ErrNoSelection is returned when checking a question without an answer.
	ErrNoSelection = errors.New("no option selected")
	// ErrAlreadyChecked is returned when mutating an already-checked answer.
	ErrAlreadyChecked = errors.New("answer already checked")
	// ErrNotChecked is returned when advancing before checking the answer.
	ErrNotChecked = errors.New("answer not checked yet")
	// ErrSessionFinished is returned for any action on a finished session other than retry.
	ErrSessionFinished = errors.New("session already finished")
	// ErrOptionOutOfRange is returned for a selection index outside the option list.
	ErrOptionOutOfRange = errors.New("option index out of range")
	// ErrFinishUnavailable is returned when finish preconditions do not hold.
	ErrFinishUnavailable = errors.New("finish unavailable")
	// ErrNextUnavailable is returned when advancing past the last question.
	ErrNextUnavailable = errors.New("no next question")
)

// ValidationError reports a caller-violated precondition. The operation is a
// no-op and the message is safe to surface to the user.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

// ConflictError reports a write race lost at the persistence layer. Callers
// must re-fetch current state instead of retrying the write.
type ConflictError struct {
	Resource string
}

func (e *ConflictError) Error() string { return e.Resource + " already exists" }

// TransientError wraps backend/network failures that are safe to retry.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *TransientError) Unwrap() error { return e.Err }

// RenderError reports a failed certificate render (missing or malformed font,
// encode failure). Rendering has no side effects, so retrying is always safe.
type RenderError struct {
	Reason string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render: %s: %v", e.Reason, e.Err)
	}
	return "render: " + e.Reason
}

func (e *RenderError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a precondition violation.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a lost write race.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsTransient reports whether err is a retryable backend failure.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsRender reports whether err came from the certificate renderer.
func IsRender(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}
