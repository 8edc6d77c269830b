package domain

import (
	"errors"
	"fmt"
)

// ErrorKind names the structural convention a header violated.
type ErrorKind string

// Structural error kinds.
const (
	InvalidStart            ErrorKind = "invalid-start"
	InvalidHeadLine         ErrorKind = "invalid-head-line"
	NotGuarded              ErrorKind = "not-guarded"
	MissingFileDeclaration  ErrorKind = "missing-file-declaration"
	FileDeclarationMismatch ErrorKind = "file-declaration-mismatch"
	PragmaGuardMisplaced    ErrorKind = "pragma-guard-misplaced"
	IncorrectGuardMacro     ErrorKind = "incorrect-guard-macro"
	GuardOrderViolation     ErrorKind = "guard-order-violation"
)

// Error makes a kind usable as a sentinel with errors.Is.
func (k ErrorKind) Error() string {
	return string(k)
}

// ErrViolations is returned by a scan that completed but found violations.
var ErrViolations = errors.New("structural violations found")

// StructuralError describes where a header breaks the structural convention.
type StructuralError struct {
	Title string
	// Line is 1-indexed.
	Line  int
	Kind  ErrorKind
	Cause string
}

func newStructuralError(title string, line int, kind ErrorKind, format string, args ...any) *StructuralError {
	return &StructuralError{
		Title: title,
		Line:  line,
		Kind:  kind,
		Cause: fmt.Sprintf(format, args...),
	}
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s.h:%d: %s", e.Title, e.Line, e.Cause)
}

// Is matches the error against its kind.
func (e *StructuralError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == e.Kind
}

// AsStructural extracts a StructuralError from err.
func AsStructural(err error) (*StructuralError, bool) {
	var se *StructuralError
	if errors.As(err, &se) {
		return se, true
	}

	return nil, false
}
