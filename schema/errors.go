package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("document does not match schema")

// ErrInvalidSchema is matched by every *InvalidSchemaError.
var ErrInvalidSchema = errors.New("invalid schema")

// Issue describes a single violated constraint.
type Issue struct {
	// Path is a JSON Pointer to the offending value ("" is the document root).
	Path string
	// Keyword is the schema keyword that failed, e.g. "enum" or "required".
	Keyword string
	Message string
}

// String renders the issue as "<keyword> at <path>: <message>".
func (i Issue) String() string {
	return fmt.Sprintf("%s at %s: %s", i.Keyword, displayPath(i.Path), i.Message)
}

// ValidationError is returned when a document does not satisfy its schema.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	const maxShown = 3

	var b strings.Builder

	b.WriteString("validation failed: ")

	for i, issue := range e.Issues {
		if i == maxShown {
			fmt.Fprintf(&b, "; ... (total %d)", len(e.Issues))

			break
		}

		if i > 0 {
			b.WriteString("; ")
		}

		b.WriteString(issue.String())
	}

	return b.String()
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}

	return nil, false
}

// InvalidSchemaError is returned when a schema is malformed.
type InvalidSchemaError struct {
	// Path is a JSON Pointer into the schema document.
	Path   string
	Reason string
	Err    error
}

func (e *InvalidSchemaError) Error() string {
	msg := fmt.Sprintf("invalid schema at %s: %s", displayPath(e.Path), e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *InvalidSchemaError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidSchema.
func (e *InvalidSchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

func invalidf(path string, format string, args ...any) *InvalidSchemaError {
	return &InvalidSchemaError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}

	return path
}
