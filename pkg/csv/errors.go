// Package csv provides error types for parsing and generation.
package csv

import (
	"errors"
	"fmt"

	"github.com/shapestone/flexcsv/internal/scanner"
)

// Common errors.
var (
	// ErrBareQuote indicates a quote character after field content began,
	// outside a quoted field. Reported only in strict mode; the default
	// permissive parse treats the quote as a state toggle.
	ErrBareQuote = scanner.ErrBareQuote

	// ErrUnterminatedQuote indicates input ended inside a quoted field.
	// Reported only in strict mode; the default permissive parse consumes
	// the rest of the input as the field.
	ErrUnterminatedQuote = scanner.ErrUnterminatedQuote

	// ErrFieldKind indicates a generator field with an unknown variant tag.
	ErrFieldKind = errors.New("csv: unsupported field kind")

	// ErrFieldType indicates a Go value with no field representation was
	// passed to Row.
	ErrFieldType = errors.New("csv: unsupported field value type")
)

// ParseError reports a strict-mode parse failure with position information.
// Line and Column are 1-indexed.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error returns a formatted message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("csv: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// wrapScanError converts an internal scan error into the public ParseError.
func wrapScanError(err error) error {
	if err == nil {
		return nil
	}
	var se *scanner.Error
	if errors.As(err, &se) {
		return &ParseError{Line: se.Line, Column: se.Column, Err: se.Err}
	}
	return err
}
