// Package scanner implements the character-level CSV scan shared by the
// public codec API.
//
// The scan is a single left-to-right pass over the input with one bit of
// state: whether the cursor is inside a quoted field. It is deliberately
// permissive - unbalanced quotes never abort the scan, they just change how
// the remaining characters are classified. Strict checks are opt-in via
// Config.Strict.
package scanner

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors reported in strict mode.
var (
	// ErrBareQuote is returned when a quote character appears after field
	// content has already begun outside a quoted section.
	ErrBareQuote = errors.New("bare quote in non-quoted field")
	// ErrUnterminatedQuote is returned when the input ends inside a quoted
	// field.
	ErrUnterminatedQuote = errors.New("unterminated quoted field")
)

// Error is a scan failure with 1-indexed position information.
type Error struct {
	Line   int
	Column int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config carries the scan parameters. Zero values for Comma and Quote fall
// back to ',' and '"'.
type Config struct {
	Comma  rune
	Quote  rune
	Strict bool
}

// Scan converts input into rows of fields.
//
// Classification per character, in priority order:
//
//  1. Quote: a doubled quote inside a quoted field is one literal quote;
//     any other quote toggles the quoted state and is not part of the field.
//  2. Delimiter: closes the current field unless quoted.
//  3. Newline (LF, CR, or CRLF as one terminator): closes the field and the
//     row unless quoted; inside quotes it contributes a literal '\n'
//     regardless of which terminator variant appeared.
//  4. Anything else is field content.
//
// Row closure is owned by the terminator handling. The flush after the loop
// only fires for trailing unterminated content, so input ending in a
// terminator does not grow an extra empty row.
func Scan(input string, cfg Config) ([][]string, error) {
	comma := cfg.Comma
	if comma == 0 {
		comma = ','
	}
	quote := cfg.Quote
	if quote == 0 {
		quote = '"'
	}

	chars := []rune(input)
	n := len(chars)

	rows := make([][]string, 0, 16)
	row := make([]string, 0, 8)
	var field strings.Builder
	inQuotes := false

	line, col := 1, 1

	for i := 0; i < n; {
		ch := chars[i]
		switch {
		case ch == quote:
			if inQuotes && i+1 < n && chars[i+1] == quote {
				// Escaped literal quote.
				field.WriteRune(quote)
				i += 2
				col += 2
				continue
			}
			if cfg.Strict && !inQuotes && field.Len() > 0 {
				return nil, &Error{Line: line, Column: col, Err: ErrBareQuote}
			}
			// A quote outside quoted state still toggles; malformed input
			// is tolerated rather than rejected.
			inQuotes = !inQuotes
			i++
			col++

		case ch == comma && !inQuotes:
			row = append(row, field.String())
			field.Reset()
			i++
			col++

		case ch == '\n' || ch == '\r':
			if ch == '\r' && i+1 < n && chars[i+1] == '\n' {
				i++
			}
			i++
			if inQuotes {
				// Terminators are literal inside quotes and normalize to LF.
				field.WriteByte('\n')
			} else {
				row = append(row, field.String())
				field.Reset()
				rows = append(rows, row)
				row = make([]string, 0, 8)
			}
			line++
			col = 1

		default:
			field.WriteRune(ch)
			i++
			col++
		}
	}

	if inQuotes && cfg.Strict {
		return nil, &Error{Line: line, Column: col, Err: ErrUnterminatedQuote}
	}

	// Trailing content without a terminator.
	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}

	return rows, nil
}
