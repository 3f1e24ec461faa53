// Package csv provides configurable options for the codec.
package csv

import "unicode/utf8"

// Options configures both directions of the codec.
type Options struct {
	// Comma is the field delimiter.
	// It must be a valid rune, must differ from Quote, and must not be
	// \r, \n, or the Unicode replacement character (0xFFFD).
	// Default: ','
	Comma rune

	// Quote is the quote character used to escape fields.
	// Same restrictions as Comma.
	// Default: '"'
	Quote rune

	// LineEnd is the terminator written between generated rows.
	// Parsing always accepts LF, CR, and CRLF regardless of this setting.
	// Default: "\n"
	LineEnd string

	// HasHeader treats the first parsed row as header names. It drives
	// ParseRecords and ParseDocument; Parse always returns raw rows.
	// Default: false
	HasHeader bool

	// Strict rejects malformed input (bare quotes, unterminated quoted
	// fields) instead of absorbing it. Default: false - malformed input
	// is tolerated the way the scanner documents.
	Strict bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Comma:     ',',
		Quote:     '"',
		LineEnd:   "\n",
		HasHeader: false,
		Strict:    false,
	}
}

// normalize overlays zero-valued fields with their defaults.
func (o Options) normalize() Options {
	if o.Comma == 0 {
		o.Comma = ','
	}
	if o.Quote == 0 {
		o.Quote = '"'
	}
	if o.LineEnd == "" {
		o.LineEnd = "\n"
	}
	return o
}

// validChar reports whether r can serve as a delimiter or quote character.
func validChar(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// Validate checks the options after defaulting.
// Returns an *OptionsError describing the first invalid field.
func (o Options) Validate() error {
	o = o.normalize()
	if !validChar(o.Comma) {
		return &OptionsError{Field: "Comma", Message: "invalid delimiter"}
	}
	if !validChar(o.Quote) {
		return &OptionsError{Field: "Quote", Message: "invalid quote character"}
	}
	if o.Comma == o.Quote {
		return &OptionsError{Field: "Quote", Message: "quote character same as delimiter"}
	}
	for _, r := range o.LineEnd {
		if r != '\r' && r != '\n' {
			return &OptionsError{Field: "LineEnd", Message: "line terminator must consist of CR and LF only"}
		}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Message
}
