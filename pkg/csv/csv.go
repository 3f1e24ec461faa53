// Package csv implements a configurable CSV codec: text to rows and rows
// back to text.
//
// The codec converts between a CSV-formatted string and an in-memory table
// (rows of string fields, or header-keyed records), and the reverse. Both
// directions share one Options value: delimiter, quote character, line
// terminator, and header mode.
//
// Parsing is permissive by default. Malformed input (an unbalanced quote, a
// quote in the middle of an unquoted field) is absorbed by the state machine
// rather than rejected; an unterminated quoted field simply consumes the rest
// of the input. Set Options.Strict to reject these conditions with a
// *ParseError instead.
//
// # Thread Safety
//
// A Codec is immutable after construction and safe for concurrent use by
// multiple goroutines. Each call allocates its own working state.
//
//	c := csv.New()
//	go func() { c.Parse(input1) }()
//	go func() { c.Parse(input2) }()
//
// # Example
//
//	c, err := csv.NewWithOptions(csv.Options{Comma: ';', HasHeader: true})
//	if err != nil {
//	    // handle error
//	}
//	records, err := c.ParseRecords("name;age\nAlice;30\nBob;25")
//	// records[0]["name"] == "Alice"
//
//	out, err := c.Generate([][]csv.Field{
//	    {csv.String("name"), csv.String("age")},
//	    {csv.String("Alice"), csv.Number(30)},
//	})
//	// out: name;age\nAlice;30
package csv

import (
	"fmt"

	"github.com/shapestone/flexcsv/internal/scanner"
)

// Codec converts between CSV text and in-memory rows using one fixed
// configuration. The zero Codec is not usable; construct with New or
// NewWithOptions.
type Codec struct {
	opts Options
	// specials is the derived escape-decision set:
	// delimiter, quote, LF, CR.
	specials string
}

// New returns a codec with the default configuration.
func New() *Codec {
	c, err := NewWithOptions(DefaultOptions())
	if err != nil {
		// Defaults always validate.
		panic(err)
	}
	return c
}

// NewWithOptions returns a codec for the given options. Unset fields are
// overlaid with their defaults before validation. Invalid combinations
// (delimiter equal to quote, CR or LF delimiters) fail fast with an
// *OptionsError.
func NewWithOptions(opts Options) (*Codec, error) {
	opts = opts.normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Codec{
		opts:     opts,
		specials: string([]rune{opts.Comma, opts.Quote, '\n', '\r'}),
	}, nil
}

// Options returns the codec's configuration.
func (c *Codec) Options() Options {
	return c.opts
}

// Parse converts CSV text into rows of fields.
//
// The scan accepts LF, CR, and CRLF terminators regardless of the configured
// LineEnd. Empty input yields an empty table. A trailing delimiter produces
// an empty final field; input ending in a terminator does not produce an
// extra empty row.
func (c *Codec) Parse(input string) ([][]string, error) {
	rows, err := c.scan(input)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ParseRecords converts CSV text into header-keyed records.
//
// The first row supplies the keys positionally. Data rows shorter than the
// header omit the missing keys; surplus fields beyond the header's length get
// synthesized keys of the form "f_<1-based-index>". Values always come back
// as strings. Empty input yields an empty slice.
func (c *Codec) ParseRecords(input string) ([]map[string]string, error) {
	rows, err := c.scan(input)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []map[string]string{}, nil
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(row))
		for i, value := range row {
			if i < len(header) {
				m[header[i]] = value
			} else {
				m[fmt.Sprintf("f_%d", i+1)] = value
			}
		}
		records = append(records, m)
	}
	return records, nil
}

// ParseDocument converts CSV text into a Document. When the codec has header
// mode enabled and at least one row was parsed, the first row becomes the
// document's headers.
func (c *Codec) ParseDocument(input string) (*Document, error) {
	rows, err := c.scan(input)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	if c.opts.HasHeader && len(rows) > 0 {
		doc.SetHeaders(rows[0])
		rows = rows[1:]
	}
	for _, row := range rows {
		doc.AddRecord(row)
	}
	return doc, nil
}

// scan runs the character-level scan with this codec's configuration.
func (c *Codec) scan(input string) ([][]string, error) {
	rows, err := scanner.Scan(input, scanner.Config{
		Comma:  c.opts.Comma,
		Quote:  c.opts.Quote,
		Strict: c.opts.Strict,
	})
	if err != nil {
		return nil, wrapScanError(err)
	}
	return rows, nil
}

// Format returns the format identifier for this codec.
func Format() string {
	return "CSV"
}

// Parse converts CSV text into rows of fields using the default
// configuration.
func Parse(input string) ([][]string, error) {
	return New().Parse(input)
}

// ParseRecords converts CSV text into header-keyed records using the default
// configuration.
func ParseRecords(input string) ([]map[string]string, error) {
	return New().ParseRecords(input)
}

// Generate converts rows into CSV text using the default configuration.
func Generate(rows [][]Field) (string, error) {
	return New().Generate(rows)
}

// Validate checks whether input is well-formed CSV: balanced quotes and no
// bare quote inside an unquoted field. The permissive Parse accepts input
// that Validate rejects.
//
//	if err := csv.Validate(input); err != nil {
//	    // malformed CSV
//	}
func Validate(input string) error {
	_, err := scanner.Scan(input, scanner.Config{Strict: true})
	return wrapScanError(err)
}
