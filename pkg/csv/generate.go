// Package csv provides row-to-text generation with on-demand field escaping.
package csv

import "strings"

// Generate converts rows into a single CSV string.
//
// Each field is escaped on demand, fields are joined with the configured
// delimiter, and rows are joined with the configured line terminator. No
// terminator is appended after the last row. An empty row slice yields an
// empty string.
//
// A field with an unknown variant tag fails with ErrFieldKind.
func (c *Codec) Generate(rows [][]Field) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(c.opts.LineEnd)
		}
		for j, field := range row {
			if j > 0 {
				sb.WriteRune(c.opts.Comma)
			}
			if err := c.writeField(&sb, field); err != nil {
				return "", err
			}
		}
	}
	return sb.String(), nil
}

// GenerateStrings converts rows of plain strings into a single CSV string.
// Every field is treated as text and escaped on demand.
func (c *Codec) GenerateStrings(rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(c.opts.LineEnd)
		}
		for j, value := range row {
			if j > 0 {
				sb.WriteRune(c.opts.Comma)
			}
			c.writeEscaped(&sb, value)
		}
	}
	return sb.String(), nil
}

// Escape renders a single field the way Generate would.
func (c *Codec) Escape(field Field) (string, error) {
	var sb strings.Builder
	if err := c.writeField(&sb, field); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// writeField writes one field, dispatching on the variant tag.
// Non-text kinds render through their canonical scalar form and skip the
// escaping scan: those forms cannot contain members of the special set (see
// the Field contract for the delimiter caveat).
func (c *Codec) writeField(sb *strings.Builder, field Field) error {
	switch field.Kind() {
	case KindNull:
		return nil
	case KindNumber, KindBool:
		sb.WriteString(field.scalar())
		return nil
	case KindString:
		c.writeEscaped(sb, field.scalar())
		return nil
	default:
		return ErrFieldKind
	}
}

// writeEscaped writes a text field, quoting it iff it contains a member of
// the special set {delimiter, quote, LF, CR}. Quote characters are doubled
// and the whole field is wrapped in quotes.
func (c *Codec) writeEscaped(sb *strings.Builder, value string) {
	if !strings.ContainsAny(value, c.specials) {
		sb.WriteString(value)
		return
	}

	quote := c.opts.Quote
	sb.WriteRune(quote)
	for _, ch := range value {
		if ch == quote {
			sb.WriteRune(quote)
			sb.WriteRune(quote)
		} else {
			sb.WriteRune(ch)
		}
	}
	sb.WriteRune(quote)
}
