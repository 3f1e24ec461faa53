// Package csv provides CSV dialect detection.
package csv

import (
	"strings"
	"unicode"
)

// candidateDelimiters are the delimiters the sniffer scores.
var candidateDelimiters = []rune{',', '\t', ';', '|'}

// Sniffer detects the dialect of a CSV sample: delimiter and header
// presence. For best results provide at least two or three lines.
type Sniffer struct {
	sample    string
	quote     rune
	delimiter rune
	hasHeader bool
	analyzed  bool
}

// NewSniffer creates a Sniffer over a sample, assuming '"' as the quote
// character.
func NewSniffer(sample string) *Sniffer {
	return NewSnifferWithQuote(sample, '"')
}

// NewSnifferWithQuote creates a Sniffer that respects a custom quote
// character when counting delimiters.
func NewSnifferWithQuote(sample string, quote rune) *Sniffer {
	if quote == 0 {
		quote = '"'
	}
	return &Sniffer{sample: sample, quote: quote}
}

// DetectDelimiter returns the detected field delimiter.
// Candidates: comma, tab, semicolon, pipe.
func (s *Sniffer) DetectDelimiter() rune {
	s.analyze()
	return s.delimiter
}

// HasHeader reports whether the first row looks like a header.
func (s *Sniffer) HasHeader() bool {
	s.analyze()
	return s.hasHeader
}

// Options returns a ready-to-use Options value for the detected dialect.
// Undetected settings keep their defaults.
func (s *Sniffer) Options() Options {
	s.analyze()
	opts := DefaultOptions()
	opts.Comma = s.delimiter
	opts.Quote = s.quote
	opts.HasHeader = s.hasHeader
	return opts
}

func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.delimiter = s.detectDelimiter()
	s.hasHeader = s.detectHeader()
	s.analyzed = true
}

// detectDelimiter scores each candidate by per-line occurrence count,
// with a bonus when the count is consistent across lines.
func (s *Sniffer) detectDelimiter() rune {
	lines := sampleLines(s.sample)
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestScore := 0
	for _, delim := range candidateDelimiters {
		counts := make([]int, 0, len(lines))
		for _, line := range lines {
			counts = append(counts, s.countDelimiter(line, delim))
		}
		if counts[0] == 0 {
			continue
		}

		consistent := true
		for _, c := range counts[1:] {
			if c != counts[0] {
				consistent = false
				break
			}
		}

		score := counts[0]
		if consistent {
			score *= 10
		}
		if score > bestScore {
			best = delim
			bestScore = score
		}
	}
	return best
}

// countDelimiter counts delimiter occurrences outside quoted sections.
func (s *Sniffer) countDelimiter(line string, delim rune) int {
	count := 0
	inQuotes := false
	for _, ch := range line {
		switch {
		case ch == s.quote:
			inQuotes = !inQuotes
		case ch == delim && !inQuotes:
			count++
		}
	}
	return count
}

// detectHeader compares the first line against the first data line: header
// cells are typically identifier-like text, data cells are typically numeric
// or otherwise value-like.
func (s *Sniffer) detectHeader() bool {
	lines := sampleLines(s.sample)
	if len(lines) < 2 {
		return false
	}

	delim := s.detectDelimiter()
	first := s.splitLine(lines[0], delim)
	second := s.splitLine(lines[1], delim)
	if len(first) == 0 || len(second) == 0 {
		return false
	}

	headerish, dataish := 0, 0
	for _, cell := range first {
		cell = strings.TrimSpace(cell)
		if looksLikeHeader(cell) {
			headerish++
		}
		if looksLikeData(cell) {
			dataish++
		}
	}
	return headerish > dataish
}

// splitLine splits one line on delim, respecting the quote character.
// Quote characters are stripped the way the scanner strips them.
func (s *Sniffer) splitLine(line string, delim rune) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == s.quote:
			inQuotes = !inQuotes
		case ch == delim && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	fields = append(fields, current.String())
	return fields
}

// sampleLines returns the non-empty lines of the sample.
func sampleLines(sample string) []string {
	raw := strings.FieldsFunc(sample, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// looksLikeHeader reports whether a cell reads as a column name:
// non-numeric, starting with a letter or underscore, and made of
// identifier-like characters (letters, digits, '_', '-', ' ').
func looksLikeHeader(cell string) bool {
	if cell == "" || isNumeric(cell) {
		return false
	}
	first := rune(cell[0])
	if !unicode.IsLetter(first) && first != '_' {
		return false
	}
	for _, ch := range cell {
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' && ch != '-' && ch != ' ' {
			return false
		}
	}
	return true
}

// looksLikeData reports whether a cell reads as a data value: numeric,
// email-like, or a common date shape.
func looksLikeData(cell string) bool {
	if cell == "" {
		return false
	}
	if isNumeric(cell) {
		return true
	}
	if strings.ContainsRune(cell, '@') {
		return true
	}
	digits := 0
	for _, ch := range cell {
		if unicode.IsDigit(ch) {
			digits++
		}
	}
	// Dates and timestamps are digit-heavy.
	return digits >= len(cell)/2 && digits >= 4
}

// isNumeric reports whether cell parses as a plain decimal number.
func isNumeric(cell string) bool {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return false
	}
	if cell[0] == '-' || cell[0] == '+' {
		cell = cell[1:]
		if cell == "" {
			return false
		}
	}
	sawDot := false
	for _, ch := range cell {
		switch {
		case ch == '.':
			if sawDot {
				return false
			}
			sawDot = true
		case !unicode.IsDigit(ch):
			return false
		}
	}
	return true
}
