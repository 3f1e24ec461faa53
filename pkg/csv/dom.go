// Package csv provides a user-friendly DOM for parsed CSV tables.
//
// Document represents a table with optional headers and data records:
//
//	doc := csv.NewDocument().
//		SetHeaders([]string{"name", "age"}).
//		AddRecord([]string{"Alice", "30"})
//
// Record provides access to one row's fields by index or by header name:
//
//	record, _ := doc.GetRecord(0)
//	name, _ := record.GetByName("name")
//
// ParseDocument builds a Document directly from CSV text, splitting off the
// header row when the codec has header mode enabled.
package csv

import "fmt"

// Document represents a CSV table with a fluent API for manipulation.
// Setter methods return *Document to enable method chaining.
type Document struct {
	headers []string
	records [][]string
}

// Record represents a single row with access by index or header name.
type Record struct {
	fields  []string
	headers []string
}

// NewDocument creates an empty Document.
func NewDocument() *Document {
	return &Document{
		headers: []string{},
		records: make([][]string, 0),
	}
}

// SetHeaders sets the column headers. Headers drive Record.GetByName and the
// keys produced by Record.Map. Returns the Document for chaining.
func (d *Document) SetHeaders(headers []string) *Document {
	d.headers = headers
	return d
}

// AddRecord appends a data row. Returns the Document for chaining.
func (d *Document) AddRecord(fields []string) *Document {
	d.records = append(d.records, fields)
	return d
}

// Headers returns the column headers, empty if none were set.
func (d *Document) Headers() []string {
	return d.headers
}

// Records returns all data rows as Record values.
func (d *Document) Records() []Record {
	records := make([]Record, len(d.records))
	for i, fields := range d.records {
		records[i] = Record{fields: fields, headers: d.headers}
	}
	return records
}

// RecordCount returns the number of data rows, excluding the header.
func (d *Document) RecordCount() int {
	return len(d.records)
}

// GetRecord returns the data row at index, 0-based.
// Returns (Record{}, false) when index is out of bounds.
func (d *Document) GetRecord(index int) (Record, bool) {
	if index < 0 || index >= len(d.records) {
		return Record{}, false
	}
	return Record{fields: d.records[index], headers: d.headers}, true
}

// CSV renders the Document back to CSV text using the given codec's
// delimiter, quote, and line terminator. The header row, when set, comes
// first. Like Generate, no trailing terminator is appended.
func (d *Document) CSV(c *Codec) (string, error) {
	rows := make([][]string, 0, len(d.records)+1)
	if len(d.headers) > 0 {
		rows = append(rows, d.headers)
	}
	rows = append(rows, d.records...)
	return c.GenerateStrings(rows)
}

// Get returns the field at index, 0-based.
// Returns ("", false) when index is out of bounds.
func (r Record) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName returns the field under the given header name.
// Returns ("", false) when the name is unknown or no headers are set.
func (r Record) GetByName(name string) (string, bool) {
	for i, header := range r.headers {
		if header == name {
			return r.Get(i)
		}
	}
	return "", false
}

// Map returns the row as a header-keyed mapping. Fields beyond the header's
// length get synthesized keys of the form "f_<1-based-index>"; headers with
// no corresponding field are omitted.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.fields))
	for i, value := range r.fields {
		if i < len(r.headers) {
			m[r.headers[i]] = value
		} else {
			m[fmt.Sprintf("f_%d", i+1)] = value
		}
	}
	return m
}

// Fields returns a copy of the row's field values.
func (r Record) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Len returns the number of fields in the row.
func (r Record) Len() int {
	return len(r.fields)
}
