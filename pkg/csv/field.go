package csv

import (
	"fmt"
	"strconv"
)

// FieldKind discriminates the variants a generated field can take.
type FieldKind int

const (
	// KindNull is the absent field. It renders as an empty field.
	KindNull FieldKind = iota
	// KindString is a text field, escaped on demand.
	KindString
	// KindNumber is a numeric field, never escaped.
	KindNumber
	// KindBool is a boolean field, never escaped.
	KindBool
)

// String returns the string representation of FieldKind.
func (k FieldKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field is one generator input value: text, number, boolean, or absent.
// The zero value is the absent field.
//
// Numbers and booleans are rendered with strconv and skip escaping entirely:
// their canonical forms cannot contain the delimiter, quote, or a newline for
// any delimiter Options.Validate accepts, with one documented exception - a
// delimiter chosen from number syntax itself (digits, '.', '-', '+', 'e') is
// the caller's responsibility. Text that must be escaped has to be passed as
// a string field, never smuggled through a non-text kind.
type Field struct {
	kind FieldKind
	s    string
	n    float64
	b    bool
}

// String returns a text field.
func String(s string) Field {
	return Field{kind: KindString, s: s}
}

// Number returns a numeric field.
func Number(n float64) Field {
	return Field{kind: KindNumber, n: n}
}

// Bool returns a boolean field.
func Bool(b bool) Field {
	return Field{kind: KindBool, b: b}
}

// Null returns the absent field.
func Null() Field {
	return Field{kind: KindNull}
}

// Kind returns the field's variant tag.
func (f Field) Kind() FieldKind {
	return f.kind
}

// scalar renders the field's raw value without any escaping.
func (f Field) scalar() string {
	switch f.kind {
	case KindString:
		return f.s
	case KindNumber:
		return strconv.FormatFloat(f.n, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(f.b)
	default:
		return ""
	}
}

// Row converts Go scalar values into a row of fields.
// Supported types: string, bool, nil, and the numeric kinds (which are
// widened to float64). Any other type is a contract violation and fails fast.
func Row(values ...any) ([]Field, error) {
	row := make([]Field, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
			row[i] = Null()
		case string:
			row[i] = String(x)
		case bool:
			row[i] = Bool(x)
		case float64:
			row[i] = Number(x)
		case float32:
			row[i] = Number(float64(x))
		case int:
			row[i] = Number(float64(x))
		case int8:
			row[i] = Number(float64(x))
		case int16:
			row[i] = Number(float64(x))
		case int32:
			row[i] = Number(float64(x))
		case int64:
			row[i] = Number(float64(x))
		case uint:
			row[i] = Number(float64(x))
		case uint8:
			row[i] = Number(float64(x))
		case uint16:
			row[i] = Number(float64(x))
		case uint32:
			row[i] = Number(float64(x))
		case uint64:
			row[i] = Number(float64(x))
		default:
			return nil, fmt.Errorf("%w: %T at index %d", ErrFieldType, v, i)
		}
	}
	return row, nil
}

// StringRow converts a row of plain strings into text fields.
func StringRow(values []string) []Field {
	row := make([]Field, len(values))
	for i, s := range values {
		row[i] = String(s)
	}
	return row
}
