package scanner

import (
	"errors"
	"testing"
)

// FuzzScan checks that the permissive scan accepts arbitrary input and that
// strict mode fails only with a positioned error.
func FuzzScan(f *testing.F) {
	f.Add("a,b\nc,d")
	f.Add(`"a,b",c`)
	f.Add(`"he said ""hi"""`)
	f.Add("\"unterminated")
	f.Add("a\"bare")
	f.Add("\r\n\r\n")
	f.Add("héllo,wörld")
	f.Add(",,,")

	f.Fuzz(func(t *testing.T, input string) {
		rows, err := Scan(input, Config{})
		if err != nil {
			t.Fatalf("permissive Scan rejected input: %v", err)
		}
		if rows == nil {
			t.Fatal("permissive Scan returned nil rows")
		}
		for _, row := range rows {
			if len(row) == 0 {
				t.Fatal("scan produced a row with zero fields")
			}
		}

		if _, err := Scan(input, Config{Strict: true}); err != nil {
			var se *Error
			if !errors.As(err, &se) {
				t.Fatalf("strict Scan error = %T, want *Error", err)
			}
			if se.Line < 1 || se.Column < 1 {
				t.Fatalf("strict error position %d:%d not 1-indexed", se.Line, se.Column)
			}
		}
	})
}
