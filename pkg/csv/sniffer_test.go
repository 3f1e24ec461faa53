package csv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/flexcsv/pkg/csv"
)

func TestSnifferDetectDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   rune
	}{
		{
			name:   "comma",
			sample: "a,b,c\n1,2,3\n4,5,6",
			want:   ',',
		},
		{
			name:   "tab",
			sample: "a\tb\tc\n1\t2\t3",
			want:   '\t',
		},
		{
			name:   "semicolon",
			sample: "a;b;c\n1;2;3",
			want:   ';',
		},
		{
			name:   "pipe",
			sample: "a|b|c\n1|2|3",
			want:   '|',
		},
		{
			name:   "quoted commas do not fool semicolon detection",
			sample: "\"a,x\";b\n\"c,y\";d",
			want:   ';',
		},
		{
			name:   "consistency beats raw count",
			sample: "a;b;c\n1,2;3;4\n5;6;7",
			want:   ';',
		},
		{
			name:   "empty sample falls back to comma",
			sample: "",
			want:   ',',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := csv.NewSniffer(tt.sample)
			assert.Equal(t, tt.want, s.DetectDelimiter())
		})
	}
}

func TestSnifferHasHeader(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   bool
	}{
		{
			name:   "identifier header over numeric data",
			sample: "name,age,score\nAlice,30,97.5\nBob,25,88.0",
			want:   true,
		},
		{
			name:   "numeric first row",
			sample: "1,2,3\n4,5,6",
			want:   false,
		},
		{
			name:   "single line",
			sample: "name,age",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := csv.NewSniffer(tt.sample)
			assert.Equal(t, tt.want, s.HasHeader())
		})
	}
}

func TestSnifferOptions(t *testing.T) {
	s := csv.NewSniffer("name;age\nAlice;30\nBob;25")
	opts := s.Options()

	assert.Equal(t, ';', opts.Comma)
	assert.Equal(t, '"', opts.Quote)
	assert.True(t, opts.HasHeader)
	require.NoError(t, opts.Validate())

	// The sniffed options feed straight into a codec.
	c, err := csv.NewWithOptions(opts)
	require.NoError(t, err)
	records, err := c.ParseRecords("name;age\nAlice;30")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0]["name"])
}

func TestSnifferCustomQuote(t *testing.T) {
	s := csv.NewSnifferWithQuote("'a;x';b\n'c;y';d", '\'')
	assert.Equal(t, ';', s.DetectDelimiter())
}
