package csv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/flexcsv/pkg/csv"
)

func TestDefaultOptions(t *testing.T) {
	opts := csv.DefaultOptions()

	assert.Equal(t, ',', opts.Comma)
	assert.Equal(t, '"', opts.Quote)
	assert.Equal(t, "\n", opts.LineEnd)
	assert.False(t, opts.HasHeader)
	assert.False(t, opts.Strict)
	assert.NoError(t, opts.Validate())
}

func TestNewWithOptionsDefaulting(t *testing.T) {
	// Unset fields are overlaid with defaults before validation.
	c, err := csv.NewWithOptions(csv.Options{HasHeader: true})
	require.NoError(t, err)

	opts := c.Options()
	assert.Equal(t, ',', opts.Comma)
	assert.Equal(t, '"', opts.Quote)
	assert.Equal(t, "\n", opts.LineEnd)
	assert.True(t, opts.HasHeader)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name      string
		opts      csv.Options
		wantField string
	}{
		{
			name:      "newline delimiter",
			opts:      csv.Options{Comma: '\n'},
			wantField: "Comma",
		},
		{
			name:      "carriage return delimiter",
			opts:      csv.Options{Comma: '\r'},
			wantField: "Comma",
		},
		{
			name:      "replacement rune delimiter",
			opts:      csv.Options{Comma: 0xFFFD},
			wantField: "Comma",
		},
		{
			name:      "newline quote",
			opts:      csv.Options{Quote: '\n'},
			wantField: "Quote",
		},
		{
			name:      "quote equals delimiter",
			opts:      csv.Options{Comma: ';', Quote: ';'},
			wantField: "Quote",
		},
		{
			name:      "line end with stray characters",
			opts:      csv.Options{LineEnd: "\n "},
			wantField: "LineEnd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			require.Error(t, err)

			var oe *csv.OptionsError
			require.ErrorAs(t, err, &oe)
			assert.Equal(t, tt.wantField, oe.Field)

			// Construction fails fast with the same error.
			_, err = csv.NewWithOptions(tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestOptionsValidateAccepts(t *testing.T) {
	for _, opts := range []csv.Options{
		{Comma: '\t'},
		{Comma: ';', Quote: '\''},
		{Comma: '|', LineEnd: "\r\n"},
		{Comma: ';', Quote: '"', LineEnd: "\r"},
	} {
		assert.NoError(t, opts.Validate(), "options %+v", opts)
	}
}

func TestOptionsErrorMessage(t *testing.T) {
	err := csv.Options{Comma: ';', Quote: ';'}.Validate()
	require.Error(t, err)
	assert.Equal(t, "csv: invalid Quote: quote character same as delimiter", err.Error())
}
