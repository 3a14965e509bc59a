package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValid(t *testing.T) {
	tests := []struct {
		format Format
		valid  bool
	}{
		{FormatYAML, true},
		{FormatJSON, true},
		{FormatTable, true},
		{Format("xml"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		ok    bool
	}{
		{"yaml", FormatYAML, true},
		{"YML", FormatYAML, true},
		{"JSON", FormatJSON, true},
		{"table", FormatTable, true},
		{"xml", Format("xml"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestWriteValue(t *testing.T) {
	v := struct {
		Name string `json:"name" yaml:"name"`
	}{Name: "Windows.Universal"}

	var buf bytes.Buffer
	require.NoError(t, WriteValue(&buf, v, FormatYAML))
	assert.Equal(t, "name: Windows.Universal\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteValue(&buf, v, FormatJSON))
	assert.Equal(t, "{\n  \"name\": \"Windows.Universal\"\n}\n", buf.String())

	assert.Error(t, WriteValue(&buf, v, FormatTable))
}
