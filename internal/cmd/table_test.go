package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestBuildTableExport(t *testing.T) {
	export, err := buildTableExport()
	require.NoError(t, err)
	require.NotEmpty(t, export.Units)

	rows := map[string][]string{}
	for _, r := range export.Units {
		rows[r.Unit] = r.Keys
	}
	assert.Equal(t, []string{"x", "t", "u"}, rows["っ"])
	assert.Equal(t, []string{"left_shift+slash"}, rows["？"])
	assert.Equal(t, []string{"period"}, rows["。"])
}

func TestTableWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	c := &Table{Format: "yaml"}
	require.NoError(t, c.writeTo(discardLogger(), &buf))

	var decoded tableExport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	expected, err := buildTableExport()
	require.NoError(t, err)
	assert.Equal(t, expected, decoded)
}

func TestTableWriteFormats(t *testing.T) {
	tests := []struct {
		format   string
		contains string
	}{
		{format: "json", contains: `"unit": "あ"`},
		{format: "toml", contains: `[[units]]`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			c := &Table{Format: tt.format}
			require.NoError(t, c.writeTo(discardLogger(), &buf))
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}
