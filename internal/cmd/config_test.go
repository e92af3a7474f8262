package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigTemplate(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		expected map[string]any
	}{
		{
			name:    "generate",
			command: "generate",
			expected: map[string]any{
				"output":          "",
				"title":           "",
				"description":     "",
				"left_shift_key":  "spacebar",
				"right_shift_key": "lang1",
				"no_validate":     false,
				"log":             map[string]any{"level": "info", "file": ""},
			},
		},
		{
			name:    "table",
			command: "table",
			expected: map[string]any{
				"format": "yaml",
				"log":    map[string]any{"level": "info", "file": ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := configTemplate(tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, root)
		})
	}

	_, err := configTemplate("server")
	assert.Error(t, err)
}

func TestConfigInitRun(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nicolagen.json")
	c := &ConfigInit{Command: "generate", Format: "json", Output: dest}
	require.NoError(t, c.Run(discardLogger()))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "spacebar", decoded["left_shift_key"])

	err = c.Run(discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	c.Force = true
	assert.NoError(t, c.Run(discardLogger()))
}

func TestConfigInitTOML(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nicolagen.toml")
	c := &ConfigInit{Command: "table", Format: "toml", Output: dest}
	require.NoError(t, c.Run(discardLogger()))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), `format = "yaml"`)
	assert.Contains(t, string(data), "[log]")
}
