package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("NICOLAGEN_CONFIG", "")

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "none", args: nil, expected: ""},
		{name: "equals form", args: []string{"generate", "--config=layout.yaml"}, expected: "layout.yaml"},
		{name: "separate value", args: []string{"--config", "layout.toml", "table"}, expected: "layout.toml"},
		{name: "dangling flag", args: []string{"--config"}, expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, findUserConfig(tt.args))
		})
	}
}

func TestFindUserConfigFromEnv(t *testing.T) {
	t.Setenv("NICOLAGEN_CONFIG", "/etc/nicolagen/custom.json")
	assert.Equal(t, "/etc/nicolagen/custom.json", findUserConfig(nil))
	assert.Equal(t, "flag.json", findUserConfig([]string{"--config=flag.json"}))
}
