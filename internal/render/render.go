// Package render encodes auxiliary exports (keystroke table, config
// templates) as JSON, YAML or TOML.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Encoder turns a value into bytes in one format.
type Encoder func(v any) ([]byte, error)

var encoders = map[string]Encoder{
	"json": encodeJSON,
	"yaml": yaml.Marshal,
	"toml": toml.Marshal,
}

// Formats lists the supported format names.
func Formats() []string {
	out := make([]string, 0, len(encoders))
	for k := range encoders {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Normalize maps aliases such as "yml" to a format name. It returns ""
// for unsupported formats.
func Normalize(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// Extension returns the file extension used for format.
func Extension(format string) string {
	if f := Normalize(format); f != "" {
		return f
	}
	return "json"
}

// Encode renders v in format.
func Encode(format string, v any) ([]byte, error) {
	enc, ok := encoders[Normalize(format)]
	if !ok {
		return nil, fmt.Errorf("unsupported format '%s' (supported: %v)", format, Formats())
	}
	return enc(v)
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
