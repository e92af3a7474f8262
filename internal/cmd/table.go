package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/nicolagen/internal/render"
	"github.com/Alia5/nicolagen/nicola"
)

// Table prints the romaji keystroke table.
type Table struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"yaml" env:"NICOLAGEN_TABLE_FORMAT"`
}

type tableRow struct {
	Unit string   `json:"unit" yaml:"unit" toml:"unit"`
	Keys []string `json:"keys" yaml:"keys" toml:"keys"`
}

type tableExport struct {
	Units []tableRow `json:"units" yaml:"units" toml:"units"`
}

// Run is called by Kong when the table command is executed.
func (c *Table) Run(logger *slog.Logger) error {
	return c.writeTo(logger, os.Stdout)
}

func (c *Table) writeTo(logger *slog.Logger, w io.Writer) error {
	export, err := buildTableExport()
	if err != nil {
		return err
	}
	data, err := render.Encode(c.Format, export)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	logger.Debug("Keystroke table written", "units", len(export.Units), "format", c.Format)
	return nil
}

func buildTableExport() (tableExport, error) {
	units := nicola.Units()
	out := tableExport{Units: make([]tableRow, 0, len(units))}
	for _, u := range units {
		ks, err := nicola.Lookup(u)
		if err != nil {
			return tableExport{}, err
		}
		row := tableRow{Unit: u}
		for _, ev := range ks {
			row.Keys = append(row.Keys, strings.Join(append(append([]string(nil), ev.Modifiers...), ev.KeyCode), "+"))
		}
		out.Units = append(out.Units, row)
	}
	return out, nil
}
