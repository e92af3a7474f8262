package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/crypto/blake2b"

	"github.com/Alia5/nicolagen/internal/configpaths"
	"github.com/Alia5/nicolagen/internal/schema"
	"github.com/Alia5/nicolagen/karabiner"
	"github.com/Alia5/nicolagen/nicola"
)

type Generate struct {
	Output        string `help:"Write the document to this file instead of stdout" short:"o" type:"path" env:"NICOLAGEN_OUTPUT"`
	Title         string `help:"Document title (defaults to the layout title)" env:"NICOLAGEN_TITLE"`
	Description   string `help:"Rule description (defaults to the layout description)" env:"NICOLAGEN_DESCRIPTION"`
	LeftShiftKey  string `help:"key_code of the left thumb shift" default:"spacebar" env:"NICOLAGEN_LEFT_SHIFT_KEY"`
	RightShiftKey string `help:"key_code of the right thumb shift" default:"lang1" env:"NICOLAGEN_RIGHT_SHIFT_KEY"`
	NoValidate    bool   `help:"Skip schema validation of the rendered document" env:"NICOLAGEN_NO_VALIDATE"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	data, err := g.Render(logger)
	if err != nil {
		return err
	}

	if g.Output == "" {
		return g.write(logger, os.Stdout, "stdout", data)
	}
	if err := configpaths.EnsureDir(g.Output); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(g.Output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := g.write(logger, f, g.Output, data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Render builds, validates and serializes the document without writing it.
func (g *Generate) Render(logger *slog.Logger) ([]byte, error) {
	layout := nicola.HHKB
	if g.Title != "" {
		layout.Title = g.Title
	}
	if g.Description != "" {
		layout.Description = g.Description
	}
	builder := nicola.Builder{LeftShiftKey: g.LeftShiftKey, RightShiftKey: g.RightShiftKey}
	if builder.LeftShiftKey == "" {
		builder.LeftShiftKey = nicola.DefaultLeftShiftKey
	}
	if builder.RightShiftKey == "" {
		builder.RightShiftKey = nicola.DefaultRightShiftKey
	}
	if builder.LeftShiftKey == builder.RightShiftKey {
		return nil, fmt.Errorf("left and right thumb shift must differ (both %q)", builder.LeftShiftKey)
	}

	logger.Debug("Building layout",
		"title", layout.Title,
		"left_shift", builder.LeftShiftKey,
		"right_shift", builder.RightShiftKey)

	for _, w := range nicola.Lint(layout, builder) {
		logger.Warn("Layout warning", "kind", string(w.Kind), "key", w.Key, "unit", w.Unit, "detail", w.Detail)
	}

	doc, err := nicola.Assemble(builder, layout)
	if err != nil {
		return nil, fmt.Errorf("assemble ruleset: %w", err)
	}

	data, err := karabiner.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal ruleset: %w", err)
	}

	if g.NoValidate {
		logger.Debug("Skipping schema validation")
	} else if err := schema.Validate(data); err != nil {
		return nil, err
	}

	manipulators := 0
	for _, r := range doc.Rules {
		manipulators += len(r.Manipulators)
	}
	logger.Info("Ruleset assembled", "rules", len(doc.Rules), "manipulators", manipulators, "bytes", len(data))
	return data, nil
}

func (g *Generate) write(logger *slog.Logger, w io.Writer, dest string, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write ruleset to %s: %w", dest, err)
	}
	sum := blake2b.Sum256(data)
	logger.Info("Ruleset written", "output", dest, "blake2b", hex.EncodeToString(sum[:]))
	return nil
}
