// Package config defines the command line surface parsed by Kong.
package config

import (
	"github.com/Alia5/nicolagen/internal/cmd"
	"github.com/Alia5/nicolagen/internal/log"
)

// CLI is the root command. Running without a command generates the ruleset.
type CLI struct {
	ConfigFile string     `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"NICOLAGEN_CONFIG"`
	Log        log.Config `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Print the Karabiner complex modification (default)"`
	Table    cmd.Table         `cmd:"" help:"Print the romaji keystroke table"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
