/*
donut loads Pure3D (.p3d) asset files into a resource manager and
reports what they hold.
*/
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/spaghettifunk/donut/engine/core"
	"github.com/spaghettifunk/donut/engine/p3d"
)

var CLI struct {
	Debug  bool   `help:"Whether to enable debug logging."`
	Config string `help:"TOML configuration file." short:"c" type:"existingfile"`

	Load struct {
		Files []string `arg:"" optional:"" name:"files" help:"P3D files to load, in order. Defaults to assets.files of the config." type:"path"`
		Watch bool     `help:"Keep running and reload files under assets.root when they change."`
		Names bool     `help:"List the name of every loaded resource."`
		YAML  bool     `name:"yaml" help:"Print the report as YAML."`
	} `cmd:"" help:"Load P3D files and print what they contain."`

	Tree struct {
		File  string `arg:"" name:"file" help:"P3D file to print." type:"existingfile"`
		Plain bool   `help:"Print without colour."`
	} `cmd:"" help:"Print the chunk tree of a P3D file."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("donut"),
		kong.Description("a Pure3D asset loader"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	cfg, err := core.LoadConfig(CLI.Config)
	if err != nil {
		writeError(err)
	}
	if CLI.Debug {
		cfg.Log.Level = "debug"
	}
	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		writeError(err)
	}
	core.LogDebug("debug logging enabled")

	switch ctx.Command() {
	case "load", "load <files>":
		if CLI.Load.Watch {
			cfg.Assets.Watch = true
		}
		out := reportOptions{names: CLI.Load.Names, yaml: CLI.Load.YAML}
		if err := loadCommand(cfg, CLI.Load.Files, out); err != nil {
			writeError(err)
		}
	case "tree <file>":
		f, err := p3d.ReadFile(CLI.Tree.File)
		if err != nil {
			writeError(err)
		}
		if CLI.Tree.Plain {
			err = p3d.Dump(os.Stdout, f.Root)
		} else {
			err = printTree(os.Stdout, f.Root)
		}
		if err != nil {
			writeError(err)
		}
	}
}
