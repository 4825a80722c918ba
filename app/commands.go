package app

import (
	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/cashapp/triple/ui"
)

// CLI structure.
type cli struct {
	VersionFlag kong.VersionFlag `help:"Show version." name:"version"`
	Debug       bool             `help:"Enable debug logging." short:"d"`
	Trace       bool             `help:"Enable trace logging." short:"t"`
	Quiet       bool             `help:"Disable logging except fatal errors." env:"TRIPLE_QUIET" short:"q"`
	Level       ui.Level         `help:"Set minimum log level (${enum})." env:"TRIPLE_LOG" default:"auto" enum:"auto,trace,debug,info,warn,error,fatal"`

	Parse   parseCmd   `cmd:"" help:"Parse triple identifiers and show their classification."`
	Ext     extCmd     `cmd:"" help:"Show file extension conventions for a triple's OS."`
	Host    hostCmd    `cmd:"" help:"Show the triple this binary was built for."`
	List    listCmd    `cmd:"" help:"List well-known triples."`
	Version versionCmd `cmd:"" help:"Show version."`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions."`

	kong.Plugins
}

func (c *cli) level() ui.Level {
	switch {
	case c.Quiet:
		return ui.LevelFatal
	case c.Trace:
		return ui.LevelTrace
	case c.Debug:
		return ui.LevelDebug
	}
	return ui.AutoLevel(c.Level)
}
