package app

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/willabides/kongplete"

	"github.com/cashapp/triple"
	"github.com/cashapp/triple/ui"
)

const help = `Parse and inspect platform triples of the form <arch>-<vendor>-<os>[-<abi>].`

// Config for the main triple command-line application.
type Config struct {
	Version     string
	LogLevel    ui.Level
	KongOptions []kong.Option
	KongPlugins kong.Plugins
}

// Main runs the triple command-line application with the given config.
func Main(config Config) {
	stdoutIsTTY := isatty.IsTerminal(os.Stdout.Fd())
	stderrIsTTY := isatty.IsTerminal(os.Stderr.Fd())
	p := ui.New(ui.AutoLevel(config.LogLevel), os.Stdout, os.Stderr, stdoutIsTTY, stderrIsTTY)

	cli := &cli{Plugins: config.KongPlugins}
	kongOptions := []kong.Option{
		kong.UsageOnError(),
		kong.Description(help),
		kong.Bind(p),
		kong.Vars{"version": config.Version},
		kong.HelpOptions{Compact: true},
	}
	kongOptions = append(kongOptions, config.KongOptions...)

	parser := kong.Must(cli, kongOptions...)
	kongplete.Complete(parser, kongplete.WithPredictor("triple", &triple.Predictor{}))

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	p.SetLevel(cli.level())

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
