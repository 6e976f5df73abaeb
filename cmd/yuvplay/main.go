// Package main provides the CLI entry point for yuvplay.
package main

import (
	"fmt"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the command-line application.
func newApp() *cli.App {
	return &cli.App{
		Name:    "yuvplay",
		Usage:   l10n.T("Render raw I420 video onto a resizable surface"),
		Version: version,
		Description: l10n.T("yuvplay plays headerless I420 files through the frame renderer, " +
			"applying container resizes and visibility changes between frames."),
		Commands: []*cli.Command{
			playCommand(),
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, l10n.F("yuvplay version %s", version))
					return nil
				},
			},
		},
	}
}
