// Command solid runs the Factory Method and SOLID lessons from the command line.
//
// Each subcommand runs the corrected design by default and the flawed one with --naive:
//
//	solid factory --lang French car bike
//	solid ocp --shape circle --radius 5
//	solid lsp --naive
//	solid dip --source api --format json
//
// Settings come from $SOLID_CONFIG or ./solid.yaml, then SOLID_* environment variables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"

	_ "github.com/sghaida/solid/creational/factory/locales"
	"github.com/sghaida/solid/internal/command"
	"github.com/sghaida/solid/internal/config"
	mylog "github.com/sghaida/solid/internal/log"
)

func main() {
	os.Exit(realMain(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// realMain returns 1 for setup failures and 2 for command failures.
func realMain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 1
	}
	mylog.Init(cfg.LogLevel, stderr)
	log.WithField("source", cfg.Source).Debug("config ready")

	if len(args) < 2 {
		fmt.Fprintln(stderr, "No command specified.")
		args = append(args, "--help")
	}

	app, err := command.InitApp(ctx, cfg)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	return 0
}
