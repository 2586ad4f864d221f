package command

import (
	"context"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/sghaida/solid/internal/config"
	"github.com/sghaida/solid/internal/output"
)

// NewCommonFlags returns the flags every lesson command takes. ns is the
// lesson name and the YAML namespace for per-lesson overrides.
func NewCommonFlags(ns string, cfg config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"o"},
			Usage:   "output format: text or json",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".format", altsrc.StringSourcer(cfg.Source)),
			),
			Value: cfg.Format,
			Validator: func(s string) error {
				if s != "text" && s != "json" {
					return output.UnknownFormatError{Format: s}
				}
				return nil
			},
		},
		&cli.BoolFlag{
			Name:        "naive",
			Aliases:     []string{"n"},
			Usage:       "run the problem version instead of the solution",
			HideDefault: true,
		},
	}
}

// emit writes report to the root command's writer in the requested format.
func emit(cmd *cli.Command, report output.Report) error {
	return output.Write(cmd.Root().Writer, cmd.String("format"), report)
}

// version names the lesson variant selected by --naive.
func version(cmd *cli.Command) string {
	if cmd.Bool("naive") {
		return versionProblem
	}
	return versionSolution
}

// runAction adapts a report-producing function to a cli action.
func runAction(fn func(ctx context.Context, cmd *cli.Command) (output.Report, error)) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		report, err := fn(ctx, cmd)
		if err != nil {
			return err
		}
		return emit(cmd, report)
	}
}
