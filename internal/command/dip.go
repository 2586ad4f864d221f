package command

import (
	"bytes"
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/sghaida/solid/internal/config"
	"github.com/sghaida/solid/internal/output"
	"github.com/sghaida/solid/solid/dip"
)

// DipCommandAction displays data through a front end.
//
// The problem version always reads the concrete BackEnd. The solution resolves
// --source from the registry and hands it to FrontEnd.
func DipCommandAction(sources *dip.Sources) func(context.Context, *cli.Command) (output.Report, error) {
	return func(_ context.Context, cmd *cli.Command) (output.Report, error) {
		report := output.Report{Lesson: "dip", Version: version(cmd)}
		var buf bytes.Buffer

		if cmd.Bool("naive") {
			if err := dip.NewTightFrontEnd(&dip.BackEnd{}).DisplayData(&buf); err != nil {
				return output.Report{}, err
			}
			report.Add("backend", "database")
		} else {
			name := cmd.String("source")
			src, err := sources.Resolve(name)
			if err != nil {
				return output.Report{}, err
			}
			fe, err := dip.NewFrontEnd(src)
			if err != nil {
				return output.Report{}, err
			}
			if err := fe.DisplayData(&buf); err != nil {
				return output.Report{}, err
			}
			report.Add("source", name)
		}

		report.Add("display", strings.TrimSuffix(buf.String(), "\n"))
		return report, nil
	}
}

// DipCommandBuilder constructs the "dip" subcommand.
func DipCommandBuilder(cfg config.Config) *cli.Command {
	sources := dip.DefaultSources()
	return &cli.Command{
		Name:      "dip",
		Usage:     "Dependency Inversion Principle: front end over a data source",
		UsageText: "solid dip [--source database|api] [--naive]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "source",
				Usage: "data source: " + strings.Join(sources.Names(), ", "),
				Value: "database",
			},
		}, NewCommonFlags("dip", cfg)...),
		Action: runAction(DipCommandAction(sources)),
	}
}
