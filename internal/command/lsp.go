package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/sghaida/solid/internal/config"
	"github.com/sghaida/solid/internal/output"
	"github.com/sghaida/solid/solid/lsp"
)

// LspCommandAction shows substitution breaking (problem) or sibling shapes (solution).
func LspCommandAction(_ context.Context, cmd *cli.Command) (output.Report, error) {
	report := output.Report{Lesson: "lsp", Version: version(cmd)}

	if cmd.Bool("naive") {
		checks := []struct {
			label string
			r     lsp.Resizable
		}{
			{"rectangle", lsp.NewMutableRectangle(cmd.Float("width"), cmd.Float("height"))},
			{"square", lsp.NewLinkedSquare(cmd.Float("side"))},
		}
		for _, c := range checks {
			if err := lsp.CheckSubstitution(c.r); err != nil {
				report.Add(c.label, err.Error())
				continue
			}
			report.Add(c.label, "substitutable")
		}
		return report, nil
	}

	report.Add("rectangle", lsp.NewRectangle(cmd.Float("width"), cmd.Float("height")).Area())
	report.Add("square", lsp.NewSquare(cmd.Float("side")).Area())
	return report, nil
}

// LspCommandBuilder constructs the "lsp" subcommand.
func LspCommandBuilder(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:      "lsp",
		Usage:     "Liskov Substitution Principle: rectangles and squares",
		UsageText: "solid lsp [--width 10 --height 5 --side 4] [--naive]",
		Flags: append([]cli.Flag{
			&cli.FloatFlag{Name: "width", Usage: "rectangle width", Value: 10},
			&cli.FloatFlag{Name: "height", Usage: "rectangle height", Value: 5},
			&cli.FloatFlag{Name: "side", Usage: "square side", Value: 4},
		}, NewCommonFlags("lsp", cfg)...),
		Action: runAction(LspCommandAction),
	}
}
