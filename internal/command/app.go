// Package command builds the solid CLI: one subcommand per lesson.
package command

import (
	"context"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/sghaida/solid/creational/factory"
	"github.com/sghaida/solid/internal/config"
)

// Lesson versions reported in output.
const (
	versionProblem  = "problem"
	versionSolution = "solution"
)

// InitApp builds the root command for cfg.
//
// Extra vocabularies from cfg are registered into a copy of factory.Default, so
// the factory lesson is extended without touching its code.
func InitApp(_ context.Context, cfg config.Config) (*cli.Command, error) {
	reg := factory.Default.Clone()
	langs := make([]string, 0, len(cfg.Vocabularies))
	for lang := range cfg.Vocabularies {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		words := cfg.Vocabularies[lang]
		if err := reg.Register(lang, func() factory.Localizer {
			return factory.NewTableLocalizer(words)
		}); err != nil {
			return nil, err
		}
	}
	log.Debugf("languages: %v", reg.Names())

	app := &cli.Command{
		Name:  "solid",
		Usage: "run Factory Method and SOLID lessons",
	}

	app.Commands = append(app.Commands,
		FactoryCommandBuilder(cfg, reg),
		OcpCommandBuilder(cfg),
		LspCommandBuilder(cfg),
		DipCommandBuilder(cfg),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
