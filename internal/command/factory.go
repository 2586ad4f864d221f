package command

import (
	"context"

	"github.com/apex/log"
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/sghaida/solid/creational/factory"
	"github.com/sghaida/solid/internal/config"
	"github.com/sghaida/solid/internal/output"
)

// FactoryCommandAction localizes the given words.
//
// The problem version builds the three concrete localizers by hand and prints
// every word in every language. The solution asks reg for --lang.
func FactoryCommandAction(reg *factory.Registry) func(context.Context, *cli.Command) (output.Report, error) {
	return func(_ context.Context, cmd *cli.Command) (output.Report, error) {
		report := output.Report{Lesson: "factory", Version: version(cmd)}

		if cmd.Bool("list") {
			for _, name := range reg.Names() {
				report.Add("language", name)
			}
			return report, nil
		}

		words := cmd.Args().Slice()
		if len(words) == 0 {
			words = factory.DemoWords
		}

		if cmd.Bool("naive") {
			f := factory.NewFrenchLocalizer()
			e := factory.NewEnglishLocalizer()
			s := factory.NewSpanishLocalizer()
			for _, w := range words {
				report.Add(w, f.Localize(w))
				report.Add(w, e.Localize(w))
				report.Add(w, s.Localize(w))
			}
			return report, nil
		}

		lang := cmd.String("lang")
		if lang == "" {
			lang = factory.DefaultLanguage
		}
		l, err := reg.New(lang)
		if err != nil {
			return output.Report{}, err
		}
		log.WithField("language", lang).Debug("localizing")

		for i, t := range factory.Translate(l, words) {
			report.Add(words[i], t)
		}
		return report, nil
	}
}

// FactoryCommandBuilder constructs the "factory" subcommand.
func FactoryCommandBuilder(cfg config.Config, reg *factory.Registry) *cli.Command {
	return &cli.Command{
		Name:      "factory",
		Usage:     "Factory Method: pick a localizer by language",
		UsageText: "solid factory [options] [word...]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "language to localize into",
				Sources: cli.NewValueSourceChain(
					yaml.YAML("factory.language", altsrc.StringSourcer(cfg.Source)),
				),
				Value: cfg.Language,
			},
			&cli.BoolFlag{
				Name:        "list",
				Usage:       "list registered languages",
				HideDefault: true,
			},
		}, NewCommonFlags("factory", cfg)...),
		Action: runAction(FactoryCommandAction(reg)),
	}
}
