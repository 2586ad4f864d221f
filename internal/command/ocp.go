package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/sghaida/solid/internal/config"
	"github.com/sghaida/solid/internal/output"
	"github.com/sghaida/solid/solid/ocp"
)

var dimensionNames = []string{"width", "height", "radius", "side"}

// paramsFromFlags collects only the dimensions the user actually set.
func paramsFromFlags(cmd *cli.Command) ocp.Params {
	p := ocp.Params{}
	for _, name := range dimensionNames {
		if cmd.IsSet(name) {
			p[name] = cmd.Float(name)
		}
	}
	return p
}

// OcpCommandAction computes the area of --shape.
func OcpCommandAction(_ context.Context, cmd *cli.Command) (output.Report, error) {
	report := output.Report{Lesson: "ocp", Version: version(cmd)}
	shape := cmd.String("shape")
	params := paramsFromFlags(cmd)

	if cmd.Bool("naive") {
		s, err := ocp.NewConditionalShape(shape, params)
		if err != nil {
			return output.Report{}, err
		}
		area, err := s.Area()
		if err != nil {
			return output.Report{}, err
		}
		report.Add("type", s.ShapeType).Add("area", area)
		return report, nil
	}

	s, err := ocp.NewBuilders().Build(shape, params)
	if err != nil {
		return output.Report{}, err
	}
	report.Add("type", s.Type()).Add("area", s.Area())
	return report, nil
}

// OcpCommandBuilder constructs the "ocp" subcommand.
func OcpCommandBuilder(cfg config.Config) *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "shape",
			Aliases: []string{"s"},
			Usage:   "shape to build: circle, rectangle or square",
			Value:   "rectangle",
		},
	}
	for _, name := range dimensionNames {
		flags = append(flags, &cli.FloatFlag{Name: name, Usage: name + " of the shape"})
	}

	return &cli.Command{
		Name:      "ocp",
		Usage:     "Open-Closed Principle: area of a shape",
		UsageText: "solid ocp --shape rectangle --width 10 --height 5",
		Flags:     append(flags, NewCommonFlags("ocp", cfg)...),
		Action:    runAction(OcpCommandAction),
	}
}
