// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plotcmd implements a command to draw
// the probability mass function of a data file.
package plotcmd

import (
	"fmt"
	"image/color"

	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"github.com/jz3707/BayesLearning/freq"
	"github.com/jz3707/BayesLearning/pmf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `plot [--field <name>] [-o|--output <file>]
	[--gray] [<data-file>]`,
	Short: "draw the distribution of a data file",
	Long: `
Command plot reads a data file with observed values, builds the probability
mass function of the values, and draws it as an image, with a vertical line
for each value, with a height equal to the probability of the value.

The argument of the command is the name of the data file. If no file is
given, or the file is "-", the data will be read from the standard input. See
"bayes help data-files" for a description of the file.

By default, the values are read from the field "value". Use the flag --field
to define a different field.

By default, the image will be stored as "pmf.png". Use the flag --output, or
-o, to define a different file name. The format of the image is defined by
the file extension, valid formats are ".png", ".svg", ".pdf", ".jpg", and
".eps".

By default, the lines are colored using a rainbow color scheme, based on
their probability. If the flag --gray is defined, a gray scale will be used.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var fieldFlag string
var outFlag string
var grayFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&fieldFlag, "field", "value", "")
	c.Flags().StringVar(&outFlag, "output", "pmf.png", "")
	c.Flags().StringVar(&outFlag, "o", "pmf.png", "")
	c.Flags().BoolVar(&grayFlag, "gray", false, "")
}

func run(c *command.Command, args []string) error {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	t, err := freq.ReadFile(c.Stdin(), name, fieldFlag)
	if err != nil {
		return err
	}
	p, err := pmf.FromCounts(t, name)
	if err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	if p.Len() == 0 {
		return fmt.Errorf("on file %q: no values in field %q", name, fieldFlag)
	}

	if err := makePlot(p, outFlag); err != nil {
		return fmt.Errorf("while drawing %q: %v", outFlag, err)
	}
	return nil
}

func makePlot(p *pmf.Pmf[float64], out string) error {
	mx, err := p.MaxWeight()
	if err != nil {
		return err
	}

	plt := plot.New()
	plt.X.Label.Text = fieldFlag
	plt.Y.Label.Text = "probability"

	items := p.SortedItems()
	pts := make(plotter.XYs, 0, len(items))
	for _, it := range items {
		pts = append(pts, plotter.XY{X: it.Value, Y: it.Weight})

		ln, err := plotter.NewLine(plotter.XYs{
			{X: it.Value, Y: 0},
			{X: it.Value, Y: it.Weight},
		})
		if err != nil {
			return fmt.Errorf("while building chart: %v", err)
		}
		ln.LineStyle.Width = vg.Points(2)
		ln.LineStyle.Color = lineColor(it.Weight / mx)
		plt.Add(ln)
	}

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("while building chart: %v", err)
	}
	sc.GlyphStyle.Radius = vg.Points(2)
	plt.Add(sc)

	return plt.Save(6*vg.Inch, 4*vg.Inch, out)
}

// LineColor returns the color for a line
// with a scaled probability v.
func lineColor(v float64) color.Color {
	if grayFlag {
		c := 200 - uint8(v*200)
		return color.RGBA{c, c, c, 255}
	}
	return blind.Sequential(blind.RainbowPurpleToRed, v)
}
