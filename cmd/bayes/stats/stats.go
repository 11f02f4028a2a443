// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package stats implements a command to print
// the descriptive statistics of a distribution.
package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/js-arias/command"
	"github.com/jz3707/BayesLearning/freq"
	"github.com/jz3707/BayesLearning/pmf"
)

var Command = &command.Command{
	Usage: `stats [--field <name>] [--largest <number>]
	[--ci <value>] [<data-file>]`,
	Short: "print the statistics of a distribution",
	Long: `
Command stats reads a data file with observed values, builds the probability
mass function of the values, and prints its descriptive statistics.

The argument of the command is the name of the data file. If no file is
given, or the file is "-", the data will be read from the standard input. See
"bayes help data-files" for a description of the file.

By default, the values are read from the field "value". Use the flag --field
to define a different field.

The output includes the number of values, the mean, the variance, the
standard deviation, the mode, the median, and a credible interval. By default
the credible interval contains 90% of the probability, use the flag --ci to
set a different percentage.

If the flag --largest is defined, the indicated number of values with the
largest probabilities will be printed.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var fieldFlag string
var largestFlag int
var ciFlag float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&fieldFlag, "field", "value", "")
	c.Flags().IntVar(&largestFlag, "largest", 0, "")
	c.Flags().Float64Var(&ciFlag, "ci", 90, "")
}

func run(c *command.Command, args []string) error {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}
	if ciFlag <= 0 || ciFlag > 100 {
		return c.UsageError("flag --ci must be between 0 and 100")
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

	return report(c.Stdout(), p)
}

func report(w io.Writer, p *pmf.Pmf[float64]) error {
	mode, err := p.Mode()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "values\t%d\n", p.Len())
	fmt.Fprintf(w, "mean\t%.6f\n", pmf.Mean(p))
	fmt.Fprintf(w, "variance\t%.6f\n", pmf.Var(p))
	fmt.Fprintf(w, "std\t%.6f\n", pmf.Std(p))
	fmt.Fprintf(w, "mode\t%s\n", format(mode))
	if m, ok := p.Median(); ok {
		fmt.Fprintf(w, "median\t%s\n", format(m))
	}
	if low, high, ok := p.CredibleInterval(ciFlag); ok {
		fmt.Fprintf(w, "ci-%s\t%s\t%s\n", format(ciFlag), format(low), format(high))
	}

	if largestFlag <= 0 {
		return nil
	}
	fmt.Fprintf(w, "\n# largest probabilities\nvalue\tprob\n")
	for _, it := range p.Largest(largestFlag) {
		fmt.Fprintf(w, "%s\t%.6f\n", format(it.Value), it.Weight)
	}
	return nil
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
