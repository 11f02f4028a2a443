// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package catscmd implements a command to print
// the probability mass function
// of a standard distribution.
package catscmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/jz3707/BayesLearning/cats"
	"github.com/jz3707/BayesLearning/pmf"
	"gonum.org/v1/gonum/stat/distuv"
)

var Command = &command.Command{
	Usage: `cats [--dist <distribution>] [--param <value>]
	[--scale <value>] [-n|--number <value>]`,
	Short: "print the distribution of a standard distribution",
	Long: `
Command cats prints the probability mass function of a standard distribution.
Continuous distributions are discretized in categories with equal
probabilities, using the quantile at the midpoint of each category.

The flag --dist defines the distribution. Valid values are:

	binomial   a binomial distribution, the flag --param is the
	           probability of success, and the flag --number is the
	           number of trials.
	gamma      a gamma distribution, the flag --param is the shape
	           (alpha), the flag --scale is the rate (beta), and the
	           flag --number is the number of categories.
	lognormal  a log normal distribution, the flag --param is the
	           standard deviation (sigma), the flag --scale is the mean
	           (mu) of the logarithm, and the flag --number is the
	           number of categories.
	poisson    a Poisson distribution, the flag --param is the rate
	           (lambda), and the flag --number is the maximum number of
	           events.

By default, it prints a log normal distribution with sigma = 1, and 9
categories.

The output is a tab-delimited table with the fields "value" and "prob".
	`,
	SetFlags: setFlags,
	Run:      run,
}

var distFlag string
var paramFlag float64
var scaleFlag float64
var numFlag int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&distFlag, "dist", "lognormal", "")
	c.Flags().Float64Var(&paramFlag, "param", 1, "")
	c.Flags().Float64Var(&scaleFlag, "scale", 0, "")
	c.Flags().IntVar(&numFlag, "number", 9, "")
	c.Flags().IntVar(&numFlag, "n", 9, "")
}

func run(c *command.Command, args []string) error {
	if numFlag < 1 {
		return c.UsageError("flag --number must be positive")
	}
	if paramFlag <= 0 {
		return c.UsageError("flag --param must be positive")
	}

	var p *pmf.Pmf[float64]
	var err error
	switch strings.ToLower(distFlag) {
	case "binomial":
		if paramFlag > 1 {
			return c.UsageError("flag --param must be a probability")
		}
		p, err = cats.Binomial(numFlag, paramFlag)
	case "gamma":
		beta := scaleFlag
		if beta <= 0 {
			beta = 1
		}
		p, err = cats.Pmf(cats.Gamma{
			Param: distuv.Gamma{
				Alpha: paramFlag,
				Beta:  beta,
			},
			NumCat: numFlag,
		})
	case "lognormal":
		p, err = cats.Pmf(cats.LogNormal{
			Param: distuv.LogNormal{
				Mu:    scaleFlag,
				Sigma: paramFlag,
			},
			NumCat: numFlag,
		})
	case "poisson":
		p, err = cats.Poisson(paramFlag, numFlag)
	default:
		return c.UsageError(fmt.Sprintf("unknown distribution %q", distFlag))
	}
	if err != nil {
		return err
	}

	return writePmf(c.Stdout(), p)
}

func writePmf(w io.Writer, p *pmf.Pmf[float64]) error {
	fmt.Fprintf(w, "# %s\n", p.Label())
	fmt.Fprintf(w, "value\tprob\n")
	for _, it := range p.SortedItems() {
		if _, err := fmt.Fprintf(w, "%s\t%.6f\n", strconv.FormatFloat(it.Value, 'f', 6, 64), it.Weight); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}
	return nil
}
