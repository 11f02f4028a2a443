// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package combine implements a command to combine
// two distributions,
// or a distribution and a constant,
// with an arithmetic operation.
package combine

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/command"
	"github.com/jz3707/BayesLearning/freq"
	"github.com/jz3707/BayesLearning/pmf"
	"github.com/sirupsen/logrus"
)

var Command = &command.Command{
	Usage: `combine [--op <operation>] [--const <value>]
	[--field <name>] [--compare] [-v|--verbose]
	<data-file> [<data-file>]`,
	Short: "combine distributions with an arithmetic operation",
	Long: `
Command combine reads one or two data files with observed values, builds the
probability mass function of each file, and prints the distribution of the
result of an arithmetic operation between them, assuming the values of both
files are independent.

The first argument of the command is the name of the first data file. The
second argument is the name of the second data file. If the flag --const is
defined, the second data file is ignored, and the operation is made between
the first distribution and the given constant. Any of the files can be "-"
to read it from the standard input. See "bayes help data-files" for a
description of the files.

By default, the operation is an addition. Use the flag --op to define a
different operation. Valid operations are:

	add  or +  for the sum of values
	sub  or -  for the difference of values
	mul  or *  for the product of values
	div  or /  for the quotient of values

By default, the values are read from the field "value". Use the flag --field
to define a different field.

If the flag --compare is defined, and there are two data files, instead of
the combined distribution, it will print the probability that a value from
the first distribution is less, equal, or greater than a value from the
second distribution.

The flag --verbose, or -v, prints the progress of the command in the standard
error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var opFlag string
var constFlag string
var fieldFlag string
var compareFlag bool
var verboseFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&opFlag, "op", "add", "")
	c.Flags().StringVar(&constFlag, "const", "", "")
	c.Flags().StringVar(&fieldFlag, "field", "value", "")
	c.Flags().BoolVar(&compareFlag, "compare", false, "")
	c.Flags().BoolVar(&verboseFlag, "verbose", false, "")
	c.Flags().BoolVar(&verboseFlag, "v", false, "")
}

type operation func(*pmf.Pmf[float64], pmf.Operand[float64]) (*pmf.Pmf[float64], error)

var operations = map[string]operation{
	"add": pmf.Add[float64],
	"+":   pmf.Add[float64],
	"sub": pmf.Sub[float64],
	"-":   pmf.Sub[float64],
	"mul": pmf.Mul[float64],
	"*":   pmf.Mul[float64],
	"div": pmf.Div[float64],
	"/":   pmf.Div[float64],
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting data file")
	}
	op, ok := operations[strings.ToLower(opFlag)]
	if !ok {
		return c.UsageError(fmt.Sprintf("unknown operation %q", opFlag))
	}

	logrus.SetOutput(c.Stderr())
	if verboseFlag {
		logrus.SetLevel(logrus.DebugLevel)
	}
	log := logrus.WithField("command", "combine")

	a, err := readPmf(c.Stdin(), args[0])
	if err != nil {
		return err
	}
	log.Debugf("read %q: %d values", args[0], a.Len())

	var b pmf.Operand[float64]
	var second *pmf.Pmf[float64]
	if constFlag != "" {
		v, err := strconv.ParseFloat(constFlag, 64)
		if err != nil {
			return c.UsageError(fmt.Sprintf("flag --const: %v", err))
		}
		b = pmf.Const(v)
	} else {
		if len(args) < 2 {
			return c.UsageError("expecting second data file or constant")
		}
		second, err = readPmf(c.Stdin(), args[1])
		if err != nil {
			return err
		}
		log.Debugf("read %q: %d values", args[1], second.Len())
		b = second
	}

	if compareFlag && second != nil {
		less := a.ProbLessPmf(second)
		eq := a.ProbEqualPmf(second)
		greater := second.ProbLessPmf(a)
		fmt.Fprintf(c.Stdout(), "less\t%.6f\nequal\t%.6f\ngreater\t%.6f\n", less, eq, greater)
		return nil
	}

	r, err := op(a, b)
	if err != nil {
		return err
	}
	log.Debugf("result: %d values, total probability %.6f", r.Len(), r.Total())

	return writePmf(c.Stdout(), r)
}

func readPmf(r io.Reader, name string) (*pmf.Pmf[float64], error) {
	t, err := freq.ReadFile(r, name, fieldFlag)
	if err != nil {
		return nil, err
	}
	p, err := pmf.FromCounts(t, name)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("on file %q: no values in field %q", name, fieldFlag)
	}
	return p, nil
}

func writePmf(w io.Writer, p *pmf.Pmf[float64]) error {
	fmt.Fprintf(w, "value\tprob\n")
	for _, it := range p.SortedItems() {
		if _, err := fmt.Fprintf(w, "%s\t%.6f\n", strconv.FormatFloat(it.Value, 'f', -1, 64), it.Weight); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}
	return nil
}
