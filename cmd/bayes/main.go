// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Bayes is a tool for the algebra
// of discrete probability distributions.
package main

import (
	"github.com/js-arias/command"
	"github.com/jz3707/BayesLearning/cmd/bayes/catscmd"
	"github.com/jz3707/BayesLearning/cmd/bayes/combine"
	"github.com/jz3707/BayesLearning/cmd/bayes/plotcmd"
	"github.com/jz3707/BayesLearning/cmd/bayes/stats"
)

var app = &command.Command{
	Usage: "bayes <command> [<argument>...]",
	Short: "a tool for discrete probability distributions",
}

func init() {
	app.Add(catscmd.Command)
	app.Add(combine.Command)
	app.Add(plotcmd.Command)
	app.Add(stats.Command)
}

func main() {
	app.Main()
}
