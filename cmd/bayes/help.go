// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(dataFilesGuide)
}

var dataFilesGuide = &command.Command{
	Usage: "data-files",
	Short: "about data files",
	Long: `
Bayes commands read the observations used to build a probability mass
function from a tab-delimited file. The first row of the file is the header,
and rows starting with '#' are ignored.

The observed values are read from a field of the file (by default "value",
it can be changed with the flag --field of each command). Values must be
numbers. If the file contains a "count" field, it is used as the number of
times the value of the row was observed; otherwise, each row is a single
observation. The probability of each value is its frequency, so the total
probability of the distribution is 1.

Here is an example file:

	# two coin tosses
	value	count
	0	25
	1	50
	2	25

Other columns are ignored.

Commands that print a distribution produce a tab-delimited file with the
fields:

	-value  the value of the outcome
	-prob   the probability of the outcome
	`,
}
