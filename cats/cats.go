// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cats builds probability mass functions
// from standard distributions.
//
// Continuous distributions are discretized
// into categories with the same probability.
// Discrete distributions are evaluated
// over a given set of values.
package cats

import (
	"fmt"

	"github.com/jz3707/BayesLearning/pmf"
	"gonum.org/v1/gonum/stat/distuv"
)

// Discrete is a discrete category distribution.
type Discrete interface {
	// Cats returns the values of the different categories.
	Cats() []float64

	// String output for the function name and parameters.
	String() string
}

// Gamma is a discretized Gamma distribution.
type Gamma struct {
	// Parameters of the gamma distribution.
	Param distuv.Gamma

	// Number of categories
	NumCat int
}

// Cats returns the values for a Gamma distribution
// discretized in equal probability categories.
func (g Gamma) Cats() []float64 {
	return getCats(g.Param, g.NumCat)
}

// String output for the function name and parameters.
func (g Gamma) String() string {
	return fmt.Sprintf("gamma=%.6f", g.Param.Alpha)
}

// LogNormal is a discretized LogNormal distribution.
type LogNormal struct {
	// Parameters of the log normal distribution
	Param distuv.LogNormal

	// Number of categories
	NumCat int
}

// Cats return the values for a log Normal distribution
// discretized in equal probability categories.
func (ln LogNormal) Cats() []float64 {
	return getCats(ln.Param, ln.NumCat)
}

// String output for the function name and parameters.
func (ln LogNormal) String() string {
	return fmt.Sprintf("logNormal=%.6f", ln.Param.Sigma)
}

// Pmf returns a PMF
// in which each category of d
// has the same probability.
func Pmf(d Discrete) (*pmf.Pmf[float64], error) {
	p, err := pmf.FromValues(d.Cats(), d.String())
	if err != nil {
		return nil, fmt.Errorf("cats %s: %w", d, err)
	}
	return p, nil
}

// Quantiler is a interfaces for distributions
// with a Quantile function
// (the inverse of the CDF function).
type quantiler interface {
	Quantile(p float64) float64
}

func getCats(q quantiler, n int) []float64 {
	cats := make([]float64, n)
	for i := range cats {
		p := (float64(i) + 0.5) / float64(n)
		cats[i] = q.Quantile(p)
	}
	return cats
}
