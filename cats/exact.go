// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package cats

import (
	"fmt"

	"github.com/jz3707/BayesLearning/pmf"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Prober is a distribution
// that returns the probability of a value.
type Prober interface {
	Prob(x float64) float64
}

// Exact returns a normalized PMF
// with the probabilities of d
// at the given values.
func Exact(d Prober, xs []float64, label string) (*pmf.Pmf[float64], error) {
	p := pmf.New[float64](label)
	for _, x := range xs {
		p.Set(x, d.Prob(x))
	}
	if p.Len() == 0 {
		return p, nil
	}
	if _, err := p.Normalize(); err != nil {
		return nil, fmt.Errorf("exact %s: %w", label, err)
	}
	return p, nil
}

// Binomial returns the PMF
// of the number of successes
// in n trials with probability of success prob.
func Binomial(n int, prob float64) (*pmf.Pmf[float64], error) {
	d := distuv.Binomial{
		N: float64(n),
		P: prob,
	}
	return Exact(d, sequence(n), fmt.Sprintf("binomial=%d,%.6f", n, prob))
}

// Poisson returns the PMF
// of a Poisson distribution with rate lambda,
// truncated at maxEvents.
func Poisson(lambda float64, maxEvents int) (*pmf.Pmf[float64], error) {
	d := distuv.Poisson{
		Lambda: lambda,
	}
	return Exact(d, sequence(maxEvents), fmt.Sprintf("poisson=%.6f", lambda))
}

// Sequence returns the values from 0 to n.
// It is empty if n is negative.
func sequence(n int) []float64 {
	if n < 0 {
		return nil
	}
	xs := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		xs = append(xs, float64(i))
	}
	return xs
}
