// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pmf

import (
	"math"

	"github.com/jz3707/BayesLearning/wmap"
	"gonum.org/v1/gonum/floats"
)

// Mean returns the mean of a PMF,
// i.e., the sum of each value
// multiplied by its probability.
func Mean[T Number](p *Pmf[T]) float64 {
	vals, probs := columns(p)
	return floats.Dot(probs, vals)
}

// Var returns the variance of a PMF.
func Var[T Number](p *Pmf[T]) float64 {
	return VarMu(p, Mean(p))
}

// VarMu returns the variance of a PMF
// around the given mean.
func VarMu[T Number](p *Pmf[T], mu float64) float64 {
	vals, probs := columns(p)
	floats.AddConst(-mu, vals)
	floats.Mul(vals, vals)
	return floats.Dot(probs, vals)
}

// Std returns the standard deviation of a PMF.
func Std[T Number](p *Pmf[T]) float64 {
	return math.Sqrt(Var(p))
}

// StdMu returns the standard deviation of a PMF
// around the given mean.
func StdMu[T Number](p *Pmf[T], mu float64) float64 {
	return math.Sqrt(VarMu(p, mu))
}

// Scale returns a new PMF
// in which each value is multiplied by factor.
func Scale[T Number](p *Pmf[T], factor T) *Pmf[T] {
	return &Pmf[T]{
		Map: *wmap.Scale(&p.Map, factor),
	}
}

// Columns returns the values
// (as floats)
// and probabilities of a PMF.
func columns[T Number](p *Pmf[T]) (vals, probs []float64) {
	vals = make([]float64, 0, p.Len())
	probs = make([]float64, 0, p.Len())
	for v, w := range p.Items() {
		vals = append(vals, float64(v))
		probs = append(probs, w)
	}
	return vals, probs
}
