// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pmf

import "fmt"

// An Operand is the right side
// of an arithmetic operation over a PMF.
// It is either another PMF
// or a constant built with Const.
type Operand[T Number] interface {
	operand()
}

func (p *Pmf[T]) operand() {}

type constant[T Number] struct {
	v T
}

func (c constant[T]) operand() {}

// Const returns a constant operand.
func Const[T Number](v T) Operand[T] {
	return constant[T]{v: v}
}

// Add returns the distribution of the sum
// of a and b.
//
// If b is a PMF,
// the result is the distribution of the sum
// of two independent random variables.
// If b is a constant,
// each value of a is shifted by the constant.
func Add[T Number](a *Pmf[T], b Operand[T]) (*Pmf[T], error) {
	return apply("add", a, b, 0, func(x, y T) T { return x + y })
}

// Sub returns the distribution of the difference
// of a and b.
func Sub[T Number](a *Pmf[T], b Operand[T]) (*Pmf[T], error) {
	return apply("sub", a, b, 0, func(x, y T) T { return x - y })
}

// Mul returns the distribution of the product
// of a and b.
func Mul[T Number](a *Pmf[T], b Operand[T]) (*Pmf[T], error) {
	return apply("mul", a, b, 1, func(x, y T) T { return x * y })
}

// Div returns the distribution of the quotient
// of a and b.
//
// With floating point values,
// a divisor equal to 0 produces infinite or NaN values.
// With integer values,
// if b is 0,
// or a PMF with 0 in its support,
// it returns ErrDivByZero.
func Div[T Number](a *Pmf[T], b Operand[T]) (*Pmf[T], error) {
	if isInteger[T]() && hasZero[T](b) {
		return nil, fmt.Errorf("div: integer operand: %w", ErrDivByZero)
	}
	return apply("div", a, b, 1, func(x, y T) T { return x / y })
}

func isInteger[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

func hasZero[T Number](b Operand[T]) bool {
	switch o := b.(type) {
	case *Pmf[T]:
		return o != nil && o.Has(0)
	case constant[T]:
		return o.v == 0
	}
	return false
}

// Apply combines a PMF with an operand.
// When the operand is a constant equal to identity,
// a copy of a is returned.
func apply[T Number](name string, a *Pmf[T], b Operand[T], identity T, op func(x, y T) T) (*Pmf[T], error) {
	if a.IsLog() {
		return nil, fmt.Errorf("%s: pmf under a log transform: %w", name, ErrInvalidState)
	}

	switch o := b.(type) {
	case *Pmf[T]:
		if o == nil {
			return nil, fmt.Errorf("%s: nil operand: %w", name, ErrUnsupportedSource)
		}
		if o.IsLog() {
			return nil, fmt.Errorf("%s: operand under a log transform: %w", name, ErrInvalidState)
		}
		return convolve(a, o, op), nil
	case constant[T]:
		if o.v == identity {
			return a.Copy(""), nil
		}
		n := New[T]("")
		for v, w := range a.Items() {
			n.Incr(op(v, o.v), w)
		}
		return n, nil
	}
	return nil, fmt.Errorf("%s: operand of type %T: %w", name, b, ErrUnsupportedSource)
}

// Convolve returns the distribution
// of op applied over two independent random variables.
func convolve[T Number](a, b *Pmf[T], op func(x, y T) T) *Pmf[T] {
	n := New[T]("")
	for v1, p1 := range a.Items() {
		for v2, p2 := range b.Items() {
			n.Incr(op(v1, v2), p1*p2)
		}
	}
	return n
}
