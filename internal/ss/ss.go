// Package ss converts transfer functions into controllable-canonical-form
// state-space matrices, the bridge between the rational description and
// time-domain integration.
package ss

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/controlsim/internal/tf"
)

// ErrStatic indicates a zeroth-order denominator: the system is a pure
// gain and has no state to integrate.
var ErrStatic = errors.New("ss: system has no dynamics (constant denominator)")

// StateSpace holds the controllable canonical form of a proper transfer
// function:
//
//	dx/dt = A x + B u
//	y     = C x + D u
//
// A is the companion matrix of the normalized denominator, B a unit
// impulse into the last state, C the numerator coefficients with the
// direct feed-through removed, and D the feed-through ratio (zero for
// strictly proper systems). Delay carries the dead time of the source
// transfer function.
type StateSpace struct {
	A     *mat.Dense
	B     *mat.VecDense
	C     *mat.Dense
	D     float64
	Delay float64
}

// FromTransferFunction builds the controllable canonical realization of g.
// g must be proper; improper systems have no state-space form.
func FromTransferFunction(g tf.TransferFunction) (*StateSpace, error) {
	if !g.IsProper() {
		numDeg, denDeg := g.Order()
		return nil, fmt.Errorf("%w: numerator degree %d > denominator degree %d",
			tf.ErrNotProper, numDeg, denDeg)
	}
	n := g.Den.Degree()
	if n == 0 {
		return nil, ErrStatic
	}

	lead := g.Den.Coeff(n)
	a := make([]float64, n) // normalized denominator, constant term first
	for i := 0; i < n; i++ {
		a[i] = g.Den.Coeff(i) / lead
	}
	d := g.Num.Coeff(n) / lead

	A := mat.NewDense(n, n, nil)
	for i := 0; i < n-1; i++ {
		A.Set(i, i+1, 1)
	}
	for j := 0; j < n; j++ {
		A.Set(n-1, j, -a[j])
	}

	B := mat.NewVecDense(n, nil)
	B.SetVec(n-1, 1)

	C := mat.NewDense(1, n, nil)
	for j := 0; j < n; j++ {
		C.Set(0, j, g.Num.Coeff(j)/lead-d*a[j])
	}

	return &StateSpace{A: A, B: B, C: C, D: d, Delay: g.Delay}, nil
}

// Dim returns the state dimension.
func (s *StateSpace) Dim() int {
	n, _ := s.A.Dims()
	return n
}

// Derivative computes A x + B u.
func (s *StateSpace) Derivative(x []float64, u float64) []float64 {
	n := s.Dim()
	out := mat.NewVecDense(n, nil)
	out.MulVec(s.A, mat.NewVecDense(n, x))
	out.AddScaledVec(out, u, s.B)
	return out.RawVector().Data
}

// Output computes C x + D u.
func (s *StateSpace) Output(x []float64, u float64) float64 {
	n := s.Dim()
	var y mat.VecDense
	y.MulVec(s.C, mat.NewVecDense(n, x))
	return y.AtVec(0) + s.D*u
}

// InitialImpulseState returns a copy of B, the initial condition that makes
// the zero-input response reproduce the impulse response of the canonical
// form.
func (s *StateSpace) InitialImpulseState() []float64 {
	out := make([]float64, s.Dim())
	copy(out, s.B.RawVector().Data)
	return out
}
