package tf

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/controlsim/internal/poly"
)

// TransferFunction represents g(s) = Num(s)/Den(s) * e^(-Delay*s).
// Values are immutable; every operation returns a fresh value.
type TransferFunction struct {
	Num   poly.Poly
	Den   poly.Poly
	Delay float64
}

// S is the frequency variable itself, the transfer function s/1.
var S = TransferFunction{Num: poly.New(0, 1), Den: poly.One()}

// Unit is the identity transfer function 1/1.
var Unit = TransferFunction{Num: poly.One(), Den: poly.One()}

// New builds a transfer function from numerator and denominator
// coefficients listed highest power first, with an optional dead time.
func New(num, den []float64, delay float64) (TransferFunction, error) {
	d := poly.FromDescending(den)
	if len(den) == 0 || d.IsZero() {
		return TransferFunction{}, ErrZeroDenominator
	}
	if delay < 0 {
		return TransferFunction{}, fmt.Errorf("%w: got %g", ErrNegativeDelay, delay)
	}
	return TransferFunction{
		Num:   poly.FromDescending(num),
		Den:   d,
		Delay: delay,
	}, nil
}

// MustNew is New for literal coefficients that are known to be valid.
// It panics on a construction error.
func MustNew(num, den []float64, delay float64) TransferFunction {
	g, err := New(num, den, delay)
	if err != nil {
		panic(err)
	}
	return g
}

// Eval evaluates the transfer function at a complex point z.
func (g TransferFunction) Eval(z complex128) complex128 {
	v := g.Num.Eval(z) / g.Den.Eval(z)
	if g.Delay != 0 {
		v *= cmplx.Exp(-complex(g.Delay, 0) * z)
	}
	return v
}

// Gain returns the zero-frequency gain g(0) after pole-zero cancellation.
// A pole or zero at the origin yields an infinite or zero result.
func (g TransferFunction) Gain() float64 {
	c := g.Cancel()
	return c.Num.EvalReal(0) / c.Den.EvalReal(0)
}

// IsProper reports degree(Num) <= degree(Den).
func (g TransferFunction) IsProper() bool {
	return g.Num.Degree() <= g.Den.Degree()
}

// IsStrictlyProper reports degree(Num) < degree(Den).
func (g TransferFunction) IsStrictlyProper() bool {
	return g.Num.Degree() < g.Den.Degree()
}

// Order returns the apparent numerator and denominator degrees. Cancel
// first to obtain the effective order.
func (g TransferFunction) Order() (numDeg, denDeg int) {
	return g.Num.Degree(), g.Den.Degree()
}

// Equal reports exact equality of both polynomial representations and the
// delay. Two transfer functions describing the same system with different
// normalization are not Equal; use ApproxEqual for semantic comparison.
func (g TransferFunction) Equal(o TransferFunction) bool {
	return g.Num.Equal(o.Num) && g.Den.Equal(o.Den) && g.Delay == o.Delay
}

// ApproxEqual normalizes both operands to a monic-denominator form and
// compares coefficients and delays within tol.
func (g TransferFunction) ApproxEqual(o TransferFunction, tol float64) bool {
	gn, gd := monic(g)
	on, od := monic(o)
	return gn.ApproxEqual(on, tol) &&
		gd.ApproxEqual(od, tol) &&
		math.Abs(g.Delay-o.Delay) <= tol
}

func monic(g TransferFunction) (num, den poly.Poly) {
	lead := g.Den.Leading()
	return g.Num.Scale(1 / lead), g.Den.Scale(1 / lead)
}

// String renders the transfer function as a fraction of polynomials in s.
func (g TransferFunction) String() string {
	s := fmt.Sprintf("(%s)/(%s)", g.Num, g.Den)
	if g.Delay != 0 {
		s += fmt.Sprintf(" * exp(-%g*s)", g.Delay)
	}
	return s
}
