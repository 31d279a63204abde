package tf

import (
	"fmt"

	"github.com/san-kum/controlsim/internal/poly"
)

// Mul returns g*o. Numerators and denominators multiply, delays add, and
// pole-zero cancellation is applied to the product.
func (g TransferFunction) Mul(o TransferFunction) TransferFunction {
	out := TransferFunction{
		Num:   g.Num.Mul(o.Num),
		Den:   g.Den.Mul(o.Den),
		Delay: g.Delay + o.Delay,
	}
	return out.Cancel()
}

// Div returns g/o, the product of g with the reciprocal of o. Delays
// subtract; a division whose result would carry a negative (acausal) delay
// is rejected, as is division by a zero-numerator transfer function.
func (g TransferFunction) Div(o TransferFunction) (TransferFunction, error) {
	if o.Num.IsZero() {
		return TransferFunction{}, ErrZeroDenominator
	}
	delay := g.Delay - o.Delay
	if delay < 0 {
		return TransferFunction{}, fmt.Errorf("%w: division yields delay %g", ErrNegativeDelay, delay)
	}
	out := TransferFunction{
		Num:   g.Num.Mul(o.Den),
		Den:   g.Den.Mul(o.Num),
		Delay: delay,
	}
	return out.Cancel(), nil
}

// Add returns g+o via common-denominator cross multiplication, followed by
// cancellation. Both operands must carry the same time delay; the sum of
// two different delay exponentials is not a rational function.
func (g TransferFunction) Add(o TransferFunction) (TransferFunction, error) {
	if g.Delay != o.Delay {
		return TransferFunction{}, fmt.Errorf("%w: %g vs %g", ErrDelayMismatch, g.Delay, o.Delay)
	}
	out := TransferFunction{
		Num:   g.Num.Mul(o.Den).Add(o.Num.Mul(g.Den)),
		Den:   g.Den.Mul(o.Den),
		Delay: g.Delay,
	}
	return out.Cancel(), nil
}

// Sub returns g-o under the same equal-delay contract as Add.
func (g TransferFunction) Sub(o TransferFunction) (TransferFunction, error) {
	if g.Delay != o.Delay {
		return TransferFunction{}, fmt.Errorf("%w: %g vs %g", ErrDelayMismatch, g.Delay, o.Delay)
	}
	out := TransferFunction{
		Num:   g.Num.Mul(o.Den).Sub(o.Num.Mul(g.Den)),
		Den:   g.Den.Mul(o.Den),
		Delay: g.Delay,
	}
	return out.Cancel(), nil
}

// Scale returns a*g: the numerator is scaled, delay unchanged.
func (g TransferFunction) Scale(a float64) TransferFunction {
	return TransferFunction{Num: g.Num.Scale(a), Den: g.Den, Delay: g.Delay}
}

// ScaleInv returns g/a by scaling the denominator.
func (g TransferFunction) ScaleInv(a float64) TransferFunction {
	return TransferFunction{Num: g.Num, Den: g.Den.Scale(a), Delay: g.Delay}
}

// Pow returns g raised to a non-negative integer power by repeated
// multiplication. Negative exponents are rejected.
func (g TransferFunction) Pow(n int) (TransferFunction, error) {
	if n < 0 {
		return TransferFunction{}, fmt.Errorf("%w: got %d", ErrNegativePower, n)
	}
	out := Unit
	for i := 0; i < n; i++ {
		out = out.Mul(g)
	}
	return out, nil
}

// DelayExp returns the pure dead-time transfer function e^(-theta*s).
func DelayExp(theta float64) (TransferFunction, error) {
	if theta < 0 {
		return TransferFunction{}, fmt.Errorf("%w: got %g", ErrNegativeDelay, theta)
	}
	return TransferFunction{Num: poly.One(), Den: poly.One(), Delay: theta}, nil
}

// Exp is defined for exactly one operand shape: a pure delay monomial
// -theta*s (a degree-1 numerator with zero constant term over a constant
// denominator, with no pre-existing delay and theta >= 0). It returns the
// unit-gain transfer function carrying delay theta. Any other argument
// fails.
func Exp(g TransferFunction) (TransferFunction, error) {
	if g.Num.Degree() != 1 || g.Num.Coeff(0) != 0 || g.Den.Degree() != 0 || g.Delay != 0 {
		return TransferFunction{}, fmt.Errorf("%w: got %s", ErrExpArgument, g)
	}
	theta := -g.Num.Coeff(1) / g.Den.Coeff(0)
	if theta < 0 {
		return TransferFunction{}, fmt.Errorf("%w: exponent %g*s grows with s", ErrExpArgument, -theta)
	}
	return DelayExp(theta)
}
