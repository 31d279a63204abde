package tf

import (
	"fmt"

	"github.com/san-kum/controlsim/internal/poly"
)

// ClosedLoop represents Top/(1+GOL), the response of a feedback loop. Top
// and GOL may carry independent dead times, in which case the loop has no
// rational transfer function and must be simulated as a delay differential
// equation.
type ClosedLoop struct {
	// Top is the closed-loop numerator factor.
	Top TransferFunction
	// GOL is the open-loop transfer function appearing in 1+GOL.
	GOL TransferFunction
}

// NewClosedLoop wraps a numerator factor and an open-loop transfer
// function as a closed-loop system.
func NewClosedLoop(top, gol TransferFunction) ClosedLoop {
	return ClosedLoop{Top: top, GOL: gol}
}

// Mul multiplies the Top factor by g. The open-loop term only appears in
// the shared feedback denominator and is unaffected.
func (cl ClosedLoop) Mul(g TransferFunction) ClosedLoop {
	return ClosedLoop{Top: cl.Top.Mul(g), GOL: cl.GOL}
}

// Div divides the Top factor by g, leaving the open-loop term unchanged.
func (cl ClosedLoop) Div(g TransferFunction) (ClosedLoop, error) {
	top, err := cl.Top.Div(g)
	if err != nil {
		return ClosedLoop{}, err
	}
	return ClosedLoop{Top: top, GOL: cl.GOL}, nil
}

// Scale multiplies the Top factor by a scalar.
func (cl ClosedLoop) Scale(a float64) ClosedLoop {
	return ClosedLoop{Top: cl.Top.Scale(a), GOL: cl.GOL}
}

// StandardForm is the delay-differential normal form of a closed loop:
//
//	output/input = PA(s)e^(-OutputDelay*s) / (PB(s) + PC(s)e^(-FeedbackDelay*s))
//
// with PA = pTop*qOL, PB = qOL*qTop and PC = pOL*qTop, where pTop/qTop and
// pOL/qOL are the numerator/denominator of Top and GOL.
type StandardForm struct {
	PA            poly.Poly
	PB            poly.Poly
	PC            poly.Poly
	OutputDelay   float64
	FeedbackDelay float64
}

// StandardForm derives the delay-differential normal form of the loop.
func (cl ClosedLoop) StandardForm() StandardForm {
	return StandardForm{
		PA:            cl.Top.Num.Mul(cl.GOL.Den),
		PB:            cl.GOL.Den.Mul(cl.Top.Den),
		PC:            cl.GOL.Num.Mul(cl.Top.Den),
		OutputDelay:   cl.Top.Delay,
		FeedbackDelay: cl.GOL.Delay,
	}
}

// IsStrictlyProper reports whether the delay-free denominator degree
// strictly dominates both the numerator and the delayed-term degree, the
// precondition for state-space conversion.
func (sf StandardForm) IsStrictlyProper() bool {
	return sf.PB.Degree() > sf.PA.Degree() && sf.PB.Degree() > sf.PC.Degree()
}

// Validate returns a descriptive error when the standard form cannot be
// converted to delay state-space matrices.
func (sf StandardForm) Validate() error {
	if !sf.IsStrictlyProper() {
		return fmt.Errorf("%w: deg(PB)=%d, deg(PA)=%d, deg(PC)=%d",
			ErrNotStrictlyProper, sf.PB.Degree(), sf.PA.Degree(), sf.PC.Degree())
	}
	return nil
}
