// Package controllers maps P, PI and PID parameter records onto transfer
// functions for use in the loop algebra.
package controllers

import (
	"fmt"

	"github.com/san-kum/controlsim/internal/tf"
)

// P is a proportional controller with gain Kc.
type P struct {
	Kc float64
}

// PI is a proportional-integral controller: Kc(tauI*s + 1)/(tauI*s).
type PI struct {
	Kc   float64
	TauI float64
}

// PID is a proportional-integral-derivative controller with a first-order
// derivative filter:
//
//	gc(s) = Kc * (1 + 1/(tauI*s) + tauD*s/(alpha*tauD*s + 1))
//
// Alpha=0 gives the ideal (unfiltered) PID.
type PID struct {
	Kc    float64
	TauI  float64
	TauD  float64
	Alpha float64
}

func (c P) TransferFunction() (tf.TransferFunction, error) {
	return tf.New([]float64{c.Kc}, []float64{1}, 0)
}

func (c PI) TransferFunction() (tf.TransferFunction, error) {
	if c.TauI <= 0 {
		return tf.TransferFunction{}, fmt.Errorf("controllers: integral time constant must be positive, got %g", c.TauI)
	}
	return tf.New(
		[]float64{c.Kc * c.TauI, c.Kc},
		[]float64{c.TauI, 0},
		0,
	)
}

func (c PID) TransferFunction() (tf.TransferFunction, error) {
	if c.TauI <= 0 {
		return tf.TransferFunction{}, fmt.Errorf("controllers: integral time constant must be positive, got %g", c.TauI)
	}
	if c.TauD < 0 || c.Alpha < 0 {
		return tf.TransferFunction{}, fmt.Errorf("controllers: derivative time and filter must be non-negative, got tauD=%g alpha=%g", c.TauD, c.Alpha)
	}
	// Common denominator of the three terms: tauI*s*(alpha*tauD*s + 1).
	num := []float64{
		c.Kc * (c.Alpha*c.TauI*c.TauD + c.TauI*c.TauD),
		c.Kc * (c.TauI + c.Alpha*c.TauD),
		c.Kc,
	}
	den := []float64{
		c.Alpha * c.TauI * c.TauD,
		c.TauI,
		0,
	}
	return tf.New(num, den, 0)
}
