package controllers

import (
	"math"
	"testing"

	"github.com/san-kum/controlsim/internal/tf"
)

func TestProportional(t *testing.T) {
	g, err := P{Kc: 2.5}.TransferFunction()
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	if got := g.Gain(); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("expected gain 2.5, got %f", got)
	}
	num, den := g.Order()
	if num != 0 || den != 0 {
		t.Errorf("expected static controller, got order (%d, %d)", num, den)
	}
}

func TestPIForm(t *testing.T) {
	g, err := PI{Kc: 2, TauI: 4}.TransferFunction()
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	// Kc(tauI*s + 1)/(tauI*s) = (8s+2)/(4s)
	want := tf.MustNew([]float64{8, 2}, []float64{4, 0}, 0)
	if !g.ApproxEqual(want, 1e-12) {
		t.Errorf("expected %s, got %s", want, g)
	}
	// integral action: infinite zero-frequency gain
	if got := g.Gain(); !math.IsInf(got, 1) {
		t.Errorf("expected infinite gain, got %f", got)
	}
}

func TestPIValidation(t *testing.T) {
	if _, err := (PI{Kc: 1, TauI: 0}).TransferFunction(); err == nil {
		t.Error("expected error for zero integral time")
	}
	if _, err := (PI{Kc: 1, TauI: -2}).TransferFunction(); err == nil {
		t.Error("expected error for negative integral time")
	}
}

func TestPIDIdeal(t *testing.T) {
	// alpha=0: Kc(tauI*tauD*s^2 + tauI*s + 1)/(tauI*s)
	g, err := PID{Kc: 3, TauI: 2, TauD: 0.5}.TransferFunction()
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	want := tf.MustNew([]float64{3, 6, 3}, []float64{2, 0}, 0)
	if !g.ApproxEqual(want, 1e-12) {
		t.Errorf("expected %s, got %s", want, g)
	}
}

func TestPIDFiltered(t *testing.T) {
	g, err := PID{Kc: 1, TauI: 2, TauD: 0.5, Alpha: 0.1}.TransferFunction()
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	numDeg, denDeg := g.Order()
	if numDeg != 2 || denDeg != 2 {
		t.Errorf("filtered PID should be biproper, got order (%d, %d)", numDeg, denDeg)
	}
	// the three-term sum evaluated at s=1 must match the packed form
	s := complex(1, 0)
	sum := complex(1, 0) + 1/(2*s) + 0.5*s/(0.1*0.5*s+1)
	got := g.Eval(s)
	if math.Abs(real(got)-real(sum)) > 1e-12 {
		t.Errorf("expected gc(1)=%f, got %f", real(sum), real(got))
	}
}

func TestPIDValidation(t *testing.T) {
	if _, err := (PID{Kc: 1, TauI: 0, TauD: 1}).TransferFunction(); err == nil {
		t.Error("expected error for zero integral time")
	}
	if _, err := (PID{Kc: 1, TauI: 1, TauD: -1}).TransferFunction(); err == nil {
		t.Error("expected error for negative derivative time")
	}
	if _, err := (PID{Kc: 1, TauI: 1, TauD: 1, Alpha: -0.5}).TransferFunction(); err == nil {
		t.Error("expected error for negative filter parameter")
	}
}
