package ss

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/controlsim/internal/tf"
)

const tol = 1e-12

func TestFirstOrderCanonicalForm(t *testing.T) {
	// 4/(3s+1): dx/dt = -x/3 + u/3... in controllable canonical form the
	// input scaling lands in C, so A=[-1/3], B=[1], C=[4/3], D=0.
	g := tf.MustNew([]float64{4}, []float64{3, 1}, 0)
	s, err := FromTransferFunction(g)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if s.Dim() != 1 {
		t.Fatalf("expected dimension 1, got %d", s.Dim())
	}
	if got := s.A.At(0, 0); math.Abs(got+1.0/3.0) > tol {
		t.Errorf("A: expected -1/3, got %f", got)
	}
	if got := s.B.AtVec(0); got != 1 {
		t.Errorf("B: expected 1, got %f", got)
	}
	if got := s.C.At(0, 0); math.Abs(got-4.0/3.0) > tol {
		t.Errorf("C: expected 4/3, got %f", got)
	}
	if s.D != 0 {
		t.Errorf("D: expected 0, got %f", s.D)
	}
}

func TestSecondOrderCompanion(t *testing.T) {
	// (s+2)/(s^2+3s+5)
	g := tf.MustNew([]float64{1, 2}, []float64{1, 3, 5}, 0.5)
	s, err := FromTransferFunction(g)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	wantA := [][]float64{{0, 1}, {-5, -3}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := s.A.At(i, j); math.Abs(got-wantA[i][j]) > tol {
				t.Errorf("A[%d][%d]: expected %f, got %f", i, j, wantA[i][j], got)
			}
		}
	}
	if s.B.AtVec(0) != 0 || s.B.AtVec(1) != 1 {
		t.Errorf("B: expected (0, 1), got (%f, %f)", s.B.AtVec(0), s.B.AtVec(1))
	}
	if got := s.C.At(0, 0); math.Abs(got-2) > tol {
		t.Errorf("C[0]: expected 2, got %f", got)
	}
	if got := s.C.At(0, 1); math.Abs(got-1) > tol {
		t.Errorf("C[1]: expected 1, got %f", got)
	}
	if s.Delay != 0.5 {
		t.Errorf("expected delay 0.5, got %f", s.Delay)
	}
}

func TestFeedthrough(t *testing.T) {
	// (2s+1)/(s+1): D = 2, C = b0 - D*a0 = 1 - 2 = -1
	g := tf.MustNew([]float64{2, 1}, []float64{1, 1}, 0)
	s, err := FromTransferFunction(g)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if math.Abs(s.D-2) > tol {
		t.Errorf("D: expected 2, got %f", s.D)
	}
	if got := s.C.At(0, 0); math.Abs(got+1) > tol {
		t.Errorf("C: expected -1, got %f", got)
	}
	if got := s.Output([]float64{0}, 3); math.Abs(got-6) > tol {
		t.Errorf("output at zero state: expected D*u=6, got %f", got)
	}
}

func TestImproperRejected(t *testing.T) {
	g := tf.MustNew([]float64{1, 0, 0}, []float64{1, 1}, 0)
	if _, err := FromTransferFunction(g); !errors.Is(err, tf.ErrNotProper) {
		t.Errorf("expected ErrNotProper, got %v", err)
	}
}

func TestStaticRejected(t *testing.T) {
	g := tf.MustNew([]float64{3}, []float64{2}, 0)
	if _, err := FromTransferFunction(g); !errors.Is(err, ErrStatic) {
		t.Errorf("expected ErrStatic, got %v", err)
	}
}

func TestDerivativeAndImpulseState(t *testing.T) {
	g := tf.MustNew([]float64{4}, []float64{3, 1}, 0)
	s, _ := FromTransferFunction(g)

	x0 := s.InitialImpulseState()
	if len(x0) != 1 || x0[0] != 1 {
		t.Fatalf("expected impulse state (1), got %v", x0)
	}
	// zero-input derivative at x=1 is -1/3
	dx := s.Derivative(x0, 0)
	if math.Abs(dx[0]+1.0/3.0) > tol {
		t.Errorf("expected dx=-1/3, got %f", dx[0])
	}
	// with unit input the B term adds 1
	dx = s.Derivative(x0, 1)
	if math.Abs(dx[0]-(1-1.0/3.0)) > tol {
		t.Errorf("expected dx=2/3, got %f", dx[0])
	}
}

func TestDelayStateSpaceFromClosedLoop(t *testing.T) {
	// gol = 2e^(-s)/(5s+1), unit feedback servo:
	// PA = PC = 10s+2, PB = 25s^2+10s+1
	gol := tf.MustNew([]float64{2}, []float64{5, 1}, 1)
	cl := tf.NewClosedLoop(gol, gol)
	s, err := FromClosedLoop(cl)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if s.Dim() != 2 {
		t.Fatalf("expected dimension 2, got %d", s.Dim())
	}
	if s.OutputDelay != 1 || s.FeedbackDelay != 1 {
		t.Errorf("expected delays (1, 1), got (%f, %f)", s.OutputDelay, s.FeedbackDelay)
	}
	// companion of PB/25 = s^2 + 0.4s + 0.04
	wantA := [][]float64{{0, 1}, {-0.04, -0.4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := s.A.At(i, j); math.Abs(got-wantA[i][j]) > tol {
				t.Errorf("A[%d][%d]: expected %f, got %f", i, j, wantA[i][j], got)
			}
		}
	}
	// Cdelay last row is -PC/lead = (-0.08, -0.4)
	if got := s.Cdelay.At(1, 0); math.Abs(got+0.08) > tol {
		t.Errorf("Cdelay[1][0]: expected -0.08, got %f", got)
	}
	if got := s.Cdelay.At(1, 1); math.Abs(got+0.4) > tol {
		t.Errorf("Cdelay[1][1]: expected -0.4, got %f", got)
	}
	if got := s.Cdelay.At(0, 0); got != 0 {
		t.Errorf("Cdelay first row should be zero, got %f", got)
	}
	// D row is PA/lead = (0.08, 0.4)
	if got := s.D.At(0, 0); math.Abs(got-0.08) > tol {
		t.Errorf("D[0]: expected 0.08, got %f", got)
	}
	if got := s.D.At(0, 1); math.Abs(got-0.4) > tol {
		t.Errorf("D[1]: expected 0.4, got %f", got)
	}
}

func TestDelayStateSpaceRejectsImproperLoop(t *testing.T) {
	gol := tf.MustNew([]float64{2}, []float64{5, 1}, 1)
	flat := tf.MustNew([]float64{1, 0, 0}, []float64{1, 1}, 0)
	if _, err := FromClosedLoop(tf.NewClosedLoop(flat, gol)); !errors.Is(err, tf.ErrNotStrictlyProper) {
		t.Errorf("expected ErrNotStrictlyProper, got %v", err)
	}
}

func TestDelayDerivative(t *testing.T) {
	gol := tf.MustNew([]float64{2}, []float64{5, 1}, 1)
	s, _ := FromClosedLoop(tf.NewClosedLoop(gol, gol))

	x := []float64{1, 2}
	xlag := []float64{3, 4}
	dx := s.Derivative(x, xlag)
	// row 0: x[1] = 2; row 1: -0.04*1 - 0.4*2 - 0.08*3 - 0.4*4
	if math.Abs(dx[0]-2) > tol {
		t.Errorf("dx[0]: expected 2, got %f", dx[0])
	}
	want := -0.04*1 - 0.4*2 - 0.08*3 - 0.4*4
	if math.Abs(dx[1]-want) > 1e-9 {
		t.Errorf("dx[1]: expected %f, got %f", want, dx[1])
	}
}
