package ss

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/controlsim/internal/tf"
)

// DelayStateSpace is the state-space form of a closed loop in delay
// differential standard form PA(s)e^(-θs) / (PB(s) + PC(s)e^(-ϕs)):
//
//	dx/dt = A x(t) + Cdelay x(t-ϕ) + B δ(t)
//	y(t)  = D x(t-θ)
//
// A is the companion matrix of the normalized PB, Cdelay carries the PC
// coefficients in its last row, B is a unit impulse into the last state,
// and D is the row of PA coefficients. The output matrix of the non-delayed
// state alone is zero: the response only emerges through the θ time shift
// of D x.
type DelayStateSpace struct {
	A      *mat.Dense
	B      *mat.VecDense
	Cdelay *mat.Dense
	D      *mat.Dense

	// OutputDelay is θ, FeedbackDelay is ϕ.
	OutputDelay   float64
	FeedbackDelay float64
}

// FromClosedLoop converts a closed loop into delay state-space matrices.
// The standard form must be strictly proper.
func FromClosedLoop(cl tf.ClosedLoop) (*DelayStateSpace, error) {
	sf := cl.StandardForm()
	if err := sf.Validate(); err != nil {
		return nil, err
	}
	n := sf.PB.Degree()
	lead := sf.PB.Coeff(n)

	A := mat.NewDense(n, n, nil)
	for i := 0; i < n-1; i++ {
		A.Set(i, i+1, 1)
	}
	for j := 0; j < n; j++ {
		A.Set(n-1, j, -sf.PB.Coeff(j)/lead)
	}

	Cd := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		Cd.Set(n-1, j, -sf.PC.Coeff(j)/lead)
	}

	B := mat.NewVecDense(n, nil)
	B.SetVec(n-1, 1)

	D := mat.NewDense(1, n, nil)
	for j := 0; j < n; j++ {
		D.Set(0, j, sf.PA.Coeff(j)/lead)
	}

	return &DelayStateSpace{
		A:             A,
		B:             B,
		Cdelay:        Cd,
		D:             D,
		OutputDelay:   sf.OutputDelay,
		FeedbackDelay: sf.FeedbackDelay,
	}, nil
}

// Dim returns the state dimension.
func (s *DelayStateSpace) Dim() int {
	n, _ := s.A.Dims()
	return n
}

// Derivative computes A x(t) + Cdelay x(t-ϕ) given the current and lagged
// state vectors.
func (s *DelayStateSpace) Derivative(x, xlag []float64) []float64 {
	n := s.Dim()
	out := mat.NewVecDense(n, nil)
	out.MulVec(s.A, mat.NewVecDense(n, x))
	var lag mat.VecDense
	lag.MulVec(s.Cdelay, mat.NewVecDense(n, xlag))
	out.AddVec(out, &lag)
	return out.RawVector().Data
}

// Output computes D x for a (time-shifted) state vector.
func (s *DelayStateSpace) Output(x []float64) float64 {
	var y mat.VecDense
	y.MulVec(s.D, mat.NewVecDense(s.Dim(), x))
	return y.AtVec(0)
}

// InitialImpulseState returns a copy of B, the initial condition encoding
// the impulse structure of the canonical form.
func (s *DelayStateSpace) InitialImpulseState() []float64 {
	out := make([]float64, s.Dim())
	copy(out, s.B.RawVector().Data)
	return out
}
