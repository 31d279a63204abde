// Package integrators provides fixed and adaptive Runge-Kutta steppers for
// first-order ODE systems dx/dt = f(x, t).
package integrators

// System is the right-hand side of an ODE. Delay terms and external inputs
// are closed over by the caller, so the stepper only ever sees f(x, t).
type System interface {
	Derivative(x []float64, t float64) []float64
	Dim() int
}

// Integrator advances a state vector by a single step of size dt.
type Integrator interface {
	Step(sys System, x []float64, t, dt float64) []float64
}

// AdaptiveIntegrator additionally estimates local error and proposes the
// next step size.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, x []float64, t, dt, tol float64) (next []float64, dtNext float64, err error)
}
