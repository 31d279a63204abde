package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoConvergence indicates the scalar root search exhausted its
// iteration budget without bracketing a root.
var ErrNoConvergence = errors.New("analysis: root finding did not converge")

// secant finds x near guess with f(x)=0 by the secant method. The margins
// code treats a returned error as "no crossover exists" rather than a
// failure.
func secant(f func(float64) float64, guess, tol float64, maxIter int) (float64, error) {
	x0 := guess
	x1 := guess * 1.05
	if x1 == x0 {
		x1 = x0 + tol
	}
	f0 := f(x0)
	f1 := f(x1)
	if math.IsNaN(f0) || math.IsNaN(f1) {
		return 0, fmt.Errorf("%w: function undefined near guess %g", ErrNoConvergence, guess)
	}
	for i := 0; i < maxIter; i++ {
		if f1 == f0 {
			return 0, fmt.Errorf("%w: flat secant at x=%g", ErrNoConvergence, x1)
		}
		x := (f1*x0 - f0*x1) / (f1 - f0)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("%w: diverged at iteration %d", ErrNoConvergence, i)
		}
		if math.Abs(x-x1) <= tol {
			return x, nil
		}
		x0, f0 = x1, f1
		x1 = x
		f1 = f(x1)
		if math.IsNaN(f1) {
			return 0, fmt.Errorf("%w: function undefined at x=%g", ErrNoConvergence, x1)
		}
	}
	return 0, fmt.Errorf("%w: after %d iterations", ErrNoConvergence, maxIter)
}
