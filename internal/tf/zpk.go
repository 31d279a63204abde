package tf

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/controlsim/internal/poly"
)

// DefaultCancelDigits is the rounding precision used when pairing zeros
// against poles for cancellation. It is a heuristic tolerance, exposed so
// callers with badly scaled coefficients can loosen it via CancelDigits.
const DefaultCancelDigits = 8

// rootPairs selects the zero/pole index pairs to cancel. It is a package
// variable so the greedy heuristic can be swapped for a stricter matching
// without touching callers.
var rootPairs = greedyRootPairs

// ZerosPolesK factors g as k * prod(s-z_j) / prod(s-p_j) * e^(-delay*s):
// zeros are the numerator roots, poles the denominator roots, and k the
// ratio of leading coefficients.
func (g TransferFunction) ZerosPolesK() (zeros, poles []complex128, k float64) {
	zeros = g.Num.Roots()
	poles = g.Den.Roots()
	k = g.Num.Leading() / g.Den.Leading()
	return zeros, poles, k
}

// FromZPK constructs a transfer function from a zero set, pole set,
// k-factor and delay. Complex zeros and poles must appear in conjugate
// pairs so the coefficients stay real. The resulting denominator is monic.
func FromZPK(zeros, poles []complex128, k, delay float64) (TransferFunction, error) {
	const pairTol = 1e-9
	if !poly.ConjugatePaired(zeros, pairTol) || !poly.ConjugatePaired(poles, pairTol) {
		return TransferFunction{}, ErrConjugateRoots
	}
	if delay < 0 {
		return TransferFunction{}, ErrNegativeDelay
	}
	return TransferFunction{
		Num:   poly.FromRoots(zeros).Scale(k),
		Den:   poly.FromRoots(poles),
		Delay: delay,
	}, nil
}

// Cancel removes numerically coincident pole-zero pairs using the default
// rounding precision.
func (g TransferFunction) Cancel() TransferFunction {
	return g.CancelDigits(DefaultCancelDigits)
}

// CancelDigits factors g into zeros, poles and k, rounds each root to the
// given number of digits, greedily pairs every zero with an unmatched equal
// pole and drops the matched pairs, then rebuilds the transfer function
// from the surviving roots with the same k-factor and delay. Ties between
// duplicate roots are broken by encounter order, an accepted nondeterminism
// under exact degeneracy.
func (g TransferFunction) CancelDigits(digits int) TransferFunction {
	zeros, poles, k := g.ZerosPolesK()
	zc, pc := rootPairs(zeros, poles, digits)

	remZeros := remaining(zeros, zc)
	remPoles := remaining(poles, pc)
	return TransferFunction{
		Num:   poly.FromRoots(remZeros).Scale(k),
		Den:   poly.FromRoots(remPoles),
		Delay: g.Delay,
	}
}

// greedyRootPairs marks, for each zero in encounter order, the first
// unmatched pole whose rounded value coincides. The number of marked zeros
// always equals the number of marked poles.
func greedyRootPairs(zeros, poles []complex128, digits int) (zeroMatched, poleMatched []bool) {
	zeroMatched = make([]bool, len(zeros))
	poleMatched = make([]bool, len(poles))
	for i, z := range zeros {
		rz := roundComplex(z, digits)
		for j, p := range poles {
			if poleMatched[j] {
				continue
			}
			if roundComplex(p, digits) == rz {
				zeroMatched[i] = true
				poleMatched[j] = true
				break
			}
		}
	}
	return zeroMatched, poleMatched
}

func remaining(roots []complex128, matched []bool) []complex128 {
	var out []complex128
	for i, r := range roots {
		if !matched[i] {
			out = append(out, r)
		}
	}
	return out
}

func roundComplex(z complex128, digits int) complex128 {
	scale := math.Pow(10, float64(digits))
	return complex(
		math.Round(real(z)*scale)/scale,
		math.Round(imag(z)*scale)/scale,
	)
}

// ZerosPolesGain returns the cancelled factorization together with the
// zero-frequency gain, the quantity usually read off a step response.
func (g TransferFunction) ZerosPolesGain() (zeros, poles []complex128, gain float64) {
	c := g.Cancel()
	zeros = c.Num.Roots()
	poles = c.Den.Roots()
	gain = c.Num.EvalReal(0) / c.Den.EvalReal(0)
	return zeros, poles, gain
}

// MagnitudePhase returns |g(i*omega)| and the principal-value argument of
// the frequency response at omega.
func (g TransferFunction) MagnitudePhase(omega float64) (mag, phase float64) {
	v := g.Eval(complex(0, omega))
	return cmplx.Abs(v), cmplx.Phase(v)
}
