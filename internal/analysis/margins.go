package analysis

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/controlsim/internal/tf"
)

// Margins holds the frequency-response stability margins of an open-loop
// transfer function. Any field may be NaN when the associated crossover
// does not exist in the searched range; that is a legitimate system
// property (an unconditionally stable loop), not an error.
type Margins struct {
	// CriticalFreq is the frequency where the phase crosses -180 degrees.
	CriticalFreq float64
	// GainCrossFreq is the frequency where the magnitude crosses 1.
	GainCrossFreq float64
	// GainMargin is the reciprocal magnitude at the critical frequency.
	GainMargin float64
	// PhaseMargin is pi plus the phase at the gain-crossover frequency,
	// in radians.
	PhaseMargin float64
}

// DefaultFreqGuess is the starting frequency for the crossover searches.
const DefaultFreqGuess = 0.1

const (
	rootTol     = 1e-10
	rootMaxIter = 200
)

// ComputeMargins finds the stability margins of gOL starting the root
// searches from DefaultFreqGuess.
func ComputeMargins(gOL tf.TransferFunction) Margins {
	return ComputeMarginsFrom(gOL, DefaultFreqGuess)
}

// ComputeMarginsFrom finds the stability margins of gOL with a caller
// supplied starting frequency for both crossover searches.
func ComputeMarginsFrom(gOL tf.TransferFunction, guess float64) Margins {
	m := Margins{
		CriticalFreq:  math.NaN(),
		GainCrossFreq: math.NaN(),
		GainMargin:    math.NaN(),
		PhaseMargin:   math.NaN(),
	}
	phase := unwrappedPhase(gOL)

	wc, err := secant(func(w float64) float64 {
		return phase(w) + math.Pi
	}, guess, rootTol, rootMaxIter)
	if err == nil && wc > 0 {
		m.CriticalFreq = wc
		m.GainMargin = 1 / cmplx.Abs(gOL.Eval(complex(0, wc)))
	}

	wg, err := secant(func(w float64) float64 {
		return cmplx.Abs(gOL.Eval(complex(0, w))) - 1
	}, guess, rootTol, rootMaxIter)
	if err == nil && wg > 0 {
		m.GainCrossFreq = wg
		m.PhaseMargin = math.Pi + phase(wg)
	}
	return m
}

// unwrappedPhase returns a continuous phase function of frequency built
// from the pole-zero factorization: the angles of (i*omega - root) are
// accumulated per root instead of taking the principal value of the full
// product, and the dead-time contribution -delay*omega is added linearly.
// Right-half-plane roots can still wrap as omega passes their imaginary
// part; that limitation is shared with the usual Bode phase construction.
func unwrappedPhase(g tf.TransferFunction) func(float64) float64 {
	zeros, poles, k := g.ZerosPolesK()
	base := 0.0
	if k < 0 {
		base = -math.Pi
	}
	delay := g.Delay
	return func(w float64) float64 {
		p := base - delay*w
		iw := complex(0, w)
		for _, z := range zeros {
			p += cmplx.Phase(iw - z)
		}
		for _, pl := range poles {
			p -= cmplx.Phase(iw - pl)
		}
		return p
	}
}
