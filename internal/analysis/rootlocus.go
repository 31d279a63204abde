package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/san-kum/controlsim/internal/poly"
	"github.com/san-kum/controlsim/internal/tf"
)

// Locus traces the roots of the closed-loop characteristic polynomial
// 1 + Kc*gOL(s) across a gain sweep. Roots[i] holds the root positions at
// Gains[i]; within each step, index j follows branch j from the previous
// step.
type Locus struct {
	Gains []float64
	Roots [][]complex128
}

// assignBranches matches the roots of one gain step onto the branches of
// the previous step. The nearest-neighbor default can misassign branches
// when two loci cross at the same gain step; it is a package variable so a
// stricter matching (optimal bipartite assignment) can replace it without
// touching callers.
var assignBranches = nearestNeighbor

// RootLocus sweeps the loop gain Kc from 0 to a maximum magnitude whose
// sign matches the open-loop gain, computing the characteristic roots at
// each step. At Kc=0 the roots are exactly the open-loop poles. The dead
// time of gOL does not move the rational characteristic roots and is
// ignored here.
func RootLocus(gOL tf.TransferFunction, maxGainMag float64, steps int) (*Locus, error) {
	if maxGainMag <= 0 {
		return nil, fmt.Errorf("analysis: max gain magnitude must be positive, got %g", maxGainMag)
	}
	if steps < 2 {
		return nil, fmt.Errorf("analysis: gain sweep needs at least 2 steps, got %d", steps)
	}
	g := gOL.Cancel()
	if !g.IsProper() {
		return nil, tf.ErrNotProper
	}

	sign := gainSign(g)
	locus := &Locus{
		Gains: make([]float64, steps),
		Roots: make([][]complex128, steps),
	}
	locus.Roots[0] = g.Den.Roots()
	for i := 1; i < steps; i++ {
		kc := sign * maxGainMag * float64(i) / float64(steps-1)
		locus.Gains[i] = kc
		roots := Characteristic(g, kc).Roots()
		locus.Roots[i] = assignBranches(locus.Roots[i-1], roots)
	}
	return locus, nil
}

// Characteristic returns the closed-loop characteristic polynomial
// den(s) + kc*num(s) of the rational part of gOL.
func Characteristic(gOL tf.TransferFunction, kc float64) poly.Poly {
	return gOL.Den.Add(gOL.Num.Scale(kc))
}

func gainSign(g tf.TransferFunction) float64 {
	gain := g.Gain()
	if math.IsInf(gain, 0) || math.IsNaN(gain) || gain == 0 {
		gain = g.Num.Leading() / g.Den.Leading()
	}
	if gain < 0 {
		return -1
	}
	return 1
}

// nearestNeighbor assigns each new root to the closest not-yet-assigned
// branch of the previous step by Euclidean distance in the complex plane.
func nearestNeighbor(prev, next []complex128) []complex128 {
	out := make([]complex128, len(prev))
	used := make([]bool, len(next))
	for b, p := range prev {
		best := -1
		bestDist := math.Inf(1)
		for j, r := range next {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(r - p); d < bestDist {
				best, bestDist = j, d
			}
		}
		if best >= 0 {
			used[best] = true
			out[b] = next[best]
		}
	}
	return out
}
