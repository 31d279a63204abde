package sim

import "sort"

// trajectory is the dense state history recorded during integration. It
// doubles as the delay-history function for closed loops: lookups before
// the start of the record return the zero state, lookups marginally past
// the last record clamp to it.
type trajectory struct {
	times  []float64
	states [][]float64
	dim    int
}

func newTrajectory(dim int) *trajectory {
	return &trajectory{dim: dim}
}

func (tr *trajectory) append(t float64, x []float64) {
	c := make([]float64, len(x))
	copy(c, x)
	tr.times = append(tr.times, t)
	tr.states = append(tr.states, c)
}

func (tr *trajectory) last() (float64, []float64) {
	n := len(tr.times)
	return tr.times[n-1], tr.states[n-1]
}

// at returns the linearly interpolated state at time t.
func (tr *trajectory) at(t float64) []float64 {
	n := len(tr.times)
	if n == 0 || t < tr.times[0] {
		return make([]float64, tr.dim)
	}
	if t >= tr.times[n-1] {
		return tr.states[n-1]
	}
	i := sort.SearchFloat64s(tr.times, t)
	if tr.times[i] == t {
		return tr.states[i]
	}
	lo, hi := i-1, i
	frac := (t - tr.times[lo]) / (tr.times[hi] - tr.times[lo])
	out := make([]float64, tr.dim)
	for k := 0; k < tr.dim; k++ {
		out[k] = tr.states[lo][k] + frac*(tr.states[hi][k]-tr.states[lo][k])
	}
	return out
}
