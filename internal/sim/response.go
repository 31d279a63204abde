package sim

import (
	"fmt"
	"sort"
)

// Response is a simulated time series: (time, output) pairs sorted by time
// ascending. The series always includes two points strictly before time
// zero so the causality assumption y(t)=0 for t<0 is visible in the data.
type Response struct {
	Times  []float64
	Values []float64
}

// Len returns the number of samples.
func (r *Response) Len() int { return len(r.Times) }

// Final returns the last sampled output value.
func (r *Response) Final() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	return r.Values[len(r.Values)-1]
}

// At linearly interpolates the output at time t. Querying outside the
// simulated time range is an error.
func (r *Response) At(t float64) (float64, error) {
	n := len(r.Times)
	if n == 0 {
		return 0, fmt.Errorf("sim: empty response")
	}
	if t < r.Times[0] || t > r.Times[n-1] {
		return 0, fmt.Errorf("sim: time %g outside simulated range [%g, %g]",
			t, r.Times[0], r.Times[n-1])
	}
	i := sort.SearchFloat64s(r.Times, t)
	if i < n && r.Times[i] == t {
		return r.Values[i], nil
	}
	lo, hi := i-1, i
	span := r.Times[hi] - r.Times[lo]
	if span == 0 {
		return r.Values[lo], nil
	}
	frac := (t - r.Times[lo]) / span
	return r.Values[lo] + frac*(r.Values[hi]-r.Values[lo]), nil
}
