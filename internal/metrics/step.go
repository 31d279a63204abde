// Package metrics computes step-response quality indicators from a
// simulated time series.
package metrics

import (
	"math"

	"github.com/san-kum/controlsim/internal/sim"
)

// SteadyState estimates the settled output as the mean of the last 5% of
// samples at or after t=0.
func SteadyState(r *sim.Response) float64 {
	_, values := positive(r)
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	tail := n / 20
	if tail < 1 {
		tail = 1
	}
	sum := 0.0
	for _, v := range values[n-tail:] {
		sum += v
	}
	return sum / float64(tail)
}

// Overshoot returns the fractional overshoot (peak-final)/final, or NaN
// when the response never exceeds its settled value or settles at zero.
func Overshoot(r *sim.Response) float64 {
	final := SteadyState(r)
	if final == 0 || math.IsNaN(final) {
		return math.NaN()
	}
	_, values := positive(r)
	sign := math.Copysign(1, final)
	peak := math.Inf(-1)
	for _, v := range values {
		if v*sign > peak {
			peak = v * sign
		}
	}
	os := (peak - final*sign) / math.Abs(final)
	if os <= 0 {
		return math.NaN()
	}
	return os
}

// PeakTime returns the time of the largest output excursion after t=0.
func PeakTime(r *sim.Response) float64 {
	times, values := positive(r)
	if len(values) == 0 {
		return math.NaN()
	}
	best, bestT := math.Inf(-1), math.NaN()
	for i, v := range values {
		if math.Abs(v) > best {
			best, bestT = math.Abs(v), times[i]
		}
	}
	return bestT
}

// RiseTime returns the 10%-90% rise time relative to the settled value,
// NaN when the response never reaches 90%.
func RiseTime(r *sim.Response) float64 {
	final := SteadyState(r)
	if final == 0 || math.IsNaN(final) {
		return math.NaN()
	}
	times, values := positive(r)
	t10, t90 := math.NaN(), math.NaN()
	for i, v := range values {
		frac := v / final
		if math.IsNaN(t10) && frac >= 0.1 {
			t10 = times[i]
		}
		if frac >= 0.9 {
			t90 = times[i]
			break
		}
	}
	if math.IsNaN(t10) || math.IsNaN(t90) {
		return math.NaN()
	}
	return t90 - t10
}

// SettlingTime returns the first time after which the output stays within
// band*|final| of the settled value, NaN when it never settles.
func SettlingTime(r *sim.Response, band float64) float64 {
	final := SteadyState(r)
	if math.IsNaN(final) {
		return math.NaN()
	}
	tol := band * math.Abs(final)
	times, values := positive(r)
	settled := math.NaN()
	for i, v := range values {
		if math.Abs(v-final) > tol {
			settled = math.NaN()
		} else if math.IsNaN(settled) {
			settled = times[i]
		}
	}
	return settled
}

// positive filters the series down to samples at or after time zero.
func positive(r *sim.Response) (times, values []float64) {
	for i, t := range r.Times {
		if t >= 0 {
			return r.Times[i:], r.Values[i:]
		}
	}
	return nil, nil
}
