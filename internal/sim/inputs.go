package sim

import "math"

// StepInput returns a step of the given magnitude at t=0.
func StepInput(magnitude float64) func(float64) float64 {
	return func(t float64) float64 {
		if t < 0 {
			return 0
		}
		return magnitude
	}
}

// RampInput returns a ramp of the given slope starting at t=0.
func RampInput(slope float64) func(float64) float64 {
	return func(t float64) float64 {
		if t < 0 {
			return 0
		}
		return slope * t
	}
}

// SineInput returns amplitude*sin(omega*t) for t>=0.
func SineInput(amplitude, omega float64) func(float64) float64 {
	return func(t float64) float64 {
		if t < 0 {
			return 0
		}
		return amplitude * math.Sin(omega*t)
	}
}
