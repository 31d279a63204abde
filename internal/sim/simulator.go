package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/controlsim/internal/integrators"
	"github.com/san-kum/controlsim/internal/ss"
	"github.com/san-kum/controlsim/internal/tf"
)

// Config controls the numerical resolution of a simulation run.
type Config struct {
	// Points is the number of output samples over [0, finalTime].
	Points int
	// StepsPerPoint is the number of internal integration steps per
	// output sample.
	StepsPerPoint int
	// Integrator performs the individual steps. Defaults to RK4.
	Integrator integrators.Integrator
}

// DefaultConfig returns the resolution used when the caller passes a zero
// Config.
func DefaultConfig() Config {
	return Config{
		Points:        200,
		StepsPerPoint: 10,
		Integrator:    integrators.NewRK4(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Points <= 0 {
		c.Points = def.Points
	}
	if c.StepsPerPoint <= 0 {
		c.StepsPerPoint = def.StepsPerPoint
	}
	if c.Integrator == nil {
		c.Integrator = def.Integrator
	}
	return c
}

type odeSystem struct {
	f   func(x []float64, t float64) []float64
	dim int
}

func (s odeSystem) Derivative(x []float64, t float64) []float64 { return s.f(x, t) }
func (s odeSystem) Dim() int                                    { return s.dim }

// Simulate computes the time-domain response of a Laplace-domain output
// expression Y(s): a transfer function already multiplied by the input's
// transform. It solves the zero-input system dx/dt = A x from x(0) = B,
// exploiting the impulse-response structure of the controllable canonical
// form, and reads the output as y(t) = C x(t-delay). Y must be proper; a
// non-strictly-proper Y contributes an impulse at t=0 that the sampled
// series cannot represent and is ignored.
func Simulate(ctx context.Context, y tf.TransferFunction, finalTime float64, cfg Config) (*Response, error) {
	if finalTime <= 0 {
		return nil, fmt.Errorf("sim: final time must be positive, got %g", finalTime)
	}
	cfg = cfg.withDefaults()

	model, err := ss.FromTransferFunction(y)
	if err != nil {
		return nil, err
	}
	sys := odeSystem{
		dim: model.Dim(),
		f: func(x []float64, t float64) []float64 {
			return model.Derivative(x, 0)
		},
	}

	tr := newTrajectory(model.Dim())
	steps := cfg.Points * cfg.StepsPerPoint
	err = integrate(ctx, sys, cfg.Integrator, model.InitialImpulseState(),
		finalTime, breakpoints(finalTime, model.Delay), steps, tr)
	if err != nil {
		return nil, err
	}

	return sampleShifted(tr, finalTime, cfg.Points, model.Delay, func(x []float64) float64 {
		return model.Output(x, 0)
	}), nil
}

// SimulateInput computes the response of a proper transfer function to an
// explicit time-domain input u. The input is shifted by the dead time and
// taken as zero before it; the direct feed-through term D u(t-delay) is
// added to the sampled output.
func SimulateInput(ctx context.Context, g tf.TransferFunction, u func(float64) float64, finalTime float64, cfg Config) (*Response, error) {
	if finalTime <= 0 {
		return nil, fmt.Errorf("sim: final time must be positive, got %g", finalTime)
	}
	cfg = cfg.withDefaults()

	model, err := ss.FromTransferFunction(g)
	if err != nil {
		return nil, err
	}
	uShift := func(t float64) float64 {
		if t < model.Delay {
			return 0
		}
		return u(t - model.Delay)
	}
	sys := odeSystem{
		dim: model.Dim(),
		f: func(x []float64, t float64) []float64 {
			return model.Derivative(x, uShift(t))
		},
	}

	tr := newTrajectory(model.Dim())
	steps := cfg.Points * cfg.StepsPerPoint
	err = integrate(ctx, sys, cfg.Integrator, make([]float64, model.Dim()),
		finalTime, breakpoints(finalTime, model.Delay), steps, tr)
	if err != nil {
		return nil, err
	}

	return sampleAt(tr, finalTime, cfg.Points, func(t float64) float64 {
		return model.Output(tr.at(t), uShift(t))
	}), nil
}

// SimulateClosedLoop integrates a closed loop with dead time as a delay
// differential equation by the method of steps: the state history serves
// as the delay lookup, with zero pre-history, and breakpoints at multiples
// of the feedback delay keep the lag lookups inside the recorded past.
func SimulateClosedLoop(ctx context.Context, cl tf.ClosedLoop, finalTime float64, cfg Config) (*Response, error) {
	if finalTime <= 0 {
		return nil, fmt.Errorf("sim: final time must be positive, got %g", finalTime)
	}
	cfg = cfg.withDefaults()

	model, err := ss.FromClosedLoop(cl)
	if err != nil {
		return nil, err
	}
	phi := model.FeedbackDelay

	tr := newTrajectory(model.Dim())
	zero := make([]float64, model.Dim())
	sys := odeSystem{
		dim: model.Dim(),
		f: func(x []float64, t float64) []float64 {
			lag := zero
			if phi == 0 {
				lag = x
			} else if t-phi >= 0 {
				lag = tr.at(t - phi)
			}
			return model.Derivative(x, lag)
		},
	}

	steps := cfg.Points * cfg.StepsPerPoint
	err = integrate(ctx, sys, cfg.Integrator, model.InitialImpulseState(),
		finalTime, delayBreakpoints(finalTime, phi, steps), steps, tr)
	if err != nil {
		return nil, err
	}

	return sampleShifted(tr, finalTime, cfg.Points, model.OutputDelay, model.Output), nil
}

// integrate advances sys from t=0 to t=finalTime with uniform steps inside
// each segment between breakpoints, recording every accepted step in tr.
func integrate(ctx context.Context, sys integrators.System, integ integrators.Integrator,
	x0 []float64, finalTime float64, breaks []float64, totalSteps int, tr *trajectory) error {

	bounds := append([]float64{0}, breaks...)
	bounds = append(bounds, finalTime)

	x := x0
	tr.append(0, x)
	for i := 0; i+1 < len(bounds); i++ {
		t0, t1 := bounds[i], bounds[i+1]
		span := t1 - t0
		if span <= 0 {
			continue
		}
		n := int(math.Ceil(float64(totalSteps) * span / finalTime))
		if n < 1 {
			n = 1
		}
		dt := span / float64(n)
		t := t0
		for k := 0; k < n; k++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			x = integ.Step(sys, x, t, dt)
			t = t0 + float64(k+1)*dt
			tr.append(t, x)
		}
	}
	return nil
}

// breakpoints returns the explicit discontinuity points for a single dead
// time: the delay boundary, if it falls inside the simulated span.
func breakpoints(finalTime, delay float64) []float64 {
	if delay > 0 && delay < finalTime {
		return []float64{delay}
	}
	return nil
}

// delayBreakpoints returns multiples of the feedback delay up to the final
// time, capped so segment count never exceeds the step budget. Past the
// cap the history lookup clamps, an O(dt) approximation.
func delayBreakpoints(finalTime, phi float64, totalSteps int) []float64 {
	if phi <= 0 {
		return nil
	}
	var out []float64
	for k := 1; float64(k)*phi < finalTime && k <= totalSteps; k++ {
		out = append(out, float64(k)*phi)
	}
	return out
}

// sampleAt builds the output series from an arbitrary y(t), prefixed with
// two zero samples strictly before t=0.
func sampleAt(tr *trajectory, finalTime float64, points int, y func(float64) float64) *Response {
	r := &Response{
		Times:  []float64{-finalTime / 20, -finalTime / 40},
		Values: []float64{0, 0},
	}
	for i := 0; i <= points; i++ {
		t := finalTime * float64(i) / float64(points)
		r.Times = append(r.Times, t)
		r.Values = append(r.Values, y(t))
	}
	return r
}

// sampleShifted builds the output series y(t) = output(x(t-shift)), zero
// for arguments before the start of the record.
func sampleShifted(tr *trajectory, finalTime float64, points int, shift float64, output func([]float64) float64) *Response {
	return sampleAt(tr, finalTime, points, func(t float64) float64 {
		tau := t - shift
		if tau < 0 {
			return 0
		}
		return output(tr.at(tau))
	})
}
