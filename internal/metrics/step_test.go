package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/controlsim/internal/sim"
)

// sampled builds a response from y(t) on [0, finalTime] with the usual two
// pre-zero samples.
func sampled(y func(float64) float64, finalTime float64, points int) *sim.Response {
	r := &sim.Response{
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

func firstOrder(k, tau float64) func(float64) float64 {
	return func(t float64) float64 { return k * (1 - math.Exp(-t/tau)) }
}

// underdamped is the unit step response of 1/(s^2+2*zeta*s+1) for zeta<1.
func underdamped(zeta float64) func(float64) float64 {
	wd := math.Sqrt(1 - zeta*zeta)
	return func(t float64) float64 {
		return 1 - math.Exp(-zeta*t)/wd*math.Sin(wd*t+math.Acos(zeta))
	}
}

func TestSteadyState(t *testing.T) {
	r := sampled(firstOrder(4, 1), 20, 400)
	if got := SteadyState(r); math.Abs(got-4) > 1e-3 {
		t.Errorf("expected 4, got %f", got)
	}
}

func TestSteadyStateIgnoresPreZero(t *testing.T) {
	r := &sim.Response{
		Times:  []float64{-1, -0.5, 0, 1, 2},
		Values: []float64{0, 0, 5, 5, 5},
	}
	if got := SteadyState(r); got != 5 {
		t.Errorf("expected 5, got %f", got)
	}
}

func TestOvershootMonotone(t *testing.T) {
	r := sampled(firstOrder(4, 1), 20, 400)
	if got := Overshoot(r); !math.IsNaN(got) {
		t.Errorf("monotone response has no overshoot, got %f", got)
	}
}

func TestOvershootUnderdamped(t *testing.T) {
	// zeta = 0.2: overshoot exp(-pi*zeta/sqrt(1-zeta^2)) = 0.5266
	r := sampled(underdamped(0.2), 40, 4000)
	want := math.Exp(-math.Pi * 0.2 / math.Sqrt(1-0.04))
	if got := Overshoot(r); math.Abs(got-want) > 0.01 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestOvershootNegativeGain(t *testing.T) {
	neg := underdamped(0.2)
	r := sampled(func(t float64) float64 { return -neg(t) }, 40, 4000)
	want := math.Exp(-math.Pi * 0.2 / math.Sqrt(1-0.04))
	if got := Overshoot(r); math.Abs(got-want) > 0.01 {
		t.Errorf("overshoot must follow the excursion direction, expected %f, got %f", want, got)
	}
}

func TestPeakTime(t *testing.T) {
	// peak at pi/wd for the normalized underdamped system
	r := sampled(underdamped(0.2), 40, 4000)
	want := math.Pi / math.Sqrt(1-0.04)
	if got := PeakTime(r); math.Abs(got-want) > 0.05 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestRiseTime(t *testing.T) {
	// first-order: t10 = tau*ln(10/9), t90 = tau*ln(10)
	r := sampled(firstOrder(4, 2), 30, 3000)
	want := 2 * (math.Log(10) - math.Log(10.0/9.0))
	if got := RiseTime(r); math.Abs(got-want) > 0.05 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestRiseTimeZeroFinal(t *testing.T) {
	r := sampled(func(t float64) float64 { return 0 }, 10, 100)
	if got := RiseTime(r); !math.IsNaN(got) {
		t.Errorf("zero settled value has no rise time, got %f", got)
	}
}

func TestSettlingTime(t *testing.T) {
	// first-order settles within 2% at about 4 time constants
	r := sampled(firstOrder(4, 2), 40, 4000)
	got := SettlingTime(r, 0.02)
	if math.IsNaN(got) {
		t.Fatal("expected finite settling time")
	}
	if math.Abs(got-8) > 0.3 {
		t.Errorf("expected about 8, got %f", got)
	}
}

func TestSettlingTimeNeverSettles(t *testing.T) {
	r := sampled(func(t float64) float64 { return math.Sin(t) }, 40, 4000)
	if got := SettlingTime(r, 0.02); !math.IsNaN(got) {
		t.Errorf("oscillation must not settle, got %f", got)
	}
}

func TestEmptyResponse(t *testing.T) {
	r := &sim.Response{Times: []float64{-1}, Values: []float64{0}}
	if got := SteadyState(r); !math.IsNaN(got) {
		t.Errorf("expected NaN for a response with no positive samples, got %f", got)
	}
	if got := PeakTime(r); !math.IsNaN(got) {
		t.Errorf("expected NaN peak time, got %f", got)
	}
}
