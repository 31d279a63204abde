package tf

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/san-kum/controlsim/internal/poly"
)

func complexClose(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}

func TestZerosPolesKScenario(t *testing.T) {
	// g = (5s+1)/(s^2+4s+5)
	g := MustNew([]float64{5, 1}, []float64{1, 4, 5}, 0)
	zeros, poles, k := g.ZerosPolesK()

	if len(zeros) != 1 || !complexClose(zeros[0], complex(-0.2, 0), 1e-9) {
		t.Errorf("expected zeros [-0.2], got %v", zeros)
	}
	sorted := poly.SortRoots(poles)
	if len(sorted) != 2 ||
		!complexClose(sorted[0], complex(-2, -1), 1e-9) ||
		!complexClose(sorted[1], complex(-2, 1), 1e-9) {
		t.Errorf("expected poles [-2-i, -2+i], got %v", sorted)
	}
	if math.Abs(k-5) > 1e-9 {
		t.Errorf("expected k=5, got %f", k)
	}
}

func TestZPKRoundTrip(t *testing.T) {
	zeros := []complex128{complex(-0.5, 0)}
	poles := []complex128{complex(-1, -2), complex(-1, 2), complex(-3, 0)}
	const k = 2.5

	g, err := FromZPK(zeros, poles, k, 0.75)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	gotZeros, gotPoles, gotK := g.ZerosPolesK()

	for i, z := range poly.SortRoots(gotZeros) {
		if !complexClose(z, poly.SortRoots(zeros)[i], 1e-9) {
			t.Errorf("zero %d: expected %v, got %v", i, zeros[i], z)
		}
	}
	for i, p := range poly.SortRoots(gotPoles) {
		if !complexClose(p, poly.SortRoots(poles)[i], 1e-9) {
			t.Errorf("pole %d: expected %v, got %v", i, poles[i], p)
		}
	}
	if math.Abs(gotK-k) > 1e-9 {
		t.Errorf("expected k=%f, got %f", k, gotK)
	}
	if g.Delay != 0.75 {
		t.Errorf("expected delay 0.75, got %f", g.Delay)
	}
}

func TestFromZPKUnpairedRoots(t *testing.T) {
	if _, err := FromZPK(nil, []complex128{complex(-1, 2)}, 1, 0); !errors.Is(err, ErrConjugateRoots) {
		t.Errorf("expected ErrConjugateRoots, got %v", err)
	}
}

func TestCancelRemovesCommonFactor(t *testing.T) {
	// (s+1)(s+2) / ((s+1)(s+3)) should reduce to (s+2)/(s+3)
	g := MustNew([]float64{1, 3, 2}, []float64{1, 4, 3}, 0)
	c := g.Cancel()

	numDeg, denDeg := c.Order()
	if numDeg != 1 || denDeg != 1 {
		t.Fatalf("expected first order after cancellation, got (%d, %d)", numDeg, denDeg)
	}
	want := MustNew([]float64{1, 2}, []float64{1, 3}, 0)
	if !c.ApproxEqual(want, 1e-6) {
		t.Errorf("expected (s+2)/(s+3), got %s", c)
	}
}

func TestCancelBalancesPairs(t *testing.T) {
	// double zero against single pole at -1: exactly one pair cancels
	g := MustNew([]float64{1, 2, 1}, []float64{1, 1}, 0)
	c := g.Cancel()
	numDeg, denDeg := c.Order()
	if numDeg != 1 || denDeg != 0 {
		t.Errorf("expected one surviving zero, got order (%d, %d)", numDeg, denDeg)
	}
}

func TestCancelIdempotent(t *testing.T) {
	g := MustNew([]float64{1, 3, 2}, []float64{1, 4, 3}, 0)
	once := g.Cancel()
	twice := once.Cancel()
	if !once.ApproxEqual(twice, 1e-9) {
		t.Errorf("cancellation should be idempotent: %s vs %s", once, twice)
	}
}

func TestCancelKeepsDistinctRoots(t *testing.T) {
	g := MustNew([]float64{5, 1}, []float64{1, 4, 5}, 0)
	c := g.Cancel()
	if !c.ApproxEqual(g, 1e-6) {
		t.Errorf("nothing should cancel, got %s", c)
	}
}

func TestZerosPolesGain(t *testing.T) {
	g := MustNew([]float64{4}, []float64{3, 1}, 0)
	zeros, poles, gain := g.ZerosPolesGain()
	if len(zeros) != 0 {
		t.Errorf("expected no zeros, got %v", zeros)
	}
	if len(poles) != 1 || !complexClose(poles[0], complex(-1.0/3.0, 0), 1e-9) {
		t.Errorf("expected pole -1/3, got %v", poles)
	}
	if math.Abs(gain-4) > 1e-9 {
		t.Errorf("expected gain 4, got %f", gain)
	}
}
