package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestSecantQuadratic(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	x, err := secant(f, 1, 1e-12, 100)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if math.Abs(x-math.Sqrt2) > 1e-10 {
		t.Errorf("expected sqrt(2), got %.12f", x)
	}
}

func TestSecantTranscendental(t *testing.T) {
	f := func(x float64) float64 { return math.Cos(x) - x }
	x, err := secant(f, 0.5, 1e-12, 100)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if math.Abs(math.Cos(x)-x) > 1e-10 {
		t.Errorf("not a fixed point of cos: %.12f", x)
	}
}

func TestSecantNoRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	if _, err := secant(f, 1, 1e-12, 100); !errors.Is(err, ErrNoConvergence) {
		t.Errorf("expected ErrNoConvergence, got %v", err)
	}
}

func TestSecantFlatFunction(t *testing.T) {
	f := func(x float64) float64 { return 3 }
	if _, err := secant(f, 1, 1e-12, 100); !errors.Is(err, ErrNoConvergence) {
		t.Errorf("expected ErrNoConvergence, got %v", err)
	}
}

func TestSecantUndefinedNearGuess(t *testing.T) {
	f := func(x float64) float64 { return math.NaN() }
	if _, err := secant(f, 1, 1e-12, 100); !errors.Is(err, ErrNoConvergence) {
		t.Errorf("expected ErrNoConvergence, got %v", err)
	}
}
