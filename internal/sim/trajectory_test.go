package sim

import (
	"math"
	"testing"
)

func TestTrajectoryInterpolation(t *testing.T) {
	tr := newTrajectory(2)
	tr.append(0, []float64{0, 10})
	tr.append(1, []float64{2, 20})
	tr.append(2, []float64{4, 40})

	x := tr.at(0.5)
	if math.Abs(x[0]-1) > 1e-12 || math.Abs(x[1]-15) > 1e-12 {
		t.Errorf("midpoint: expected (1, 15), got %v", x)
	}
	x = tr.at(1)
	if x[0] != 2 || x[1] != 20 {
		t.Errorf("exact hit: expected (2, 20), got %v", x)
	}
}

func TestTrajectoryHistoryBounds(t *testing.T) {
	tr := newTrajectory(1)
	tr.append(0, []float64{1})
	tr.append(1, []float64{3})

	// pre-history is the zero state
	if x := tr.at(-0.5); x[0] != 0 {
		t.Errorf("expected zero pre-history, got %v", x)
	}
	// lookups past the record clamp to the last state
	if x := tr.at(1.5); x[0] != 3 {
		t.Errorf("expected clamp to last state, got %v", x)
	}

	tEnd, xEnd := tr.last()
	if tEnd != 1 || xEnd[0] != 3 {
		t.Errorf("expected last record (1, [3]), got (%f, %v)", tEnd, xEnd)
	}
}

func TestTrajectoryCopiesAppendedState(t *testing.T) {
	tr := newTrajectory(1)
	x := []float64{5}
	tr.append(0, x)
	x[0] = 99
	if got := tr.at(0); got[0] != 5 {
		t.Errorf("append must copy, got %v", got)
	}
}
