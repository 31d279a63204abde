// Package viz renders responses and factorizations for the terminal.
package viz

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/controlsim/internal/analysis"
	"github.com/san-kum/controlsim/internal/sim"
	"github.com/san-kum/controlsim/internal/tf"
)

// PlotResponse renders the time series as an ASCII chart.
func PlotResponse(r *sim.Response, width, height int, caption string) string {
	return asciigraph.Plot(r.Values,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)
}

// PoleZeroTable renders the cancelled zero/pole/gain factorization of g.
func PoleZeroTable(g tf.TransferFunction) string {
	zeros, poles, gain := g.ZerosPolesGain()

	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "kind\tlocation\tmagnitude")
	for _, z := range zeros {
		fmt.Fprintf(w, "zero\t%s\t%.4g\n", formatComplex(z), cmplx.Abs(z))
	}
	for _, p := range poles {
		fmt.Fprintf(w, "pole\t%s\t%.4g\n", formatComplex(p), cmplx.Abs(p))
	}
	w.Flush()
	fmt.Fprintf(&b, "zero-frequency gain: %.6g\n", gain)
	return b.String()
}

// FormatMargins renders a margins result, writing "none" for NaN fields.
func FormatMargins(m analysis.Margins) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "critical frequency\t%s rad/time\n", formatOrNone(m.CriticalFreq))
	fmt.Fprintf(w, "gain margin\t%s\n", formatOrNone(m.GainMargin))
	fmt.Fprintf(w, "gain crossover frequency\t%s rad/time\n", formatOrNone(m.GainCrossFreq))
	fmt.Fprintf(w, "phase margin\t%s rad\n", formatOrNone(m.PhaseMargin))
	w.Flush()
	return b.String()
}

// FormatLocus renders the root-locus sweep as one row per gain step.
func FormatLocus(l *analysis.Locus) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "gain\troots")
	for i, kc := range l.Gains {
		parts := make([]string, len(l.Roots[i]))
		for j, root := range l.Roots[i] {
			parts[j] = formatComplex(root)
		}
		fmt.Fprintf(w, "%.4g\t%s\n", kc, strings.Join(parts, "  "))
	}
	w.Flush()
	return b.String()
}

func formatOrNone(v float64) string {
	if math.IsNaN(v) {
		return "none"
	}
	return fmt.Sprintf("%.6g", v)
}

func formatComplex(z complex128) string {
	if imag(z) == 0 {
		return fmt.Sprintf("%.4g", real(z))
	}
	return fmt.Sprintf("%.4g%+.4gi", real(z), imag(z))
}
