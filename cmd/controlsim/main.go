package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/controlsim/internal/analysis"
	"github.com/san-kum/controlsim/internal/config"
	"github.com/san-kum/controlsim/internal/metrics"
	"github.com/san-kum/controlsim/internal/sim"
	"github.com/san-kum/controlsim/internal/store"
	"github.com/san-kum/controlsim/internal/tf"
	"github.com/san-kum/controlsim/internal/tui"
	"github.com/san-kum/controlsim/internal/viz"
)

var (
	numStr     string
	denStr     string
	delay      float64
	finalTime  float64
	points     int
	jsonPath   string
	csvPath    string
	live       bool
	freqGuess  float64
	maxGain    float64
	gainSteps  int
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "controlsim",
		Short: "transfer function algebra and LTI simulation lab",
	}

	stepCmd := &cobra.Command{
		Use:   "step",
		Short: "simulate the unit step response of a transfer function",
		RunE:  runStep,
	}
	addSystemFlags(stepCmd)
	stepCmd.Flags().Float64Var(&finalTime, "time", 10.0, "simulation horizon")
	stepCmd.Flags().IntVar(&points, "points", 200, "output samples")
	stepCmd.Flags().StringVar(&jsonPath, "json", "", "export series to JSON file")
	stepCmd.Flags().StringVar(&csvPath, "csv", "", "export series to CSV file")
	stepCmd.Flags().BoolVar(&live, "live", false, "animate the response")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "simulate a scenario from a YAML config",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	simulateCmd.Flags().StringVar(&jsonPath, "json", "", "export series to JSON file")
	simulateCmd.Flags().StringVar(&csvPath, "csv", "", "export series to CSV file")
	simulateCmd.Flags().BoolVar(&live, "live", false, "animate the response")

	marginsCmd := &cobra.Command{
		Use:   "margins",
		Short: "compute gain and phase margins of an open-loop transfer function",
		RunE:  runMargins,
	}
	addSystemFlags(marginsCmd)
	marginsCmd.Flags().Float64Var(&freqGuess, "guess", analysis.DefaultFreqGuess, "starting frequency for the crossover searches")

	locusCmd := &cobra.Command{
		Use:   "locus",
		Short: "trace the closed-loop root locus over a gain sweep",
		RunE:  runLocus,
	}
	addSystemFlags(locusCmd)
	locusCmd.Flags().Float64Var(&maxGain, "kmax", 10.0, "maximum gain magnitude")
	locusCmd.Flags().IntVar(&gainSteps, "steps", 20, "gain sweep steps")

	zpkCmd := &cobra.Command{
		Use:   "zpk",
		Short: "print the zero/pole/gain factorization",
		RunE:  runZPK,
	}
	addSystemFlags(zpkCmd)

	rootCmd.AddCommand(stepCmd, simulateCmd, marginsCmd, locusCmd, zpkCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSystemFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&numStr, "num", "1", "numerator coefficients, highest power first")
	cmd.Flags().StringVar(&denStr, "den", "1,1", "denominator coefficients, highest power first")
	cmd.Flags().Float64Var(&delay, "delay", 0, "dead time")
}

func systemFromFlags() (tf.TransferFunction, error) {
	num, err := parseCoeffs(numStr)
	if err != nil {
		return tf.TransferFunction{}, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := parseCoeffs(denStr)
	if err != nil {
		return tf.TransferFunction{}, fmt.Errorf("invalid denominator: %w", err)
	}
	return tf.New(num, den, delay)
}

func parseCoeffs(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func runStep(cmd *cobra.Command, args []string) error {
	g, err := systemFromFlags()
	if err != nil {
		return err
	}
	cfg := sim.DefaultConfig()
	cfg.Points = points
	resp, err := sim.SimulateInput(context.Background(), g, sim.StepInput(1), finalTime, cfg)
	if err != nil {
		return err
	}
	return present(resp, g.String()+" step response", finalTime)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	scenario := config.DefaultConfig()
	if configFile != "" {
		var err error
		scenario, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}
	plant, err := scenario.Plant()
	if err != nil {
		return err
	}
	gc, err := scenario.ControllerTF()
	if err != nil {
		return err
	}
	u, err := scenario.InputTransform()
	if err != nil {
		return err
	}

	gol := gc.Mul(plant)
	horizon := scenario.Simulation.FinalTime
	cfg := sim.DefaultConfig()
	cfg.Points = scenario.Simulation.Points

	var resp *sim.Response
	var title string
	if scenario.Simulation.Feedback {
		loop := tf.NewClosedLoop(gol.Mul(u), gol)
		resp, err = sim.SimulateClosedLoop(context.Background(), loop, horizon, cfg)
		title = "closed-loop response"
	} else {
		resp, err = sim.Simulate(context.Background(), gol.Mul(u), horizon, cfg)
		title = "open-loop response"
	}
	if err != nil {
		return err
	}
	return present(resp, title, horizon)
}

func present(resp *sim.Response, title string, horizon float64) error {
	if jsonPath != "" {
		m := map[string]float64{
			"steady_state":  metrics.SteadyState(resp),
			"overshoot":     metrics.Overshoot(resp),
			"rise_time":     metrics.RiseTime(resp),
			"settling_time": metrics.SettlingTime(resp, 0.05),
		}
		if err := store.ExportJSON(jsonPath, title, horizon, resp, m); err != nil {
			return err
		}
	}
	if csvPath != "" {
		if err := store.ExportCSV(csvPath, resp); err != nil {
			return err
		}
	}
	if live {
		return tui.Run(resp, title)
	}
	fmt.Println(viz.PlotResponse(resp, 70, 14, title))
	fmt.Printf("steady state %.5g, settling time (5%%) %.4g\n",
		metrics.SteadyState(resp), metrics.SettlingTime(resp, 0.05))
	return nil
}

func runMargins(cmd *cobra.Command, args []string) error {
	g, err := systemFromFlags()
	if err != nil {
		return err
	}
	m := analysis.ComputeMarginsFrom(g, freqGuess)
	fmt.Print(viz.FormatMargins(m))
	return nil
}

func runLocus(cmd *cobra.Command, args []string) error {
	g, err := systemFromFlags()
	if err != nil {
		return err
	}
	locus, err := analysis.RootLocus(g, maxGain, gainSteps)
	if err != nil {
		return err
	}
	fmt.Print(viz.FormatLocus(locus))
	return nil
}

func runZPK(cmd *cobra.Command, args []string) error {
	g, err := systemFromFlags()
	if err != nil {
		return err
	}
	fmt.Print(viz.PoleZeroTable(g))
	return nil
}
