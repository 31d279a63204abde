// Package store exports simulation results to JSON and CSV files.
package store

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/san-kum/controlsim/internal/sim"
)

type ExportData struct {
	System    string             `json:"system"`
	FinalTime float64            `json:"final_time"`
	Samples   int                `json:"samples"`
	Times     []float64          `json:"times"`
	Values    []float64          `json:"values"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// ExportJSON writes the response series and optional metrics to path as
// indented JSON.
func ExportJSON(path, system string, finalTime float64, r *sim.Response, metrics map[string]float64) error {
	data := ExportData{
		System:    system,
		FinalTime: finalTime,
		Samples:   r.Len(),
		Times:     r.Times,
		Values:    r.Values,
		Metrics:   metrics,
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes the response as time,output rows with a header.
func ExportCSV(path string, r *sim.Response) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"time", "output"}); err != nil {
		return err
	}
	for i := range r.Times {
		row := []string{
			strconv.FormatFloat(r.Times[i], 'g', -1, 64),
			strconv.FormatFloat(r.Values[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
