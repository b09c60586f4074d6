package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/growlab/internal/plot"
)

// PlotData is the JSON shape for an exported run.
type PlotData struct {
	Axiom       string       `json:"axiom"`
	Rules       string       `json:"rules"`
	Iterations  int          `json:"iterations"`
	Angle       float64      `json:"angle"`
	Step        float64      `json:"step"`
	ExpandedLen int          `json:"expanded_len"`
	Segments    int          `json:"segment_count"`
	Depth       int          `json:"depth"`
	Lines       [][4]float64 `json:"lines"`
}

// WriteJSON encodes cfg and its result to w with indentation.
func WriteJSON(w io.Writer, cfg plot.Config, result *plot.Result) error {
	data := PlotData{
		Axiom:       cfg.Axiom,
		Rules:       cfg.RulesText,
		Iterations:  cfg.Iterations,
		Angle:       cfg.AngleDeg,
		Step:        cfg.Step,
		ExpandedLen: result.ExpandedLen,
		Segments:    result.SegmentCount,
		Depth:       result.Depth,
		Lines:       make([][4]float64, len(result.Segments)),
	}
	for i, s := range result.Segments {
		data.Lines[i] = [4]float64{s.X1, s.Y1, s.X2, s.Y2}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSONStdout writes the run to standard output.
func ExportJSONStdout(cfg plot.Config, result *plot.Result) error {
	return WriteJSON(os.Stdout, cfg, result)
}
