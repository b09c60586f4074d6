package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/growlab/internal/anim"
	"github.com/san-kum/growlab/internal/config"
	"github.com/san-kum/growlab/internal/export"
	"github.com/san-kum/growlab/internal/plot"
	"github.com/san-kum/growlab/internal/viz"
)

var (
	axiom      string
	rulesText  string
	rulesFile  string
	iterations int
	angle      float64
	step       float64
	draw       string
	maxLen     int
	batch      int
	delayMs    int
	fps        int
	configFile string
	themeName  string
	canvasW    int
	canvasH    int
	outPath    string
	svgSize    int
	svgDots    bool
)

// main registers commands and flags; with no subcommand it opens the
// interactive preset menu. It exits with status 1 on command error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "growlab",
		Short: "L-system turtle graphics lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive()
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render [preset]",
		Short: "expand, trace and draw in one pass",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}

	growCmd := &cobra.Command{
		Use:   "grow [preset]",
		Short: "draw incrementally as a growth animation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGrow,
	}

	expandCmd := &cobra.Command{
		Use:   "expand [preset]",
		Short: "print the expanded string and its stats",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExpand,
	}

	growthCmd := &cobra.Command{
		Use:   "growth [preset]",
		Short: "chart expanded length per generation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGrowth,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [preset]",
		Short: "write the traced segments as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "plot.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgSize, "size", 800, "SVG viewport size in pixels")
	exportSVGCmd.Flags().BoolVar(&svgDots, "dots", false, "render the braille canvas as dots instead of a stroked path")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [preset]",
		Short: "write segments and stats as JSON to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in L-systems",
		RunE:  listPresets,
	}

	for _, cmd := range []*cobra.Command{renderCmd, growCmd, expandCmd, growthCmd, exportSVGCmd, exportJSONCmd} {
		cmd.Flags().StringVar(&axiom, "axiom", config.DefaultAxiom, "start string")
		cmd.Flags().StringVar(&rulesText, "rules", "", "rule lines, ';' separated (F=F[+F]F;X=FX)")
		cmd.Flags().StringVar(&rulesFile, "rules-file", "", "file with one LHS=RHS rule per line")
		cmd.Flags().IntVarP(&iterations, "iterations", "n", config.DefaultIterations, "rewrite generations")
		cmd.Flags().Float64Var(&angle, "angle", config.DefaultAngle, "turn angle in degrees")
		cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "segment length")
		cmd.Flags().StringVar(&draw, "draw", "", "drawing symbols (default: uppercase letters)")
		cmd.Flags().IntVar(&maxLen, "max-len", 0, "expansion length cap (0 default, <0 off)")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	}

	renderCmd.Flags().IntVar(&canvasW, "width", 80, "canvas width in cells")
	renderCmd.Flags().IntVar(&canvasH, "height", 24, "canvas height in cells")

	growCmd.Flags().IntVar(&batch, "batch", config.DefaultBatch, "segments per frame tick")
	growCmd.Flags().IntVar(&delayMs, "delay", 0, "extra delay between ticks (ms)")
	growCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	growCmd.Flags().StringVar(&themeName, "theme", "", "color theme")

	rootCmd.AddCommand(renderCmd, growCmd, expandCmd, growthCmd, exportSVGCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and flags, in ascending
// precedence, into one run configuration.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	title := "custom"

	if len(args) == 1 {
		preset := config.GetPreset(args[0])
		if preset == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		cfg = preset
		title = args[0]
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if cfg.Name != "" {
			title = cfg.Name
		}
	}

	flags := cmd.Flags()
	if flags.Changed("axiom") {
		cfg.Axiom = axiom
	}
	if flags.Changed("rules") {
		cfg.Rules = strings.ReplaceAll(rulesText, ";", "\n")
	}
	if flags.Changed("rules-file") {
		data, err := os.ReadFile(rulesFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read rules: %w", err)
		}
		cfg.Rules = string(data)
	}
	if flags.Changed("iterations") {
		cfg.Iterations = iterations
	}
	if flags.Changed("angle") {
		cfg.Angle = angle
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("draw") {
		cfg.Draw = draw
	}
	if flags.Changed("max-len") {
		cfg.MaxLen = maxLen
	}
	if flags.Changed("batch") {
		cfg.Batch = batch
	}
	if flags.Changed("delay") {
		cfg.DelayMs = delayMs
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}

	return cfg, title, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, title, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := plot.Run(cfg.PlotConfig())
	if err != nil {
		return err
	}

	canvas := viz.NewCanvas(canvasW, canvasH)
	surface := viz.NewSurface(canvas, res.Segments)
	sched := anim.NewScheduler(surface)
	sched.DrawAll(res.Segments)

	fmt.Print(canvas.String())
	fmt.Printf("\n%s: %d symbols, %d segments, depth %d\n",
		title, res.ExpandedLen, res.SegmentCount, res.Depth)
	return nil
}

func runGrow(cmd *cobra.Command, args []string) error {
	cfg, title, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	m := viz.NewGrow(cfg, title, 0, 0)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func runExpand(cmd *cobra.Command, args []string) error {
	cfg, title, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := plot.Run(cfg.PlotConfig())
	if err != nil {
		return err
	}

	fmt.Printf("%s after %d iterations:\n", title, cfg.Iterations)
	fmt.Printf("  symbols:  %d\n", res.ExpandedLen)
	fmt.Printf("  segments: %d\n", res.SegmentCount)
	fmt.Printf("  depth:    %d\n", res.Depth)

	const previewLen = 200
	fmt.Printf("\n%s\n", truncatePreview(res.Expanded, previewLen))
	return nil
}

// truncatePreview shortens s to at most n symbols, cutting on a rune
// boundary so multi-byte symbols survive intact.
func truncatePreview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// dotsSVG renders the run the way the terminal would, braille dot for
// braille dot, and returns it as SVG.
func dotsSVG(res *plot.Result, size int) string {
	const dotScale = 4
	canvas := viz.NewCanvas(size/(dotScale*2), size/(dotScale*4))
	anim.NewScheduler(viz.NewSurface(canvas, res.Segments)).DrawAll(res.Segments)
	return export.CanvasToSVG(canvas, dotScale)
}

func runGrowth(cmd *cobra.Command, args []string) error {
	cfg, title, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	lengths, err := plot.Growth(cfg.PlotConfig())
	if err != nil {
		return err
	}

	data := make([]float64, len(lengths))
	for i, l := range lengths {
		data[i] = float64(l)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("%s: expanded length per generation", title)),
	)
	fmt.Println(graph)
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GEN\tLENGTH")
	for i, l := range lengths {
		fmt.Fprintf(w, "%d\t%d\n", i, l)
	}
	return w.Flush()
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	cfg, title, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := plot.Run(cfg.PlotConfig())
	if err != nil {
		return err
	}

	if svgDots {
		if err := os.WriteFile(outPath, []byte(dotsSVG(res, svgSize)), 0644); err != nil {
			return err
		}
		fmt.Printf("%s: wrote %d segments to %s\n", title, res.SegmentCount, outPath)
		return nil
	}

	theme := viz.GetTheme(cfg.Theme)
	if err := export.WriteSVG(outPath, res.Segments, svgSize, svgSize, string(theme.Primary)); err != nil {
		return err
	}

	fmt.Printf("%s: wrote %d segments to %s\n", title, res.SegmentCount, outPath)
	return nil
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	res, err := plot.Run(cfg.PlotConfig())
	if err != nil {
		return err
	}
	return export.ExportJSONStdout(cfg.PlotConfig(), res)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tANGLE\tITER\tAXIOM\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.0f°\t%d\t%s\t%s\n", name, p.Angle, p.Iterations, p.Axiom, p.Desc)
	}
	return w.Flush()
}
