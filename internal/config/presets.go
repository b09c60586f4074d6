package config

import "sort"

// Presets are the built-in classic L-systems. Each is a complete Config;
// unset pacing fields fall back to defaults when resolved.
var Presets = map[string]*Config{
	"plant": {
		Name: "plant", Desc: "branching weed (Lindenmayer fig 1.24f)",
		Axiom: "X", Rules: "X=F+[[X]-X]-F[-FX]+X\nF=FF",
		Iterations: 5, Angle: 25, Step: 5, Draw: "F",
	},
	"bush": {
		Name: "bush", Desc: "symmetric bush",
		Axiom: "F", Rules: "F=F[+F]F[-F]F",
		Iterations: 4, Angle: 25, Step: 5,
	},
	"stick": {
		Name: "stick", Desc: "sparse stick tree",
		Axiom: "X", Rules: "X=F[+X]F[-X]+X\nF=FF",
		Iterations: 6, Angle: 20, Step: 3, Draw: "F",
	},
	"koch": {
		Name: "koch", Desc: "quadratic Koch island",
		Axiom: "F", Rules: "F=F+F-F-F+F",
		Iterations: 3, Angle: 90, Step: 4,
	},
	"sierpinski": {
		Name: "sierpinski", Desc: "Sierpinski arrowhead",
		Axiom: "F-G-G", Rules: "F=F-G+F+G-F\nG=GG",
		Iterations: 5, Angle: 120, Step: 4, Draw: "FG",
	},
	"dragon": {
		Name: "dragon", Desc: "Heighway dragon curve",
		Axiom: "FX", Rules: "X=X+YF+\nY=-FX-Y",
		Iterations: 10, Angle: 90, Step: 4, Draw: "F",
	},
}

// GetPreset returns a copy of the named preset with pacing defaults
// filled in, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Batch == 0 {
		cfg.Batch = DefaultBatch
	}
	if cfg.FPS == 0 {
		cfg.FPS = DefaultFPS
	}
	return &cfg
}

// ListPresets returns the preset names in stable order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
