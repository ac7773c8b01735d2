package doe

// Preset is a named sweep for common study scenarios
type Preset struct {
	ID          string
	Description string
	Sweep       Sweep
}

// Presets are the predefined sweeps selectable from the command line
var Presets = map[string]Preset{
	"baseline": {
		ID:          "baseline",
		Description: "Small UAV study: b 0.5-2 m, c_root 0.15-0.30 m, taper 0.6-1",
		Sweep: Sweep{
			Spans:      []float64{0.5, 1.0, 2.0},
			RootChords: []float64{0.15, 0.20, 0.30},
			Tapers:     []float64{1.0, 0.8, 0.6},
			Dihedrals:  []float64{0.0, 5.0, 10.0},
			TwistRoots: []float64{0.0},
			TwistTips:  []float64{-2.0, 0.0, 2.0},
			TrimAlphas: []float64{0.0, 2.0, 4.0},
		},
	},
	"glider": {
		ID:          "glider",
		Description: "High aspect ratio sailplane wings with washout",
		Sweep: Sweep{
			Spans:      []float64{2.0, 3.0, 4.0},
			RootChords: []float64{0.18, 0.22},
			Tapers:     []float64{0.5, 0.7},
			Dihedrals:  []float64{3.0},
			TwistRoots: []float64{0.0},
			TwistTips:  []float64{-3.0, -1.5},
			TrimAlphas: []float64{0.0, 2.0, 4.0, 6.0, 8.0},
		},
	},
	"micro": {
		ID:          "micro",
		Description: "Micro air vehicle wings, low aspect ratio",
		Sweep: Sweep{
			Spans:      []float64{0.15, 0.25},
			RootChords: []float64{0.08, 0.12},
			Tapers:     []float64{1.0},
			Dihedrals:  []float64{0.0},
			TwistRoots: []float64{0.0},
			TwistTips:  []float64{0.0},
			TrimAlphas: []float64{0.0, 4.0, 8.0, 12.0},
		},
	},
}

// PresetNames returns the preset IDs in a stable order.
func PresetNames() []string {
	return []string{"baseline", "glider", "micro"}
}
