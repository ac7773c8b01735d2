package config

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/alexiusacademia/gowing/internal/aero"
	"github.com/alexiusacademia/gowing/internal/doe"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// DefaultAirfoils is the baseline candidate list.
var DefaultAirfoils = []string{
	"naca2412", "s1223", "e423", "sd7037", "s3021", "ag35", "naca23012", "naca4415",
}

// DefaultReynolds are the section solve Reynolds numbers.
var DefaultReynolds = []float64{2e5, 5e5, 1e6}

// Section alpha sweep defaults (deg)
const (
	DefaultAlphaStart = -5.0
	DefaultAlphaEnd   = 15.0
	DefaultAlphaStep  = 0.5
)

// SectionSettings describe the 2-D polar generation step
type SectionSettings struct {
	Airfoils   []string
	Reynolds   []float64
	AlphaStart float64 // deg
	AlphaEnd   float64 // deg
	AlphaStep  float64 // deg
}

// Study is a complete sweep definition
type Study struct {
	Section SectionSettings
	DOE     doe.Config

	// ExplicitAirfoils is set when the airfoil list was given rather than
	// defaulted, so a wing sweep knows whether to follow the polar table.
	ExplicitAirfoils bool
}

// DefaultStudy returns the baseline study settings.
func DefaultStudy() *Study {
	cfg := doe.DefaultConfig()
	cfg.Airfoils = append([]string(nil), DefaultAirfoils...)
	return &Study{
		Section: SectionSettings{
			Airfoils:   append([]string(nil), DefaultAirfoils...),
			Reynolds:   append([]float64(nil), DefaultReynolds...),
			AlphaStart: DefaultAlphaStart,
			AlphaEnd:   DefaultAlphaEnd,
			AlphaStep:  DefaultAlphaStep,
		},
		DOE: cfg,
	}
}

// LoadStudy reads an ini sweep file. Keys left out keep their defaults.
func LoadStudy(path string) (*Study, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read sweep file: %w", err)
	}
	st, err := parseStudy(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

// ParseStudy reads a sweep definition from ini text.
func ParseStudy(data []byte) (*Study, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("read sweep: %w", err)
	}
	return parseStudy(f)
}

func parseStudy(f *ini.File) (*Study, error) {
	st := DefaultStudy()

	flight := f.Section("flight")
	st.DOE.Condition = aero.Condition{
		Rho:      flight.Key("rho").MustFloat64(aero.RhoSeaLevel),
		Mu:       flight.Key("mu").MustFloat64(aero.MuSeaLevel),
		Velocity: flight.Key("velocity").MustFloat64(aero.DefaultVelocity),
	}

	sweep := f.Section("sweep")
	axes := []struct {
		key string
		dst *[]float64
	}{
		{"spans", &st.DOE.Sweep.Spans},
		{"root_chords", &st.DOE.Sweep.RootChords},
		{"tapers", &st.DOE.Sweep.Tapers},
		{"dihedrals", &st.DOE.Sweep.Dihedrals},
		{"twist_roots", &st.DOE.Sweep.TwistRoots},
		{"twist_tips", &st.DOE.Sweep.TwistTips},
		{"trim_alphas", &st.DOE.Sweep.TrimAlphas},
	}
	for _, ax := range axes {
		if err := floatList(sweep, ax.key, ax.dst); err != nil {
			return nil, err
		}
	}

	analysis := f.Section("analysis")
	st.DOE.Stations = analysis.Key("stations").MustInt(wing.DefaultStations)
	st.DOE.Workers = analysis.Key("workers").MustInt(0)
	if analysis.HasKey("quadrature") {
		q, err := wing.ParseQuadrature(analysis.Key("quadrature").String())
		if err != nil {
			return nil, err
		}
		st.DOE.Quadrature = q
	}

	section := f.Section("section")
	if section.HasKey("airfoils") {
		names := section.Key("airfoils").Strings(",")
		st.Section.Airfoils = names
		st.DOE.Airfoils = append([]string(nil), names...)
		st.ExplicitAirfoils = true
	}
	if err := floatList(section, "reynolds", &st.Section.Reynolds); err != nil {
		return nil, err
	}
	st.Section.AlphaStart = section.Key("alpha_start").MustFloat64(DefaultAlphaStart)
	st.Section.AlphaEnd = section.Key("alpha_end").MustFloat64(DefaultAlphaEnd)
	st.Section.AlphaStep = section.Key("alpha_step").MustFloat64(DefaultAlphaStep)
	if st.Section.AlphaStep <= 0 {
		return nil, fmt.Errorf("[section] alpha_step must be positive, got %g", st.Section.AlphaStep)
	}

	return st, nil
}

// floatList overwrites dst with the comma list under key when present.
func floatList(sec *ini.Section, key string, dst *[]float64) error {
	if !sec.HasKey(key) {
		return nil
	}
	raw := strings.TrimSpace(sec.Key(key).String())
	if raw == "" {
		*dst = nil
		return nil
	}
	vals, err := sec.Key(key).StrictFloat64s(",")
	if err != nil {
		return fmt.Errorf("[%s] %s: %w", sec.Name(), key, err)
	}
	*dst = vals
	return nil
}
