package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/airfoil"
	"github.com/alexiusacademia/gowing/internal/config"
	"github.com/alexiusacademia/gowing/internal/doe"
	"github.com/alexiusacademia/gowing/internal/provider"
	"github.com/alexiusacademia/gowing/internal/wing"
)

// studyFlags are shared by the commands that run a sweep
type studyFlags struct {
	configFile string
	preset     string
	airfoils   []string
	reynolds   []float64
	workers    int
	stations   int
	quadrature string
	velocity   float64
}

func (f *studyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configFile, "config", "", "Sweep definition file (ini)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Named sweep preset ("+strings.Join(doe.PresetNames(), ", ")+")")
	cmd.Flags().StringSliceVar(&f.airfoils, "airfoils", nil, "Airfoil names (overrides the file)")
	cmd.Flags().Float64SliceVar(&f.reynolds, "re", nil, "Section Reynolds numbers (overrides the file)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Sweep workers (0 = GOWING_WORKERS or one per CPU)")
	cmd.Flags().IntVar(&f.stations, "stations", 0, "Spanwise stations per half-wing (0 = file or default)")
	cmd.Flags().StringVar(&f.quadrature, "quadrature", "", "Strip weighting: uniform (default) or trapezoidal")
	cmd.Flags().Float64Var(&f.velocity, "velocity", 0, "Flight speed V (m/s) (0 = file or default)")
}

// load builds the study: defaults, then file, then preset, then flags.
func (f *studyFlags) load(cmd *cobra.Command) (*config.Study, error) {
	st := config.DefaultStudy()
	if f.configFile != "" {
		var err error
		if st, err = config.LoadStudy(f.configFile); err != nil {
			return nil, err
		}
	}
	if f.preset != "" {
		p, ok := doe.Presets[f.preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (%s)", f.preset, strings.Join(doe.PresetNames(), ", "))
		}
		st.DOE.Sweep = p.Sweep
	}
	if cmd.Flags().Changed("airfoils") {
		st.Section.Airfoils = f.airfoils
		st.DOE.Airfoils = append([]string(nil), f.airfoils...)
		st.ExplicitAirfoils = true
	}
	if cmd.Flags().Changed("re") {
		st.Section.Reynolds = f.reynolds
	}

	switch {
	case f.workers > 0:
		st.DOE.Workers = f.workers
	case st.DOE.Workers == 0 && appEnv != nil:
		st.DOE.Workers = appEnv.Workers
	}
	if f.stations > 0 {
		st.DOE.Stations = f.stations
	}
	if f.quadrature != "" {
		q, err := wing.ParseQuadrature(f.quadrature)
		if err != nil {
			return nil, err
		}
		st.DOE.Quadrature = q
	}
	if f.velocity > 0 {
		st.DOE.Condition.Velocity = f.velocity
	}
	return st, nil
}

// coordinateSource is the UIUC fetcher over the configured cache.
func coordinateSource() *airfoil.UIUC {
	return airfoil.NewUIUC(appEnv.UIUCURL, appEnv.CacheDir, log)
}

// xfoilProvider wires XFOIL to the coordinate cache.
func xfoilProvider(src airfoil.Source) *provider.XFoil {
	x := provider.NewXFoil(appEnv.XFoilPath, src, log)
	x.Timeout = appEnv.XFoilTimeout
	return x
}
