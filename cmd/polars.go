package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/config"
	"github.com/alexiusacademia/gowing/internal/polar"
	"github.com/alexiusacademia/gowing/internal/provider"
	"github.com/alexiusacademia/gowing/internal/report"
)

var (
	polarsStudy studyFlags
	polarsOut   string
	polarsFrom  string

	polarsAlphaStart float64
	polarsAlphaEnd   float64
	polarsAlphaStep  float64
)

var polarsCmd = &cobra.Command{
	Use:   "polars",
	Short: "Solve 2-D section polars over a Reynolds/alpha grid",
	Long: `Run XFOIL for every airfoil and Reynolds number over an alpha sweep
and write the converged points to a polar CSV (Airfoil,Re,Alpha,CL,CD,CM).

Points that fail to converge are left out. A sweep with no converged
point is retried once with relaxed settings; an airfoil/Re that still
fails is skipped with a warning. The CSV is always written, with a header
even when nothing converged.

With --from, rows of an existing polar CSV are reused and XFOIL only runs
for the combinations it lacks.

Examples:
  gowing polars --out polars.csv
  gowing polars --airfoils naca2412,s1223 --re 200000,500000 --alpha-step 1
  gowing polars --config sweep.ini --from old_polars.csv`,
	RunE: runPolars,
}

func init() {
	rootCmd.AddCommand(polarsCmd)
	polarsStudy.register(polarsCmd)

	polarsCmd.Flags().StringVarP(&polarsOut, "out", "o", "polars.csv", "Output polar CSV")
	polarsCmd.Flags().StringVar(&polarsFrom, "from", "", "Existing polar CSV to reuse before running XFOIL")
	polarsCmd.Flags().Float64Var(&polarsAlphaStart, "alpha-start", config.DefaultAlphaStart, "First angle of attack (deg)")
	polarsCmd.Flags().Float64Var(&polarsAlphaEnd, "alpha-end", config.DefaultAlphaEnd, "Last angle of attack (deg)")
	polarsCmd.Flags().Float64Var(&polarsAlphaStep, "alpha-step", config.DefaultAlphaStep, "Angle of attack step (deg)")
}

func runPolars(cmd *cobra.Command, args []string) error {
	st, err := polarsStudy.load(cmd)
	if err != nil {
		return err
	}
	applyAlphaFlags(cmd, &st.Section)

	samples, err := solvePolars(cmd.Context(), st.Section, polarsFrom)
	if err != nil && len(samples) == 0 {
		return err
	}
	if werr := report.SavePolarCSV(polarsOut, samples); werr != nil {
		return werr
	}
	printPolarSummary(st.Section, samples, polarsOut)
	return err
}

// applyAlphaFlags lets explicit alpha flags win over the sweep file.
func applyAlphaFlags(cmd *cobra.Command, s *config.SectionSettings) {
	if cmd.Flags().Changed("alpha-start") {
		s.AlphaStart = polarsAlphaStart
	}
	if cmd.Flags().Changed("alpha-end") {
		s.AlphaEnd = polarsAlphaEnd
	}
	if cmd.Flags().Changed("alpha-step") {
		s.AlphaStep = polarsAlphaStep
	}
}

// solvePolars runs the provider chain over the section grid. On
// cancellation the samples solved so far are returned with the error.
func solvePolars(ctx context.Context, s config.SectionSettings, from string) ([]polar.Sample, error) {
	var chain provider.Chain
	if from != "" {
		existing, err := report.LoadPolarCSV(from)
		if err != nil {
			return nil, err
		}
		chain = append(chain, provider.NewTable(existing))
	}
	chain = append(chain, xfoilProvider(coordinateSource()))

	alphas := provider.AlphaRange(s.AlphaStart, s.AlphaEnd, s.AlphaStep)
	start := time.Now()
	log.WithFields(logrus.Fields{
		"airfoils": len(s.Airfoils),
		"reynolds": len(s.Reynolds),
		"alphas":   len(alphas),
	}).Info("solving section polars")

	samples, err := provider.Collect(ctx, chain, s.Airfoils, s.Reynolds, alphas, log)
	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Infof("collected %d section points", len(samples))
	return samples, err
}

func printPolarSummary(s config.SectionSettings, samples []polar.Sample, out string) {
	table := polar.NewTable(samples)

	banner("Section polars")
	heading("GRID")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Airfoils:\t%d\n", len(s.Airfoils))
	fmt.Fprintf(w, "  Reynolds numbers:\t%v\n", s.Reynolds)
	fmt.Fprintf(w, "  Alpha:\t%.1f° to %.1f° step %.2f°\n", s.AlphaStart, s.AlphaEnd, s.AlphaStep)
	w.Flush()
	fmt.Println()

	heading("CONVERGED POINTS")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range s.Airfoils {
		if !table.Has(name) {
			fmt.Fprintf(w, "  %s:\t0 ⚠\n", name)
			continue
		}
		n := 0
		for _, re := range table.Reynolds(name) {
			n += len(table.AtReynolds(name, re))
		}
		fmt.Fprintf(w, "  %s:\t%d\n", name, n)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d rows written to %s\n", len(samples), out)
	fmt.Println()
}
