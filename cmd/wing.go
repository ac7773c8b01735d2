package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/config"
	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/doe"
	"github.com/alexiusacademia/gowing/internal/polar"
	"github.com/alexiusacademia/gowing/internal/report"
	"github.com/alexiusacademia/gowing/internal/wing"
)

var (
	wingStudy       studyFlags
	wingPolars      string
	wingOut         string
	wingPDF         string
	wingMetricsAddr string
)

var wingCmd = &cobra.Command{
	Use:   "wing",
	Short: "Sweep finite wing geometries over section polars",
	Long: `Evaluate every airfoil × span × root chord × taper × dihedral ×
root twist × tip twist × trim angle combination with strip theory and
write one row per combination.

Span is the full tip-to-tip span. Section data comes from a polar CSV
produced by 'gowing polars'. Unless --airfoils or the sweep file names
them, every airfoil in the polar CSV is swept. Combinations whose stations lack section
data are still written, with the missing coefficients left empty.

The output format follows the file extension (.csv or .xlsx).

Examples:
  gowing wing --polars polars.csv --out wing.csv
  gowing wing --polars polars.csv --preset glider --out glider.xlsx --pdf glider.pdf
  gowing wing --polars polars.csv --config sweep.ini --metrics-addr :9090`,
	RunE: runWing,
}

func init() {
	rootCmd.AddCommand(wingCmd)
	wingStudy.register(wingCmd)

	wingCmd.Flags().StringVarP(&wingPolars, "polars", "p", "polars.csv", "Section polar CSV")
	wingCmd.Flags().StringVarP(&wingOut, "out", "o", "wing.csv", "Output table (.csv or .xlsx)")
	wingCmd.Flags().StringVar(&wingPDF, "pdf", "", "Also write a one-page PDF summary")
	wingCmd.Flags().StringVar(&wingMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while sweeping")
}

func runWing(cmd *cobra.Command, args []string) error {
	st, err := wingStudy.load(cmd)
	if err != nil {
		return err
	}
	samples, err := report.LoadPolarCSV(wingPolars)
	if err != nil {
		return err
	}
	useTableAirfoils(st, samples)

	points, err := sweepWings(cmd.Context(), st.DOE, samples, wingMetricsAddr)
	if err != nil {
		return err
	}
	if err := writeWingTable(wingOut, points, samples); err != nil {
		return err
	}
	if wingPDF != "" {
		if err := writeWingPDF(wingPDF, points); err != nil {
			return err
		}
	}

	printWingSummary(st.DOE, points)
	fmt.Printf("  %d rows written to %s\n", len(points), wingOut)
	fmt.Println()
	return nil
}

// sweepWings runs the DOE driver, optionally exposing its counters over HTTP.
func sweepWings(ctx context.Context, cfg doe.Config, samples []polar.Sample, metricsAddr string) ([]wing.Point, error) {
	reg := prometheus.NewRegistry()
	metrics, err := doe.NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	if metricsAddr != "" {
		srv := &http.Server{
			Addr:              metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Warn("metrics server stopped")
			}
		}()
		defer srv.Close()
		log.WithField("addr", metricsAddr).Info("serving sweep metrics")
	}

	driver, err := doe.NewDriver(cfg, log, metrics)
	if err != nil {
		return nil, err
	}
	table := polar.NewTable(samples)
	if n := table.Dropped(); n > 0 {
		log.WithField("rows", n).Warn("dropped polar rows without a usable Re or alpha")
	}
	return driver.Run(ctx, table)
}

func writeWingTable(path string, points []wing.Point, samples []polar.Sample) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return report.SaveWorkbook(path, points, samples)
	case ".csv", "":
		return report.SaveWingCSV(path, points)
	default:
		return fmt.Errorf("unsupported output format %q (csv, xlsx)", filepath.Ext(path))
	}
}

func writeWingPDF(path string, points []wing.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = report.WriteSummaryPDF(f, report.Summary{
		Title:  "Wing design sweep",
		Points: points,
		Counts: doe.Summary(points),
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func printWingSummary(cfg doe.Config, points []wing.Point) {
	banner("Wing design sweep")

	heading("INPUT DATA")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Airfoils:\t%s\n", strings.Join(cfg.Airfoils, ", "))
	fmt.Fprintf(w, "  Combinations per airfoil:\t%d\n", cfg.Sweep.Size())
	fmt.Fprintf(w, "  Flight condition:\tV = %.1f m/s, ρ = %.3f kg/m³, μ = %.3g Pa·s\n",
		cfg.Condition.Velocity, cfg.Condition.Rho, cfg.Condition.Mu)
	fmt.Fprintf(w, "  Stations per half-wing:\t%d (%s)\n", cfg.Stations, cfg.Quadrature)
	w.Flush()
	fmt.Println()

	heading("RESULTS")
	counts := doe.Summary(points)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Complete:\t%d\n", counts[doe.StatusValid])
	fmt.Fprintf(w, "  Partial:\t%d\n", counts[doe.StatusPartial])
	fmt.Fprintf(w, "  No section data:\t%d\n", counts[doe.StatusInvalid])
	w.Flush()
	fmt.Println()

	best, ratio := doe.BestGlide(points)
	if ld, ok := ratio.Get(); ok {
		fmt.Print(diagram.DrawSummaryBox("BEST GLIDE RATIO", []string{
			fmt.Sprintf("%s  CL/CD = %.1f", best.Airfoil, ld),
			fmt.Sprintf("b = %.2f m, c_root = %.3f m, λ = %.2f", best.Span, best.RootChord, best.Taper),
			fmt.Sprintf("twist %.1f° / %.1f°, α_trim = %.1f°", best.TwistRootDeg, best.TwistTipDeg, best.AlphaTrimDeg),
			fmt.Sprintf("CL = %s, CD = %s, L = %.1f N", best.CL, best.CD, best.Lift.Or(0)),
		}))
		fmt.Println()
	}
}

// useTableAirfoils sweeps the airfoils present in the polar table unless
// the list was given with --airfoils or in the sweep file.
func useTableAirfoils(st *config.Study, samples []polar.Sample) {
	if st.ExplicitAirfoils {
		return
	}
	st.DOE.Airfoils = polar.NewTable(samples).Airfoils()
	log.WithField("airfoils", strings.Join(st.DOE.Airfoils, ",")).Debug("sweeping airfoils from the polar table")
}

// defaultStudyAirfoils is used by commands that accept bare airfoil args.
func defaultStudyAirfoils(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return config.DefaultAirfoils
}
