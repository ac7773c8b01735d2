package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/aero"
	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/polar"
	"github.com/alexiusacademia/gowing/internal/report"
	"github.com/alexiusacademia/gowing/internal/wing"
)

var (
	pointPolars       string
	pointPlanform     wing.Planform
	pointAlpha        float64
	pointVelocity     float64
	pointRho          float64
	pointMu           float64
	pointStations     int
	pointQuadrature   string
	pointShowStations bool
)

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Evaluate one wing at one trim angle",
	Long: `Integrate a single trapezoidal wing with strip theory and print the
wing coefficients together with the spanwise station table and lift
distribution.

Examples:
  gowing point --polars polars.csv --airfoil naca2412 --span 1.5 --root-chord 0.2 --alpha 4
  gowing point -p polars.csv --airfoil s1223 --span 2 --root-chord 0.25 --taper 0.6 --twist-tip -2 --stations-table`,
	RunE: runPoint,
}

func init() {
	rootCmd.AddCommand(pointCmd)

	pointCmd.Flags().StringVarP(&pointPolars, "polars", "p", "polars.csv", "Section polar CSV")

	// Geometry flags
	pointCmd.Flags().StringVar(&pointPlanform.Airfoil, "airfoil", "", "Airfoil name [required]")
	pointCmd.Flags().Float64VarP(&pointPlanform.Span, "span", "b", 0, "Full span b (m) [required]")
	pointCmd.Flags().Float64VarP(&pointPlanform.RootChord, "root-chord", "c", 0, "Root chord (m) [required]")
	pointCmd.Flags().Float64Var(&pointPlanform.Taper, "taper", 1, "Taper ratio c_tip/c_root")
	pointCmd.Flags().Float64Var(&pointPlanform.DihedralDeg, "dihedral", 0, "Dihedral (deg), recorded only")
	pointCmd.Flags().Float64Var(&pointPlanform.TwistRootDeg, "twist-root", 0, "Root twist (deg)")
	pointCmd.Flags().Float64Var(&pointPlanform.TwistTipDeg, "twist-tip", 0, "Tip twist (deg)")

	// Flight condition flags
	pointCmd.Flags().Float64VarP(&pointAlpha, "alpha", "a", 0, "Trim angle of attack (deg)")
	pointCmd.Flags().Float64Var(&pointVelocity, "velocity", aero.DefaultVelocity, "Flight speed V (m/s)")
	pointCmd.Flags().Float64Var(&pointRho, "rho", aero.RhoSeaLevel, "Air density ρ (kg/m³)")
	pointCmd.Flags().Float64Var(&pointMu, "mu", aero.MuSeaLevel, "Dynamic viscosity μ (Pa·s)")

	// Discretisation flags
	pointCmd.Flags().IntVar(&pointStations, "stations", wing.DefaultStations, "Spanwise stations per half-wing")
	pointCmd.Flags().StringVar(&pointQuadrature, "quadrature", "uniform", "Strip weighting: uniform or trapezoidal")
	pointCmd.Flags().BoolVar(&pointShowStations, "stations-table", false, "Print the per-station table")

	pointCmd.MarkFlagRequired("airfoil")
	pointCmd.MarkFlagRequired("span")
	pointCmd.MarkFlagRequired("root-chord")
}

func runPoint(cmd *cobra.Command, args []string) error {
	p := pointPlanform
	if err := p.Validate(); err != nil {
		return err
	}
	cond := aero.Condition{Rho: pointRho, Mu: pointMu, Velocity: pointVelocity}
	if err := cond.Validate(); err != nil {
		return err
	}
	q, err := wing.ParseQuadrature(pointQuadrature)
	if err != nil {
		return err
	}

	samples, err := report.LoadPolarCSV(pointPolars)
	if err != nil {
		return err
	}
	table := polar.NewTable(samples)
	if !table.Has(p.Airfoil) {
		log.WithField("airfoil", p.Airfoil).Warn("airfoil not in polar table; coefficients will be empty")
	}

	ig := wing.NewIntegrator(polar.NewInterpolator(table), cond)
	ig.Stations = pointStations
	ig.Quadrature = q
	res := ig.Integrate(p, pointAlpha)

	banner("Finite wing - strip theory")

	heading("GEOMETRY")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Airfoil:\t%s\n", p.Airfoil)
	fmt.Fprintf(w, "  Span (b):\t%.3f m\n", p.Span)
	fmt.Fprintf(w, "  Root / tip chord:\t%.3f / %.3f m (λ = %.2f)\n", p.RootChord, res.TipChord, p.Taper)
	fmt.Fprintf(w, "  Area (S):\t%.4f m²\n", res.Area)
	fmt.Fprintf(w, "  Aspect ratio (AR):\t%s\n", fixed(res.AspectRatio, 3))
	fmt.Fprintf(w, "  Mean aero chord:\t%s m\n", fixed(p.MeanAeroChord(), 4))
	fmt.Fprintf(w, "  Twist root / tip:\t%.1f° / %.1f°\n", p.TwistRootDeg, p.TwistTipDeg)
	w.Flush()
	fmt.Println()
	fmt.Print(diagram.DrawPlanform(p, 40))
	fmt.Println()

	heading("FLIGHT CONDITION")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  α_trim:\t%.2f°\n", pointAlpha)
	fmt.Fprintf(w, "  V:\t%.2f m/s\n", cond.Velocity)
	fmt.Fprintf(w, "  q:\t%.2f Pa\n", cond.DynamicPressure())
	fmt.Fprintf(w, "  Re root / tip:\t%.0f / %.0f\n", cond.Reynolds(p.RootChord), cond.Reynolds(res.TipChord))
	w.Flush()
	fmt.Println()

	heading("WING COEFFICIENTS")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  CL:\t%s\n", fixed(res.CL, 4))
	fmt.Fprintf(w, "  CDp (section):\t%s\n", fixed(res.CDp, 5))
	fmt.Fprintf(w, "  CDi (induced, e = %s):\t%s\n", fixed(res.Efficiency, 3), fixed(res.CDi, 5))
	fmt.Fprintf(w, "  CD:\t%s\n", fixed(res.CD, 5))
	fmt.Fprintf(w, "  Cm:\t%s\n", fixed(res.Cm, 4))
	fmt.Fprintf(w, "  Lift:\t%s N\n", fixed(res.Lift, 2))
	w.Flush()
	fmt.Println()
	if res.MissingStations > 0 {
		fmt.Printf("  ⚠ %d of %d stations had no section data\n\n", res.MissingStations, len(res.Loads))
	}

	if chart := diagram.DrawSpanLoad(res.Loads, 60, 10); chart != "" {
		heading("SPANWISE LIFT")
		fmt.Println(chart)
		fmt.Println()
	}

	if pointShowStations {
		heading("STATIONS")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "  y (m)\tc (m)\tα (deg)\tRe\tcl\tcd\tcm\tL' (N/m)\t\n")
		for _, l := range res.Loads {
			fmt.Fprintf(w, "  %.4f\t%.4f\t%.2f\t%.0f\t%s\t%s\t%s\t%s\t\n",
				l.Y, l.Chord, l.AlphaDeg, l.Re,
				fixed(l.CL, 4), fixed(l.CD, 5), fixed(l.CM, 4), fixed(l.LiftPerSpan, 2))
		}
		w.Flush()
		fmt.Println()
	}
	return nil
}
