package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/polar"
	"github.com/alexiusacademia/gowing/internal/report"
)

var (
	interpPolars  string
	interpAirfoil string
	interpRe      []float64
	interpAlpha   []float64
)

var interpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Look up interpolated section coefficients",
	Long: `Query the section polar table at arbitrary Reynolds numbers and angles
of attack. Reynolds numbers are blended linearly between the two recorded
values that bracket the query; outside the recorded range the nearest one
is used. Angles of attack outside the recorded range are clamped.

Examples:
  gowing interp --polars polars.csv --airfoil naca2412 --re 350000 --alpha 4.25
  gowing interp -p polars.csv --airfoil s1223 --re 2e5,5e5 --alpha 0,2,4,6`,
	RunE: runInterp,
}

func init() {
	rootCmd.AddCommand(interpCmd)

	interpCmd.Flags().StringVarP(&interpPolars, "polars", "p", "polars.csv", "Section polar CSV")
	interpCmd.Flags().StringVar(&interpAirfoil, "airfoil", "", "Airfoil name [required]")
	interpCmd.Flags().Float64SliceVar(&interpRe, "re", nil, "Reynolds numbers [required]")
	interpCmd.Flags().Float64SliceVarP(&interpAlpha, "alpha", "a", []float64{0}, "Angles of attack (deg)")

	interpCmd.MarkFlagRequired("airfoil")
	interpCmd.MarkFlagRequired("re")
}

func runInterp(cmd *cobra.Command, args []string) error {
	samples, err := report.LoadPolarCSV(interpPolars)
	if err != nil {
		return err
	}
	table := polar.NewTable(samples)
	if !table.Has(interpAirfoil) {
		return fmt.Errorf("airfoil %q is not in %s (have %v)", interpAirfoil, interpPolars, table.Airfoils())
	}
	ip := polar.NewInterpolator(table)

	banner("Section coefficients - " + interpAirfoil)
	heading("RECORDED REYNOLDS NUMBERS")
	for _, re := range table.Reynolds(interpAirfoil) {
		fmt.Printf("  %.0f (%d points)\n", re, len(table.AtReynolds(interpAirfoil, re)))
	}
	fmt.Println()

	heading("INTERPOLATED")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  Re\tα (deg)\tCL\tCD\tCM\t\n")
	for _, re := range interpRe {
		for _, a := range interpAlpha {
			c := ip.Lookup(interpAirfoil, re, a)
			fmt.Fprintf(w, "  %.0f\t%.2f\t%s\t%s\t%s\t\n", re, a, fixed(c.CL, 4), fixed(c.CD, 5), fixed(c.CM, 4))
		}
	}
	w.Flush()
	fmt.Println()
	return nil
}
