package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/airfoil"
	"github.com/alexiusacademia/gowing/internal/diagram"
)

var fetchPlotDir string

var fetchCmd = &cobra.Command{
	Use:   "fetch [airfoil...]",
	Short: "Download airfoil coordinate files from the UIUC database",
	Long: `Download Selig-format coordinate files into the local cache
(GOWING_CACHE_DIR, default ./airfoils). Files already in the cache are
never downloaded again. Without arguments the default candidate list of
the study is fetched.

Examples:
  gowing fetch
  gowing fetch naca2412 s1223 --plot outlines/`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&fetchPlotDir, "plot", "", "Also plot each outline into this directory")
}

func runFetch(cmd *cobra.Command, args []string) error {
	names := defaultStudyAirfoils(args)

	src := coordinateSource()
	ok, err := src.FetchAll(cmd.Context(), names)
	if err != nil {
		return err
	}

	banner("Airfoil coordinates")
	heading("CACHE")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Airfoil\tPoints\tt/c\tat x/c\tArea (c²)\tFile\n")
	for _, name := range ok {
		af, err := airfoil.LoadDat(src.Path(name))
		if err != nil {
			fmt.Fprintf(w, "  %s\t-\t-\t-\t-\t%v\n", name, err)
			continue
		}
		props := af.Properties()
		fmt.Fprintf(w, "  %s\t%d\t%.3f\t%.3f\t%.4f\t%s\n",
			name, len(af.Points), props.MaxThickness, props.MaxThicknessAt, props.Area, src.Path(name))

		if fetchPlotDir != "" {
			if err := os.MkdirAll(fetchPlotDir, 0755); err != nil {
				return err
			}
			if _, err := diagram.ExportAirfoilOutline(af, fetchPlotDir); err != nil {
				log.WithError(err).WithField("airfoil", name).Warn("outline plot failed")
			}
		}
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d of %d airfoils available\n", len(ok), len(names))
	fmt.Println()
	return nil
}
