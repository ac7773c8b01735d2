package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/config"
	"github.com/alexiusacademia/gowing/internal/report"
)

var (
	runStudy       studyFlags
	runOutDir      string
	runReuse       bool
	runWorkbook    bool
	runPDF         bool
	runMetricsAddr string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, solve, sweep and plot in one go",
	Long: `Run the whole study into one output directory:

  1. download coordinate files for the airfoils (cached)
  2. solve section polars with XFOIL          -> polars.csv
  3. sweep wing geometries and trim angles    -> wing.csv
  4. draw the section and wing plots          -> *.png

With --reuse an existing polars.csv in the output directory is used and
XFOIL only runs for combinations it lacks.

Examples:
  gowing run --out-dir results/
  gowing run --config sweep.ini --out-dir results/ --xlsx --pdf`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runStudy.register(runCmd)

	runCmd.Flags().StringVarP(&runOutDir, "out-dir", "o", "results", "Output directory")
	runCmd.Flags().BoolVar(&runReuse, "reuse", false, "Reuse polars.csv from the output directory")
	runCmd.Flags().BoolVar(&runWorkbook, "xlsx", false, "Also write wing.xlsx")
	runCmd.Flags().BoolVar(&runPDF, "pdf", false, "Also write summary.pdf")
	runCmd.Flags().StringVar(&runMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while sweeping")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st, err := runStudy.load(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(runOutDir, 0755); err != nil {
		return err
	}
	polarsPath := filepath.Join(runOutDir, "polars.csv")
	wingPath := filepath.Join(runOutDir, "wing.csv")

	// 1. coordinates
	available, err := coordinateSource().FetchAll(ctx, st.Section.Airfoils)
	if err != nil {
		return err
	}
	log.Infof("%d of %d airfoils available", len(available), len(st.Section.Airfoils))

	// 2. section polars
	from := ""
	if runReuse {
		if _, err := os.Stat(polarsPath); err == nil {
			from = polarsPath
		}
	}
	section := sectionToSolve(st.Section, available, from)
	samples, err := solvePolars(ctx, section, from)
	if err != nil {
		if len(samples) > 0 {
			// keep what was solved before the interruption
			_ = report.SavePolarCSV(polarsPath, samples)
		}
		return err
	}
	if err := report.SavePolarCSV(polarsPath, samples); err != nil {
		return err
	}
	printPolarSummary(section, samples, polarsPath)

	// 3. wing sweep
	points, err := sweepWings(ctx, st.DOE, samples, runMetricsAddr)
	if err != nil {
		return err
	}
	if err := report.SaveWingCSV(wingPath, points); err != nil {
		return err
	}
	if runWorkbook {
		if err := report.SaveWorkbook(filepath.Join(runOutDir, "wing.xlsx"), points, samples); err != nil {
			return err
		}
	}
	if runPDF {
		if err := writeWingPDF(filepath.Join(runOutDir, "summary.pdf"), points); err != nil {
			return err
		}
	}
	printWingSummary(st.DOE, points)

	// 4. plots
	written, err := exportPlots(polarsPath, wingPath, runOutDir)
	if err != nil {
		return err
	}

	heading("OUTPUT")
	fmt.Printf("  %s\n  %s\n", polarsPath, wingPath)
	for _, p := range written {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println()
	return nil
}

// sectionToSolve narrows the section grid to the airfoils whose coordinates
// were fetched. With a reused table the full list stays, since the table may
// already hold polars for airfoils that cannot be downloaded.
func sectionToSolve(s config.SectionSettings, available []string, from string) config.SectionSettings {
	if from == "" {
		s.Airfoils = append([]string(nil), available...)
	}
	return s
}
