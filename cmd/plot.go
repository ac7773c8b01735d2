package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/diagram"
	"github.com/alexiusacademia/gowing/internal/report"
)

var (
	plotPolars string
	plotWing   string
	plotDir    string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw section and wing polar plots",
	Long: `Draw PNG plots from the polar and wing tables:
  - Cl_vs_Alpha.png           section lift curves at low, mid and high Re
  - Cd_vs_Cl_2D.png           section drag polars
  - Cm_vs_Alpha_2D.png        section moment curves
  - CL_vs_AlphaTrim_3D.png    wing lift vs trim angle per airfoil
  - CD_vs_CL_3D.png           wing drag polar cloud of the whole sweep

A table that is missing or empty is skipped with a warning.

Examples:
  gowing plot
  gowing plot --polars polars.csv --wing wing.csv --dir plots/`,
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().StringVarP(&plotPolars, "polars", "p", "polars.csv", "Section polar CSV")
	plotCmd.Flags().StringVarP(&plotWing, "wing", "w", "wing.csv", "Wing result CSV")
	plotCmd.Flags().StringVarP(&plotDir, "dir", "d", ".", "Output directory")
}

func runPlot(cmd *cobra.Command, args []string) error {
	written, err := exportPlots(plotPolars, plotWing, plotDir)
	if err != nil {
		return err
	}
	for _, p := range written {
		fmt.Printf("Plot exported to: %s\n", p)
	}
	return nil
}

// exportPlots draws whatever the two tables allow.
func exportPlots(polarsPath, wingPath, dir string) ([]string, error) {
	var written []string

	samples, err := report.LoadPolarCSV(polarsPath)
	switch {
	case err != nil:
		log.WithError(err).Warn("skipping section plots")
	case len(samples) == 0:
		log.WithField("file", polarsPath).Warn("skipping section plots: no rows")
	default:
		paths, err := diagram.ExportSectionPlots(samples, dir)
		if err != nil {
			return written, err
		}
		written = append(written, paths...)
	}

	points, err := report.LoadWingCSV(wingPath)
	switch {
	case err != nil:
		log.WithError(err).Warn("skipping wing plots")
	case len(points) == 0:
		log.WithField("file", wingPath).Warn("skipping wing plots: no rows")
	default:
		paths, err := diagram.ExportSweepPlots(points, dir)
		if err != nil {
			return written, err
		}
		written = append(written, paths...)
	}
	return written, nil
}
