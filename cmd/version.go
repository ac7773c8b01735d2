package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gowing",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Finite wing design-of-experiments tool")
		fmt.Println("Strip theory over XFOIL section polars")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
