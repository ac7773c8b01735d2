package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gowing/internal/config"
	"github.com/alexiusacademia/gowing/internal/opt"
	"github.com/alexiusacademia/gowing/internal/version"
)

var (
	envFile string

	// Set up before any subcommand runs
	appEnv *config.Env
	log    = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "gowing",
	Short: "Finite wing design-of-experiments tool",
	Long: `gowing - Go Wing Designer

A CLI tool that turns 2-D airfoil section polars into 3-D finite wing
performance using strip theory with an Oswald induced-drag correction.

The workflow:
  - fetch    download airfoil coordinates from the UIUC database
  - polars   solve section polars with XFOIL over a Reynolds/alpha grid
  - wing     sweep planform geometries and trim angles over the polars
  - plot     draw section and wing polar plots
  - run      all of the above in one go

Single evaluations are available through 'point' and 'interp'.
Settings are read from GOWING_* environment variables (and .env).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return err
		}
		env, err := config.LoadEnv(cmd.Context(), nil)
		if err != nil {
			return err
		}
		l, err := env.NewLogger(os.Stderr)
		if err != nil {
			return err
		}
		appEnv, log = env, l
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gowing v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Wing Designer                                        ║")
		fmt.Printf("  ║   %-56s║\n", fmt.Sprintf("%s ©  %s", version.Author, version.Year))
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for preliminary wing sizing from airfoil polars.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • UIUC coordinate download with a local cache")
		fmt.Println("    • XFOIL section polars over a Reynolds/alpha grid")
		fmt.Println("    • Strip-theory wing polars with Oswald induced drag")
		fmt.Println("    • Parallel design-of-experiments sweeps (CSV, XLSX, PDF)")
		fmt.Println()
		fmt.Println("  Use 'gowing --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before GOWING_* variables")
}

// banner prints a section title the way every report starts.
func banner(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", strings.ToUpper(title))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

// heading prints a ruled sub-section heading.
func heading(title string) {
	fmt.Println(title + ":")
	fmt.Println("───────────────────────────────────────────────────────────────")
}

// fixed formats a present value with prec decimals, or "-".
func fixed(v opt.Float, prec int) string {
	f, ok := v.Get()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.*f", prec, f)
}
