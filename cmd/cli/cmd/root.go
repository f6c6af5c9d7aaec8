// Package cmd provides the CLI commands for brewcalc.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"beer-recipe/adapters/beerxml"
	"beer-recipe/core/scanner"
	"beer-recipe/internal/config"
	"beer-recipe/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "brewcalc",
	Short: "Compute bitterness for BeerXML recipes",
	Long: `brewcalc reads BeerXML 1.0 recipe files and computes their bitterness.

Gravities are taken from a measurements file when one is given and
estimated from the grain bill otherwise.

Examples:
  brewcalc ibu ./recipes
  brewcalc ibu --hops --measurements brewday.hcl stout.xml
  brewcalc stats --format json ./recipes`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && err != errFailedRecipes {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(ibuCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	registerScanners()
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

func registerScanners() {
	if err := scanner.Register(beerxml.NewScanner()); err != nil {
		fmt.Fprintf(os.Stderr, "Error registering scanner: %v\n", err)
		os.Exit(1)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "brewcalc version %s\n", version)
	},
}

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Get().Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
