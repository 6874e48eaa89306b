// Package cli implements the command-line interface for rubik.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubik2d/internal/config"
	"github.com/SeamusWaldron/rubik2d/internal/recorder"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath     string
	configPath string
	verbose    bool

	cfg    = config.Default()
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "rubik"})
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubik",
	Short: "3x3x3 cube simulator",
	Long: `rubik - a 3x3x3 cube simulator.

Scramble a virtual cube, turn its faces with standard notation, and let it
solve itself with an animated replay. Every session and its moves are stored
in a local SQLite database so a cube can be resumed later.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger.SetLevel(cfg.Log.ParsedLevel())
		if verbose {
			logger.SetLevel(log.DebugLevel)
			logger.SetReportTimestamp(true)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubik2d/rubik.db)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.rubik2d/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from flag, then config, then the
// state file. Empty means the default location.
func getDBPath(sf *recorder.StateFile) string {
	if dbPath != "" {
		return dbPath
	}
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	if sf != nil {
		return sf.DBPath()
	}
	return ""
}
