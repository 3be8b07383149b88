package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitsmeta/cli/internal/config"
	"github.com/fitsmeta/cli/internal/fits"
	"github.com/fitsmeta/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (populated during PersistentPreRunE)
	cliConfig *config.Config
)

// NewRootCmd creates the root command for the fitsmeta CLI.
//
// The root command is itself the report command: `fitsmeta <file.fits>`
// prints the normalized metadata report for the file as pretty JSON.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fitsmeta <file.fits>",
		Short: "FITS metadata inspection CLI",
		Long: `fitsmeta extracts per-HDU metadata from FITS files and reports it as JSON.

Given a FITS file it prints one descriptor per HDU, covering the HDU type,
its header keywords, and the shape and element type of any data array. If
the file cannot be read, a single {"error": ...} object is printed instead;
the report is always valid JSON and the exit code stays 0 either way.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runReport,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"Path to config file (env: FITSMETA_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false,
		"Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewInfoCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.LoadConfig(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands work with defaults
		loaded = config.DefaultConfig()
	}
	cliConfig = loaded

	// Timestamps precedence: flag (if explicitly set) > config > default (false)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cliConfig.Log.Timestamps != nil {
		logCfg.Timestamps = cliConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"output", cliConfig.Output,
		)
	}

	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	if cliConfig != nil {
		return cliConfig
	}
	return config.DefaultConfig()
}

// runReport implements the bare `fitsmeta <file.fits>` invocation.
func runReport(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// Usage goes to stdout; the process exits 1 without touching any file.
		if err := cmd.Help(); err != nil {
			return err
		}
		return &ExitError{
			Err:     errors.New("missing FITS file argument"),
			Code:    ExitGeneralError,
			Printed: true,
		}
	}

	rep := fits.Normalize(args[0])

	out, err := rep.RenderJSON()
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
