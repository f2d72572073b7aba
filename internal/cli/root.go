// Package cli implements the cobra-based CLI commands for typetour.
//
// Each subcommand (run, area, square, calc, inspect, describe, values,
// events) is defined in its own file within this package. This file defines
// the root command that serves as the parent for all subcommands, handles
// global flags, and owns the process-wide logger.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shinji-kodama/typetour/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose raises the logger to debug level.
	verbose bool
)

// logger is replaced in the root command's PersistentPreRun once the
// --verbose flag is known. It discards everything until then.
var logger = zap.NewNop().Sugar()

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// Running the root command with no subcommand runs the full tour, exactly
// like "typetour run".
func NewRootCommand() *cobra.Command {
	flags := defaultRunFlags()

	rootCmd := &cobra.Command{
		Use:   "typetour",
		Short: "A guided tour of records, variants and enumerations",
		Long: `typetour builds a handful of plain data shapes (records, coordinate
pairs, rectangles, closed variant sets and enumerations with numeric
discriminants) and prints a fixed description of each.

Run it with no arguments for the full tour, or use a subcommand to
exercise a single shape.`,

		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(cmd.ErrOrStderr(), verbose)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd.OutOrStdout(), flags)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	bindRunFlags(rootCmd, flags)

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewAreaCommand())
	rootCmd.AddCommand(NewSquareCommand())
	rootCmd.AddCommand(NewCalcCommand())
	rootCmd.AddCommand(NewInspectCommand())
	rootCmd.AddCommand(NewDescribeCommand())
	rootCmd.AddCommand(NewValuesCommand())
	rootCmd.AddCommand(NewEventsCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err == nil {
		return
	}

	if cliErr, ok := err.(*model.CLIError); ok {
		printError(os.Stderr, cliErr.Message, cliErr.Err)
		os.Exit(int(cliErr.Code))
	}

	printError(os.Stderr, err.Error(), nil)
	os.Exit(int(model.ExitGeneralError))
}

// initLogger builds the zap logger used by VerboseLog. It writes to the
// command's stderr so that stdout stays clean for tour and JSON output.
func initLogger(w io.Writer, debug bool) {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	logger = zap.New(core, zap.ErrorOutput(zapcore.AddSync(w))).Sugar()
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog writes a debug message through the zap logger. It is only
// visible when --verbose is set.
func VerboseLog(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
