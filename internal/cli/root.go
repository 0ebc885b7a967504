// Package cli implements the cobra-based CLI commands for minmax.
//
// The root command runs the normalization pipeline on the fixed input and
// output files; the check subcommand is defined in its own file. This file
// defines the root command, handles global flags and settings, and turns
// returned errors into messages and exit codes.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/minmax/internal/config"
	"github.com/mmr-tortoise/minmax/internal/logger"
	"github.com/mmr-tortoise/minmax/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether errors and reports are formatted as JSON.
	// The settings file may turn it on; the flag always wins.
	jsonOutput bool

	// verbose forces debug-level logging on stderr.
	verbose bool

	// logLevel overrides the log_level setting when set.
	logLevel string
)

// log is the logger installed by setup. Commands log through it (directly
// or via VerboseLog) instead of writing to stderr themselves.
var log = logger.Nop()

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
// Running it without a subcommand normalizes foo.txt into bar.txt.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minmax",
		Short: "Min-max normalize a list of numbers",
		Long: `minmax reads foo.txt (one number per line), rescales every value to the
range [0,1] with (value - min) / (max - min), and writes the results to
bar.txt, one per line.

Both file names are fixed. Settings for output format and log level can be
placed in .minmax.yaml or .minmax.json in the working directory.

Examples:
  minmax
  minmax --json
  minmax check`,

		Args: cobra.NoArgs,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// PersistentPreRunE runs before the root command and every
		// subcommand, so settings and logging are ready in all of them.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output errors and reports in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, error (default: from settings, else warn)")

	rootCmd.AddCommand(NewCheckCommand())

	return rootCmd
}

// setup loads the settings file from the working directory, applies flag
// overrides, and installs the logger.
//
// Precedence is flags > settings file > defaults.
func setup(cmd *cobra.Command) error {
	cwd, err := os.Getwd()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to determine working directory", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid settings", err)
	}

	if cmd.Flags().Changed("json") {
		if jsonOutput {
			settings.Output = config.OutputJSON
		} else {
			settings.Output = config.OutputText
		}
	}
	if logLevel != "" {
		settings.LogLevel = logLevel
	}
	if verbose {
		settings.LogLevel = string(logger.DebugLevel)
	}
	if err := settings.Validate(); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid flags", err)
	}

	jsonOutput = settings.JSON()
	log = logger.New(&logger.Config{
		Level:  logger.Level(settings.LogLevel),
		Output: cmd.ErrOrStderr(),
		JSON:   jsonOutput,
	})

	if settings.Source != "" {
		VerboseLog("Loaded settings from %s", settings.Source)
	}
	return nil
}

// Execute runs the root command and exits the process with the resulting
// exit code when it is not ExitSuccess. This is the entry point called
// from main.go.
func Execute(rootCmd *cobra.Command) {
	if code := Run(rootCmd); code != model.ExitSuccess {
		os.Exit(int(code))
	}
}

// Run executes rootCmd, prints any error to the command's stderr, and
// returns the exit code. It never exits the process, which keeps it usable
// from tests.
func Run(rootCmd *cobra.Command) model.ExitCode {
	err := rootCmd.Execute()
	if err == nil {
		return model.ExitSuccess
	}

	var cliErr *model.CLIError
	if !errors.As(err, &cliErr) {
		// Cobra's own errors (unknown flag, extra arguments) land here.
		cliErr = model.NewCLIError(model.ExitGeneralError, err.Error())
	}
	printError(rootCmd.ErrOrStderr(), cliErr)
	return cliErr.Code
}

// printError outputs an error in the appropriate format (JSON or text)
// based on the --json global flag.
//
// Pipeline failures (model.AppError) are printed exactly as rendered, with
// no prefix. Everything else is printed as "Error: <message>[: <detail>]".
func printError(w io.Writer, cliErr *model.CLIError) {
	var appErr model.AppError
	isAppErr := errors.As(cliErr, &appErr)

	if jsonOutput {
		errObj := map[string]interface{}{
			"message": cliErr.Message,
		}
		if isAppErr {
			errObj["kind"] = model.Kind(appErr)
		} else if cliErr.Err != nil {
			errObj["detail"] = cliErr.Err.Error()
		}
		// stdout is reserved for successful command output, so JSON
		// errors go to stderr too.
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	switch {
	case isAppErr:
		fmt.Fprintln(w, cliErr.Message)
	case cliErr.Err != nil:
		fmt.Fprintf(w, "Error: %s: %v\n", cliErr.Message, cliErr.Err)
	default:
		fmt.Fprintf(w, "Error: %s\n", cliErr.Message)
	}
}

// VerboseLog emits a debug record. It only shows up when --verbose (or a
// debug log level) is in effect.
func VerboseLog(format string, args ...interface{}) {
	log.Debug(fmt.Sprintf(format, args...))
}

// IsJSONOutput returns whether JSON output is in effect.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
