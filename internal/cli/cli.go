package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/buildgridgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("buildgridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
BuildGridGo - A declarative build-matrix resolver for firmware CI pipelines.

Usage:
  buildgridgo [options] [MATRIX_PATH]

Arguments:
  MATRIX_PATH
    Path to a single .hcl/.yaml matrix file or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	matrixFlag := flagSet.String("matrix", "", "Path to the matrix file or directory.")
	mFlag := flagSet.String("m", "", "Path to the matrix file or directory (shorthand).")
	formatFlag := flagSet.String("format", "auto", "Matrix file format. Options: 'auto', 'hcl' or 'yaml'.")
	runnerFlag := flagSet.String("runner", "print", "Runner jobs are dispatched to. Options: 'print' or 'cargo'.")
	workersFlag := flagSet.Int("workers", 4, "Number of concurrent workers for the executor.")
	projectDirFlag := flagSet.String("project-dir", "", "Working directory for external build invocations.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print build commands without executing them (cargo runner).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *matrixFlag != "" {
		path = *matrixFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		MatrixPath:  path,
		Format:      strings.ToLower(*formatFlag),
		Runner:      strings.ToLower(*runnerFlag),
		ProjectDir:  *projectDirFlag,
		DryRun:      *dryRunFlag,
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
		WorkerCount: *workersFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
