package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/buildgridgo/internal/app"
	"github.com/vk/buildgridgo/internal/cli"
	"github.com/vk/buildgridgo/internal/config"
	"github.com/vk/buildgridgo/internal/hcl"
	"github.com/vk/buildgridgo/internal/yaml"
)

// main is the entrypoint for the buildgridgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	// Instantiate the concrete loader matching the matrix file format.
	var loader config.Loader
	if appConfig.DetectFormat() == app.FormatYAML {
		loader = yaml.NewLoader()
	} else {
		loader = hcl.NewLoader()
	}

	buildgridApp := app.NewApp(outW, os.Stderr, appConfig, loader)

	return buildgridApp.Run(context.Background(), appConfig)
}
