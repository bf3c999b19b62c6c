// Package cmd provides Cobra CLI commands for swellgo.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/swellgo/internal/cli"
)

var (
	app     *cli.App
	version = "dev"

	rootCmd = &cobra.Command{
		Use:           "swellgo",
		Short:         "A reactor-based tiling window manager",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `swellgo is a reactor-based tiling window manager.

A single-threaded reactor owns the layout tree and serializes every
mutation and accessibility/platform event through one event loop, with
per-app workers absorbing platform latency and a raise-token protocol
keeping window activation race-free across concurrently raised apps.

This binary is the operator-facing CLI (doctor/config/metrics). The
reactor process itself is started by 'swellgo run'.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}
			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var printedErr *printedError
		if errors.As(err, &printedErr) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type printedError struct {
	err error
}

func (e *printedError) Error() string {
	if e == nil || e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *printedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

func wrapPrintedError(err error) error {
	if err == nil {
		return nil
	}
	return &printedError{err: err}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetVersion sets the version string reported by 'swellgo --version'.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
