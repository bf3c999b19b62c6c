// Package cli wires the swellgo command-line surface: process-level
// bootstrap for the doctor/config/metrics subcommands that talk to a
// running (or about-to-run) reactor, as opposed to the reactor process
// itself (see cmd/swellgo).
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/swellgo/internal/cli/styles"
	"github.com/bnema/swellgo/internal/config"
)

// App bundles the dependencies CLI subcommands need: configuration and a
// themed renderer. It does not start a reactor; commands that need live
// reactor state dial the debug socket directly (see cmd/metrics.go).
type App struct {
	ctx     context.Context
	cancel  context.CancelFunc
	Config  *config.Config
	Theme   *styles.Theme
	Manager *config.Manager
}

// NewApp constructs the CLI application context: it loads configuration
// (creating defaults on first run) without starting a reactor or watching
// for hot-reload, since one-shot CLI invocations don't need either.
func NewApp() (*App, error) {
	ctx, cancel := context.WithCancel(context.Background())

	mgr, err := config.NewManager()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		cancel()
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := mgr.Get()
	return &App{
		ctx:     ctx,
		cancel:  cancel,
		Config:  cfg,
		Theme:   styles.NewTheme(),
		Manager: mgr,
	}, nil
}

// Ctx returns the app's base context.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases app resources.
func (a *App) Close() error {
	if a.cancel != nil {
		a.cancel()
	}
	return nil
}
