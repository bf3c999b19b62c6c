package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/swellgo/internal/bridge"
	"github.com/bnema/swellgo/internal/config"
	"github.com/bnema/swellgo/internal/logging"
	"github.com/bnema/swellgo/internal/metrics"
	"github.com/bnema/swellgo/internal/reactor"
	"github.com/bnema/swellgo/pkg/ax"
	"github.com/bnema/swellgo/pkg/hotkey"
	"github.com/bnema/swellgo/pkg/osnotify"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the reactor process",
	Long: `run starts the reactor: it loads configuration, subscribes to the
OS-global notification and hotkey collaborators, opens the debug socket,
and serializes every event through the single-threaded reactor loop until
interrupted.`,
	RunE: runReactor,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runReactor(_ *cobra.Command, _ []string) error {
	mgr, err := config.NewManager()
	if err != nil {
		return wrapPrintedError(fmt.Errorf("create config manager: %w", err))
	}
	if err := mgr.Load(); err != nil {
		return wrapPrintedError(fmt.Errorf("load config: %w", err))
	}
	cfg := mgr.Get()
	logging.Trace().Mark("config_loaded")

	logger, err := logging.Init(logging.Options{
		LogDir:        cfg.Logging.LogDir,
		Level:         cfg.Logging.Level,
		Format:        cfg.Logging.Format,
		EnableFileLog: cfg.Logging.EnableFileLog,
		MaxSizeMB:     cfg.Logging.MaxSizeMB,
		MaxBackups:    cfg.Logging.MaxBackups,
		MaxAgeDays:    cfg.Logging.MaxAgeDays,
		Compress:      cfg.Logging.Compress,
	})
	if err != nil {
		return wrapPrintedError(fmt.Errorf("init logging: %w", err))
	}
	defer func() { _ = logging.Close() }()
	logging.SetupCrashHandler()
	defer logging.SetupPanicRecovery()

	if sessionLogger := logging.SessionLogger(); sessionLogger != nil {
		logging.Trace().UpdateLogger(sessionLogger)
	} else {
		logging.Trace().UpdateLogger(&logger)
	}
	logging.Trace().Mark("logging_initialized")

	sockPath, err := config.GetDebugSocketPath()
	if err != nil {
		return wrapPrintedError(fmt.Errorf("resolve debug socket path: %w", err))
	}
	logging.Trace().Mark("debug_socket_resolved")

	var timing *metrics.Timing
	if cfg.Debug.EnableTimingMetrics {
		timing = metrics.NewTiming(512)
	}

	r := reactor.New(toSnapshot(cfg), timing)

	axColl := ax.NewCollaborator()
	osColl := osnotify.NewCollaborator()
	hotkeyColl := hotkey.NewCollaborator()

	notifBridge := bridge.NewNotificationBridge(r, axColl)
	sub, err := notifBridge.Subscribe(osColl)
	if err != nil {
		return wrapPrintedError(fmt.Errorf("subscribe to OS notifications: %w", err))
	}
	defer sub.Unsubscribe()
	logging.Trace().Mark("notification_bridge_subscribed")

	hotkeyBridge := bridge.NewHotkeyBridge(r, hotkeyColl)
	hotkeyBridge.RegisterAll(cfg.Keybindings)
	defer hotkeyBridge.Close()
	logging.Trace().Mark("hotkey_bridge_registered")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mgr.OnConfigChange(func(newCfg *config.Config) {
		snap := toSnapshot(newCfg)
		r.EnqueueEvent(reactor.Event{Kind: reactor.EventCommand, Command: reactor.Command{Kind: reactor.CmdConfigReload, NewConfig: &snap}})
	})
	if err := mgr.Watch(); err != nil {
		logger.Warn().Err(err).Msg("run: config hot-reload watch failed to start")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		notifBridge.Run(gctx)
		return nil
	})
	g.Go(func() error {
		return r.ServeDebugSocket(gctx, sockPath)
	})
	g.Go(func() error {
		return r.Run(gctx)
	})

	logging.Trace().Mark("reactor_ready")
	logging.Trace().Finish()
	logger.Info().Str("debug_socket", sockPath).Msg("run: reactor started")
	if err := g.Wait(); err != nil && gctx.Err() == nil {
		return wrapPrintedError(err)
	}
	logger.Info().Msg("run: reactor shut down")
	return nil
}

func toSnapshot(cfg *config.Config) reactor.ConfigSnapshot {
	return reactor.ConfigSnapshot{
		OuterGapPx:       cfg.Layout.OuterGapPx,
		AnimationEnabled: cfg.Animation.Enabled,
		AnimationMS:      cfg.Animation.DurationMS,
		AnimationFPS:     cfg.Animation.FPS,
		EaseExponent:     cfg.Animation.EaseExponent,
	}
}
