// Package logging provides the process-wide structured logger for swellgo.
//
// A single zerolog.Logger is built once at process start (Init) and then
// read through Get() — the reactor, every per-app worker, the bridges and the
// CLI all log through it (context.go has helpers for attaching it to a
// context.Context). Per the "no global mutable state"
// design note, the logger singleton is the one exception alongside the OS's
// own notification centers, and it is written once during bootstrap and only
// read afterwards.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Options configures the process-wide logger.
type Options struct {
	LogDir        string
	Level         string // trace|debug|info|warn|error
	Format        string // "console" or "json"
	EnableFileLog bool
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
}

var (
	globalRotator     *LogRotator
	globalLogger      zerolog.Logger
	globalSessionID   string
	globalSessionFile *os.File
	globalSessionLog  *zerolog.Logger
)

// Init builds the process-wide logger and returns it. 'swellgo run' calls it
// once; a later call replaces the global logger (the config hot-reload path
// does not call it, so a changed logging level takes effect only on the next
// run). Every call mints a fresh session ID
// (see session.go) so log lines from this run can be correlated across the
// rotated main log and, when file logging is enabled, the per-session
// startup-trace file this run writes to.
func Init(opts Options) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	globalSessionID = GenerateSessionID()

	var writers []io.Writer
	if opts.Format == "json" {
		writers = append(writers, os.Stdout)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05.000"})
	}

	if opts.EnableFileLog {
		if err := os.MkdirAll(opts.LogDir, 0o750); err != nil {
			return zerolog.Logger{}, err
		}
		rotator, err := NewLogRotator(opts.LogDir, defaultLogBaseName, opts.MaxSizeMB, opts.MaxBackups, opts.MaxAgeDays, opts.Compress)
		if err != nil {
			return zerolog.Logger{}, err
		}
		globalRotator = rotator
		writers = append(writers, rotator)

		sessionPath := filepath.Join(opts.LogDir, SessionFilename(globalSessionID))
		sessionFile, err := os.OpenFile(sessionPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return zerolog.Logger{}, err
		}
		globalSessionFile = sessionFile
		sessionLogger := zerolog.New(sessionFile).Level(level).With().Timestamp().
			Str("session", globalSessionID).Logger()
		globalSessionLog = &sessionLogger
	}

	logger := zerolog.New(io.MultiWriter(writers...)).Level(level).With().
		Timestamp().Str("session", ShortSessionID(globalSessionID)).Logger()
	globalLogger = logger
	return logger, nil
}

// Get returns the process-wide logger. Returns a disabled logger if Init was
// never called (e.g. in unit tests that don't care about log output).
func Get() zerolog.Logger {
	return globalLogger
}

// SessionID returns the current run's session ID, or the empty string if
// Init has not been called yet.
func SessionID() string {
	return globalSessionID
}

// SessionLogger returns the logger writing to this run's dedicated
// session file (see session.go's SessionFilename), or nil when file
// logging is disabled. internal/logging.StartupTrace uses this, when
// available, so cold-start milestones land in a file scoped to the run
// that produced them rather than only the rotated main log.
func SessionLogger() *zerolog.Logger {
	return globalSessionLog
}

// Close flushes and closes the file rotator and session file, if active.
// Call during graceful shutdown after the reactor's channel has drained.
func Close() error {
	var err error
	if globalRotator != nil {
		err = globalRotator.Close()
	}
	if globalSessionFile != nil {
		if cerr := globalSessionFile.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
