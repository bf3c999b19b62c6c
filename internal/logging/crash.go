package logging

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"
)

// SetupCrashHandler installs signal handlers that log fatal-signal crashes
// before the process dies, so a post-mortem has a stack trace and memory
// snapshot even when the crash itself didn't go through a Go panic.
func SetupCrashHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c,
		syscall.SIGSEGV,
		syscall.SIGABRT,
		syscall.SIGFPE,
		syscall.SIGBUS,
		syscall.SIGILL,
	)

	go func() {
		sig := <-c
		handleCrash(sig)
	}()
}

// SetupPanicRecovery logs and re-panics. Call with defer at the top of main.
func SetupPanicRecovery() {
	if r := recover(); r != nil {
		logPanic(r)
	}
}

func handleCrash(sig os.Signal) {
	logger := Get()
	event := logger.Fatal().
		Str("component", "crash").
		Str("signal", sig.String()).
		Str("stack", string(debug.Stack())).
		Str("go_version", runtime.Version()).
		Str("goos", runtime.GOOS).
		Str("goarch", runtime.GOARCH).
		Int("num_cpu", runtime.NumCPU())
	for k, v := range coreDumpDiagnostics() {
		event = event.Str(k, v)
	}
	event.Msg("caught fatal signal")

	_ = Close()
	if s, ok := sig.(syscall.Signal); ok {
		os.Exit(128 + int(s))
	}
	os.Exit(1)
}

func logPanic(r any) {
	Get().Error().
		Str("component", "crash").
		Interface("panic", r).
		Str("stack", string(debug.Stack())).
		Msg("recovered panic, re-raising")
	panic(r)
}

// Invariant aborts the process with a diagnostic when cond is false. Per §7
// of the design, structural programming errors (a rootless sibling
// operation, a use-after-remove, more than two moved edges in a user
// resize, releasing a non-live owned root) are bugs in this code, not in
// the environment, and must not be swallowed as ordinary errors.
func Invariant(cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	Get().Error().Str("component", "invariant").Str("stack", string(debug.Stack())).Msg(msg)
	panic("invariant violated: " + msg)
}
