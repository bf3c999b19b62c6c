// Package config provides default configuration values for swellgo.
package config

// Default configuration constants
const (
	defaultOrientation = "horizontal"
	defaultOuterGapPx  = 8
	defaultInnerGapPx  = 0

	defaultAnimationEnabled      = true
	defaultAnimationDurationMS   = 250
	defaultAnimationFPS          = 60
	defaultAnimationEaseExponent = 2.0

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxSizeMB     = 50
	defaultMaxBackups    = 5
	defaultMaxAgeDays    = 14
	defaultCompressLogs  = true
	defaultEnableFileLog = true
)

// getDefaultLogDir resolves the XDG-compliant default log directory,
// falling back to an empty string (handled by the caller) if it cannot be
// determined.
func getDefaultLogDir() string {
	dir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return dir
}

// DefaultConfig returns a Config populated with the built-in defaults: a
// single outer-gapped horizontal layout, animations on at 60fps/250ms, info
// logging to both console and the XDG state log directory, and a
// conservative default keybinding set modeled on common tiling-WM chords.
func DefaultConfig() *Config {
	return &Config{
		Keybindings: KeybindingConfig{
			Bindings: map[string]CommandBinding{
				"alt+h":       {Command: "move_focus", Arg: "left"},
				"alt+l":       {Command: "move_focus", Arg: "right"},
				"alt+k":       {Command: "move_focus", Arg: "up"},
				"alt+j":       {Command: "move_focus", Arg: "down"},
				"alt+shift+h": {Command: "move_node", Arg: "left"},
				"alt+shift+l": {Command: "move_node", Arg: "right"},
				"alt+shift+k": {Command: "move_node", Arg: "up"},
				"alt+shift+j": {Command: "move_node", Arg: "down"},
				"alt+v":       {Command: "split", Arg: "vertical"},
				"alt+s":       {Command: "split", Arg: "horizontal"},
				"alt+g":       {Command: "group", Arg: "horizontal"},
				"alt+shift+g": {Command: "ungroup"},
				"alt+a":       {Command: "ascend"},
				"alt+d":       {Command: "descend"},
			},
		},
		Layout: LayoutConfig{
			DefaultOrientation: defaultOrientation,
			OuterGapPx:         defaultOuterGapPx,
			InnerGapPx:         defaultInnerGapPx,
			FocusFollowsMouse:  false,
		},
		Animation: AnimationConfig{
			Enabled:      defaultAnimationEnabled,
			DurationMS:   defaultAnimationDurationMS,
			FPS:          defaultAnimationFPS,
			EaseExponent: defaultAnimationEaseExponent,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: defaultEnableFileLog,
			MaxSizeMB:     defaultMaxSizeMB,
			MaxBackups:    defaultMaxBackups,
			MaxAgeDays:    defaultMaxAgeDays,
			Compress:      defaultCompressLogs,
		},
		Debug: DebugConfig{
			EnableReactorTrace:  false,
			EnableTxidTrace:     false,
			EnableTimingMetrics: false,
		},
	}
}
