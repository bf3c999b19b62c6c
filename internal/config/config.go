// Package config provides configuration management for swellgo with Viper integration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config is the complete configuration for the reactor process.
type Config struct {
	Keybindings KeybindingConfig `mapstructure:"keybindings" yaml:"keybindings"`
	Layout      LayoutConfig     `mapstructure:"layout" yaml:"layout"`
	Animation   AnimationConfig  `mapstructure:"animation" yaml:"animation"`
	Logging     LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Debug       DebugConfig      `mapstructure:"debug" yaml:"debug"`
}

// KeybindingConfig maps a chord string ("cmd+shift+h") to a command
// descriptor. Parsed by internal/bridge into the hotkey collaborator's
// (modifier set, key code) registration and dispatched as reactor.Command events.
type KeybindingConfig struct {
	Bindings map[string]CommandBinding `mapstructure:"bindings" yaml:"bindings"`
}

// CommandBinding names a command and its argument, e.g. {Command: "move_focus", Arg: "left"}.
type CommandBinding struct {
	Command string `mapstructure:"command" yaml:"command" json:"command"`
	Arg     string `mapstructure:"arg" yaml:"arg" json:"arg,omitempty"`
}

// LayoutConfig captures layout defaults consumed by internal/wm.
type LayoutConfig struct {
	// DefaultOrientation ("horizontal" or "vertical") is validated and
	// stored; no package reads it, and new roots always start Horizontal.
	DefaultOrientation string `mapstructure:"default_orientation" yaml:"default_orientation"`
	// OuterGapPx insets every space's root rectangle before the layout walk.
	OuterGapPx int `mapstructure:"outer_gap_px" yaml:"outer_gap_px"`
	// InnerGapPx is reserved for future use between sibling rectangles.
	InnerGapPx int `mapstructure:"inner_gap_px" yaml:"inner_gap_px"`
	// FocusFollowsMouse is loaded and stored; no package reads it, and hover
	// events do not move selection.
	FocusFollowsMouse bool `mapstructure:"focus_follows_mouse" yaml:"focus_follows_mouse"`
}

// AnimationConfig tunes the pkg/anim collaborator.
type AnimationConfig struct {
	Enabled      bool    `mapstructure:"enabled" yaml:"enabled"`
	DurationMS   int     `mapstructure:"duration_ms" yaml:"duration_ms"`
	FPS          int     `mapstructure:"fps" yaml:"fps"`
	EaseExponent float64 `mapstructure:"ease_exponent" yaml:"ease_exponent"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level"`
	Format        string `mapstructure:"format" yaml:"format"`
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress      bool   `mapstructure:"compress" yaml:"compress"`
}

// DebugConfig holds troubleshooting toggles. EnableTimingMetrics makes
// 'swellgo run' give the reactor a timing ring buffer; EnableReactorTrace and
// EnableTxidTrace are loaded and stored but no package reads them.
type DebugConfig struct {
	EnableReactorTrace  bool `mapstructure:"enable_reactor_trace" yaml:"enable_reactor_trace"`
	EnableTxidTrace     bool `mapstructure:"enable_txid_trace" yaml:"enable_txid_trace"`
	EnableTimingMetrics bool `mapstructure:"enable_timing_metrics" yaml:"enable_timing_metrics"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("SWELLGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"layout.default_orientation": "LAYOUT_DEFAULT_ORIENTATION",
		"layout.outer_gap_px":        "LAYOUT_OUTER_GAP_PX",
		"animation.enabled":          "ANIMATION_ENABLED",
		"animation.duration_ms":      "ANIMATION_DURATION_MS",
		"animation.fps":              "ANIMATION_FPS",
		"logging.level":              "LOGGING_LEVEL",
		"logging.format":             "LOGGING_FORMAT",
		"logging.enable_file_log":    "LOGGING_ENABLE_FILE_LOG",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "SWELLGO_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{viper: v, callbacks: make([]func(*Config), 0)}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	if cfg.Logging.LogDir == "" {
		if dir, err := GetLogDir(); err == nil {
			cfg.Logging.LogDir = dir
		}
	}

	m.config = cfg
	return nil
}

// Get returns the current configuration (thread-safe, returns a copy).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfgCopy := *m.config
	return &cfgCopy
}

// Watch starts watching the config file for changes and reloads automatically.
//
// The fsnotify callback never mutates reactor state directly — per §9's "no
// global mutable state" rule and the reactor's single-writer discipline, a
// detected change is only unmarshalled here and handed to registered
// callbacks, which are expected to funnel it back in as a reactor Command
// event rather than poke reactor fields from this goroutine.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("config: failed to reload")
			return
		}

		m.mu.RLock()
		cfg := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, cb := range callbacks {
			cb(cfg)
		}
	})

	m.watching = true
	return nil
}

// OnConfigChange registers a callback invoked (with the new config) whenever
// the watched file changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if cfg.Logging.LogDir == "" {
		if dir, err := GetLogDir(); err == nil {
			cfg.Logging.LogDir = dir
		}
	}
	m.config = cfg
	return nil
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()

	m.viper.SetDefault("layout.default_orientation", d.Layout.DefaultOrientation)
	m.viper.SetDefault("layout.outer_gap_px", d.Layout.OuterGapPx)
	m.viper.SetDefault("layout.inner_gap_px", d.Layout.InnerGapPx)
	m.viper.SetDefault("layout.focus_follows_mouse", d.Layout.FocusFollowsMouse)

	m.viper.SetDefault("animation.enabled", d.Animation.Enabled)
	m.viper.SetDefault("animation.duration_ms", d.Animation.DurationMS)
	m.viper.SetDefault("animation.fps", d.Animation.FPS)
	m.viper.SetDefault("animation.ease_exponent", d.Animation.EaseExponent)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
	m.viper.SetDefault("logging.log_dir", d.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", d.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", d.Logging.Compress)

	m.viper.SetDefault("debug.enable_reactor_trace", d.Debug.EnableReactorTrace)
	m.viper.SetDefault("debug.enable_txid_trace", d.Debug.EnableTxidTrace)
	m.viper.SetDefault("debug.enable_timing_metrics", d.Debug.EnableTimingMetrics)

	bindings := make(map[string]any, len(d.Keybindings.Bindings))
	for chord, binding := range d.Keybindings.Bindings {
		bindings[chord] = map[string]string{"command": binding.Command, "arg": binding.Arg}
	}
	m.viper.SetDefault("keybindings.bindings", bindings)
}

// createDefaultConfig writes a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(configFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	fmt.Printf("Created default configuration file: %s\n", configFile)
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// New returns a new default configuration instance, without touching disk.
func New() *Config {
	return DefaultConfig()
}

var (
	globalManager     *Manager
	globalManagerOnce sync.Once
)

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration, or defaults if Init was never called.
func Get() *Config {
	if globalManager == nil {
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager != nil {
		globalManager.OnConfigChange(callback)
	}
}
