// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"strings"
)

var validOrientations = map[string]bool{
	"horizontal": true,
	"vertical":   true,
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
}

var validLogFormats = map[string]bool{
	"console": true,
	"json":    true,
}

var validCommands = map[string]bool{
	"move_focus": true,
	"move_node":  true,
	"split":      true,
	"group":      true,
	"ungroup":    true,
	"ascend":     true,
	"descend":    true,
	"shuffle":    true,
	"debug":      true,
}

// validateConfig checks the unmarshalled config for structurally invalid
// values that would otherwise surface later as confusing reactor panics.
func validateConfig(config *Config) error {
	if err := validateLayout(&config.Layout); err != nil {
		return err
	}
	if err := validateAnimation(&config.Animation); err != nil {
		return err
	}
	if err := validateLogging(&config.Logging); err != nil {
		return err
	}
	if err := validateKeybindings(&config.Keybindings); err != nil {
		return err
	}
	return nil
}

func validateLayout(l *LayoutConfig) error {
	if !validOrientations[l.DefaultOrientation] {
		return fmt.Errorf("layout.default_orientation must be 'horizontal' or 'vertical', got %q", l.DefaultOrientation)
	}
	if l.OuterGapPx < 0 {
		return fmt.Errorf("layout.outer_gap_px must be >= 0, got %d", l.OuterGapPx)
	}
	if l.InnerGapPx < 0 {
		return fmt.Errorf("layout.inner_gap_px must be >= 0, got %d", l.InnerGapPx)
	}
	return nil
}

func validateAnimation(a *AnimationConfig) error {
	if a.DurationMS < 0 {
		return fmt.Errorf("animation.duration_ms must be >= 0, got %d", a.DurationMS)
	}
	if a.FPS <= 0 || a.FPS > 240 {
		return fmt.Errorf("animation.fps must be between 1 and 240, got %d", a.FPS)
	}
	if a.EaseExponent <= 0 {
		return fmt.Errorf("animation.ease_exponent must be > 0, got %f", a.EaseExponent)
	}
	return nil
}

func validateLogging(l *LoggingConfig) error {
	if !validLogLevels[strings.ToLower(l.Level)] {
		return fmt.Errorf("logging.level must be one of trace|debug|info|warn|error|fatal, got %q", l.Level)
	}
	if !validLogFormats[strings.ToLower(l.Format)] {
		return fmt.Errorf("logging.format must be 'console' or 'json', got %q", l.Format)
	}
	if l.MaxSizeMB <= 0 {
		return fmt.Errorf("logging.max_size_mb must be > 0, got %d", l.MaxSizeMB)
	}
	if l.MaxBackups < 0 {
		return fmt.Errorf("logging.max_backups must be >= 0, got %d", l.MaxBackups)
	}
	if l.MaxAgeDays < 0 {
		return fmt.Errorf("logging.max_age_days must be >= 0, got %d", l.MaxAgeDays)
	}
	return nil
}

func validateKeybindings(k *KeybindingConfig) error {
	for chord, binding := range k.Bindings {
		if strings.TrimSpace(chord) == "" {
			return fmt.Errorf("keybindings.bindings has an empty chord")
		}
		if !validCommands[binding.Command] {
			return fmt.Errorf("keybindings.bindings[%q].command %q is not a recognized command", chord, binding.Command)
		}
	}
	return nil
}
