package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigPassesValidation(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateLayoutRejectsUnknownOrientation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.DefaultOrientation = "diagonal"
	assert.Error(t, validateConfig(cfg))
}

func TestValidateLayoutRejectsNegativeGaps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.OuterGapPx = -1
	assert.Error(t, validateConfig(cfg))

	cfg = DefaultConfig()
	cfg.Layout.InnerGapPx = -1
	assert.Error(t, validateConfig(cfg))
}

func TestValidateAnimationRejectsBadFPSAndDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.FPS = 0
	assert.Error(t, validateConfig(cfg))

	cfg = DefaultConfig()
	cfg.Animation.FPS = 241
	assert.Error(t, validateConfig(cfg))

	cfg = DefaultConfig()
	cfg.Animation.DurationMS = -1
	assert.Error(t, validateConfig(cfg))

	cfg = DefaultConfig()
	cfg.Animation.EaseExponent = 0
	assert.Error(t, validateConfig(cfg))
}

func TestValidateLoggingRejectsUnknownLevelAndFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	assert.Error(t, validateConfig(cfg))

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, validateConfig(cfg))
}

func TestValidateLoggingAcceptsUppercaseLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "WARN"
	assert.NoError(t, validateConfig(cfg))
}

func TestValidateLoggingRejectsNonPositiveMaxSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.MaxSizeMB = 0
	assert.Error(t, validateConfig(cfg))
}

func TestValidateKeybindingsRejectsEmptyChordAndUnknownCommand(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Bindings = map[string]CommandBinding{"": {Command: "move_focus", Arg: "left"}}
	assert.Error(t, validateConfig(cfg))

	cfg = DefaultConfig()
	cfg.Keybindings.Bindings = map[string]CommandBinding{"alt+z": {Command: "levitate"}}
	assert.Error(t, validateConfig(cfg))
}

func TestDefaultKeybindingsAreAllRecognizedCommands(t *testing.T) {
	cfg := DefaultConfig()
	for chord, binding := range cfg.Keybindings.Bindings {
		assert.True(t, validCommands[binding.Command], "chord %q binds unrecognized command %q", chord, binding.Command)
	}
}
