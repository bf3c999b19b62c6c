package bridge

import (
	"fmt"
	"strings"

	"github.com/bnema/swellgo/internal/config"
	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/logging"
	"github.com/bnema/swellgo/internal/reactor"
	"github.com/bnema/swellgo/internal/wm"
	"github.com/bnema/swellgo/pkg/hotkey"
)

// HotkeyBridge registers every configured chord with a hotkey.Collaborator
// and, on each press, enqueues the bound Command as a reactor.EventCommand
// (§6's "illustrative command surface").
type HotkeyBridge struct {
	reactor *reactor.Reactor
	coll    hotkey.Collaborator

	registrations []hotkey.Registration
}

// NewHotkeyBridge creates a bridge over r.
func NewHotkeyBridge(r *reactor.Reactor, coll hotkey.Collaborator) *HotkeyBridge {
	return &HotkeyBridge{reactor: r, coll: coll}
}

// RegisterAll parses and registers every binding in cfg, skipping (and
// logging) any chord string or command name it can't parse rather than
// failing the whole set — one bad binding in a hand-edited config
// shouldn't take every other keybinding down with it.
func (b *HotkeyBridge) RegisterAll(cfg config.KeybindingConfig) {
	logger := logging.Get().With().Str("component", "bridge.hotkey").Logger()

	for chordStr, binding := range cfg.Bindings {
		chord, err := parseChord(chordStr)
		if err != nil {
			logger.Warn().Err(err).Str("chord", chordStr).Msg("hotkey: skipping unparsable chord")
			continue
		}
		cmd, err := commandFromBinding(binding)
		if err != nil {
			logger.Warn().Err(err).Str("chord", chordStr).Str("command", binding.Command).Msg("hotkey: skipping unknown command binding")
			continue
		}

		reg, err := b.coll.Register(chord, func() {
			b.reactor.EnqueueEvent(reactor.Event{Kind: reactor.EventCommand, Command: cmd})
		})
		if err != nil {
			logger.Warn().Err(err).Str("chord", chordStr).Msg("hotkey: registration failed")
			continue
		}
		b.registrations = append(b.registrations, reg)
	}
}

// Close unregisters every chord this bridge registered.
func (b *HotkeyBridge) Close() {
	for _, reg := range b.registrations {
		reg.Unregister()
	}
	b.registrations = nil
}

// parseChord turns a "+"-joined chord string like "alt+shift+h" into a
// hotkey.Chord. Modifier names are case-insensitive; the final token must
// name a key in keyCodes.
func parseChord(s string) (hotkey.Chord, error) {
	parts := strings.Split(s, "+")
	if len(parts) == 0 {
		return hotkey.Chord{}, fmt.Errorf("empty chord")
	}

	var mods hotkey.Modifier
	key := strings.ToLower(parts[len(parts)-1])
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(p) {
		case "shift":
			mods |= hotkey.ModShift
		case "ctrl", "control":
			mods |= hotkey.ModControl
		case "alt", "option":
			mods |= hotkey.ModOption
		case "cmd", "command", "super", "meta":
			mods |= hotkey.ModCommand
		default:
			return hotkey.Chord{}, fmt.Errorf("unknown modifier %q", p)
		}
	}

	code, ok := keyCodes[key]
	if !ok {
		return hotkey.Chord{}, fmt.Errorf("unknown key %q", key)
	}
	return hotkey.Chord{Modifiers: mods, KeyCode: code}, nil
}

// keyCodes maps the letters, digits, and arrow names a keybinding config
// is likely to name to a raw virtual key code. The numbering follows the
// ANSI US keyboard layout's standard scan-code ordering, the same
// convention the teacher's own platform collaborators assume elsewhere in
// this codebase.
var keyCodes = map[string]uint16{
	"a": 0, "s": 1, "d": 2, "f": 3, "h": 4, "g": 5, "z": 6, "x": 7, "c": 8, "v": 9,
	"b": 11, "q": 12, "w": 13, "e": 14, "r": 15, "y": 16, "t": 17,
	"1": 18, "2": 19, "3": 20, "4": 21, "6": 22, "5": 23, "equal": 24, "9": 25,
	"7": 26, "minus": 27, "8": 28, "0": 29, "rightbracket": 30, "o": 31, "u": 32,
	"leftbracket": 33, "i": 34, "p": 35, "l": 37, "j": 38, "k": 40, "n": 45, "m": 46,
	"left": 123, "right": 124, "down": 125, "up": 126,
	"space": 49, "tab": 48, "return": 36, "enter": 36, "escape": 53,
}

// commandFromBinding maps a config.CommandBinding into a reactor.Command.
// Direction- and orientation-taking commands parse Arg accordingly;
// commands with no argument ignore it.
func commandFromBinding(b config.CommandBinding) (reactor.Command, error) {
	switch b.Command {
	case "move_focus":
		dir, err := parseDirection(b.Arg)
		if err != nil {
			return reactor.Command{}, err
		}
		return reactor.Command{Kind: reactor.CmdMoveFocus, Direction: dir}, nil
	case "move_node":
		dir, err := parseDirection(b.Arg)
		if err != nil {
			return reactor.Command{}, err
		}
		return reactor.Command{Kind: reactor.CmdMoveNode, Direction: dir}, nil
	case "split":
		orientation, err := parseOrientation(b.Arg)
		if err != nil {
			return reactor.Command{}, err
		}
		return reactor.Command{Kind: reactor.CmdSplit, Orientation: orientation}, nil
	case "group":
		orientation, err := parseOrientation(b.Arg)
		if err != nil {
			return reactor.Command{}, err
		}
		return reactor.Command{Kind: reactor.CmdGroup, Orientation: orientation}, nil
	case "ungroup":
		return reactor.Command{Kind: reactor.CmdUngroup}, nil
	case "ascend":
		return reactor.Command{Kind: reactor.CmdAscend}, nil
	case "descend":
		return reactor.Command{Kind: reactor.CmdDescend}, nil
	case "shuffle":
		return reactor.Command{Kind: reactor.CmdShuffle}, nil
	case "debug":
		return reactor.Command{Kind: reactor.CmdDebugDump}, nil
	default:
		return reactor.Command{}, fmt.Errorf("unknown command %q", b.Command)
	}
}

func parseDirection(arg string) (wm.Direction, error) {
	switch strings.ToLower(arg) {
	case "left":
		return wm.Left, nil
	case "right":
		return wm.Right, nil
	case "up":
		return wm.Up, nil
	case "down":
		return wm.Down, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", arg)
	}
}

func parseOrientation(arg string) (layout.Kind, error) {
	switch strings.ToLower(arg) {
	case "horizontal":
		return layout.Horizontal, nil
	case "vertical":
		return layout.Vertical, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", arg)
	}
}
