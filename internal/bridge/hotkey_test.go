package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/swellgo/internal/config"
	"github.com/bnema/swellgo/internal/layout"
	"github.com/bnema/swellgo/internal/reactor"
	"github.com/bnema/swellgo/internal/wm"
	"github.com/bnema/swellgo/pkg/hotkey"
	mock_hotkey "github.com/bnema/swellgo/pkg/hotkey/mocks"
)

func TestParseChordParsesModifiersAndKey(t *testing.T) {
	c, err := parseChord("alt+shift+h")
	require.NoError(t, err)
	assert.Equal(t, hotkey.ModOption|hotkey.ModShift, c.Modifiers)
	assert.Equal(t, keyCodes["h"], c.KeyCode)
}

func TestParseChordIsCaseInsensitive(t *testing.T) {
	c, err := parseChord("CMD+Return")
	require.NoError(t, err)
	assert.Equal(t, hotkey.ModCommand, c.Modifiers)
	assert.Equal(t, keyCodes["return"], c.KeyCode)
}

func TestParseChordNoModifiers(t *testing.T) {
	c, err := parseChord("left")
	require.NoError(t, err)
	assert.Equal(t, hotkey.Modifier(0), c.Modifiers)
	assert.Equal(t, keyCodes["left"], c.KeyCode)
}

func TestParseChordRejectsUnknownModifier(t *testing.T) {
	_, err := parseChord("hyper+h")
	assert.Error(t, err)
}

func TestParseChordRejectsUnknownKey(t *testing.T) {
	_, err := parseChord("alt+f20")
	assert.Error(t, err)
}

func TestCommandFromBindingMoveFocus(t *testing.T) {
	cmd, err := commandFromBinding(config.CommandBinding{Command: "move_focus", Arg: "left"})
	require.NoError(t, err)
	assert.Equal(t, reactor.CmdMoveFocus, cmd.Kind)
	assert.Equal(t, wm.Left, cmd.Direction)
}

func TestCommandFromBindingMoveNode(t *testing.T) {
	cmd, err := commandFromBinding(config.CommandBinding{Command: "move_node", Arg: "down"})
	require.NoError(t, err)
	assert.Equal(t, reactor.CmdMoveNode, cmd.Kind)
	assert.Equal(t, wm.Down, cmd.Direction)
}

func TestCommandFromBindingSplit(t *testing.T) {
	cmd, err := commandFromBinding(config.CommandBinding{Command: "split", Arg: "vertical"})
	require.NoError(t, err)
	assert.Equal(t, reactor.CmdSplit, cmd.Kind)
	assert.Equal(t, layout.Vertical, cmd.Orientation)
}

func TestCommandFromBindingGroup(t *testing.T) {
	cmd, err := commandFromBinding(config.CommandBinding{Command: "group", Arg: "horizontal"})
	require.NoError(t, err)
	assert.Equal(t, reactor.CmdGroup, cmd.Kind)
	assert.Equal(t, layout.Horizontal, cmd.Orientation)
}

func TestCommandFromBindingNoArgCommands(t *testing.T) {
	cases := map[string]reactor.CommandKind{
		"ungroup": reactor.CmdUngroup,
		"ascend":  reactor.CmdAscend,
		"descend": reactor.CmdDescend,
		"shuffle": reactor.CmdShuffle,
		"debug":   reactor.CmdDebugDump,
	}
	for name, kind := range cases {
		cmd, err := commandFromBinding(config.CommandBinding{Command: name})
		require.NoError(t, err, name)
		assert.Equal(t, kind, cmd.Kind, name)
	}
}

func TestCommandFromBindingRejectsUnknownCommand(t *testing.T) {
	_, err := commandFromBinding(config.CommandBinding{Command: "levitate"})
	assert.Error(t, err)
}

func TestCommandFromBindingRejectsBadDirectionOrOrientation(t *testing.T) {
	_, err := commandFromBinding(config.CommandBinding{Command: "move_focus", Arg: "sideways"})
	assert.Error(t, err)

	_, err = commandFromBinding(config.CommandBinding{Command: "split", Arg: "diagonal"})
	assert.Error(t, err)
}

func TestRegisterAllSkipsUnparsableChordsAndBindingsButRegistersGoodOnes(t *testing.T) {
	ctrl := gomock.NewController(t)
	coll := mock_hotkey.NewMockCollaborator(ctrl)
	reg := mock_hotkey.NewMockRegistration(ctrl)

	coll.EXPECT().Register(gomock.Any(), gomock.Any()).Return(reg, nil).Times(1)

	r := reactor.New(reactor.ConfigSnapshot{}, nil)
	b := NewHotkeyBridge(r, coll)

	cfg := config.KeybindingConfig{
		Bindings: map[string]config.CommandBinding{
			"alt+h":     {Command: "move_focus", Arg: "left"},
			"hyper+h":   {Command: "move_focus", Arg: "left"}, // unparsable chord
			"alt+j":     {Command: "unknown_command"},         // unparsable binding
		},
	}
	b.RegisterAll(cfg)

	assert.Len(t, b.registrations, 1)
}

func TestRegisterAllSkipsWhenCollaboratorRegistrationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	coll := mock_hotkey.NewMockCollaborator(ctrl)
	coll.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, hotkey.ErrUnsupportedPlatform)

	r := reactor.New(reactor.ConfigSnapshot{}, nil)
	b := NewHotkeyBridge(r, coll)

	b.RegisterAll(config.KeybindingConfig{Bindings: map[string]config.CommandBinding{
		"alt+h": {Command: "move_focus", Arg: "left"},
	}})

	assert.Empty(t, b.registrations)
}

func TestHotkeyBridgeCloseUnregistersEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg1 := mock_hotkey.NewMockRegistration(ctrl)
	reg2 := mock_hotkey.NewMockRegistration(ctrl)
	reg1.EXPECT().Unregister().Times(1)
	reg2.EXPECT().Unregister().Times(1)

	b := &HotkeyBridge{registrations: []hotkey.Registration{reg1, reg2}}
	b.Close()

	assert.Empty(t, b.registrations)
}

func TestHotkeyPressEnqueuesReactorCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	coll := mock_hotkey.NewMockCollaborator(ctrl)
	reg := mock_hotkey.NewMockRegistration(ctrl)

	var onPress func()
	coll.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(func(_ hotkey.Chord, fn func()) (hotkey.Registration, error) {
		onPress = fn
		return reg, nil
	})

	r := reactor.New(reactor.ConfigSnapshot{}, nil)
	b := NewHotkeyBridge(r, coll)
	b.RegisterAll(config.KeybindingConfig{Bindings: map[string]config.CommandBinding{
		"alt+h": {Command: "move_focus", Arg: "left"},
	}})

	require.NotNil(t, onPress)
	onPress() // should not panic even without a running reactor loop behind r
}
