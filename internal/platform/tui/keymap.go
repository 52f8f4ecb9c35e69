package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-choir/internal/config"
	"github.com/vovakirdan/tui-choir/internal/core"
	"github.com/vovakirdan/tui-choir/internal/sequence"
)

// KeyMap holds the in-game key bindings. Note and replay keys come from the
// choir config; the rest are fixed and listed in config.ReservedKeys.
type KeyMap struct {
	Notes      [sequence.PitchCount]key.Binding
	Replay     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// NewKeyMap builds the game bindings from the configured note keys.
func NewKeyMap(keys config.ChoirKeys) KeyMap {
	noteKeys := [sequence.PitchCount][]string{keys.Low, keys.MidLow, keys.MidHigh, keys.High}

	var km KeyMap
	for i, p := range sequence.Pitches {
		km.Notes[i] = key.NewBinding(
			key.WithKeys(noteKeys[i]...),
			key.WithHelp(helpKeys(noteKeys[i]), "sing "+p.String()),
		)
	}
	km.Replay = key.NewBinding(
		key.WithKeys(keys.Replay...),
		key.WithHelp(helpKeys(keys.Replay), "replay"),
	)
	km.Pause = key.NewBinding(
		key.WithKeys("p", "esc"),
		key.WithHelp("p", "pause"),
	)
	km.Restart = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	)
	km.Back = key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "menu"),
	)
	km.Screenshot = key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "screenshot"),
	)
	km.Quit = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)
	return km
}

// DefaultKeyMap returns the bindings for the built-in config.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultChoirConfig().Keys)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Notes[0], k.Notes[1], k.Notes[2], k.Notes[3], k.Replay, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Notes[:],
		{k.Replay, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Quit is checked first so a note binding cannot shadow it.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit, true
	}
	for i, b := range k.Notes {
		if key.Matches(msg, b) {
			return core.NoteActions[i], false
		}
	}
	switch {
	case key.Matches(msg, k.Replay):
		return core.ActionReplay, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

func helpKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	if keys[0] == " " {
		return "space"
	}
	return keys[0]
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
