package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-math/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an editor action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ":
		return core.ActionToggle, false
	case "tab":
		return core.ActionCycle, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// PlayKeyMap defines the key bindings shown under the gameplay view.
type PlayKeyMap struct {
	Shoot      key.Binding
	SpeedUp    key.Binding
	SpeedDown  key.Binding
	Replay     key.Binding
	Screenshot key.Binding
	Back       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shoot, k.SpeedUp, k.SpeedDown, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shoot, k.Replay},
		{k.SpeedUp, k.SpeedDown},
		{k.Screenshot, k.Back},
	}
}

// DefaultPlayKeyMap returns default gameplay key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Shoot: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "launch rocket"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "faster"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "slower"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "play again"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
	}
}

// CreatorKeyMap defines the key bindings shown under the level creator.
type CreatorKeyMap struct {
	Move   key.Binding
	Toggle key.Binding
	Tier   key.Binding
	Name   key.Binding
	Save   key.Binding
	Export key.Binding
	Clear  key.Binding
	Cancel key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CreatorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Toggle, k.Tier, k.Name, k.Save, k.Export, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k CreatorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Toggle, k.Tier},
		{k.Name, k.Save, k.Export},
		{k.Clear, k.Cancel},
	}
}

// DefaultCreatorKeyMap returns default level creator key bindings.
func DefaultCreatorKeyMap() CreatorKeyMap {
	return CreatorKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows", "move"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "place"),
		),
		Tier: key.NewBinding(
			key.WithKeys("tab", "1", "2", "3"),
			key.WithHelp("tab/1-3", "tier"),
		),
		Name: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "name"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "export"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
