package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"physbox/internal/core"
)

// KeyMapper translates Bubble Tea key messages to simulation actions.
// This centralizes key bindings and makes them testable.
//
// Directions accept three alias groups: WASD, vim-style HJKL and the arrow
// keys. The shifted variant of any direction (uppercase letter or
// shift+arrow) adds the boost modifier alongside the direction.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to actions.
// Returns the triggered actions (possibly empty) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "w", "k", "up":
		return []core.Action{core.ActionUp}, false
	case "W", "K", "shift+up":
		return []core.Action{core.ActionUp, core.ActionBoost}, false
	case "s", "j", "down":
		return []core.Action{core.ActionDown}, false
	case "S", "J", "shift+down":
		return []core.Action{core.ActionDown, core.ActionBoost}, false
	case "a", "h", "left":
		return []core.Action{core.ActionLeft}, false
	case "A", "H", "shift+left":
		return []core.Action{core.ActionLeft, core.ActionBoost}, false
	case "d", "l", "right":
		return []core.Action{core.ActionRight}, false
	case "D", "L", "shift+right":
		return []core.Action{core.ActionRight, core.ActionBoost}, false
	case "p", "esc":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}
