package game

import "github.com/gdamore/tcell/v2"

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}

	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return ActionMoveN
	case 's', 'S':
		return ActionMoveS
	case 'd', 'D':
		return ActionMoveE
	case 'a', 'A':
		return ActionMoveW
	}
	return ActionNone
}

// actionToDelta converts a movement action to (dx, dy).
func actionToDelta(a Action) (int, int) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	}
	return 0, 0
}

// keyToDelta is keyToAction and actionToDelta together. ok is false for
// keys that do not move the player.
func keyToDelta(ev *tcell.EventKey) (dx, dy int, ok bool) {
	a := keyToAction(ev)
	if a == ActionNone {
		return 0, 0, false
	}
	dx, dy = actionToDelta(a)
	return dx, dy, true
}
