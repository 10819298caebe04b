package input

import (
	"sort"
	"strings"
	"time"

	"advworld/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceReplay
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveRight
	ActionMoveDown
	ActionMoveLeft
	ActionMoveUp
	ActionStay
	ActionDispose

	// Meta / UI
	ActionRestart
	ActionPause
	ActionHome
)

// NoPlayer marks intents that are not tied to a player
const NoPlayer = -1

// Intent is the 4th‑layer, high‑level description of what a player wants to do.
type Intent struct {
	Player int
	Action Action
}

// IsMovement reports whether the intent steers a player
func (i Intent) IsMovement() bool {
	_, ok := i.Action.Direction()
	return ok
}

// Direction returns the movement direction of a steering action
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveRight:
		return world.Right, true
	case ActionMoveDown:
		return world.Down, true
	case ActionMoveLeft:
		return world.Left, true
	case ActionMoveUp:
		return world.Up, true
	case ActionStay:
		return world.Stay, true
	}
	return world.Stay, false
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "d", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Codes are folded to lower case so bindings are case-insensitive.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// KeyEscape is the byte a terminal sends for ESC
const KeyEscape byte = 27

// FromKey builds a debounced input from a single key byte
func FromKey(device Device, key byte) DebouncedInput {
	code := string(rune(key))
	if key == KeyEscape {
		code = "escape"
	}
	return NewDebouncedInput(RawInput{Device: device, Code: code, Timestamp: time.Now()})
}

// bindings maps raw codes to intents (3rd-layer bindings).
var bindings = map[string]Intent{
	// Player 1
	"d": {0, ActionMoveRight},
	"x": {0, ActionMoveDown},
	"a": {0, ActionMoveLeft},
	"w": {0, ActionMoveUp},
	"s": {0, ActionStay},
	"e": {0, ActionDispose},

	// Player 2
	"l": {1, ActionMoveRight},
	"m": {1, ActionMoveDown},
	"j": {1, ActionMoveLeft},
	"i": {1, ActionMoveUp},
	"k": {1, ActionStay},
	"o": {1, ActionDispose},

	"r":      {NoPlayer, ActionRestart},
	"escape": {NoPlayer, ActionPause},
	"h":      {NoPlayer, ActionHome},
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if in, ok := bindings[ev.Code]; ok {
		return in
	}
	return Intent{Player: NoPlayer, Action: ActionNone}
}

// MapKey maps a single key byte straight to an intent
func MapKey(key byte) Intent {
	return MapToIntent(FromKey(DeviceKeyboard, key))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveRight:
		return "Right"
	case ActionMoveDown:
		return "Down"
	case ActionMoveLeft:
		return "Left"
	case ActionMoveUp:
		return "Up"
	case ActionStay:
		return "Stay"
	case ActionDispose:
		return "Dispose"
	case ActionRestart:
		return "Restart Room"
	case ActionPause:
		return "Pause"
	case ActionHome:
		return "Home"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the codes bound to each action of a player.
func GetBindingsByAction(player int) map[Action][]string {
	result := make(map[Action][]string)
	for code, in := range bindings {
		if in.Player != player {
			continue
		}
		result[in.Action] = append(result[in.Action], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
