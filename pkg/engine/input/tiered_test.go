package input

import (
	"testing"

	"advworld/pkg/engine/world"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  byte
		want Intent
	}{
		{'D', Intent{0, ActionMoveRight}},
		{'d', Intent{0, ActionMoveRight}},
		{'X', Intent{0, ActionMoveDown}},
		{'A', Intent{0, ActionMoveLeft}},
		{'W', Intent{0, ActionMoveUp}},
		{'S', Intent{0, ActionStay}},
		{'E', Intent{0, ActionDispose}},
		{'L', Intent{1, ActionMoveRight}},
		{'M', Intent{1, ActionMoveDown}},
		{'J', Intent{1, ActionMoveLeft}},
		{'I', Intent{1, ActionMoveUp}},
		{'K', Intent{1, ActionStay}},
		{'o', Intent{1, ActionDispose}},
		{'R', Intent{NoPlayer, ActionRestart}},
		{KeyEscape, Intent{NoPlayer, ActionPause}},
		{'h', Intent{NoPlayer, ActionHome}},
		{'Z', Intent{NoPlayer, ActionNone}},
	}

	for _, tt := range tests {
		if got := MapKey(tt.key); got != tt.want {
			t.Errorf("MapKey(%q) = %+v, want %+v", tt.key, got, tt.want)
		}
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		want   world.Direction
		ok     bool
	}{
		{ActionMoveRight, world.Right, true},
		{ActionMoveUp, world.Up, true},
		{ActionStay, world.Stay, true},
		{ActionDispose, world.Stay, false},
		{ActionRestart, world.Stay, false},
	}

	for _, tt := range tests {
		got, ok := tt.action.Direction()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s.Direction() = %v, %v, want %v, %v", ActionName(tt.action), got, ok, tt.want, tt.ok)
		}
	}
}

func TestGetBindingsByAction(t *testing.T) {
	p2 := GetBindingsByAction(1)
	if got := p2[ActionMoveUp]; len(got) != 1 || got[0] != "i" {
		t.Errorf("GetBindingsByAction(1)[Up] = %v, want [i]", got)
	}
	if _, ok := p2[ActionRestart]; ok {
		t.Error("player bindings include the restart key")
	}
}
