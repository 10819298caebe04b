package entities

import (
	"testing"

	"advworld/pkg/engine/world"
)

func linkedSwitches(id int, states ...bool) []*Switch {
	out := make([]*Switch, 0, len(states))
	for i, on := range states {
		sw := NewSwitch(world.Pt(i, 0), on)
		sw.SetDoorID(id)
		out = append(out, sw)
	}
	return out
}

func TestNewDoor_DefaultsToOpenable(t *testing.T) {
	d := NewDoor(world.Pt(5, 5), 3)
	if !d.KeyOK() || !d.SwitchOK() {
		t.Fatalf("NewDoor() keyOK=%v switchOK=%v, want both true", d.KeyOK(), d.SwitchOK())
	}
	if d.Glyph() != '3' {
		t.Errorf("Glyph() = %q, want '3'", d.Glyph())
	}
}

func TestDoor_ZeroKeysIsKeyOKAtLoad(t *testing.T) {
	d := NewDoor(world.Pt(1, 1), 2)
	d.ApplyRules(1, 0, false, RuleAllOn)
	if !d.KeyOK() {
		t.Error("KeyOK() = false with 0 needed keys, want true")
	}
	if d.SwitchOK() {
		t.Error("SwitchOK() = true for AllOn before any switch update, want false")
	}
}

func TestDoor_UseKeyLatchesKeyOK(t *testing.T) {
	d := NewDoor(world.Pt(1, 1), 5)
	d.ApplyRules(7, 2, false, RuleNone)

	d.UseKey()
	if d.KeyOK() || d.NeededKeys() != 1 {
		t.Fatalf("after 1 key: keyOK=%v needed=%d, want false, 1", d.KeyOK(), d.NeededKeys())
	}
	d.UseKey()
	if !d.KeyOK() || d.NeededKeys() != 0 {
		t.Fatalf("after 2 keys: keyOK=%v needed=%d, want true, 0", d.KeyOK(), d.NeededKeys())
	}
	d.UseKey()
	if !d.KeyOK() || d.NeededKeys() != 0 {
		t.Errorf("extra key changed state: keyOK=%v needed=%d", d.KeyOK(), d.NeededKeys())
	}
}

func TestDoor_ApplyRule(t *testing.T) {
	tests := []struct {
		name   string
		rule   SwitchRule
		states []bool
		want   bool
	}{
		{"all on satisfied", RuleAllOn, []bool{true, true}, true},
		{"all on one off", RuleAllOn, []bool{true, false}, false},
		{"all off satisfied", RuleAllOff, []bool{false, false}, true},
		{"all off one on", RuleAllOff, []bool{false, true}, false},
		{"no rule ignores switches", RuleNone, []bool{false, true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDoor(world.Pt(0, 0), 2)
			d.ApplyRules(4, 0, false, tt.rule)
			switches := linkedSwitches(4, tt.states...)
			// a switch of another door must not count
			other := NewSwitch(world.Pt(9, 9), !tt.states[0])
			other.SetDoorID(5)
			d.ApplyRule(append(switches, other))
			if got := d.SwitchOK(); got != tt.want {
				t.Errorf("SwitchOK() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDoor_OpenIsPermanent(t *testing.T) {
	d := NewDoor(world.Pt(0, 0), 2)
	d.ApplyRules(1, 0, false, RuleAllOn)
	switches := linkedSwitches(1, false)

	d.ApplyRule(switches)
	if d.TryOpen() {
		t.Fatal("TryOpen() = true with switch off, want false")
	}
	switches[0].Toggle()
	d.ApplyRule(switches)
	if !d.TryOpen() {
		t.Fatal("TryOpen() = false with rule satisfied, want true")
	}
	switches[0].Toggle()
	d.ApplyRule(switches)
	if !d.IsOpen() || !d.TryOpen() {
		t.Error("door closed again after switch toggle, want it to stay open")
	}
}

func TestDoor_OpensOnlyWithKeysAndSwitch(t *testing.T) {
	for _, keys := range []int{0, 1} {
		for _, switchOn := range []bool{false, true} {
			d := NewDoor(world.Pt(0, 0), 2)
			d.ApplyRules(1, keys, false, RuleAllOn)
			d.ApplyRule(linkedSwitches(1, switchOn))
			want := keys == 0 && switchOn
			if got := d.TryOpen(); got != want {
				t.Errorf("keys=%d switchOn=%v: TryOpen() = %v, want %v", keys, switchOn, got, want)
			}
		}
	}
}

func TestSwitchGlyph(t *testing.T) {
	sw := NewSwitch(world.Pt(0, 0), false)
	if sw.Glyph() != GlyphSwitchOff {
		t.Errorf("Glyph() = %q, want %q", sw.Glyph(), GlyphSwitchOff)
	}
	sw.Toggle()
	if sw.Glyph() != GlyphSwitchOn || !sw.On() {
		t.Errorf("after Toggle: Glyph() = %q on=%v, want %q true", sw.Glyph(), sw.On(), GlyphSwitchOn)
	}
}

func TestRuleFromCode(t *testing.T) {
	if RuleFromCode(0) != RuleAllOn || RuleFromCode(1) != RuleAllOff || RuleFromCode(2) != RuleNone || RuleFromCode(-3) != RuleNone {
		t.Error("RuleFromCode mapping mismatch")
	}
}

func TestDoorElementKinds(t *testing.T) {
	elems := []DoorElement{NewDoor(world.Pt(1, 2), 3), NewSwitch(world.Pt(4, 5), true)}
	wantGlyphs := []byte{'3', GlyphSwitchOn}
	for i, e := range elems {
		if e.Glyph() != wantGlyphs[i] {
			t.Errorf("elem %d Glyph() = %q, want %q", i, e.Glyph(), wantGlyphs[i])
		}
	}
}
