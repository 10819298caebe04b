package entities

import "advworld/pkg/engine/world"

// SwitchRule is the switch condition a door waits for
type SwitchRule int

const (
	RuleAllOn  SwitchRule = iota // every linked switch on
	RuleAllOff                   // every linked switch off
	RuleNone                     // switches are ignored
)

// RuleFromCode maps the numeric rule of a DOOR line; unknown codes mean RuleNone
func RuleFromCode(code int) SwitchRule {
	switch code {
	case 0:
		return RuleAllOn
	case 1:
		return RuleAllOff
	default:
		return RuleNone
	}
}

func (r SwitchRule) String() string {
	switch r {
	case RuleAllOn:
		return "AllOn"
	case RuleAllOff:
		return "AllOff"
	default:
		return "NoRule"
	}
}

// DoorElement is implemented by *Door and *Switch.
type DoorElement interface {
	Pos() world.Point
	DoorID() int
	Glyph() byte

	doorElement()
}

// DoorStatus is a snapshot of what still keeps a door shut
type DoorStatus struct {
	DoorID   int
	Dest     int
	KeysLeft int
	SwitchOK bool
	Open     bool
}

// Door leads to another room once its keys are used and its switch rule holds.
// Opening is one-way.
type Door struct {
	pos        world.Point
	id         int
	dest       int
	open       bool
	neededKeys int
	rule       SwitchRule
	keyOK      bool
	switchOK   bool
}

// NewDoor creates a door found on the board. Until a DOOR rule says
// otherwise it needs no keys and ignores switches.
func NewDoor(pos world.Point, dest int) *Door {
	return &Door{
		pos:      pos,
		dest:     dest,
		rule:     RuleNone,
		keyOK:    true,
		switchOK: true,
	}
}

func (d *Door) Pos() world.Point { return d.pos }
func (d *Door) DoorID() int { return d.id }
func (d *Door) doorElement() {}

// Glyph is the destination digit
func (d *Door) Glyph() byte { return byte('0' + d.dest) }

// Destination returns the room the door leads to
func (d *Door) Destination() int { return d.dest }

// ApplyRules configures the door from a DOOR rule line
func (d *Door) ApplyRules(id, keys int, open bool, rule SwitchRule) {
	d.id = id
	d.neededKeys = keys
	d.open = open
	d.rule = rule
	d.keyOK = keys <= 0
	d.switchOK = rule == RuleNone
}

// Rule returns the switch rule
func (d *Door) Rule() SwitchRule { return d.rule }

// NeededKeys returns how many keys are still missing
func (d *Door) NeededKeys() int { return d.neededKeys }

// NeedsKey reports whether at least one key is still missing
func (d *Door) NeedsKey() bool { return d.neededKeys > 0 }

// KeyOK reports whether all keys have been used
func (d *Door) KeyOK() bool { return d.keyOK }

// SwitchOK reports whether the switch rule currently holds
func (d *Door) SwitchOK() bool { return d.switchOK }

// IsOpen reports whether the door has been opened
func (d *Door) IsOpen() bool { return d.open }

// UseKey consumes one key. keyOK latches once no keys are missing.
func (d *Door) UseKey() {
	if d.neededKeys > 0 {
		d.neededKeys--
	}
	if d.neededKeys == 0 {
		d.keyOK = true
	}
}

// ApplyRule recomputes switchOK from every switch linked to this door.
// RuleNone doors are left alone.
func (d *Door) ApplyRule(switches []*Switch) {
	total, on := 0, 0
	for _, sw := range switches {
		if sw.DoorID() != d.id {
			continue
		}
		total++
		if sw.On() {
			on++
		}
	}
	switch d.rule {
	case RuleAllOn:
		d.switchOK = on == total
	case RuleAllOff:
		d.switchOK = on == 0
	}
}

// TryOpen opens the door if both conditions hold and reports whether it is open.
func (d *Door) TryOpen() bool {
	if !d.open && d.keyOK && d.switchOK {
		d.open = true
	}
	return d.open
}

// Status returns the door's current lock state
func (d *Door) Status() DoorStatus {
	return DoorStatus{
		DoorID:   d.id,
		Dest:     d.dest,
		KeysLeft: d.neededKeys,
		SwitchOK: d.switchOK,
		Open:     d.open,
	}
}

// Switch toggles each time a player steps on it
type Switch struct {
	pos    world.Point
	doorID int
	on     bool
}

// NewSwitch creates an unlinked switch
func NewSwitch(pos world.Point, on bool) *Switch {
	return &Switch{pos: pos, doorID: -1, on: on}
}

func (s *Switch) Pos() world.Point { return s.pos }
func (s *Switch) DoorID() int { return s.doorID }
func (s *Switch) doorElement() {}

// SetDoorID links the switch to a door
func (s *Switch) SetDoorID(id int) { s.doorID = id }

// On reports the switch state
func (s *Switch) On() bool { return s.on }

// Toggle flips the switch
func (s *Switch) Toggle() { s.on = !s.on }

// Glyph returns the on or off glyph
func (s *Switch) Glyph() byte {
	if s.on {
		return GlyphSwitchOn
	}
	return GlyphSwitchOff
}
