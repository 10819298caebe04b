package setup

import (
	"bufio"
	"strconv"
	"strings"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/room"
)

// Rule line keywords
const (
	RuleDark     = "DARK"
	RuleDoor     = "DOOR"
	RuleKey      = "KEY"
	RuleSwitch   = "SWITCH"
	RuleTeleport = "TELEPORT"
)

// parseRules applies the rule lines after the map. Blank lines are skipped;
// offset is the number of lines already consumed.
func parseRules(name string, sc *bufio.Scanner, rm *room.Room, offset int) error {
	line := offset
	switchLines := make(map[world.Point]int)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := applyRule(rm, text); err != nil {
			return &LoadError{File: name, Line: line, Err: err}
		}
		if fields := strings.Fields(text); fields[0] == RuleSwitch {
			n, _ := ints(RuleSwitch, fields[1:], 0, 1)
			switchLines[world.Pt(n[0], n[1])] = line
		}
	}
	return linkDoors(name, rm, switchLines)
}

// linkDoors runs once every rule line is read: each linked switch must name
// an existing door, and switch rules start from the initial switch states.
func linkDoors(name string, rm *room.Room, switchLines map[world.Point]int) error {
	for _, sw := range rm.Switches() {
		if id := sw.DoorID(); id >= 0 && !rm.HasDoorID(id) {
			return loadErr(name, switchLines[sw.Pos()], ErrUnknownTarget, "switch at %v: no door with id %d", sw.Pos(), id)
		}
	}
	for _, d := range rm.Doors() {
		if d.Rule() != entities.RuleNone {
			d.ApplyRule(rm.Switches())
		}
	}
	return nil
}

// applyRule parses one rule line. Words between the numbers (ID, OPEN, KEYS,
// RULE, DOOR) are labels and only counted.
func applyRule(rm *room.Room, text string) error {
	fields := strings.Fields(text)
	kind, args := fields[0], fields[1:]

	switch kind {
	case RuleDark:
		n, err := ints(kind, args, 0, 1, 2, 3)
		if err != nil {
			return err
		}
		rm.AddDarkArea(rect(world.Pt(n[0], n[1]), world.Pt(n[2], n[3])))

	case RuleDoor:
		// DOOR x y ID id OPEN b KEYS n RULE r
		n, err := ints(kind, args, 0, 1, 3, 5, 7, 9)
		if err != nil {
			return err
		}
		p := world.Pt(n[0], n[1])
		d := rm.DoorAt(p)
		if d == nil {
			return wrapf(ErrUnknownTarget, "no door at %v", p)
		}
		d.ApplyRules(n[2], n[4], n[3] != 0, entities.RuleFromCode(n[5]))

	case RuleKey:
		// KEY x y DOOR id
		n, err := ints(kind, args, 0, 1, 3)
		if err != nil {
			return err
		}
		p := world.Pt(n[0], n[1])
		k := rm.KeyAt(p)
		if k == nil {
			return wrapf(ErrUnknownTarget, "no key at %v", p)
		}
		k.DoorID = n[2]

	case RuleSwitch:
		// SWITCH x y DOOR id
		n, err := ints(kind, args, 0, 1, 3)
		if err != nil {
			return err
		}
		p := world.Pt(n[0], n[1])
		sw := rm.SwitchAt(p)
		if sw == nil {
			return wrapf(ErrUnknownTarget, "no switch at %v", p)
		}
		sw.SetDoorID(n[2])

	case RuleTeleport:
		n, err := ints(kind, args, 0, 1, 2, 3)
		if err != nil {
			return err
		}
		return addTeleporter(rm, world.Pt(n[0], n[1]), world.Pt(n[2], n[3]))

	default:
		return wrapf(ErrBadRule, "unknown rule type %q", kind)
	}
	return nil
}

// ints reads the integer arguments at the given positions
func ints(kind string, args []string, at ...int) ([]int, error) {
	out := make([]int, len(at))
	for i, pos := range at {
		if pos >= len(args) {
			return nil, wrapf(ErrBadRule, "%s: missing argument %d", kind, pos+1)
		}
		v, err := strconv.Atoi(args[pos])
		if err != nil {
			return nil, wrapf(ErrBadRule, "%s: argument %d: %q is not a number", kind, pos+1, args[pos])
		}
		out[i] = v
	}
	return out, nil
}

func addTeleporter(rm *room.Room, a, b world.Point) error {
	for _, p := range []world.Point{a, b} {
		if p.InBounds() && rm.GlyphAt(p) != entities.GlyphTeleport {
			return wrapf(ErrTeleporter, "no teleporter at %v", p)
		}
	}
	if err := rm.AddTeleporterPair(a, b); err != nil {
		return wrapf(ErrTeleporter, "%v", err)
	}
	return nil
}

// rect normalises two corners into an inclusive rectangle
func rect(a, b world.Point) world.Rect {
	return world.Rect{
		Min: world.Pt(min(a.X, b.X), min(a.Y, b.Y)),
		Max: world.Pt(max(a.X, b.X), max(a.Y, b.Y)),
	}
}
