// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/room"
)

const roomDumpFilename = "rooms.txt"

// DumpRooms writes every room as its board followed by the entities built
// from it. Rooms are numbered from 1.
// Format is human-readable (sections, key: value, consistent structure).
func DumpRooms(w io.Writer, rooms []*room.Room) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "=== ROOM DUMP DEBUG (boards, rules, entities) ===")
	fmt.Fprintf(bw, "rooms: %d\n", len(rooms))
	fmt.Fprintln(bw, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)")
	for i, rm := range rooms {
		fmt.Fprintln(bw)
		dumpRoom(bw, i+1, rm)
	}
	return bw.Flush()
}

func dumpRoom(w io.Writer, id int, rm *room.Room) {
	fmt.Fprintf(w, "--- Room %d ---\n", id)
	fmt.Fprintf(w, "source: %s\n", rm.Source)
	if area, ok := rm.Legend(); ok {
		fmt.Fprintf(w, "legend: %v-%v\n", area.Min, area.Max)
	}
	for _, area := range rm.DarkAreas() {
		fmt.Fprintf(w, "dark: %v-%v\n", area.Min, area.Max)
	}
	fmt.Fprintln(w)

	// --- Board ---
	for y := 0; y < world.Height; y++ {
		fmt.Fprintf(w, "%s\n", rm.Row(y))
	}
	fmt.Fprintln(w)

	// --- Entities ---
	for _, d := range rm.Doors() {
		st := d.Status()
		fmt.Fprintf(w, "door: pos=%v dest=%d id=%d keys_left=%d switch_ok=%v rule=%v open=%v\n",
			d.Pos(), st.Dest, st.DoorID, st.KeysLeft, st.SwitchOK, d.Rule(), st.Open)
	}
	for _, k := range rm.Keys() {
		fmt.Fprintf(w, "key: pos=%v door=%d\n", k.Pos(), k.DoorID)
	}
	for _, s := range rm.Switches() {
		fmt.Fprintf(w, "switch: pos=%v door=%d on=%v\n", s.Pos(), s.DoorID(), s.On())
	}
	for _, b := range rm.Bombs() {
		fmt.Fprintf(w, "bomb: pos=%v\n", b.Pos())
	}
	for _, t := range rm.Torches() {
		fmt.Fprintf(w, "torch: pos=%v\n", t.Pos())
	}
	for _, s := range rm.Springs() {
		fmt.Fprintf(w, "spring: base=%v dir=%v size=%d\n", s.Base(), s.Dir(), s.FullSize())
	}
	for _, o := range rm.Obstacles() {
		fmt.Fprintf(w, "obstacle: cells=%d body=%v\n", o.Size(), o.Body())
	}
	for _, t := range rm.Teleporters() {
		fmt.Fprintf(w, "teleport: %v <-> %v\n", t.A, t.B)
	}
	for _, rd := range rm.Riddles() {
		fmt.Fprintf(w, "riddle: pos=%v question=%q\n", rd.Pos, rd.Question)
	}
}

// DumpRoomsToFile writes the dump to rooms.txt in the working directory and
// returns its absolute path.
func DumpRoomsToFile(rooms []*room.Room) (string, error) {
	absPath, err := filepath.Abs(roomDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpRooms(f, rooms); err != nil {
		return "", err
	}
	return absPath, nil
}
