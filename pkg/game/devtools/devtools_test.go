package devtools

import (
	"bytes"
	"strings"
	"testing"

	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
	"advworld/pkg/game/renderer"
	"advworld/pkg/game/room"
	"advworld/pkg/game/state"
)

func TestDumpRooms(t *testing.T) {
	rm := room.New()
	rm.Source = "adv-world_01.screen"
	rm.SetGlyph(world.Pt(4, 2), '3')
	rm.AddDoor(entities.NewDoor(world.Pt(4, 2), 3))
	rm.SetGlyph(world.Pt(6, 2), entities.GlyphKey)
	rm.AddKey(entities.NewKey(world.Pt(6, 2), 0))
	rm.AddDarkArea(world.Rect{Min: world.Pt(1, 1), Max: world.Pt(5, 5)})

	var buf bytes.Buffer
	if err := DumpRooms(&buf, []*room.Room{rm, room.New()}); err != nil {
		t.Fatalf("DumpRooms() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"rooms: 2",
		"--- Room 1 ---",
		"source: adv-world_01.screen",
		"    3 K",
		"door: pos=(4,2) dest=3",
		"key: pos=(6,2) door=-1",
		"--- Room 2 ---",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump lacks %q", want)
		}
	}
}

func TestWriteScreenshotHTML(t *testing.T) {
	g := state.NewGame([]*room.Room{room.New(), room.New(), room.New()}, 1)
	g.Room().SetGlyph(world.Pt(10, 10), '<')

	var buf bytes.Buffer
	if err := WriteScreenshotHTML(&buf, renderer.BuildFrame(g, "Door Locked", false)); err != nil {
		t.Fatalf("WriteScreenshotHTML() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<div class="header">Room 1, cycle 0</div>`,
		`<span class="player">$</span>`,
		"&lt;",
		"&gt;&gt; Door Locked &lt;&lt;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page lacks %q", want)
		}
	}
}
