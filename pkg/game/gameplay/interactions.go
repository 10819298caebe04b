package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"advworld/pkg/game/entities"
	"advworld/pkg/game/state"
)

// handleDoor runs a door visit for a player who just stepped on a door.
func (r *Resolver) handleDoor(p *state.Player) {
	rm := r.room()
	d := rm.DoorAt(p.Pos())
	if d == nil {
		return
	}
	if d.IsOpen() {
		r.moveRoom(p, d.Destination())
		return
	}

	if d.NeedsKey() && r.holdsMatchingKey(p, d) {
		p.ClearInventory()
		d.UseKey()
		r.addScore(p, ScoreKey)
	}

	if d.TryOpen() {
		r.moveRoom(p, d.Destination())
		return
	}

	status := d.Status()
	r.publish(Event{Kind: EventDoorStatus, Player: p.ID, Room: p.Room(), Door: status})
	r.game.AddMessage(DoorStatusText(status))
}

// DoorStatusText renders the lock state of a closed door
func DoorStatusText(st entities.DoorStatus) string {
	sw := gotext.Get("OK")
	if !st.SwitchOK {
		sw = gotext.Get("REQUIRED")
	}
	return gotext.Get("Door Locked: %d keys left | Switch: %s", st.KeysLeft, sw)
}

func (r *Resolver) holdsMatchingKey(p *state.Player, d *entities.Door) bool {
	if !p.Holds(entities.ItemKey) {
		return false
	}
	k, ok := r.room().Stored(p.Inventory()).(*entities.Key)
	return ok && k.DoorID >= 0 && k.DoorID == d.DoorID()
}

// handleSwitch toggles the switch under the player and re-evaluates its door.
func (r *Resolver) handleSwitch(p *state.Player) {
	rm := r.room()
	sw := rm.SwitchAt(p.Pos())
	if sw == nil {
		return
	}
	sw.Toggle()
	rm.SetGlyph(sw.Pos(), sw.Glyph())
	if sw.DoorID() < 0 {
		return
	}
	r.updateDoorBySwitches(sw.DoorID())
}

// updateDoorBySwitches recomputes the switch condition of door id. The id
// must exist: switch links are checked on load and cut when a door is destroyed.
func (r *Resolver) updateDoorBySwitches(id int) {
	rm := r.room()
	rm.DoorByID(id).ApplyRule(rm.Switches())
}

// handleCollectibles picks up the item under an empty-handed player.
func (r *Resolver) handleCollectibles(p *state.Player) {
	if !p.InventoryEmpty() || p.AfterDispose() {
		return
	}
	if item := r.game.Rooms[p.Room()].TakeItemAt(p.Pos()); item != nil {
		p.Collect(item.Item())
	}
}

// Dispose drops the held item on the player's cell. Dropping onto anything
// but an empty cell is refused. Bombs are armed by the drop.
func (r *Resolver) Dispose(p *state.Player) bool {
	if p.InventoryEmpty() || p.Dead() || p.Finished() {
		return false
	}
	rm := r.game.Rooms[p.Room()]
	if !rm.IsEmpty(p.Pos()) {
		return false
	}
	item := rm.Stored(p.Inventory())
	if item == nil {
		return false
	}
	rm.DropItem(item, p.Pos())
	p.ClearInventory()
	p.SetAfterDispose(true)
	return true
}
