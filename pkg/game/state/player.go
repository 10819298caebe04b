package state

import (
	"advworld/pkg/engine/world"
	"advworld/pkg/game/entities"
)

// Player tuning
const (
	InitialLives        = 3
	RespawnDelay        = 20 // ticks before a dead player returns
	ResetRespawnDelay   = 5  // respawn countdown after a room reset
	DefaultSpeed        = 1
	MaxAccelerationStep = 2 // forced step plus one side step
)

// Player glyphs
const (
	GlyphPlayer1 byte = '$'
	GlyphPlayer2 byte = '&'
)

// Player is one of the two agents moving through the rooms.
type Player struct {
	ID    int
	Glyph byte

	pos   world.Point
	prev  world.Point
	start world.Point

	dir        world.Direction
	forcedDir  world.Direction
	speed      int
	accelTimer int

	inventory entities.Item
	lives     int
	score     int

	dead         bool
	respawnTimer int

	afterDispose bool
	pushing      bool
	compression  int

	teleportGuard world.Point
	guarded       bool

	room      int
	roomsDone int
	finished  bool
}

// NewPlayer creates a player ready for a new game
func NewPlayer(id int, glyph byte) *Player {
	p := &Player{ID: id, Glyph: glyph}
	p.InitForNewGame()
	return p
}

// InitForNewGame restores lives, score and progress
func (p *Player) InitForNewGame() {
	p.lives = InitialLives
	p.score = 0
	p.room = -1
	p.roomsDone = 0
	p.finished = false
	p.prev = world.Point{}
	p.ClearInventory()
	p.ResetState()
}

// ResetState returns the player to its start position with no momentum.
func (p *Player) ResetState() {
	p.dir = world.Stay
	p.forcedDir = world.Stay
	p.speed = DefaultSpeed
	p.accelTimer = 0
	p.pushing = false
	p.dead = false
	p.respawnTimer = ResetRespawnDelay
	p.compression = 0
	p.guarded = false
	p.pos = p.start
	p.prev = p.start
}

// ResetForRoom is ResetState plus an emptied inventory, used when a room restarts
func (p *Player) ResetForRoom() {
	p.ResetState()
	p.ClearInventory()
	p.afterDispose = false
}

func (p *Player) Pos() world.Point { return p.pos }
func (p *Player) PrevPos() world.Point { return p.prev }
func (p *Player) StartPos() world.Point { return p.start }
func (p *Player) Dir() world.Direction { return p.dir }
func (p *Player) ForcedDir() world.Direction { return p.forcedDir }
func (p *Player) Speed() int { return p.speed }
func (p *Player) AccelTimer() int { return p.accelTimer }
func (p *Player) Lives() int { return p.lives }
func (p *Player) Score() int { return p.score }
func (p *Player) Dead() bool { return p.dead }
func (p *Player) Room() int { return p.room }
func (p *Player) RoomsDone() int { return p.roomsDone }
func (p *Player) Finished() bool { return p.finished }
func (p *Player) Pushing() bool { return p.pushing }
func (p *Player) Compression() int { return p.compression }
func (p *Player) AfterDispose() bool { return p.afterDispose }

// SetStartPos moves the player and makes p its respawn point
func (p *Player) SetStartPos(pos world.Point) {
	p.start = pos
	p.pos = pos
	p.prev = pos
}

func (p *Player) SetPos(pos world.Point) { p.pos = pos }
func (p *Player) SnapshotPrev() { p.prev = p.pos }
func (p *Player) SetDir(d world.Direction) { p.dir = d }
func (p *Player) SetPushing(v bool) { p.pushing = v }
func (p *Player) SetRoom(id int) { p.room = id }
func (p *Player) SetFinished(v bool) { p.finished = v }
func (p *Player) SetAfterDispose(v bool) { p.afterDispose = v }
func (p *Player) IncRoomsDone() { p.roomsDone++ }
func (p *Player) AddScore(n int) { p.score += n }
func (p *Player) AddCompression() { p.compression++ }
func (p *Player) ResetCompression() { p.compression = 0 }

// RequestDir applies a movement request. While accelerating the player may
// only side-step: Stay, the forced direction and its opposite are ignored.
func (p *Player) RequestDir(d world.Direction) {
	if d != world.Stay && !d.IsCardinal() {
		return
	}
	if p.IsAccelerating() {
		if d == world.Stay || d == p.forcedDir || world.AreOpposite(d, p.forcedDir) {
			return
		}
	}
	p.dir = d
}

// NextPos is the cell a normal step leads to
func (p *Player) NextPos() world.Point {
	return p.pos.Next(p.dir)
}

// MoveTo commits a step; leaving the cell re-enables pickups.
func (p *Player) MoveTo(next world.Point) {
	if next != p.pos {
		p.afterDispose = false
	}
	p.pos = next
}

// IsAccelerating reports whether a spring launch is still in effect
func (p *Player) IsAccelerating() bool { return p.accelTimer > 0 }

// Accelerate starts a forced movement of the given force
func (p *Player) Accelerate(force int, dir world.Direction) {
	p.speed = force
	p.accelTimer = force * force
	p.forcedDir = dir
	p.dir = dir
}

// StopAcceleration drops all momentum
func (p *Player) StopAcceleration() {
	p.accelTimer = 0
	p.forcedDir = world.Stay
	p.speed = DefaultSpeed
}

// TickAcceleration decays the launch by one tick
func (p *Player) TickAcceleration() {
	if p.accelTimer <= 0 {
		return
	}
	p.accelTimer--
	if p.accelTimer == 0 {
		p.speed = DefaultSpeed
		p.forcedDir = world.Stay
	}
}

// AccelerationSubSteps returns the cells of one accelerated pass: the forced
// step, then a side step when the requested direction is perpendicular.
func (p *Player) AccelerationSubSteps() []world.Point {
	if !p.IsAccelerating() || p.forcedDir == world.Stay {
		return nil
	}
	steps := make([]world.Point, 0, MaxAccelerationStep)
	forced := p.pos.Next(p.forcedDir)
	steps = append(steps, forced)
	if p.dir != world.Stay && p.dir != p.forcedDir && !world.AreOpposite(p.dir, p.forcedDir) {
		steps = append(steps, forced.Next(p.dir))
	}
	return steps
}

// TransferMomentum hands an accelerating player's launch to the one it bumped.
func (p *Player) TransferMomentum(other *Player) {
	if !p.IsAccelerating() {
		return
	}
	other.speed = p.speed
	other.accelTimer = p.accelTimer
	other.forcedDir = p.forcedDir
	other.dir = p.forcedDir
}

// Inventory returns the held item
func (p *Player) Inventory() entities.Item { return p.inventory }

// InventoryEmpty reports whether the player holds nothing
func (p *Player) InventoryEmpty() bool { return p.inventory.IsNone() }

// Holds reports whether the held item is of kind k
func (p *Player) Holds(k entities.ItemKind) bool { return p.inventory.Kind == k }

// Collect stores item, replacing whatever was held
func (p *Player) Collect(item entities.Item) { p.inventory = item }

// ClearInventory empties the hands
func (p *Player) ClearInventory() { p.inventory = entities.NoItem }

// CheckTeleportGuard reports whether the player just arrived at its current
// cell by teleport. The guard is spent by the check.
func (p *Player) CheckTeleportGuard() bool {
	if p.guarded && p.pos == p.teleportGuard {
		p.guarded = false
		return true
	}
	return false
}

// TeleportTo relocates the player and guards the arrival cell
func (p *Player) TeleportTo(dest world.Point) {
	p.pos = dest
	p.teleportGuard = dest
	p.guarded = true
}

// LoseLife kills the player and reports whether any lives remain
func (p *Player) LoseLife() bool {
	p.lives--
	p.dead = true
	p.respawnTimer = RespawnDelay
	return p.lives > 0
}

// Respawn advances the countdown and revives the player at its start cell.
func (p *Player) Respawn() {
	if !p.dead {
		return
	}
	if p.respawnTimer > 0 {
		p.respawnTimer--
		return
	}
	p.pos = p.start
	p.dead = false
	p.respawnTimer = RespawnDelay
}

// RespawnTimer returns the remaining ticks until revival
func (p *Player) RespawnTimer() int { return p.respawnTimer }
