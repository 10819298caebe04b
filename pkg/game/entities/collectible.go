package entities

import "advworld/pkg/engine/world"

// ItemKind identifies the collectible types a player can hold
type ItemKind int

const (
	ItemNone ItemKind = iota
	ItemKey
	ItemBomb
	ItemTorch
)

// Glyph returns the board glyph of the kind, or a space for ItemNone
func (k ItemKind) Glyph() byte {
	switch k {
	case ItemKey:
		return GlyphKey
	case ItemBomb:
		return GlyphBomb
	case ItemTorch:
		return GlyphTorch
	default:
		return GlyphEmpty
	}
}

func (k ItemKind) String() string {
	switch k {
	case ItemKey:
		return "Key"
	case ItemBomb:
		return "Bomb"
	case ItemTorch:
		return "Torch"
	default:
		return "None"
	}
}

// Item names one collectible slot of a room: its kind and its index in the
// room's per-kind collection.
type Item struct {
	Kind  ItemKind
	Index int
}

// NoItem is the empty inventory
var NoItem = Item{Kind: ItemNone, Index: -1}

// IsNone reports whether the item refers to nothing
func (i Item) IsNone() bool {
	return i.Kind == ItemNone || i.Index < 0
}

// Collectible is implemented by *Key, *Bomb and *Torch only.
type Collectible interface {
	Item() Item
	Pos() world.Point
	Glyph() byte
	Active() bool
	Deactivate()
	// CanPickUp reports whether a player may take the item right now
	CanPickUp() bool
	// Dispose puts a held item back into the room at p
	Dispose(p world.Point)

	collectible()
}

type collectibleBase struct {
	item   Item
	pos    world.Point
	active bool
}

func (c *collectibleBase) Item() Item { return c.item }
func (c *collectibleBase) Pos() world.Point { return c.pos }
func (c *collectibleBase) Glyph() byte { return c.item.Kind.Glyph() }
func (c *collectibleBase) Active() bool { return c.active }
func (c *collectibleBase) Deactivate() { c.active = false }
func (c *collectibleBase) CanPickUp() bool { return true }
func (c *collectibleBase) collectible() {}
func (c *collectibleBase) Dispose(p world.Point) {
	c.pos = p
	c.active = true
}

// Key opens the door whose id matches DoorID
type Key struct {
	collectibleBase
	DoorID int
}

// NewKey creates a key lying at pos; index is its slot in the room
func NewKey(pos world.Point, index int) *Key {
	return &Key{
		collectibleBase: collectibleBase{item: Item{Kind: ItemKey, Index: index}, pos: pos, active: true},
		DoorID:          -1,
	}
}

// Torch lights up dark areas around the player holding it
type Torch struct {
	collectibleBase
}

// NewTorch creates a torch lying at pos
func NewTorch(pos world.Point, index int) *Torch {
	return &Torch{collectibleBase{item: Item{Kind: ItemTorch, Index: index}, pos: pos, active: true}}
}
