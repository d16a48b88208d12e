// Package world provides the game world model: rooms, exits, and the room collection.
package world

import (
	"maps"
	"slices"
)

// Direction names an exit out of a room.
type Direction string

// Compass directions used by the bundled worlds. Exits may use any other name.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Room is a location in the game world. Rooms are values: callers fetch a copy
// from the World, modify it, and write it back with World.Put.
type Room struct {
	// ID uniquely identifies this room within the world.
	ID string
	// Description is the text shown when the room is visible. Mutable during play.
	Description string
	// Items lists item identifiers lying in the room, in display order.
	Items []string
	// Exits maps a direction to the ID of the room it leads to.
	Exits map[Direction]string
	// Locked blocks the guarded exit until the matching key is used.
	Locked bool
	// KeyID is the item that unlocks this room. Empty means no key fits.
	KeyID string
	// IsDark hides the room contents unless a light source is active. Fixed at load.
	IsDark bool
	// Enemy names a creature present in the room. Empty means none.
	Enemy string
}

// Clone returns a deep copy of r.
//
// Postcondition: mutating the returned room's Items or Exits never affects r.
func (r Room) Clone() Room {
	c := r
	c.Items = slices.Clone(r.Items)
	c.Exits = maps.Clone(r.Exits)
	return c
}

// HasEnemy reports whether a creature is present.
func (r Room) HasEnemy() bool {
	return r.Enemy != ""
}

// AcceptsKey reports whether using itemID would unlock this room.
func (r Room) AcceptsKey(itemID string) bool {
	return r.Locked && r.KeyID != "" && r.KeyID == itemID
}

// ExitFor returns the target room ID for the given direction.
//
// Postcondition: Returns (target, true) if an exit exists, or ("", false) otherwise.
func (r Room) ExitFor(dir Direction) (string, bool) {
	target, ok := r.Exits[dir]
	return target, ok
}

// ExitDirections returns the exit directions sorted by name.
func (r Room) ExitDirections() []Direction {
	return slices.Sorted(maps.Keys(r.Exits))
}

// RemoveItem removes the first occurrence of item from the room.
//
// Postcondition: Returns true and shortens Items by one if item was present;
// otherwise Items is unchanged.
func (r *Room) RemoveItem(item string) bool {
	idx := slices.Index(r.Items, item)
	if idx < 0 {
		return false
	}
	r.Items = slices.Delete(r.Items, idx, idx+1)
	return true
}
