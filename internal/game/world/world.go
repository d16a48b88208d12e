package world

import (
	"fmt"
	"slices"
)

// World holds every room keyed by ID together with the starting room.
// Its set of rooms is fixed at construction; only room contents change during play.
type World struct {
	rooms     map[string]Room
	order     []string
	startRoom string
}

// DanglingExit describes an exit whose target is not a room in the world.
type DanglingExit struct {
	RoomID    string
	Direction Direction
	Target    string
}

// New builds a World from rooms in declaration order.
//
// Precondition: rooms should be non-empty.
// Postcondition: Returns a World indexing every room by ID, or an error on an
// empty or duplicate room ID or an unknown start room. Exit targets are not checked.
func New(rooms []Room, startRoom string) (*World, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("world must contain at least one room")
	}
	w := &World{
		rooms:     make(map[string]Room, len(rooms)),
		order:     make([]string, 0, len(rooms)),
		startRoom: startRoom,
	}
	for i, r := range rooms {
		if r.ID == "" {
			return nil, fmt.Errorf("room %d: id must not be empty", i)
		}
		if _, exists := w.rooms[r.ID]; exists {
			return nil, fmt.Errorf("duplicate room ID %q", r.ID)
		}
		w.rooms[r.ID] = r.Clone()
		w.order = append(w.order, r.ID)
	}
	if startRoom == "" {
		return nil, fmt.Errorf("starting room must not be empty")
	}
	if _, ok := w.rooms[startRoom]; !ok {
		return nil, fmt.Errorf("starting room %q not found in rooms", startRoom)
	}
	return w, nil
}

// Room returns a copy of the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (Room{}, false) otherwise.
// Changes to the returned room are not visible until written back with Put.
func (w *World) Room(id string) (Room, bool) {
	r, ok := w.rooms[id]
	if !ok {
		return Room{}, false
	}
	return r.Clone(), true
}

// Put replaces the stored room that has r's ID.
//
// Postcondition: Returns an error and leaves the world unchanged if r.ID is unknown.
func (w *World) Put(r Room) error {
	if _, ok := w.rooms[r.ID]; !ok {
		return fmt.Errorf("room %q not found", r.ID)
	}
	w.rooms[r.ID] = r.Clone()
	return nil
}

// Has reports whether id names a room.
func (w *World) Has(id string) bool {
	_, ok := w.rooms[id]
	return ok
}

// StartRoom returns the starting room ID.
func (w *World) StartRoom() string {
	return w.startRoom
}

// RoomCount returns the number of rooms.
func (w *World) RoomCount() int {
	return len(w.rooms)
}

// RoomIDs returns room IDs in declaration order.
func (w *World) RoomIDs() []string {
	return slices.Clone(w.order)
}

// DanglingExits lists every exit whose target is not a room in the world,
// in room declaration order and sorted by direction within a room.
func (w *World) DanglingExits() []DanglingExit {
	var out []DanglingExit
	for _, id := range w.order {
		room := w.rooms[id]
		for _, dir := range room.ExitDirections() {
			target := room.Exits[dir]
			if _, ok := w.rooms[target]; !ok {
				out = append(out, DanglingExit{RoomID: id, Direction: dir, Target: target})
			}
		}
	}
	return out
}

// ValidateExits checks that every exit target resolves to a known room.
//
// Postcondition: Returns nil if all exits resolve, or an error naming the first dangling target.
func (w *World) ValidateExits() error {
	dangling := w.DanglingExits()
	if len(dangling) == 0 {
		return nil
	}
	d := dangling[0]
	return fmt.Errorf("room %q: exit %q targets unknown room %q", d.RoomID, d.Direction, d.Target)
}
