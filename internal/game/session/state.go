// Package session holds the mutable state of a single play session.
package session

import (
	"github.com/google/uuid"
)

// State is the player's side of a game: where they are, what they carry,
// and the session-wide flags. It is owned by one game manager.
type State struct {
	// ID identifies the session in logs.
	ID uuid.UUID
	// RoomID is the room the player occupies.
	RoomID string
	// Inventory holds carried items in acquisition order.
	Inventory *Inventory
	// TorchLit is set once the torch is lit and lights every dark room from then on.
	TorchLit bool
	// Playing is cleared to end the game loop.
	Playing bool
}

// New creates a State positioned in startRoom with an empty inventory.
//
// Precondition: startRoom must name a room in the world.
// Postcondition: Playing is true and TorchLit is false.
func New(startRoom string) *State {
	return &State{
		ID:        uuid.New(),
		RoomID:    startRoom,
		Inventory: NewInventory(),
		Playing:   true,
	}
}

// CanSee reports whether a room with the given darkness is visible.
func (s *State) CanSee(roomIsDark bool) bool {
	return !roomIsDark || s.TorchLit
}

// End stops the game loop.
func (s *State) End() {
	s.Playing = false
}
