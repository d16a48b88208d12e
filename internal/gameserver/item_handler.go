package gameserver

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/world"
)

// Interactive item identifiers.
const (
	ItemRustyKey = "rusty_key"
	ItemTorch    = "torch"
	ItemSword    = "sword"
)

// itemUseFunc applies one item's effect to the occupied room and the session.
type itemUseFunc func(m *Manager, room world.Room)

// itemHandlers is the closed set of usable items. Any other item can be
// carried but not used.
var itemHandlers = map[string]itemUseFunc{
	ItemRustyKey: useRustyKey,
	ItemTorch:    useTorch,
	ItemSword:    useSword,
}

// UsableItems returns the identifiers with a use effect.
func UsableItems() []string {
	return []string{ItemRustyKey, ItemTorch, ItemSword}
}

// TakeItem moves one item named name from the occupied room into the inventory.
//
// Postcondition: At most one occurrence is removed from the room and appended
// to the inventory. Nothing changes when the room is too dark or lacks the item.
func (m *Manager) TakeItem(name string) {
	room, ok := m.currentRoom()
	if !ok {
		return
	}

	if !m.state.CanSee(room.IsDark) {
		m.say(msgTooDarkToGet)
		return
	}

	if !room.RemoveItem(name) {
		m.sayf(msgNotHereFmt, name)
		return
	}
	m.commit(room)
	m.state.Inventory.Add(name)
	m.logger.Debug("item taken", zap.String("item", name), zap.String("room", room.ID))
	m.sayf(msgPickedUpFmt, name)
}

// UseItem applies the effect of a carried item. Items are never consumed.
//
// Postcondition: Emits "You don't have a <name>." without any mutation when
// name is not carried, and "You can't use the <name>." for items without an effect.
func (m *Manager) UseItem(name string) {
	if !m.state.Inventory.Contains(name) {
		m.sayf(msgNotCarriedFmt, name)
		return
	}

	use, ok := itemHandlers[name]
	if !ok {
		m.sayf(msgCannotUseFmt, name)
		return
	}

	room, ok := m.currentRoom()
	if !ok {
		return
	}
	m.logger.Debug("item used", zap.String("item", name), zap.String("room", room.ID))
	use(m, room)
}

func useRustyKey(m *Manager, room world.Room) {
	if !room.AcceptsKey(ItemRustyKey) {
		m.say(msgNotHere)
		return
	}
	room.Locked = false
	room.Description = UnlockedDescription
	m.commit(room)
	m.say(msgKeyTurns)
}

func useTorch(m *Manager, _ world.Room) {
	if m.state.TorchLit {
		m.say(msgTorchAlready)
		return
	}
	m.state.TorchLit = true
	m.say(msgTorchLit)
}

func useSword(m *Manager, room world.Room) {
	if !room.HasEnemy() {
		m.say(msgSwingAir)
		return
	}
	enemy := room.Enemy
	room.Enemy = ""
	room.Description = DefeatedDescription
	m.commit(room)
	m.sayf(msgSwingFmt, enemy)
	m.sayf(msgDefeatedFmt, enemy)
}
