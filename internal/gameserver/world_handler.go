package gameserver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/game/world"
)

// Move walks the player through the exit named by direction.
//
// Precondition: direction is lower-case, as produced by command.Parse.
// Postcondition: On success the session's RoomID is the exit target; entering
// the winning room also ends the game. On rejection a single message is emitted
// and the state is unchanged.
func (m *Manager) Move(direction string) {
	room, ok := m.currentRoom()
	if !ok {
		return
	}

	dir := world.Direction(direction)
	targetID, ok := room.ExitFor(dir)
	if !ok {
		m.say(msgNoExit)
		return
	}

	target, ok := m.world.Room(targetID)
	if !ok {
		m.logger.Warn("exit targets unknown room",
			zap.String("room", room.ID),
			zap.String("direction", direction),
			zap.String("target", targetID),
		)
		return
	}

	if m.rules.Guards(dir) {
		if room.Locked {
			m.say(msgDoorLocked)
			return
		}
		if room.HasEnemy() {
			m.emit(ToneDanger, fmt.Sprintf(msgBlockedFmt, room.Enemy))
			return
		}
	}

	if !m.state.CanSee(target.IsDark) {
		m.say(msgTooDarkToGo)
		return
	}

	m.state.RoomID = target.ID
	m.logger.Debug("player moved",
		zap.String("from", room.ID),
		zap.String("to", target.ID),
		zap.String("direction", direction),
	)

	if m.rules.IsWinningRoom(target.ID) {
		m.say("")
		m.emit(ToneVictory, msgEscaped)
		m.logger.Info("player escaped", zap.String("room", target.ID))
		m.state.End()
	}
}
