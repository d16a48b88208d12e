// Package gameserver implements the game manager: it owns the world and the
// session state and turns player commands into state changes and game text.
package gameserver

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/game/command"
	"github.com/cory-johannsen/adventure/internal/game/session"
	"github.com/cory-johannsen/adventure/internal/game/world"
)

// Rules holds the world-independent rule parameters.
type Rules struct {
	// WinningRoom is the room whose entry ends the game with an escape.
	WinningRoom string
	// GuardedDirection is the exit blocked by a locked door or an enemy.
	// config.GuardAllDirections guards every exit.
	GuardedDirection string
}

// DefaultRules returns the rules of the bundled escape: reaching "freedom"
// wins and only the north exit is guarded.
func DefaultRules() Rules {
	return Rules{WinningRoom: "freedom", GuardedDirection: string(world.North)}
}

// RulesFromConfig builds Rules from the game configuration.
func RulesFromConfig(cfg config.GameConfig) Rules {
	return Rules{WinningRoom: cfg.WinningRoom, GuardedDirection: config.NormalizeDirection(cfg.GuardedDirection)}
}

// IsWinningRoom reports whether entering roomID wins the game.
func (r Rules) IsWinningRoom(roomID string) bool {
	return roomID == r.WinningRoom
}

// Guards reports whether locks and enemies block travel in dir.
func (r Rules) Guards(dir world.Direction) bool {
	return r.GuardedDirection == config.GuardAllDirections || string(dir) == r.GuardedDirection
}

// Manager runs one single-player game. It is not safe for concurrent use;
// commands are processed one at a time.
type Manager struct {
	world    *world.World
	state    *session.State
	rules    Rules
	commands *command.Registry
	out      Sink
	logger   *zap.Logger
}

// NewManager creates a Manager that takes ownership of w and st.
//
// Precondition: w, st and out must be non-nil; st.RoomID should name a room in w.
// Postcondition: Returns a Manager ready to dispatch commands. A nil logger disables logging.
func NewManager(w *world.World, st *session.State, rules Rules, out Sink, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		world:    w,
		state:    st,
		rules:    rules,
		commands: command.DefaultRegistry(),
		out:      out,
		logger:   logger.With(zap.String("session", st.ID.String())),
	}
}

// Playing reports whether the game loop should continue.
func (m *Manager) Playing() bool {
	return m.state.Playing
}

// State returns the session state.
func (m *Manager) State() *session.State {
	return m.state
}

// World returns the world.
func (m *Manager) World() *world.World {
	return m.world
}

// Dispatch parses one line of input and runs the matching action.
//
// Postcondition: Blank input does nothing; an unknown verb reports that it was
// not understood and leaves the state unchanged.
func (m *Manager) Dispatch(line string) {
	parsed := command.Parse(line)
	if parsed.Verb == "" {
		return
	}

	cmd, ok := m.commands.Resolve(parsed.Verb)
	if !ok {
		m.logger.Debug("unknown verb", zap.String("verb", parsed.Verb))
		m.say(msgNotUnderstood)
		return
	}

	m.logger.Debug("dispatching command",
		zap.String("command", cmd.Name),
		zap.String("noun", parsed.Noun),
		zap.String("room", m.state.RoomID),
	)

	switch cmd.Handler {
	case command.HandlerMove:
		m.Move(parsed.Noun)
	case command.HandlerTake:
		m.TakeItem(parsed.Noun)
	case command.HandlerUse:
		m.UseItem(parsed.Noun)
	case command.HandlerQuit:
		m.logger.Info("player quit", zap.String("room", m.state.RoomID))
		m.state.End()
	}
}

// currentRoom returns a copy of the occupied room. A missing room is an
// invariant violation: it is logged and callers treat it as a no-op.
func (m *Manager) currentRoom() (world.Room, bool) {
	room, ok := m.world.Room(m.state.RoomID)
	if !ok {
		m.logger.Warn("current room not found", zap.String("room", m.state.RoomID))
	}
	return room, ok
}

// commit writes a modified room back into the world.
func (m *Manager) commit(room world.Room) {
	if err := m.world.Put(room); err != nil {
		m.logger.Warn("writing room back", zap.String("room", room.ID), zap.Error(err))
	}
}

func (m *Manager) emit(tone Tone, text string) {
	m.out.Emit(Line{Tone: tone, Text: text})
}

func (m *Manager) say(text string) {
	m.emit(ToneText, text)
}

func (m *Manager) sayf(format string, args ...any) {
	m.emit(ToneText, fmt.Sprintf(format, args...))
}
