package gameserver

import (
	"fmt"
	"strings"
)

// RenderStatus describes the occupied room, the exits, the inventory and the
// available commands. It does not modify any state.
//
// Postcondition: In a dark room without a lit torch the description, enemy and
// items are replaced by a single darkness notice. Exits, inventory and the help
// line are always present. A missing current room renders nothing.
func (m *Manager) RenderStatus() []Line {
	room, ok := m.currentRoom()
	if !ok {
		return nil
	}

	lines := []Line{
		{Tone: ToneText, Text: ""},
		{Tone: ToneRule, Text: statusRuleText},
	}

	if !m.state.CanSee(room.IsDark) {
		lines = append(lines, Line{Tone: ToneDanger, Text: msgPitchBlack})
	} else {
		lines = append(lines, Line{Tone: ToneText, Text: room.Description})
		if room.HasEnemy() {
			lines = append(lines, Line{Tone: ToneDanger, Text: fmt.Sprintf(msgDangerFmt, room.Enemy)})
		}
		if len(room.Items) > 0 {
			lines = append(lines, Line{Tone: ToneText, Text: fmt.Sprintf(msgYouSeeFmt, strings.Join(room.Items, ", "))})
		}
	}

	exits := make([]string, 0, len(room.Exits))
	for _, dir := range room.ExitDirections() {
		exits = append(exits, string(dir))
	}

	return append(lines,
		Line{Tone: ToneRule, Text: statusRuleText},
		Line{Tone: ToneText, Text: fmt.Sprintf(msgExitsFmt, strings.Join(exits, ", "))},
		Line{Tone: ToneText, Text: fmt.Sprintf(msgInventFmt, m.state.Inventory)},
		Line{Tone: ToneText, Text: m.commands.HelpLine()},
	)
}

// PrintStatus emits the status block to the sink.
func (m *Manager) PrintStatus() {
	for _, l := range m.RenderStatus() {
		m.out.Emit(l)
	}
}
