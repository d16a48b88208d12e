package console

import (
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/gameserver"
)

// toneColors maps a line tone to its highlight. Plain text has no entry.
var toneColors = map[gameserver.Tone]string{
	gameserver.ToneRule:    Dim,
	gameserver.ToneDanger:  BrightRed,
	gameserver.ToneVictory: Bold + BrightGreen,
}

// Sink renders game lines to a terminal, wrapping and coloring them per the
// console configuration.
type Sink struct {
	w     io.Writer
	width int
	color bool
}

// NewSink creates a Sink writing to w.
//
// Precondition: w must be non-nil.
func NewSink(w io.Writer, cfg config.ConsoleConfig) *Sink {
	return &Sink{w: w, width: cfg.WrapWidth, color: cfg.Color}
}

// Emit writes one rendered line followed by a newline.
func (s *Sink) Emit(l gameserver.Line) {
	_, _ = io.WriteString(s.w, s.Render(l)+"\n")
}

// Render returns the text of l as it appears on the terminal, without the trailing newline.
//
// Postcondition: With wrapping enabled no output line is wider than the wrap
// width unless a single word is. With color disabled the result has no escape sequences.
func (s *Sink) Render(l gameserver.Line) string {
	text := l.Text
	if s.width > 0 {
		text = wordwrap.String(text, s.width)
	}
	if !s.color {
		return text
	}
	color, ok := toneColors[l.Tone]
	if !ok {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = Colorize(color, line)
	}
	return strings.Join(lines, "\n")
}
