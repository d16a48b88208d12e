package gameserver

import (
	"fmt"
	"io"
)

// Tone classifies a line of game text so frontends can style it.
type Tone int

// Line tones.
const (
	ToneText Tone = iota
	ToneRule
	ToneDanger
	ToneVictory
)

// Line is one line of game text without its trailing newline.
type Line struct {
	Tone Tone
	Text string
}

// Sink receives game text one line at a time.
type Sink interface {
	Emit(Line)
}

// WriterSink writes each line's text followed by a newline.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a Sink that writes plain text to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes l.Text and a newline. Write errors are dropped; the game has nowhere to report them.
func (s *WriterSink) Emit(l Line) {
	_, _ = fmt.Fprintln(s.w, l.Text)
}
