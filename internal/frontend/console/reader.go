package console

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/term"
)

// LineReader reads one command line after showing a prompt.
type LineReader interface {
	// ReadLine writes prompt and returns the next line without its line ending.
	// It returns io.EOF once input is exhausted.
	ReadLine(prompt string) (string, error)
}

// StreamReader reads lines from a plain stream such as a pipe or file.
type StreamReader struct {
	r   *bufio.Reader
	out io.Writer
}

// NewStreamReader creates a StreamReader that reads from r and writes prompts to out.
//
// Precondition: r and out must be non-nil.
func NewStreamReader(r io.Reader, out io.Writer) *StreamReader {
	return &StreamReader{r: bufio.NewReader(r), out: out}
}

// ReadLine writes prompt without a newline and reads up to the next line ending.
//
// Postcondition: A final line without a newline is returned with a nil error;
// the following call returns io.EOF.
func (s *StreamReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", err
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ErrInterrupted reports that the player pressed Ctrl-C at the prompt.
var ErrInterrupted = errors.New("interrupted")

// Restorer is implemented by readers that change terminal state while reading.
type Restorer interface {
	// Restore puts the terminal back into the mode it had before the read began.
	Restore() error
}

// ctrlC is the byte a raw-mode terminal sends for Ctrl-C instead of raising SIGINT.
const ctrlC = 0x03

// interruptWatcher passes input through and remembers whether Ctrl-C was typed.
type interruptWatcher struct {
	r    io.Reader
	seen atomic.Bool
}

func (w *interruptWatcher) Read(p []byte) (int, error) {
	n, err := w.r.Read(p)
	if bytes.IndexByte(p[:n], ctrlC) >= 0 {
		w.seen.Store(true)
	}
	return n, err
}

// TerminalReader edits lines on an interactive terminal with history and
// cursor keys. The terminal is in raw mode only while a line is read.
type TerminalReader struct {
	fd    int
	term  *term.Terminal
	watch *interruptWatcher

	mu  sync.Mutex
	raw *term.State // saved mode while a read is in progress
}

// NewTerminalReader creates a TerminalReader on the terminal behind in and out.
//
// Precondition: in must be a terminal (see IsTerminal).
func NewTerminalReader(in *os.File, out io.Writer) *TerminalReader {
	watch := &interruptWatcher{r: in}
	rw := struct {
		io.Reader
		io.Writer
	}{watch, out}
	return &TerminalReader{fd: int(in.Fd()), term: term.NewTerminal(rw, ""), watch: watch}
}

// ReadLine shows prompt and reads one edited line.
//
// Postcondition: The terminal mode is restored before returning. Ctrl-D on an
// empty line returns io.EOF; Ctrl-C returns ErrInterrupted.
func (t *TerminalReader) ReadLine(prompt string) (string, error) {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return "", err
	}
	t.mu.Lock()
	t.raw = state
	t.mu.Unlock()
	defer func() { _ = t.Restore() }()

	t.watch.seen.Store(false)
	t.term.SetPrompt(prompt)
	line, err := t.term.ReadLine()
	if err != nil && t.watch.seen.Load() {
		return "", ErrInterrupted
	}
	return line, err
}

// Restore leaves raw mode if a read is in progress. It is safe to call from
// another goroutine while ReadLine is blocked, and more than once.
func (t *TerminalReader) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.raw == nil {
		return nil
	}
	state := t.raw
	t.raw = nil
	return term.Restore(t.fd, state)
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewReader picks a TerminalReader for interactive input and a StreamReader otherwise.
func NewReader(in *os.File, out io.Writer) LineReader {
	if IsTerminal(in) {
		return NewTerminalReader(in, out)
	}
	return NewStreamReader(in, out)
}
