package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/game/session"
	"github.com/cory-johannsen/adventure/internal/game/world"
	"github.com/cory-johannsen/adventure/internal/gameserver"
)

// testConsole builds a console over the bundled world. Game text and prompts
// share one buffer; newReader receives that buffer for its prompts.
func testConsole(t *testing.T, cfg config.ConsoleConfig, newReader func(io.Writer) LineReader) (*Console, *gameserver.Manager, *bytes.Buffer) {
	t.Helper()
	w, err := world.LoadFromFile(filepath.Join("..", "..", "..", "content", "worlds", "game.json"), world.LoadOptions{ValidateExits: true})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	sink := NewSink(out, cfg)
	logger := zaptest.NewLogger(t)
	mgr := gameserver.NewManager(w, session.New(w.StartRoom()), gameserver.DefaultRules(), sink, logger)
	return New(cfg, mgr, newReader(out), sink, logger), mgr, out
}

func streamInput(input string) func(io.Writer) LineReader {
	return func(out io.Writer) LineReader {
		return NewStreamReader(strings.NewReader(input), out)
	}
}

func fixedReader(r LineReader) func(io.Writer) LineReader {
	return func(io.Writer) LineReader { return r }
}

const walkthrough = `take rusty_key
use rusty_key
move north
take torch
use torch
move east
take sword
move west
move north
use sword
move north
`

func TestRun_Walkthrough(t *testing.T) {
	c, mgr, out := testConsole(t, config.ConsoleConfig{Prompt: "> ", Banner: true}, streamInput(walkthrough))

	require.NoError(t, c.Run(context.Background()))
	assert.False(t, mgr.Playing())
	assert.Equal(t, "freedom", mgr.State().RoomID)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, BannerLoaded+"\n"+BannerWelcome+"\n"), text)
	assert.Contains(t, text, "Picked up sword.")
	assert.Contains(t, text, "It's a direct hit! The goblin falls to the ground, defeated.")
	assert.True(t, strings.HasSuffix(text, "*** YOU HAVE ESCAPED! ***\n"), text)
	assert.Equal(t, 11, strings.Count(text, "> "))
}

func TestRun_QuitStopsLoop(t *testing.T) {
	c, mgr, out := testConsole(t, config.ConsoleConfig{Prompt: "> "}, streamInput("quit\nmove north\n"))

	require.NoError(t, c.Run(context.Background()))
	assert.False(t, mgr.Playing())
	assert.Equal(t, 1, strings.Count(out.String(), "> "))
	assert.NotContains(t, out.String(), BannerWelcome)
}

func TestRun_EOFEndsSession(t *testing.T) {
	c, mgr, _ := testConsole(t, config.ConsoleConfig{Prompt: "> "}, streamInput("take rusty_key\n"))

	require.NoError(t, c.Run(context.Background()))
	assert.False(t, mgr.Playing())
	assert.Equal(t, "cell", mgr.State().RoomID)
	assert.Equal(t, []string{"rusty_key"}, mgr.State().Inventory.Items())
}

func TestRun_CancelledContext(t *testing.T) {
	c, mgr, out := testConsole(t, config.ConsoleConfig{Banner: true}, streamInput("move north\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, mgr.Playing())
	assert.Equal(t, BannerLoaded+"\n"+BannerWelcome+"\n", out.String())
}

// blockingReader cancels the run on its first read and then blocks until released.
type blockingReader struct {
	cancel  context.CancelFunc
	release chan struct{}
}

func (b *blockingReader) ReadLine(string) (string, error) {
	b.cancel()
	<-b.release
	return "", nil
}

func TestRun_CancelWhileReading(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := &blockingReader{cancel: cancel, release: make(chan struct{})}
	defer close(in.release)

	c, _, _ := testConsole(t, config.ConsoleConfig{}, fixedReader(in))
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}

type failingReader struct{ err error }

func (f failingReader) ReadLine(string) (string, error) { return "", f.err }

func TestRun_ReadError(t *testing.T) {
	boom := errors.New("boom")
	c, _, _ := testConsole(t, config.ConsoleConfig{}, fixedReader(failingReader{err: boom}))
	assert.ErrorIs(t, c.Run(context.Background()), boom)
}


// rawModeReader blocks like a terminal read in raw mode and records restores.
type rawModeReader struct {
	blockingReader
	restores atomic.Int32
}

func (r *rawModeReader) Restore() error {
	r.restores.Add(1)
	return nil
}

func TestRun_CancelRestoresTerminal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := &rawModeReader{blockingReader: blockingReader{cancel: cancel, release: make(chan struct{})}}
	defer close(in.release)

	c, _, _ := testConsole(t, config.ConsoleConfig{}, fixedReader(in))
	require.ErrorIs(t, c.Run(ctx), context.Canceled)
	assert.Equal(t, int32(1), in.restores.Load())
}

func TestRun_Interrupted(t *testing.T) {
	c, mgr, _ := testConsole(t, config.ConsoleConfig{}, fixedReader(failingReader{err: ErrInterrupted}))
	assert.ErrorIs(t, c.Run(context.Background()), ErrInterrupted)
	assert.Equal(t, "cell", mgr.State().RoomID)
}
