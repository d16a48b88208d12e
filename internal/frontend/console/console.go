package console

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/gameserver"
)

// Banner lines printed before the first turn.
const (
	BannerLoaded  = "--- Assets Loaded ---"
	BannerWelcome = "Welcome to the CLI Adventure."
)

// Console drives a game manager from a line-oriented terminal.
type Console struct {
	cfg    config.ConsoleConfig
	game   *gameserver.Manager
	in     LineReader
	out    gameserver.Sink
	logger *zap.Logger
}

// New creates a Console.
//
// Precondition: game, in and out must be non-nil; out should be the sink the
// manager writes to so banner and game text interleave correctly.
func New(cfg config.ConsoleConfig, game *gameserver.Manager, in LineReader, out gameserver.Sink, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{cfg: cfg, game: game, in: in, out: out, logger: logger}
}

type readResult struct {
	line string
	err  error
}

// Run plays turns until the game ends, input is exhausted, or ctx is cancelled.
// Each turn prints the status block, reads one line, and dispatches it.
//
// Postcondition: Returns nil when the game ends or input reaches EOF, ctx.Err()
// on cancellation, ErrInterrupted on Ctrl-C, or the read error otherwise. The
// terminal mode is restored on every return.
func (c *Console) Run(ctx context.Context) error {
	if c.cfg.Banner {
		c.out.Emit(gameserver.Line{Text: BannerLoaded})
		c.out.Emit(gameserver.Line{Text: BannerWelcome})
	}

	for c.game.Playing() {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.game.PrintStatus()

		line, err := c.readLine(ctx)
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				c.out.Emit(gameserver.Line{})
				c.logger.Info("interrupted at prompt")
				return err
			}
			if errors.Is(err, io.EOF) {
				c.out.Emit(gameserver.Line{})
				c.logger.Info("input closed, ending session")
				c.game.State().End()
				return nil
			}
			return err
		}
		c.game.Dispatch(line)
	}

	c.logger.Info("game over",
		zap.String("room", c.game.State().RoomID),
		zap.Strings("inventory", c.game.State().Inventory.Items()),
	)
	return nil
}

// readLine reads in the background so cancellation is noticed while blocked.
func (c *Console) readLine(ctx context.Context) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := c.in.ReadLine(c.cfg.Prompt)
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		// The abandoned read may still hold the terminal in raw mode.
		c.restoreInput()
		return "", ctx.Err()
	case res := <-ch:
		return res.line, res.err
	}
}

func (c *Console) restoreInput() {
	r, ok := c.in.(Restorer)
	if !ok {
		return
	}
	if err := r.Restore(); err != nil {
		c.logger.Warn("restoring terminal mode", zap.Error(err))
	}
}
