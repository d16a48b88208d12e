// Package main provides the adventure binary: it loads a world file and plays
// the game on the terminal until the player escapes or quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/frontend/console"
	"github.com/cory-johannsen/adventure/internal/game/session"
	"github.com/cory-johannsen/adventure/internal/game/world"
	"github.com/cory-johannsen/adventure/internal/gameserver"
	"github.com/cory-johannsen/adventure/internal/observability"
)

// exitInterrupted is the status used when a signal ends the game.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	code := exitCode(err)
	if code == 1 {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	stop()
	os.Exit(code)
}

// exitCode maps the result of run to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled), errors.Is(err, console.ErrInterrupted):
		return exitInterrupted
	default:
		return 1
	}
}

// run parses flags, loads configuration and the world, and plays one game.
//
// Postcondition: Returns nil once the game ends normally, or the first fatal error.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	start := time.Now()

	fs := flag.NewFlagSet("adventure", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to configuration file; empty uses defaults and ADVENTURE_* environment")
	worldPath := fs.String("world", "", "path to the world file, overriding world.path")
	worldFormat := fs.String("format", "", "world file format (json, yaml, ini), overriding world.format")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *worldPath != "" {
		cfg.World.Path = *worldPath
	}
	if *worldFormat != "" {
		cfg.World.Format = *worldFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	w, err := world.LoadFromFile(cfg.World.Path, world.LoadOptions{
		Format:        world.Format(cfg.World.Format),
		ValidateExits: cfg.World.ValidateExits,
	})
	if err != nil {
		return err
	}
	for _, d := range w.DanglingExits() {
		logger.Warn("exit targets unknown room",
			zap.String("room", d.RoomID),
			zap.String("direction", string(d.Direction)),
			zap.String("target", d.Target),
		)
	}
	logger.Info("world loaded",
		zap.String("path", cfg.World.Path),
		zap.Int("rooms", w.RoomCount()),
		zap.String("start_room", w.StartRoom()),
		zap.Duration("elapsed", time.Since(start)),
	)

	sink := console.NewSink(stdout, cfg.Console)
	state := session.New(w.StartRoom())
	mgr := gameserver.NewManager(w, state, gameserver.RulesFromConfig(cfg.Game), sink, logger)

	var in console.LineReader
	if f, ok := stdin.(*os.File); ok {
		in = console.NewReader(f, stdout)
	} else {
		in = console.NewStreamReader(stdin, stdout)
	}

	logger.Info("session started", zap.String("session", state.ID.String()))
	return console.New(cfg.Console, mgr, in, sink, logger).Run(ctx)
}
