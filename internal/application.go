package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/transport/terminal"
)

type Options struct {
	HumanMark entity.Mark
	MoveDelay time.Duration
	NoColor   bool
	Spinner   bool

	In  io.Reader
	Out io.Writer
}

// RunApp - runs an interactive session until the player quits or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, opts Options) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	botService := service.NewBotService(logger)

	gamePlay, err := service.NewGamePlayService(logger, botService, opts.HumanMark)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	session := terminal.New(logger, gamePlay, terminal.Options{
		In:        opts.In,
		Out:       opts.Out,
		MoveDelay: opts.MoveDelay,
		NoColor:   opts.NoColor,
		Spinner:   opts.Spinner,
	})

	log.Info("Starting session", "human", opts.HumanMark, "move_delay", opts.MoveDelay)

	if err = session.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Session finished")

	return nil
}
