package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var errQuit = errors.New("quit")

var helpText = heredoc.Doc(`
	Type the number of an empty cell (1-9) to place your mark.
	  r, reset   start a new game
	  h, help    show this help
	  q, quit    leave
`)

type gamePlay interface {
	MakeTurn(ctx context.Context, cell int) (entity.Outcome, error)
	MakeBotTurn(ctx context.Context) (entity.Move, entity.Outcome, error)
	Reset(ctx context.Context)

	IsBotTurn() bool
	Board() entity.Board
	Turn() entity.Mark
	Outcome() entity.Outcome
	Human() *entity.Player
}

type Options struct {
	In  io.Reader
	Out io.Writer

	// MoveDelay is how long the computer's move stays hidden.
	MoveDelay time.Duration
	NoColor   bool

	// Spinner shows an animation while the computer is thinking. Only
	// enable it for a real terminal.
	Spinner bool
}

// Session plays one game after another on a terminal until the input ends
// or the player quits.
type Session struct {
	logger   *slog.Logger
	gamePlay gamePlay

	in        io.Reader
	out       io.Writer
	delay     time.Duration
	renderer  *Renderer
	thinking  *spinner.Spinner
	lastError error

	handlers map[string]func(ctx context.Context) error
}

func New(logger *slog.Logger, gamePlay gamePlay, opts Options) *Session {
	session := &Session{
		logger:   logger.With("component", "terminal"),
		gamePlay: gamePlay,
		in:       opts.In,
		out:      opts.Out,
		delay:    opts.MoveDelay,
		renderer: NewRenderer(opts.Out, opts.NoColor),

		handlers: make(map[string]func(ctx context.Context) error),
	}

	if opts.Spinner {
		session.thinking = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(opts.Out))
		session.thinking.Suffix = " " + ThinkingMessage
	}

	for _, name := range []string{"r", "reset", "n", "new"} {
		session.handlers[name] = session.handleReset
	}
	for _, name := range []string{"h", "help", "?"} {
		session.handlers[name] = session.handleHelp
	}
	for _, name := range []string{"q", "quit", "exit"} {
		session.handlers[name] = session.handleQuit
	}

	return session
}

// Run - reads commands until the input is exhausted, the player quits or ctx is done.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := that.readLines(ctx)

	that.printf("You play %s. %s", that.gamePlay.Human().Mark, helpText)
	that.render()

	for {
		if that.gamePlay.IsBotTurn() {
			if err := that.playBot(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			that.render()
			continue
		}

		that.printf("> ")

		select {
		case <-ctx.Done():
			log.Info("session interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				log.Info("input closed")
				return that.lastError
			}

			if err := that.handleLine(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

func (that *Session) handleLine(ctx context.Context, line string) error {
	command := strings.ToLower(strings.TrimSpace(line))
	if command == "" {
		return nil
	}

	if handler, ok := that.handlers[command]; ok {
		return handler(ctx)
	}

	cell, err := strconv.Atoi(command)
	if err != nil {
		that.printf("Unknown command %q. Type h for help.\n", command)
		return nil
	}

	return that.handleTurn(ctx, cell-1)
}

// handleTurn - applies the human move. Illegal moves are reported and ignored.
func (that *Session) handleTurn(ctx context.Context, cell int) error {
	_, err := that.gamePlay.MakeTurn(ctx, cell)

	switch {
	case err == nil:
		that.render()
	case errors.Is(err, apperror.ErrGameOver):
		that.printf("The game is over. Type r to play again.\n")
	case errors.Is(err, apperror.ErrInvalidCell):
		that.printf("Pick a cell from 1 to 9.\n")
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("Cell %d is taken.\n", cell+1)
	case errors.Is(err, apperror.ErrNotYourTurn):
		that.printf("Wait for your turn.\n")
	default:
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

func (that *Session) handleReset(ctx context.Context) error {
	that.gamePlay.Reset(ctx)
	that.render()

	return nil
}

func (that *Session) handleHelp(_ context.Context) error {
	that.printf("%s", helpText)

	return nil
}

func (that *Session) handleQuit(_ context.Context) error {
	that.printf("Bye!\n")

	return errQuit
}

type botTurn struct {
	move    entity.Move
	outcome entity.Outcome
	err     error
}

// playBot - shows the thinking status, then reveals the computer's move once
// the delay has passed.
func (that *Session) playBot(ctx context.Context) error {
	if that.thinking != nil {
		that.thinking.Start()
		defer that.thinking.Stop()
	} else {
		that.printf("%s\n", ThinkingMessage)
	}

	result := make(chan botTurn, 1)
	timer := time.AfterFunc(that.delay, func() {
		move, outcome, err := that.gamePlay.MakeBotTurn(ctx)
		result <- botTurn{move: move, outcome: outcome, err: err}
	})

	select {
	case <-ctx.Done():
		if !timer.Stop() {
			<-result
		}
		return ctx.Err()
	case turn := <-result:
		if turn.err != nil {
			return fmt.Errorf("computer failed to move: %w", turn.err)
		}

		that.logger.Debug("computer moved", "cell", turn.move.Cell, "status", turn.outcome.Status)
		return nil
	}
}

// readLines - forwards input lines until EOF or ctx is done.
func (that *Session) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
			that.lastError = fmt.Errorf("failed to read input: %w", err)
		}
	}()

	return lines
}

func (that *Session) render() {
	outcome := that.gamePlay.Outcome()
	status := StatusMessage(outcome, that.gamePlay.Turn())

	that.printf("\n%s\n%s\n", that.renderer.Board(that.gamePlay.Board()), that.renderer.Status(status, outcome))

	if outcome.IsFinished() {
		that.printf("Type r to play again.\n")
	}
}

func (that *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
