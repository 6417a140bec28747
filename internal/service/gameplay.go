package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// GamePlayService runs one human-versus-computer session.
type GamePlayService interface {
	MakeTurn(ctx context.Context, cell int) (entity.Outcome, error)
	MakeBotTurn(ctx context.Context) (entity.Move, entity.Outcome, error)
	Reset(ctx context.Context)

	IsBotTurn() bool
	Board() entity.Board
	Turn() entity.Mark
	Outcome() entity.Outcome
	Human() *entity.Player
	Bot() *entity.Player
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService

	game  *entity.Game
	human *entity.Player
	bot   *entity.Player
}

func NewGamePlayService(logger *slog.Logger, botService BotService, humanMark entity.Mark) (GamePlayService, error) {
	if !humanMark.IsPlayer() {
		return nil, fmt.Errorf("%w: human mark %q", apperror.ErrInvalidMark, humanMark)
	}

	game := entity.NewGame(uuid.NewString())

	return &gamePlayService{
		logger:     logger.With("component", "gameplay", "game_id", game.ID()),
		botService: botService,
		game:       game,
		human:      entity.NewHumanPlayer("Player", humanMark),
		bot:        entity.NewBotPlayer(humanMark.Opponent()),
	}, nil
}

// MakeTurn applies the human's move. Rejected moves leave the game as it was.
func (that *gamePlayService) MakeTurn(ctx context.Context, cell int) (entity.Outcome, error) {
	log := that.logger.With("method", "MakeTurn")

	if err := ctx.Err(); err != nil {
		return that.game.Outcome(), err
	}

	outcome, err := that.game.ApplyMove(cell, that.human.Mark)
	if err != nil {
		log.Debug("move rejected", "cell", cell, "error", err)
		return outcome, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("move applied", "cell", cell, "mark", that.human.Mark, "board", that.game.Board().String())
	that.logOutcome(log, outcome)

	return outcome, nil
}

// MakeBotTurn asks the engine for the computer's move and applies it.
func (that *gamePlayService) MakeBotTurn(ctx context.Context) (entity.Move, entity.Outcome, error) {
	log := that.logger.With("method", "MakeBotTurn")

	if err := ctx.Err(); err != nil {
		return entity.Move{}, that.game.Outcome(), err
	}

	move, outcome, err := that.botService.MakeTurn(that.game, that.bot.Mark)
	if err != nil {
		return move, outcome, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("move applied", "cell", move.Cell, "mark", move.Mark, "board", that.game.Board().String())
	that.logOutcome(log, outcome)

	return move, outcome, nil
}

func (that *gamePlayService) Reset(_ context.Context) {
	that.game.Reset()
	that.logger.Info("game reset")
}

func (that *gamePlayService) IsBotTurn() bool {
	return !that.game.Outcome().IsFinished() && that.game.Turn() == that.bot.Mark
}

func (that *gamePlayService) Board() entity.Board {
	return that.game.Board()
}

func (that *gamePlayService) Turn() entity.Mark {
	return that.game.Turn()
}

func (that *gamePlayService) Outcome() entity.Outcome {
	return that.game.Outcome()
}

func (that *gamePlayService) Human() *entity.Player {
	return that.human
}

func (that *gamePlayService) Bot() *entity.Player {
	return that.bot
}

func (that *gamePlayService) logOutcome(log *slog.Logger, outcome entity.Outcome) {
	if outcome.IsFinished() {
		log.Info("game finished", "status", outcome.Status, "winner", outcome.Winner, "moves", that.game.Moves())
	}
}
