package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/engine"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	Analyze(board entity.Board, mark entity.Mark) (engine.Result, error)
	MakeTurn(game *entity.Game, mark entity.Mark) (entity.Move, entity.Outcome, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// Analyze runs the engine for mark on board without touching any game.
func (that *botService) Analyze(board entity.Board, mark entity.Mark) (engine.Result, error) {
	if !mark.IsPlayer() {
		return engine.Result{Index: engine.NoMove}, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if board.Outcome().IsFinished() {
		return engine.Result{Index: engine.NoMove}, apperror.ErrGameOver
	}

	result := engine.Search(board, mark)
	if result.Index == engine.NoMove {
		return result, ErrNoAvailableMoves
	}

	that.logger.Debug("move selected",
		"board", board.String(),
		"mark", mark,
		"cell", result.Index,
		"score", result.Score,
		"nodes", result.Nodes,
	)

	return result, nil
}

func (that *botService) MakeTurn(game *entity.Game, mark entity.Mark) (entity.Move, entity.Outcome, error) {
	result, err := that.Analyze(game.Board(), mark)
	if err != nil {
		return entity.Move{}, game.Outcome(), fmt.Errorf("bot failed to pick a move: %w", err)
	}

	move := entity.Move{Cell: result.Index, Mark: mark}

	outcome, err := game.ApplyMove(move.Cell, move.Mark)
	if err != nil {
		return move, outcome, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, outcome, nil
}
