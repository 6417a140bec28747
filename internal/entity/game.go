package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

const (
	StatusInProgress = "in_progress"
	StatusWin        = "win"
	StatusDraw       = "draw"
)

// Outcome is derived from a board, never stored alongside it.
type Outcome struct {
	Status string `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) IsWin() bool {
	return that.Status == StatusWin
}

func (that Outcome) IsDraw() bool {
	return that.Status == StatusDraw
}

// Move is a cell index paired with the mark placed there.
type Move struct {
	Cell int  `json:"cell"`
	Mark Mark `json:"mark"`
}

// Game holds the authoritative board and the side to move. ApplyMove is the
// only way to change the board.
type Game struct {
	id    string
	board Board
	turn  Mark
}

func NewGame(id string) *Game {
	return &Game{
		id:   id,
		turn: PlayerX,
	}
}

func (that *Game) ID() string {
	return that.id
}

// Board returns a copy of the current board.
func (that *Game) Board() Board {
	return that.board
}

func (that *Game) Turn() Mark {
	return that.turn
}

// Moves returns the number of marks placed so far.
func (that *Game) Moves() int {
	return BoardSize - len(that.board.EmptyCells())
}

func (that *Game) Outcome() Outcome {
	return that.board.Outcome()
}

// ApplyMove places mark on cell and passes the turn. A rejected move leaves
// the game untouched.
func (that *Game) ApplyMove(cell int, mark Mark) (Outcome, error) {
	if that.Outcome().IsFinished() {
		return that.Outcome(), apperror.ErrGameOver
	}

	if err := that.validateMove(cell, mark); err != nil {
		return that.Outcome(), err
	}

	that.board[cell] = mark
	that.turn = mark.Opponent()

	return that.Outcome(), nil
}

func (that *Game) validateMove(cell int, mark Mark) error {
	if cell < 0 || cell >= len(that.board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.board[cell] != Empty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	if that.turn != mark {
		return fmt.Errorf("%w: %q to move, got %q", apperror.ErrNotYourTurn, that.turn, mark)
	}

	return nil
}

// Reset clears the board and gives the first move back to X.
func (that *Game) Reset() {
	that.board = Board{}
	that.turn = PlayerX
}
