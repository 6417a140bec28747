// Package engine picks moves by exhaustive minimax over the tic-tac-toe game
// tree. O is the maximizing side and X the minimizing side.
package engine

import "github.com/rocketscienceinc/tictactoe-solo/internal/entity"

const (
	WinScore  = 10
	LossScore = -10
	DrawScore = 0

	// NoMove is the index reported for a board that is already decided.
	NoMove = -1
)

// Result is the chosen cell and its minimax value from O's point of view.
// Nodes counts the positions visited to find it.
type Result struct {
	Index int `json:"index"`
	Score int `json:"score"`
	Nodes int `json:"nodes"`
}

// Search returns the optimal cell for mark on board. Among equally scored
// cells the lowest index wins. The caller's board is not modified.
//
// mark must be entity.PlayerX or entity.PlayerO.
func Search(board entity.Board, mark entity.Mark) Result {
	s := searcher{board: board}
	result := s.search(mark)
	result.Nodes = s.nodes

	return result
}

type searcher struct {
	board entity.Board
	nodes int

	// exhaustive disables the cutoff once the best possible score is found.
	exhaustive bool
}

func (that *searcher) search(mark entity.Mark) Result {
	that.nodes++

	if score, ok := terminalScore(that.board); ok {
		return Result{Index: NoMove, Score: score}
	}

	maximizing := mark == entity.PlayerO
	best := Result{Index: NoMove}

	for _, cell := range that.board.EmptyCells() {
		score := that.place(cell, mark, func() int {
			return that.search(mark.Opponent()).Score
		})

		if best.Index == NoMove || (maximizing && score > best.Score) || (!maximizing && score < best.Score) {
			best = Result{Index: cell, Score: score}
		}

		// Nothing later can beat the best possible score, only tie it.
		if !that.exhaustive && best.Score == bestPossible(maximizing) {
			break
		}
	}

	return best
}

// place puts mark on cell for the duration of fn.
func (that *searcher) place(cell int, mark entity.Mark, fn func() int) int {
	that.board[cell] = mark
	defer func() { that.board[cell] = entity.Empty }()

	return fn()
}

func bestPossible(maximizing bool) int {
	if maximizing {
		return WinScore
	}

	return LossScore
}

func terminalScore(board entity.Board) (int, bool) {
	switch {
	case board.HasLine(entity.PlayerX):
		return LossScore, true
	case board.HasLine(entity.PlayerO):
		return WinScore, true
	case board.IsFull():
		return DrawScore, true
	default:
		return 0, false
	}
}
