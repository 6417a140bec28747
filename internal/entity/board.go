package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	BoardSize = 9
)

// WinCombos lists every line that wins the game: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Mark is the symbol a player places on the board.
type Mark string

func (m Mark) IsPlayer() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// ParseMark accepts "x", "X", "o" or "O".
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(PlayerX):
		return PlayerX, nil
	case string(PlayerO):
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}

// Board is a 3x3 grid in row-major order.
type Board [BoardSize]Mark

// Winner returns the mark of the first completed win line, or Empty.
func (that Board) Winner() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}

	return Empty
}

// HasLine reports whether mark fills any win line.
func (that Board) HasLine(mark Mark) bool {
	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

// Outcome classifies the board. It is recomputed on every call.
func (that Board) Outcome() Outcome {
	if winner := that.Winner(); winner != Empty {
		return Outcome{Status: StatusWin, Winner: winner}
	}

	if that.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusInProgress}
}

// NextMark derives the side to move from the mark counts. X moves first.
func (that Board) NextMark() Mark {
	if that.Count(PlayerX) > that.Count(PlayerO) {
		return PlayerO
	}

	return PlayerX
}

// Validate checks that the board could occur in a game where X moves first
// and turns alternate.
func (that Board) Validate() error {
	for i, cell := range that {
		if cell != Empty && !cell.IsPlayer() {
			return fmt.Errorf("%w: cell %d holds %q", apperror.ErrInvalidBoard, i, cell)
		}
	}

	if diff := that.Count(PlayerX) - that.Count(PlayerO); diff < 0 || diff > 1 {
		return fmt.Errorf("%w: X has %d marks, O has %d", apperror.ErrInvalidBoard, that.Count(PlayerX), that.Count(PlayerO))
	}

	if that.HasLine(PlayerX) && that.HasLine(PlayerO) {
		return fmt.Errorf("%w: both players have a line", apperror.ErrInvalidBoard)
	}

	return nil
}

// String renders the board as 9 characters, "_" for an empty cell.
func (that Board) String() string {
	var sb strings.Builder
	for _, cell := range that {
		if cell == Empty {
			sb.WriteByte('_')
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

// ParseBoard reads the String form. Empty cells may also be written as ".",
// "-" or a space, and "/" or "|" may separate rows.
func ParseBoard(s string) (Board, error) {
	var board Board

	cleaned := strings.NewReplacer("/", "", "|", "").Replace(s)
	if len(cleaned) != BoardSize {
		return board, fmt.Errorf("%w: want %d cells, got %d", apperror.ErrInvalidBoard, BoardSize, len(cleaned))
	}

	for i, r := range strings.ToUpper(cleaned) {
		switch r {
		case 'X':
			board[i] = PlayerX
		case 'O':
			board[i] = PlayerO
		case '_', '.', '-', ' ':
			board[i] = Empty
		default:
			return board, fmt.Errorf("%w: unexpected %q at cell %d", apperror.ErrInvalidBoard, r, i)
		}
	}

	return board, nil
}
