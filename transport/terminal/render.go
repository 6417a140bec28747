package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

const (
	ThinkingMessage = "AI's turn..."

	rowSeparator = "---+---+---"
)

// StatusMessage is the line shown under the board.
func StatusMessage(outcome entity.Outcome, turn entity.Mark) string {
	switch outcome.Status {
	case entity.StatusWin:
		return fmt.Sprintf("Player %s wins!", outcome.Winner)
	case entity.StatusDraw:
		return "Draw!"
	default:
		return fmt.Sprintf("Player %s's turn", turn)
	}
}

// Renderer draws boards, colored when the output supports it.
type Renderer struct {
	output *termenv.Output
}

func NewRenderer(w io.Writer, noColor bool) *Renderer {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Renderer{output: termenv.NewOutput(w, opts...)}
}

// Board renders the grid. Empty cells show the number to type for them.
func (that *Renderer) Board(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, 3)
		for col := 0; col < 3; col++ {
			cells[col] = " " + that.cell(board, row*3+col) + " "
		}
		sb.WriteString(strings.Join(cells, "|") + "\n")
	}

	return sb.String()
}

func (that *Renderer) Status(text string, outcome entity.Outcome) string {
	style := that.output.String(text)
	if outcome.IsFinished() {
		style = style.Bold()
	}

	return style.String()
}

func (that *Renderer) cell(board entity.Board, index int) string {
	switch board[index] {
	case entity.PlayerX:
		return that.output.String(string(entity.PlayerX)).Foreground(that.output.Color("9")).Bold().String()
	case entity.PlayerO:
		return that.output.String(string(entity.PlayerO)).Foreground(that.output.Color("12")).Bold().String()
	default:
		return that.output.String(strconv.Itoa(index + 1)).Faint().String()
	}
}
