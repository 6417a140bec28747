package cmd

import (
	"fmt"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-solo/internal/engine"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/transport/terminal"
)

// tictactoe hint
func Hint(logger *slog.Logger) *cobra.Command {
	hint := &cobra.Command{
		Use:   "hint BOARD",
		Short: "Show the best move for a position",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`hint prints the move the computer would play on BOARD.

			BOARD lists the nine cells row by row using X, O and _ for an
			empty cell; "/" or "|" may separate the rows. The side to
			move is worked out from the marks unless --mark is given.

			The score is from O's point of view: 10 means O can force a
			win, -10 means X can, 0 means best play draws.`),
		Example: heredoc.Doc(`
			$ tictactoe hint XX_/OO_/___
			$ tictactoe hint ____X____ --mark O`),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := entity.ParseBoard(args[0])
			if err != nil {
				return err
			}

			if err = board.Validate(); err != nil {
				return err
			}

			mark := board.NextMark()
			if markFlag, _ := cmd.Flags().GetString("mark"); markFlag != "" {
				if mark, err = entity.ParseMark(markFlag); err != nil {
					return fmt.Errorf("invalid --mark: %w", err)
				}
			}

			result, err := service.NewBotService(logger).Analyze(board, mark)
			if err != nil {
				return fmt.Errorf("no move for %s: %w", board, err)
			}

			noColor, _ := cmd.Flags().GetBool("no-color")
			renderer := terminal.NewRenderer(cmd.OutOrStdout(), noColor || !isTerminal(cmd.OutOrStdout()))

			fmt.Fprint(cmd.OutOrStdout(), renderer.Board(board))
			fmt.Fprintf(cmd.OutOrStdout(), "%s to move: cell %d (index %d), score %d, %s\n",
				mark, result.Index+1, result.Index, result.Score, describeScore(result.Score))

			return nil
		},
	}

	hint.Flags().String("mark", "", "Side to move, X or O")
	hint.Flags().Bool("no-color", false, "Disable colored output")

	return hint
}

func describeScore(score int) string {
	switch score {
	case engine.WinScore:
		return "O forces a win"
	case engine.LossScore:
		return "X forces a win"
	default:
		return "draw with best play"
	}
}
