package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-solo/internal"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

// tictactoe play
func Play(logger *slog.Logger, conf *config.Config) *cobra.Command {
	play := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game in the terminal. Type the number of
			an empty cell to place your mark; the computer answers
			after a short pause. X always moves first, so choosing
			O lets the computer open.

			Type r for a new game and q to quit.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := playOptions(cmd)
			if err != nil {
				return err
			}

			return application.RunApp(cmd.Context(), logger, opts)
		},
	}

	play.Flags().String("human", conf.HumanMark, "Mark you play, X or O")
	play.Flags().Duration("delay", conf.MoveDelay, "Pause before the computer's move is shown")
	play.Flags().Bool("no-color", conf.NoColor, "Disable colored output")

	return play
}

func playOptions(cmd *cobra.Command) (application.Options, error) {
	flags := cmd.Flags()

	humanFlag, err := flags.GetString("human")
	if err != nil {
		return application.Options{}, err
	}

	human, err := entity.ParseMark(humanFlag)
	if err != nil {
		return application.Options{}, fmt.Errorf("invalid --human: %w", err)
	}

	delay, err := flags.GetDuration("delay")
	if err != nil {
		return application.Options{}, err
	}

	if delay < 0 {
		return application.Options{}, fmt.Errorf("invalid --delay %s: must not be negative", delay)
	}

	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return application.Options{}, err
	}

	out := cmd.OutOrStdout()

	return application.Options{
		HumanMark: human,
		MoveDelay: delay,
		NoColor:   noColor,
		Spinner:   isTerminal(out),
		In:        cmd.InOrStdin(),
		Out:       out,
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
