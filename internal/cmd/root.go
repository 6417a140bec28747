package cmd

import (
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
)

const version = "v0.1.0"

func Root(logger *slog.Logger, conf *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against a computer that never loses",
		Long: heredoc.Docf(`tictactoe is a terminal game of tic-tac-toe against a
			computer opponent that searches the whole game tree before
			every move. The best you can do is a draw.

			Settings are read from %s and from the
			LOG_LEVEL, LOG_FILE, HUMAN_MARK, MOVE_DELAY and NO_COLOR
			environment variables.`, config.DefaultPath()),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.SetVersionTemplate(version + "\n")
	root.Version = version

	root.AddCommand(Play(logger, conf))
	root.AddCommand(Hint(logger))

	return root
}
