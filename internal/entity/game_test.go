package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// When: create a new game
	game := NewGame("123")

	// Then: the board is empty, X moves first and the game is in progress
	require.NotNil(t, game)
	assert.Equal(t, "123", game.ID())
	assert.Equal(t, Board{}, game.Board())
	assert.Equal(t, PlayerX, game.Turn())
	assert.Equal(t, 0, game.Moves())
	assert.Equal(t, Outcome{Status: StatusInProgress}, game.Outcome())
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("ApplyMove", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: player X makes a move
		outcome, err := game.ApplyMove(0, PlayerX)
		require.NoError(t, err)

		// Then: the board reflects the move and the turn passes to O
		assert.Equal(t, Outcome{Status: StatusInProgress}, outcome)
		assert.Equal(t, Board{PlayerX}, game.Board())
		assert.Equal(t, PlayerO, game.Turn())
		assert.Equal(t, 1, game.Moves())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where X took cell 0
		game := NewGame("123")
		_, err := game.ApplyMove(0, PlayerX)
		require.NoError(t, err)

		// When: player O tries the same cell, twice
		for i := 0; i < 2; i++ {
			_, err = game.ApplyMove(0, PlayerO)

			// Then: the move is illegal and the board is unchanged
			require.ErrorIs(t, err, apperror.ErrCellOccupied)
			require.ErrorIs(t, err, apperror.ErrIllegalMove)
			assert.Equal(t, Board{PlayerX}, game.Board())
			assert.Equal(t, PlayerO, game.Turn())
		}
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where it's X's turn
		game := NewGame("123")

		// When: O tries to take the center
		_, err := game.ApplyMove(4, PlayerO)

		// Then: the move is illegal and nothing changed
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, Board{}, game.Board())
		assert.Equal(t, PlayerX, game.Turn())
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		game := NewGame("123")

		_, err := game.ApplyMove(4, Empty)

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, Board{}, game.Board())
	})

	t.Run("Invalid cell", func(t *testing.T) {
		for _, cell := range []int{-1, 9, 20} {
			// Given: a new game
			game := NewGame("123")

			// When: a cell outside the board is passed
			_, err := game.ApplyMove(cell, PlayerX)

			// Then: ErrInvalidCell is returned
			require.ErrorIs(t, err, apperror.ErrInvalidCell)
			require.ErrorIs(t, err, apperror.ErrIllegalMove)
			assert.Equal(t, Board{}, game.Board())
		}
	})

	t.Run("Move after win", func(t *testing.T) {
		// Given: X completes the top row
		game := NewGame("123")
		moves := []Move{{0, PlayerX}, {3, PlayerO}, {1, PlayerX}, {4, PlayerO}}
		for _, m := range moves {
			_, err := game.ApplyMove(m.Cell, m.Mark)
			require.NoError(t, err)
		}
		outcome, err := game.ApplyMove(2, PlayerX)
		require.NoError(t, err)
		require.Equal(t, Outcome{Status: StatusWin, Winner: PlayerX}, outcome)
		before := game.Board()

		// When: O tries to keep playing
		outcome, err = game.ApplyMove(5, PlayerO)

		// Then: ErrGameOver is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrGameOver)
		assert.NotErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, Outcome{Status: StatusWin, Winner: PlayerX}, outcome)
		assert.Equal(t, before, game.Board())
	})

	t.Run("Move after draw", func(t *testing.T) {
		// Given: a game played out to a draw
		game := NewGame("123")
		for _, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
			_, err := game.ApplyMove(cell, game.Turn())
			require.NoError(t, err)
		}
		require.Equal(t, Outcome{Status: StatusDraw}, game.Outcome())

		// When: anyone tries to move
		_, err := game.ApplyMove(0, game.Turn())

		// Then: ErrGameOver is returned
		require.ErrorIs(t, err, apperror.ErrGameOver)
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a game with some moves
	game := NewGame("123")
	_, err := game.ApplyMove(4, PlayerX)
	require.NoError(t, err)
	_, err = game.ApplyMove(0, PlayerO)
	require.NoError(t, err)
	_, err = game.ApplyMove(8, PlayerX)
	require.NoError(t, err)

	// When: the game is reset
	game.Reset()

	// Then: the board is empty, X moves and the id survives
	assert.Equal(t, Board{}, game.Board())
	assert.Equal(t, PlayerX, game.Turn())
	assert.Equal(t, "123", game.ID())
	assert.Equal(t, Outcome{Status: StatusInProgress}, game.Outcome())
}

// TestGame_ReachablePositions walks every game reachable through ApplyMove
// and checks the board invariants at each node.
func TestGame_ReachablePositions(t *testing.T) {
	var (
		positions = map[Board]Outcome{}
		walk      func(game *Game)
	)

	walk = func(game *Game) {
		board := game.Board()
		outcome := game.Outcome()
		positions[board] = outcome

		require.NoError(t, board.Validate())
		require.False(t, board.HasLine(PlayerX) && board.HasLine(PlayerO))

		switch outcome.Status {
		case StatusWin:
			require.True(t, board.HasLine(outcome.Winner))
		case StatusDraw:
			require.True(t, board.IsFull())
			require.Equal(t, Empty, board.Winner())
		case StatusInProgress:
			require.False(t, board.IsFull())
			require.Equal(t, Empty, board.Winner())
		default:
			t.Fatalf("unexpected status %q", outcome.Status)
		}

		if outcome.IsFinished() {
			return
		}

		for _, cell := range board.EmptyCells() {
			child := *game
			_, err := child.ApplyMove(cell, game.Turn())
			require.NoError(t, err)
			walk(&child)
		}
	}

	walk(NewGame("walk"))

	// 5478 distinct legal positions, counting the empty board.
	assert.Len(t, positions, 5478)
}
