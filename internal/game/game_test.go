package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/errors"
	"github.com/lgbarn/console-chess-go/internal/game"
	"github.com/lgbarn/console-chess-go/internal/testutil"
)

func TestNew(t *testing.T) {
	g := game.New()

	assert.Equal(t, 1, g.Turn())
	assert.Equal(t, chess.White, g.ToMove())
	assert.Equal(t, game.AwaitingSelection, g.State())
	assert.False(t, g.Over())
	assert.Equal(t, chess.NoColour, g.Loser())
	assert.Len(t, g.Board().Live(), 32)
}

func TestNew_WithTurn(t *testing.T) {
	g := game.New(game.WithTurn(2))
	assert.Equal(t, chess.Black, g.ToMove())

	g = game.New(game.WithTurn(0))
	assert.Equal(t, 1, g.Turn(), "non-positive turns are ignored")
}

func TestNew_MissingKingIsOver(t *testing.T) {
	b := testutil.BoardFromLayout(t, `
		. . . . K . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . r
	`)
	g := game.New(game.WithBoard(b))

	assert.True(t, g.Over())
	assert.Equal(t, chess.Black, g.Loser())
	_, err := g.Select("wK1")
	assert.ErrorIs(t, err, errors.ErrGameOver)
}

func TestDoubleStepScenario(t *testing.T) {
	g := game.New()

	moves, err := g.Select("wp4")
	require.NoError(t, err)
	assert.Equal(t, []chess.Position{chess.Pos(2, 3), chess.Pos(3, 3)}, moves)
	assert.Equal(t, game.AwaitingDestination, g.State())

	res, err := g.Move(chess.Pos(3, 3))
	require.NoError(t, err)
	assert.Equal(t, chess.Pos(1, 3), res.From)
	assert.Equal(t, chess.Pos(3, 3), res.To)
	assert.False(t, res.HasCapture)
	assert.True(t, res.Piece.HasMoved)

	assert.Equal(t, 2, g.Turn())
	assert.Equal(t, chess.Black, g.ToMove())
	names := g.Snapshot().Names()
	assert.Equal(t, "wp4", names[3][3])
	assert.Equal(t, chess.EmptyName, names[1][3])

	moves, err = g.Select("wp4")
	assert.ErrorIs(t, err, errors.ErrUnknownPiece, "white piece on black's turn")
	assert.Nil(t, moves)
}

func TestSelect_Failures(t *testing.T) {
	tests := []struct {
		name  string
		piece string
		want  error
	}{
		{"unknown name", "zz9", errors.ErrUnknownPiece},
		{"opponent piece", "bp1", errors.ErrUnknownPiece},
		{"empty square name", chess.EmptyName, errors.ErrUnknownPiece},
		{"blocked rook", "wr1", errors.ErrNoLegalMoves},
		{"blocked king", "wK*", errors.ErrNoLegalMoves},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := game.New()
			before := g.Snapshot()

			_, err := g.Select(tt.piece)
			assert.ErrorIs(t, err, tt.want)

			var moveErr *errors.MoveError
			require.ErrorAs(t, err, &moveErr)
			assert.Equal(t, 1, moveErr.Turn)
			assert.Equal(t, "White", moveErr.Player)

			assert.Equal(t, 1, g.Turn(), "turn must not advance")
			assert.Equal(t, game.AwaitingSelection, g.State())
			assert.Equal(t, before, g.Snapshot(), "board must not change")
			_, selected := g.Selected()
			assert.False(t, selected)
		})
	}
}

func TestMove_Rejected(t *testing.T) {
	tests := []struct {
		name string
		dest chess.Position
		want error
	}{
		{"off board", chess.Pos(8, 3), errors.ErrOffBoard},
		{"not in legal set", chess.Pos(4, 3), errors.ErrIllegalMove},
		{"own piece", chess.Pos(0, 3), errors.ErrIllegalMove},
		{"sideways", chess.Pos(2, 4), errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := game.New()
			before := g.Snapshot()
			_, err := g.Select("wp4")
			require.NoError(t, err)

			_, err = g.Move(tt.dest)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 1, g.Turn())
			assert.Equal(t, game.AwaitingDestination, g.State(), "selection is kept")
			assert.Equal(t, before, g.Snapshot())

			_, err = g.Move(chess.Pos(2, 3))
			assert.NoError(t, err, "a legal destination still works afterwards")
		})
	}
}

func TestMove_WithoutSelection(t *testing.T) {
	g := game.New()
	_, err := g.Move(chess.Pos(2, 3))
	assert.ErrorIs(t, err, errors.ErrNoSelection)
}

func TestDeselect(t *testing.T) {
	g := game.New()
	_, err := g.Select("wk1")
	require.NoError(t, err)

	g.Deselect()
	assert.Equal(t, game.AwaitingSelection, g.State())
	assert.Equal(t, 1, g.Turn())

	_, err = g.Select("wk2")
	require.NoError(t, err)
	piece, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, "wk2", piece.Name)
}

func TestMove_Capture(t *testing.T) {
	t.Run("pawn takes diagonally", func(t *testing.T) {
		b := testutil.BoardFromLayout(t, `
			. . . . K . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . . P . . .
			. . . . . p . .
			. . . . . . . .
			. . . . k . . .
		`)
		g := game.New(game.WithBoard(b))

		moves, err := g.Select("wP1")
		require.NoError(t, err)
		assert.Equal(t, []chess.Position{chess.Pos(5, 4), chess.Pos(5, 5)}, moves)

		res, err := g.Move(chess.Pos(5, 5))
		require.NoError(t, err)
		assert.True(t, res.HasCapture)
		assert.Equal(t, "bp1", res.Captured.Name)
		assert.Equal(t, chess.EmptyName, g.Snapshot().At(chess.Pos(4, 4)).Name)
	})

	t.Run("queen takes along a diagonal", func(t *testing.T) {
		b := testutil.BoardFromLayout(t, `
			. . . . K . . .
			. . . . . . . .
			. . . . . . . .
			. . . . . . . .
			. . . b . . . .
			. . . . . . . .
			. . . . . . . .
			Q . . . k . . .
		`)
		g := game.New(game.WithBoard(b))

		_, err := g.Select("wQ1")
		require.NoError(t, err)
		res, err := g.Move(chess.Pos(4, 3))
		require.NoError(t, err)
		assert.True(t, res.HasCapture)
		assert.Equal(t, "bb1", res.Captured.Name)
		_, live := g.Board().PieceByName("bb1")
		assert.False(t, live)
		assert.Len(t, g.Board().Player(chess.Black).Pieces, 1)
	})
}

func TestPromotion(t *testing.T) {
	b := testutil.BoardFromLayout(t, `
		. . . . K . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		P . . . . . . .
		. . . . k . . .
	`)
	g := game.New(game.WithBoard(b))
	liveBefore := len(g.Board().Live())

	_, err := g.Select("wP1")
	require.NoError(t, err)
	res, err := g.Move(chess.Pos(7, 0))
	require.NoError(t, err)

	assert.True(t, res.PromotionPending)
	assert.Equal(t, game.PromotionPending, g.State())
	assert.Equal(t, 1, g.Turn(), "turn waits for the promotion")
	_, live := g.Board().PieceByName("wP1")
	assert.False(t, live, "pawn is out of play while promotion is pending")
	pawn, pending := g.PendingPromotion()
	require.True(t, pending)
	assert.Equal(t, chess.Pos(7, 0), pawn.Pos)

	_, err = g.Select("wK1")
	assert.ErrorIs(t, err, errors.ErrPromotionPending)
	_, err = g.Move(chess.Pos(1, 4))
	assert.ErrorIs(t, err, errors.ErrPromotionPending)

	_, err = g.Promote("king")
	assert.ErrorIs(t, err, errors.ErrInvalidPromotion)
	assert.Equal(t, game.PromotionPending, g.State())

	res, err = g.Promote("queen")
	require.NoError(t, err)
	assert.Equal(t, chess.Queen, res.Promoted.Kind)
	assert.Equal(t, chess.White, res.Promoted.Owner)
	assert.Equal(t, chess.Pos(7, 0), res.Promoted.Pos)
	assert.Equal(t, "wQ1", res.Promoted.Name)

	assert.Equal(t, 2, g.Turn())
	assert.Equal(t, game.AwaitingSelection, g.State())
	assert.Len(t, g.Board().Live(), liveBefore)
	assert.Equal(t, "wQ1", g.Snapshot().At(chess.Pos(7, 0)).Name)
}

func TestPromote_NotPending(t *testing.T) {
	g := game.New()
	_, err := g.Promote("queen")
	assert.ErrorIs(t, err, errors.ErrInvalidPromotion)
}

func TestPromotion_NamesAreUnique(t *testing.T) {
	b := testutil.BoardFromLayout(t, `
		. . . . K . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . Q
		P P . . . . . .
		. . . . k . . .
	`)
	g := game.New(game.WithBoard(b))

	promote := func(pawn string, dest chess.Position, choice string) chess.Piece {
		t.Helper()
		_, err := g.Select(pawn)
		require.NoError(t, err)
		_, err = g.Move(dest)
		require.NoError(t, err)
		res, err := g.Promote(choice)
		require.NoError(t, err)
		return res.Promoted
	}
	pass := func() {
		t.Helper()
		_, err := g.Select("bk1")
		require.NoError(t, err)
		_, err = g.Move(chess.Pos(6, 4))
		require.NoError(t, err)
	}

	first := promote("wP1", chess.Pos(7, 0), "queen")
	assert.Equal(t, "wQ2", first.Name, "wQ1 is taken by the layout queen")
	pass()
	second := promote("wP2", chess.Pos(7, 1), "rook")
	assert.Equal(t, "wr5", second.Name)

	seen := make(map[string]bool)
	for _, p := range g.Board().Live() {
		assert.False(t, seen[p.Name], "duplicate name %s", p.Name)
		seen[p.Name] = true
	}
}

func TestKingCaptureEndsGame(t *testing.T) {
	b := testutil.BoardFromLayout(t, `
		. . . . K . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . . . . .
		. . . . k . . R
	`)
	g := game.New(game.WithBoard(b))

	_, err := g.Select("wR1")
	require.NoError(t, err)
	res, err := g.Move(chess.Pos(7, 4))
	require.NoError(t, err)

	assert.True(t, res.GameOver)
	assert.Equal(t, chess.Black, res.Loser)
	assert.True(t, g.Over())
	assert.Equal(t, game.GameOver, g.State())
	assert.Equal(t, chess.Black, g.Loser())

	_, err = g.Select("bk1")
	assert.ErrorIs(t, err, errors.ErrGameOver)
	_, err = g.Promote("queen")
	assert.ErrorIs(t, err, errors.ErrGameOver)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "AwaitingSelection", game.AwaitingSelection.String())
	assert.Equal(t, "PromotionPending", game.PromotionPending.String())
	assert.Equal(t, "GameOver", game.GameOver.String())
	assert.Equal(t, "Unknown", game.State(9).String())
}
