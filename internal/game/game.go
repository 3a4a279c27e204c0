// Package game runs the turn engine: piece selection, destination choice,
// promotion, turn advance and the king-capture win condition.
//
// A Game is a single-threaded state machine. It is not safe for concurrent
// use; a service hosting games must serialize calls per Game.
package game

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/console-chess-go/internal/board"
	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/engine"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Game holds the board, the turn counter and the state machine.
// Odd turns are White's, even turns Black's.
type Game struct {
	board      *board.Board
	turn       int
	promotions int
	state      State
	loser      chess.Colour

	selected chess.PieceID
	moves    []chess.Position
	pending  chess.Piece // pawn removed from play awaiting promotion
}

// Option configures a new Game.
type Option func(*Game)

// WithBoard starts the game from b instead of the standard position.
func WithBoard(b *board.Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

// WithTurn starts the game at the given turn number; even numbers give
// Black the first move.
func WithTurn(turn int) Option {
	return func(g *Game) {
		if turn > 0 {
			g.turn = turn
		}
	}
}

// New creates a game in the standard starting position, White to move.
func New(opts ...Option) *Game {
	g := &Game{
		turn:     1,
		state:    AwaitingSelection,
		selected: chess.NoPiece,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = board.NewInitial()
	}
	g.board.Rebuild()
	g.checkKings()
	return g
}

// Result describes a committed (or promotion-pending) move.
type Result struct {
	Piece            chess.Piece // The moved piece after the move
	From             chess.Position
	To               chess.Position
	Captured         chess.Piece
	HasCapture       bool
	PromotionPending bool
	Promoted         chess.Piece // Set by Promote
	GameOver         bool
	Loser            chess.Colour
}

// Turn returns the current turn number, starting at 1.
func (g *Game) Turn() int { return g.turn }

// ToMove returns the player whose turn it is.
func (g *Game) ToMove() chess.Colour {
	if g.turn%2 == 1 {
		return chess.White
	}
	return chess.Black
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// Over reports whether a king has been captured.
func (g *Game) Over() bool { return g.state == GameOver }

// Loser returns the player who lost their king, or NoColour.
func (g *Game) Loser() chess.Colour { return g.loser }

// Board exposes the underlying board for read access.
func (g *Game) Board() *board.Board { return g.board }

// Snapshot returns a copy of the current grid.
func (g *Game) Snapshot() board.Snapshot { return g.board.Snapshot() }

// Selected returns the piece chosen for this turn, if any.
func (g *Game) Selected() (chess.Piece, bool) {
	if g.selected == chess.NoPiece {
		return chess.Piece{}, false
	}
	return g.board.Piece(g.selected)
}

// PendingPromotion returns the pawn waiting to be promoted, if any.
func (g *Game) PendingPromotion() (chess.Piece, bool) {
	return g.pending, g.state == PromotionPending
}

// Movable returns the names of the pieces the player to move can move.
func (g *Game) Movable() []string {
	return engine.MovablePieces(g.board, g.ToMove())
}

// Stuck reports whether the player to move has no legal move at all. King
// capture is the only way a game ends, so a stuck player cannot finish it.
func (g *Game) Stuck() bool {
	return g.state == AwaitingSelection && !engine.HasLegalMoves(g.board, g.ToMove())
}

// Select chooses the piece to move and returns its legal destinations.
// The name must belong to a live piece of the player to move. A piece with
// no legal moves is not selected and the turn does not advance.
func (g *Game) Select(name string) ([]chess.Position, error) {
	if err := g.ready(); err != nil {
		return nil, err
	}

	piece, ok := g.board.PieceByName(name)
	if !ok || piece.Owner != g.ToMove() {
		g.Deselect()
		return nil, g.moveError(errors.ErrUnknownPiece, "", name)
	}

	moves := engine.LegalMoves(g.board, piece)
	if len(moves) == 0 {
		g.Deselect()
		return nil, g.moveError(errors.ErrNoLegalMoves, piece.Name, "")
	}

	g.selected = piece.ID
	g.moves = moves
	g.state = AwaitingDestination
	return slices.Clone(moves), nil
}

// Deselect discards the current selection without consuming the turn.
func (g *Game) Deselect() {
	if g.state == AwaitingDestination {
		g.state = AwaitingSelection
	}
	g.selected = chess.NoPiece
	g.moves = nil
}

// Move commits the selected piece to dest. Rejected destinations leave the
// board, the selection and the turn untouched. A pawn reaching the far row
// is taken off the board and the game waits in PromotionPending until
// Promote succeeds.
func (g *Game) Move(dest chess.Position) (Result, error) {
	if err := g.ready(); err != nil {
		return Result{}, err
	}
	if g.state != AwaitingDestination {
		return Result{}, g.moveError(errors.ErrNoSelection, "", "")
	}

	piece, _ := g.board.Piece(g.selected)
	if !dest.Valid() {
		return Result{}, g.moveError(errors.ErrOffBoard, piece.Name, dest.String())
	}
	if !slices.Contains(g.moves, dest) {
		return Result{}, g.moveError(errors.ErrIllegalMove, piece.Name, dest.String())
	}
	if g.board.OccupantAt(dest).Owner == piece.Owner {
		return Result{}, g.moveError(errors.ErrIllegalMove, piece.Name, dest.String())
	}

	capture, err := g.board.ApplyMove(piece.ID, dest)
	if err != nil {
		return Result{}, g.moveError(err, piece.Name, dest.String())
	}
	g.board.MarkMoved(piece.ID)
	moved, _ := g.board.Piece(piece.ID)

	res := Result{
		Piece:      moved,
		From:       piece.Pos,
		To:         dest,
		Captured:   capture.Captured,
		HasCapture: capture.Ok,
	}

	if moved.Kind == chess.Pawn && dest.Row == chess.PromotionRow(moved.Owner) {
		if err := g.board.Remove(moved.ID); err != nil {
			return Result{}, err
		}
		g.pending = moved
		g.selected = chess.NoPiece
		g.moves = nil
		g.state = PromotionPending
		res.PromotionPending = true
		return res, nil
	}

	g.commit(&res)
	return res, nil
}

// Promote replaces the pending pawn with a new piece of the chosen kind
// ("queen", "rook", "bishop" or "knight") and completes the turn.
func (g *Game) Promote(choice string) (Result, error) {
	if g.state == GameOver {
		return Result{}, g.moveError(errors.ErrGameOver, "", "")
	}
	if g.state != PromotionPending {
		return Result{}, g.moveError(errors.Wrap(errors.ErrInvalidPromotion, "no pawn awaiting promotion"), "", choice)
	}

	kind, ok := chess.ParsePromotion(choice)
	if !ok {
		return Result{}, g.moveError(errors.ErrInvalidPromotion, g.pending.Name, choice)
	}

	pawn := g.pending
	id, err := g.board.Place(kind, pawn.Owner, pawn.Pos, g.promotionName(pawn.Owner, kind))
	if err != nil {
		return Result{}, g.moveError(err, pawn.Name, choice)
	}
	g.promotions++
	promoted, _ := g.board.Piece(id)

	g.pending = chess.Piece{}
	res := Result{Piece: pawn, To: pawn.Pos, Promoted: promoted}
	g.commit(&res)
	return res, nil
}

// promotionName builds "<owner><letter><n>". Queens count from 1, other
// kinds from 3 (two of each already exist); n also carries the shared
// promotion counter and is bumped until the name is free.
func (g *Game) promotionName(owner chess.Colour, kind chess.Kind) string {
	base := 3
	if kind == chess.Queen {
		base = 1
	}
	for {
		name := fmt.Sprintf("%c%c%d", owner.Initial(), board.NameLetter(kind), base+g.promotions)
		if _, taken := g.board.PieceByName(name); !taken {
			return name
		}
		g.promotions++
	}
}

// commit finishes a turn: rebuild the views, advance the turn and check
// for a missing king.
func (g *Game) commit(res *Result) {
	g.board.Rebuild()
	g.turn++
	g.selected = chess.NoPiece
	g.moves = nil
	g.state = AwaitingSelection
	g.checkKings()
	res.GameOver = g.Over()
	res.Loser = g.loser
}

func (g *Game) checkKings() {
	if alive, loser := g.board.KingsAlive(); !alive {
		g.state = GameOver
		g.loser = loser
	}
}

// ready rejects calls that cannot proceed in the current state.
func (g *Game) ready() error {
	switch g.state {
	case GameOver:
		return g.moveError(errors.ErrGameOver, "", "")
	case PromotionPending:
		return g.moveError(errors.ErrPromotionPending, g.pending.Name, "")
	}
	return nil
}

func (g *Game) moveError(err error, piece, input string) error {
	return &errors.MoveError{
		Err:    err,
		Turn:   g.turn,
		Player: g.ToMove().String(),
		Piece:  piece,
		Input:  input,
	}
}
