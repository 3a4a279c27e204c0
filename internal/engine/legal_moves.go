// Package engine turns a piece's movement geometry into its legal
// destinations on a given board.
package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/console-chess-go/internal/chess"
)

// Occupancy is the board view the legality filter needs.
type Occupancy interface {
	OccupantAt(pos chess.Position) chess.Piece
}

// PieceSet is an Occupancy that can also enumerate a player's pieces.
type PieceSet interface {
	Occupancy
	Live() []chess.Piece
}

// LegalMoves returns the legal destinations of piece in row-major order.
// The pipeline clips candidates to the board, drops squares held by the
// mover's own pieces and, for sliding pieces, everything beyond the first
// occupied square on each ray. An opposing piece on that first square stays
// a legal capture. Pawns are handled separately because they capture only
// diagonally. Check is not considered: kings may move into attack.
func LegalMoves(b Occupancy, piece chess.Piece) []chess.Position {
	var moves []chess.Position

	switch {
	case piece.IsEmpty():
		return nil
	case piece.Kind == chess.Pawn:
		moves = pawnMoves(b, piece)
	default:
		moves = filterCandidates(b, piece, clip(chess.CandidateMoves(piece)))
	}

	slices.SortFunc(moves, chess.ComparePositions)
	return slices.Compact(moves)
}

// IsLegal reports whether dest is among the piece's legal destinations.
func IsLegal(b Occupancy, piece chess.Piece, dest chess.Position) bool {
	return slices.Contains(LegalMoves(b, piece), dest)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(b PieceSet, colour chess.Colour) bool {
	for _, p := range b.Live() {
		if p.Owner == colour && len(LegalMoves(b, p)) > 0 {
			return true
		}
	}
	return false
}

// MovablePieces returns the names of the colour's pieces that have at least
// one legal move, in arena order.
func MovablePieces(b PieceSet, colour chess.Colour) []string {
	var names []string
	for _, p := range b.Live() {
		if p.Owner == colour && len(LegalMoves(b, p)) > 0 {
			names = append(names, p.Name)
		}
	}
	return names
}

// clip discards candidates with either coordinate outside the board.
func clip(candidates []chess.Position) []chess.Position {
	onBoard := make([]chess.Position, 0, len(candidates))
	for _, c := range candidates {
		if c.Valid() {
			onBoard = append(onBoard, c)
		}
	}
	return onBoard
}

// filterCandidates applies the occupancy and ray-blocking rules to on-board
// candidates of a non-pawn piece.
func filterCandidates(b Occupancy, piece chess.Piece, candidates []chess.Position) []chess.Position {
	var blocked map[chess.Direction]int
	if piece.Kind.IsSliding() {
		blocked = blockers(b, piece.Pos, candidates)
	}

	moves := make([]chess.Position, 0, len(candidates))
	for _, to := range candidates {
		if b.OccupantAt(to).Owner == piece.Owner {
			continue
		}
		if blocked != nil {
			r := rayTo(piece.Pos, to)
			if d, ok := blocked[r.dir]; ok && r.distance > d {
				continue
			}
		}
		moves = append(moves, to)
	}
	return moves
}
