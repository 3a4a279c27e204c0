package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// pawnMoves assembles a pawn's legal destinations: forward advances that
// stop at the first occupied square (pawns never capture straight ahead),
// plus forward diagonals holding an opposing piece.
func pawnMoves(b Occupancy, pawn chess.Piece) []chess.Position {
	var moves []chess.Position

	// Advances are emitted nearest first, so the double step is only
	// reachable through an empty intermediate square.
	for _, to := range chess.CandidateMoves(pawn) {
		if !to.Valid() || !b.OccupantAt(to).IsEmpty() {
			break
		}
		moves = append(moves, to)
	}

	for _, to := range chess.CandidateCaptures(pawn) {
		if !to.Valid() {
			continue
		}
		if b.OccupantAt(to).IsOpponentOf(pawn.Owner) {
			moves = append(moves, to)
		}
	}
	return moves
}
