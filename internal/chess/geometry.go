package chess

// Direction is a unit step along a row, column or diagonal.
type Direction struct {
	DRow int
	DCol int
}

// Direction sets used by the sliding pieces and the king.
var (
	OrthogonalDirections = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	DiagonalDirections   = []Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	AllDirections        = append(append([]Direction{}, OrthogonalDirections...), DiagonalDirections...)
)

// knightOffsets is the fixed L-shape set.
var knightOffsets = []Direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {-1, 2}, {1, -2}, {-1, -2}}

// maxRayLength is the farthest a sliding piece can travel in one move.
const maxRayLength = BoardSize - 1

// Directions returns the rays a sliding kind travels along, or nil.
func Directions(kind Kind) []Direction {
	switch kind {
	case Rook:
		return OrthogonalDirections
	case Bishop:
		return DiagonalDirections
	case Queen:
		return AllDirections
	}
	return nil
}

// CandidateMoves returns the squares reachable by the piece's movement
// geometry from its current position. The result depends only on the kind,
// owner, position and HasMoved flag, never on board contents, and may
// include squares off the board. Sliding candidates are emitted ray by ray,
// nearest square first.
func CandidateMoves(p Piece) []Position {
	switch p.Kind {
	case Pawn:
		return pawnAdvances(p)
	case Knight:
		return offsetsFrom(p.Pos, knightOffsets)
	case King:
		return offsetsFrom(p.Pos, AllDirections)
	case Rook, Bishop, Queen:
		dirs := Directions(p.Kind)
		moves := make([]Position, 0, len(dirs)*maxRayLength)
		for _, d := range dirs {
			for i := 1; i <= maxRayLength; i++ {
				moves = append(moves, p.Pos.Offset(d.DRow*i, d.DCol*i))
			}
		}
		return moves
	}
	return nil
}

// CandidateCaptures returns the two forward diagonals of a pawn.
// Other kinds capture along their ordinary moves and return nil.
func CandidateCaptures(p Piece) []Position {
	if p.Kind != Pawn {
		return nil
	}
	dir := ColourOffset(p.Owner)
	return []Position{p.Pos.Offset(dir, 1), p.Pos.Offset(dir, -1)}
}

// pawnAdvances returns one step forward, plus two if the pawn has not moved.
func pawnAdvances(p Piece) []Position {
	dir := ColourOffset(p.Owner)
	if dir == 0 {
		return nil
	}
	moves := []Position{p.Pos.Offset(dir, 0)}
	if !p.HasMoved {
		moves = append(moves, p.Pos.Offset(2*dir, 0))
	}
	return moves
}

func offsetsFrom(from Position, offsets []Direction) []Position {
	moves := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		moves = append(moves, from.Offset(d.DRow, d.DCol))
	}
	return moves
}
