package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// ray identifies the line a candidate lies on as seen from the moving
// piece, plus how far along it the candidate is.
type ray struct {
	dir      chess.Direction
	distance int
}

// rayTo classifies to relative to from. Candidates of sliding pieces always
// lie on a row, column or diagonal, so the unit direction plus Chebyshev
// distance identifies them exactly.
func rayTo(from, to chess.Position) ray {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	return ray{
		dir:      chess.Direction{DRow: sign(dr), DCol: sign(dc)},
		distance: max(abs(dr), abs(dc)),
	}
}

// blockers returns, per ray direction, the distance of the nearest occupied
// square among the candidates. Squares farther along a direction than its
// blocker are unreachable.
func blockers(b Occupancy, from chess.Position, candidates []chess.Position) map[chess.Direction]int {
	nearest := make(map[chess.Direction]int)
	for _, to := range candidates {
		if b.OccupantAt(to).IsEmpty() {
			continue
		}
		r := rayTo(from, to)
		if d, ok := nearest[r.dir]; !ok || r.distance < d {
			nearest[r.dir] = r.distance
		}
	}
	return nearest
}
