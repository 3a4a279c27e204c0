package chess

import "fmt"

// Position is a (row, column) pair. Validity is a predicate, not a type:
// positions produced by move generation may lie off the board.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for constructing a Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Valid reports whether both coordinates lie in [0, BoardSize).
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Offset returns the position shifted by dr rows and dc columns.
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats the position as "(row, col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// ComparePositions orders positions row-major. It returns a negative number
// when a sorts before b, zero when equal, positive otherwise.
func ComparePositions(a, b Position) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
