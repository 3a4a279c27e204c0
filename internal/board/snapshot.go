package board

import "github.com/lgbarn/console-chess-go/internal/chess"

// Snapshot is an immutable copy of every square's occupant, row 0 first.
type Snapshot [chess.BoardSize][chess.BoardSize]chess.Piece

// Snapshot copies the current grid.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			s[row][col] = b.OccupantAt(chess.Pos(row, col))
		}
	}
	return s
}

// At returns the occupant recorded for pos.
func (s Snapshot) At(pos chess.Position) chess.Piece {
	if !pos.Valid() {
		return chess.EmptyAt(pos)
	}
	return s[pos.Row][pos.Col]
}

// Names returns the grid of piece names, empty squares as "___".
func (s Snapshot) Names() [chess.BoardSize][chess.BoardSize]string {
	var names [chess.BoardSize][chess.BoardSize]string
	for row := range s {
		for col := range s[row] {
			names[row][col] = s[row][col].Name
		}
	}
	return names
}
