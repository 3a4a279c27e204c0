package chess

// PieceID is the stable arena index of a piece. It never changes while the
// piece lives, even across moves.
type PieceID int

// NoPiece is the ID reported for empty squares.
const NoPiece PieceID = -1

// Piece is a live or captured piece. Empty squares are represented by a
// Piece of kind Empty with owner NoColour, so every square always has an
// occupant.
type Piece struct {
	ID    PieceID
	Kind  Kind
	Owner Colour
	Pos   Position
	Name  string

	// HasMoved is only meaningful for kinds where TracksMoved is true.
	// Pawns use it for the double step; rooks and kings carry it for castling,
	// which is not played.
	HasMoved bool
}

// EmptyAt returns the placeholder occupant of an empty square.
func EmptyAt(pos Position) Piece {
	return Piece{
		ID:    NoPiece,
		Kind:  Empty,
		Owner: NoColour,
		Pos:   pos,
		Name:  EmptyName,
	}
}

// IsEmpty reports whether the piece is the empty-square placeholder.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// IsOpponentOf reports whether p is a real piece owned by the other side.
func (p Piece) IsOpponentOf(colour Colour) bool {
	return !p.IsEmpty() && p.Owner != colour
}
