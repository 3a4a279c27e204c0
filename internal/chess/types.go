// Package chess provides core chess types and the movement geometry of each piece kind.
package chess

import "strings"

// Colour represents the owner of a piece or the player to move.
type Colour int

const (
	NoColour Colour = iota // Unoccupied square
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// Initial returns the lowercase letter used to prefix piece names.
func (c Colour) Initial() byte {
	switch c {
	case White:
		return 'w'
	case Black:
		return 'b'
	}
	return '_'
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
// White starts on row 0 and advances toward row 7.
func ColourOffset(colour Colour) int {
	switch colour {
	case White:
		return 1
	case Black:
		return -1
	}
	return 0
}

// PromotionRow returns the far row on which a pawn of the given colour promotes.
func PromotionRow(colour Colour) int {
	if colour == Black {
		return 0
	}
	return BoardSize - 1
}

// Kind represents a chess piece type. Empty marks a square with no piece.
type Kind int

const (
	Empty Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsSliding reports whether the kind moves along rays that can be blocked.
func (k Kind) IsSliding() bool {
	return k == Rook || k == Bishop || k == Queen
}

// TracksMoved reports whether pieces of this kind record their first move.
func (k Kind) TracksMoved() bool {
	return k == Pawn || k == Rook || k == King
}

// PromotionKinds lists the kinds a pawn may promote to, keyed by the
// lowercase word a player types.
var PromotionKinds = map[string]Kind{
	"queen":  Queen,
	"rook":   Rook,
	"bishop": Bishop,
	"knight": Knight,
}

// ParsePromotion converts a promotion choice into a kind.
// Matching ignores case and surrounding whitespace.
func ParsePromotion(choice string) (Kind, bool) {
	k, ok := PromotionKinds[strings.ToLower(strings.TrimSpace(choice))]
	return k, ok
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// EmptyName is the display name of an empty square.
const EmptyName = "___"
