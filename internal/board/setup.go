package board

import (
	"fmt"

	"github.com/lgbarn/console-chess-go/internal/chess"
)

// backRank is the standard order of pieces on rows 0 and 7.
var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// nameLetters maps a kind to the letter used in piece names. Knights use
// 'k'; the king is named with '*' instead (wK*, bK*).
var nameLetters = map[chess.Kind]byte{
	chess.Pawn:   'p',
	chess.Knight: 'k',
	chess.Bishop: 'b',
	chess.Rook:   'r',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// NameLetter returns the letter used for kind in piece names.
func NameLetter(kind chess.Kind) byte {
	if l, ok := nameLetters[kind]; ok {
		return l
	}
	return '_'
}

// NewInitial creates a board in the standard starting position. White
// occupies rows 0 and 1 and moves toward row 7.
func NewInitial() *Board {
	b := New()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		homeRow, pawnRow := 0, 1
		if colour == chess.Black {
			homeRow, pawnRow = chess.BoardSize-1, chess.BoardSize-2
		}
		for col := 0; col < chess.BoardSize; col++ {
			b.add(chess.Pawn, colour, chess.Pos(pawnRow, col), initialName(colour, chess.Pawn, col+1))
		}

		seen := make(map[chess.Kind]int)
		for col, kind := range backRank {
			seen[kind]++
			b.add(kind, colour, chess.Pos(homeRow, col), initialName(colour, kind, seen[kind]))
		}
	}
	b.Rebuild()
	return b
}

// add appends a live piece without validation or rebuilding. Used for the
// fixed starting layout only.
func (b *Board) add(kind chess.Kind, owner chess.Colour, pos chess.Position, name string) {
	id := chess.PieceID(len(b.arena))
	b.arena = append(b.arena, entry{
		piece: chess.Piece{ID: id, Kind: kind, Owner: owner, Pos: pos, Name: name},
		live:  true,
	})
}

// initialName returns the three-character name of a starting piece.
func initialName(colour chess.Colour, kind chess.Kind, n int) string {
	prefix := string([]byte{colour.Initial(), NameLetter(kind)})
	switch kind {
	case chess.Queen:
		return prefix + "u"
	case chess.King:
		return prefix + "*"
	}
	return fmt.Sprintf("%s%d", prefix, n)
}
