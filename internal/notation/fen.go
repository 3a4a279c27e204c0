// Package notation exports board snapshots in standard chess notations.
//
// Row 0 is White's back rank (rank 1) and column 0 is the a-file.
package notation

import (
	"fmt"

	corentings "github.com/corentings/chess/v2"

	"github.com/lgbarn/console-chess-go/internal/board"
	"github.com/lgbarn/console-chess-go/internal/chess"
)

// pieceCodes maps a coloured kind onto the library piece.
var pieceCodes = [2][chess.NumKinds]corentings.Piece{
	{
		chess.Pawn:   corentings.WhitePawn,
		chess.Knight: corentings.WhiteKnight,
		chess.Bishop: corentings.WhiteBishop,
		chess.Rook:   corentings.WhiteRook,
		chess.Queen:  corentings.WhiteQueen,
		chess.King:   corentings.WhiteKing,
	},
	{
		chess.Pawn:   corentings.BlackPawn,
		chess.Knight: corentings.BlackKnight,
		chess.Bishop: corentings.BlackBishop,
		chess.Rook:   corentings.BlackRook,
		chess.Queen:  corentings.BlackQueen,
		chess.King:   corentings.BlackKing,
	},
}

// Square converts a position into a library square.
func Square(pos chess.Position) corentings.Square {
	return corentings.Square(pos.Col + chess.BoardSize*pos.Row)
}

// PieceCode converts a piece into a library piece. Empty squares map to
// NoPiece.
func PieceCode(p chess.Piece) corentings.Piece {
	if p.IsEmpty() || p.Kind <= chess.Empty || p.Kind >= chess.NumKinds {
		return corentings.NoPiece
	}
	switch p.Owner {
	case chess.White:
		return pieceCodes[0][p.Kind]
	case chess.Black:
		return pieceCodes[1][p.Kind]
	}
	return corentings.NoPiece
}

// Board builds a library board from a snapshot.
func Board(snap board.Snapshot) *corentings.Board {
	squares := make(map[corentings.Square]corentings.Piece)
	for row := range snap {
		for col := range snap[row] {
			if code := PieceCode(snap[row][col]); code != corentings.NoPiece {
				squares[Square(chess.Pos(row, col))] = code
			}
		}
	}
	return corentings.NewBoard(squares)
}

// Placement returns the piece placement field of a FEN string.
func Placement(snap board.Snapshot) string {
	return Board(snap).String()
}

// FEN returns a full FEN record for the snapshot. Castling and en passant
// are not part of these rules, so both fields are always "-".
func FEN(snap board.Snapshot, toMove chess.Colour, turn int) string {
	side := "w"
	if toMove == chess.Black {
		side = "b"
	}
	fullMove := (turn + 1) / 2
	if fullMove < 1 {
		fullMove = 1
	}
	return fmt.Sprintf("%s %s - - 0 %d", Placement(snap), side, fullMove)
}

// Diagram draws the snapshot as a unicode board with rank and file labels,
// White at the bottom.
func Diagram(snap board.Snapshot) string {
	return Board(snap).Draw()
}
