package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/console-chess-go/internal/board"
	"github.com/lgbarn/console-chess-go/internal/chess"
)

// layoutKinds maps layout letters to kinds. Uppercase is White, lowercase
// Black, '.' an empty square.
var layoutKinds = map[byte]chess.Kind{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// ParseLayout builds a board from eight lines of eight characters, the
// first line being row 0. Whitespace inside a line is ignored. Pieces are
// named "<owner><letter><n>" where letter is the uppercase kind letter for
// White and lowercase for Black, and n counts pieces of that kind, e.g.
// "wR1", "bp3". Pawns not on their starting row are marked as moved.
func ParseLayout(layout string) (*board.Board, error) {
	var rows []string
	for _, line := range strings.Split(strings.TrimSpace(layout), "\n") {
		line = strings.Join(strings.Fields(line), "")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) != chess.BoardSize {
		return nil, fmt.Errorf("layout has %d rows, want %d", len(rows), chess.BoardSize)
	}

	b := board.New()
	counts := make(map[string]int)
	for row, line := range rows {
		if len(line) != chess.BoardSize {
			return nil, fmt.Errorf("layout row %d has %d squares, want %d", row, len(line), chess.BoardSize)
		}
		for col := 0; col < chess.BoardSize; col++ {
			c := line[col]
			if c == '.' {
				continue
			}
			owner := chess.Black
			if c >= 'A' && c <= 'Z' {
				owner = chess.White
				c += 'a' - 'A'
			}
			kind, ok := layoutKinds[c]
			if !ok {
				return nil, fmt.Errorf("layout row %d col %d: unknown piece %q", row, col, line[col])
			}

			key := string([]byte{owner.Initial(), line[col]})
			counts[key]++
			id, err := b.Place(kind, owner, chess.Pos(row, col), fmt.Sprintf("%s%d", key, counts[key]))
			if err != nil {
				return nil, err
			}
			if kind == chess.Pawn && row != pawnStartRow(owner) {
				b.MarkMoved(id)
			}
		}
	}
	return b, nil
}

// BoardFromLayout is ParseLayout for test setup; it calls t.Fatal on error.
func BoardFromLayout(t testing.TB, layout string) *board.Board {
	t.Helper()
	b, err := ParseLayout(layout)
	if err != nil {
		t.Fatalf("invalid test layout: %v", err)
	}
	return b
}

// MustPiece returns the live piece with the given name or fails the test.
func MustPiece(t testing.TB, b *board.Board, name string) chess.Piece {
	t.Helper()
	p, ok := b.PieceByName(name)
	if !ok {
		t.Fatalf("no live piece named %q", name)
	}
	return p
}

func pawnStartRow(owner chess.Colour) int {
	if owner == chess.White {
		return 1
	}
	return chess.BoardSize - 2
}
