package game

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// ParseDestination reads a destination typed as two integers, "row col",
// "row,col" or "(row, col)". Anything that is not exactly two integers is
// ErrInvalidFormat; integers outside the board are ErrOffBoard.
func ParseDestination(raw string) (chess.Position, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(",()[]", r)
	})
	if len(fields) != 2 {
		return chess.Position{}, fmt.Errorf("%q has %d values: %w", raw, len(fields), errors.ErrInvalidFormat)
	}

	var coords [2]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return chess.Position{}, fmt.Errorf("%q: %w", raw, errors.ErrInvalidFormat)
		}
		coords[i] = n
	}

	pos := chess.Pos(coords[0], coords[1])
	if !pos.Valid() {
		return pos, fmt.Errorf("%v: %w", pos, errors.ErrOffBoard)
	}
	return pos, nil
}
