package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/board"
	"github.com/lgbarn/console-chess-go/internal/chess"
)

// Prompter is the blocking input side of the front end. Each method returns
// the raw text the player entered; the game validates it and asks again on
// bad input. An error (typically io.EOF) aborts the game loop.
type Prompter interface {
	RequestPieceName(player chess.Colour) (string, error)
	RequestDestination(piece chess.Piece) (string, error)
	RequestPromotion(pawn chess.Piece) (string, error)
}

// Reporter is the output side of the front end.
type Reporter interface {
	// Report emits a status line.
	Report(e Event)

	// Render draws the board after a committed turn (and once at start).
	Render(turn int, snap board.Snapshot) error
}

// EventKind classifies a reported event.
type EventKind int

const (
	EventLegalMoves EventKind = iota
	EventNoMoves
	EventInvalidPiece
	EventInvalidFormat
	EventIllegalMove
	EventInvalidPromotion
	EventMoved
	EventPromoted
	EventKingLost
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	names := []string{
		"LegalMoves", "NoMoves", "InvalidPiece", "InvalidFormat", "IllegalMove",
		"InvalidPromotion", "Moved", "Promoted", "KingLost",
	}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Event is something the front end should tell the players.
type Event struct {
	Kind   EventKind
	Turn   int
	Player chess.Colour

	Piece    string           // Piece involved, if any
	Moves    []chess.Position // EventLegalMoves
	From     chess.Position   // EventMoved
	To       chess.Position   // EventMoved
	Captured string           // EventMoved, empty when nothing was taken
	Promoted string           // EventPromoted: name of the new piece
	Movable  []string         // EventInvalidPiece, EventNoMoves: pieces that can move
}

// IsStatus reports whether the event is a player-facing status line, as
// opposed to move commentary.
func (e Event) IsStatus() bool {
	return e.Kind != EventMoved && e.Kind != EventPromoted
}

// Message returns the human-readable line for the event.
func (e Event) Message() string {
	switch e.Kind {
	case EventLegalMoves:
		return "Possible moves: " + FormatPositions(e.Moves)
	case EventNoMoves:
		return "No possible moves."
	case EventInvalidPiece:
		return "Invalid piece."
	case EventInvalidFormat:
		return "Invalid format."
	case EventIllegalMove:
		return "That is not a valid move."
	case EventInvalidPromotion:
		return "Invalid promotion."
	case EventMoved:
		msg := fmt.Sprintf("%s moved from %v to %v", e.Piece, e.From, e.To)
		if e.Captured != "" {
			msg += ", capturing " + e.Captured
		}
		return msg + "."
	case EventPromoted:
		return fmt.Sprintf("%s promoted to %s.", e.Piece, e.Promoted)
	case EventKingLost:
		return fmt.Sprintf("%s has lost their King!", e.Player)
	}
	return ""
}

// FormatPositions renders positions as "[(r, c), (r, c)]".
func FormatPositions(moves []chess.Position) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
