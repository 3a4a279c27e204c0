package game_test

import (
	"io"

	"github.com/lgbarn/console-chess-go/internal/board"
	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/game"
)

// scriptedPrompter replays canned answers and returns io.EOF once a queue
// runs dry.
type scriptedPrompter struct {
	pieces       []string
	destinations []string
	promotions   []string

	asked []chess.Colour
}

func (s *scriptedPrompter) RequestPieceName(player chess.Colour) (string, error) {
	s.asked = append(s.asked, player)
	return pop(&s.pieces)
}

func (s *scriptedPrompter) RequestDestination(chess.Piece) (string, error) {
	return pop(&s.destinations)
}

func (s *scriptedPrompter) RequestPromotion(chess.Piece) (string, error) {
	return pop(&s.promotions)
}

func pop(queue *[]string) (string, error) {
	if len(*queue) == 0 {
		return "", io.EOF
	}
	next := (*queue)[0]
	*queue = (*queue)[1:]
	return next, nil
}

// recordingReporter keeps every event and frame it is given.
type recordingReporter struct {
	events []game.Event
	frames []board.Snapshot
	turns  []int
}

func (r *recordingReporter) Report(e game.Event) {
	r.events = append(r.events, e)
}

func (r *recordingReporter) Render(turn int, snap board.Snapshot) error {
	r.turns = append(r.turns, turn)
	r.frames = append(r.frames, snap)
	return nil
}

func (r *recordingReporter) kinds() []game.EventKind {
	kinds := make([]game.EventKind, len(r.events))
	for i, e := range r.events {
		kinds[i] = e.Kind
	}
	return kinds
}
