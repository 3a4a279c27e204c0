package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/board"
	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/game"
)

// Reporter sends status lines to the output stream, commentary to the log
// and frames to every board writer.
type Reporter struct {
	cfg     *config.Config
	writers []BoardWriter
}

// NewReporter creates a reporter over the given board writers.
func NewReporter(cfg *config.Config, writers ...BoardWriter) *Reporter {
	return &Reporter{cfg: cfg, writers: writers}
}

// Report writes status events to OutputFile. Move and promotion commentary
// and the list of movable pieces go to LogFile at verbosity 2; the game
// result also at verbosity 1.
func (r *Reporter) Report(e game.Event) {
	if !e.IsStatus() {
		r.cfg.Logf(2, "Turn %d: %s\n", e.Turn, e.Message())
		return
	}
	fmt.Fprintln(r.cfg.OutputFile, e.Message())
	if len(e.Movable) > 0 {
		r.cfg.Logf(2, "Turn %d: %s can move %s\n", e.Turn, e.Player, strings.Join(e.Movable, ", "))
	}
	if e.Kind == game.EventKingLost {
		r.cfg.Logf(1, "Game over after %d turns; %s wins.\n", e.Turn-1, e.Player.Opposite())
	}
}

// Render draws the frame with every writer, stopping at the first error.
func (r *Reporter) Render(turn int, snap board.Snapshot) error {
	for _, w := range r.writers {
		if err := w.WriteBoard(turn, snap); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and closes every writer, returning the first error.
func (r *Reporter) Close() error {
	var first error
	for _, w := range r.writers {
		if err := w.Flush(); err != nil && first == nil {
			first = err
		}
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
