// Package output draws board frames and reports game events to the console.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/board"
	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/notation"
)

// BoardWriter is the interface for drawing board frames.
// Different implementations handle different formats (text, diagram, SVG).
type BoardWriter interface {
	// WriteBoard draws the board as it stands at the start of turn.
	WriteBoard(turn int, snap board.Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	Close() error
}

// NewWriters returns the board writers selected by cfg, console formats
// first.
func NewWriters(cfg *config.Config) []BoardWriter {
	var writers []BoardWriter
	switch cfg.Render.Format {
	case config.TextGrid:
		writers = append(writers, NewTextWriter(cfg.OutputFile))
	case config.Diagram:
		writers = append(writers, NewDiagramWriter(cfg.OutputFile))
	}
	if cfg.Render.ShowFEN {
		writers = append(writers, NewFENWriter(cfg.OutputFile))
	}
	if cfg.Render.SVGDir != "" {
		writers = append(writers, NewSVGDirWriter(cfg.Render.SVGDir, cfg.Render.TileSize))
	}
	return writers
}

// Grid renders the snapshot as rows of " name " cells, row 0 first.
func Grid(snap board.Snapshot) string {
	var sb strings.Builder
	for _, row := range snap.Names() {
		for _, name := range row {
			sb.WriteByte(' ')
			sb.WriteString(name)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TextWriter writes the plain grid of piece names.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text grid writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteBoard writes the grid followed by a blank line.
func (tw *TextWriter) WriteBoard(_ int, snap board.Snapshot) error {
	_, err := fmt.Fprintln(tw.w, Grid(snap))
	return err
}

// Flush is a no-op; the grid is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// DiagramWriter writes a unicode diagram with White at the bottom.
type DiagramWriter struct {
	w io.Writer
}

// NewDiagramWriter creates a new diagram writer.
func NewDiagramWriter(w io.Writer) *DiagramWriter {
	return &DiagramWriter{w: w}
}

// WriteBoard writes the diagram.
func (dw *DiagramWriter) WriteBoard(_ int, snap board.Snapshot) error {
	_, err := fmt.Fprintln(dw.w, notation.Diagram(snap))
	return err
}

// Flush is a no-op.
func (dw *DiagramWriter) Flush() error {
	return nil
}

// Close closes the diagram writer.
func (dw *DiagramWriter) Close() error {
	return nil
}

// FENWriter writes one FEN record per frame.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WriteBoard writes the FEN record with the side to move taken from turn.
func (fw *FENWriter) WriteBoard(turn int, snap board.Snapshot) error {
	toMove := chess.White
	if turn%2 == 0 {
		toMove = chess.Black
	}
	_, err := fmt.Fprintf(fw.w, "FEN: %s\n", notation.FEN(snap, toMove, turn))
	return err
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}
