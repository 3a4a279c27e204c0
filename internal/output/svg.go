package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/console-chess-go/internal/board"
	"github.com/lgbarn/console-chess-go/internal/chess"
)

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	whiteText   = "fill:#ffffff;stroke:#000000;stroke-width:0.5"
	blackText   = "fill:#000000"
)

// OpenFunc returns the destination for the frame of a turn.
type OpenFunc func(turn int) (io.WriteCloser, error)

// SVGWriter draws each frame as a separate SVG image, row 7 at the top.
type SVGWriter struct {
	open     OpenFunc
	tileSize int
}

// NewSVGWriter creates an SVG writer that obtains one destination per frame
// from open.
func NewSVGWriter(open OpenFunc, tileSize int) *SVGWriter {
	return &SVGWriter{open: open, tileSize: tileSize}
}

// NewSVGDirWriter writes frames to dir/turn-NNN.svg.
func NewSVGDirWriter(dir string, tileSize int) *SVGWriter {
	return NewSVGWriter(func(turn int) (io.WriteCloser, error) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		return os.Create(filepath.Join(dir, fmt.Sprintf("turn-%03d.svg", turn)))
	}, tileSize)
}

// WriteBoard draws one frame.
func (sw *SVGWriter) WriteBoard(turn int, snap board.Snapshot) error {
	w, err := sw.open(turn)
	if err != nil {
		return fmt.Errorf("opening frame for turn %d: %w", turn, err)
	}
	DrawSVG(w, snap, sw.tileSize)
	return w.Close()
}

// Flush is a no-op; each frame is closed after drawing.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}

// DrawSVG draws the snapshot on a square canvas of 8 tiles per side.
func DrawSVG(w io.Writer, snap board.Snapshot, tileSize int) {
	side := chess.BoardSize * tileSize
	canvas := svg.New(w)
	canvas.Start(side, side)
	for row := 0; row < chess.BoardSize; row++ {
		y := (chess.BoardSize - 1 - row) * tileSize
		for col := 0; col < chess.BoardSize; col++ {
			x := col * tileSize
			fill := lightSquare
			if (row+col)%2 == 0 {
				fill = darkSquare
			}
			canvas.Rect(x, y, tileSize, tileSize, fill)

			p := snap[row][col]
			if p.IsEmpty() {
				continue
			}
			text := blackText
			if p.Owner == chess.White {
				text = whiteText
			}
			canvas.Text(x+tileSize/2, y+tileSize*3/5, p.Name,
				fmt.Sprintf("text-anchor:middle;font-family:monospace;font-size:%dpx;%s", tileSize/3, text))
		}
	}
	canvas.End()
}
