package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/console-chess-go/internal/board"
	"github.com/lgbarn/console-chess-go/internal/config"
)

// TestGrid_Initial verifies the text grid of the starting position
func TestGrid_Initial(t *testing.T) {
	lines := strings.Split(strings.TrimSuffix(Grid(board.NewInitial().Snapshot()), "\n"), "\n")
	require.Len(t, lines, 8)

	assert.Equal(t, " wr1  wk1  wb1  wQu  wK*  wb2  wk2  wr2 ", lines[0])
	assert.Equal(t, " wp1  wp2  wp3  wp4  wp5  wp6  wp7  wp8 ", lines[1])
	for row := 2; row < 6; row++ {
		assert.Equal(t, strings.Repeat(" ___ ", 8), lines[row])
	}
	assert.Equal(t, " bp1  bp2  bp3  bp4  bp5  bp6  bp7  bp8 ", lines[6])
	assert.Equal(t, " br1  bk1  bb1  bQu  bK*  bb2  bk2  br2 ", lines[7])
}

// TestTextWriter_WriteBoard verifies each frame ends with a blank line
func TestTextWriter_WriteBoard(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf)

	require.NoError(t, w.WriteBoard(1, board.New().Snapshot()))
	require.NoError(t, w.Flush())
	require.NoError(t, w.Close())

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n\n"))
	assert.Equal(t, 64, strings.Count(out, "___"))
}

// TestDiagramWriter_WriteBoard verifies the diagram writer produces output
func TestDiagramWriter_WriteBoard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewDiagramWriter(&buf).WriteBoard(1, board.NewInitial().Snapshot()))
	assert.NotEmpty(t, buf.String())
	assert.NotContains(t, buf.String(), "___")
}

// TestFENWriter_SideToMove verifies the side to move follows the turn number
func TestFENWriter_SideToMove(t *testing.T) {
	snap := board.NewInitial().Snapshot()
	var buf bytes.Buffer
	w := NewFENWriter(&buf)

	require.NoError(t, w.WriteBoard(1, snap))
	require.NoError(t, w.WriteBoard(4, snap))

	assert.Equal(t,
		"FEN: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1\n"+
			"FEN: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 2\n",
		buf.String())
}

// TestNewWriters verifies writer selection from configuration
func TestNewWriters(t *testing.T) {
	tests := []struct {
		name  string
		build func(*config.ConfigBuilder) *config.ConfigBuilder
		want  []string
	}{
		{
			name:  "defaults",
			build: func(b *config.ConfigBuilder) *config.ConfigBuilder { return b },
			want:  []string{"*output.TextWriter"},
		},
		{
			name: "diagram with fen",
			build: func(b *config.ConfigBuilder) *config.ConfigBuilder {
				return b.WithRenderFormat(config.Diagram).WithFEN(true)
			},
			want: []string{"*output.DiagramWriter", "*output.FENWriter"},
		},
		{
			name: "svg only",
			build: func(b *config.ConfigBuilder) *config.ConfigBuilder {
				return b.WithRenderFormat(config.NoBoard).WithSVG(t.TempDir(), 40)
			},
			want: []string{"*output.SVGWriter"},
		},
		{
			name: "nothing",
			build: func(b *config.ConfigBuilder) *config.ConfigBuilder {
				return b.WithRenderFormat(config.NoBoard)
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.build(config.NewConfigBuilder().WithOutput(&bytes.Buffer{})).Build()
			var got []string
			for _, w := range NewWriters(cfg) {
				got = append(got, typeName(w))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *TextWriter:
		return "*output.TextWriter"
	case *DiagramWriter:
		return "*output.DiagramWriter"
	case *FENWriter:
		return "*output.FENWriter"
	case *SVGWriter:
		return "*output.SVGWriter"
	}
	return "unknown"
}
