package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/chess"
)

// consolePrompter asks questions on out and reads one answer per line
// from in.
type consolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newConsolePrompter(in io.Reader, out io.Writer) *consolePrompter {
	return &consolePrompter{in: bufio.NewReader(in), out: out}
}

// RequestPieceName asks the player to name a piece.
func (p *consolePrompter) RequestPieceName(player chess.Colour) (string, error) {
	return p.ask(fmt.Sprintf("%s, which piece would you like to move? ", player))
}

// RequestDestination asks for the row and then the column. A row answer
// that already holds both coordinates is used as is.
func (p *consolePrompter) RequestDestination(piece chess.Piece) (string, error) {
	row, err := p.ask(fmt.Sprintf("What row would you like to move %s to? ", piece.Name))
	if err != nil {
		return "", err
	}
	if strings.ContainsAny(row, " ,") {
		return row, nil
	}
	col, err := p.ask(fmt.Sprintf("What column would you like to move %s to? ", piece.Name))
	if err != nil {
		return "", err
	}
	return row + " " + col, nil
}

// RequestPromotion asks which kind the pawn becomes.
func (p *consolePrompter) RequestPromotion(chess.Piece) (string, error) {
	return p.ask("What would you like to promote this pawn to, 'queen', 'rook', 'bishop', or 'knight'? ")
}

// ask prints the question and returns the trimmed answer. A final line
// without a newline is still returned; io.EOF is reported only once no
// input is left.
func (p *consolePrompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
