package game

import (
	stderrors "errors"
	"fmt"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Run plays until a king is captured, rendering the board at the start and
// after every committed turn. Invalid input is reported and asked for again;
// only Prompter or Reporter failures end Run early.
func (g *Game) Run(p Prompter, r Reporter) error {
	if err := r.Render(g.turn, g.Snapshot()); err != nil {
		return err
	}
	for !g.Over() {
		if err := g.PlayTurn(p, r); err != nil {
			return err
		}
	}
	r.Report(Event{Kind: EventKingLost, Turn: g.turn, Player: g.loser})
	return nil
}

// PlayTurn drives one full turn through the Prompter: select a piece with
// legal moves, choose a legal destination, resolve any promotion, then
// render. It resumes from whatever state the game is in.
func (g *Game) PlayTurn(p Prompter, r Reporter) error {
	if g.Over() {
		return g.moveError(errors.ErrGameOver, "", "")
	}
	turn, player := g.turn, g.ToMove()
	if g.Stuck() {
		return g.moveError(fmt.Errorf("%s cannot move any piece: %w", player, errors.ErrNoLegalMoves), "", "")
	}

	for g.state == AwaitingSelection {
		name, err := p.RequestPieceName(player)
		if err != nil {
			return err
		}
		moves, err := g.Select(name)
		switch {
		case stderrors.Is(err, errors.ErrUnknownPiece):
			r.Report(Event{Kind: EventInvalidPiece, Turn: turn, Player: player, Movable: g.Movable()})
		case stderrors.Is(err, errors.ErrNoLegalMoves):
			r.Report(Event{Kind: EventNoMoves, Turn: turn, Player: player, Piece: name, Movable: g.Movable()})
		case err != nil:
			return err
		default:
			r.Report(Event{Kind: EventLegalMoves, Turn: turn, Player: player, Piece: name, Moves: moves})
		}
	}

	var moved Result
	committed := false
	for g.state == AwaitingDestination {
		piece, _ := g.Selected()
		raw, err := p.RequestDestination(piece)
		if err != nil {
			return err
		}
		dest, err := ParseDestination(raw)
		if err == nil {
			moved, err = g.Move(dest)
		}
		switch {
		case stderrors.Is(err, errors.ErrInvalidFormat):
			r.Report(Event{Kind: EventInvalidFormat, Turn: turn, Player: player, Piece: piece.Name})
		case stderrors.Is(err, errors.ErrOffBoard), stderrors.Is(err, errors.ErrIllegalMove):
			r.Report(Event{Kind: EventIllegalMove, Turn: turn, Player: player, Piece: piece.Name})
		case err != nil:
			return err
		default:
			committed = true
		}
	}
	if committed {
		r.Report(movedEvent(turn, player, moved))
	}

	for g.state == PromotionPending {
		pawn, _ := g.PendingPromotion()
		choice, err := p.RequestPromotion(pawn)
		if err != nil {
			return err
		}
		promoted, err := g.Promote(choice)
		switch {
		case stderrors.Is(err, errors.ErrInvalidPromotion):
			r.Report(Event{Kind: EventInvalidPromotion, Turn: turn, Player: player, Piece: pawn.Name})
		case err != nil:
			return err
		default:
			r.Report(Event{
				Kind:     EventPromoted,
				Turn:     turn,
				Player:   player,
				Piece:    pawn.Name,
				Promoted: promoted.Promoted.Name,
			})
		}
	}

	return r.Render(g.turn, g.Snapshot())
}

func movedEvent(turn int, player chess.Colour, res Result) Event {
	e := Event{
		Kind:   EventMoved,
		Turn:   turn,
		Player: player,
		Piece:  res.Piece.Name,
		From:   res.From,
		To:     res.To,
	}
	if res.HasCapture {
		e.Captured = res.Captured.Name
	}
	return e
}
