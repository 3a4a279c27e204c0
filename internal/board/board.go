// Package board holds the authoritative game state: an arena of pieces
// indexed by stable ID, the 8x8 occupancy grid derived from it, and each
// player's derived list of live pieces.
package board

import (
	"fmt"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// entry is an arena slot. Captured and promoted-away pieces keep their slot
// so IDs stay stable; they are simply no longer live.
type entry struct {
	piece chess.Piece
	live  bool
}

// Player is a read-only view of one side. Pieces is recomputed by Rebuild
// and never mutated independently.
type Player struct {
	Colour chess.Colour
	Pieces []chess.PieceID
}

// Board is the arena plus its derived views. The grid and the player lists
// are only valid after Rebuild, which every mutating method calls.
// A Board is not safe for concurrent use.
type Board struct {
	arena   []entry
	grid    [chess.BoardSize][chess.BoardSize]chess.PieceID
	players [2]Player
}

// New creates an empty board with no pieces.
func New() *Board {
	b := &Board{
		players: [2]Player{{Colour: chess.White}, {Colour: chess.Black}},
	}
	b.clearGrid()
	return b
}

func (b *Board) clearGrid() {
	for row := range b.grid {
		for col := range b.grid[row] {
			b.grid[row][col] = chess.NoPiece
		}
	}
}

// Place adds a new live piece and returns its ID. The position must be on
// the board and unoccupied, and the name unique among live pieces.
func (b *Board) Place(kind chess.Kind, owner chess.Colour, pos chess.Position, name string) (chess.PieceID, error) {
	if kind == chess.Empty || owner == chess.NoColour {
		return chess.NoPiece, fmt.Errorf("cannot place %v owned by %v: %w", kind, owner, errors.ErrIllegalMove)
	}
	if !pos.Valid() {
		return chess.NoPiece, fmt.Errorf("place %s at %v: %w", name, pos, errors.ErrOffBoard)
	}
	if occ := b.OccupantAt(pos); !occ.IsEmpty() {
		return chess.NoPiece, fmt.Errorf("place %s at %v held by %s: %w", name, pos, occ.Name, errors.ErrOccupied)
	}
	if _, ok := b.PieceByName(name); ok {
		return chess.NoPiece, fmt.Errorf("place %s: %w", name, errors.ErrDuplicateName)
	}

	id := chess.PieceID(len(b.arena))
	b.arena = append(b.arena, entry{
		piece: chess.Piece{ID: id, Kind: kind, Owner: owner, Pos: pos, Name: name},
		live:  true,
	})
	b.Rebuild()
	return id, nil
}

// Piece returns the arena entry for id and whether it is live.
func (b *Board) Piece(id chess.PieceID) (chess.Piece, bool) {
	if id < 0 || int(id) >= len(b.arena) {
		return chess.Piece{}, false
	}
	e := b.arena[id]
	return e.piece, e.live
}

// PieceByName looks up a live piece by its unique name.
func (b *Board) PieceByName(name string) (chess.Piece, bool) {
	for _, e := range b.arena {
		if e.live && e.piece.Name == name {
			return e.piece, true
		}
	}
	return chess.Piece{}, false
}

// OccupantAt returns the piece on pos, or the empty placeholder. Callers
// must check pos.Valid first; off-board positions report an empty square.
func (b *Board) OccupantAt(pos chess.Position) chess.Piece {
	if !pos.Valid() {
		return chess.EmptyAt(pos)
	}
	id := b.grid[pos.Row][pos.Col]
	if id == chess.NoPiece {
		return chess.EmptyAt(pos)
	}
	return b.arena[id].piece
}

// Live returns every live piece in arena order.
func (b *Board) Live() []chess.Piece {
	pieces := make([]chess.Piece, 0, len(b.arena))
	for _, e := range b.arena {
		if e.live {
			pieces = append(pieces, e.piece)
		}
	}
	return pieces
}

// Player returns the derived view for colour.
func (b *Board) Player(colour chess.Colour) Player {
	p := b.players[playerIndex(colour)]
	return Player{Colour: p.Colour, Pieces: append([]chess.PieceID(nil), p.Pieces...)}
}

func playerIndex(colour chess.Colour) int {
	if colour == chess.Black {
		return 1
	}
	return 0
}

// Capture describes the result of a committed move.
type Capture struct {
	Captured chess.Piece
	Ok       bool
}

// ApplyMove moves the piece to dest. If dest holds an opposing piece it is
// removed from play. The vacated square becomes empty. The caller is
// responsible for legality; moving onto a friendly piece is refused.
func (b *Board) ApplyMove(id chess.PieceID, dest chess.Position) (Capture, error) {
	piece, live := b.Piece(id)
	if !live {
		return Capture{}, fmt.Errorf("piece id %d: %w", id, errors.ErrUnknownPiece)
	}
	if !dest.Valid() {
		return Capture{}, fmt.Errorf("move %s to %v: %w", piece.Name, dest, errors.ErrOffBoard)
	}

	var result Capture
	target := b.OccupantAt(dest)
	if !target.IsEmpty() {
		if target.Owner == piece.Owner {
			return Capture{}, fmt.Errorf("%s cannot capture own %s: %w", piece.Name, target.Name, errors.ErrIllegalMove)
		}
		b.arena[target.ID].live = false
		result = Capture{Captured: target, Ok: true}
	}

	b.arena[id].piece.Pos = dest
	b.Rebuild()
	return result, nil
}

// MarkMoved sets HasMoved on a piece whose kind tracks it.
func (b *Board) MarkMoved(id chess.PieceID) {
	if _, live := b.Piece(id); !live {
		return
	}
	if b.arena[id].piece.Kind.TracksMoved() {
		b.arena[id].piece.HasMoved = true
	}
}

// Remove takes a live piece out of play without placing anything in its
// square.
func (b *Board) Remove(id chess.PieceID) error {
	if _, live := b.Piece(id); !live {
		return fmt.Errorf("piece id %d: %w", id, errors.ErrUnknownPiece)
	}
	b.arena[id].live = false
	b.Rebuild()
	return nil
}

// Rebuild recomputes the grid and both players' piece lists from the live
// arena entries.
func (b *Board) Rebuild() {
	b.clearGrid()
	for i := range b.players {
		b.players[i].Pieces = b.players[i].Pieces[:0]
	}
	for _, e := range b.arena {
		if !e.live {
			continue
		}
		p := e.piece
		b.grid[p.Pos.Row][p.Pos.Col] = p.ID
		idx := playerIndex(p.Owner)
		b.players[idx].Pieces = append(b.players[idx].Pieces, p.ID)
	}
}

// KingsAlive reports whether both players still have a king. When one has
// lost it, loser names that player (White is checked first).
func (b *Board) KingsAlive() (alive bool, loser chess.Colour) {
	for _, player := range b.players {
		hasKing := false
		for _, id := range player.Pieces {
			if b.arena[id].piece.Kind == chess.King {
				hasKing = true
				break
			}
		}
		if !hasKing {
			return false, player.Colour
		}
	}
	return true, chess.NoColour
}
