package model

import (
	"fmt"
	"strings"
)

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an immutable snapshot of a game. Every applied move yields a new
// Board linked to its predecessor, so a Board and its ancestors may be read
// from any number of goroutines.
type Board struct {
	squares  [8][8]*Piece
	turn     Color
	previous *Board
	lastMove Move
	// enPassant is the square of a pawn that double-stepped on the last ply.
	enPassant *Position
	halfmove  int
	fullmove  int
}

var emptyBoard = &Board{turn: White, fullmove: 1}

// EmptyBoard returns the sentinel used before a game starts.
func EmptyBoard() *Board {
	return emptyBoard
}

func (b *Board) IsEmpty() bool {
	return b == emptyBoard
}

// NewBoard returns the standard initial arrangement with white to move.
func NewBoard() *Board {
	b := &Board{turn: White, fullmove: 1}
	for col, t := range backRank {
		for _, c := range []Color{White, Black} {
			back := Position{Row: c.backRow(), Col: col}
			pawn := Position{Row: c.pawnRow(), Col: col}
			b.squares[back.Row][back.Col] = &Piece{Type: t, Color: c, Position: back, History: []Position{back}}
			b.squares[pawn.Row][pawn.Col] = &Piece{Type: Pawn, Color: c, Position: pawn, History: []Position{pawn}}
		}
	}
	return b
}

// Setup builds an arbitrary position. The resulting board has no predecessor.
func Setup(turn Color, pieces ...*Piece) (*Board, error) {
	b := &Board{turn: turn, fullmove: 1}
	kings := map[Color]int{}
	for _, p := range pieces {
		if p == nil {
			continue
		}
		if !p.Position.OnBoard() {
			return nil, fmt.Errorf("%v: %w", p, ErrOutOfBounds)
		}
		if other := b.squares[p.Position.Row][p.Position.Col]; other != nil {
			return nil, fmt.Errorf("%v and %v share a square: %w", other, p, ErrMalformedSetup)
		}
		if p.Type == King {
			kings[p.Color]++
			if kings[p.Color] > 1 {
				return nil, fmt.Errorf("second %s king at %v: %w", p.Color, p.Position, ErrMalformedSetup)
			}
		}
		b.squares[p.Position.Row][p.Position.Col] = p
	}
	return b, nil
}

func (b *Board) Turn() Color {
	return b.turn
}

// Previous returns the board before the last applied move, or nil.
func (b *Board) Previous() *Board {
	return b.previous
}

// LastMove returns the move that produced this board, or nil.
func (b *Board) LastMove() Move {
	return b.lastMove
}

func (b *Board) SquareAt(pos Position) (Square, error) {
	if !pos.OnBoard() {
		return Square{}, fmt.Errorf("square %v: %w", pos, ErrOutOfBounds)
	}
	return Square{Position: pos, Occupant: b.squares[pos.Row][pos.Col]}, nil
}

// PieceAt returns nil for empty and off-board squares.
func (b *Board) PieceAt(pos Position) *Piece {
	if !pos.OnBoard() {
		return nil
	}
	return b.squares[pos.Row][pos.Col]
}

// PiecesOf lists the pieces of c, restricted to types when any are given.
func (b *Board) PiecesOf(c Color, types ...PieceType) []*Piece {
	var pieces []*Piece
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p == nil || p.Color != c {
				continue
			}
			if len(types) > 0 && !containsType(types, p.Type) {
				continue
			}
			pieces = append(pieces, p)
		}
	}
	return pieces
}

func containsType(types []PieceType, t PieceType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// King returns c's king, or nil if the board has none.
func (b *Board) King(c Color) *Piece {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.squares[row][col]; p != nil && p.Type == King && p.Color == c {
				return p
			}
		}
	}
	return nil
}

// Squares lists all 64 squares row by row, starting at a8.
func (b *Board) Squares() []Square {
	squares := make([]Square, 0, 64)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			squares = append(squares, Square{Position: Position{Row: row, Col: col}, Occupant: b.squares[row][col]})
		}
	}
	return squares
}

// WithPieceRemoved returns a copy of b without the piece on pos. Turn and
// predecessor are unchanged.
func (b *Board) WithPieceRemoved(pos Position) (*Board, error) {
	if !pos.OnBoard() {
		return nil, fmt.Errorf("remove %v: %w", pos, ErrOutOfBounds)
	}
	next := *b
	next.squares[pos.Row][pos.Col] = nil
	if next.enPassant != nil && *next.enPassant == pos {
		next.enPassant = nil
	}
	return &next, nil
}

// ApplyMove returns the successor board. m must come from the generator for
// this board; it is not validated again.
func (b *Board) ApplyMove(m Move) *Board {
	next := &Board{
		squares:  b.squares,
		turn:     b.turn.Opponent(),
		previous: b,
		lastMove: m,
		halfmove: b.halfmove + 1,
		fullmove: b.fullmove,
	}
	if b.turn == Black {
		next.fullmove++
	}
	if m.Piece().Type == Pawn || m.IsCapture() {
		next.halfmove = 0
	}

	switch mv := m.(type) {
	case BasicMove:
		if mv.IsPromotionMove() {
			next.promote(mv.Mover, mv.Target, Queen)
			break
		}
		next.relocate(mv.Mover, mv.Target)
		if mv.Mover.Type == Pawn && abs(mv.Target.Row-mv.Mover.Position.Row) == 2 {
			target := mv.Target
			next.enPassant = &target
		}
	case PromotionMove:
		next.promote(mv.Mover, mv.Target, mv.Promotion)
	case EnPassantMove:
		next.relocate(mv.Mover, mv.Target)
		next.squares[mv.CapturedAt.Row][mv.CapturedAt.Col] = nil
	case CastlingMove:
		next.relocate(mv.King, mv.KingTarget)
		next.relocate(mv.Rook, mv.RookTarget)
	}
	return next
}

func (b *Board) relocate(p *Piece, to Position) {
	b.squares[p.Position.Row][p.Position.Col] = nil
	b.squares[to.Row][to.Col] = p.MovedTo(to)
}

func (b *Board) promote(p *Piece, to Position, t PieceType) {
	b.squares[p.Position.Row][p.Position.Col] = nil
	b.squares[to.Row][to.Col] = p.Promoted(t, to)
}

// Moves returns the moves applied since the first board of the undo chain.
func (b *Board) Moves() []Move {
	var moves []Move
	for cur := b; cur != nil && cur.lastMove != nil; cur = cur.previous {
		moves = append(moves, cur.lastMove)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// String draws the board from white's side.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&sb, "%d ", 8-row)
		for col := 0; col < 8; col++ {
			if p := b.squares[row][col]; p != nil {
				fmt.Fprintf(&sb, "%c ", p.FENLetter())
			} else {
				sb.WriteString(". ")
			}
		}
		fmt.Fprintf(&sb, "%d\n", 8-row)
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
