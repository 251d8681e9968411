package model

import (
	"fmt"
	"strings"
)

// LegalMoves returns the moves of p that obey piece movement and leave p's
// own king safe.
func LegalMoves(p *Piece, b *Board) []Move {
	return GenerateMoves(p, b, true)
}

// GenerateMoves returns the moves of p on b. With validateForCheck unset the
// result is the relaxed set: movement and occupancy rules only, no castling,
// no king-safety filter. Attack computation uses the relaxed set so it never
// recurses into the filter.
func GenerateMoves(p *Piece, b *Board, validateForCheck bool) []Move {
	if p == nil {
		return nil
	}
	var moves []Move
	switch p.Type {
	case Pawn:
		moves = pawnMoves(p, b)
	case Rook, Bishop, Queen:
		moves = slidingMoves(p, b)
	case Knight, King:
		moves = steppingMoves(p, b)
	}
	if !validateForCheck {
		return moves
	}
	if p.Type == King {
		moves = append(moves, castlingMoves(p, b)...)
	}
	return filterLegalMoves(p, b, moves)
}

// AllLegalMoves returns every legal move of the side to move.
func AllLegalMoves(b *Board) []Move {
	var moves []Move
	for _, p := range b.PiecesOf(b.turn) {
		moves = append(moves, LegalMoves(p, b)...)
	}
	return moves
}

func filterLegalMoves(p *Piece, b *Board, moves []Move) []Move {
	legal := make([]Move, 0, len(moves))
	for _, m := range moves {
		next := b.ApplyMove(m)
		king := next.King(p.Color)
		if king == nil || !IsAttacked(king.Position, p.Color.Opponent(), next) {
			legal = append(legal, m)
		}
	}
	return legal
}

func slidingMoves(p *Piece, b *Board) []Move {
	var moves []Move
	for _, dir := range p.Directions() {
		target := p.Position.offset(dir)
		for target.OnBoard() {
			occupant := b.PieceAt(target)
			if occupant == nil {
				moves = append(moves, BasicMove{Mover: p, Target: target})
			} else {
				if occupant.Color != p.Color {
					moves = append(moves, BasicMove{Mover: p, Target: target, Captured: occupant})
				}
				break
			}
			target = target.offset(dir)
		}
	}
	return moves
}

func steppingMoves(p *Piece, b *Board) []Move {
	var moves []Move
	for _, dir := range p.Directions() {
		target := p.Position.offset(dir)
		if !target.OnBoard() {
			continue
		}
		occupant := b.PieceAt(target)
		if occupant != nil && occupant.Color == p.Color {
			continue
		}
		moves = append(moves, BasicMove{Mover: p, Target: target, Captured: occupant})
	}
	return moves
}

func pawnMoves(p *Piece, b *Board) []Move {
	var moves []Move
	dir := p.Color.forward()

	one := p.Position.offset(Position{Row: dir})
	if one.OnBoard() && b.PieceAt(one) == nil {
		moves = appendPawnMove(moves, BasicMove{Mover: p, Target: one})
		two := one.offset(Position{Row: dir})
		if p.Position.Row == p.Color.pawnRow() && b.PieceAt(two) == nil {
			moves = append(moves, BasicMove{Mover: p, Target: two})
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := p.Position.offset(Position{Row: dir, Col: dc})
		if !diag.OnBoard() {
			continue
		}
		if target := b.PieceAt(diag); target != nil {
			if target.Color != p.Color {
				moves = appendPawnMove(moves, BasicMove{Mover: p, Target: diag, Captured: target})
			}
			continue
		}
		beside := Position{Row: p.Position.Row, Col: diag.Col}
		if b.enPassant == nil || *b.enPassant != beside {
			continue
		}
		if victim := b.PieceAt(beside); victim != nil && victim.Type == Pawn && victim.Color != p.Color {
			moves = append(moves, EnPassantMove{Mover: p, Target: diag, CapturedAt: beside, Captured: victim})
		}
	}
	return moves
}

// appendPawnMove expands a move onto the last rank into one promotion per type.
func appendPawnMove(moves []Move, m BasicMove) []Move {
	if !m.IsPromotionMove() {
		return append(moves, m)
	}
	for _, t := range PromotionTypes {
		moves = append(moves, PromotionMove{BasicMove: m, Promotion: t})
	}
	return moves
}

// castlingMoves requires an unmoved king and rook on the same row, empty
// squares between them, and no attack on the king's origin, transit or
// destination square.
func castlingMoves(king *Piece, b *Board) []Move {
	if king.HasMoved() || king.Position.Row != king.Color.backRow() {
		return nil
	}
	enemy := king.Color.Opponent()
	if IsAttacked(king.Position, enemy, b) {
		return nil
	}
	var moves []Move
	for _, rook := range b.PiecesOf(king.Color, Rook) {
		if rook.HasMoved() || rook.Position.Row != king.Position.Row {
			continue
		}
		step := 1
		if rook.Position.Col < king.Position.Col {
			step = -1
		}
		if abs(rook.Position.Col-king.Position.Col) < 3 {
			continue
		}
		if !pathClear(b, king.Position, rook.Position, step) {
			continue
		}
		transit := Position{Row: king.Position.Row, Col: king.Position.Col + step}
		landing := Position{Row: king.Position.Row, Col: king.Position.Col + 2*step}
		if IsAttacked(transit, enemy, b) || IsAttacked(landing, enemy, b) {
			continue
		}
		moves = append(moves, CastlingMove{King: king, Rook: rook, KingTarget: landing, RookTarget: transit})
	}
	return moves
}

func pathClear(b *Board, from, to Position, step int) bool {
	for col := from.Col + step; col != to.Col; col += step {
		if b.squares[from.Row][col] != nil {
			return false
		}
	}
	return true
}

// FindMove returns the legal move of the side to move from one square to
// another. An empty promotion selects a queen.
func FindMove(b *Board, from, to Position, promotion PieceType) (Move, error) {
	p := b.PieceAt(from)
	if p == nil {
		return nil, fmt.Errorf("no piece on %v: %w", from, ErrIllegalMove)
	}
	if p.Color != b.turn {
		return nil, fmt.Errorf("%v: %s to move: %w", p, b.turn, ErrIllegalMove)
	}
	if promotion == "" {
		promotion = Queen
	}
	for _, m := range LegalMoves(p, b) {
		if m.To() != to {
			continue
		}
		if pm, ok := m.(PromotionMove); ok && pm.Promotion != promotion {
			continue
		}
		return m, nil
	}
	return nil, fmt.Errorf("%v to %v: %w", p, to, ErrIllegalMove)
}

// ParseMove resolves UCI move text such as "e2e4" or "e7e8n" against b.
func ParseMove(b *Board, text string) (Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return nil, fmt.Errorf("move %q: %w", text, ErrIllegalMove)
	}
	from, err := ParsePosition(text[0:2])
	if err != nil {
		return nil, fmt.Errorf("move %q: %w", text, err)
	}
	to, err := ParsePosition(text[2:4])
	if err != nil {
		return nil, fmt.Errorf("move %q: %w", text, err)
	}
	var promotion PieceType
	if len(text) == 5 {
		promotion, err = ParsePieceType(text[4:])
		if err != nil {
			return nil, fmt.Errorf("move %q: %w", text, ErrInvalidPromotion)
		}
	}
	return FindMove(b, from, to, promotion)
}
