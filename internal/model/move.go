package model

import "fmt"

// Move is one of BasicMove, PromotionMove, EnPassantMove or CastlingMove.
// Moves are produced by the generator and consumed by Board.ApplyMove.
type Move interface {
	Piece() *Piece
	From() Position
	To() Position
	IsCapture() bool
	// String is the UCI text of the move, e.g. "e2e4" or "e7e8q".
	String() string
	isMove()
}

// BasicMove relocates a single piece, capturing whatever stands on Target.
type BasicMove struct {
	Mover    *Piece
	Target   Position
	Captured *Piece
}

func (m BasicMove) Piece() *Piece   { return m.Mover }
func (m BasicMove) From() Position  { return m.Mover.Position }
func (m BasicMove) To() Position    { return m.Target }
func (m BasicMove) IsCapture() bool { return m.Captured != nil }
func (m BasicMove) String() string  { return m.From().String() + m.To().String() }
func (BasicMove) isMove()           {}

// IsPromotionMove reports a pawn reaching its last rank.
func (m BasicMove) IsPromotionMove() bool {
	return m.Mover.Type == Pawn && m.Target.Row == m.Mover.Color.lastRow()
}

// PromotionMove is a pawn move that turns the pawn into Promotion.
type PromotionMove struct {
	BasicMove
	Promotion PieceType
}

func (m PromotionMove) String() string {
	return m.BasicMove.String() + string(m.Promotion.Letter()[0]+('a'-'A'))
}

// Promote finalises a promotion chosen by the caller.
func Promote(m BasicMove, t PieceType) (PromotionMove, error) {
	if !m.IsPromotionMove() {
		return PromotionMove{}, fmt.Errorf("%v does not reach the last rank: %w", m, ErrInvalidPromotion)
	}
	switch t {
	case Queen, Rook, Bishop, Knight:
		return PromotionMove{BasicMove: m, Promotion: t}, nil
	}
	return PromotionMove{}, fmt.Errorf("pawn cannot become %q: %w", t, ErrInvalidPromotion)
}

// EnPassantMove captures the pawn on CapturedAt while landing on the empty Target.
type EnPassantMove struct {
	Mover      *Piece
	Target     Position
	CapturedAt Position
	Captured   *Piece
}

func (m EnPassantMove) Piece() *Piece  { return m.Mover }
func (m EnPassantMove) From() Position { return m.Mover.Position }
func (m EnPassantMove) To() Position   { return m.Target }
func (EnPassantMove) IsCapture() bool  { return true }
func (m EnPassantMove) String() string { return m.From().String() + m.To().String() }
func (EnPassantMove) isMove()          {}

// CastlingMove relocates king and rook together.
type CastlingMove struct {
	King       *Piece
	Rook       *Piece
	KingTarget Position
	RookTarget Position
}

func (m CastlingMove) Piece() *Piece  { return m.King }
func (m CastlingMove) From() Position { return m.King.Position }
func (m CastlingMove) To() Position   { return m.KingTarget }
func (CastlingMove) IsCapture() bool  { return false }
func (m CastlingMove) String() string { return m.From().String() + m.To().String() }
func (CastlingMove) isMove()          {}

func (m CastlingMove) Kingside() bool {
	return m.KingTarget.Col > m.King.Position.Col
}
