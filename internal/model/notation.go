package model

import "strings"

// SAN renders m, a legal move on b, in standard algebraic notation.
func SAN(b *Board, m Move) string {
	var sb strings.Builder
	switch mv := m.(type) {
	case CastlingMove:
		if mv.Kingside() {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	default:
		p := m.Piece()
		if p.Type == Pawn {
			if m.IsCapture() {
				sb.WriteByte(m.From().File())
			}
		} else {
			sb.WriteString(p.Type.Letter())
			sb.WriteString(disambiguation(b, m))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To().String())
		if pm, ok := m.(PromotionMove); ok {
			sb.WriteString("=" + pm.Promotion.Letter())
		} else if bm, ok := m.(BasicMove); ok && bm.IsPromotionMove() {
			sb.WriteString("=Q")
		}
	}

	next := b.ApplyMove(m)
	if IsCheck(next) {
		if hasLegalMoves(next) {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

// disambiguation returns the file, rank or square needed to tell m apart
// from moves of identical pieces to the same square.
func disambiguation(b *Board, m Move) string {
	p := m.Piece()
	var rivals []*Piece
	for _, other := range b.PiecesOf(p.Color, p.Type) {
		if other.Position == p.Position {
			continue
		}
		for _, om := range LegalMoves(other, b) {
			if om.To() == m.To() {
				rivals = append(rivals, other)
				break
			}
		}
	}
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, r := range rivals {
		if r.Position.Col == p.Position.Col {
			sameFile = true
		}
		if r.Position.Row == p.Position.Row {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(p.Position.File())
	case !sameRank:
		return string(rune('0' + p.Position.Rank()))
	}
	return p.Position.String()
}

// History returns the SAN of every move in b's undo chain, oldest first.
func History(b *Board) []string {
	var boards []*Board
	for cur := b; cur != nil && cur.lastMove != nil; cur = cur.previous {
		boards = append(boards, cur)
	}
	sans := make([]string, len(boards))
	for i, cur := range boards {
		sans[len(boards)-1-i] = SAN(cur.previous, cur.lastMove)
	}
	return sans
}
