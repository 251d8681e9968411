package model

import (
	"fmt"
	"strconv"
	"strings"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a board from Forsyth-Edwards Notation. The move counters
// may be omitted. Kings and rooks without a matching castling right get a
// two-entry history so that they count as moved.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, fmt.Errorf("%w: expected 4 to 6 fields, got %d", ErrInvalidFEN, len(parts))
	}

	var turn Color
	switch parts[1] {
	case "w":
		turn = White
	case "b":
		turn = Black
	default:
		return nil, fmt.Errorf("%w: turn must be 'w' or 'b', got %q", ErrInvalidFEN, parts[1])
	}

	pieces, err := parsePlacement(parts[0])
	if err != nil {
		return nil, err
	}
	if err := applyCastlingRights(pieces, parts[2]); err != nil {
		return nil, err
	}

	b, err := Setup(turn, pieces...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	if parts[3] != "-" {
		target, err := ParsePosition(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, parts[3])
		}
		epRow := 2
		if turn == Black {
			epRow = 5
		}
		if target.Row != epRow {
			return nil, fmt.Errorf("%w: en passant square %v is not on rank %d", ErrInvalidFEN, target, 8-epRow)
		}
		mover := turn.Opponent()
		pawnAt := Position{Row: target.Row + mover.forward(), Col: target.Col}
		if p := b.PieceAt(pawnAt); p == nil || p.Type != Pawn || p.Color != mover {
			return nil, fmt.Errorf("%w: no %s pawn behind en passant square %v", ErrInvalidFEN, mover, target)
		}
		b.enPassant = &pawnAt
	}

	b.fullmove = 1
	if len(parts) > 4 {
		if b.halfmove, err = strconv.Atoi(parts[4]); err != nil || b.halfmove < 0 {
			return nil, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, parts[4])
		}
	}
	if len(parts) > 5 {
		if b.fullmove, err = strconv.Atoi(parts[5]); err != nil || b.fullmove < 1 {
			return nil, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, parts[5])
		}
	}
	return b, nil
}

func parsePlacement(placement string) ([]*Piece, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	var pieces []*Piece
	for row, rank := range ranks {
		col := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			if col >= 8 {
				return nil, fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, 8-row)
			}
			t, err := ParsePieceType(string(ch))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
			}
			color := White
			if ch >= 'a' && ch <= 'z' {
				color = Black
			}
			pos := Position{Row: row, Col: col}
			pieces = append(pieces, &Piece{Type: t, Color: color, Position: pos, History: []Position{pos}})
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidFEN, 8-row, col)
		}
	}
	return pieces, nil
}

// applyCastlingRights marks every king and rook as moved unless a right in
// rights keeps it at home.
func applyCastlingRights(pieces []*Piece, rights string) error {
	unmoved := map[Position]bool{}
	if rights != "-" {
		for _, r := range rights {
			switch r {
			case 'K':
				unmoved[Position{Row: 7, Col: 4}], unmoved[Position{Row: 7, Col: 7}] = true, true
			case 'Q':
				unmoved[Position{Row: 7, Col: 4}], unmoved[Position{Row: 7, Col: 0}] = true, true
			case 'k':
				unmoved[Position{Row: 0, Col: 4}], unmoved[Position{Row: 0, Col: 7}] = true, true
			case 'q':
				unmoved[Position{Row: 0, Col: 4}], unmoved[Position{Row: 0, Col: 0}] = true, true
			default:
				return fmt.Errorf("%w: castling rights %q", ErrInvalidFEN, rights)
			}
		}
	}
	for _, p := range pieces {
		if p.Type != King && p.Type != Rook {
			continue
		}
		if unmoved[p.Position] && p.Position.Row == p.Color.backRow() {
			continue
		}
		p.History = []Position{p.Position, p.Position}
	}
	return nil
}

// FEN serialises b.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		gap := 0
		for col := 0; col < 8; col++ {
			p := b.squares[row][col]
			if p == nil {
				gap++
				continue
			}
			if gap > 0 {
				sb.WriteString(strconv.Itoa(gap))
				gap = 0
			}
			sb.WriteByte(p.FENLetter())
		}
		if gap > 0 {
			sb.WriteString(strconv.Itoa(gap))
		}
	}

	if b.turn == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	sb.WriteString(b.castlingRights())

	sb.WriteByte(' ')
	if b.enPassant != nil {
		mover := b.turn.Opponent()
		sb.WriteString(Position{Row: b.enPassant.Row - mover.forward(), Col: b.enPassant.Col}.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(fmt.Sprintf(" %d %d", b.halfmove, b.fullmove))
	return sb.String()
}

func (b *Board) castlingRights() string {
	var rights string
	for _, c := range []Color{White, Black} {
		king := b.PieceAt(Position{Row: c.backRow(), Col: 4})
		if king == nil || king.Type != King || king.Color != c || king.HasMoved() {
			continue
		}
		var side string
		for _, col := range []int{7, 0} {
			rook := b.PieceAt(Position{Row: c.backRow(), Col: col})
			if rook == nil || rook.Type != Rook || rook.Color != c || rook.HasMoved() {
				continue
			}
			if col == 7 {
				side += "K"
			} else {
				side += "Q"
			}
		}
		if c == Black {
			side = strings.ToLower(side)
		}
		rights += side
	}
	if rights == "" {
		return "-"
	}
	return rights
}
