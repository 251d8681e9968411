package model

import "fmt"

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// PromotionTypes lists what a pawn may become, in generation order.
var PromotionTypes = []PieceType{Queen, Rook, Bishop, Knight}

func (t PieceType) Valid() bool {
	switch t {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// Letter is the SAN piece letter; pawns have none.
func (t PieceType) Letter() string {
	switch t {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// ParsePieceType accepts full names ("queen") and letters ("q", "Q").
func ParsePieceType(s string) (PieceType, error) {
	switch s {
	case "k", "K", string(King):
		return King, nil
	case "q", "Q", string(Queen):
		return Queen, nil
	case "r", "R", string(Rook):
		return Rook, nil
	case "b", "B", string(Bishop):
		return Bishop, nil
	case "n", "N", string(Knight):
		return Knight, nil
	case "p", "P", string(Pawn):
		return Pawn, nil
	}
	return "", fmt.Errorf("unknown piece type %q", s)
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// forward is the row step of a pawn of this colour.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) pawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

func (c Color) lastRow() int {
	if c == White {
		return 0
	}
	return 7
}

func (c Color) backRow() int {
	if c == White {
		return 7
	}
	return 0
}

var (
	rookDirs   = []Position{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	bishopDirs = []Position{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	royalDirs  = append(append([]Position{}, rookDirs...), bishopDirs...)
	knightDirs = []Position{{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1}, {Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2}}
)

// Piece is an immutable value. Moving it yields a new Piece whose History
// is the old one plus the destination.
type Piece struct {
	Type     PieceType  `json:"type"`
	Color    Color      `json:"color"`
	Position Position   `json:"position"`
	History  []Position `json:"history"`
}

func NewPiece(t PieceType, c Color, pos Position) (*Piece, error) {
	if !pos.OnBoard() {
		return nil, fmt.Errorf("%s %s at %v: %w", c, t, pos, ErrOutOfBounds)
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%s at %v: %w: unknown piece type %q", c, pos, ErrMalformedSetup, t)
	}
	return &Piece{Type: t, Color: c, Position: pos, History: []Position{pos}}, nil
}

func (p *Piece) HasMoved() bool {
	return len(p.History) > 1
}

// Directions returns the one-step movement vectors; pawns have none.
func (p *Piece) Directions() []Position {
	switch p.Type {
	case Rook:
		return rookDirs
	case Bishop:
		return bishopDirs
	case Queen, King:
		return royalDirs
	case Knight:
		return knightDirs
	}
	return nil
}

func (p *Piece) Sliding() bool {
	return p.Type == Rook || p.Type == Bishop || p.Type == Queen
}

// MovedTo returns a copy of p standing on pos.
func (p *Piece) MovedTo(pos Position) *Piece {
	history := make([]Position, len(p.History), len(p.History)+1)
	copy(history, p.History)
	return &Piece{
		Type:     p.Type,
		Color:    p.Color,
		Position: pos,
		History:  append(history, pos),
	}
}

// Promoted returns a fresh piece of type t on p's square. History restarts there.
func (p *Piece) Promoted(t PieceType, pos Position) *Piece {
	return &Piece{Type: t, Color: p.Color, Position: pos, History: []Position{pos}}
}

// FENLetter is upper case for white, lower case for black.
func (p *Piece) FENLetter() byte {
	l := byte('P')
	if p.Type != Pawn {
		l = p.Type.Letter()[0]
	}
	if p.Color == Black {
		l += 'a' - 'A'
	}
	return l
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s %v", p.Color, p.Type, p.Position)
}
