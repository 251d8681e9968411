package model

import "fmt"

// Position is a (row, col) coordinate. Row 0 is rank 8, col 0 is the a-file.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) OnBoard() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

func (p Position) Rank() int {
	return 8 - p.Row
}

func (p Position) File() byte {
	return byte('a' + p.Col)
}

func (p Position) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", p.File(), p.Rank())
}

func (p Position) offset(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// ParsePosition converts algebraic square text such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, ErrOutOfBounds)
	}
	p := Position{Row: int('8' - rune(s[1])), Col: int(rune(s[0]) - 'a')}
	if !p.OnBoard() {
		return Position{}, fmt.Errorf("square %q: %w", s, ErrOutOfBounds)
	}
	return p, nil
}

type Square struct {
	Position Position `json:"position"`
	Occupant *Piece   `json:"piece"`
}

// NewSquare refuses to build a square that is not on the board.
func NewSquare(pos Position, occupant *Piece) (Square, error) {
	if !pos.OnBoard() {
		return Square{}, fmt.Errorf("square %v: %w", pos, ErrOutOfBounds)
	}
	return Square{Position: pos, Occupant: occupant}, nil
}

func (s Square) Rank() int {
	return s.Position.Rank()
}

func (s Square) File() byte {
	return s.Position.File()
}

func (s Square) String() string {
	return s.Position.String()
}

// IsLight reports the square colour; a8 and h1 are light.
func (s Square) IsLight() bool {
	return (s.Position.Row*7+s.Position.Col)%2 == 0
}

func (s Square) Empty() bool {
	return s.Occupant == nil
}
