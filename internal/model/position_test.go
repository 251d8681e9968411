package model

import (
	"errors"
	"testing"
)

func TestOnBoard(t *testing.T) {
	for row := -2; row < 10; row++ {
		for col := -2; col < 10; col++ {
			p := Position{Row: row, Col: col}
			want := row >= 0 && row <= 7 && col >= 0 && col <= 7
			if got := p.OnBoard(); got != want {
				t.Errorf("%+v.OnBoard() = %v; want %v", p, got, want)
			}
		}
	}
}

func TestPositionNotation(t *testing.T) {
	tests := []struct {
		pos  Position
		rank int
		file byte
		text string
	}{
		{Position{Row: 0, Col: 0}, 8, 'a', "a8"},
		{Position{Row: 7, Col: 7}, 1, 'h', "h1"},
		{Position{Row: 4, Col: 4}, 4, 'e', "e4"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if tt.pos.Rank() != tt.rank {
				t.Errorf("Rank() = %d; want %d", tt.pos.Rank(), tt.rank)
			}
			if tt.pos.File() != tt.file {
				t.Errorf("File() = %c; want %c", tt.pos.File(), tt.file)
			}
			if tt.pos.String() != tt.text {
				t.Errorf("String() = %q; want %q", tt.pos.String(), tt.text)
			}
			parsed, err := ParsePosition(tt.text)
			if err != nil {
				t.Fatalf("ParsePosition(%q): %v", tt.text, err)
			}
			if parsed != tt.pos {
				t.Errorf("ParsePosition(%q) = %+v; want %+v", tt.text, parsed, tt.pos)
			}
		})
	}
}

func TestParsePositionRejectsOffBoard(t *testing.T) {
	for _, s := range []string{"", "e", "i1", "a9", "a0", "e44"} {
		if _, err := ParsePosition(s); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ParsePosition(%q) error = %v; want ErrOutOfBounds", s, err)
		}
	}
}

func TestNewSquare(t *testing.T) {
	if _, err := NewSquare(Position{Row: 8, Col: 0}, nil); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("NewSquare off board error = %v; want ErrOutOfBounds", err)
	}
	sq, err := NewSquare(Position{Row: 7, Col: 0}, nil)
	if err != nil {
		t.Fatalf("NewSquare(a1): %v", err)
	}
	if sq.String() != "a1" || sq.Rank() != 1 || sq.File() != 'a' {
		t.Errorf("square = %s rank %d file %c; want a1", sq, sq.Rank(), sq.File())
	}
	if !sq.Empty() {
		t.Error("Empty() = false; want true")
	}
}

func TestSquareColour(t *testing.T) {
	tests := []struct {
		square string
		light  bool
	}{
		{"a1", false},
		{"h1", true},
		{"a8", true},
		{"h8", false},
		{"e4", true},
		{"d4", false},
	}
	for _, tt := range tests {
		pos, _ := ParsePosition(tt.square)
		sq, _ := NewSquare(pos, nil)
		if sq.IsLight() != tt.light {
			t.Errorf("%s.IsLight() = %v; want %v", tt.square, sq.IsLight(), tt.light)
		}
	}
}
