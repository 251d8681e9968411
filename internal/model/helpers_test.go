package model

import (
	"sort"
	"testing"
)

func sq(t *testing.T, s string) Position {
	t.Helper()
	p, err := ParsePosition(s)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", s, err)
	}
	return p
}

func mustFEN(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func piece(t *testing.T, pt PieceType, c Color, s string) *Piece {
	t.Helper()
	p, err := NewPiece(pt, c, sq(t, s))
	if err != nil {
		t.Fatalf("NewPiece(%s, %s, %s): %v", pt, c, s, err)
	}
	return p
}

func setup(t *testing.T, turn Color, pieces ...*Piece) *Board {
	t.Helper()
	b, err := Setup(turn, pieces...)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return b
}

// play applies UCI moves in order, failing the test on the first illegal one.
func play(t *testing.T, b *Board, moves ...string) *Board {
	t.Helper()
	for _, text := range moves {
		m, err := ParseMove(b, text)
		if err != nil {
			t.Fatalf("ParseMove(%q) on %s: %v", text, b.FEN(), err)
		}
		b = b.ApplyMove(m)
	}
	return b
}

func moveStrings(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func perft(b *Board, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := AllLegalMoves(b)
	if depth == 1 {
		return len(moves)
	}
	n := 0
	for _, m := range moves {
		n += perft(b.ApplyMove(m), depth-1)
	}
	return n
}
