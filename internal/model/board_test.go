package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.Turn() != White {
			t.Errorf("Turn() = %v; want white", b.Turn())
		}
		if b.Previous() != nil {
			t.Error("Previous() != nil for the initial board")
		}
		if b.IsEmpty() {
			t.Error("IsEmpty() = true for the initial board")
		}
		if b.FEN() != InitialFEN {
			t.Errorf("FEN() = %q; want %q", b.FEN(), InitialFEN)
		}
	})

	t.Run("back ranks", func(t *testing.T) {
		want := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
		for _, c := range []Color{White, Black} {
			row := 7
			if c == Black {
				row = 0
			}
			var got []PieceType
			for col := 0; col < 8; col++ {
				p := b.PieceAt(Position{Row: row, Col: col})
				if p == nil || p.Color != c {
					t.Fatalf("%s back rank col %d = %v", c, col, p)
				}
				got = append(got, p.Type)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s back rank mismatch (-want +got):\n%s", c, diff)
			}
		}
	})

	t.Run("piece counts", func(t *testing.T) {
		for _, c := range []Color{White, Black} {
			if n := len(b.PiecesOf(c)); n != 16 {
				t.Errorf("len(PiecesOf(%s)) = %d; want 16", c, n)
			}
			if n := len(b.PiecesOf(c, Pawn)); n != 8 {
				t.Errorf("len(PiecesOf(%s, pawn)) = %d; want 8", c, n)
			}
			if n := len(b.PiecesOf(c, Rook, Bishop)); n != 4 {
				t.Errorf("len(PiecesOf(%s, rook, bishop)) = %d; want 4", c, n)
			}
		}
	})

	t.Run("fresh histories", func(t *testing.T) {
		for _, p := range append(b.PiecesOf(White), b.PiecesOf(Black)...) {
			if p.HasMoved() {
				t.Errorf("%v HasMoved() = true", p)
			}
		}
	})
}

func TestEmptyBoard(t *testing.T) {
	b := EmptyBoard()
	if !b.IsEmpty() {
		t.Error("IsEmpty() = false for the sentinel")
	}
	if EmptyBoard() != b {
		t.Error("EmptyBoard() returned a different value")
	}
	if len(b.PiecesOf(White)) != 0 || len(b.PiecesOf(Black)) != 0 {
		t.Error("sentinel has pieces")
	}
	if r := Result(b); r.Outcome != StillPlaying {
		t.Errorf("Result(empty) = %v; want still playing", r)
	}
}

func TestSquareAt(t *testing.T) {
	b := NewBoard()
	s, err := b.SquareAt(sq(t, "e1"))
	if err != nil {
		t.Fatalf("SquareAt(e1): %v", err)
	}
	if s.Occupant == nil || s.Occupant.Type != King {
		t.Errorf("SquareAt(e1) occupant = %v; want king", s.Occupant)
	}
	for _, p := range []Position{{Row: -1}, {Row: 8}, {Col: -1}, {Col: 8}} {
		if _, err := b.SquareAt(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SquareAt(%+v) error = %v; want ErrOutOfBounds", p, err)
		}
		if b.PieceAt(p) != nil {
			t.Errorf("PieceAt(%+v) != nil", p)
		}
	}
}

func TestSetupRejectsMalformed(t *testing.T) {
	wk := piece(t, King, White, "e1")
	tests := []struct {
		name   string
		pieces []*Piece
		want   error
	}{
		{"two white kings", []*Piece{wk, piece(t, King, White, "e2")}, ErrMalformedSetup},
		{"shared square", []*Piece{wk, piece(t, Queen, Black, "e1")}, ErrMalformedSetup},
		{"off board", []*Piece{{Type: Rook, Color: Black, Position: Position{Row: 9}}}, ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Setup(White, tt.pieces...); !errors.Is(err, tt.want) {
				t.Errorf("Setup error = %v; want %v", err, tt.want)
			}
		})
	}

	if _, err := NewPiece(Queen, White, Position{Row: 3, Col: 8}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("NewPiece off board error = %v; want ErrOutOfBounds", err)
	}
}

func TestWithPieceRemoved(t *testing.T) {
	b := NewBoard()
	next, err := b.WithPieceRemoved(sq(t, "d1"))
	if err != nil {
		t.Fatalf("WithPieceRemoved: %v", err)
	}
	if next.PieceAt(sq(t, "d1")) != nil {
		t.Error("queen still on d1")
	}
	if b.PieceAt(sq(t, "d1")) == nil {
		t.Error("original board lost its queen")
	}
	if next.Turn() != b.Turn() {
		t.Error("removal changed the side to move")
	}
	if _, err := b.WithPieceRemoved(Position{Row: 8}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("WithPieceRemoved off board error = %v; want ErrOutOfBounds", err)
	}
}

func TestApplyMoveIsPure(t *testing.T) {
	b := NewBoard()
	before := b.FEN()
	m, err := FindMove(b, sq(t, "g1"), sq(t, "f3"), "")
	if err != nil {
		t.Fatalf("FindMove: %v", err)
	}
	next := b.ApplyMove(m)

	if b.FEN() != before {
		t.Errorf("original board changed to %q", b.FEN())
	}
	if next.Previous() != b {
		t.Error("Previous() does not return the original board")
	}
	if next.Previous().FEN() != before {
		t.Error("undo round trip lost the original position")
	}
	if next.Turn() != Black {
		t.Errorf("Turn() = %v; want black", next.Turn())
	}
	if next.LastMove() != m {
		t.Errorf("LastMove() = %v; want %v", next.LastMove(), m)
	}

	knight := next.PieceAt(sq(t, "f3"))
	if knight == nil || knight.Type != Knight {
		t.Fatalf("f3 = %v; want knight", knight)
	}
	if diff := cmp.Diff([]Position{sq(t, "g1"), sq(t, "f3")}, knight.History); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	if orig := b.PieceAt(sq(t, "g1")); len(orig.History) != 1 {
		t.Errorf("original knight history = %v; want one entry", orig.History)
	}
}

func TestMovesFollowsUndoChain(t *testing.T) {
	b := play(t, NewBoard(), "e2e4", "e7e5", "g1f3")
	var got []string
	for _, m := range b.Moves() {
		got = append(got, m.String())
	}
	if diff := cmp.Diff([]string{"e2e4", "e7e5", "g1f3"}, got); diff != "" {
		t.Errorf("Moves() mismatch (-want +got):\n%s", diff)
	}
	if len(NewBoard().Moves()) != 0 {
		t.Error("initial board has moves")
	}
}

func TestBoardString(t *testing.T) {
	want := "  a b c d e f g h\n" +
		"8 r n b q k b n r 8\n" +
		"7 p p p p p p p p 7\n" +
		"6 . . . . . . . . 6\n" +
		"5 . . . . . . . . 5\n" +
		"4 . . . . . . . . 4\n" +
		"3 . . . . . . . . 3\n" +
		"2 P P P P P P P P 2\n" +
		"1 R N B Q K B N R 1\n" +
		"  a b c d e f g h"
	if diff := cmp.Diff(want, NewBoard().String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
	if n := len(NewBoard().Squares()); n != 64 {
		t.Errorf("len(Squares()) = %d; want 64", n)
	}
}
