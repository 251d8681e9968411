package model

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 3 10",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			if got := mustFEN(t, fen).FEN(); got != fen {
				t.Errorf("FEN() = %q; want %q", got, fen)
			}
		})
	}
}

func TestFENTracksPlay(t *testing.T) {
	tests := []struct {
		moves []string
		want  string
	}{
		{[]string{"e2e4"}, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{[]string{"e2e4", "e7e5"}, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"},
		{[]string{"e2e4", "e7e5", "e1e2"}, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 1 2"},
		{[]string{"g1f3", "g8f6", "h1g1"}, "rnbqkb1r/pppppppp/5n2/8/8/5N2/PPPPPPPP/RNBQKBR1 b Qkq - 3 2"},
	}
	for _, tt := range tests {
		b := play(t, NewBoard(), tt.moves...)
		if got := b.FEN(); got != tt.want {
			t.Errorf("after %v FEN() = %q; want %q", tt.moves, got, tt.want)
		}
	}
}

func TestParseFENOptionalCounters(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 b - -")
	if b.Turn() != Black {
		t.Errorf("Turn() = %v; want black", b.Turn())
	}
	if got, want := b.FEN(), "4k3/8/8/8/8/8/8/4K3 b - - 0 1"; got != want {
		t.Errorf("FEN() = %q; want %q", got, want)
	}
}

func TestParseFENCastlingHistory(t *testing.T) {
	b := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	tests := []struct {
		square string
		moved  bool
	}{
		{"e1", false},
		{"h1", false},
		{"a1", true},
		{"e8", false},
		{"a8", false},
		{"h8", true},
	}
	for _, tt := range tests {
		if got := b.PieceAt(sq(t, tt.square)).HasMoved(); got != tt.moved {
			t.Errorf("%s HasMoved() = %v; want %v", tt.square, got, tt.moved)
		}
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"too few fields", "8/8/8/8/8/8/8/8 w"},
		{"bad turn", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"seven ranks", "4k3/8/8/8/8/8/4K3 w - - 0 1"},
		{"short rank", "4k3/8/8/8/8/8/8/4K2 w - - 0 1"},
		{"long rank", "4k3/8/8/8/8/8/8/4K4 w - - 0 1"},
		{"unknown piece", "4k3/8/8/8/8/8/8/4X3 w - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w X - 0 1"},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 b - e3 0 1"},
		{"bad en passant square", "4k3/8/8/8/8/8/8/4K3 b - z9 0 1"},
		{"en passant on wrong rank", "4k3/8/8/8/8/3Pp3/8/4K3 w - e4 0 1"},
		{"en passant rank for other side", "4k3/8/8/3pP3/8/8/8/4K3 b - e6 0 1"},
		{"bad halfmove", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"bad fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"two kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFEN(tt.fen); !errors.Is(err, ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestParseFENEnPassantIsPlayable(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1")
	m, err := ParseMove(b, "d4e3")
	if err != nil {
		t.Fatalf("ParseMove(d4e3): %v", err)
	}
	if _, ok := m.(EnPassantMove); !ok {
		t.Errorf("d4e3 is %T; want EnPassantMove", m)
	}
}
