package model

// IsAttacked reports whether any piece of colour by could capture on pos.
// Pawns attack their forward diagonals whether or not they are occupied;
// every other piece attacks the targets of its relaxed moves.
func IsAttacked(pos Position, by Color, b *Board) bool {
	for _, p := range b.PiecesOf(by) {
		if p.Type == Pawn {
			if pos.Row == p.Position.Row+by.forward() && abs(pos.Col-p.Position.Col) == 1 {
				return true
			}
			continue
		}
		for _, m := range GenerateMoves(p, b, false) {
			if m.To() == pos {
				return true
			}
		}
	}
	return false
}

// IsSquareAttacked reports whether the player not on turn attacks pos.
func IsSquareAttacked(pos Position, b *Board) bool {
	return IsAttacked(pos, b.turn.Opponent(), b)
}

// IsCheck reports whether the side to move has its king attacked.
func IsCheck(b *Board) bool {
	king := b.King(b.turn)
	if king == nil {
		return false
	}
	return IsSquareAttacked(king.Position, b)
}

func IsCheckmate(b *Board) bool {
	return IsCheck(b) && !hasLegalMoves(b)
}

// IsStalemate requires a king for the side to move, so the empty board is
// never stalemate.
func IsStalemate(b *Board) bool {
	return b.King(b.turn) != nil && !IsCheck(b) && !hasLegalMoves(b)
}

func hasLegalMoves(b *Board) bool {
	for _, p := range b.PiecesOf(b.turn) {
		if len(LegalMoves(p, b)) > 0 {
			return true
		}
	}
	return false
}

type Outcome string

const (
	StillPlaying Outcome = "still_playing"
	WhiteWins    Outcome = "white_wins"
	BlackWins    Outcome = "black_wins"
	Draw         Outcome = "draw"
)

type Reason string

const (
	NoReason  Reason = ""
	Checkmate Reason = "checkmate"
	Stalemate Reason = "stalemate"
)

type GameResult struct {
	Outcome Outcome `json:"outcome"`
	Reason  Reason  `json:"reason,omitempty"`
}

func (r GameResult) Terminal() bool {
	return r.Outcome != StillPlaying
}

func (r GameResult) String() string {
	switch r.Outcome {
	case WhiteWins:
		return "White wins by " + string(r.Reason)
	case BlackWins:
		return "Black wins by " + string(r.Reason)
	case Draw:
		return "Draw by " + string(r.Reason)
	}
	return "Still playing"
}

// Result classifies b for the side to move.
func Result(b *Board) GameResult {
	if b.King(b.turn) == nil {
		return GameResult{Outcome: StillPlaying}
	}
	if hasLegalMoves(b) {
		return GameResult{Outcome: StillPlaying}
	}
	if !IsCheck(b) {
		return GameResult{Outcome: Draw, Reason: Stalemate}
	}
	if b.turn == White {
		return GameResult{Outcome: BlackWins, Reason: Checkmate}
	}
	return GameResult{Outcome: WhiteWins, Reason: Checkmate}
}
