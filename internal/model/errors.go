package model

import "errors"

// Sentinel errors returned by the rules core. Callers inspect them with errors.Is.
var (
	// ErrOutOfBounds indicates a position outside the 8x8 grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrIllegalMove indicates a move that the generator did not produce.
	ErrIllegalMove = errors.New("illegal move")

	// ErrMalformedSetup indicates an impossible arrangement of pieces.
	ErrMalformedSetup = errors.New("malformed setup")

	// ErrInvalidFEN indicates a FEN string that could not be parsed.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPromotion indicates a promotion to a piece a pawn cannot become.
	ErrInvalidPromotion = errors.New("invalid promotion")
)
