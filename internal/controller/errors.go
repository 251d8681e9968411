package controller

import (
	"errors"

	"github.com/benbeisheim/chessrules/internal/model"
	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/gofiber/fiber/v2"
)

// Error codes
const (
	ErrSessionNotFound   = "SESSION_NOT_FOUND"
	ErrNotFound          = "NOT_FOUND"
	ErrInvalidMove       = "INVALID_MOVE"
	ErrInvalidSquare     = "INVALID_SQUARE"
	ErrInvalidFEN        = "INVALID_FEN"
	ErrNothingToUndo     = "NOTHING_TO_UNDO"
	ErrInvalidContent    = "INVALID_CONTENT_TYPE"
	ErrInvalidRequest    = "INVALID_REQUEST"
	ErrRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrInternalError     = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// sendError maps service and rules errors onto HTTP responses.
func sendError(c *fiber.Ctx, err error) error {
	status, resp := classify(err)
	return c.Status(status).JSON(resp)
}

func classify(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return fiber.StatusNotFound, ErrorResponse{Error: "session not found", Code: ErrSessionNotFound, Details: err.Error()}
	case errors.Is(err, service.ErrNothingToUndo):
		return fiber.StatusConflict, ErrorResponse{Error: "nothing to undo", Code: ErrNothingToUndo}
	case errors.Is(err, model.ErrInvalidFEN):
		return fiber.StatusBadRequest, ErrorResponse{Error: "invalid FEN", Code: ErrInvalidFEN, Details: err.Error()}
	case errors.Is(err, model.ErrIllegalMove), errors.Is(err, model.ErrInvalidPromotion):
		return fiber.StatusBadRequest, ErrorResponse{Error: "illegal move", Code: ErrInvalidMove, Details: err.Error()}
	case errors.Is(err, model.ErrOutOfBounds):
		return fiber.StatusBadRequest, ErrorResponse{Error: "invalid square", Code: ErrInvalidSquare, Details: err.Error()}
	}
	return fiber.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: ErrInternalError}
}

// customErrorHandler provides consistent error responses for errors returned
// by handlers and middleware.
func customErrorHandler(c *fiber.Ctx, err error) error {
	var e *fiber.Error
	if !errors.As(err, &e) {
		return sendError(c, err)
	}

	response := ErrorResponse{Error: e.Message, Code: ErrInternalError}
	switch e.Code {
	case fiber.StatusNotFound:
		response.Code = ErrNotFound
	case fiber.StatusBadRequest, fiber.StatusUpgradeRequired:
		response.Code = ErrInvalidRequest
	case fiber.StatusTooManyRequests:
		response.Code = ErrRateLimitExceeded
	}
	return c.Status(e.Code).JSON(response)
}
