package controller

import (
	"log"

	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/gofiber/fiber/v2"
)

type SessionController struct {
	sessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{sessionService: sessionService}
}

// PositionMoves answers which moves the piece on a square has in a FEN position.
func (sc *SessionController) PositionMoves(c *fiber.Ctx) error {
	var req PositionMovesRequest
	if handled, err := bindBody(c, &req); handled {
		return err
	}

	analysis, err := sc.sessionService.PositionMoves(req.FEN, req.Square)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(analysis)
}

func (sc *SessionController) PositionResult(c *fiber.Ctx) error {
	var req PositionResultRequest
	if handled, err := bindBody(c, &req); handled {
		return err
	}

	analysis, err := sc.sessionService.PositionResult(req.FEN)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(analysis)
}

func (sc *SessionController) CreateSession(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if handled, err := bindBody(c, &req); handled {
		return err
	}

	state, err := sc.sessionService.CreateSession(req.FEN)
	if err != nil {
		return sendError(c, err)
	}
	log.Printf("client %v created session %s", c.Locals("clientID"), state.ID)
	return c.Status(fiber.StatusCreated).JSON(state)
}

func (sc *SessionController) GetSession(c *fiber.Ctx) error {
	state, err := sc.sessionService.GetSessionState(c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(state)
}

func (sc *SessionController) LegalMoves(c *fiber.Ctx) error {
	moves, err := sc.sessionService.LegalMoves(c.Params("id"), c.Params("square"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"square": c.Params("square"),
		"moves":  moves,
	})
}

func (sc *SessionController) MakeMove(c *fiber.Ctx) error {
	var req MoveRequest
	if handled, err := bindBody(c, &req); handled {
		return err
	}

	state, err := sc.sessionService.HandleMove(c.Params("id"), req.Move)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(state)
}

func (sc *SessionController) Undo(c *fiber.Ctx) error {
	state, err := sc.sessionService.HandleUndo(c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(state)
}

func (sc *SessionController) DeleteSession(c *fiber.Ctx) error {
	if err := sc.sessionService.DeleteSession(c.Params("id")); err != nil {
		return sendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
