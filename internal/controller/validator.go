package controller

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type PositionMovesRequest struct {
	FEN    string `json:"fen" validate:"required,max=100"`
	Square string `json:"square" validate:"required,len=2"`
}

type PositionResultRequest struct {
	FEN string `json:"fen" validate:"required,max=100"`
}

type CreateSessionRequest struct {
	FEN string `json:"fen,omitempty" validate:"omitempty,max=100"`
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,min=4,max=5"`
}

// bindBody parses the JSON body into req and validates it. On failure the
// error response has already been written and handled is true.
func bindBody(c *fiber.Ctx, req interface{}) (handled bool, err error) {
	if len(c.Body()) == 0 {
		// An empty body is only acceptable for requests without required fields.
		if verr := validate.Struct(req); verr != nil {
			return true, validationFailed(c, verr)
		}
		return false, nil
	}
	if err := c.BodyParser(req); err != nil {
		return true, c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid request body",
			Code:    ErrInvalidRequest,
			Details: err.Error(),
		})
	}
	if verr := validate.Struct(req); verr != nil {
		return true, validationFailed(c, verr)
	}
	return false, nil
}

func validationFailed(c *fiber.Ctx, errs error) error {
	var details strings.Builder
	verrs, ok := errs.(validator.ValidationErrors)
	if !ok {
		details.WriteString(errs.Error())
	}
	for _, err := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch err.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", err.Field()))
		case "len":
			details.WriteString(fmt.Sprintf("%s must be exactly %s characters", err.Field(), err.Param()))
		case "min":
			if err.Type().Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at least %s", err.Field(), err.Param()))
			}
		case "max":
			if err.Type().Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", err.Field(), err.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag()))
		}
	}

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "validation failed",
		Code:    ErrInvalidRequest,
		Details: details.String(),
	})
}

// contentTypeValidator ensures POST requests carry application/json
func contentTypeValidator(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		contentType := c.Get("Content-Type")
		if contentType != "" && !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(ErrorResponse{
				Error:   "unsupported media type",
				Code:    ErrInvalidContent,
				Details: "Content-Type must be application/json",
			})
		}
	}
	return c.Next()
}
