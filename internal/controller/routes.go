package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/benbeisheim/chessrules/internal/middleware"
	"github.com/benbeisheim/chessrules/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

type Config struct {
	// Origins is the comma separated CORS allow list, also applied to
	// websocket upgrades.
	Origins string

	// RateLimit caps API requests per second per client IP. Zero disables it.
	RateLimit int

	Quiet bool
}

// NewApp wires the HTTP and websocket routes onto a fiber app.
func NewApp(sessionService *service.SessionService, cfg Config) *fiber.App {
	sessionController := NewSessionController(sessionService)
	wsController := NewWebSocketController(sessionService)

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	app.Use(recover.New())
	if !cfg.Quiet {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${status} ${method} ${path} ${latency}\n",
		}))
	}
	origins := cfg.Origins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowHeaders:  "Origin, Content-Type, Accept, " + middleware.ClientIDHeader,
		AllowMethods:  "GET, POST, DELETE, OPTIONS",
		ExposeHeaders: middleware.ClientIDHeader,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	// WebSocket routes
	app.Use("/ws", middleware.EnsureClientID())
	wsConfig := websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if origins != "*" {
		wsConfig.Origins = splitOrigins(origins)
	}
	app.Get("/ws/sessions/:id", middleware.WebSocketUpgrade(), websocket.New(wsController.HandleConnection, wsConfig))

	// REST routes
	api := app.Group("/api/v1", middleware.EnsureClientID())
	if cfg.RateLimit > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: 1 * time.Second,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse{
					Error:   "rate limit exceeded",
					Code:    ErrRateLimitExceeded,
					Details: fmt.Sprintf("%d requests per second allowed", cfg.RateLimit),
				})
			},
		}))
	}
	api.Use(contentTypeValidator)

	positions := api.Group("/positions")
	positions.Post("/moves", sessionController.PositionMoves)
	positions.Post("/result", sessionController.PositionResult)

	api.Post("/sessions", sessionController.CreateSession)
	sessions := api.Group("/sessions")
	sessions.Get("/:id", sessionController.GetSession)
	sessions.Get("/:id/moves/:square", sessionController.LegalMoves)
	sessions.Post("/:id/moves", sessionController.MakeMove)
	sessions.Post("/:id/undo", sessionController.Undo)
	sessions.Delete("/:id", sessionController.DeleteSession)

	return app
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
