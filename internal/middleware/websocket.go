package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade ensures that requests to WebSocket endpoints are valid WebSocket connection attempts.
// It also checks that the session and client are known before allowing the upgrade.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		sessionID := c.Params("id")
		if sessionID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "session ID is required")
		}

		clientID := c.Locals("clientID")
		if clientID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "client ID is required")
		}

		// The connection context is different from the upgrade context,
		// so carry the IDs across in locals.
		c.Locals("wsSessionID", sessionID)
		c.Locals("wsClientID", clientID)

		return c.Next()
	}
}
