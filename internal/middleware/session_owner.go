package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// SessionIDHeader carries the anonymous client's session key. Signed-in
	// users are keyed by their user ID instead, so a logged-in user keeps
	// one live quiz across devices.
	SessionIDHeader = "X-Session-ID"
	OwnerIDKey      = "ownerID" // Key for storing the session owner in fiber.Ctx locals
)

// SessionOwner resolves the owner key the quiz session is stored under:
// the authenticated user's ID when present, the X-Session-ID header
// otherwise. Runs after OptionalAuth. Requests carrying neither are
// rejected; there is no owner to attach a session to.
func SessionOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, ok := c.Locals(UserIDKey).(string); ok && userID != "" {
			c.Locals(OwnerIDKey, userID)
			return c.Next()
		}

		if sessionID := c.Get(SessionIDHeader); sessionID != "" {
			c.Locals(OwnerIDKey, sessionID)
			return c.Next()
		}

		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Code:    "MISSING_SESSION_ID",
			Message: "Provide a bearer token or an X-Session-ID header",
			Status:  fiber.StatusBadRequest,
		})
	}
}
