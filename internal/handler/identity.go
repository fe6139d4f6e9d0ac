package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Identity is resolved by an upstream session layer and forwarded in this
// header; this service never parses credentials itself.
const userIDHeader = "X-User-ID"

const userIDLocal = "userId"

// RequireUser rejects requests without a resolved caller.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get(userIDHeader))
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		c.Locals(userIDLocal, userID)
		return c.Next()
	}
}

// OptionalUser captures the caller when present without blocking guests.
// Only the submission endpoint uses it.
func OptionalUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID := strings.TrimSpace(c.Get(userIDHeader)); userID != "" {
			c.Locals(userIDLocal, userID)
		}
		return c.Next()
	}
}

func callerID(c *fiber.Ctx) string {
	if value, ok := c.Locals(userIDLocal).(string); ok {
		return value
	}
	return ""
}

// optionalCallerID returns nil for guests.
func optionalCallerID(c *fiber.Ctx) *string {
	if value := callerID(c); value != "" {
		return &value
	}
	return nil
}
