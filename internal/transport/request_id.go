package transport

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pawhaven/adoption-core/internal/observability"
)

// RequestID propagates the caller's X-Request-ID, or mints one, so log lines
// for a request share a correlation id.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := strings.TrimSpace(c.Get(fiber.HeaderXRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.SetUserContext(observability.WithCorrelationID(c.UserContext(), requestID))
		c.Set(fiber.HeaderXRequestID, requestID)

		return c.Next()
	}
}
