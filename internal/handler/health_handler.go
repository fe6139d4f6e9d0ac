package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const probeTimeout = 2 * time.Second

// readinessProbe reports whether a single backing dependency is reachable.
type readinessProbe func(ctx context.Context) error

func RegisterHealthRoutes(app fiber.Router, sqlDB *sql.DB, rdb *redis.Client) {
	probes := map[string]readinessProbe{
		"postgres": sqlDB.PingContext,
		"redis": func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		},
	}

	app.Get("/livez", Livez)
	app.Get("/readyz", Readyz(probes))
}

func Livez(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}

func Readyz(probes map[string]readinessProbe) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), probeTimeout)
		defer cancel()

		checks := fiber.Map{}
		ready := true
		for name, probe := range probes {
			if err := probe(ctx); err != nil {
				checks[name] = "down"
				ready = false
				continue
			}
			checks[name] = "ok"
		}

		status := "ready"
		statusCode := fiber.StatusOK
		if !ready {
			status = "not_ready"
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(fiber.Map{
			"status": status,
			"checks": checks,
		})
	}
}
