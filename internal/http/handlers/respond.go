package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shopadmin/internal/log"
)

// Wire convention: 200/201 carry JSON, everything else carries plain text.

func badRequest(c *fiber.Ctx, field, msg string) error {
	applog.Security(c, "validation.fail", map[string]any{"field": field})
	return c.Status(fiber.StatusBadRequest).SendString(msg)
}

// notFound covers plain absence, ownership failures, and foreign-store
// references alike; the body never reveals which one it was.
func notFound(c *fiber.Ctx, entity string) error {
	return c.Status(fiber.StatusNotFound).SendString(entity + " not found")
}

func internalError(c *fiber.Ctx, action string, err error) error {
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).SendString("Internal error")
}
