package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shopadmin/internal/identity"
	applog "shopadmin/internal/log"
	"shopadmin/internal/services"
)

// RequireUser resolves the acting user from the Authorization header and
// stashes the id in Locals. Mutating routes always run behind it.
func RequireUser(v *identity.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, err := v.UserFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			applog.Security(c, "auth.denied", nil)
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthenticated")
		}
		c.Locals("userID", uid)
		return c.Next()
	}
}

func currentUserID(c *fiber.Ctx) string {
	uid, _ := c.Locals("userID").(string)
	return uid
}

// authorizeStore runs the ownership guard. On failure the response has
// already been written and the handler must stop.
func authorizeStore(c *fiber.Ctx, owner *services.OwnershipService, storeID string) bool {
	if _, err := owner.AuthorizeStoreOwner(currentUserID(c), storeID); err != nil {
		if errors.Is(err, services.ErrStoreNotFound) {
			applog.Security(c, "access.denied.store", map[string]any{"store_id": storeID})
			_ = notFound(c, "Store")
		} else {
			_ = internalError(c, "authz.store.fail", err)
		}
		return false
	}
	return true
}
