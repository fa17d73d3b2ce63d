package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"shopadmin/internal/repos"
	"shopadmin/internal/services"
	"shopadmin/internal/validate"
)

// OrderHandler exposes owner-scoped reads. Orders carry customer contact
// details, so unlike the catalog they are never public, and they have no
// mutation surface here: the storefront checkout writes them.
type OrderHandler struct {
	Orders *repos.OrderRepo
	Owner  *services.OwnershipService
}

// GET /api/:storeId/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	out, err := h.Orders.ListByStore(storeID)
	if err != nil {
		return internalError(c, "orders.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/:storeId/orders/:orderId
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("orderId"))
	if !ok {
		return badRequest(c, "orderId", "Order ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	o, err := h.Orders.GetInStore(id, storeID)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Order")
	}
	if err != nil {
		return internalError(c, "orders.get.fail", err)
	}
	return c.JSON(o)
}
