package handlers

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "shopadmin/internal/log"
	"shopadmin/internal/repos"
	"shopadmin/internal/services"
	"shopadmin/internal/validate"
)

type StoreHandler struct {
	Stores *repos.StoreRepo
	Owner  *services.OwnershipService
}

type storeRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

func (r *storeRequest) validate(c *fiber.Ctx) error {
	var ok bool
	if r.Name, ok = validate.Required(r.Name); !ok {
		return badRequest(c, "name", "Name is required")
	}
	r.Address = strings.TrimSpace(r.Address)
	return nil
}

// POST /api/stores
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var req storeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "Invalid JSON body")
	}
	if err := req.validate(c); err != nil {
		return err
	}

	s, err := h.Stores.Create(uuid.NewString(), currentUserID(c), req.Name, req.Address)
	if err != nil {
		return internalError(c, "stores.create.fail", err)
	}
	applog.Audit(c, "stores.create", map[string]any{"store_id": s.ID})
	return c.Status(fiber.StatusCreated).JSON(s)
}

// GET /api/stores - stores owned by the caller
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.Stores.ListByUser(currentUserID(c))
	if err != nil {
		return internalError(c, "stores.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/stores/:storeId - owner-scoped
func (h *StoreHandler) Get(c *fiber.Ctx) error {
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	s, err := h.Owner.AuthorizeStoreOwner(currentUserID(c), storeID)
	if errors.Is(err, services.ErrStoreNotFound) {
		return notFound(c, "Store")
	}
	if err != nil {
		return internalError(c, "stores.get.fail", err)
	}
	return c.JSON(s)
}

// PATCH /api/stores/:storeId
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var req storeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "Invalid JSON body")
	}
	if err := req.validate(c); err != nil {
		return err
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}

	n, err := h.Stores.Update(storeID, currentUserID(c), req.Name, req.Address)
	if err != nil {
		return internalError(c, "stores.update.fail", err)
	}
	if n == 0 {
		applog.Security(c, "access.denied.store", map[string]any{"store_id": storeID})
		return notFound(c, "Store")
	}
	s, err := h.Stores.Get(storeID)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Store")
	}
	if err != nil {
		return internalError(c, "stores.update.fail", err)
	}
	applog.Audit(c, "stores.update", map[string]any{"store_id": storeID})
	return c.JSON(s)
}

// DELETE /api/stores/:storeId - removes the store and everything in it
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}

	n, err := h.Stores.Delete(storeID, currentUserID(c))
	if err != nil {
		return internalError(c, "stores.delete.fail", err)
	}
	if n == 0 {
		applog.Security(c, "access.denied.store", map[string]any{"store_id": storeID})
		return notFound(c, "Store")
	}
	applog.Audit(c, "stores.delete", map[string]any{"store_id": storeID})
	return c.JSON(fiber.Map{"id": storeID})
}
