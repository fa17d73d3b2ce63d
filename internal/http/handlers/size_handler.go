package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "shopadmin/internal/log"
	"shopadmin/internal/repos"
	"shopadmin/internal/services"
	"shopadmin/internal/validate"
)

type SizeHandler struct {
	Sizes *repos.SizeRepo
	Owner *services.OwnershipService
}

type sizeRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (r *sizeRequest) validate(c *fiber.Ctx) error {
	var ok bool
	if r.Name, ok = validate.Required(r.Name); !ok {
		return badRequest(c, "name", "Name is required")
	}
	if r.Value, ok = validate.Required(r.Value); !ok {
		return badRequest(c, "value", "Value is required")
	}
	return nil
}

// GET /api/:storeId/sizes - public
func (h *SizeHandler) List(c *fiber.Ctx) error {
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	out, err := h.Sizes.ListByStore(storeID)
	if err != nil {
		return internalError(c, "sizes.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/:storeId/sizes/:sizeId - public
func (h *SizeHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("sizeId"))
	if !ok {
		return badRequest(c, "sizeId", "Size ID is required")
	}
	s, err := h.Sizes.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Size")
	}
	if err != nil {
		return internalError(c, "sizes.get.fail", err)
	}
	return c.JSON(s)
}

// POST /api/:storeId/sizes
func (h *SizeHandler) Create(c *fiber.Ctx) error {
	var req sizeRequest
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
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	s, err := h.Sizes.Create(uuid.NewString(), storeID, req.Name, req.Value)
	if err != nil {
		return internalError(c, "sizes.create.fail", err)
	}
	applog.Audit(c, "sizes.create", map[string]any{"store_id": storeID, "size_id": s.ID})
	return c.Status(fiber.StatusCreated).JSON(s)
}

// PATCH /api/:storeId/sizes/:sizeId
func (h *SizeHandler) Update(c *fiber.Ctx) error {
	var req sizeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "Invalid JSON body")
	}
	if err := req.validate(c); err != nil {
		return err
	}
	id, ok := validate.ID(c.Params("sizeId"))
	if !ok {
		return badRequest(c, "sizeId", "Size ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	n, err := h.Sizes.Update(id, storeID, req.Name, req.Value)
	if err != nil {
		return internalError(c, "sizes.update.fail", err)
	}
	if n == 0 {
		return notFound(c, "Size")
	}
	s, err := h.Sizes.Get(id)
	if err != nil {
		return internalError(c, "sizes.update.fail", err)
	}
	applog.Audit(c, "sizes.update", map[string]any{"store_id": storeID, "size_id": id})
	return c.JSON(s)
}

// DELETE /api/:storeId/sizes/:sizeId
func (h *SizeHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("sizeId"))
	if !ok {
		return badRequest(c, "sizeId", "Size ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	n, err := h.Sizes.Delete(id, storeID)
	if err != nil {
		return internalError(c, "sizes.delete.fail", err)
	}
	if n == 0 {
		return notFound(c, "Size")
	}
	applog.Audit(c, "sizes.delete", map[string]any{"store_id": storeID, "size_id": id})
	return c.JSON(fiber.Map{"id": id})
}
