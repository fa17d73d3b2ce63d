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

type BillboardHandler struct {
	Billboards *repos.BillboardRepo
	Owner      *services.OwnershipService
}

type billboardRequest struct {
	Label    string `json:"label"`
	ImageURL string `json:"imageUrl"`
}

func (r *billboardRequest) validate(c *fiber.Ctx) error {
	var ok bool
	if r.Label, ok = validate.Required(r.Label); !ok {
		return badRequest(c, "label", "Label is required")
	}
	if r.ImageURL, ok = validate.URL(r.ImageURL); !ok {
		return badRequest(c, "imageUrl", "Image URL is required")
	}
	return nil
}

// GET /api/:storeId/billboards - public
func (h *BillboardHandler) List(c *fiber.Ctx) error {
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	out, err := h.Billboards.ListByStore(storeID)
	if err != nil {
		return internalError(c, "billboards.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/:storeId/billboards/:billboardId - public
func (h *BillboardHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("billboardId"))
	if !ok {
		return badRequest(c, "billboardId", "Billboard ID is required")
	}
	b, err := h.Billboards.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Billboard")
	}
	if err != nil {
		return internalError(c, "billboards.get.fail", err)
	}
	return c.JSON(b)
}

// POST /api/:storeId/billboards
func (h *BillboardHandler) Create(c *fiber.Ctx) error {
	var req billboardRequest
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

	b, err := h.Billboards.Create(uuid.NewString(), storeID, req.Label, req.ImageURL)
	if err != nil {
		return internalError(c, "billboards.create.fail", err)
	}
	applog.Audit(c, "billboards.create", map[string]any{"store_id": storeID, "billboard_id": b.ID})
	return c.Status(fiber.StatusCreated).JSON(b)
}

// PATCH /api/:storeId/billboards/:billboardId
func (h *BillboardHandler) Update(c *fiber.Ctx) error {
	var req billboardRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "Invalid JSON body")
	}
	if err := req.validate(c); err != nil {
		return err
	}
	id, ok := validate.ID(c.Params("billboardId"))
	if !ok {
		return badRequest(c, "billboardId", "Billboard ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	n, err := h.Billboards.Update(id, storeID, req.Label, req.ImageURL)
	if err != nil {
		return internalError(c, "billboards.update.fail", err)
	}
	if n == 0 {
		return notFound(c, "Billboard")
	}
	b, err := h.Billboards.Get(id)
	if err != nil {
		return internalError(c, "billboards.update.fail", err)
	}
	applog.Audit(c, "billboards.update", map[string]any{"store_id": storeID, "billboard_id": id})
	return c.JSON(b)
}

// DELETE /api/:storeId/billboards/:billboardId
func (h *BillboardHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("billboardId"))
	if !ok {
		return badRequest(c, "billboardId", "Billboard ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	n, err := h.Billboards.Delete(id, storeID)
	if err != nil {
		return internalError(c, "billboards.delete.fail", err)
	}
	if n == 0 {
		return notFound(c, "Billboard")
	}
	applog.Audit(c, "billboards.delete", map[string]any{"store_id": storeID, "billboard_id": id})
	return c.JSON(fiber.Map{"id": id})
}
