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

type ColorHandler struct {
	Colors *repos.ColorRepo
	Owner  *services.OwnershipService
}

type colorRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (r *colorRequest) validate(c *fiber.Ctx) error {
	var ok bool
	if r.Name, ok = validate.Required(r.Name); !ok {
		return badRequest(c, "name", "Name is required")
	}
	if r.Value, ok = validate.Required(r.Value); !ok {
		return badRequest(c, "value", "Value is required")
	}
	if r.Value, ok = validate.HexColor(r.Value); !ok {
		return badRequest(c, "value", "Value must be a valid hex code")
	}
	return nil
}

// GET /api/:storeId/colors - public
func (h *ColorHandler) List(c *fiber.Ctx) error {
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	out, err := h.Colors.ListByStore(storeID)
	if err != nil {
		return internalError(c, "colors.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/:storeId/colors/:colorId - public
func (h *ColorHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("colorId"))
	if !ok {
		return badRequest(c, "colorId", "Color ID is required")
	}
	col, err := h.Colors.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Color")
	}
	if err != nil {
		return internalError(c, "colors.get.fail", err)
	}
	return c.JSON(col)
}

// POST /api/:storeId/colors
func (h *ColorHandler) Create(c *fiber.Ctx) error {
	var req colorRequest
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

	col, err := h.Colors.Create(uuid.NewString(), storeID, req.Name, req.Value)
	if err != nil {
		return internalError(c, "colors.create.fail", err)
	}
	applog.Audit(c, "colors.create", map[string]any{"store_id": storeID, "color_id": col.ID})
	return c.Status(fiber.StatusCreated).JSON(col)
}

// PATCH /api/:storeId/colors/:colorId
func (h *ColorHandler) Update(c *fiber.Ctx) error {
	var req colorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "Invalid JSON body")
	}
	if err := req.validate(c); err != nil {
		return err
	}
	id, ok := validate.ID(c.Params("colorId"))
	if !ok {
		return badRequest(c, "colorId", "Color ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	n, err := h.Colors.Update(id, storeID, req.Name, req.Value)
	if err != nil {
		return internalError(c, "colors.update.fail", err)
	}
	if n == 0 {
		return notFound(c, "Color")
	}
	col, err := h.Colors.Get(id)
	if err != nil {
		return internalError(c, "colors.update.fail", err)
	}
	applog.Audit(c, "colors.update", map[string]any{"store_id": storeID, "color_id": id})
	return c.JSON(col)
}

// DELETE /api/:storeId/colors/:colorId
func (h *ColorHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("colorId"))
	if !ok {
		return badRequest(c, "colorId", "Color ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	n, err := h.Colors.Delete(id, storeID)
	if err != nil {
		return internalError(c, "colors.delete.fail", err)
	}
	if n == 0 {
		return notFound(c, "Color")
	}
	applog.Audit(c, "colors.delete", map[string]any{"store_id": storeID, "color_id": id})
	return c.JSON(fiber.Map{"id": id})
}
