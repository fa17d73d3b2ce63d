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

type CategoryHandler struct {
	Categories *repos.CategoryRepo
	Billboards *repos.BillboardRepo
	Owner      *services.OwnershipService
}

type categoryRequest struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboardId"`
}

func (r *categoryRequest) validate(c *fiber.Ctx) error {
	var ok bool
	if r.Name, ok = validate.Required(r.Name); !ok {
		return badRequest(c, "name", "Name is required")
	}
	if r.BillboardID, ok = validate.ID(r.BillboardID); !ok {
		return badRequest(c, "billboardId", "Billboard ID is required")
	}
	return nil
}

// checkBillboard enforces that the referenced billboard lives in the same
// store; a foreign billboard reads as absent.
func (h *CategoryHandler) checkBillboard(c *fiber.Ctx, billboardID, storeID string) bool {
	ok, err := h.Billboards.ExistsInStore(billboardID, storeID)
	if err != nil {
		_ = internalError(c, "categories.billboard.check.fail", err)
		return false
	}
	if !ok {
		applog.Security(c, "access.denied.billboard", map[string]any{"billboard_id": billboardID, "store_id": storeID})
		_ = notFound(c, "Billboard")
		return false
	}
	return true
}

// GET /api/:storeId/categories - public
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	out, err := h.Categories.ListByStore(storeID)
	if err != nil {
		return internalError(c, "categories.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/:storeId/categories/:categoryId - public, includes the billboard
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("categoryId"))
	if !ok {
		return badRequest(c, "categoryId", "Category ID is required")
	}
	cat, err := h.Categories.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Category")
	}
	if err != nil {
		return internalError(c, "categories.get.fail", err)
	}
	return c.JSON(cat)
}

// POST /api/:storeId/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req categoryRequest
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
	if !h.checkBillboard(c, req.BillboardID, storeID) {
		return nil
	}

	cat, err := h.Categories.Create(uuid.NewString(), storeID, req.BillboardID, req.Name)
	if err != nil {
		return internalError(c, "categories.create.fail", err)
	}
	applog.Audit(c, "categories.create", map[string]any{"store_id": storeID, "category_id": cat.ID})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// PATCH /api/:storeId/categories/:categoryId
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "Invalid JSON body")
	}
	if err := req.validate(c); err != nil {
		return err
	}
	id, ok := validate.ID(c.Params("categoryId"))
	if !ok {
		return badRequest(c, "categoryId", "Category ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}
	if !h.checkBillboard(c, req.BillboardID, storeID) {
		return nil
	}

	n, err := h.Categories.Update(id, storeID, req.BillboardID, req.Name)
	if err != nil {
		return internalError(c, "categories.update.fail", err)
	}
	if n == 0 {
		return notFound(c, "Category")
	}
	cat, err := h.Categories.Get(id)
	if err != nil {
		return internalError(c, "categories.update.fail", err)
	}
	applog.Audit(c, "categories.update", map[string]any{"store_id": storeID, "category_id": id})
	return c.JSON(cat)
}

// DELETE /api/:storeId/categories/:categoryId
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("categoryId"))
	if !ok {
		return badRequest(c, "categoryId", "Category ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	n, err := h.Categories.Delete(id, storeID)
	if err != nil {
		return internalError(c, "categories.delete.fail", err)
	}
	if n == 0 {
		return notFound(c, "Category")
	}
	applog.Audit(c, "categories.delete", map[string]any{"store_id": storeID, "category_id": id})
	return c.JSON(fiber.Map{"id": id})
}
