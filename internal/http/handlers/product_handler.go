package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	applog "shopadmin/internal/log"
	"shopadmin/internal/repos"
	"shopadmin/internal/services"
	"shopadmin/internal/validate"
)

type ProductHandler struct {
	Products   *repos.ProductRepo
	Categories *repos.CategoryRepo
	Sizes      *repos.SizeRepo
	Colors     *repos.ColorRepo
	Owner      *services.OwnershipService
}

type productRequest struct {
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ColorID    string          `json:"colorId"`
	SizeID     string          `json:"sizeId"`
	CategoryID string          `json:"categoryId"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
	Images     []struct {
		URL string `json:"url"`
	} `json:"images"`
}

func (r *productRequest) validate(c *fiber.Ctx) error {
	var ok bool
	if r.Name, ok = validate.Required(r.Name); !ok {
		return badRequest(c, "name", "Name is required")
	}
	if !validate.Price(r.Price) {
		return badRequest(c, "price", "Price is required")
	}
	if r.ColorID, ok = validate.ID(r.ColorID); !ok {
		return badRequest(c, "colorId", "Color ID is required")
	}
	if r.SizeID, ok = validate.ID(r.SizeID); !ok {
		return badRequest(c, "sizeId", "Size ID is required")
	}
	if r.CategoryID, ok = validate.ID(r.CategoryID); !ok {
		return badRequest(c, "categoryId", "Category ID is required")
	}
	if len(r.Images) == 0 {
		return badRequest(c, "images", "Images are required and cannot be empty")
	}
	for _, img := range r.Images {
		if _, ok := validate.URL(img.URL); !ok {
			return badRequest(c, "images", "Images are required and cannot be empty")
		}
	}
	return nil
}

func (r *productRequest) imageURLs() []string {
	urls := make([]string, 0, len(r.Images))
	for _, img := range r.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// checkRefs enforces that the referenced category, size, and color all live
// in the target store. A reference into another tenant reads as absent.
func (h *ProductHandler) checkRefs(c *fiber.Ctx, req *productRequest, storeID string) bool {
	for _, ref := range []struct {
		entity string
		id     string
		exists func(id, storeID string) (bool, error)
	}{
		{"Category", req.CategoryID, h.Categories.ExistsInStore},
		{"Size", req.SizeID, h.Sizes.ExistsInStore},
		{"Color", req.ColorID, h.Colors.ExistsInStore},
	} {
		ok, err := ref.exists(ref.id, storeID)
		if err != nil {
			_ = internalError(c, "products.ref.check.fail", err)
			return false
		}
		if !ok {
			applog.Security(c, "access.denied.ref", map[string]any{"entity": ref.entity, "id": ref.id, "store_id": storeID})
			_ = notFound(c, ref.entity)
			return false
		}
	}
	return true
}

// GET /api/:storeId/products?categoryId&colorId&sizeId&isFeatured - public.
// Archived products are never listed; isFeatured filters only on the exact
// string "true", anything else leaves the filter unset.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}

	f := repos.Filter{
		CategoryID: c.Query("categoryId"),
		SizeID:     c.Query("sizeId"),
		ColorID:    c.Query("colorId"),
	}
	if c.Query("isFeatured") == "true" {
		t := true
		f.Featured = &t
	}

	out, err := h.Products.ListByStore(storeID, f)
	if err != nil {
		return internalError(c, "products.list.fail", err)
	}
	return c.JSON(out)
}

// GET /api/:storeId/products/:productId - public, includes images/category/size/color
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "productId", "Product ID is required")
	}
	p, err := h.Products.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(c, "Product")
	}
	if err != nil {
		return internalError(c, "products.get.fail", err)
	}
	return c.JSON(p)
}

// POST /api/:storeId/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productRequest
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
	if !h.checkRefs(c, &req, storeID) {
		return nil
	}

	p, err := h.Products.Create(uuid.NewString(), repos.NewProduct{
		StoreID:    storeID,
		CategoryID: req.CategoryID,
		SizeID:     req.SizeID,
		ColorID:    req.ColorID,
		Name:       req.Name,
		Price:      req.Price,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
		ImageURLs:  req.imageURLs(),
	})
	if err != nil {
		return internalError(c, "products.create.fail", err)
	}
	applog.Audit(c, "products.create", map[string]any{"store_id": storeID, "product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PATCH /api/:storeId/products/:productId - full-row update; the image set
// is always replaced wholesale, never patched.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body", "Invalid JSON body")
	}
	if err := req.validate(c); err != nil {
		return err
	}
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "productId", "Product ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}
	if !h.checkRefs(c, &req, storeID) {
		return nil
	}

	n, err := h.Products.Update(id, repos.NewProduct{
		StoreID:    storeID,
		CategoryID: req.CategoryID,
		SizeID:     req.SizeID,
		ColorID:    req.ColorID,
		Name:       req.Name,
		Price:      req.Price,
		IsFeatured: req.IsFeatured,
		IsArchived: req.IsArchived,
		ImageURLs:  req.imageURLs(),
	})
	if err != nil {
		return internalError(c, "products.update.fail", err)
	}
	if n == 0 {
		return notFound(c, "Product")
	}
	p, err := h.Products.Get(id)
	if err != nil {
		return internalError(c, "products.update.fail", err)
	}
	applog.Audit(c, "products.update", map[string]any{"store_id": storeID, "product_id": id})
	return c.JSON(p)
}

// DELETE /api/:storeId/products/:productId
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("productId"))
	if !ok {
		return badRequest(c, "productId", "Product ID is required")
	}
	storeID, ok := validate.ID(c.Params("storeId"))
	if !ok {
		return badRequest(c, "storeId", "Store ID is required")
	}
	if !authorizeStore(c, h.Owner, storeID) {
		return nil
	}

	n, err := h.Products.Delete(id, storeID)
	if err != nil {
		return internalError(c, "products.delete.fail", err)
	}
	if n == 0 {
		return notFound(c, "Product")
	}
	applog.Audit(c, "products.delete", map[string]any{"store_id": storeID, "product_id": id})
	return c.JSON(fiber.Map{"id": id})
}
