package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopadmin/internal/identity"
)

// Register mounts the full API surface. Catalog reads are public; every
// mutating route and the order views sit behind RequireUser.
func Register(app *fiber.App, deps *Deps, v *identity.Verifier) {
	api := app.Group("/api")
	auth := RequireUser(v)

	// Stores
	api.Post("/stores", auth, deps.StoreHandler.Create)
	api.Get("/stores", auth, deps.StoreHandler.List)
	api.Get("/stores/:storeId", auth, deps.StoreHandler.Get)
	api.Patch("/stores/:storeId", auth, deps.StoreHandler.Update)
	api.Delete("/stores/:storeId", auth, deps.StoreHandler.Delete)

	// Billboards
	api.Get("/:storeId/billboards", deps.BillboardHandler.List)
	api.Get("/:storeId/billboards/:billboardId", deps.BillboardHandler.Get)
	api.Post("/:storeId/billboards", auth, deps.BillboardHandler.Create)
	api.Patch("/:storeId/billboards/:billboardId", auth, deps.BillboardHandler.Update)
	api.Delete("/:storeId/billboards/:billboardId", auth, deps.BillboardHandler.Delete)

	// Categories
	api.Get("/:storeId/categories", deps.CategoryHandler.List)
	api.Get("/:storeId/categories/:categoryId", deps.CategoryHandler.Get)
	api.Post("/:storeId/categories", auth, deps.CategoryHandler.Create)
	api.Patch("/:storeId/categories/:categoryId", auth, deps.CategoryHandler.Update)
	api.Delete("/:storeId/categories/:categoryId", auth, deps.CategoryHandler.Delete)

	// Sizes
	api.Get("/:storeId/sizes", deps.SizeHandler.List)
	api.Get("/:storeId/sizes/:sizeId", deps.SizeHandler.Get)
	api.Post("/:storeId/sizes", auth, deps.SizeHandler.Create)
	api.Patch("/:storeId/sizes/:sizeId", auth, deps.SizeHandler.Update)
	api.Delete("/:storeId/sizes/:sizeId", auth, deps.SizeHandler.Delete)

	// Colors
	api.Get("/:storeId/colors", deps.ColorHandler.List)
	api.Get("/:storeId/colors/:colorId", deps.ColorHandler.Get)
	api.Post("/:storeId/colors", auth, deps.ColorHandler.Create)
	api.Patch("/:storeId/colors/:colorId", auth, deps.ColorHandler.Update)
	api.Delete("/:storeId/colors/:colorId", auth, deps.ColorHandler.Delete)

	// Products
	api.Get("/:storeId/products", deps.ProductHandler.List)
	api.Get("/:storeId/products/:productId", deps.ProductHandler.Get)
	api.Post("/:storeId/products", auth, deps.ProductHandler.Create)
	api.Patch("/:storeId/products/:productId", auth, deps.ProductHandler.Update)
	api.Delete("/:storeId/products/:productId", auth, deps.ProductHandler.Delete)

	// Orders (owner-scoped reads)
	api.Get("/:storeId/orders", auth, deps.OrderHandler.List)
	api.Get("/:storeId/orders/:orderId", auth, deps.OrderHandler.Get)
}
