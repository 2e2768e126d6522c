package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "github.com/modasserjasim/computer-cell-bazar-server/internal/log"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/services"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// List handles GET /product-categories.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "categories.list.fail", err, nil)
		return fail(c, err)
	}
	return ok(c, "productCategories", cats)
}
