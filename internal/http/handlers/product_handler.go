package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	applog "github.com/modasserjasim/computer-cell-bazar-server/internal/log"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/services"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Auth    *services.AuthService
}

// Add handles POST /add-product (seller only). The listing is always owned
// by the token's account, whatever email the body claims.
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return fail(c, errors.New("malformed body"))
	}
	if p.Title == "" {
		return fail(c, errors.New("productName is required"))
	}
	if _, okID := validate.ID(p.CategoryID); !okID {
		return fail(c, domain.ErrInvalidID)
	}
	if p.ResalePrice < 0 || p.OriginalPrice < 0 {
		return fail(c, errors.New("price must not be negative"))
	}
	p.ID = ""
	p.SellerEmail = tokenEmail(c)

	p, err := h.Catalog.AddProduct(p)
	if err != nil {
		applog.Error(c, "product.add.fail", err, nil)
		return fail(c, err)
	}
	applog.Audit(c, "product.add", map[string]any{"product_id": p.ID, "category": p.CategoryID})
	return ok(c, "product", p)
}

// ByCategory handles GET /category/:id, available listings only.
func (h *ProductHandler) ByCategory(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, domain.ErrInvalidID)
	}
	products, err := h.Catalog.ProductsByCategory(id)
	if err != nil {
		applog.Error(c, "product.bycategory.fail", err, map[string]any{"category": id})
		return fail(c, err)
	}
	return ok(c, "products", products)
}

// Advertised handles GET /advertised-products.
func (h *ProductHandler) Advertised(c *fiber.Ctx) error {
	products, err := h.Catalog.AdvertisedProducts()
	if err != nil {
		applog.Error(c, "product.advertised.fail", err, nil)
		return fail(c, err)
	}
	return ok(c, "products", products)
}

// Mine handles GET /my-products?email= — readable only by that seller.
func (h *ProductHandler) Mine(c *fiber.Ctx) error {
	if err := h.Auth.AuthorizeSelf(tokenEmail(c), c.Query("email")); err != nil {
		applog.Security(c, "access.denied.self", map[string]any{"requested": c.Query("email")})
		return forbidden(c)
	}
	products, err := h.Catalog.ProductsBySeller(tokenEmail(c))
	if err != nil {
		applog.Error(c, "product.mine.fail", err, nil)
		return fail(c, err)
	}
	return ok(c, "products", products)
}

// Reported handles GET /reported-products (admin only).
func (h *ProductHandler) Reported(c *fiber.Ctx) error {
	products, err := h.Catalog.ReportedProducts()
	if err != nil {
		applog.Error(c, "product.reported.fail", err, nil)
		return fail(c, err)
	}
	return ok(c, "products", products)
}

// MarkSold handles PATCH /my-product/:id.
func (h *ProductHandler) MarkSold(c *fiber.Ctx) error {
	id, err := h.manageable(c)
	if err != nil {
		return h.deny(c, err)
	}
	if err := h.Catalog.MarkSold(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.sold", map[string]any{"product_id": id})
	return okMessage(c, "Product marked as sold")
}

// MarkAdvertised handles PATCH /my-product/ad/:id.
func (h *ProductHandler) MarkAdvertised(c *fiber.Ctx) error {
	id, err := h.manageable(c)
	if err != nil {
		return h.deny(c, err)
	}
	if err := h.Catalog.MarkAdvertised(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.advertise", map[string]any{"product_id": id})
	return okMessage(c, "Product advertised")
}

// Report handles PATCH /reported-product/:id. Any authenticated account may
// flag a listing.
func (h *ProductHandler) Report(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, domain.ErrInvalidID)
	}
	if err := h.Catalog.MarkReported(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.report", map[string]any{"product_id": id})
	return okMessage(c, "Product reported")
}

// Delete handles DELETE /my-product/:id — owner or admin.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := h.manageable(c)
	if err != nil {
		return h.deny(c, err)
	}
	if err := h.Catalog.DeleteProduct(id); err != nil {
		return fail(c, err)
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return okMessage(c, "The product successfully deleted")
}

// manageable resolves the :id parameter and checks the caller may manage the
// listing: the owning seller, or an admin.
func (h *ProductHandler) manageable(c *fiber.Ctx) (string, error) {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return "", domain.ErrInvalidID
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return "", err
	}
	email := tokenEmail(c)
	if p.SellerEmail == email {
		return id, nil
	}
	if err := h.Auth.AuthorizeRole(email, domain.RoleAdmin); err != nil {
		return "", domain.ErrForbidden
	}
	return id, nil
}

func (h *ProductHandler) deny(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrForbidden) {
		applog.Security(c, "access.denied.owner", map[string]any{"product_id": c.Params("id")})
		return forbidden(c)
	}
	return fail(c, err)
}
