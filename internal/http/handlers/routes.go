package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
)

// Register wires the full route table. One policy everywhere: mutating and
// sensitive-read routes go through the token gate plus the matching
// capability check; registration, login sync, booking creation and the
// payment endpoints stay open for the frontend's pre-login flows.
func Register(app *fiber.App, d *Deps) {
	token := RequireToken(d.Auth)
	admin := RequireRole(d.Auth, domain.RoleAdmin)
	seller := RequireRole(d.Auth, domain.RoleSeller)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Computer Cell Bazar Server is Running")
	})

	// Tokens & accounts
	app.Get("/jwt", d.AuthHandler.Token)
	app.Post("/user", d.UserHandler.Register)
	app.Put("/user/:email", d.UserHandler.Upsert)
	app.Get("/user/admin/:email", d.UserHandler.IsAdmin)
	app.Get("/user/seller/:email", d.UserHandler.IsSeller)
	app.Get("/user/buyer/:email", d.UserHandler.IsBuyer)
	app.Get("/all-sellers", d.UserHandler.Sellers)
	app.Get("/all-buyers", d.UserHandler.Buyers)
	app.Patch("/seller/:id", token, admin, d.UserHandler.VerifySeller)
	app.Delete("/seller/:id", token, admin, d.UserHandler.Delete)
	app.Delete("/buyer/:id", token, admin, d.UserHandler.Delete)

	// Catalog
	app.Get("/product-categories", d.CategoryHandler.List)
	app.Get("/category/:id", d.ProductHandler.ByCategory)
	app.Get("/advertised-products", d.ProductHandler.Advertised)
	app.Post("/add-product", token, seller, d.ProductHandler.Add)
	app.Get("/my-products", token, d.ProductHandler.Mine)
	app.Patch("/my-product/ad/:id", token, d.ProductHandler.MarkAdvertised)
	app.Patch("/my-product/:id", token, d.ProductHandler.MarkSold)
	app.Delete("/my-product/:id", token, d.ProductHandler.Delete)
	app.Patch("/reported-product/:id", token, d.ProductHandler.Report)
	app.Get("/reported-products", token, admin, d.ProductHandler.Reported)

	// Bookings & payments
	app.Post("/booking", d.BookingHandler.Create)
	app.Get("/my-orders", token, d.BookingHandler.Mine)
	app.Get("/order/:id", d.BookingHandler.ByID)
	app.Post("/create-payment-intent", d.PaymentHandler.CreateIntent)
	app.Post("/payment", d.PaymentHandler.Record)
}
