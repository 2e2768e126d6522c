package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	applog "github.com/modasserjasim/computer-cell-bazar-server/internal/log"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/services"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/validate"
)

type BookingHandler struct {
	Bookings *services.BookingService
	Auth     *services.AuthService
}

// Create handles POST /booking.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var b domain.Booking
	if err := c.BodyParser(&b); err != nil {
		return fail(c, errors.New("malformed body"))
	}
	email, okEmail := validate.Email(b.Email)
	if !okEmail {
		return fail(c, errors.New("a valid email is required"))
	}
	b.Email = email
	if b.Price < 0 {
		return fail(c, errors.New("price must not be negative"))
	}
	b.ID = ""
	b.Paid = false
	b.TransactionID = ""

	b, err := h.Bookings.Create(b)
	if err != nil {
		applog.Error(c, "booking.create.fail", err, nil)
		return fail(c, err)
	}
	applog.Audit(c, "booking.create", map[string]any{"booking_id": b.ID, "email": b.Email})
	return ok(c, "booking", b)
}

// Mine handles GET /my-orders?email= — readable only by that buyer.
func (h *BookingHandler) Mine(c *fiber.Ctx) error {
	if err := h.Auth.AuthorizeSelf(tokenEmail(c), c.Query("email")); err != nil {
		applog.Security(c, "access.denied.self", map[string]any{"requested": c.Query("email")})
		return forbidden(c)
	}
	bookings, err := h.Bookings.ListByEmail(tokenEmail(c))
	if err != nil {
		applog.Error(c, "booking.mine.fail", err, nil)
		return fail(c, err)
	}
	return ok(c, "bookings", bookings)
}

// ByID handles GET /order/:id.
func (h *BookingHandler) ByID(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, domain.ErrInvalidID)
	}
	b, err := h.Bookings.ByID(id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, "booking", b)
}
