package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	applog "github.com/modasserjasim/computer-cell-bazar-server/internal/log"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/services"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/validate"
)

type PaymentHandler struct {
	Payments *services.PaymentService
}

// CreateIntent handles POST /create-payment-intent. Advisory only: nothing
// on the booking changes until /payment records the completed charge.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var body struct {
		BookingID string `json:"bookingId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fail(c, errors.New("malformed body"))
	}
	id, okID := validate.ID(body.BookingID)
	if !okID {
		return fail(c, domain.ErrInvalidID)
	}

	secret, err := h.Payments.CreateIntent(id)
	if err != nil {
		applog.Error(c, "payment.intent.fail", err, map[string]any{"booking_id": id})
		return fail(c, err)
	}
	applog.Info(c, "payment.intent", map[string]any{"booking_id": id})
	return c.JSON(fiber.Map{"clientSecret": secret})
}

// Record handles POST /payment: append the payment, then mark the booking
// paid. A partial failure is reported, not rolled back.
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	var p domain.Payment
	if err := c.BodyParser(&p); err != nil {
		return fail(c, errors.New("malformed body"))
	}
	id, okID := validate.ID(p.BookingID)
	if !okID {
		return fail(c, domain.ErrInvalidID)
	}
	p.BookingID = id
	if p.TransactionID == "" {
		return fail(c, errors.New("transactionId is required"))
	}

	if err := h.Payments.RecordPayment(p); err != nil {
		applog.Error(c, "payment.record.fail", err, map[string]any{"booking_id": p.BookingID})
		return fail(c, err)
	}
	applog.Audit(c, "payment.record", map[string]any{"booking_id": p.BookingID, "transaction_id": p.TransactionID})
	return okMessage(c, "Payment recorded")
}
