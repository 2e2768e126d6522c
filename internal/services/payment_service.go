package services

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/repos"
)

// IntentGateway is the external payment processor. Amounts are in
// minor currency units.
type IntentGateway interface {
	CreateIntent(amount int64, currency string) (clientSecret string, err error)
}

// PaymentService drives a booking from unpaid to paid: an advisory intent
// first, then the two-write record step. The two writes are deliberately not
// wrapped in a transaction; on a second-write failure the Payment row stays
// and the call reports the failure.
type PaymentService struct {
	Bookings *repos.BookingRepo
	Payments *repos.PaymentRepo
	Gateway  IntentGateway
}

func NewPaymentService(bookings *repos.BookingRepo, payments *repos.PaymentRepo, gw IntentGateway) *PaymentService {
	return &PaymentService{Bookings: bookings, Payments: payments, Gateway: gw}
}

// CreateIntent asks the processor for an intent over the booking's price and
// hands back the client secret. The booking itself is not touched; payment
// completes out-of-band and is recorded separately.
func (s *PaymentService) CreateIntent(bookingID string) (string, error) {
	b, err := s.Bookings.ByID(bookingID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", domain.ErrNotFound
	case err != nil:
		return "", storageErr(err)
	}

	amount := int64(math.Round(b.Price * 100))
	secret, err := s.Gateway.CreateIntent(amount, "usd")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamPayment, err)
	}
	return secret, nil
}

// RecordPayment appends the Payment record, then marks the booking paid.
// Retries with the same transaction id append another Payment row (no
// dedupe) but leave the booking state unchanged after the first success.
func (s *PaymentService) RecordPayment(p domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := s.Payments.Insert(p); err != nil {
		return storageErr(err)
	}

	n, err := s.Bookings.MarkPaid(p.BookingID, p.TransactionID)
	if err != nil {
		return fmt.Errorf("%w: payment recorded but booking not updated: %v", domain.ErrStorageUnavailable, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: payment recorded but booking missing", domain.ErrNotFound)
	}
	return nil
}
