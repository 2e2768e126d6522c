package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
)

type PaymentRepo struct{ db *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{db: db} }

func (r *PaymentRepo) Insert(p domain.Payment) error {
	_, err := r.db.Exec(`
	  INSERT INTO payments(id, booking_id, email, price, transaction_id)
	  VALUES(?,?,?,?,?)`,
		p.ID, p.BookingID, p.Email, p.Price, p.TransactionID)
	return err
}

func (r *PaymentRepo) ListByBooking(bookingID string) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.Select(&out, `
	  SELECT id, booking_id, COALESCE(email,'') AS email, price, transaction_id, created_at
	  FROM payments
	  WHERE booking_id = ?
	  ORDER BY created_at`, bookingID)
	return out, err
}
