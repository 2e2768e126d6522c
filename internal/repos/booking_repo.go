package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
)

type BookingRepo struct{ db *sqlx.DB }

func NewBookingRepo(db *sqlx.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingCols = `
  id, email,
  COALESCE(product_id,'')       AS product_id,
  COALESCE(product_name,'')     AS product_name,
  price,
  COALESCE(meeting_location,'') AS meeting_location,
  COALESCE(phone,'')            AS phone,
  COALESCE(paid,0)              AS paid,
  COALESCE(transaction_id,'')   AS transaction_id,
  created_at`

func (r *BookingRepo) Insert(b domain.Booking) error {
	_, err := r.db.Exec(`
	  INSERT INTO bookings(id, email, product_id, product_name, price,
	    meeting_location, phone)
	  VALUES(?,?,?,?,?,?,?)`,
		b.ID, b.Email, b.ProductID, b.ProductName, b.Price,
		b.MeetingLocation, b.Phone)
	return err
}

func (r *BookingRepo) ByID(id string) (domain.Booking, error) {
	var b domain.Booking
	err := r.db.Get(&b, `SELECT `+bookingCols+` FROM bookings WHERE id=?`, id)
	return b, err
}

func (r *BookingRepo) ListByEmail(email string) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.Select(&out, `
	  SELECT `+bookingCols+`
	  FROM bookings
	  WHERE email = ?
	  ORDER BY created_at DESC`, email)
	return out, err
}

// MarkPaid flips the booking to paid and attaches the processor transaction.
// Re-running with the same transaction id is a no-op in effect.
func (r *BookingRepo) MarkPaid(id, transactionID string) (int64, error) {
	res, err := r.db.Exec(`UPDATE bookings SET paid=1, transaction_id=? WHERE id=?`, transactionID, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
