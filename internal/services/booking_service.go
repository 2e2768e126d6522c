package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/repos"
)

type BookingService struct {
	Bookings *repos.BookingRepo
}

func NewBookingService(bookings *repos.BookingRepo) *BookingService {
	return &BookingService{Bookings: bookings}
}

func (s *BookingService) Create(b domain.Booking) (domain.Booking, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if err := s.Bookings.Insert(b); err != nil {
		return domain.Booking{}, storageErr(err)
	}
	return b, nil
}

func (s *BookingService) ByID(id string) (domain.Booking, error) {
	b, err := s.Bookings.ByID(id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.Booking{}, domain.ErrNotFound
	case err != nil:
		return domain.Booking{}, storageErr(err)
	}
	return b, nil
}

func (s *BookingService) ListByEmail(email string) ([]domain.Booking, error) {
	out, err := s.Bookings.ListByEmail(email)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}
