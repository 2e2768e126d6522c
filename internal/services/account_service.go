package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/repos"
)

type AccountService struct {
	Users *repos.UserRepo
}

func NewAccountService(users *repos.UserRepo) *AccountService {
	return &AccountService{Users: users}
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}

// Register inserts a new account. A raw password, when the client sends one,
// is bcrypt-hashed before it touches the store.
func (s *AccountService) Register(u domain.User, password string) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = domain.RoleBuyer
	}
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
		if err != nil {
			return err
		}
		u.PasswordHash = string(h)
	}
	if err := s.Users.Insert(u); err != nil {
		return storageErr(err)
	}
	return nil
}

// Upsert is the first-login profile sync: create the account if the email is
// new, merge into the existing profile otherwise. Fields the payload omits
// stay as stored; in particular a sync without a role never demotes one.
func (s *AccountService) Upsert(u domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := s.Users.UpsertByEmail(u); err != nil {
		return storageErr(err)
	}
	return nil
}

func (s *AccountService) FindByEmail(email string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, domain.ErrNotFound
	case err != nil:
		return nil, storageErr(err)
	}
	return u, nil
}

func (s *AccountService) ListByRole(role domain.Role) ([]domain.User, error) {
	out, err := s.Users.ListByRole(role)
	if err != nil {
		return nil, storageErr(err)
	}
	return out, nil
}

func (s *AccountService) VerifySeller(id string) error {
	n, err := s.Users.SetSellerVerified(id, true)
	if err != nil {
		return storageErr(err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *AccountService) Delete(id string) error {
	n, err := s.Users.DeleteByID(id)
	if err != nil {
		return storageErr(err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
