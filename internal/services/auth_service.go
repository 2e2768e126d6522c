package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/repos"
)

// AuthService is the access control gate: it issues bearer tokens for known
// accounts and resolves/authorizes callers on the way in. Tokens are
// self-contained signed claims, so there is no session store and no
// revocation before expiry.
type AuthService struct {
	Users  *repos.UserRepo
	Secret []byte
	TTL    time.Duration
}

func NewAuthService(users *repos.UserRepo, secret []byte, ttlDays int) *AuthService {
	return &AuthService{Users: users, Secret: secret, TTL: time.Duration(ttlDays) * 24 * time.Hour}
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssueToken returns a signed token for an existing account. An unknown
// email is ErrUnauthorized, which the HTTP layer renders as the empty-token
// 403 the clients expect.
func (s *AuthService) IssueToken(email string) (string, error) {
	_, err := s.Users.ByEmail(email)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", domain.ErrUnauthorized
	case err != nil:
		return "", domain.ErrStorageUnavailable
	}

	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Authenticate resolves the caller's email from a raw Authorization header.
func (s *AuthService) Authenticate(header string) (string, error) {
	if header == "" {
		return "", domain.ErrMissingCredentials
	}
	_, raw, found := strings.Cut(header, " ")
	if !found || raw == "" {
		return "", domain.ErrInvalidToken
	}

	var claims tokenClaims
	t, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return s.Secret, nil
	})
	if err != nil || !t.Valid || claims.Email == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Email, nil
}

// AuthorizeSelf blocks a caller from reading another user's records by
// substituting a different email. Comparison is exact and case-sensitive.
func (s *AuthService) AuthorizeSelf(resolved, requested string) error {
	if resolved != requested {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeRole checks the caller's stored role against the required one.
func (s *AuthService) AuthorizeRole(email string, role domain.Role) error {
	u, err := s.Users.ByEmail(email)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrForbidden
	case err != nil:
		return domain.ErrStorageUnavailable
	}
	if u.Role != role {
		return domain.ErrForbidden
	}
	return nil
}
