package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	applog "github.com/modasserjasim/computer-cell-bazar-server/internal/log"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/services"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

// Token handles GET /jwt?email=. Unknown accounts get 403 with an empty
// accessToken rather than an error body; the frontend keys off that shape.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	email, okEmail := validate.Email(c.Query("email"))
	if !okEmail {
		applog.Security(c, "jwt.issue.badinput", map[string]any{"email": c.Query("email")})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"accessToken": ""})
	}

	tok, err := h.Auth.IssueToken(email)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		applog.Security(c, "jwt.issue.unknown", map[string]any{"email": email})
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"accessToken": ""})
	case err != nil:
		applog.Error(c, "jwt.issue.fail", err, nil)
		return fail(c, err)
	}

	applog.Audit(c, "jwt.issue", map[string]any{"email": email})
	return c.JSON(fiber.Map{"accessToken": tok})
}
