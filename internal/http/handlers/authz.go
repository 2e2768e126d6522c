package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	applog "github.com/modasserjasim/computer-cell-bazar-server/internal/log"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/services"
)

// RequireToken resolves the caller from the Authorization header and stashes
// the email for downstream handlers. A missing header is 401 with the bare
// body the original clients check for; anything unverifiable is 403.
func RequireToken(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := auth.Authenticate(c.Get(fiber.HeaderAuthorization))
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			applog.Security(c, "access.denied.nocreds", nil)
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized access")
		case err != nil:
			applog.Security(c, "access.denied.badtoken", nil)
			return forbidden(c)
		}
		c.Locals("email", email)
		return c.Next()
	}
}

// RequireRole runs after RequireToken and checks the caller's stored role.
func RequireRole(auth *services.AuthService, role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := auth.AuthorizeRole(tokenEmail(c), role); err != nil {
			applog.Security(c, "access.denied.role", map[string]any{"required": string(role)})
			return forbidden(c)
		}
		return c.Next()
	}
}

func tokenEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Forbidden access"})
}
