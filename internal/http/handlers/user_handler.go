package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/domain"
	applog "github.com/modasserjasim/computer-cell-bazar-server/internal/log"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/services"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/validate"
)

type UserHandler struct {
	Accounts *services.AccountService
}

// parseUserBody pulls the known account fields out of an arbitrary JSON
// profile; whatever else the client sent rides along as profile_json.
func parseUserBody(body []byte) (domain.User, string, error) {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return domain.User{}, "", errors.New("malformed body")
	}
	str := func(k string) string {
		v, _ := m[k].(string)
		delete(m, k)
		return v
	}

	u := domain.User{Email: str("email"), Name: str("name")}
	password := str("password")
	if roleStr := str("role"); roleStr != "" {
		role, okRole := domain.ParseRole(roleStr)
		if !okRole {
			return domain.User{}, "", errors.New("unknown role")
		}
		u.Role = role
	}

	if len(m) > 0 {
		extra, _ := json.Marshal(m)
		u.ProfileJSON = string(extra)
	}
	return u, password, nil
}

// Register handles POST /user.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	u, password, err := parseUserBody(c.Body())
	if err != nil {
		return fail(c, err)
	}
	email, okEmail := validate.Email(u.Email)
	if !okEmail {
		return fail(c, errors.New("a valid email is required"))
	}
	u.Email = email
	if err := h.Accounts.Register(u, password); err != nil {
		applog.Error(c, "user.register.fail", err, map[string]any{"email": u.Email})
		return fail(c, err)
	}
	applog.Audit(c, "user.register", map[string]any{"email": u.Email, "role": string(u.Role)})
	return okMessage(c, "The user successfully added")
}

// Upsert handles PUT /user/:email, the first-login profile sync.
func (h *UserHandler) Upsert(c *fiber.Ctx) error {
	u, _, err := parseUserBody(c.Body())
	if err != nil {
		return fail(c, err)
	}
	// The path parameter wins over whatever email the body carries.
	email, okEmail := validate.Email(c.Params("email"))
	if !okEmail {
		return fail(c, errors.New("a valid email is required"))
	}
	u.Email = email

	if err := h.Accounts.Upsert(u); err != nil {
		applog.Error(c, "user.upsert.fail", err, map[string]any{"email": u.Email})
		return fail(c, err)
	}
	applog.Audit(c, "user.upsert", map[string]any{"email": u.Email})
	return okMessage(c, "The user successfully saved")
}

// Role probes. An unknown email simply answers false, matching the
// original optional-chaining lookups.

func (h *UserHandler) IsAdmin(c *fiber.Ctx) error {
	u, err := h.Accounts.FindByEmail(c.Params("email"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"isAdmin": u != nil && u.Role == domain.RoleAdmin})
}

func (h *UserHandler) IsSeller(c *fiber.Ctx) error {
	u, err := h.Accounts.FindByEmail(c.Params("email"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fail(c, err)
	}
	isSeller := u != nil && u.Role == domain.RoleSeller
	return c.JSON(fiber.Map{
		"isSeller":   isSeller,
		"isVerified": isSeller && u.SellerVerified,
	})
}

func (h *UserHandler) IsBuyer(c *fiber.Ctx) error {
	u, err := h.Accounts.FindByEmail(c.Params("email"))
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"isBuyer": u != nil && u.Role == domain.RoleBuyer})
}

// Sellers handles GET /all-sellers.
func (h *UserHandler) Sellers(c *fiber.Ctx) error {
	out, err := h.Accounts.ListByRole(domain.RoleSeller)
	if err != nil {
		applog.Error(c, "user.sellers.list.fail", err, nil)
		return fail(c, err)
	}
	return ok(c, "sellers", out)
}

// Buyers handles GET /all-buyers.
func (h *UserHandler) Buyers(c *fiber.Ctx) error {
	out, err := h.Accounts.ListByRole(domain.RoleBuyer)
	if err != nil {
		applog.Error(c, "user.buyers.list.fail", err, nil)
		return fail(c, err)
	}
	return ok(c, "buyers", out)
}

// VerifySeller handles PATCH /seller/:id (admin only).
func (h *UserHandler) VerifySeller(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, domain.ErrInvalidID)
	}
	if err := h.Accounts.VerifySeller(id); err != nil {
		applog.Error(c, "user.verify.fail", err, map[string]any{"user_id": id})
		return fail(c, err)
	}
	applog.Audit(c, "user.verify", map[string]any{"user_id": id})
	return okMessage(c, "Seller verified")
}

// Delete handles DELETE /seller/:id and DELETE /buyer/:id (admin only).
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, okID := validate.ID(c.Params("id"))
	if !okID {
		return fail(c, domain.ErrInvalidID)
	}
	if err := h.Accounts.Delete(id); err != nil {
		applog.Error(c, "user.delete.fail", err, map[string]any{"user_id": id})
		return fail(c, err)
	}
	applog.Audit(c, "user.delete", map[string]any{"user_id": id})
	return okMessage(c, "The user successfully deleted")
}
