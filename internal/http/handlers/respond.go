package handlers

import "github.com/gofiber/fiber/v2"

// The client contract: failures ride on HTTP 200 with status:false, only the
// access gate answers with 401/403. Kept as-is, changing it would break
// deployed frontends.

func ok(c *fiber.Ctx, field string, v any) error {
	return c.JSON(fiber.Map{"status": true, field: v})
}

func okMessage(c *fiber.Ctx, msg string) error {
	return c.JSON(fiber.Map{"status": true, "message": msg})
}

func fail(c *fiber.Ctx, err error) error {
	return c.JSON(fiber.Map{"status": false, "error": err.Error()})
}
