package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/config"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/http/handlers"
	applog "github.com/modasserjasim/computer-cell-bazar-server/internal/log"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/payments"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	gateway := payments.New(cfg.StripeKey)
	deps := handlers.NewDeps(db, cfg, gateway)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Router-level errors (404, 405) keep their code; anything that
			// escapes a handler is logged and answered with the failure
			// envelope, no internals leaked.
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(fiber.Map{"status": false, "error": fe.Message})
			}
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status": false,
				"error":  "Something went wrong. Please try again.",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	handlers.Register(app, deps)

	log.Fatal(app.Listen(":" + cfg.Port))
}
