// Package server exposes chess sessions over an HTTP JSON API.
package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// New builds the fiber app with every route registered.
func New(cfg *config.Config, m *Manager) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "chess-server",
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	if cfg.Server.LogRequests && cfg.LogFile != nil {
		app.Use(logger.New(logger.Config{
			Output: cfg.LogFile,
			Format: "${time} ${status} ${method} ${path} ${latency}\n",
		}))
	}

	h := &handlers{m: m}
	api := app.Group("/api")

	games := api.Group("/games")
	games.Post("/", h.create)
	games.Get("/", h.list)
	games.Get("/:id", h.get)
	games.Delete("/:id", h.delete)
	games.Post("/:id/moves", h.move)
	games.Post("/:id/reset", h.reset)
	games.Post("/:id/save", h.save)
	games.Post("/:id/load", h.load)

	api.Get("/saves", h.saves)

	return app
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound), stderrors.Is(err, errors.ErrSaveNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrGameOver):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrInvalidSaveName):
		return fiber.StatusBadRequest
	case errors.IsMoveError(err), stderrors.Is(err, errors.ErrParseFailure):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
