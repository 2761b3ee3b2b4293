// Package handler defines the contract web handlers implement to register
// their routes on the agent's Fiber app.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tabnote/tabnote/internal/background"
	"github.com/tabnote/tabnote/internal/config"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, worker *background.Worker) error
}

const (
	// RouterRootPath is the root path of a route group.
	RouterRootPath = "/"

	// ErrNilACWFatalLogMsg is used if the app, cfg or worker pointer is nil.
	ErrNilACWFatalLogMsg = "app, cfg or worker is nil"
)
