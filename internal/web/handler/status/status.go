// Package status serves liveness and metrics endpoints.
package status

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tabnote/tabnote/internal/background"
	"github.com/tabnote/tabnote/internal/config"
	"github.com/tabnote/tabnote/internal/web/handler"
)

const (
	// PathCheckAlive is the liveness endpoint path.
	PathCheckAlive = "/checkalive"

	// PathMetrics is the prometheus endpoint path.
	PathMetrics = "/metrics"
)

// Service is the status handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the status handler.
var Handler = Service{}

// Init initializes the status handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, worker *background.Worker) error {
	if app == nil || cfg == nil || worker == nil {
		return errors.New(handler.ErrNilACWFatalLogMsg)
	}

	s.cfg = cfg

	app.Get(PathCheckAlive, s.Get)
	app.Get(PathMetrics, adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}

// Get answers the liveness probe.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.SendString("OK")
}
