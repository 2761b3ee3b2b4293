// Package message exposes the extension message protocol over HTTP for the
// popup and options surfaces.
package message

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tabnote/tabnote/internal/background"
	"github.com/tabnote/tabnote/internal/config"
	"github.com/tabnote/tabnote/internal/web/handler"
)

// Path is the message endpoint path.
const Path = "/api/message"

// Service is the message handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	worker *background.Worker
}

// Handler is the message handler.
var Handler = Service{}

// Init initializes the message handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, worker *background.Worker) error {
	if app == nil || cfg == nil || worker == nil {
		return errors.New(handler.ErrNilACWFatalLogMsg)
	}

	s.cfg = cfg
	s.worker = worker

	app.Post(Path, s.Post)

	return nil
}

// Post handles a single request of the two-action protocol. An unknown or
// absent action yields 204 with an empty body, mirroring a reply channel
// that closes without data.
func (s *Service) Post(c *fiber.Ctx) error {
	var msg background.Message

	if err := c.BodyParser(&msg); err != nil {
		log.Debug().Err(err).Msg("rejecting unparsable message request")

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	payload := s.worker.HandleMessage(msg)
	if payload == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.JSON(payload)
}
