// Package web implements the agent's HTTP service for the extension popup
// and options surfaces.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/tabnote/tabnote/internal/background"
	"github.com/tabnote/tabnote/internal/config"
	accesslog "github.com/tabnote/tabnote/internal/logger/adapter/fiber"
	"github.com/tabnote/tabnote/internal/web/handler/message"
	"github.com/tabnote/tabnote/internal/web/handler/status"
)

// Service represents the web service.
type Service struct {
	App *fiber.App
	cfg *config.Config
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the agent.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	if s.cfg.Webserver.ShutDownTime > 0 {
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, worker *background.Worker) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if worker == nil {
		panic("worker cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			AppName:       cfg.Title,
			CaseSensitive: true,
			Prefork:       false,
			Immutable:     true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New())
	}

	// access logging
	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: status.PathCheckAlive,
	}))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
	}

	// init handlers (they register their own routes)
	if err := message.Handler.Init(app, cfg, worker); err != nil {
		log.Fatal().Err(err).Msg("failed to init message handler")
	}

	if err := status.Handler.Init(app, cfg, worker); err != nil {
		log.Fatal().Err(err).Msg("failed to init status handler")
	}

	// redirect root to the liveness endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(status.PathCheckAlive)
	})

	return service
}
