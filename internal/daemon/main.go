// Package daemon wires the agent: config, logger, storage, the background
// worker and its transports.
package daemon

import (
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tabnote/tabnote/internal/background"
	"github.com/tabnote/tabnote/internal/bridge"
	"github.com/tabnote/tabnote/internal/config"
	"github.com/tabnote/tabnote/internal/db/dsn"
	"github.com/tabnote/tabnote/internal/db/models"
	"github.com/tabnote/tabnote/internal/logger"
	"github.com/tabnote/tabnote/internal/settings"
	"github.com/tabnote/tabnote/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
	bridge     *bridge.Bridge
}

// Start runs the bridge read loop (when attached) and the web service.
// It blocks until the web service stops.
func (d *Daemon) Start() error {
	if d.bridge != nil {
		go func() {
			if err := d.bridge.Run(); err != nil {
				log.Error().Err(err).Msg("bridge stopped")
			}
		}()
	}

	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if cfg.Agent.Bridge.Enabled {
		// stdout carries the native-messaging frames; console logging
		// would corrupt them
		cfg.Log.Console.Enabled = false
	}

	if err := logger.Init(cfg.Log); err != nil {
		panic(err)
	}

	db, err := gorm.Open(openDialector(cfg), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.Setting{},
	); err != nil {
		panic("failed to migrate database")
	}

	store := settings.New(db, cfg.Agent.SettingsKey)

	var (
		br       *bridge.Bridge
		tabs     background.TabOpener
		injector background.ScriptInjector
	)

	if cfg.Agent.Bridge.Enabled {
		br = bridge.New(os.Stdin, os.Stdout)
		tabs, injector = br, br
	} else {
		host := detachedHost{}
		tabs, injector = host, host
	}

	worker := background.New(store, tabs, injector, cfg.Agent)

	if br != nil {
		br.Attach(worker)
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, worker),
		bridge:     br,
	}
}

func openDialector(cfg *config.Config) gorm.Dialector {
	switch cfg.DB.GormEngine {
	case "mysql":
		return gormmysql.Open(dsn.Create(cfg))
	case "postgres":
		return gormpostgres.Open(dsn.Create(cfg))
	default:
		return sqlite.Open(dsn.Create(cfg))
	}
}

// detachedHost stands in for the extension when the bridge is disabled
// (API-only mode); host operations have nowhere to go and are only logged.
type detachedHost struct{}

func (detachedHost) OpenTab(url string) error {
	log.Warn().Str("url", url).Msg("no bridge attached, dropping openTab")

	return nil
}

func (detachedHost) InjectScript(tabID int, files []string) error {
	log.Warn().Int("tabId", tabID).Strs("files", files).Msg("no bridge attached, dropping injectScript")

	return nil
}
