package config

import (
	"github.com/tabnote/tabnote/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Agent     Agent
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath      bool   // use clean path middleware to allow multi slash requests
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    `validate:"min=0,max=65535"` // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Bridge implements the native-messaging bridge settings.
type Bridge struct {
	Enabled bool `toml:"enabled"`
}

// Agent implements the background agent settings.
type Agent struct {
	// OnboardingURL is opened in a new tab once per fresh install. Relative
	// URLs are resolved by the extension against its own origin.
	OnboardingURL string `toml:"onboardingUrl" validate:"required"`

	// ScriptFiles are injected into a tab when a navigation finishes on an
	// http(s) page and the enabled flag is set.
	ScriptFiles []string `toml:"scriptFiles" validate:"required,dive,required"`

	// SettingsKey is the name the settings record is stored under.
	SettingsKey string `toml:"settingsKey" validate:"required"`

	Bridge Bridge
}
