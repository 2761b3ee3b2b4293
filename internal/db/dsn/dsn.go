// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"

	"github.com/tabnote/tabnote/internal/config"
)

// Create builds the Data Source Name for the configured engine.
// For sqlite the DSN is simply the database file path.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	default: // sqlite
		if cfg.DB.Name == "" {
			return "tabnote.db"
		}

		return cfg.DB.Name
	}
}
