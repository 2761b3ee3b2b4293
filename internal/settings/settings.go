// Package settings implements the accessor for the single persisted
// extension settings record.
package settings

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tabnote/tabnote/internal/db/controller/setting"
)

// EnabledField is the settings field the injection monitor keys on.
const EnabledField = "enabled"

// Record is the settings object as exchanged with the extension. It has no
// enforced schema beyond "must be a non-null object"; unknown fields are
// stored and returned unchanged.
type Record = map[string]any

// Default returns the record used when nothing usable is stored.
// A missing or unreadable record means disabled, never enabled.
func Default() Record {
	return Record{EnabledField: false}
}

// SaveResult is the structured outcome of a save.
type SaveResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Store reads and writes the settings record under a fixed name.
type Store struct {
	db  *gorm.DB
	key string
}

// New creates a settings store persisting under the given key.
func New(db *gorm.DB, key string) *Store {
	return &Store{db: db, key: key}
}

// Get returns the stored settings record. It never fails toward the caller:
// an absent, corrupt or unreadable record yields the disabled default and
// the cause is only logged.
func (s *Store) Get() Record {
	row, err := setting.Get(s.db, s.key)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			log.Error().Err(err).Str("key", s.key).Msg("failed to read settings, using defaults")
		}

		return Default()
	}

	var rec Record
	if err := json.Unmarshal(row.Value, &rec); err != nil || rec == nil {
		log.Error().Err(err).Str("key", s.key).Msg("stored settings are corrupt, using defaults")

		return Default()
	}

	return rec
}

// Enabled reports whether the stored record has the enabled flag set.
func (s *Store) Enabled() bool {
	enabled, ok := s.Get()[EnabledField].(bool)

	return ok && enabled
}

// Save validates the candidate and stores it wholesale, replacing any prior
// record. Invalid input and storage failures are reported in the result,
// never raised.
func (s *Store) Save(candidate any) SaveResult {
	rec, ok := asRecord(candidate)
	if !ok {
		return SaveResult{Success: false, Error: "invalid settings object"}
	}

	value, err := json.Marshal(rec)
	if err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("failed to encode settings")

		return SaveResult{Success: false, Error: "failed to encode settings"}
	}

	if _, err := setting.Set(s.db, s.key, value); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("failed to save settings")

		return SaveResult{Success: false, Error: "failed to save settings"}
	}

	return SaveResult{Success: true}
}

// asRecord accepts only non-null objects. JSON null, scalars and arrays all
// fail the check; the stored state stays untouched for them.
func asRecord(candidate any) (Record, bool) {
	if candidate == nil {
		return nil, false
	}

	rec, ok := candidate.(map[string]any)
	if !ok || rec == nil {
		return nil, false
	}

	return rec, true
}
