// Package models contains database model definitions.
package models

// Setting represents a named record stored in the database. The agent keeps
// the extension settings object as a single row; the value is the raw JSON
// payload as received, so unknown fields round-trip unchanged.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique"`
	Value []byte `gorm:"type:blob"`
}
