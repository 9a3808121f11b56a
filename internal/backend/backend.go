// Package backend selects and constructs the key-value persistence backend
// the record store runs on.
package backend

import (
	"organizador/internal/config"
	"organizador/internal/kv"
)

// Type is the kind of persistence backend.
type Type string

const (
	SQLite Type = "sqlite"
	Memory Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case SQLite, Memory:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{Memory, SQLite}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result holds the constructed store and its cleanup function, which may be
// nil when the backend holds no resources.
type Result struct {
	Store   kv.Store
	Cleanup CleanupFunc
}

// Config holds what the factory needs to build a backend.
type Config struct {
	Type         Type
	SQLiteDBPath string
}

// FromAppConfig converts the application config to backend config.
func FromAppConfig(appConfig *config.Config) Config {
	return Config{
		Type:         Type(appConfig.DataBackend),
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}
}
