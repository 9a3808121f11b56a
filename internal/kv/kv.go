// Package kv is the durable key-value boundary the record store persists
// through. Implementations serialize nothing themselves; they move opaque
// byte payloads in and out of storage by logical key name.
package kv

import "context"

// Logical keys for the persisted collections.
const (
	KeyTasks    = "organizador_tasks"
	KeyExpenses = "organizador_expenses"
)

// Store reads and writes opaque payloads by key.
//
// Get reports found=false for absent keys; it does not error on absence.
// Implementations must be safe against partial writes: a key either holds
// the last fully written payload or is absent.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}
