package core

import "github.com/google/uuid"

// NewResourceID returns a fresh handle for a runtime resource. Every load
// or reload of a resource gets a new one, so a consumer holding an old ID
// can tell its copy is stale.
func NewResourceID() uuid.UUID {
	return uuid.New()
}
