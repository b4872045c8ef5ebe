package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewContainerUID mints a stable identifier for a storage container.
// Format: ctr-{12charHexUUID}. The UID survives normalization and
// persistence round-trips; it is only generated when absent.
func NewContainerUID() string {
	return "ctr-" + shortUUID(12)
}

// NewEntityID mints a prefixed identifier for a persistent entity.
// Example: NewEntityID("ship") -> "ship-3fa8e2b14c90"
func NewEntityID(prefix string) string {
	return prefix + "-" + shortUUID(12)
}

// shortUUID returns the first n hex characters of a fresh UUID.
func shortUUID(n int) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	if n > len(id) {
		n = len(id)
	}
	return id[:n]
}
