package shared

import (
	"encoding/json"
	"fmt"
)

// CanonicalJSON encodes a value as canonical JSON: object keys sorted,
// no insignificant whitespace, floats in Go's shortest round-trip form.
// The encoding is stable across processes, which makes it safe to hash
// for content-addressed identities.
func CanonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonical json: %w", err)
	}

	// Round-trip through an untyped tree so struct field order collapses
	// to sorted map keys and all numbers normalize to float64 printing.
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("canonical json: %w", err)
	}

	out, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("canonical json: %w", err)
	}
	return out, nil
}
