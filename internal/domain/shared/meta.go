package shared

import "context"

// MetaRepository is a small string key/value store for server state that
// has no table of its own: the edge-set hash behind the transfer matrix,
// the persisted game clock anchors.
type MetaRepository interface {
	// Get returns ("", nil) when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Meta keys for the persisted clock anchors. All three rows are written
// together; a missing or malformed row makes the loader fall back to the
// in-process state and re-persist it.
const (
	MetaRealAnchorKey = "sim_real_time_anchor_s"
	MetaGameAnchorKey = "sim_game_time_anchor_s"
	MetaPausedKey     = "sim_paused"
)
