package routing

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// EdgesHashKey is the meta row holding the hash the matrix was built from.
const EdgesHashKey = "edges_hash"

// HashEdges returns the SHA-256 over the ordered canonical JSON encoding
// of the edge set. Edges are sorted by (from, to) so the hash depends
// only on content, never on query order; any edge change flips the hash
// and invalidates the cached transfer matrix.
func HashEdges(edges []location.TransferEdge) (string, error) {
	ordered := make([]location.TransferEdge, len(edges))
	copy(ordered, edges)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].FromID != ordered[j].FromID {
			return ordered[i].FromID < ordered[j].FromID
		}
		return ordered[i].ToID < ordered[j].ToID
	})

	encoded, err := shared.CanonicalJSON(ordered)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}
