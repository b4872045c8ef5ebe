package queries

import (
	"context"
	"fmt"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
)

// StatsPreviewQuery derives stats for a hypothetical part list without
// touching any persisted ship. Raw parts are normalized first, so the
// preview matches what a saved ship would report.
type StatsPreviewQuery struct {
	RawParts []map[string]any
	FuelKg   float64
}

// StatsPreviewResponse carries the derived stats, the normalized parts
// and the on-ship resource rollup.
type StatsPreviewResponse struct {
	Stats  ship.Stats
	Parts  []parts.Part
	Rollup []ship.RollupEntry
}

// StatsPreviewHandler is pure computation over the catalog.
type StatsPreviewHandler struct {
	registry *catalog.Registry
}

func NewStatsPreviewHandler(registry *catalog.Registry) *StatsPreviewHandler {
	return &StatsPreviewHandler{registry: registry}
}

func (h *StatsPreviewHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*StatsPreviewQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	decoded := make([]parts.Part, 0, len(query.RawParts))
	for _, raw := range query.RawParts {
		decoded = append(decoded, parts.FromRaw(raw))
	}
	normalized := parts.Normalize(decoded, h.registry)
	ship.HardenContainers(normalized, query.FuelKg)

	return &StatsPreviewResponse{
		Stats:  ship.ComputeStats(normalized, query.FuelKg),
		Parts:  normalized,
		Rollup: ship.ResourceRollup(normalized, h.registry),
	}, nil
}
