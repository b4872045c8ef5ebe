package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/routing"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// RegenerateMatrixCommand rebuilds the all-pairs transfer matrix when the
// edge set changed since the last build. Force skips the hash check.
type RegenerateMatrixCommand struct {
	Force bool
}

// RegenerateMatrixResponse reports what the rebuild did.
type RegenerateMatrixResponse struct {
	Rebuilt   bool
	Entries   int
	EdgesHash string
}

// RegenerateMatrixHandler recomputes and swaps the matrix.
type RegenerateMatrixHandler struct {
	locationRepo location.Repository
	matrixRepo   routing.MatrixRepository
	metaRepo     shared.MetaRepository
}

func NewRegenerateMatrixHandler(
	locationRepo location.Repository,
	matrixRepo routing.MatrixRepository,
	metaRepo shared.MetaRepository,
) *RegenerateMatrixHandler {
	return &RegenerateMatrixHandler{
		locationRepo: locationRepo,
		matrixRepo:   matrixRepo,
		metaRepo:     metaRepo,
	}
}

func (h *RegenerateMatrixHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RegenerateMatrixCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	edges, err := h.locationRepo.FindAllEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load edges: %w", err)
	}

	hash, err := routing.HashEdges(edges)
	if err != nil {
		return nil, fmt.Errorf("failed to hash edges: %w", err)
	}

	if !cmd.Force {
		stored, err := h.metaRepo.Get(ctx, routing.EdgesHashKey)
		if err != nil {
			return nil, fmt.Errorf("failed to read edges hash: %w", err)
		}
		count, err := h.matrixRepo.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count matrix entries: %w", err)
		}
		if stored == hash && count > 0 {
			return &RegenerateMatrixResponse{Rebuilt: false, Entries: int(count), EdgesHash: hash}, nil
		}
	}

	locations, err := h.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}
	nodeIDs := make([]string, 0, len(locations))
	for _, loc := range locations {
		if loc.IsGroup {
			continue
		}
		nodeIDs = append(nodeIDs, loc.ID)
	}

	entries := routing.ComputeMatrix(nodeIDs, edges)
	if err := h.matrixRepo.ReplaceAll(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to store matrix: %w", err)
	}
	if err := h.metaRepo.Set(ctx, routing.EdgesHashKey, hash); err != nil {
		return nil, fmt.Errorf("failed to store edges hash: %w", err)
	}

	log.Printf("Transfer matrix rebuilt: %d nodes, %d edges, %d entries", len(nodeIDs), len(edges), len(entries))
	return &RegenerateMatrixResponse{Rebuilt: true, Entries: len(entries), EdgesHash: hash}, nil
}
