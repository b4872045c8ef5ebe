package queries

import (
	"context"
	"fmt"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/routing"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// GetRouteQuery asks for the least-delta-v transfer between two locations.
type GetRouteQuery struct {
	FromID string
	ToID   string
}

// GetRouteResponse carries the matrix entry for the pair.
type GetRouteResponse struct {
	Route routing.MatrixEntry
}

// GetRouteHandler serves routes out of the precomputed matrix.
type GetRouteHandler struct {
	matrixRepo routing.MatrixRepository
}

func NewGetRouteHandler(matrixRepo routing.MatrixRepository) *GetRouteHandler {
	return &GetRouteHandler{matrixRepo: matrixRepo}
}

func (h *GetRouteHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetRouteQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	entry, err := h.matrixRepo.FindEntry(ctx, query.FromID, query.ToID)
	if err != nil {
		return nil, fmt.Errorf("failed to load route: %w", err)
	}
	if entry == nil {
		return nil, shared.NewNoRouteError(query.FromID, query.ToID)
	}
	return &GetRouteResponse{Route: *entry}, nil
}

// ListRoutesFromQuery asks for every reachable destination from a location.
type ListRoutesFromQuery struct {
	FromID string
}

// ListRoutesFromResponse carries all matrix entries out of the source.
type ListRoutesFromResponse struct {
	Routes []routing.MatrixEntry
}

// ListRoutesFromHandler serves the per-source slice of the matrix.
type ListRoutesFromHandler struct {
	matrixRepo routing.MatrixRepository
}

func NewListRoutesFromHandler(matrixRepo routing.MatrixRepository) *ListRoutesFromHandler {
	return &ListRoutesFromHandler{matrixRepo: matrixRepo}
}

func (h *ListRoutesFromHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListRoutesFromQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	entries, err := h.matrixRepo.FindFrom(ctx, query.FromID)
	if err != nil {
		return nil, fmt.Errorf("failed to load routes: %w", err)
	}
	return &ListRoutesFromResponse{Routes: entries}, nil
}
