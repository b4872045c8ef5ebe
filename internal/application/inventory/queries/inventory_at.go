package queries

import (
	"context"
	"fmt"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/inventory"
)

// InventoryAtQuery asks for every stack at a location.
type InventoryAtQuery struct {
	LocationID string
}

// InventoryAtResponse splits the stacks by namespace.
type InventoryAtResponse struct {
	Resources []inventory.Stack
	Parts     []inventory.Stack
}

// InventoryAtHandler reads the stacks and partitions them.
type InventoryAtHandler struct {
	repo inventory.Repository
}

func NewInventoryAtHandler(repo inventory.Repository) *InventoryAtHandler {
	return &InventoryAtHandler{repo: repo}
}

func (h *InventoryAtHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*InventoryAtQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	stacks, err := h.repo.FindByLocation(ctx, query.LocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	resp := &InventoryAtResponse{}
	for _, s := range stacks {
		switch s.StackType {
		case inventory.StackTypeResource:
			resp.Resources = append(resp.Resources, s)
		case inventory.StackTypePart:
			resp.Parts = append(resp.Parts, s)
		}
	}
	return resp, nil
}
