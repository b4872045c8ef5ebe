package queries

import (
	"context"
	"fmt"

	appBoost "github.com/RocketManDan1/Frontier-sub001/internal/application/boost"
	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
)

// BoostableItemsQuery asks what an organization may currently launch.
type BoostableItemsQuery struct {
	OrgID string
}

// BoostableItemsResponse lists eligible catalog items.
type BoostableItemsResponse struct {
	Items []appBoost.BoostableItem
}

// BoostableItemsHandler delegates to the eligibility service.
type BoostableItemsHandler struct {
	boostSvc *appBoost.Service
}

func NewBoostableItemsHandler(boostSvc *appBoost.Service) *BoostableItemsHandler {
	return &BoostableItemsHandler{boostSvc: boostSvc}
}

func (h *BoostableItemsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*BoostableItemsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	items, err := h.boostSvc.BoostableItems(ctx, query.OrgID)
	if err != nil {
		return nil, err
	}
	return &BoostableItemsResponse{Items: items}, nil
}
