package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
)

// GetShipStatusQuery asks for a ship's current position and stats.
type GetShipStatusQuery struct {
	ShipID string
}

// GetShipStatusResponse is the ship's externally visible state at the
// current game time.
type GetShipStatusResponse struct {
	ShipID          string
	Name            string
	Docked          bool
	LocationID      string
	FromLocationID  string
	ToLocationID    string
	DepartedAt      *time.Time
	ArrivesAt       *time.Time
	TransferPath    []string
	TransitProgress float64
	Stats           ship.Stats
}

// GetShipStatusHandler resolves the ship and derives transit progress as
// a pure function of the clock; it never mutates the ship.
type GetShipStatusHandler struct {
	shipRepo ship.Repository
	clock    *shared.GameClock
}

func NewGetShipStatusHandler(shipRepo ship.Repository, clock *shared.GameClock) *GetShipStatusHandler {
	return &GetShipStatusHandler{shipRepo: shipRepo, clock: clock}
}

func (h *GetShipStatusHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetShipStatusQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	s, err := h.shipRepo.FindByID(ctx, query.ShipID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ship: %w", err)
	}
	if s == nil {
		return nil, shared.NewNotFoundError("ship", query.ShipID)
	}

	now := h.clock.Now()
	return &GetShipStatusResponse{
		ShipID:          s.ID(),
		Name:            s.Name(),
		Docked:          s.IsDocked(),
		LocationID:      s.LocationID(),
		FromLocationID:  s.FromLocationID(),
		ToLocationID:    s.ToLocationID(),
		DepartedAt:      s.DepartedAt(),
		ArrivesAt:       s.ArrivesAt(),
		TransferPath:    s.TransferPath(),
		TransitProgress: s.TransitProgress(now),
		Stats:           s.Stats(),
	}, nil
}
