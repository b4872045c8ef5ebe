package commands

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/routing"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
)

// DispatchShipCommand sends a docked ship to a destination along the
// precomputed least-delta-v route.
type DispatchShipCommand struct {
	ShipID       string
	ToLocationID string
}

// DispatchShipResponse describes the transfer that was started.
type DispatchShipResponse struct {
	FromID      string
	ToID        string
	Path        []string
	DvMS        float64
	FuelSpentKg float64
	DepartedAt  time.Time
	ArrivesAt   time.Time
}

// DispatchShipHandler starts a transfer: route lookup, fuel debit per the
// rocket equation, transit state flip.
type DispatchShipHandler struct {
	shipRepo   ship.Repository
	matrixRepo routing.MatrixRepository
	clock      *shared.GameClock
}

func NewDispatchShipHandler(shipRepo ship.Repository, matrixRepo routing.MatrixRepository, clock *shared.GameClock) *DispatchShipHandler {
	return &DispatchShipHandler{shipRepo: shipRepo, matrixRepo: matrixRepo, clock: clock}
}

func (h *DispatchShipHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DispatchShipCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	s, err := h.shipRepo.FindByID(ctx, cmd.ShipID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ship: %w", err)
	}
	if s == nil {
		return nil, shared.NewNotFoundError("ship", cmd.ShipID)
	}
	if !s.IsDocked() {
		return nil, shared.NewNotDockedError(s.ID())
	}

	entry, err := h.matrixRepo.FindEntry(ctx, s.LocationID(), cmd.ToLocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load route: %w", err)
	}
	if entry == nil {
		return nil, shared.NewNoRouteError(s.LocationID(), cmd.ToLocationID)
	}

	stats := s.Stats()
	fuelToSpend, err := stats.FuelToSpendForDeltaV(entry.DvMS)
	if err != nil {
		return nil, err
	}
	if fuelToSpend > stats.FuelKg {
		return nil, shared.NewInsufficientFuelError(fuelToSpend, stats.FuelKg)
	}

	now := h.clock.Now()
	arrivesAt := now.Add(time.Duration(entry.TofS * float64(time.Second)))

	if err := s.ConsumeFuel(fuelToSpend); err != nil {
		return nil, err
	}
	fromID := s.LocationID()
	if err := s.BeginTransfer(cmd.ToLocationID, now, arrivesAt, entry.Path); err != nil {
		return nil, err
	}
	if err := h.shipRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save ship: %w", err)
	}

	log.Printf("Ship %s dispatched %s -> %s (%.0f m/s, %.1f kg fuel, arrives %s)",
		s.ID(), fromID, cmd.ToLocationID, entry.DvMS, fuelToSpend, arrivesAt.Format(time.RFC3339))

	return &DispatchShipResponse{
		FromID:      fromID,
		ToID:        cmd.ToLocationID,
		Path:        entry.Path,
		DvMS:        entry.DvMS,
		FuelSpentKg: fuelToSpend,
		DepartedAt:  now,
		ArrivesAt:   arrivesAt,
	}, nil
}
