package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	appInventory "github.com/RocketManDan1/Frontier-sub001/internal/application/inventory"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
)

// RefuelShipCommand moves water from the location's resource stack into
// the ship's tanks, up to capacity or the stack's available mass.
type RefuelShipCommand struct {
	ShipID string
}

// RefuelShipResponse reports the transferred mass and new fuel level.
type RefuelShipResponse struct {
	TransferredKg float64
	FuelKg        float64
}

// RefuelShipHandler debits the stack by what the tanks accept. The
// stack debit and the ship save land in one unit of work.
type RefuelShipHandler struct {
	shipRepo     ship.Repository
	inventorySvc *appInventory.Service
	uow          common.UnitOfWork
}

func NewRefuelShipHandler(shipRepo ship.Repository, inventorySvc *appInventory.Service, uow common.UnitOfWork) *RefuelShipHandler {
	return &RefuelShipHandler{shipRepo: shipRepo, inventorySvc: inventorySvc, uow: uow}
}

func (h *RefuelShipHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RefuelShipCommand)
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

	stats := s.Stats()
	want := stats.FuelCapacityKg - stats.FuelKg
	if want <= 0 {
		return &RefuelShipResponse{TransferredKg: 0, FuelKg: s.FuelKg()}, nil
	}

	var consumed float64
	err = h.uow.Do(ctx, func(ctx context.Context) error {
		consumed, err = h.inventorySvc.ConsumeResource(ctx, s.LocationID(), ship.FuelResourceID, want)
		if err != nil {
			return err
		}
		if consumed > 0 {
			accepted := s.AddFuel(consumed)
			if accepted < consumed {
				// Tanks shrank between stats read and credit; return the rest.
				if err := h.inventorySvc.DepositResource(ctx, s.LocationID(), ship.FuelResourceID, consumed-accepted); err != nil {
					return err
				}
			}
			if err := h.shipRepo.Save(ctx, s); err != nil {
				return fmt.Errorf("failed to save ship: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Ship %s refueled %.1f kg at %s", s.ID(), consumed, s.LocationID())
	return &RefuelShipResponse{TransferredKg: consumed, FuelKg: s.FuelKg()}, nil
}
