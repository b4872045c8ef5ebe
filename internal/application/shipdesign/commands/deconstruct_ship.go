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

// DeconstructShipCommand breaks a docked ship back into inventory: every
// part becomes a unit on the location's part stacks and remaining fuel
// returns to the water resource stack.
type DeconstructShipCommand struct {
	ShipID string
}

// DeconstructShipResponse reports what was returned to inventory.
type DeconstructShipResponse struct {
	LocationID     string
	PartsReturned  int
	FuelReturnedKg float64
}

// DeconstructShipHandler dismantles the ship and deletes it. The stack
// credits and the ship deletion land in one unit of work.
type DeconstructShipHandler struct {
	shipRepo     ship.Repository
	inventorySvc *appInventory.Service
	uow          common.UnitOfWork
}

func NewDeconstructShipHandler(shipRepo ship.Repository, inventorySvc *appInventory.Service, uow common.UnitOfWork) *DeconstructShipHandler {
	return &DeconstructShipHandler{shipRepo: shipRepo, inventorySvc: inventorySvc, uow: uow}
}

func (h *DeconstructShipHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeconstructShipCommand)
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

	locationID := s.LocationID()
	err = h.uow.Do(ctx, func(ctx context.Context) error {
		for _, p := range s.Parts() {
			// Fill state is instance-scoped; stacks hold bare parts.
			bare := p.Clone()
			bare.Fill = nil
			bare.ContainerUID = ""
			if err := h.inventorySvc.DepositPart(ctx, locationID, bare, 1); err != nil {
				return err
			}
		}
		if s.FuelKg() > 0 {
			if err := h.inventorySvc.DepositResource(ctx, locationID, ship.FuelResourceID, s.FuelKg()); err != nil {
				return err
			}
		}

		if err := h.shipRepo.Delete(ctx, s.ID()); err != nil {
			return fmt.Errorf("failed to delete ship: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Ship %s deconstructed at %s: %d parts, %.1f kg fuel returned",
		s.ID(), locationID, len(s.Parts()), s.FuelKg())
	return &DeconstructShipResponse{
		LocationID:     locationID,
		PartsReturned:  len(s.Parts()),
		FuelReturnedKg: s.FuelKg(),
	}, nil
}
