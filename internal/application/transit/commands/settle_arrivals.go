package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
)

// SettleArrivalsCommand docks every ship whose arrival time has passed.
// Safe to run any number of times; ships already docked are untouched.
type SettleArrivalsCommand struct{}

// SettleArrivalsResponse lists the ships that arrived this sweep.
type SettleArrivalsResponse struct {
	ArrivedShipIDs []string
}

// SettleArrivalsHandler is the arrival sweep behind both the background
// ticker and the read paths that must observe settled state.
type SettleArrivalsHandler struct {
	shipRepo ship.Repository
	clock    *shared.GameClock
}

func NewSettleArrivalsHandler(shipRepo ship.Repository, clock *shared.GameClock) *SettleArrivalsHandler {
	return &SettleArrivalsHandler{shipRepo: shipRepo, clock: clock}
}

func (h *SettleArrivalsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*SettleArrivalsCommand); !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	now := h.clock.Now()
	due, err := h.shipRepo.FindArrivalsDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find due arrivals: %w", err)
	}

	arrived := make([]string, 0, len(due))
	for _, s := range due {
		dest := s.ToLocationID()
		if err := s.Arrive(); err != nil {
			return nil, err
		}
		if err := h.shipRepo.Save(ctx, s); err != nil {
			return nil, fmt.Errorf("failed to save ship %s: %w", s.ID(), err)
		}
		arrived = append(arrived, s.ID())
		log.Printf("Ship %s arrived at %s", s.ID(), dest)
	}

	return &SettleArrivalsResponse{ArrivedShipIDs: arrived}, nil
}
