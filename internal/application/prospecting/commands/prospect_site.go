package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
)

// ProspectSiteCommand reveals a surface site's resource distribution to
// an organization.
type ProspectSiteCommand struct {
	OrgID          string
	ShipID         string
	SiteLocationID string
}

// ProspectSiteResponse carries the revealed distribution.
type ProspectSiteResponse struct {
	Results []location.ProspectingResult
}

// ProspectSiteHandler checks the ship is on site with a robonaut, then
// copies the ground truth into the org's visibility overlay. The result
// rows land in one unit of work: an overlay is complete or absent,
// never half-revealed.
type ProspectSiteHandler struct {
	shipRepo        ship.Repository
	locationRepo    location.Repository
	prospectingRepo location.ProspectingRepository
	clock           *shared.GameClock
	uow             common.UnitOfWork
}

func NewProspectSiteHandler(
	shipRepo ship.Repository,
	locationRepo location.Repository,
	prospectingRepo location.ProspectingRepository,
	clock *shared.GameClock,
	uow common.UnitOfWork,
) *ProspectSiteHandler {
	return &ProspectSiteHandler{
		shipRepo:        shipRepo,
		locationRepo:    locationRepo,
		prospectingRepo: prospectingRepo,
		clock:           clock,
		uow:             uow,
	}
}

func (h *ProspectSiteHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ProspectSiteCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	site, err := h.locationRepo.FindSurfaceSite(ctx, cmd.SiteLocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load site: %w", err)
	}
	if site == nil {
		return nil, shared.NewNotFoundError("surface site", cmd.SiteLocationID)
	}

	s, err := h.shipRepo.FindByID(ctx, cmd.ShipID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ship: %w", err)
	}
	if s == nil {
		return nil, shared.NewNotFoundError("ship", cmd.ShipID)
	}
	if s.LocationID() != site.LocationID {
		return nil, shared.NewValidationError("ship_id", "ship is not at the site")
	}

	hasRobonaut := false
	for _, p := range s.Parts() {
		if p.IsRobonaut() {
			hasRobonaut = true
			break
		}
	}
	if !hasRobonaut {
		return nil, shared.NewValidationError("ship_id", "ship carries no robonaut")
	}

	existing, err := h.prospectingRepo.FindResults(ctx, cmd.OrgID, cmd.SiteLocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check prior results: %w", err)
	}
	if len(existing) > 0 {
		return nil, shared.NewAlreadyProspectedError(cmd.SiteLocationID)
	}

	resources, err := h.locationRepo.FindSiteResources(ctx, cmd.SiteLocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load site resources: %w", err)
	}

	now := h.clock.Now()
	results := make([]location.ProspectingResult, 0, len(resources))
	err = h.uow.Do(ctx, func(ctx context.Context) error {
		for _, res := range resources {
			result := location.ProspectingResult{
				OrgID:            cmd.OrgID,
				SiteLocationID:   cmd.SiteLocationID,
				ResourceID:       res.ResourceID,
				MassFraction:     res.MassFraction,
				ProspectedAt:     now,
				ProspectedByShip: s.ID(),
			}
			if err := h.prospectingRepo.SaveResult(ctx, result); err != nil {
				return fmt.Errorf("failed to save result: %w", err)
			}
			results = append(results, result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Org %s prospected %s with ship %s: %d resources revealed",
		cmd.OrgID, cmd.SiteLocationID, s.ID(), len(results))
	return &ProspectSiteResponse{Results: results}, nil
}
