package queries

import (
	"context"
	"fmt"
	"sort"

	"github.com/RocketManDan1/Frontier-sub001/internal/application/common"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/shared"
)

// GetSiteViewQuery asks for a site as one organization sees it.
type GetSiteViewQuery struct {
	OrgID          string
	SiteLocationID string
}

// ResourceFraction is one revealed share of a site's composition.
type ResourceFraction struct {
	ResourceID   string
	MassFraction float64
}

// GetSiteViewResponse hides the ground truth until the org prospects:
// non-prospected sites report an empty distribution. Revealed entries
// are ordered by mass fraction descending, resource id breaking ties.
type GetSiteViewResponse struct {
	SiteLocationID       string
	GravityMS2           float64
	IsProspected         bool
	ResourceDistribution []ResourceFraction
}

// GetSiteViewHandler reads the visibility overlay.
type GetSiteViewHandler struct {
	locationRepo    location.Repository
	prospectingRepo location.ProspectingRepository
}

func NewGetSiteViewHandler(locationRepo location.Repository, prospectingRepo location.ProspectingRepository) *GetSiteViewHandler {
	return &GetSiteViewHandler{locationRepo: locationRepo, prospectingRepo: prospectingRepo}
}

func (h *GetSiteViewHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetSiteViewQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	site, err := h.locationRepo.FindSurfaceSite(ctx, query.SiteLocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load site: %w", err)
	}
	if site == nil {
		return nil, shared.NewNotFoundError("surface site", query.SiteLocationID)
	}

	results, err := h.prospectingRepo.FindResults(ctx, query.OrgID, query.SiteLocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}

	dist := make([]ResourceFraction, 0, len(results))
	for _, r := range results {
		dist = append(dist, ResourceFraction{ResourceID: r.ResourceID, MassFraction: r.MassFraction})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].MassFraction != dist[j].MassFraction {
			return dist[i].MassFraction > dist[j].MassFraction
		}
		return dist[i].ResourceID < dist[j].ResourceID
	})

	return &GetSiteViewResponse{
		SiteLocationID:       query.SiteLocationID,
		GravityMS2:           site.GravityMS2,
		IsProspected:         len(results) > 0,
		ResourceDistribution: dist,
	}, nil
}
