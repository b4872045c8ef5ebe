package location

import "context"

// Repository persists the location graph and its surface annotations.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Location, error)
	FindAll(ctx context.Context) ([]*Location, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, loc *Location) error

	FindAllEdges(ctx context.Context) ([]TransferEdge, error)
	SaveEdge(ctx context.Context, edge TransferEdge) error

	FindSurfaceSite(ctx context.Context, locationID string) (*SurfaceSite, error)
	SaveSurfaceSite(ctx context.Context, site SurfaceSite) error
	FindSiteResources(ctx context.Context, siteLocationID string) ([]SurfaceSiteResource, error)
	SaveSiteResource(ctx context.Context, res SurfaceSiteResource) error
}

// ProspectingRepository persists per-organization site visibility.
type ProspectingRepository interface {
	FindResults(ctx context.Context, orgID, siteLocationID string) ([]ProspectingResult, error)
	SaveResult(ctx context.Context, result ProspectingResult) error
}
