package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
)

// LocationRepositoryGORM implements location graph persistence using GORM
type LocationRepositoryGORM struct {
	db *gorm.DB
}

// NewLocationRepository creates a new GORM-based location repository
func NewLocationRepository(db *gorm.DB) *LocationRepositoryGORM {
	return &LocationRepositoryGORM{db: db}
}

func locationToModel(loc *location.Location) *LocationModel {
	isGroup := 0
	if loc.IsGroup {
		isGroup = 1
	}
	return &LocationModel{
		ID:        loc.ID,
		Name:      loc.Name,
		ParentID:  loc.ParentID,
		IsGroup:   isGroup,
		SortOrder: loc.SortOrder,
		X:         loc.X,
		Y:         loc.Y,
	}
}

func modelToLocation(m *LocationModel) *location.Location {
	return &location.Location{
		ID:        m.ID,
		Name:      m.Name,
		ParentID:  m.ParentID,
		IsGroup:   m.IsGroup != 0,
		SortOrder: m.SortOrder,
		X:         m.X,
		Y:         m.Y,
	}
}

// FindByID retrieves one location, nil when absent
func (r *LocationRepositoryGORM) FindByID(ctx context.Context, id string) (*location.Location, error) {
	var model LocationModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return modelToLocation(&model), nil
}

// FindAll retrieves every location ordered for stable display
func (r *LocationRepositoryGORM) FindAll(ctx context.Context) ([]*location.Location, error) {
	var models []LocationModel
	if err := conn(ctx, r.db).Order("sort_order, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	out := make([]*location.Location, len(models))
	for i := range models {
		out[i] = modelToLocation(&models[i])
	}
	return out, nil
}

// Count returns the number of location rows
func (r *LocationRepositoryGORM) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&LocationModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}
	return count, nil
}

// Save upserts a location keyed by id
func (r *LocationRepositoryGORM) Save(ctx context.Context, loc *location.Location) error {
	model := locationToModel(loc)
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "parent_id", "is_group", "sort_order", "x", "y"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// FindAllEdges retrieves every transfer edge in insertion order
func (r *LocationRepositoryGORM) FindAllEdges(ctx context.Context) ([]location.TransferEdge, error) {
	var models []TransferEdgeModel
	if err := conn(ctx, r.db).Order("seq, from_id, to_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list edges: %w", err)
	}
	edges := make([]location.TransferEdge, len(models))
	for i, m := range models {
		edges[i] = location.TransferEdge{FromID: m.FromID, ToID: m.ToID, DvMS: m.DvMS, TofS: m.TofS}
	}
	return edges, nil
}

// SaveEdge upserts an edge keyed by (from_id, to_id); the insertion
// sequence survives re-seeding so Dijkstra tie-breaks stay stable
func (r *LocationRepositoryGORM) SaveEdge(ctx context.Context, edge location.TransferEdge) error {
	var count int64
	if err := conn(ctx, r.db).Model(&TransferEdgeModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count edges: %w", err)
	}
	model := &TransferEdgeModel{
		FromID: edge.FromID,
		ToID:   edge.ToID,
		DvMS:   edge.DvMS,
		TofS:   edge.TofS,
		Seq:    int(count),
	}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_id"}, {Name: "to_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"dv_m_s", "tof_s"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save edge: %w", err)
	}
	return nil
}

// FindSurfaceSite retrieves a site, nil when absent
func (r *LocationRepositoryGORM) FindSurfaceSite(ctx context.Context, locationID string) (*location.SurfaceSite, error) {
	var model SurfaceSiteModel
	err := conn(ctx, r.db).Where("location_id = ?", locationID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find surface site: %w", err)
	}
	return &location.SurfaceSite{
		LocationID:  model.LocationID,
		BodyID:      model.BodyID,
		OrbitNodeID: model.OrbitNodeID,
		GravityMS2:  model.GravityMS2,
	}, nil
}

// SaveSurfaceSite upserts a site keyed by location_id
func (r *LocationRepositoryGORM) SaveSurfaceSite(ctx context.Context, site location.SurfaceSite) error {
	model := &SurfaceSiteModel{
		LocationID:  site.LocationID,
		BodyID:      site.BodyID,
		OrbitNodeID: site.OrbitNodeID,
		GravityMS2:  site.GravityMS2,
	}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "location_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"body_id", "orbit_node_id", "gravity_m_s2"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save surface site: %w", err)
	}
	return nil
}

// FindSiteResources retrieves the ground-truth distribution for a site
func (r *LocationRepositoryGORM) FindSiteResources(ctx context.Context, siteLocationID string) ([]location.SurfaceSiteResource, error) {
	var models []SurfaceSiteResourceModel
	if err := conn(ctx, r.db).Where("site_location_id = ?", siteLocationID).Order("resource_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list site resources: %w", err)
	}
	out := make([]location.SurfaceSiteResource, len(models))
	for i, m := range models {
		out[i] = location.SurfaceSiteResource{
			SiteLocationID: m.SiteLocationID,
			ResourceID:     m.ResourceID,
			MassFraction:   m.MassFraction,
		}
	}
	return out, nil
}

// SaveSiteResource upserts one ground-truth fraction
func (r *LocationRepositoryGORM) SaveSiteResource(ctx context.Context, res location.SurfaceSiteResource) error {
	model := &SurfaceSiteResourceModel{
		SiteLocationID: res.SiteLocationID,
		ResourceID:     res.ResourceID,
		MassFraction:   res.MassFraction,
	}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "site_location_id"}, {Name: "resource_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mass_fraction"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save site resource: %w", err)
	}
	return nil
}
