package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
)

// ProspectingRepositoryGORM implements the visibility overlay using GORM
type ProspectingRepositoryGORM struct {
	db *gorm.DB
}

// NewProspectingRepository creates a new GORM-based prospecting repository
func NewProspectingRepository(db *gorm.DB) *ProspectingRepositoryGORM {
	return &ProspectingRepositoryGORM{db: db}
}

// FindResults retrieves an org's revealed fractions for a site
func (r *ProspectingRepositoryGORM) FindResults(ctx context.Context, orgID, siteLocationID string) ([]location.ProspectingResult, error) {
	var models []ProspectingResultModel
	err := conn(ctx, r.db).
		Where("org_id = ? AND site_location_id = ?", orgID, siteLocationID).
		Order("resource_id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list prospecting results: %w", err)
	}
	out := make([]location.ProspectingResult, len(models))
	for i, m := range models {
		out[i] = location.ProspectingResult{
			OrgID:            m.OrgID,
			SiteLocationID:   m.SiteLocationID,
			ResourceID:       m.ResourceID,
			MassFraction:     m.MassFraction,
			ProspectedAt:     m.ProspectedAt,
			ProspectedByShip: m.ProspectedByShip,
		}
	}
	return out, nil
}

// SaveResult upserts one revealed fraction
func (r *ProspectingRepositoryGORM) SaveResult(ctx context.Context, result location.ProspectingResult) error {
	model := &ProspectingResultModel{
		OrgID:            result.OrgID,
		SiteLocationID:   result.SiteLocationID,
		ResourceID:       result.ResourceID,
		MassFraction:     result.MassFraction,
		ProspectedAt:     result.ProspectedAt,
		ProspectedByShip: result.ProspectedByShip,
	}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "org_id"}, {Name: "site_location_id"}, {Name: "resource_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"mass_fraction", "prospected_at", "prospected_by_ship"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save prospecting result: %w", err)
	}
	return nil
}
