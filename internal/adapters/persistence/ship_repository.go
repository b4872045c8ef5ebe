package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/catalog"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/parts"
	"github.com/RocketManDan1/Frontier-sub001/internal/domain/ship"
)

// ShipRepositoryGORM implements ship persistence using GORM.
//
// Parts are stored as a JSON array of legacy maps (every fill alias key
// written) so older payloads round-trip. Loading normalizes the parts
// against the catalog and hardens container fill state; a changed ship
// is written back immediately so hardening happens exactly once.
type ShipRepositoryGORM struct {
	db       *gorm.DB
	registry *catalog.Registry
}

// NewShipRepository creates a new GORM-based ship repository
func NewShipRepository(db *gorm.DB, registry *catalog.Registry) *ShipRepositoryGORM {
	return &ShipRepositoryGORM{db: db, registry: registry}
}

func (r *ShipRepositoryGORM) toModel(s *ship.Ship) (*ShipModel, error) {
	partList := s.Parts()
	rawParts := make([]map[string]any, len(partList))
	for i := range partList {
		rawParts[i] = parts.ToLegacyMap(&partList[i])
	}
	partsJSON, err := json.Marshal(rawParts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode parts: %w", err)
	}

	pathJSON := ""
	if path := s.TransferPath(); len(path) > 0 {
		encoded, err := json.Marshal(path)
		if err != nil {
			return nil, fmt.Errorf("failed to encode transfer path: %w", err)
		}
		pathJSON = string(encoded)
	}

	return &ShipModel{
		ID:             s.ID(),
		Name:           s.Name(),
		Skin:           s.Skin(),
		Color:          s.Color(),
		LocationID:     s.LocationID(),
		FromLocationID: s.FromLocationID(),
		ToLocationID:   s.ToLocationID(),
		DepartedAt:     s.DepartedAt(),
		ArrivesAt:      s.ArrivesAt(),
		TransferPath:   pathJSON,
		Parts:          string(partsJSON),
		FuelKg:         s.FuelKg(),
	}, nil
}

func (r *ShipRepositoryGORM) fromModel(ctx context.Context, model *ShipModel) (*ship.Ship, error) {
	var rawParts []map[string]any
	if model.Parts != "" {
		if err := json.Unmarshal([]byte(model.Parts), &rawParts); err != nil {
			return nil, fmt.Errorf("failed to decode parts for ship %s: %w", model.ID, err)
		}
	}
	decoded := make([]parts.Part, 0, len(rawParts))
	for _, raw := range rawParts {
		decoded = append(decoded, parts.FromRaw(raw))
	}
	normalized := parts.Normalize(decoded, r.registry)
	hardened := ship.HardenContainers(normalized, model.FuelKg)

	var path []string
	if model.TransferPath != "" {
		if err := json.Unmarshal([]byte(model.TransferPath), &path); err != nil {
			return nil, fmt.Errorf("failed to decode transfer path for ship %s: %w", model.ID, err)
		}
	}

	s, err := ship.ReconstructShip(
		model.ID, model.Name, model.Skin, model.Color,
		model.LocationID,
		model.FromLocationID, model.ToLocationID,
		model.DepartedAt, model.ArrivesAt,
		path,
		normalized, model.FuelKg,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ship %s: %w", model.ID, err)
	}

	if hardened {
		if err := r.Save(ctx, s); err != nil {
			return nil, fmt.Errorf("failed to persist hardened containers for ship %s: %w", model.ID, err)
		}
	}
	return s, nil
}

// FindByID retrieves one ship, nil when absent
func (r *ShipRepositoryGORM) FindByID(ctx context.Context, id string) (*ship.Ship, error) {
	var model ShipModel
	err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ship: %w", err)
	}
	return r.fromModel(ctx, &model)
}

// FindAll retrieves every ship
func (r *ShipRepositoryGORM) FindAll(ctx context.Context) ([]*ship.Ship, error) {
	var models []ShipModel
	if err := conn(ctx, r.db).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list ships: %w", err)
	}
	out := make([]*ship.Ship, 0, len(models))
	for i := range models {
		s, err := r.fromModel(ctx, &models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// FindArrivalsDue retrieves in-transit ships with arrives_at <= now
func (r *ShipRepositoryGORM) FindArrivalsDue(ctx context.Context, now time.Time) ([]*ship.Ship, error) {
	var models []ShipModel
	err := conn(ctx, r.db).
		Where("location_id = ? AND arrives_at IS NOT NULL AND arrives_at <= ?", "", now).
		Order("arrives_at").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find due arrivals: %w", err)
	}
	out := make([]*ship.Ship, 0, len(models))
	for i := range models {
		s, err := r.fromModel(ctx, &models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Save upserts a ship keyed by id
func (r *ShipRepositoryGORM) Save(ctx context.Context, s *ship.Ship) error {
	model, err := r.toModel(s)
	if err != nil {
		return err
	}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "skin", "color", "location_id", "from_location_id", "to_location_id",
			"departed_at", "arrives_at", "transfer_path", "parts", "fuel_kg",
		}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ship: %w", err)
	}
	return nil
}

// Delete removes a ship row
func (r *ShipRepositoryGORM) Delete(ctx context.Context, id string) error {
	if err := conn(ctx, r.db).Where("id = ?", id).Delete(&ShipModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ship: %w", err)
	}
	return nil
}

// DeleteByNamePrefix removes every ship whose name starts with the prefix
func (r *ShipRepositoryGORM) DeleteByNamePrefix(ctx context.Context, prefix string) (int, error) {
	result := conn(ctx, r.db).Where("name LIKE ?", prefix+"%").Delete(&ShipModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge ships: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}
