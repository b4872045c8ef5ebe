package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/inventory"
)

// InventoryRepositoryGORM implements stack persistence using GORM
type InventoryRepositoryGORM struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new GORM-based inventory repository
func NewInventoryRepository(db *gorm.DB) *InventoryRepositoryGORM {
	return &InventoryRepositoryGORM{db: db}
}

func stackToModel(s *inventory.Stack) *InventoryStackModel {
	return &InventoryStackModel{
		LocationID: s.LocationID,
		StackType:  string(s.StackType),
		StackKey:   s.StackKey,
		ItemID:     s.ItemID,
		Name:       s.Name,
		Quantity:   s.Quantity,
		MassKg:     s.MassKg,
		VolumeM3:   s.VolumeM3,
		Payload:    s.Payload,
		UpdatedAt:  s.UpdatedAt,
	}
}

func modelToStack(m *InventoryStackModel) inventory.Stack {
	return inventory.Stack{
		LocationID: m.LocationID,
		StackType:  inventory.StackType(m.StackType),
		StackKey:   m.StackKey,
		ItemID:     m.ItemID,
		Name:       m.Name,
		Quantity:   m.Quantity,
		MassKg:     m.MassKg,
		VolumeM3:   m.VolumeM3,
		Payload:    m.Payload,
		UpdatedAt:  m.UpdatedAt,
	}
}

// FindStack retrieves one stack, nil when absent
func (r *InventoryRepositoryGORM) FindStack(ctx context.Context, locationID string, stackType inventory.StackType, stackKey string) (*inventory.Stack, error) {
	var model InventoryStackModel
	err := conn(ctx, r.db).
		Where("location_id = ? AND stack_type = ? AND stack_key = ?", locationID, string(stackType), stackKey).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find stack: %w", err)
	}
	stack := modelToStack(&model)
	return &stack, nil
}

// FindByLocation retrieves every stack at a location
func (r *InventoryRepositoryGORM) FindByLocation(ctx context.Context, locationID string) ([]inventory.Stack, error) {
	var models []InventoryStackModel
	err := conn(ctx, r.db).
		Where("location_id = ?", locationID).
		Order("stack_type, stack_key").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stacks: %w", err)
	}
	out := make([]inventory.Stack, len(models))
	for i := range models {
		out[i] = modelToStack(&models[i])
	}
	return out, nil
}

// FindPartStacksByItemID retrieves part stacks for an item id, oldest first
func (r *InventoryRepositoryGORM) FindPartStacksByItemID(ctx context.Context, locationID, itemID string) ([]inventory.Stack, error) {
	var models []InventoryStackModel
	err := conn(ctx, r.db).
		Where("location_id = ? AND stack_type = ? AND item_id = ?", locationID, string(inventory.StackTypePart), itemID).
		Order("updated_at, stack_key").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list part stacks: %w", err)
	}
	out := make([]inventory.Stack, len(models))
	for i := range models {
		out[i] = modelToStack(&models[i])
	}
	return out, nil
}

// Save upserts a stack keyed by (location_id, stack_type, stack_key)
func (r *InventoryRepositoryGORM) Save(ctx context.Context, s *inventory.Stack) error {
	model := stackToModel(s)
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "location_id"}, {Name: "stack_type"}, {Name: "stack_key"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"item_id", "name", "quantity", "mass_kg", "volume_m3", "payload", "updated_at",
		}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save stack: %w", err)
	}
	return nil
}

// Delete removes a stack row
func (r *InventoryRepositoryGORM) Delete(ctx context.Context, locationID string, stackType inventory.StackType, stackKey string) error {
	err := conn(ctx, r.db).
		Where("location_id = ? AND stack_type = ? AND stack_key = ?", locationID, string(stackType), stackKey).
		Delete(&InventoryStackModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete stack: %w", err)
	}
	return nil
}
