package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetaRepositoryGORM implements the key/value meta store using GORM
type MetaRepositoryGORM struct {
	db *gorm.DB
}

// NewMetaRepository creates a new GORM-based meta repository
func NewMetaRepository(db *gorm.DB) *MetaRepositoryGORM {
	return &MetaRepositoryGORM{db: db}
}

// Get returns ("", nil) when the key is absent
func (r *MetaRepositoryGORM) Get(ctx context.Context, key string) (string, error) {
	var model MetaModel
	err := conn(ctx, r.db).Where("key = ?", key).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read meta %s: %w", key, err)
	}
	return model.Value, nil
}

// Set upserts a key/value row
func (r *MetaRepositoryGORM) Set(ctx context.Context, key, value string) error {
	model := &MetaModel{Key: key, Value: value}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(model).Error; err != nil {
		return fmt.Errorf("failed to write meta %s: %w", key, err)
	}
	return nil
}
