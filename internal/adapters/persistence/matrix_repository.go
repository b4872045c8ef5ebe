package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/routing"
)

// MatrixRepositoryGORM implements transfer matrix persistence using GORM
type MatrixRepositoryGORM struct {
	db *gorm.DB
}

// NewMatrixRepository creates a new GORM-based matrix repository
func NewMatrixRepository(db *gorm.DB) *MatrixRepositoryGORM {
	return &MatrixRepositoryGORM{db: db}
}

func matrixEntryToModel(e routing.MatrixEntry) (*TransferMatrixModel, error) {
	pathJSON, err := json.Marshal(e.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to encode path: %w", err)
	}
	return &TransferMatrixModel{
		FromID: e.FromID,
		ToID:   e.ToID,
		DvMS:   e.DvMS,
		TofS:   e.TofS,
		Path:   string(pathJSON),
	}, nil
}

func modelToMatrixEntry(m *TransferMatrixModel) (routing.MatrixEntry, error) {
	var path []string
	if m.Path != "" {
		if err := json.Unmarshal([]byte(m.Path), &path); err != nil {
			return routing.MatrixEntry{}, fmt.Errorf("failed to decode path for (%s,%s): %w", m.FromID, m.ToID, err)
		}
	}
	return routing.MatrixEntry{
		FromID: m.FromID,
		ToID:   m.ToID,
		DvMS:   m.DvMS,
		TofS:   m.TofS,
		Path:   path,
	}, nil
}

// ReplaceAll swaps the full matrix in one transaction
func (r *MatrixRepositoryGORM) ReplaceAll(ctx context.Context, entries []routing.MatrixEntry) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&TransferMatrixModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear matrix: %w", err)
		}
		const batchSize = 500
		models := make([]TransferMatrixModel, 0, len(entries))
		for _, e := range entries {
			model, err := matrixEntryToModel(e)
			if err != nil {
				return err
			}
			models = append(models, *model)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(models, batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert matrix entries: %w", err)
		}
		return nil
	})
}

// FindEntry retrieves one matrix entry, nil when unreachable
func (r *MatrixRepositoryGORM) FindEntry(ctx context.Context, fromID, toID string) (*routing.MatrixEntry, error) {
	var model TransferMatrixModel
	err := conn(ctx, r.db).Where("from_id = ? AND to_id = ?", fromID, toID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find matrix entry: %w", err)
	}
	entry, err := modelToMatrixEntry(&model)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindFrom retrieves every entry out of one source
func (r *MatrixRepositoryGORM) FindFrom(ctx context.Context, fromID string) ([]routing.MatrixEntry, error) {
	var models []TransferMatrixModel
	if err := conn(ctx, r.db).Where("from_id = ?", fromID).Order("to_id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list matrix entries: %w", err)
	}
	out := make([]routing.MatrixEntry, 0, len(models))
	for i := range models {
		entry, err := modelToMatrixEntry(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// Count returns the number of cached entries
func (r *MatrixRepositoryGORM) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&TransferMatrixModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count matrix entries: %w", err)
	}
	return count, nil
}
