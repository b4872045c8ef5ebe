package routing

import "context"

// MatrixRepository persists the precomputed transfer matrix.
type MatrixRepository interface {
	// ReplaceAll swaps the full matrix in one transaction.
	ReplaceAll(ctx context.Context, entries []MatrixEntry) error
	FindEntry(ctx context.Context, fromID, toID string) (*MatrixEntry, error)
	FindFrom(ctx context.Context, fromID string) ([]MatrixEntry, error)
	Count(ctx context.Context) (int64, error)
}
