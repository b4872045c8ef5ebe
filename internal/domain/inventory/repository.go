package inventory

import "context"

// Repository persists inventory stacks.
type Repository interface {
	// FindStack returns (nil, nil) when the stack does not exist.
	FindStack(ctx context.Context, locationID string, stackType StackType, stackKey string) (*Stack, error)
	FindByLocation(ctx context.Context, locationID string) ([]Stack, error)
	// FindPartStacksByItemID returns part stacks at a location sharing the
	// given item id, oldest first.
	FindPartStacksByItemID(ctx context.Context, locationID, itemID string) ([]Stack, error)
	Save(ctx context.Context, s *Stack) error
	Delete(ctx context.Context, locationID string, stackType StackType, stackKey string) error
}
