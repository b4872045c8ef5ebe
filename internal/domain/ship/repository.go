package ship

import (
	"context"
	"time"
)

// Repository persists ships.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Ship, error)
	FindAll(ctx context.Context) ([]*Ship, error)
	// FindArrivalsDue returns ships in transit whose arrival time is at or
	// before the given game time.
	FindArrivalsDue(ctx context.Context, now time.Time) ([]*Ship, error)
	Save(ctx context.Context, s *Ship) error
	Delete(ctx context.Context, id string) error
	// DeleteByNamePrefix removes every ship whose name starts with the
	// prefix. Used to purge scratch ships at startup.
	DeleteByNamePrefix(ctx context.Context, prefix string) (int, error)
}
