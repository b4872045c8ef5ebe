package common

import "context"

// UnitOfWork runs a function so that every repository write made inside
// it commits or rolls back as one unit. Handlers that touch more than
// one row wrap their write sequence in Do; a failure anywhere in the
// callback leaves the store untouched.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
