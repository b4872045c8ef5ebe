package persistence

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// conn resolves the handle a repository call should run on: the
// enclosing transaction when one travels on the context, the shared
// connection otherwise.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// UnitOfWorkGORM scopes a callback to one database transaction. Every
// repository built on the same *gorm.DB picks the transaction up from
// the context, so the callback's writes commit together or not at all.
type UnitOfWorkGORM struct {
	db *gorm.DB
}

// NewUnitOfWork creates a GORM-backed unit of work.
func NewUnitOfWork(db *gorm.DB) *UnitOfWorkGORM {
	return &UnitOfWorkGORM{db: db}
}

// Do runs fn inside a transaction carried on the context.
func (u *UnitOfWorkGORM) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
