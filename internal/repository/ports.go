package repository

import (
	"context"

	"gorm.io/gorm"
)

// Storage is satisfied by *db.GormDB.
type Storage interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, values any, entity any) error
	GetRecentBy(ctx context.Context, column string, value any, limit int, entity any) error
	Count(ctx context.Context, model any, column string, value any) (int64, error)
	PluckWhere(ctx context.Context, model any, column string, dest any, condition string, args ...any) error
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}
