package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

func (g *GormDB) Create(ctx context.Context, record any) error {
	err := g.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if IsDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

func (g *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := g.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (g *GormDB) GetAllBy(ctx context.Context, column string, values any, entity any) error {
	tx := g.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), values).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// GetRecentBy returns at most limit records matching column, newest first.
func (g *GormDB) GetRecentBy(ctx context.Context, column string, value any, limit int, entity any) error {
	tx := g.DB.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", column), value).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting recent records by %q: %w", column, tx.Error)
	}
	return nil
}

func (g *GormDB) Count(ctx context.Context, model any, column string, value any) (int64, error) {
	var count int64
	err := g.DB.WithContext(ctx).
		Model(model).
		Where(fmt.Sprintf("%s = ?", column), value).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count records by %q: %w", column, err)
	}
	return count, nil
}

// PluckWhere collects a single column of the rows matching the condition.
func (g *GormDB) PluckWhere(ctx context.Context, model any, column string, dest any, condition string, args ...any) error {
	err := g.DB.WithContext(ctx).
		Model(model).
		Where(condition, args...).
		Order(column).
		Pluck(column, dest).Error
	if err != nil {
		return fmt.Errorf("pluck %q: %w", column, err)
	}
	return nil
}

// InTx runs fn inside a database transaction, committing when fn returns nil.
func (g *GormDB) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.DB.WithContext(ctx).Transaction(fn)
}

func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrDuplicateKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}
