package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type Repository[T any] struct {
}

func (repo Repository[T]) Save(ctx context.Context, db *gorm.DB, entity *T) error {
	return db.WithContext(ctx).Create(entity).Error
}

func (repo Repository[T]) Update(ctx context.Context, db *gorm.DB, entity *T) error {
	return db.WithContext(ctx).Save(entity).Error
}

func (repo Repository[T]) Delete(ctx context.Context, db *gorm.DB, entity *T) error {
	return db.WithContext(ctx).Delete(entity).Error
}

func (repo Repository[T]) FindById(ctx context.Context, db *gorm.DB, entity *T, id uint) error {
	return db.WithContext(ctx).Where("id = ?", id).First(entity).Error
}

func (repo Repository[T]) FindAll(ctx context.Context, db *gorm.DB, entity *[]T) error {
	return db.WithContext(ctx).Find(entity).Error
}

// byRecency is the default listing order for rooms and messages: most
// recently updated first, ties broken by most recently created.
func byRecency(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC, created_at DESC")
}

// contains builds the case-insensitive substring pattern used with
// LOWER(column) LIKE ?. An empty query matches everything.
func contains(q string) string {
	return "%" + strings.ToLower(q) + "%"
}
