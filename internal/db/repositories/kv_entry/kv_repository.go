package kv_entry

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/francislhj094/pocket-worlds/internal/db"
	"github.com/francislhj094/pocket-worlds/internal/store"
)

/*
REPOSITORY INTERFACE

Satisfies store.Store so the engine never sees gorm.
*/

type KVRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type KVRepositoryImpl struct {
	db *db.DB
}

var _ store.Store = (*KVRepositoryImpl)(nil)

func NewKVRepository(database *db.DB) KVRepository {
	return &KVRepositoryImpl{db: database}
}

func (r *KVRepositoryImpl) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := r.db.DB.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return entry.Value, nil
}

// Set upserts by key.
func (r *KVRepositoryImpl) Set(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value}
	return r.db.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (r *KVRepositoryImpl) Delete(ctx context.Context, key string) error {
	return r.db.DB.WithContext(ctx).
		Where("key = ?", key).
		Delete(&KVEntry{}).Error
}
