package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
)

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, st *store.Store) error {
	if err := r.db.WithContext(ctx).Create(st).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return store.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id uint) (*store.Store, error) {
	var st store.Store
	if err := r.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, translateNotFound(err, store.ErrNotFound)
	}
	return &st, nil
}

func (r *StoreRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&store.Store{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
