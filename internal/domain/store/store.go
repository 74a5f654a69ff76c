package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: same name and address already registered")
)

// Store must exist before any order or stock record references it.
type Store struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null;uniqueIndex:idx_store_name_address" json:"name"`
	Address string `gorm:"not null;uniqueIndex:idx_store_name_address" json:"address"`
}

func New(name, address string) *Store {
	return &Store{Name: name, Address: address}
}

type Repository interface {
	Create(ctx context.Context, store *Store) error
	FindByID(ctx context.Context, id uint) (*Store, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
