package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
)

type StockRepository struct {
	db *gorm.DB
	// forUpdate makes pair lookups take a row lock so that concurrent
	// read-check-decrement sequences against the same (store, product) row
	// serialize. Enabled by the unit of work.
	forUpdate bool
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db}
}

func newLockedStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db: db, forUpdate: true}
}

func (r *StockRepository) Create(ctx context.Context, record *inventory.StockRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return inventory.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *StockRepository) FindByStoreAndProduct(ctx context.Context, storeID, productID uint) (*inventory.StockRecord, error) {
	q := r.db.WithContext(ctx)
	// SQLite has no FOR UPDATE; it serializes writing transactions itself.
	if r.forUpdate && q.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var record inventory.StockRecord
	err := q.Where("store_id = ? AND product_id = ?", storeID, productID).First(&record).Error
	if err != nil {
		return nil, translateNotFound(err, inventory.ErrNotFound)
	}
	return &record, nil
}

func (r *StockRepository) Save(ctx context.Context, record *inventory.StockRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *StockRepository) FindByStore(ctx context.Context, storeID uint) ([]inventory.StockRecord, error) {
	var records []inventory.StockRecord
	if err := r.db.WithContext(ctx).Where("store_id = ?", storeID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *StockRepository) DeleteByProduct(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Delete(&inventory.StockRecord{}).Error
}
