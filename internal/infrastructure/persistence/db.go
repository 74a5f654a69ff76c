package persistence

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/customer"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/domain/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/review"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
)

// Open connects to PostgreSQL and migrates the schema. TranslateError is on
// so unique-constraint violations surface as gorm.ErrDuplicatedKey and the
// repositories can map them to domain errors.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("persistence: connect: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&catalog.Product{},
		&store.Store{},
		&customer.Customer{},
		&inventory.StockRecord{},
		&order.Order{},
		&order.Line{},
		&review.Review{},
	)
	if err != nil {
		return fmt.Errorf("persistence: migrate: %w", err)
	}
	return nil
}
