package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return catalog.ErrDuplicateSKU
		}
		return err
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translateNotFound(err, catalog.ErrNotFound)
	}
	return &product, nil
}

func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, translateNotFound(err, catalog.ErrNotFound)
	}
	return &product, nil
}

func (r *ProductRepository) FindByName(ctx context.Context, name string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		return nil, translateNotFound(err, catalog.ErrNotFound)
	}
	return &product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Where("category = ?", category).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByPriceBetween(ctx context.Context, min, max float64) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Where("price BETWEEN ? AND ?", min, max).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) SearchByName(ctx context.Context, sub string) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).Where("name LIKE ?", "%"+sub+"%").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) SearchByNameAndCategory(ctx context.Context, sub, category string) ([]catalog.Product, error) {
	var products []catalog.Product
	err := r.db.WithContext(ctx).
		Where("name LIKE ? AND category = ?", "%"+sub+"%", category).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) SearchByNameAtStore(ctx context.Context, sub string, storeID uint) ([]catalog.Product, error) {
	var products []catalog.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN stock_records ON stock_records.product_id = products.id").
		Where("stock_records.store_id = ? AND products.name LIKE ?", storeID, "%"+sub+"%").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) FindByCategoryAndStore(ctx context.Context, category string, storeID uint) ([]catalog.Product, error) {
	var products []catalog.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN stock_records ON stock_records.product_id = products.id").
		Where("stock_records.store_id = ? AND products.category = ?", storeID, category).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&catalog.Product{}, id).Error
}

func translateNotFound(err, domainErr error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr
	}
	return err
}
