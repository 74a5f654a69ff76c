package catalog

import "context"

type Repository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindByCategory(ctx context.Context, category string) ([]Product, error)
	FindByPriceBetween(ctx context.Context, min, max float64) ([]Product, error)
	// SearchByName matches on a name substring.
	SearchByName(ctx context.Context, sub string) ([]Product, error)
	SearchByNameAndCategory(ctx context.Context, sub, category string) ([]Product, error)
	// SearchByNameAtStore matches on a name substring among products stocked at the store.
	SearchByNameAtStore(ctx context.Context, sub string, storeID uint) ([]Product, error)
	FindByCategoryAndStore(ctx context.Context, category string, storeID uint) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}
