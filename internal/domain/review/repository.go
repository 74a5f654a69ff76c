package review

import "context"

type Repository interface {
	Create(ctx context.Context, review *Review) error
	FindByID(ctx context.Context, id string) (*Review, error)
	FindAll(ctx context.Context) ([]Review, error)
	FindByStoreAndProduct(ctx context.Context, storeID, productID uint) ([]Review, error)
	FindByProduct(ctx context.Context, productID uint) ([]Review, error)
	FindByCustomer(ctx context.Context, customerID uint) ([]Review, error)
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id string) error
}
