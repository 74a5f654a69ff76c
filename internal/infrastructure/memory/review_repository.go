package memory

import (
	"context"
	"sort"
	"sync"

	domain "github.com/peemtanapat/retail-backoffice/internal/domain/review"
)

type ReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string]*domain.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{
		reviews: make(map[string]*domain.Review),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reviews[rev.ID] = cloneReview(rev)
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	rev, ok := r.reviews[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneReview(rev), nil
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	return r.filter(func(*domain.Review) bool { return true }), nil
}

func (r *ReviewRepository) FindByStoreAndProduct(ctx context.Context, storeID, productID uint) ([]domain.Review, error) {
	return r.filter(func(rev *domain.Review) bool {
		return rev.StoreID == storeID && rev.ProductID == productID
	}), nil
}

func (r *ReviewRepository) FindByProduct(ctx context.Context, productID uint) ([]domain.Review, error) {
	return r.filter(func(rev *domain.Review) bool { return rev.ProductID == productID }), nil
}

func (r *ReviewRepository) FindByCustomer(ctx context.Context, customerID uint) ([]domain.Review, error) {
	return r.filter(func(rev *domain.Review) bool { return rev.CustomerID == customerID }), nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *domain.Review) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[rev.ID]; !ok {
		return domain.ErrNotFound
	}
	r.reviews[rev.ID] = cloneReview(rev)
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.reviews, id)
	return nil
}

func (r *ReviewRepository) filter(match func(*domain.Review) bool) []domain.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Review, 0)
	for _, rev := range r.reviews {
		if match(rev) {
			out = append(out, *cloneReview(rev))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneReview(rev *domain.Review) *domain.Review {
	if rev == nil {
		return nil
	}
	clone := *rev
	return &clone
}
