package repository

import (
	"context"

	"fieldtofork/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// UpdateRating writes the recomputed aggregate onto the product document.
	UpdateRating(ctx context.Context, id string, rating float64, count int) error
}
