package repository

import (
	"context"

	"fieldtofork/internal/domain/entity"
)

type ReviewRepository interface {
	// Upsert writes the review under the reviewer's uid so a second
	// submission from the same user overwrites the first.
	Upsert(ctx context.Context, productID string, review *entity.Review) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error)
}
