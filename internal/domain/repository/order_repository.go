package repository

import (
	"context"

	"fieldtofork/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]*entity.Order, error)
	// List returns every order. Line items carry the seller uid, which
	// Firestore cannot filter on inside an array, so seller views filter
	// in the use case.
	List(ctx context.Context) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetPaymentReceived(ctx context.Context, id string, received bool) error
}
