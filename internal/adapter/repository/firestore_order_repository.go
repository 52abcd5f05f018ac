package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]*entity.Order, error) {
	iter := r.client.Collection("orders").Where("userId", "==", buyerID).Documents(ctx)
	return r.collect(iter)
}

func (r *firestoreOrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	iter := r.client.Collection("orders").OrderBy("createdAt", firestore.Desc).Documents(ctx)
	return r.collect(iter)
}

func (r *firestoreOrderRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Order, error) {
	var orders []*entity.Order

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}

func (r *firestoreOrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.client.Collection("orders").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "trackingInfo.currentStatus", Value: status},
	})
	if err != nil {
		return errors.Internal("Failed to update order status", err)
	}

	return nil
}

func (r *firestoreOrderRepository) SetPaymentReceived(ctx context.Context, id string, received bool) error {
	_, err := r.client.Collection("orders").Doc(id).Update(ctx, []firestore.Update{
		{Path: "paymentReceived", Value: received},
	})
	if err != nil {
		return errors.Internal("Failed to update payment state", err)
	}

	return nil
}
