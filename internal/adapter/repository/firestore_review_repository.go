package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Upsert(ctx context.Context, productID string, review *entity.Review) error {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	// Doc id is the reviewer uid: one review per user per product,
	// last write wins.
	_, err := r.client.Collection("products").Doc(productID).Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to save review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	iter := r.client.Collection("products").Doc(productID).Collection("reviews").Documents(ctx)
	var reviews []*entity.Review

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reviews", err)
		}

		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		review.ID = doc.Ref.ID
		reviews = append(reviews, &review)
	}

	return reviews, nil
}
