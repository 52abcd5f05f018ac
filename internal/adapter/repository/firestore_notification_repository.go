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

type firestoreNotificationRepository struct {
	client *firestore.Client
}

func NewFirestoreNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &firestoreNotificationRepository{
		client: client,
	}
}

func (r *firestoreNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == "" {
		doc := r.client.Collection("notifications").NewDoc()
		notification.ID = doc.ID
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("notifications").Doc(notification.ID).Set(ctx, notification)
	if err != nil {
		return errors.Internal("Failed to create notification", err)
	}

	return nil
}

func (r *firestoreNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	doc, err := r.client.Collection("notifications").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Notification", err)
		}
		return nil, errors.Internal("Failed to get notification", err)
	}

	var notification entity.Notification
	if err := doc.DataTo(&notification); err != nil {
		return nil, errors.Internal("Failed to parse notification data", err)
	}
	notification.ID = doc.Ref.ID

	return &notification, nil
}

func (r *firestoreNotificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	iter := r.client.Collection("notifications").
		Where("recipientId", "==", recipientID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	var notifications []*entity.Notification

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate notifications", err)
		}

		var notification entity.Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, errors.Internal("Failed to parse notification data", err)
		}
		notification.ID = doc.Ref.ID
		notifications = append(notifications, &notification)
	}

	return notifications, nil
}

func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection("notifications").Doc(id).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	if err != nil {
		return errors.Internal("Failed to mark notification read", err)
	}

	return nil
}

func (r *firestoreNotificationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("notifications").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete notification", err)
	}

	return nil
}

func (r *firestoreNotificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	docs, err := r.client.Collection("notifications").
		Where("recipientId", "==", recipientID).
		Where("read", "==", false).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count unread notifications", err)
	}

	return int64(len(docs)), nil
}
