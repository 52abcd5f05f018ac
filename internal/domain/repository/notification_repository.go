package repository

import (
	"context"

	"fieldtofork/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	CountUnread(ctx context.Context, recipientID string) (int64, error)
}
