package usecase

import (
	"context"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/pkg/errors"
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

func (uc *NotificationUseCase) List(ctx context.Context, recipientID string) ([]*entity.Notification, error) {
	return uc.notificationRepo.ListByRecipient(ctx, recipientID)
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	return uc.notificationRepo.CountUnread(ctx, recipientID)
}

// MarkRead flips the read flag when the recipient opens the notification.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, recipientID string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.RecipientID != recipientID {
		return errors.Forbidden("This notification is not yours", nil)
	}

	return uc.notificationRepo.MarkRead(ctx, id)
}

// Delete removes a notification from the feed (the swipe action).
func (uc *NotificationUseCase) Delete(ctx context.Context, id, recipientID string) error {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification.RecipientID != recipientID {
		return errors.Forbidden("This notification is not yours", nil)
	}

	return uc.notificationRepo.Delete(ctx, id)
}
