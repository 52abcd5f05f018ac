package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/pkg/errors"
	"fieldtofork/pkg/logger"
)

type ChatUseCase struct {
	chatRepo         repository.ChatRepository
	userRepo         repository.UserRepository
	productRepo      repository.ProductRepository
	notificationRepo repository.NotificationRepository
	pusher           EventPusher

	typingIdle   time.Duration
	typingMu     sync.Mutex
	typingTimers map[string]*time.Timer
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	notificationRepo repository.NotificationRepository,
	pusher EventPusher,
	typingIdle time.Duration,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:         chatRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		notificationRepo: notificationRepo,
		pusher:           pusher,
		typingIdle:       typingIdle,
		typingTimers:     make(map[string]*time.Timer),
	}
}

type ThreadView struct {
	*entity.Thread
	Product   *entity.Product `json:"product,omitempty"`
	OtherUser *entity.User    `json:"other_user,omitempty"`
}

// OpenThread resolves (or creates) the thread for the caller, the other
// party and the product. Roles are re-derived from the user documents on
// every open, not stored on the thread, so a later userType change can put
// old threads at odds with history.
func (uc *ChatUseCase) OpenThread(ctx context.Context, uid, otherUID, productID string) (*ThreadView, error) {
	if uid == otherUID {
		return nil, errors.BadRequest("You cannot chat with yourself", nil)
	}

	other, err := uc.userRepo.GetByID(ctx, otherUID)
	if err != nil {
		return nil, errors.NotFound("Recipient", err)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	threadID := entity.ThreadID(uid, otherUID, productID)

	thread, err := uc.chatRepo.GetThread(ctx, threadID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		thread = &entity.Thread{
			ID:        threadID,
			Users:     []string{uid, otherUID},
			ProductID: productID,
		}
		if err := uc.chatRepo.UpsertThread(ctx, thread); err != nil {
			return nil, err
		}
	}

	return &ThreadView{
		Thread:    thread,
		Product:   product,
		OtherUser: other,
	}, nil
}

func (uc *ChatUseCase) ListThreads(ctx context.Context, uid string) ([]*entity.Thread, error) {
	return uc.chatRepo.ListThreadsByUser(ctx, uid)
}

// ListMessages returns the thread's messages oldest-first. As a side effect
// it marks the most recent message seen when it was sent by the
// counterparty and is still unread; earlier unread messages are left alone.
func (uc *ChatUseCase) ListMessages(ctx context.Context, uid, threadID string) ([]*entity.Message, error) {
	thread, err := uc.chatRepo.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !thread.HasParticipant(uid) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}

	messages, err := uc.chatRepo.ListMessages(ctx, threadID)
	if err != nil {
		return nil, err
	}

	if len(messages) > 0 {
		last := messages[len(messages)-1]
		if last.SenderID != uid && !last.Seen {
			if err := uc.chatRepo.MarkSeen(ctx, threadID, last.ID); err != nil {
				logger.Warn("Failed to mark message %s seen: %v", last.ID, err)
			} else {
				last.Seen = true
				uc.pusher.PushToUser(last.SenderID, "message_seen", map[string]string{
					"thread_id":  threadID,
					"message_id": last.ID,
				})
			}
		}
	}

	return messages, nil
}

type SendMessageInput struct {
	ThreadID string
	Text     string
}

// SendMessage performs the three sequential writes of the send flow: thread
// summary upsert, message append, notification create. They are not
// transactional; a notification failure after the message lands is logged
// and otherwise invisible to the sender.
func (uc *ChatUseCase) SendMessage(ctx context.Context, uid string, input SendMessageInput) (*entity.Message, error) {
	if input.Text == "" {
		return nil, errors.BadRequest("Message text is required", nil)
	}

	thread, err := uc.chatRepo.GetThread(ctx, input.ThreadID)
	if err != nil {
		return nil, err
	}
	if !thread.HasParticipant(uid) {
		return nil, errors.Forbidden("You are not part of this conversation", nil)
	}

	sender, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	uc.cancelTypingTimer(input.ThreadID)

	thread.LastMessage = input.Text
	thread.Typing = ""
	if err := uc.chatRepo.UpsertThread(ctx, thread); err != nil {
		return nil, err
	}

	message := &entity.Message{
		SenderID:  uid,
		Text:      input.Text,
		Timestamp: time.Now(),
		Seen:      false,
	}
	if err := uc.chatRepo.CreateMessage(ctx, input.ThreadID, message); err != nil {
		return nil, err
	}

	recipientID := thread.Counterparty(uid)

	notification := &entity.Notification{
		Title:       "New Message",
		Description: fmt.Sprintf("You have a new message: %q", input.Text),
		RecipientID: recipientID,
		SenderID:    uid,
		SenderName:  sender.Username,
		ChatID:      input.ThreadID,
		ProductID:   thread.ProductID,
		Type:        "message",
		Read:        false,
	}
	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Warn("Message %s delivered but notification not created: %v", message.ID, err)
	} else {
		uc.pusher.PushToUser(recipientID, "notification", notification)
	}

	uc.pusher.PushToUser(recipientID, "chat_message", map[string]interface{}{
		"thread_id": input.ThreadID,
		"message":   message,
	})

	return message, nil
}

// Typing records the caller as typing on the thread and arms (or rearms)
// the idle timer that clears the flag after the configured quiet period.
func (uc *ChatUseCase) Typing(ctx context.Context, uid, threadID string) error {
	thread, err := uc.chatRepo.GetThread(ctx, threadID)
	if err != nil {
		return err
	}
	if !thread.HasParticipant(uid) {
		return errors.Forbidden("You are not part of this conversation", nil)
	}

	if thread.Typing != uid {
		if err := uc.chatRepo.SetTyping(ctx, threadID, uid); err != nil {
			return err
		}
		uc.pusher.PushToUser(thread.Counterparty(uid), "typing", map[string]string{
			"thread_id": threadID,
			"typing":    uid,
		})
	}

	uc.resetTypingTimer(threadID, thread.Counterparty(uid))

	return nil
}

func (uc *ChatUseCase) resetTypingTimer(threadID, counterparty string) {
	uc.typingMu.Lock()
	defer uc.typingMu.Unlock()

	if timer, ok := uc.typingTimers[threadID]; ok {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(uc.typingIdle, func() {
		uc.typingMu.Lock()
		// A rearm may have replaced the entry; only a fired timer removes
		// its own.
		if uc.typingTimers[threadID] == timer {
			delete(uc.typingTimers, threadID)
		}
		uc.typingMu.Unlock()

		// The originating request is long gone; clear with a fresh context.
		if err := uc.chatRepo.SetTyping(context.Background(), threadID, ""); err != nil {
			logger.Warn("Failed to clear typing on %s: %v", threadID, err)
			return
		}
		uc.pusher.PushToUser(counterparty, "typing", map[string]string{
			"thread_id": threadID,
			"typing":    "",
		})
	})
	uc.typingTimers[threadID] = timer
}

func (uc *ChatUseCase) cancelTypingTimer(threadID string) {
	uc.typingMu.Lock()
	defer uc.typingMu.Unlock()

	if timer, ok := uc.typingTimers[threadID]; ok {
		timer.Stop()
		delete(uc.typingTimers, threadID)
	}
}

// DeleteMessage removes one of the caller's own messages. No tombstone is
// kept.
func (uc *ChatUseCase) DeleteMessage(ctx context.Context, uid, threadID, messageID string) error {
	thread, err := uc.chatRepo.GetThread(ctx, threadID)
	if err != nil {
		return err
	}
	if !thread.HasParticipant(uid) {
		return errors.Forbidden("You are not part of this conversation", nil)
	}

	message, err := uc.chatRepo.GetMessage(ctx, threadID, messageID)
	if err != nil {
		return err
	}
	if message.SenderID != uid {
		return errors.Forbidden("You can only delete your own messages", nil)
	}

	return uc.chatRepo.DeleteMessage(ctx, threadID, messageID)
}
