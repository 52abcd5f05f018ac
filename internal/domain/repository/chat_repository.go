package repository

import (
	"context"

	"fieldtofork/internal/domain/entity"
)

type ChatRepository interface {
	// UpsertThread merges the thread summary, creating the document on
	// first contact.
	UpsertThread(ctx context.Context, thread *entity.Thread) error
	GetThread(ctx context.Context, threadID string) (*entity.Thread, error)
	ListThreadsByUser(ctx context.Context, uid string) ([]*entity.Thread, error)
	SetTyping(ctx context.Context, threadID, uid string) error

	CreateMessage(ctx context.Context, threadID string, message *entity.Message) error
	ListMessages(ctx context.Context, threadID string) ([]*entity.Message, error)
	GetMessage(ctx context.Context, threadID, messageID string) (*entity.Message, error)
	MarkSeen(ctx context.Context, threadID, messageID string) error
	DeleteMessage(ctx context.Context, threadID, messageID string) error
}
