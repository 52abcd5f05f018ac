package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/pkg/errors"
)

type firestoreChatRepository struct {
	client *firestore.Client
}

func NewFirestoreChatRepository(client *firestore.Client) repository.ChatRepository {
	return &firestoreChatRepository{
		client: client,
	}
}

// threadData flattens a thread into the map form the merge write requires;
// the SDK rejects struct data when MergeAll is set.
func threadData(thread *entity.Thread) map[string]interface{} {
	return map[string]interface{}{
		"id":          thread.ID,
		"users":       thread.Users,
		"productId":   thread.ProductID,
		"lastMessage": thread.LastMessage,
		"updatedAt":   thread.UpdatedAt,
		"typing":      thread.Typing,
	}
}

func (r *firestoreChatRepository) UpsertThread(ctx context.Context, thread *entity.Thread) error {
	thread.UpdatedAt = time.Now()

	_, err := r.client.Collection("chats").Doc(thread.ID).Set(ctx, threadData(thread), firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to upsert chat thread", err)
	}

	return nil
}

func (r *firestoreChatRepository) GetThread(ctx context.Context, threadID string) (*entity.Thread, error) {
	doc, err := r.client.Collection("chats").Doc(threadID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Chat thread", err)
		}
		return nil, errors.Internal("Failed to get chat thread", err)
	}

	var thread entity.Thread
	if err := doc.DataTo(&thread); err != nil {
		return nil, errors.Internal("Failed to parse chat thread data", err)
	}
	thread.ID = doc.Ref.ID

	return &thread, nil
}

func (r *firestoreChatRepository) ListThreadsByUser(ctx context.Context, uid string) ([]*entity.Thread, error) {
	iter := r.client.Collection("chats").Where("users", "array-contains", uid).Documents(ctx)
	var threads []*entity.Thread

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate chat threads", err)
		}

		var thread entity.Thread
		if err := doc.DataTo(&thread); err != nil {
			return nil, errors.Internal("Failed to parse chat thread data", err)
		}
		thread.ID = doc.Ref.ID
		threads = append(threads, &thread)
	}

	return threads, nil
}

func (r *firestoreChatRepository) SetTyping(ctx context.Context, threadID, uid string) error {
	_, err := r.client.Collection("chats").Doc(threadID).Update(ctx, []firestore.Update{
		{Path: "typing", Value: uid},
	})
	if err != nil {
		return errors.Internal("Failed to update typing state", err)
	}

	return nil
}

func (r *firestoreChatRepository) CreateMessage(ctx context.Context, threadID string, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}

	_, err := r.client.Collection("chats").Doc(threadID).Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreChatRepository) ListMessages(ctx context.Context, threadID string) ([]*entity.Message, error) {
	iter := r.client.Collection("chats").Doc(threadID).Collection("messages").
		OrderBy("timestamp", firestore.Asc).Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreChatRepository) GetMessage(ctx context.Context, threadID, messageID string) (*entity.Message, error) {
	doc, err := r.client.Collection("chats").Doc(threadID).Collection("messages").Doc(messageID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Message", err)
		}
		return nil, errors.Internal("Failed to get message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse message data", err)
	}
	message.ID = doc.Ref.ID

	return &message, nil
}

func (r *firestoreChatRepository) MarkSeen(ctx context.Context, threadID, messageID string) error {
	_, err := r.client.Collection("chats").Doc(threadID).Collection("messages").Doc(messageID).Update(ctx, []firestore.Update{
		{Path: "seen", Value: true},
	})
	if err != nil {
		return errors.Internal("Failed to mark message seen", err)
	}

	return nil
}

func (r *firestoreChatRepository) DeleteMessage(ctx context.Context, threadID, messageID string) error {
	_, err := r.client.Collection("chats").Doc(threadID).Collection("messages").Doc(messageID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete message", err)
	}

	return nil
}
