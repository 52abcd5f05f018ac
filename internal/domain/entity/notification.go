package entity

import "time"

type Notification struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	RecipientID string    `json:"recipient_id" firestore:"recipientId"`
	SenderID    string    `json:"sender_id" firestore:"senderId"`
	SenderName  string    `json:"sender_name" firestore:"senderName"`
	ChatID      string    `json:"chat_id,omitempty" firestore:"chatId,omitempty"`
	ProductID   string    `json:"product_id,omitempty" firestore:"productId,omitempty"`
	Type        string    `json:"type" firestore:"type"`
	Read        bool      `json:"read" firestore:"read"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
