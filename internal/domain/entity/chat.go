package entity

import (
	"sort"
	"strings"
	"time"
)

// ThreadID derives the chat document id from the two participants and the
// product. The participant ids are sorted lexicographically so either party
// computes the same id without a discovery query.
func ThreadID(userA, userB, productID string) string {
	ids := []string{userA, userB}
	sort.Strings(ids)
	return strings.Join([]string{ids[0], ids[1], productID}, "_")
}

type Thread struct {
	ID          string    `json:"id" firestore:"id"`
	Users       []string  `json:"users" firestore:"users"`
	ProductID   string    `json:"product_id" firestore:"productId"`
	LastMessage string    `json:"last_message" firestore:"lastMessage"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
	// Typing holds the uid of whoever is currently typing, or "".
	Typing string `json:"typing" firestore:"typing"`
}

// Counterparty returns the first participant other than uid.
func (t *Thread) Counterparty(uid string) string {
	for _, u := range t.Users {
		if u != uid {
			return u
		}
	}
	return ""
}

// HasParticipant reports whether uid is one of the thread's two users.
func (t *Thread) HasParticipant(uid string) bool {
	for _, u := range t.Users {
		if u == uid {
			return true
		}
	}
	return false
}
