package entity

import (
	"time"
)

type Product struct {
	ID          string    `json:"id" firestore:"id"`
	SellerID    string    `json:"seller_id" firestore:"uid"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Price       string    `json:"price" firestore:"price"`
	Category    string    `json:"category" firestore:"category"`
	Location    string    `json:"location,omitempty" firestore:"location,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Rating      float64   `json:"rating" firestore:"rating"`
	RatingCount int       `json:"rating_count" firestore:"ratingCount"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Review lives in the reviews subcollection of a product, keyed by the
// reviewer's uid so a resubmission overwrites the prior entry.
type Review struct {
	ID        string    `json:"id" firestore:"id"`
	Username  string    `json:"username" firestore:"username"`
	Rating    int       `json:"rating" firestore:"rating"`
	Comment   string    `json:"comment" firestore:"comment"`
	CreatedAt time.Time `json:"created_at" firestore:"timestamp"`
}

// AverageRating returns the arithmetic mean of the given ratings, or 0 for
// an empty list.
func AverageRating(reviews []*Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	return float64(total) / float64(len(reviews))
}
