package entity

import (
	"strings"
	"time"
)

const (
	RoleBuyer      = "Buyer"
	RoleSeller     = "Seller"
	RoleWholesaler = "Wholesaler"
)

type ShippingAddress struct {
	FormattedAddress string  `json:"formatted_address" firestore:"formattedAddress"`
	Latitude         float64 `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty" firestore:"longitude,omitempty"`
}

type User struct {
	ID              string          `json:"id" firestore:"id"`
	Username        string          `json:"username" firestore:"username"`
	Email           string          `json:"email" firestore:"email"`
	Phone           string          `json:"phone" firestore:"phone"`
	UserType        string          `json:"user_type" firestore:"userType"`
	ProfileImageURL string          `json:"profile_image_url,omitempty" firestore:"profileImageUrl,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty" firestore:"paymentMethod,omitempty"`
	DefaultAddress  string          `json:"default_address,omitempty" firestore:"defaultAddress,omitempty"`
	ShippingAddress ShippingAddress `json:"shipping_address,omitempty" firestore:"shippingAddress,omitempty"`
	CreatedAt       time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time       `json:"updated_at" firestore:"updatedAt"`
}

// IsBuyer reports whether the user may use cart and favorites.
func (u *User) IsBuyer() bool {
	return strings.EqualFold(u.UserType, RoleBuyer)
}

// IsSeller reports whether the user may list products and advance orders.
// Wholesalers sell in bulk and carry the same privileges.
func (u *User) IsSeller() bool {
	return strings.EqualFold(u.UserType, RoleSeller) || strings.EqualFold(u.UserType, RoleWholesaler)
}
