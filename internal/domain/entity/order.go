package entity

import (
	"strings"
	"time"
)

const (
	StatusPending        = "Pending"
	StatusAccepted       = "Accepted"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
)

// statusFlow is the fixed forward-only transition map. Delivered has no
// entry, which makes it terminal.
var statusFlow = map[string]string{
	StatusPending:        StatusAccepted,
	StatusAccepted:       StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

// NextStatus looks up the single allowed successor of the given status.
// The second result is false when the status is terminal or unknown.
func NextStatus(current string) (string, bool) {
	next, ok := statusFlow[current]
	return next, ok
}

type TrackingInfo struct {
	CurrentStatus  string `json:"current_status" firestore:"currentStatus"`
	TrackingNumber string `json:"tracking_number" firestore:"trackingNumber"`
	Carrier        string `json:"carrier" firestore:"carrier"`
}

type Order struct {
	ID                string       `json:"id" firestore:"id"`
	UserID            string       `json:"user_id" firestore:"userId"`
	CartItems         []CartItem   `json:"cart_items" firestore:"cartItems"`
	Address           string       `json:"address" firestore:"address"`
	Subtotal          float64      `json:"subtotal" firestore:"subtotal"`
	DeliveryCharge    float64      `json:"delivery_charge" firestore:"deliveryCharge"`
	GrandTotal        float64      `json:"grand_total" firestore:"grandTotal"`
	PaymentMethod     string       `json:"payment_method" firestore:"paymentMethod"`
	PaymentReceived   bool         `json:"payment_received" firestore:"paymentReceived"`
	Status            string       `json:"status" firestore:"status"`
	EstimatedDelivery time.Time    `json:"estimated_delivery" firestore:"estimatedDelivery"`
	CreatedAt         time.Time    `json:"created_at" firestore:"createdAt"`
	Tracking          TrackingInfo `json:"tracking_info" firestore:"trackingInfo"`
}

// IsCashOnDelivery matches the payment method case-insensitively.
func (o *Order) IsCashOnDelivery() bool {
	return strings.EqualFold(o.PaymentMethod, "cod")
}

// ContainsSeller reports whether any line item belongs to the given seller.
func (o *Order) ContainsSeller(sellerID string) bool {
	for _, item := range o.CartItems {
		if item.SellerID == sellerID {
			return true
		}
	}
	return false
}
