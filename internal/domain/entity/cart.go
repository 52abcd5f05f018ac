package entity

import (
	"strconv"
	"strings"
)

// DeliveryCharge is the flat delivery fee added to every order.
const DeliveryCharge = 100.0

// CartItem is a snapshot of a product at the time it was added, plus a
// quantity. Prices arrive either numeric or as a string carrying a currency
// symbol, so the field stays loosely typed and is coerced on read.
type CartItem struct {
	ProductID string      `json:"product_id" firestore:"id"`
	SellerID  string      `json:"seller_id" firestore:"uid"`
	Name      string      `json:"name" firestore:"name"`
	Price     interface{} `json:"price" firestore:"price"`
	Category  string      `json:"category,omitempty" firestore:"category,omitempty"`
	ImageURL  string      `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Quantity  int         `json:"quantity" firestore:"quantity"`
}

// ParsePrice coerces a numeric-or-string price to a non-negative float.
// Currency symbols and thousand separators are stripped; anything that still
// fails to parse counts as zero.
func ParsePrice(v interface{}) float64 {
	switch p := v.(type) {
	case float64:
		if p < 0 {
			return 0
		}
		return p
	case float32:
		return ParsePrice(float64(p))
	case int:
		return ParsePrice(float64(p))
	case int64:
		return ParsePrice(float64(p))
	case string:
		var b strings.Builder
		for _, r := range p {
			if (r >= '0' && r <= '9') || r == '.' {
				b.WriteRune(r)
			}
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(b.String()), 64)
		if err != nil || f < 0 {
			return 0
		}
		return f
	default:
		return 0
	}
}

// UnitPrice returns the item's coerced price.
func (i CartItem) UnitPrice() float64 {
	return ParsePrice(i.Price)
}

// EffectiveQuantity treats a missing or invalid quantity as 1.
func (i CartItem) EffectiveQuantity() int {
	if i.Quantity < 1 {
		return 1
	}
	return i.Quantity
}

// Subtotal sums price times quantity over the cart.
func Subtotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.UnitPrice() * float64(item.EffectiveQuantity())
	}
	return total
}

// GrandTotal is the subtotal plus the flat delivery charge.
func GrandTotal(items []CartItem) float64 {
	return Subtotal(items) + DeliveryCharge
}
