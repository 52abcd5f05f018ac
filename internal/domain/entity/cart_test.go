package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 50.0, ParsePrice("₹50"))
	assert.Equal(t, 30.0, ParsePrice(30.0))
	assert.Equal(t, 30.0, ParsePrice(30))
	assert.Equal(t, 1234.5, ParsePrice("₦1,234.5"))
	assert.Equal(t, 99.99, ParsePrice("$99.99"))
	assert.Equal(t, 0.0, ParsePrice("free"))
	assert.Equal(t, 0.0, ParsePrice(""))
	assert.Equal(t, 0.0, ParsePrice(nil))
	assert.Equal(t, 0.0, ParsePrice(-5.0))
	assert.Equal(t, 0.0, ParsePrice(true))
}

func TestEffectiveQuantity(t *testing.T) {
	assert.Equal(t, 1, CartItem{Quantity: 0}.EffectiveQuantity())
	assert.Equal(t, 1, CartItem{Quantity: -3}.EffectiveQuantity())
	assert.Equal(t, 4, CartItem{Quantity: 4}.EffectiveQuantity())
}

func TestSubtotalAndGrandTotal(t *testing.T) {
	items := []CartItem{
		{ProductID: "p1", Price: "₹50", Quantity: 2},
		{ProductID: "p2", Price: 30.0, Quantity: 1},
	}

	assert.Equal(t, 130.0, Subtotal(items))
	assert.Equal(t, 230.0, GrandTotal(items))
}

func TestSubtotalTreatsUnparsablePriceAsZero(t *testing.T) {
	items := []CartItem{
		{ProductID: "p1", Price: "call for price", Quantity: 3},
		{ProductID: "p2", Price: "20", Quantity: 0},
	}

	// The unparsable line contributes nothing; the zero quantity counts
	// as one unit.
	assert.Equal(t, 20.0, Subtotal(items))
	assert.Equal(t, 120.0, GrandTotal(items))
}

func TestGrandTotalEmptyCart(t *testing.T) {
	assert.Equal(t, DeliveryCharge, GrandTotal(nil))
}
