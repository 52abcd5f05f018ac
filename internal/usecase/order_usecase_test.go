package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/service"
	"fieldtofork/internal/infrastructure/localstore"
	"fieldtofork/pkg/errors"
)

func newOrderFixture(t *testing.T) (*OrderUseCase, *fakeOrderRepo, *memStore, *fakePusher) {
	t.Helper()

	users := newFakeUserRepo(
		&entity.User{ID: "buyer-1", Username: "ada", UserType: entity.RoleBuyer},
		&entity.User{ID: "seller-1", Username: "femi", UserType: entity.RoleSeller},
		&entity.User{ID: "seller-2", Username: "bola", UserType: entity.RoleWholesaler},
	)
	orders := newFakeOrderRepo()
	store := newMemStore()
	pusher := &fakePusher{}
	payments := service.NewFlutterwavePaymentService("https://sandbox.flutterwave.com/pay/test")

	return NewOrderUseCase(orders, users, store, payments, pusher), orders, store, pusher
}

func seedCart(t *testing.T, store *memStore, uid string) {
	t.Helper()
	items := []entity.CartItem{
		{ProductID: "p1", SellerID: "seller-1", Name: "Tomatoes", Price: "₹50", Quantity: 2},
		{ProductID: "p2", SellerID: "seller-2", Name: "Yam", Price: 30.0, Quantity: 1},
	}
	require.NoError(t, store.Put(uid, localstore.KindCart, items))
}

func TestCheckoutRejectsMissingAddressFirst(t *testing.T) {
	uc, _, store, _ := newOrderFixture(t)
	seedCart(t, store, "buyer-1")

	// Both fields are bad; the address check must win.
	_, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{Address: "  ", PaymentMethod: ""})
	require.Error(t, err)
	assert.Contains(t, err.(*errors.AppError).Message, "shipping address")
}

func TestCheckoutRejectsPaymentMethodSentinel(t *testing.T) {
	uc, _, store, _ := newOrderFixture(t)
	seedCart(t, store, "buyer-1")

	for _, method := range []string{"", "No payment method selected"} {
		_, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{Address: "12 Farm Road", PaymentMethod: method})
		require.Error(t, err)
		assert.Contains(t, err.(*errors.AppError).Message, "payment method")
	}
}

func TestCheckoutRejectsUnknownUser(t *testing.T) {
	uc, _, _, _ := newOrderFixture(t)

	_, err := uc.Checkout(context.Background(), "ghost", CheckoutInput{Address: "12 Farm Road", PaymentMethod: "cod"})
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.(*errors.AppError).Code)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	uc, _, _, _ := newOrderFixture(t)

	_, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{Address: "12 Farm Road", PaymentMethod: "cod"})
	require.Error(t, err)
	assert.Contains(t, err.(*errors.AppError).Message, "cart is empty")
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	uc, _, store, _ := newOrderFixture(t)
	seedCart(t, store, "buyer-1")

	order, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{Address: "12 Farm Road", PaymentMethod: "cod"})
	require.NoError(t, err)

	assert.Equal(t, "buyer-1", order.UserID)
	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, 130.0, order.Subtotal)
	assert.Equal(t, 100.0, order.DeliveryCharge)
	assert.Equal(t, 230.0, order.GrandTotal)
	assert.False(t, order.PaymentReceived)
	assert.True(t, strings.HasPrefix(order.Tracking.TrackingNumber, "FTF-"))
	assert.Equal(t, entity.StatusPending, order.Tracking.CurrentStatus)
	assert.Equal(t, "Field To Fork Logistics", order.Tracking.Carrier)
	assert.Equal(t, order.CreatedAt.Add(72*time.Hour), order.EstimatedDelivery)

	var items []entity.CartItem
	require.NoError(t, store.Get("buyer-1", localstore.KindCart, &items))
	assert.Empty(t, items)
}

func TestCheckoutCardPaymentIsPrepaid(t *testing.T) {
	uc, _, store, _ := newOrderFixture(t)
	seedCart(t, store, "buyer-1")

	order, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{Address: "12 Farm Road", PaymentMethod: "card"})
	require.NoError(t, err)
	assert.True(t, order.PaymentReceived)
}

func TestCheckoutKeepsCartWhenCreateFails(t *testing.T) {
	uc, orders, store, _ := newOrderFixture(t)
	seedCart(t, store, "buyer-1")
	orders.createErr = errors.Internal("write failed", nil)

	_, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{Address: "12 Farm Road", PaymentMethod: "cod"})
	require.Error(t, err)

	var items []entity.CartItem
	require.NoError(t, store.Get("buyer-1", localstore.KindCart, &items))
	assert.Len(t, items, 2)
}

func TestAdvanceStatusRequiresSellerRole(t *testing.T) {
	uc, _, store, _ := newOrderFixture(t)
	seedCart(t, store, "buyer-1")

	order, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{Address: "12 Farm Road", PaymentMethod: "cod"})
	require.NoError(t, err)

	_, err = uc.AdvanceStatus(context.Background(), order.ID, "buyer-1")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", err.(*errors.AppError).Code)
}

func TestAdvanceStatusRequiresLineItemOwnership(t *testing.T) {
	uc, orders, _, _ := newOrderFixture(t)
	orders.seq++
	orders.orders["order-1"] = &entity.Order{
		ID:     "order-1",
		UserID: "buyer-1",
		Status: entity.StatusPending,
		CartItems: []entity.CartItem{
			{ProductID: "p1", SellerID: "someone-else"},
		},
	}

	_, err := uc.AdvanceStatus(context.Background(), "order-1", "seller-1")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", err.(*errors.AppError).Code)
}

func TestAdvanceStatusWalksFlowAndFlipsCodPayment(t *testing.T) {
	uc, _, store, pusher := newOrderFixture(t)
	seedCart(t, store, "buyer-1")

	created, err := uc.Checkout(context.Background(), "buyer-1", CheckoutInput{Address: "12 Farm Road", PaymentMethod: "COD"})
	require.NoError(t, err)
	assert.False(t, created.PaymentReceived)

	want := []string{entity.StatusAccepted, entity.StatusOutForDelivery, entity.StatusDelivered}
	for _, status := range want {
		order, err := uc.AdvanceStatus(context.Background(), created.ID, "seller-1")
		require.NoError(t, err)
		assert.Equal(t, status, order.Status)
		assert.Equal(t, status, order.Tracking.CurrentStatus)
	}

	final, err := uc.Track(context.Background(), created.ID, "buyer-1")
	require.NoError(t, err)
	assert.True(t, final.PaymentReceived)

	events := pusher.pushedOfType("order_status")
	require.Len(t, events, 3)
	assert.Equal(t, "buyer-1", events[0].UserID)
}

func TestAdvanceStatusDeliveredIsNoOp(t *testing.T) {
	uc, orders, _, pusher := newOrderFixture(t)
	orders.seq++
	orders.orders["order-1"] = &entity.Order{
		ID:     "order-1",
		UserID: "buyer-1",
		Status: entity.StatusDelivered,
		CartItems: []entity.CartItem{
			{ProductID: "p1", SellerID: "seller-1"},
		},
	}

	order, err := uc.AdvanceStatus(context.Background(), "order-1", "seller-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDelivered, order.Status)
	assert.Empty(t, pusher.pushedOfType("order_status"))
}

func TestListMineTabs(t *testing.T) {
	uc, orders, _, _ := newOrderFixture(t)
	for i, status := range []string{entity.StatusPending, entity.StatusDelivered, entity.StatusAccepted} {
		orders.seq++
		id := fmt.Sprintf("order-%d", i+1)
		orders.orders[id] = &entity.Order{ID: id, UserID: "buyer-1", Status: status}
	}

	active, err := uc.ListMine(context.Background(), "buyer-1", "active")
	require.NoError(t, err)
	assert.Len(t, active, 2)

	completed, err := uc.ListMine(context.Background(), "buyer-1", "completed")
	require.NoError(t, err)
	assert.Len(t, completed, 1)

	all, err := uc.ListMine(context.Background(), "buyer-1", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestTrackRejectsStrangers(t *testing.T) {
	uc, orders, _, _ := newOrderFixture(t)
	orders.seq++
	orders.orders["order-1"] = &entity.Order{
		ID:     "order-1",
		UserID: "buyer-1",
		CartItems: []entity.CartItem{
			{ProductID: "p1", SellerID: "seller-1"},
		},
	}

	_, err := uc.Track(context.Background(), "order-1", "seller-2")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", err.(*errors.AppError).Code)

	_, err = uc.Track(context.Background(), "order-1", "seller-1")
	assert.NoError(t, err)
}

func TestConfirmCardPayment(t *testing.T) {
	uc, orders, _, _ := newOrderFixture(t)
	orders.seq++
	orders.orders["order-1"] = &entity.Order{
		ID:            "order-1",
		UserID:        "buyer-1",
		PaymentMethod: "card",
	}

	outcome, err := uc.ConfirmCardPayment(context.Background(), "order-1", "buyer-1", "https://pay.example.com/thank-you?ref=123")
	require.NoError(t, err)
	assert.Equal(t, service.PaymentOutcomeSuccess, outcome)
	assert.True(t, orders.orders["order-1"].PaymentReceived)

	outcome, err = uc.ConfirmCardPayment(context.Background(), "order-1", "buyer-1", "https://pay.example.com/cancelled")
	require.NoError(t, err)
	assert.Equal(t, service.PaymentOutcomeCancel, outcome)

	_, err = uc.ConfirmCardPayment(context.Background(), "order-1", "seller-1", "https://pay.example.com/thank-you")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", err.(*errors.AppError).Code)
}
