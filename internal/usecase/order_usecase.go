package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/internal/domain/service"
	"fieldtofork/internal/infrastructure/localstore"
	"fieldtofork/pkg/errors"
	"fieldtofork/pkg/logger"
)

// noPaymentMethod is the sentinel the settings screen stores before the
// user picks a method; checkout must reject it like an empty value.
const noPaymentMethod = "No payment method selected"

const estimatedDeliveryWindow = 3 * 24 * time.Hour

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
	store     localstore.Store
	payments  *service.FlutterwavePaymentService
	pusher    EventPusher
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	store localstore.Store,
	payments *service.FlutterwavePaymentService,
	pusher EventPusher,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		store:     store,
		payments:  payments,
		pusher:    pusher,
	}
}

type CheckoutInput struct {
	Address       string
	PaymentMethod string
}

// Checkout turns the caller's cart into exactly one order document.
// Validation order is fixed: address, then payment method, then user; the
// first failing check is the one reported. The cart is cleared only after
// the create succeeds.
func (uc *OrderUseCase) Checkout(ctx context.Context, uid string, input CheckoutInput) (*entity.Order, error) {
	if strings.TrimSpace(input.Address) == "" {
		return nil, errors.BadRequest("Please fill in the required shipping address field", nil)
	}
	if input.PaymentMethod == "" || input.PaymentMethod == noPaymentMethod {
		return nil, errors.BadRequest("Please select a payment method", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.Unauthorized("User not logged in", err)
	}

	var items []entity.CartItem
	if err := uc.store.Get(uid, localstore.KindCart, &items); err != nil {
		return nil, errors.Internal("Failed to read cart", err)
	}
	if len(items) == 0 {
		return nil, errors.BadRequest("Your cart is empty", nil)
	}

	now := time.Now()
	cod := strings.EqualFold(input.PaymentMethod, "cod")

	order := &entity.Order{
		UserID:          user.ID,
		CartItems:       items,
		Address:         input.Address,
		Subtotal:        entity.Subtotal(items),
		DeliveryCharge:  entity.DeliveryCharge,
		GrandTotal:      entity.GrandTotal(items),
		PaymentMethod:   input.PaymentMethod,
		PaymentReceived: !cod,
		Status:          entity.StatusPending,

		EstimatedDelivery: now.Add(estimatedDeliveryWindow),
		CreatedAt:         now,
		Tracking: entity.TrackingInfo{
			CurrentStatus:  entity.StatusPending,
			TrackingNumber: "FTF-" + strings.ToUpper(uuid.New().String()[:8]),
			Carrier:        "Field To Fork Logistics",
		},
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.store.Delete(uid, localstore.KindCart); err != nil {
		// The order exists; losing the clear only leaves a stale cart.
		logger.Warn("Order %s created but cart for %s not cleared: %v", order.ID, uid, err)
	}

	return order, nil
}

// AdvanceStatus moves an order one step along the fixed forward map. Only a
// seller owning at least one line item may advance. Delivered is terminal;
// advancing it is a no-op. Reaching Delivered on a cash-on-delivery order
// flips paymentReceived as a second, separate write.
func (uc *OrderUseCase) AdvanceStatus(ctx context.Context, orderID, actorID string) (*entity.Order, error) {
	actor, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsSeller() {
		return nil, errors.Forbidden("Only sellers can update order status", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.ContainsSeller(actorID) {
		return nil, errors.Forbidden("You have no items in this order", nil)
	}

	next, ok := entity.NextStatus(order.Status)
	if !ok {
		return order, nil
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	order.Status = next
	order.Tracking.CurrentStatus = next

	if next == entity.StatusDelivered && order.IsCashOnDelivery() {
		// Separate write; a crash in between leaves status=Delivered
		// with paymentReceived=false.
		if err := uc.orderRepo.SetPaymentReceived(ctx, orderID, true); err != nil {
			logger.Error("Order %s delivered but paymentReceived not set: %v", orderID, err)
			return nil, err
		}
		order.PaymentReceived = true
	}

	uc.pusher.PushToUser(order.UserID, "order_status", order)

	return order, nil
}

// ListMine returns the buyer's orders; tab "active" excludes Delivered,
// "completed" keeps only Delivered, anything else returns all.
func (uc *OrderUseCase) ListMine(ctx context.Context, uid, tab string) ([]*entity.Order, error) {
	orders, err := uc.orderRepo.ListByBuyerID(ctx, uid)
	if err != nil {
		return nil, err
	}

	switch tab {
	case "active":
		return filterOrders(orders, func(o *entity.Order) bool { return o.Status != entity.StatusDelivered }), nil
	case "completed":
		return filterOrders(orders, func(o *entity.Order) bool { return o.Status == entity.StatusDelivered }), nil
	default:
		return orders, nil
	}
}

// ListForSeller returns orders containing at least one of the seller's line
// items.
func (uc *OrderUseCase) ListForSeller(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterOrders(orders, func(o *entity.Order) bool { return o.ContainsSeller(sellerID) }), nil
}

// Track returns the order for its buyer or a participating seller.
func (uc *OrderUseCase) Track(ctx context.Context, orderID, uid string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != uid && !order.ContainsSeller(uid) {
		return nil, errors.Forbidden("You are not part of this order", nil)
	}
	return order, nil
}

// PaymentLink hands out the hosted card-payment page.
func (uc *OrderUseCase) PaymentLink() string {
	return uc.payments.PaymentLink()
}

// ConfirmCardPayment classifies the gateway redirect and on success marks
// the order paid.
func (uc *OrderUseCase) ConfirmCardPayment(ctx context.Context, orderID, uid, redirectURL string) (string, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.UserID != uid {
		return "", errors.Forbidden("You are not part of this order", nil)
	}

	outcome := uc.payments.ClassifyRedirect(redirectURL)
	if outcome == service.PaymentOutcomeSuccess && !order.PaymentReceived {
		if err := uc.orderRepo.SetPaymentReceived(ctx, orderID, true); err != nil {
			return "", err
		}
	}

	return outcome, nil
}

func filterOrders(orders []*entity.Order, keep func(*entity.Order) bool) []*entity.Order {
	filtered := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		if keep(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
