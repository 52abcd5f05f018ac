package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/pkg/errors"
)

func newCartFixture(t *testing.T) (*CartUseCase, *memStore) {
	t.Helper()

	users := newFakeUserRepo(
		&entity.User{ID: "buyer-1", UserType: entity.RoleBuyer},
		&entity.User{ID: "seller-1", UserType: entity.RoleSeller},
	)
	products := newFakeProductRepo(
		&entity.Product{ID: "p1", SellerID: "seller-1", Name: "Tomatoes", Price: "₹50", Category: "Vegetables"},
		&entity.Product{ID: "p2", SellerID: "seller-1", Name: "Yam", Price: "30", Category: "Tubers"},
	)
	store := newMemStore()

	return NewCartUseCase(store, users, products), store
}

func TestAddToCartSnapshotsProduct(t *testing.T) {
	uc, _ := newCartFixture(t)

	cart, err := uc.AddToCart(context.Background(), "buyer-1", "p1")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, "seller-1", cart.Items[0].SellerID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 50.0, cart.Subtotal)
	assert.Equal(t, 150.0, cart.GrandTotal)
}

func TestAddToCartIncrementsExistingLine(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddToCart(context.Background(), "buyer-1", "p1")
	require.NoError(t, err)

	cart, err := uc.AddToCart(context.Background(), "buyer-1", "p1")
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 100.0, cart.Subtotal)
}

func TestAddToCartRejectsSellers(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddToCart(context.Background(), "seller-1", "p1")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", err.(*errors.AppError).Code)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddToCart(context.Background(), "buyer-1", "nope")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", err.(*errors.AppError).Code)
}

func TestUpdateQuantity(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddToCart(context.Background(), "buyer-1", "p1")
	require.NoError(t, err)

	cart, err := uc.UpdateQuantity(context.Background(), "buyer-1", "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 250.0, cart.Subtotal)

	_, err = uc.UpdateQuantity(context.Background(), "buyer-1", "p1", 0)
	require.Error(t, err)
	assert.Equal(t, "BAD_REQUEST", err.(*errors.AppError).Code)

	_, err = uc.UpdateQuantity(context.Background(), "buyer-1", "missing", 2)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", err.(*errors.AppError).Code)
}

func TestRemoveFromCart(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddToCart(context.Background(), "buyer-1", "p1")
	require.NoError(t, err)
	_, err = uc.AddToCart(context.Background(), "buyer-1", "p2")
	require.NoError(t, err)

	cart, err := uc.RemoveFromCart(context.Background(), "buyer-1", "p1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestClearCart(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddToCart(context.Background(), "buyer-1", "p1")
	require.NoError(t, err)
	require.NoError(t, uc.ClearCart(context.Background(), "buyer-1"))

	cart, err := uc.GetCart(context.Background(), "buyer-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, entity.DeliveryCharge, cart.GrandTotal)
}

func TestFavorites(t *testing.T) {
	uc, _ := newCartFixture(t)

	favorites, err := uc.AddFavorite(context.Background(), "buyer-1", "p1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	// Adding the same product again is a no-op.
	favorites, err = uc.AddFavorite(context.Background(), "buyer-1", "p1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	favorites, err = uc.AddFavorite(context.Background(), "buyer-1", "p2")
	require.NoError(t, err)
	require.Len(t, favorites, 2)

	favorites, err = uc.RemoveFavorite(context.Background(), "buyer-1", "p1")
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "p2", favorites[0].ID)
}

func TestFavoritesRejectSellers(t *testing.T) {
	uc, _ := newCartFixture(t)

	_, err := uc.AddFavorite(context.Background(), "seller-1", "p1")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", err.(*errors.AppError).Code)
}
