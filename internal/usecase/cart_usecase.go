package usecase

import (
	"context"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/internal/infrastructure/localstore"
	"fieldtofork/pkg/errors"
)

// CartUseCase keeps cart and favorites in the local store, keyed per user.
// Neither is synced to the document store; clearing the store loses them.
type CartUseCase struct {
	store       localstore.Store
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(
	store localstore.Store,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) *CartUseCase {
	return &CartUseCase{
		store:       store,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

type CartView struct {
	Items          []entity.CartItem `json:"items"`
	Subtotal       float64           `json:"subtotal"`
	DeliveryCharge float64           `json:"delivery_charge"`
	GrandTotal     float64           `json:"grand_total"`
}

func (uc *CartUseCase) requireBuyer(ctx context.Context, uid string) error {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return err
	}
	if !user.IsBuyer() {
		return errors.Forbidden("Only buyers can use the cart and favorites", nil)
	}
	return nil
}

func (uc *CartUseCase) loadCart(uid string) ([]entity.CartItem, error) {
	var items []entity.CartItem
	if err := uc.store.Get(uid, localstore.KindCart, &items); err != nil {
		return nil, errors.Internal("Failed to read cart", err)
	}
	return items, nil
}

func (uc *CartUseCase) saveCart(uid string, items []entity.CartItem) error {
	if err := uc.store.Put(uid, localstore.KindCart, items); err != nil {
		return errors.Internal("Failed to save cart", err)
	}
	return nil
}

func (uc *CartUseCase) GetCart(ctx context.Context, uid string) (*CartView, error) {
	items, err := uc.loadCart(uid)
	if err != nil {
		return nil, err
	}

	return &CartView{
		Items:          items,
		Subtotal:       entity.Subtotal(items),
		DeliveryCharge: entity.DeliveryCharge,
		GrandTotal:     entity.GrandTotal(items),
	}, nil
}

// AddToCart snapshots the product into the cart, incrementing the quantity
// when the product is already present.
func (uc *CartUseCase) AddToCart(ctx context.Context, uid, productID string) (*CartView, error) {
	if err := uc.requireBuyer(ctx, uid); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	items, err := uc.loadCart(uid)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = items[i].EffectiveQuantity() + 1
			found = true
			break
		}
	}
	if !found {
		items = append(items, entity.CartItem{
			ProductID: product.ID,
			SellerID:  product.SellerID,
			Name:      product.Name,
			Price:     product.Price,
			Category:  product.Category,
			ImageURL:  product.ImageURL,
			Quantity:  1,
		})
	}

	if err := uc.saveCart(uid, items); err != nil {
		return nil, err
	}

	return uc.GetCart(ctx, uid)
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, uid, productID string, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, errors.BadRequest("Quantity must be at least 1", nil)
	}

	items, err := uc.loadCart(uid)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NotFound("Cart item", nil)
	}

	if err := uc.saveCart(uid, items); err != nil {
		return nil, err
	}

	return uc.GetCart(ctx, uid)
}

func (uc *CartUseCase) RemoveFromCart(ctx context.Context, uid, productID string) (*CartView, error) {
	items, err := uc.loadCart(uid)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	if err := uc.saveCart(uid, kept); err != nil {
		return nil, err
	}

	return uc.GetCart(ctx, uid)
}

func (uc *CartUseCase) ClearCart(ctx context.Context, uid string) error {
	if err := uc.store.Delete(uid, localstore.KindCart); err != nil {
		return errors.Internal("Failed to clear cart", err)
	}
	return nil
}

func (uc *CartUseCase) ListFavorites(ctx context.Context, uid string) ([]entity.Product, error) {
	var favorites []entity.Product
	if err := uc.store.Get(uid, localstore.KindFavorites, &favorites); err != nil {
		return nil, errors.Internal("Failed to read favorites", err)
	}
	return favorites, nil
}

func (uc *CartUseCase) AddFavorite(ctx context.Context, uid, productID string) ([]entity.Product, error) {
	if err := uc.requireBuyer(ctx, uid); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	favorites, err := uc.ListFavorites(ctx, uid)
	if err != nil {
		return nil, err
	}

	for _, f := range favorites {
		if f.ID == productID {
			return favorites, nil
		}
	}

	favorites = append(favorites, *product)
	if err := uc.store.Put(uid, localstore.KindFavorites, favorites); err != nil {
		return nil, errors.Internal("Failed to save favorites", err)
	}

	return favorites, nil
}

func (uc *CartUseCase) RemoveFavorite(ctx context.Context, uid, productID string) ([]entity.Product, error) {
	favorites, err := uc.ListFavorites(ctx, uid)
	if err != nil {
		return nil, err
	}

	kept := favorites[:0]
	for _, f := range favorites {
		if f.ID != productID {
			kept = append(kept, f)
		}
	}

	if err := uc.store.Put(uid, localstore.KindFavorites, kept); err != nil {
		return nil, errors.Internal("Failed to save favorites", err)
	}

	return kept, nil
}
