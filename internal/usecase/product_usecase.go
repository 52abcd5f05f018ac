package usecase

import (
	"context"
	"strings"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/internal/infrastructure/localstore"
	"fieldtofork/pkg/errors"
	"fieldtofork/pkg/logger"
)

type ProductUseCase struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	store       localstore.Store
	pusher      EventPusher
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	store localstore.Store,
	pusher EventPusher,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		userRepo:    userRepo,
		store:       store,
		pusher:      pusher,
	}
}

type ProductInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	Location    string
	ImageURL    string
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, sellerID string, input ProductInput) (*entity.Product, error) {
	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.IsSeller() {
		return nil, errors.Forbidden("Only sellers can list products", nil)
	}

	product := &entity.Product{
		SellerID:    sellerID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	uc.broadcastCatalog(ctx)
	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, sellerID string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, errors.Forbidden("You can only edit your own products", nil)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.Location = input.Location
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	uc.broadcastCatalog(ctx)
	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, sellerID string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.SellerID != sellerID {
		return errors.Forbidden("You can only delete your own products", nil)
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.broadcastCatalog(ctx)
	return nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListMyProducts(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	return uc.productRepo.ListBySellerID(ctx, sellerID)
}

// Catalog groups all products by category name, recomputed per call the way
// the browse screen regrouped on every snapshot.
func (uc *ProductUseCase) Catalog(ctx context.Context) (map[string][]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*entity.Product)
	for _, p := range products {
		grouped[p.Category] = append(grouped[p.Category], p)
	}

	return grouped, nil
}

// Search matches the query case-insensitively against product names and
// appends the term to the caller's persisted search history.
func (uc *ProductUseCase) Search(ctx context.Context, uid, query string) ([]*entity.Product, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil, errors.BadRequest("Search query is required", nil)
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*entity.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matches = append(matches, p)
		}
	}

	if uid != "" {
		if err := uc.appendSearchHistory(uid, term); err != nil {
			logger.Warn("Failed to record search term for %s: %v", uid, err)
		}
	}

	return matches, nil
}

// Suggest unions name matches with the products of any category whose name
// matches, de-duplicated by product id.
func (uc *ProductUseCase) Suggest(ctx context.Context, query string) ([]*entity.Product, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil, nil
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var suggestions []*entity.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			suggestions = append(suggestions, p)
		}
	}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Category), term) {
			suggestions = append(suggestions, p)
		}
	}

	seen := make(map[string]bool, len(suggestions))
	unique := suggestions[:0]
	for _, p := range suggestions {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		unique = append(unique, p)
	}

	return unique, nil
}

func (uc *ProductUseCase) SearchHistory(uid string) ([]string, error) {
	var history []string
	if err := uc.store.Get(uid, localstore.KindSearchHistory, &history); err != nil {
		return nil, errors.Internal("Failed to read search history", err)
	}
	return history, nil
}

// appendSearchHistory keeps terms most-recent-first with duplicates removed.
// The list is unbounded, as it was on device.
func (uc *ProductUseCase) appendSearchHistory(uid, term string) error {
	var history []string
	if err := uc.store.Get(uid, localstore.KindSearchHistory, &history); err != nil {
		return err
	}

	updated := []string{term}
	for _, t := range history {
		if t != term {
			updated = append(updated, t)
		}
	}

	return uc.store.Put(uid, localstore.KindSearchHistory, updated)
}

func (uc *ProductUseCase) broadcastCatalog(ctx context.Context) {
	grouped, err := uc.Catalog(ctx)
	if err != nil {
		logger.Warn("Failed to load catalog for broadcast: %v", err)
		return
	}
	uc.pusher.BroadcastAll("catalog", grouped)
}
