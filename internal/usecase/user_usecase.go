package usecase

import (
	"context"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/internal/infrastructure/localstore"
	"fieldtofork/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	store    localstore.Store
}

func NewUserUseCase(userRepo repository.UserRepository, store localstore.Store) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		store:    store,
	}
}

type UpdateProfileInput struct {
	Username        string
	Phone           string
	ProfileImageURL string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.ProfileImageURL != "" {
		user.ProfileImageURL = input.ProfileImageURL
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UpdatePaymentMethod(ctx context.Context, uid, method string) (*entity.User, error) {
	if method == "" {
		return nil, errors.BadRequest("Payment method is required", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	user.PaymentMethod = method
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UpdateDefaultAddress(ctx context.Context, uid, address string) (*entity.User, error) {
	if address == "" {
		return nil, errors.BadRequest("Address is required", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	user.DefaultAddress = address
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) UpdateShippingAddress(ctx context.Context, uid string, address entity.ShippingAddress) (*entity.User, error) {
	if address.FormattedAddress == "" {
		return nil, errors.BadRequest("Address is required", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	user.ShippingAddress = address
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Language preference lives in the local store, not on the profile
// document, matching where the app kept it.
func (uc *UserUseCase) Language(uid string) (string, error) {
	var lang string
	if err := uc.store.Get(uid, localstore.KindLanguage, &lang); err != nil {
		return "", errors.Internal("Failed to read language preference", err)
	}
	if lang == "" {
		lang = "en"
	}
	return lang, nil
}

func (uc *UserUseCase) SetLanguage(uid, lang string) error {
	if lang == "" {
		return errors.BadRequest("Language is required", nil)
	}
	if err := uc.store.Put(uid, localstore.KindLanguage, lang); err != nil {
		return errors.Internal("Failed to save language preference", err)
	}
	return nil
}
