package usecase

import (
	"context"
	"time"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/pkg/errors"
	"fieldtofork/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	authProvider AuthProvider
}

func NewAuthUseCase(userRepo repository.UserRepository, authProvider AuthProvider) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		authProvider: authProvider,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
	Phone    string
	UserType string
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.authProvider.CreateUser(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Username:  input.Username,
		Phone:     input.Phone,
		UserType:  input.UserType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.authProvider.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.authProvider.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, err
	}

	uid, err := uc.authProvider.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

// ForgotPassword triggers the provider's reset email. The provider reports
// unknown addresses, and that is passed through rather than masked; the
// mobile client shows the message as-is.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	if err := uc.authProvider.SendPasswordReset(ctx, email); err != nil {
		logger.Warn("Password reset for %s not sent: %v", email, err)
		return err
	}
	return nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

// DeleteAccount removes the profile document and the auth identity. The two
// deletes are not transactional: a failure after the first leaves an auth
// identity without a profile, which the login path reports as user not
// found.
func (uc *AuthUseCase) DeleteAccount(ctx context.Context, uid string) error {
	if err := uc.userRepo.Delete(ctx, uid); err != nil {
		return err
	}

	if err := uc.authProvider.DeleteUser(ctx, uid); err != nil {
		logger.Error("Profile for %s deleted but auth identity removal failed: %v", uid, err)
		return errors.Internal("Failed to delete authentication identity", err)
	}

	return nil
}
