package usecase

import (
	"context"
	"time"

	"fieldtofork/internal/domain/entity"
	"fieldtofork/internal/domain/repository"
	"fieldtofork/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type SubmitReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

type ReviewResult struct {
	Review      *entity.Review `json:"review"`
	Rating      float64        `json:"rating"`
	RatingCount int            `json:"rating_count"`
}

// SubmitReview stores the review under the reviewer's uid (a resubmission
// overwrites) and recomputes the product's average rating from the full
// review list. The read-modify-write has no concurrency guard; concurrent
// reviewers race with last-write-wins.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, reviewerID string, input SubmitReviewInput) (*ReviewResult, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	if input.Comment == "" {
		return nil, errors.BadRequest("Please complete the review", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	reviewer, err := uc.userRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:        reviewerID,
		Username:  reviewer.Username,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	if err := uc.reviewRepo.Upsert(ctx, input.ProductID, review); err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	avg := entity.AverageRating(reviews)
	if err := uc.productRepo.UpdateRating(ctx, input.ProductID, avg, len(reviews)); err != nil {
		return nil, err
	}

	return &ReviewResult{
		Review:      review,
		Rating:      avg,
		RatingCount: len(reviews),
	}, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return uc.reviewRepo.ListByProduct(ctx, productID)
}
