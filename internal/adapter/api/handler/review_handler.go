package handler

import (
	"fieldtofork/internal/usecase"
	"fieldtofork/pkg/response"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type submitReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reviewerID := c.Get("uid").(string)

	result, err := h.reviewUseCase.SubmitReview(c.Request().Context(), reviewerID, usecase.SubmitReviewInput{
		ProductID: c.Param("id"),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	// Reviews live in a single subcollection read; the page is cut here.
	page, pageSize := response.PageQuery(c)
	start, end := response.Window(page, pageSize, len(reviews))

	return response.Paginated(c, reviews[start:end], int64(len(reviews)), page, pageSize)
}
