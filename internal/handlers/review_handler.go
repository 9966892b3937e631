package handlers

import (
	"estatehub/internal/models"
	"estatehub/internal/services"
	"estatehub/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService services.ReviewService
}

func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListOwnerReviews returns reviews on the properties posted by :email.
func (h *ReviewHandler) ListOwnerReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListOwnerReviews(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "Review")
		return
	}

	utils.OKResponse(c, reviews)
}

// ListReviewerReviews returns reviews written by :email.
func (h *ReviewHandler) ListReviewerReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListReviewerReviews(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "Review")
		return
	}

	utils.OKResponse(c, reviews)
}

func (h *ReviewHandler) ListPropertyReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListPropertyReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Review")
		return
	}

	utils.OKResponse(c, reviews)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var request models.CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(&request); err != nil {
		utils.ValidationErrorResponse(c, utils.ValidationDetails(err))
		return
	}

	result, err := h.reviewService.CreateReview(c.Request.Context(), c.Param("id"), &request)
	if err != nil {
		respondError(c, err, "Review")
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, ok := utils.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var request models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.reviewService.UpdateReview(c.Request.Context(), id, &request)
	if err != nil {
		respondError(c, err, "Review")
		return
	}

	utils.OKResponse(c, result)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := utils.ParseObjectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.reviewService.DeleteReview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Review")
		return
	}

	utils.OKResponse(c, result)
}
