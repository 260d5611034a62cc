package handler

import (
	"net/http"

	reviewDto "anoa.com/usherhire/internal/modules/review/dto"
	review "anoa.com/usherhire/internal/modules/review/service"
	"anoa.com/usherhire/pkg/response"
	"anoa.com/usherhire/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	service review.ReviewService
}

func NewReviewHandler(service review.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	bookingID, err := response.ParamUUID(c, "id")
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req reviewDto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	res, err := h.service.SubmitReview(c.Request.Context(), userID, bookingID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}
