package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"housemate/middleware"
	"housemate/models"
	"housemate/services/rating"
)

// RatingHandler exposes review endpoints.
type RatingHandler struct {
	RatingSvc rating.RatingService
}

func NewRatingHandler(svc rating.RatingService) *RatingHandler {
	return &RatingHandler{RatingSvc: svc}
}

// CreateRatingHandler handles POST /api/ratings.
func (h *RatingHandler) CreateRatingHandler(c *gin.Context) {
	var req models.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	r, err := h.RatingSvc.Create(middleware.UserID(c), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ListExpertRatingsHandler handles GET /api/experts/:id/ratings.
func (h *RatingHandler) ListExpertRatingsHandler(c *gin.Context) {
	ratings, err := h.RatingSvc.ListByExpert(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ratings)
}
