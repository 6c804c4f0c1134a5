package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratehub/store-ratings/internal/models"
	"github.com/ratehub/store-ratings/internal/service"
	"github.com/ratehub/store-ratings/pkg/logger"
	"go.uber.org/zap"
)

type RatingHandler struct {
	ratingService *service.RatingService
}

func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

type SubmitRatingRequest struct {
	StoreID uint `json:"storeId"`
	Rating  int  `json:"rating"`
}

// Submit records or overwrites the caller's rating for a store.
// POST /api/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	var req SubmitRatingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Rating request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	userID := c.GetUint("user_id")
	role, _ := c.Get("user_role")
	userRole, _ := role.(models.Role)

	if err := h.ratingService.Submit(userID, userRole, req.StoreID, req.Rating); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating submitted successfully",
	})
}
