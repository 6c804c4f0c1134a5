package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratehub/store-ratings/internal/models"
	"github.com/ratehub/store-ratings/internal/repository"
	"github.com/ratehub/store-ratings/internal/service"
)

type StoreHandler struct {
	storeService *service.StoreService
}

func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
	}
}

// ListStores returns the browsable store listing for the authenticated
// user, including the user's own rating per store.
// GET /api/stores
func (h *StoreHandler) ListStores(c *gin.Context) {
	userID := c.GetUint("user_id")

	filter := repository.StoreFilter{
		Name:      c.Query("name"),
		Address:   c.Query("address"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	rows, err := h.storeService.ListStoresForUser(userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if rows == nil {
		rows = []repository.UserStoreRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// OwnerDashboard returns the aggregate feedback for the caller's store.
// GET /api/store-owner/dashboard
func (h *StoreHandler) OwnerDashboard(c *gin.Context) {
	role, _ := c.Get("user_role")
	if role != models.RoleStoreOwner {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Store owner access required",
		})
		return
	}

	dashboard, err := h.storeService.Dashboard(c.GetUint("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
