package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratehub/store-ratings/internal/models"
	"github.com/ratehub/store-ratings/internal/repository"
	"github.com/ratehub/store-ratings/internal/service"
	"github.com/ratehub/store-ratings/pkg/logger"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

type CreateUserRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Address      string `json:"address"`
	Role         string `json:"role"`
	StoreName    string `json:"storeName"`
	StoreAddress string `json:"storeAddress"`
}

// Dashboard returns platform-wide totals.
// GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CreateUser provisions an account with any role, pairing a store with
// store_owner accounts.
// POST /api/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Create user request parsing failed",
			zap.String("admin_id", c.GetString("user_email")),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user, err := h.adminService.CreateUser(service.CreateUserInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Address:      req.Address,
		Role:         models.Role(req.Role),
		StoreName:    req.StoreName,
		StoreAddress: req.StoreAddress,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	message := "User created successfully"
	if user.Role == models.RoleStoreOwner {
		message = "Store owner created successfully"
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"userId":  user.ID,
	})
}

// ListUsers returns all users with optional filters and sorting.
// GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	filter := repository.UserFilter{
		Name:      c.Query("name"),
		Email:     c.Query("email"),
		Address:   c.Query("address"),
		Role:      c.Query("role"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	rows, err := h.adminService.ListUsers(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if rows == nil {
		rows = []repository.UserRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// ListStores returns all stores with owner email and rating aggregates.
// GET /api/admin/stores
func (h *AdminHandler) ListStores(c *gin.Context) {
	filter := repository.StoreFilter{
		Name:      c.Query("name"),
		Email:     c.Query("email"),
		Address:   c.Query("address"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	rows, err := h.adminService.ListStores(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if rows == nil {
		rows = []repository.StoreRow{}
	}
	c.JSON(http.StatusOK, rows)
}
