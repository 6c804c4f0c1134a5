package service

import (
	"github.com/ratehub/store-ratings/internal/models"
	"github.com/ratehub/store-ratings/internal/repository"
	"github.com/ratehub/store-ratings/internal/utils"
	"github.com/ratehub/store-ratings/pkg/logger"
	"go.uber.org/zap"
)

type AdminService struct {
	userRepo   *repository.UserRepository
	storeRepo  *repository.StoreRepository
	ratingRepo *repository.RatingRepository
}

func NewAdminService(userRepo *repository.UserRepository, storeRepo *repository.StoreRepository, ratingRepo *repository.RatingRepository) *AdminService {
	return &AdminService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// DashboardStats are the platform-wide totals shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

func (s *AdminService) Dashboard() (*DashboardStats, error) {
	users, err := s.userRepo.CountUsers()
	if err != nil {
		logger.Log.Error("Failed to count users", zap.Error(err))
		return nil, err
	}
	stores, err := s.storeRepo.CountStores()
	if err != nil {
		logger.Log.Error("Failed to count stores", zap.Error(err))
		return nil, err
	}
	ratings, err := s.ratingRepo.CountRatings()
	if err != nil {
		logger.Log.Error("Failed to count ratings", zap.Error(err))
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}

// CreateUserInput is the admin provisioning payload. Store fields are
// required only when Role is store_owner.
type CreateUserInput struct {
	Name         string
	Email        string
	Password     string
	Address      string
	Role         models.Role
	StoreName    string
	StoreAddress string
}

// CreateUser provisions an account with any role. A store_owner account
// gets its store row in the same transaction, so a store-insert failure
// rolls back the user insert too.
func (s *AdminService) CreateUser(input CreateUserInput) (*models.User, error) {
	logger.Log.Debug("Processing admin user creation",
		zap.String("email", input.Email),
		zap.String("role", string(input.Role)),
	)

	// 1. Same field validation as self-registration
	if err := validateUserFields(input.Name, input.Address, input.Password, input.Email); err != nil {
		logger.Log.Warn("Admin user creation validation failed",
			zap.String("email", input.Email),
			zap.Error(err),
		)
		return nil, err
	}

	// 2. Role must be one of the enumerated values
	if !models.ValidRole(input.Role) {
		return nil, NewValidationError("Invalid role")
	}

	// 3. Store owners need store details
	if input.Role == models.RoleStoreOwner && (input.StoreName == "" || input.StoreAddress == "") {
		return nil, NewValidationError("Store name and address required for store owners")
	}

	// 4. Check if email already exists
	existingUser, err := s.userRepo.GetUserByEmail(input.Email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", input.Email),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		logger.Log.Warn("Email already exists",
			zap.String("email", input.Email),
		)
		return nil, ErrEmailAlreadyExists
	}

	// 5. Hash password
	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		logger.Log.Error("Failed to hash password",
			zap.Error(err),
		)
		return nil, err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Address:      input.Address,
		Role:         input.Role,
	}

	var store *models.Store
	if input.Role == models.RoleStoreOwner {
		store = &models.Store{
			StoreName:    input.StoreName,
			StoreAddress: input.StoreAddress,
		}
	}

	// 6. Insert user (and store, for store owners) atomically
	if err := s.userRepo.CreateWithStore(user, store); err != nil {
		logger.Log.Error("Failed to create user in database",
			zap.String("email", input.Email),
			zap.String("role", string(input.Role)),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User created by admin",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

func (s *AdminService) ListUsers(filter repository.UserFilter) ([]repository.UserRow, error) {
	rows, err := s.userRepo.ListUsers(filter)
	if err != nil {
		logger.Log.Error("Failed to list users", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *AdminService) ListStores(filter repository.StoreFilter) ([]repository.StoreRow, error) {
	rows, err := s.storeRepo.ListStores(filter)
	if err != nil {
		logger.Log.Error("Failed to list stores", zap.Error(err))
		return nil, err
	}
	return rows, nil
}
