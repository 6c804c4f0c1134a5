package testutil

import (
	"github.com/ratehub/store-ratings/internal/models"
	"github.com/ratehub/store-ratings/internal/utils"
)

// CreateTestUser creates a test user with a hashed password.
func CreateTestUser(name, email, password, address string, role models.Role) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Address:      address,
		Role:         role,
	}, nil
}

// DefaultTestUser returns a default normal user. The name satisfies the
// 15-60 character rule.
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("Regular Test User Account", "test@example.com", "Test@12345", "1 Test Street", models.RoleUser)
}

// DefaultAdminUser returns a default admin user.
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("Administrator Test Account", "admin@example.com", "Admin@12345", "2 Admin Street", models.RoleAdmin)
}

// CreateTestStore creates a store owned by the given user.
func CreateTestStore(userID uint, name, address string) *models.Store {
	return &models.Store{
		UserID:       userID,
		StoreName:    name,
		StoreAddress: address,
	}
}
