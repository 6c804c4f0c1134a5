package service

import (
	"time"

	"github.com/ratehub/store-ratings/internal/models"
	"github.com/ratehub/store-ratings/internal/repository"
	"github.com/ratehub/store-ratings/internal/utils"
	"github.com/ratehub/store-ratings/pkg/logger"
	"go.uber.org/zap"
)

type AuthService struct {
	userRepo      *repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
	environment   string
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, jwtExpiration time.Duration, environment string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		environment:   environment,
	}
}

// IsProduction returns true if running in production environment
func (s *AuthService) IsProduction() bool {
	return s.environment == "production"
}

// Register creates a self-registered account. The role is always "user";
// any role supplied by the caller is ignored.
func (s *AuthService) Register(name, email, password, address string) (*models.User, error) {
	logger.Log.Debug("Processing user registration",
		zap.String("email", email),
	)

	// 1. Validate input (name, address, password, email, in that order)
	if err := validateUserFields(name, address, password, email); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	// 2. Check if email already exists
	existingUser, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		logger.Log.Warn("Email already exists",
			zap.String("email", email),
		)
		return nil, ErrEmailAlreadyExists
	}

	// 3. Hash password
	hashStart := time.Now()
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password",
			zap.Error(err),
		)
		return nil, err
	}

	// 4. Create user
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Address:      address,
		Role:         models.RoleUser, // Self-registration is always a normal user
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		logger.Log.Error("Failed to create user in database",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User registered successfully",
		zap.Uint("user_id", user.ID),
		zap.String("email", email),
		zap.Duration("hash_duration", time.Since(hashStart)),
	)

	return user, nil
}

// Login verifies the credentials and issues a signed token. Unknown email
// and wrong password collapse into the same error to prevent account
// enumeration.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	logger.Log.Debug("Processing user login",
		zap.String("email", email),
	)

	// 1. Get user by email
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to get user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found",
			zap.String("email", email),
		)
		return nil, "", ErrInvalidCredentials
	}

	// 2. Verify password
	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, "", err
	}
	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("email", email),
			zap.Uint("user_id", user.ID),
		)
		return nil, "", ErrInvalidCredentials
	}

	// 3. Generate JWT token
	token, err := utils.GenerateToken(user, s.jwtSecret, s.jwtExpiration)
	if err != nil {
		logger.Log.Error("Failed to generate JWT token",
			zap.Uint("user_id", user.ID),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User logged in successfully",
		zap.Uint("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return user, token, nil
}

// ChangePassword verifies the current password before storing a new one.
// Previously issued tokens stay valid until they expire.
func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	logger.Log.Debug("Processing password change",
		zap.Uint("user_id", userID),
	)

	// 1. New password must meet the same complexity rule as registration
	if err := validatePassword(newPassword); err != nil {
		logger.Log.Warn("Password change validation failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return err
	}

	// 2. Load the account
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logger.Log.Error("Failed to get user by ID",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	// 3. Verify the current password
	valid, err := utils.VerifyPassword(currentPassword, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify current password",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return err
	}
	if !valid {
		logger.Log.Warn("Password change failed: current password incorrect",
			zap.Uint("user_id", userID),
		)
		return ErrCurrentPasswordIncorrect
	}

	// 4. Hash and store the new password
	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Log.Error("Failed to hash new password",
			zap.Error(err),
		)
		return err
	}

	if err := s.userRepo.UpdatePassword(userID, hashedPassword); err != nil {
		logger.Log.Error("Failed to update password",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Password updated successfully",
		zap.Uint("user_id", userID),
	)

	return nil
}
