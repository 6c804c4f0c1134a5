package service

import (
	"github.com/ratehub/store-ratings/internal/models"
	"github.com/ratehub/store-ratings/internal/repository"
	"github.com/ratehub/store-ratings/pkg/logger"
	"go.uber.org/zap"
)

type RatingService struct {
	ratingRepo *repository.RatingRepository
	storeRepo  *repository.StoreRepository
}

func NewRatingService(ratingRepo *repository.RatingRepository, storeRepo *repository.StoreRepository) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
	}
}

// Submit records a 1-5 rating for the store, overwriting any prior rating
// by the same user. Submitting the same value twice only refreshes
// updated_at.
func (s *RatingService) Submit(userID uint, role models.Role, storeID uint, value int) error {
	logger.Log.Debug("Processing rating submission",
		zap.Uint("user_id", userID),
		zap.Uint("store_id", storeID),
		zap.Int("rating", value),
	)

	// 1. Range check before anything touches the database
	if value < 1 || value > 5 {
		return NewValidationError("Rating must be between 1 and 5")
	}

	// 2. Only normal users rate stores
	if role != models.RoleUser {
		logger.Log.Warn("Rating rejected: role not permitted",
			zap.Uint("user_id", userID),
			zap.String("role", string(role)),
		)
		return ErrRatingsUsersOnly
	}

	// 3. The store must exist
	store, err := s.storeRepo.GetStoreByID(storeID)
	if err != nil {
		logger.Log.Error("Failed to look up store",
			zap.Uint("store_id", storeID),
			zap.Error(err),
		)
		return err
	}
	if store == nil {
		return ErrStoreNotFound
	}

	// 4. Insert or overwrite, keyed on (user, store)
	if err := s.ratingRepo.Upsert(userID, storeID, value); err != nil {
		logger.Log.Error("Failed to upsert rating",
			zap.Uint("user_id", userID),
			zap.Uint("store_id", storeID),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Rating submitted",
		zap.Uint("user_id", userID),
		zap.Uint("store_id", storeID),
		zap.Int("rating", value),
	)

	return nil
}
