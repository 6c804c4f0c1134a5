package service

import (
	"github.com/ratehub/store-ratings/internal/repository"
	"github.com/ratehub/store-ratings/pkg/logger"
	"go.uber.org/zap"
)

type StoreService struct {
	storeRepo  *repository.StoreRepository
	ratingRepo *repository.RatingRepository
}

func NewStoreService(storeRepo *repository.StoreRepository, ratingRepo *repository.RatingRepository) *StoreService {
	return &StoreService{
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// ListStoresForUser returns the browsable store listing for the given
// user, including the user's own prior rating per store.
func (s *StoreService) ListStoresForUser(userID uint, filter repository.StoreFilter) ([]repository.UserStoreRow, error) {
	rows, err := s.storeRepo.ListStoresForUser(userID, filter)
	if err != nil {
		logger.Log.Error("Failed to list stores for user",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}
	return rows, nil
}

// OwnerDashboard is the aggregate feedback view for one store owner.
type OwnerDashboard struct {
	AvgRating   float64                     `json:"avg_rating"`
	RatingCount int64                       `json:"rating_count"`
	Ratings     []repository.StoreRatingRow `json:"ratings"`
}

// Dashboard resolves the caller's owned store and returns its aggregate
// rating plus every individual rating, most recently updated first.
func (s *StoreService) Dashboard(ownerID uint) (*OwnerDashboard, error) {
	store, err := s.storeRepo.GetStoreByUserID(ownerID)
	if err != nil {
		logger.Log.Error("Failed to resolve owned store",
			zap.Uint("user_id", ownerID),
			zap.Error(err),
		)
		return nil, err
	}
	if store == nil {
		logger.Log.Warn("Store owner has no store",
			zap.Uint("user_id", ownerID),
		)
		return nil, ErrStoreNotFound
	}

	agg, err := s.ratingRepo.AggregateForStore(store.ID)
	if err != nil {
		logger.Log.Error("Failed to aggregate ratings",
			zap.Uint("store_id", store.ID),
			zap.Error(err),
		)
		return nil, err
	}

	ratings, err := s.ratingRepo.ListForStore(store.ID)
	if err != nil {
		logger.Log.Error("Failed to list store ratings",
			zap.Uint("store_id", store.ID),
			zap.Error(err),
		)
		return nil, err
	}

	if ratings == nil {
		ratings = []repository.StoreRatingRow{}
	}

	return &OwnerDashboard{
		AvgRating:   agg.AvgRating,
		RatingCount: agg.RatingCount,
		Ratings:     ratings,
	}, nil
}
