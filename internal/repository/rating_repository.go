package repository

import (
	"time"

	"github.com/ratehub/store-ratings/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert inserts the rating or, when the (user, store) pair already has
// one, overwrites its value and refreshes updated_at. created_at of an
// existing row is left untouched.
func (r *RatingRepository) Upsert(userID, storeID uint, value int) error {
	rating := models.Rating{
		UserID:  userID,
		StoreID: storeID,
		Rating:  value,
	}

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     value,
			"updated_at": time.Now(),
		}),
	}).Create(&rating).Error
}

func (r *RatingRepository) CountRatings() (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Count(&count).Error
	return count, err
}

// StoreAggregate is the average and count of all ratings for one store.
type StoreAggregate struct {
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int64   `json:"rating_count"`
}

func (r *RatingRepository) AggregateForStore(storeID uint) (*StoreAggregate, error) {
	var agg StoreAggregate
	err := r.db.Table("ratings").
		Select("COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS rating_count").
		Where("store_id = ?", storeID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

// StoreRatingRow is one individual rating of a store together with the
// rating author, as shown on the store-owner dashboard.
type StoreRatingRow struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListForStore returns every rating of the store joined with its author,
// most recently updated first.
func (r *RatingRepository) ListForStore(storeID uint) ([]StoreRatingRow, error) {
	var rows []StoreRatingRow
	err := r.db.Table("ratings").
		Select("users.name, users.email, ratings.rating, ratings.created_at, ratings.updated_at").
		Joins("JOIN users ON users.id = ratings.user_id").
		Where("ratings.store_id = ?", storeID).
		Order("ratings.updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
