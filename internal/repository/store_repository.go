package repository

import (
	"errors"

	"github.com/ratehub/store-ratings/internal/models"
	"gorm.io/gorm"
)

// ErrOwnerRoleRequired is returned when a store row would reference a user
// that does not hold the store_owner role.
var ErrOwnerRoleRequired = errors.New("store owner role required")

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// CreateStore inserts a store after checking the owning user holds the
// store_owner role. The admin provisioning path creates stores inside its
// own transaction; this is the guard for any other caller.
func (r *StoreRepository) CreateStore(store *models.Store) error {
	var owner models.User
	if err := r.db.First(&owner, store.UserID).Error; err != nil {
		return err
	}
	if owner.Role != models.RoleStoreOwner {
		return ErrOwnerRoleRequired
	}
	return r.db.Create(store).Error
}

func (r *StoreRepository) GetStoreByID(id uint) (*models.Store, error) {
	var store models.Store
	err := r.db.Where("id = ?", id).First(&store).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &store, nil
}

func (r *StoreRepository) GetStoreByUserID(userID uint) (*models.Store, error) {
	var store models.Store
	err := r.db.Where("user_id = ?", userID).First(&store).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &store, nil
}

func (r *StoreRepository) CountStores() (int64, error) {
	var count int64
	err := r.db.Model(&models.Store{}).Count(&count).Error
	return count, err
}

// StoreRow is one row of the admin store listing.
type StoreRow struct {
	ID           uint    `json:"id"`
	StoreName    string  `json:"store_name"`
	StoreAddress string  `json:"store_address"`
	Email        string  `json:"email"`
	AvgRating    float64 `json:"avg_rating"`
	RatingCount  int64   `json:"rating_count"`
}

// UserStoreRow extends StoreRow with the requesting user's own rating,
// null when the user has not rated the store yet.
type UserStoreRow struct {
	ID           uint    `json:"id"`
	StoreName    string  `json:"store_name"`
	StoreAddress string  `json:"store_address"`
	AvgRating    float64 `json:"avg_rating"`
	RatingCount  int64   `json:"rating_count"`
	UserRating   *int    `json:"user_rating"`
}

// StoreFilter holds the optional query-string parameters of the store
// listings.
type StoreFilter struct {
	Name      string
	Email     string
	Address   string
	SortBy    string
	SortOrder string
}

var storeSortColumns = map[string]string{
	"name":          "stores.store_name",
	"store_name":    "stores.store_name",
	"address":       "stores.store_address",
	"store_address": "stores.store_address",
	"email":         "users.email",
	"avg_rating":    "avg_rating",
	"rating_count":  "rating_count",
}

var userStoreSortColumns = map[string]string{
	"name":          "stores.store_name",
	"store_name":    "stores.store_name",
	"address":       "stores.store_address",
	"store_address": "stores.store_address",
	"avg_rating":    "avg_rating",
	"rating_count":  "rating_count",
}

// ListStores returns the admin store listing: every store with its owner's
// email and aggregated ratings.
func (r *StoreRepository) ListStores(f StoreFilter) ([]StoreRow, error) {
	order, err := orderClause(storeSortColumns, f.SortBy, f.SortOrder, "stores.store_name")
	if err != nil {
		return nil, err
	}

	q := r.db.Table("stores").
		Select("stores.id, stores.store_name, stores.store_address, users.email, " +
			"COALESCE(AVG(ratings.rating), 0) AS avg_rating, " +
			"COUNT(ratings.id) AS rating_count").
		Joins("JOIN users ON users.id = stores.user_id").
		Joins("LEFT JOIN ratings ON ratings.store_id = stores.id")

	if f.Name != "" {
		q = q.Where("LOWER(stores.store_name) LIKE ?", substring(f.Name))
	}
	if f.Email != "" {
		q = q.Where("LOWER(users.email) LIKE ?", substring(f.Email))
	}
	if f.Address != "" {
		q = q.Where("LOWER(stores.store_address) LIKE ?", substring(f.Address))
	}

	var rows []StoreRow
	err = q.Group("stores.id, users.id").Order(order).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListStoresForUser returns the user-facing store listing, surfacing the
// requesting user's own prior rating for each store.
func (r *StoreRepository) ListStoresForUser(userID uint, f StoreFilter) ([]UserStoreRow, error) {
	order, err := orderClause(userStoreSortColumns, f.SortBy, f.SortOrder, "stores.store_name")
	if err != nil {
		return nil, err
	}

	q := r.db.Table("stores").
		Select("stores.id, stores.store_name, stores.store_address, "+
			"COALESCE(AVG(ratings.rating), 0) AS avg_rating, "+
			"COUNT(ratings.id) AS rating_count, "+
			"mine.rating AS user_rating").
		Joins("LEFT JOIN ratings ON ratings.store_id = stores.id").
		Joins("LEFT JOIN ratings mine ON mine.store_id = stores.id AND mine.user_id = ?", userID)

	if f.Name != "" {
		q = q.Where("LOWER(stores.store_name) LIKE ?", substring(f.Name))
	}
	if f.Address != "" {
		q = q.Where("LOWER(stores.store_address) LIKE ?", substring(f.Address))
	}

	var rows []UserStoreRow
	err = q.Group("stores.id, mine.rating").Order(order).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
