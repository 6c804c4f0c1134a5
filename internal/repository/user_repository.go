package repository

import (
	"errors"
	"time"

	"github.com/ratehub/store-ratings/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithStore inserts the user and, when store is non-nil, its paired
// store row in a single transaction. A failure on either insert rolls back
// both.
func (r *UserRepository) CreateWithStore(user *models.User, store *models.Store) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if store != nil {
			store.UserID = user.ID
			if err := tx.Create(store).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *UserRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// UserRow is one row of the admin user listing: the user joined with its
// store (null for non-owners) and the average rating of that store.
type UserRow struct {
	ID           uint        `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Address      string      `json:"address"`
	Role         models.Role `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
	StoreName    *string     `json:"store_name"`
	StoreAddress *string     `json:"store_address"`
	AvgRating    float64     `json:"avg_rating"`
}

// UserFilter holds the optional query-string parameters of the admin user
// listing. Textual filters match as case-insensitive substrings.
type UserFilter struct {
	Name      string
	Email     string
	Address   string
	Role      string
	SortBy    string
	SortOrder string
}

var userSortColumns = map[string]string{
	"name":       "users.name",
	"email":      "users.email",
	"address":    "users.address",
	"role":       "users.role",
	"created_at": "users.created_at",
	"avg_rating": "avg_rating",
}

func (r *UserRepository) ListUsers(f UserFilter) ([]UserRow, error) {
	order, err := orderClause(userSortColumns, f.SortBy, f.SortOrder, "users.name")
	if err != nil {
		return nil, err
	}

	q := r.db.Table("users").
		Select("users.id, users.name, users.email, users.address, users.role, users.created_at, " +
			"stores.store_name, stores.store_address, " +
			"COALESCE(AVG(ratings.rating), 0) AS avg_rating").
		Joins("LEFT JOIN stores ON stores.user_id = users.id").
		Joins("LEFT JOIN ratings ON ratings.store_id = stores.id")

	if f.Name != "" {
		q = q.Where("LOWER(users.name) LIKE ?", substring(f.Name))
	}
	if f.Email != "" {
		q = q.Where("LOWER(users.email) LIKE ?", substring(f.Email))
	}
	if f.Address != "" {
		q = q.Where("LOWER(users.address) LIKE ?", substring(f.Address))
	}
	if f.Role != "" {
		q = q.Where("users.role = ?", f.Role)
	}

	var rows []UserRow
	err = q.Group("users.id, stores.id").Order(order).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
