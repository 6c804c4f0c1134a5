package models

import (
	"time"
)

type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_user_store" json:"user_id"`
	StoreID   uint      `gorm:"not null;uniqueIndex:idx_ratings_user_store" json:"store_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Store Store `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}
