package models

type Store struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"uniqueIndex;not null" json:"user_id"` // one store per owner
	StoreName    string `gorm:"type:varchar(100);not null" json:"store_name"`
	StoreAddress string `gorm:"type:varchar(400);not null" json:"store_address"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
