package models

import "time"

type Review struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	ListingID string    `gorm:"type:uuid;not null;index"`
	Listing   Listing   `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Review) TableName() string {
	return "reviews"
}
