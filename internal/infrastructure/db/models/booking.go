package models

import "time"

type Booking struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	ListingID  string    `gorm:"type:uuid;not null;index"`
	Listing    Listing   `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	UserID     string    `gorm:"type:uuid;not null;index"`
	User       User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	TotalPrice float64   `gorm:"not null"`
	Status     string    `gorm:"size:20;not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Booking) TableName() string {
	return "bookings"
}
