package models

import "time"

type Listing struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	HostID        string    `gorm:"type:uuid;not null;index"`
	Host          User      `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE"`
	Name          string    `gorm:"size:100;not null"`
	Description   string    `gorm:"type:text;not null"`
	Location      string    `gorm:"size:255;not null"`
	PricePerNight float64   `gorm:"not null;check:price_per_night >= 0"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (Listing) TableName() string {
	return "listings"
}
