package models

import "time"

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"size:100;not null"`
	LastName     string    `gorm:"size:100;not null"`
	Email        string    `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	PhoneNumber  string    `gorm:"size:15;not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (User) TableName() string {
	return "users"
}
