package models

import "time"

type ImportJob struct {
	ID                string  `gorm:"type:uuid;primaryKey"`
	SourcePath        string  `gorm:"type:text;not null"`
	Status            string  `gorm:"type:text;not null"`
	ProgressProcessed int64   `gorm:"not null"`
	ImportedCount     int64   `gorm:"not null"`
	UpdatedCount      int64   `gorm:"not null"`
	SkippedCount      int64   `gorm:"not null"`
	FailedCount       int64   `gorm:"not null"`
	Attempts          int     `gorm:"not null"`
	MaxAttempts       int     `gorm:"not null"`
	ErrorMessage      *string `gorm:"type:text"`
	Failures          *string `gorm:"type:jsonb"`
	HeartbeatAt       *time.Time
	LeaseExpiresAt    *time.Time
	StartedAt         *time.Time
	FinishedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ImportJob) TableName() string {
	return "import_jobs"
}
