package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
	"github.com/mohammadpnp/travel-booking/internal/infrastructure/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultMaxAttempts = 5

var ErrImportJobNotRunning = errors.New("import job is not running")

type ImportJobRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewImportJobRepository(db *gorm.DB) *ImportJobRepository {
	return &ImportJobRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *ImportJobRepository) Enqueue(ctx context.Context, sourcePath string) (string, error) {
	now := r.now()
	job := models.ImportJob{
		ID:          uuid.NewString(),
		SourcePath:  sourcePath,
		Status:      domain.ImportJobQueued,
		MaxAttempts: DefaultMaxAttempts,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := r.db.WithContext(ctx).Create(&job).Error; err != nil {
		return "", fmt.Errorf("create import job: %w", err)
	}

	return job.ID, nil
}

func (r *ImportJobRepository) Get(ctx context.Context, jobID string) (*domain.ImportJobState, error) {
	var row models.ImportJob
	if err := r.db.WithContext(ctx).Where("id = ?", jobID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrImportJobNotFound
		}
		return nil, fmt.Errorf("get import job: %w", err)
	}

	failures, err := decodeFailures(row.Failures)
	if err != nil {
		return nil, err
	}

	state := &domain.ImportJobState{
		ImportJob: domain.ImportJob{
			ID:          row.ID,
			SourcePath:  row.SourcePath,
			Status:      row.Status,
			Attempts:    row.Attempts,
			MaxAttempts: row.MaxAttempts,
		},
		Progress: domain.ImportProgress{
			ProcessedCount: row.ProgressProcessed,
			ImportedCount:  row.ImportedCount,
			UpdatedCount:   row.UpdatedCount,
			SkippedCount:   row.SkippedCount,
			FailedCount:    row.FailedCount,
		},
		Failures:   failures,
		StartedAt:  row.StartedAt,
		FinishedAt: row.FinishedAt,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.ErrorMessage != nil {
		state.ErrorMessage = *row.ErrorMessage
	}
	return state, nil
}

// ClaimNext leases the oldest queued job, or a running job whose lease
// expired, to the caller. It returns nil when nothing is claimable.
func (r *ImportJobRepository) ClaimNext(ctx context.Context, leaseDuration time.Duration) (*domain.ImportJob, error) {
	now := r.now()
	var claimed *domain.ImportJob

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ImportJob{}).
			Where("status = ? AND lease_expires_at < ? AND attempts >= max_attempts", domain.ImportJobRunning, now).
			Updates(map[string]any{
				"status":        domain.ImportJobFailed,
				"error_message": "lease expired after final attempt",
				"finished_at":   now,
				"updated_at":    now,
			}).Error; err != nil {
			return fmt.Errorf("fail abandoned import jobs: %w", err)
		}

		var row models.ImportJob
		err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ? OR (status = ? AND lease_expires_at < ?)", domain.ImportJobQueued, domain.ImportJobRunning, now).
			Where("attempts < max_attempts").
			Order("created_at, id").
			Take(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("select claimable import job: %w", err)
		}

		updates := map[string]any{
			"status":           domain.ImportJobRunning,
			"attempts":         gorm.Expr("attempts + 1"),
			"heartbeat_at":     now,
			"lease_expires_at": now.Add(leaseDuration),
			"updated_at":       now,
		}
		if row.StartedAt == nil {
			updates["started_at"] = now
		}
		if err := tx.Model(&models.ImportJob{}).Where("id = ?", row.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("lease import job: %w", err)
		}

		claimed = &domain.ImportJob{
			ID:          row.ID,
			SourcePath:  row.SourcePath,
			Status:      domain.ImportJobRunning,
			Attempts:    row.Attempts + 1,
			MaxAttempts: row.MaxAttempts,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

func (r *ImportJobRepository) Heartbeat(ctx context.Context, jobID string, leaseDuration time.Duration) error {
	now := r.now()
	return r.updateRunning(ctx, jobID, "heartbeat import job", map[string]any{
		"heartbeat_at":     now,
		"lease_expires_at": now.Add(leaseDuration),
		"updated_at":       now,
	})
}

func (r *ImportJobRepository) UpdateProgress(ctx context.Context, jobID string, progress domain.ImportProgress) error {
	return r.updateRunning(ctx, jobID, "update import progress", map[string]any{
		"progress_processed": progress.ProcessedCount,
		"imported_count":     progress.ImportedCount,
		"updated_count":      progress.UpdatedCount,
		"skipped_count":      progress.SkippedCount,
		"failed_count":       progress.FailedCount,
		"updated_at":         r.now(),
	})
}

func (r *ImportJobRepository) Complete(ctx context.Context, jobID string, summary domain.ImportSummary) error {
	failures, err := encodeFailures(summary.Failures)
	if err != nil {
		return err
	}

	now := r.now()
	return r.updateRunning(ctx, jobID, "complete import job", map[string]any{
		"status":             domain.ImportJobSucceeded,
		"progress_processed": summary.ProcessedCount,
		"imported_count":     summary.ImportedCount,
		"updated_count":      summary.UpdatedCount,
		"skipped_count":      summary.SkippedCount,
		"failed_count":       summary.FailedCount,
		"failures":           failures,
		"error_message":      nil,
		"lease_expires_at":   nil,
		"finished_at":        now,
		"updated_at":         now,
	})
}

func (r *ImportJobRepository) Requeue(ctx context.Context, jobID string, reason string) error {
	return r.updateRunning(ctx, jobID, "requeue import job", map[string]any{
		"status":           domain.ImportJobQueued,
		"error_message":    reason,
		"heartbeat_at":     nil,
		"lease_expires_at": nil,
		"updated_at":       r.now(),
	})
}

func (r *ImportJobRepository) Fail(ctx context.Context, jobID string, reason string) error {
	now := r.now()
	return r.updateRunning(ctx, jobID, "fail import job", map[string]any{
		"status":           domain.ImportJobFailed,
		"error_message":    reason,
		"lease_expires_at": nil,
		"finished_at":      now,
		"updated_at":       now,
	})
}

// updateRunning applies updates only while the job still holds its lease
// state, so a worker that lost the job cannot overwrite a newer owner.
func (r *ImportJobRepository) updateRunning(ctx context.Context, jobID, op string, updates map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&models.ImportJob{}).
		Where("id = ? AND status = ?", jobID, domain.ImportJobRunning).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", op, jobID, ErrImportJobNotRunning)
	}
	return nil
}

type failureRecord struct {
	RowIndex int64  `json:"row_index"`
	Reason   string `json:"reason"`
}

func encodeFailures(failures []domain.ImportFailure) (*string, error) {
	if len(failures) == 0 {
		return nil, nil
	}

	records := make([]failureRecord, 0, len(failures))
	for _, f := range failures {
		records = append(records, failureRecord{RowIndex: f.RowIndex, Reason: f.Reason})
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode import failures: %w", err)
	}
	encoded := string(raw)
	return &encoded, nil
}

func decodeFailures(raw *string) ([]domain.ImportFailure, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	var records []failureRecord
	if err := json.Unmarshal([]byte(*raw), &records); err != nil {
		return nil, fmt.Errorf("decode import failures: %w", err)
	}

	failures := make([]domain.ImportFailure, 0, len(records))
	for _, rec := range records {
		failures = append(failures, domain.ImportFailure{RowIndex: rec.RowIndex, Reason: rec.Reason})
	}
	return failures, nil
}
