package travel

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

// ImportJobStore queues bulk imports and reports on them. Jobs are consumed
// by ImportWorker.
type ImportJobStore interface {
	Enqueue(ctx context.Context, sourcePath string) (string, error)
	Get(ctx context.Context, jobID string) (*domain.ImportJobState, error)
}

type ImportUsersInput struct {
	SourcePath string
}

type ImportFailureOutput struct {
	RowIndex int64  `json:"row_index"`
	Reason   string `json:"reason"`
}

type ImportJobOutput struct {
	ID          string                `json:"job_id"`
	SourcePath  string                `json:"source_path"`
	Status      string                `json:"status"`
	Attempts    int                   `json:"attempts"`
	MaxAttempts int                   `json:"max_attempts,omitempty"`
	Processed   int64                 `json:"processed"`
	Imported    int64                 `json:"imported"`
	Updated     int64                 `json:"updated"`
	Skipped     int64                 `json:"skipped"`
	Failed      int64                 `json:"failed"`
	Error       string                `json:"error,omitempty"`
	Failures    []ImportFailureOutput `json:"failures,omitempty"`
	StartedAt   *time.Time            `json:"started_at,omitempty"`
	FinishedAt  *time.Time            `json:"finished_at,omitempty"`
	CreatedAt   *time.Time            `json:"created_at,omitempty"`
}

type ImportService interface {
	StartUsersImport(ctx context.Context, in ImportUsersInput) (ImportJobOutput, error)
	GetJob(ctx context.Context, id string) (ImportJobOutput, error)
}

type importService struct {
	jobs ImportJobStore
}

func NewImportService(jobs ImportJobStore) ImportService {
	return &importService{jobs: jobs}
}

func (s *importService) StartUsersImport(ctx context.Context, in ImportUsersInput) (ImportJobOutput, error) {
	sourcePath, err := importSourcePath(in.SourcePath)
	if err != nil {
		return ImportJobOutput{}, err
	}

	jobID, err := s.jobs.Enqueue(ctx, sourcePath)
	if err != nil {
		return ImportJobOutput{}, storageError(err, domain.ErrImportJobNotFound, ErrImportJobNotFound, ErrImportJobStorage)
	}

	return ImportJobOutput{
		ID:         jobID,
		SourcePath: sourcePath,
		Status:     domain.ImportJobQueued,
	}, nil
}

func (s *importService) GetJob(ctx context.Context, id string) (ImportJobOutput, error) {
	jobID, err := parseID(id)
	if err != nil {
		return ImportJobOutput{}, err
	}

	state, err := s.jobs.Get(ctx, jobID.String())
	if err != nil {
		return ImportJobOutput{}, storageError(err, domain.ErrImportJobNotFound, ErrImportJobNotFound, ErrImportJobStorage)
	}
	return newImportJobOutput(*state), nil
}

// importSourcePath accepts only relative .json paths that stay below the
// import base directory.
func importSourcePath(raw string) (string, error) {
	p := filepath.Clean(strings.TrimSpace(raw))
	switch {
	case p == ".", filepath.IsAbs(p):
		return "", ErrInvalidImportSource
	case p == "..", strings.HasPrefix(p, ".."+string(filepath.Separator)):
		return "", ErrInvalidImportSource
	case !strings.EqualFold(filepath.Ext(p), ".json"):
		return "", ErrInvalidImportSource
	}
	return p, nil
}

func newImportJobOutput(s domain.ImportJobState) ImportJobOutput {
	created := s.CreatedAt
	out := ImportJobOutput{
		ID:          s.ID,
		SourcePath:  s.SourcePath,
		Status:      s.Status,
		Attempts:    s.Attempts,
		MaxAttempts: s.MaxAttempts,
		Processed:   s.Progress.ProcessedCount,
		Imported:    s.Progress.ImportedCount,
		Updated:     s.Progress.UpdatedCount,
		Skipped:     s.Progress.SkippedCount,
		Failed:      s.Progress.FailedCount,
		Error:       s.ErrorMessage,
		StartedAt:   s.StartedAt,
		FinishedAt:  s.FinishedAt,
		CreatedAt:   &created,
	}
	for _, f := range s.Failures {
		out.Failures = append(out.Failures, ImportFailureOutput{RowIndex: f.RowIndex, Reason: f.Reason})
	}
	return out
}
