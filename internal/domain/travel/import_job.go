package travel

import "time"

const (
	ImportJobQueued    = "queued"
	ImportJobRunning   = "running"
	ImportJobSucceeded = "succeeded"
	ImportJobFailed    = "failed"
)

// ImportJob is a queued bulk user import read from a JSON array file.
type ImportJob struct {
	ID          string
	SourcePath  string
	Status      string
	Attempts    int
	MaxAttempts int
}

// ImportJobState is everything recorded about a job, as reported to clients
// polling for its outcome.
type ImportJobState struct {
	ImportJob
	Progress     ImportProgress
	ErrorMessage string
	Failures     []ImportFailure
	StartedAt    *time.Time
	FinishedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ImportFailure struct {
	RowIndex int64
	Reason   string
}

type ImportProgress struct {
	ProcessedCount int64
	ImportedCount  int64
	UpdatedCount   int64
	SkippedCount   int64
	FailedCount    int64
}

type ImportSummary struct {
	ProcessedCount int64
	ImportedCount  int64
	UpdatedCount   int64
	SkippedCount   int64
	FailedCount    int64
	Failures       []ImportFailure
}

type ImportChunkResult struct {
	ImportedCount int64
	UpdatedCount  int64
	SkippedCount  int64
}
