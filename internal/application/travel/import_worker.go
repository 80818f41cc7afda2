package travel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
	"github.com/sirupsen/logrus"
)

const (
	maxStoredFailures = 100
	maxReasonLength   = 1000
)

type ImportSource interface {
	Open(ctx context.Context, sourcePath string) (io.ReadCloser, error)
}

type ImportChunkResult = domain.ImportChunkResult

type importChunker interface {
	ImportChunk(ctx context.Context, jobID string, users []domain.User) (ImportChunkResult, error)
}

type importWorkerJobRepo interface {
	ClaimNext(ctx context.Context, leaseDuration time.Duration) (*domain.ImportJob, error)
	Heartbeat(ctx context.Context, jobID string, leaseDuration time.Duration) error
	UpdateProgress(ctx context.Context, jobID string, progress domain.ImportProgress) error
	Complete(ctx context.Context, jobID string, summary domain.ImportSummary) error
	Requeue(ctx context.Context, jobID string, reason string) error
	Fail(ctx context.Context, jobID string, reason string) error
}

type ImportWorkerConfig struct {
	Workers           int
	ChunkSize         int
	PollInterval      time.Duration
	LeaseDuration     time.Duration
	HeartbeatInterval time.Duration
	Logger            logrus.FieldLogger
}

func (c *ImportWorkerConfig) setDefaults() {
	if c.Workers <= 0 {
		c.Workers = 10
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = 10000
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 500 * time.Millisecond
	}
	if c.LeaseDuration <= 0 {
		c.LeaseDuration = time.Minute
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = c.LeaseDuration / 2
	}
	if c.Logger == nil {
		c.Logger = logrus.StandardLogger()
	}
}

// ImportWorker drains the import job queue. Every row is validated with the
// same rules as the users endpoint; invalid rows are counted and skipped.
type ImportWorker struct {
	repo     importWorkerJobRepo
	source   ImportSource
	importer importChunker
	cfg      ImportWorkerConfig
	now      func() time.Time

	once sync.Once
	wg   sync.WaitGroup
}

func NewImportWorker(repo importWorkerJobRepo, source ImportSource, importer importChunker, cfg ImportWorkerConfig) *ImportWorker {
	cfg.setDefaults()
	return &ImportWorker{
		repo:     repo,
		source:   source,
		importer: importer,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start launches the worker goroutines once; they run until ctx is done.
func (w *ImportWorker) Start(ctx context.Context) {
	w.once.Do(func() {
		for i := 0; i < w.cfg.Workers; i++ {
			w.wg.Add(1)
			go func(n int) {
				defer w.wg.Done()
				w.poll(ctx, w.cfg.Logger.WithField("worker", n))
			}(i)
		}
	})
}

// Wait blocks until every worker started by Start has returned.
func (w *ImportWorker) Wait() {
	w.wg.Wait()
}

func (w *ImportWorker) poll(ctx context.Context, log logrus.FieldLogger) {
	for ctx.Err() == nil {
		job, err := w.repo.ClaimNext(ctx, w.cfg.LeaseDuration)
		if err != nil && ctx.Err() == nil {
			log.WithError(err).Warn("claim next import job failed")
		}
		if err != nil || job == nil {
			if !sleepWithContext(ctx, w.cfg.PollInterval) {
				return
			}
			continue
		}

		jobLog := log.WithFields(logrus.Fields{"job_id": job.ID, "attempt": job.Attempts})
		jobLog.Info("import job claimed")
		if err := w.ProcessJob(ctx, *job); err != nil {
			jobLog.WithError(err).Error("import job failed")
			continue
		}
		jobLog.Info("import job completed")
	}
}

// ProcessJob imports one claimed job. On error the job is requeued while it
// has attempts left and failed otherwise; the error is returned either way.
func (w *ImportWorker) ProcessJob(ctx context.Context, job domain.ImportJob) error {
	if err := w.run(ctx, job); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return w.retryOrFail(ctx, job, err)
	}
	return nil
}

func (w *ImportWorker) run(ctx context.Context, job domain.ImportJob) error {
	reader, err := w.source.Open(ctx, job.SourcePath)
	if err != nil {
		return fmt.Errorf("open import source: %w", err)
	}
	defer reader.Close()

	rows, err := newUserRows(reader)
	if err != nil {
		return err
	}

	r := &importRun{w: w, job: job, chunk: make([]domain.User, 0, w.cfg.ChunkSize), lastBeat: w.now()}
	for rows.More() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.heartbeatIfDue(ctx); err != nil {
			return err
		}

		index := rows.index
		raw, err := rows.Next()
		if err != nil {
			return err
		}

		u, err := raw.toDomain(w.now())
		if err != nil {
			r.reject(index, err)
			continue
		}
		if err := r.add(ctx, u); err != nil {
			return err
		}
	}
	if err := rows.Close(); err != nil {
		return err
	}

	if err := r.flush(ctx); err != nil {
		return fmt.Errorf("flush last chunk: %w", err)
	}
	if err := w.repo.UpdateProgress(ctx, job.ID, r.progress()); err != nil {
		return fmt.Errorf("update final progress: %w", err)
	}
	if err := w.repo.Complete(ctx, job.ID, r.summary); err != nil {
		return fmt.Errorf("complete job: %w", err)
	}
	return nil
}

func (w *ImportWorker) retryOrFail(ctx context.Context, job domain.ImportJob, cause error) error {
	reason := truncateReason(cause.Error())
	if job.Attempts < job.MaxAttempts {
		if err := w.repo.Requeue(ctx, job.ID, reason); err != nil {
			return fmt.Errorf("%v; requeue failed: %w", cause, err)
		}
		return cause
	}

	if err := w.repo.Fail(ctx, job.ID, reason); err != nil {
		return fmt.Errorf("%v; fail update failed: %w", cause, err)
	}
	return cause
}

// importRun holds the counters and pending chunk of one job attempt.
type importRun struct {
	w        *ImportWorker
	job      domain.ImportJob
	summary  domain.ImportSummary
	chunk    []domain.User
	lastBeat time.Time
}

func (r *importRun) reject(index int64, err error) {
	r.summary.ProcessedCount++
	r.summary.FailedCount++
	r.summary.SkippedCount++
	if len(r.summary.Failures) < maxStoredFailures {
		r.summary.Failures = append(r.summary.Failures, domain.ImportFailure{RowIndex: index, Reason: err.Error()})
	}
}

func (r *importRun) add(ctx context.Context, u domain.User) error {
	r.summary.ProcessedCount++
	r.chunk = append(r.chunk, u)
	if len(r.chunk) < r.w.cfg.ChunkSize {
		return nil
	}
	if err := r.flush(ctx); err != nil {
		return fmt.Errorf("flush chunk: %w", err)
	}
	return r.heartbeat(ctx)
}

func (r *importRun) flush(ctx context.Context) error {
	if len(r.chunk) == 0 {
		return nil
	}

	res, err := r.w.importer.ImportChunk(ctx, r.job.ID, r.chunk)
	if err != nil {
		return err
	}
	r.summary.ImportedCount += res.ImportedCount
	r.summary.UpdatedCount += res.UpdatedCount
	r.summary.SkippedCount += res.SkippedCount
	r.chunk = r.chunk[:0]

	return r.w.repo.UpdateProgress(ctx, r.job.ID, r.progress())
}

func (r *importRun) heartbeatIfDue(ctx context.Context) error {
	if r.w.now().Sub(r.lastBeat) < r.w.cfg.HeartbeatInterval {
		return nil
	}
	return r.heartbeat(ctx)
}

func (r *importRun) heartbeat(ctx context.Context) error {
	if err := r.w.repo.Heartbeat(ctx, r.job.ID, r.w.cfg.LeaseDuration); err != nil {
		return fmt.Errorf("heartbeat: %w", err)
	}
	r.lastBeat = r.w.now()
	return nil
}

func (r *importRun) progress() domain.ImportProgress {
	return domain.ImportProgress{
		ProcessedCount: r.summary.ProcessedCount,
		ImportedCount:  r.summary.ImportedCount,
		UpdatedCount:   r.summary.UpdatedCount,
		SkippedCount:   r.summary.SkippedCount,
		FailedCount:    r.summary.FailedCount,
	}
}

// userRows streams the elements of a top-level JSON array without loading
// the whole file.
type userRows struct {
	dec   *json.Decoder
	index int64
}

func newUserRows(r io.Reader) (*userRows, error) {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read json start token: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, errors.New("import payload must be a JSON array")
	}
	return &userRows{dec: dec}, nil
}

func (r *userRows) More() bool {
	return r.dec.More()
}

func (r *userRows) Next() (rawUser, error) {
	var u rawUser
	if err := r.dec.Decode(&u); err != nil {
		return rawUser{}, fmt.Errorf("decode user at index %d: %w", r.index, err)
	}
	r.index++
	return u, nil
}

func (r *userRows) Close() error {
	if _, err := r.dec.Token(); err != nil {
		return fmt.Errorf("read json end token: %w", err)
	}
	return nil
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func truncateReason(reason string) string {
	reason = strings.TrimSpace(reason)
	if len(reason) <= maxReasonLength {
		return reason
	}
	cut := maxReasonLength
	for cut > 0 && !utf8.RuneStart(reason[cut]) {
		cut--
	}
	return reason[:cut]
}

// rawUser is one element of an import file. Rows are matched to existing
// users by email; a valid user_id only becomes the identity of a newly
// inserted user.
type rawUser struct {
	ID          string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func (u rawUser) toDomain(now time.Time) (domain.User, error) {
	id, err := uuid.Parse(strings.TrimSpace(u.ID))
	if err != nil {
		id = uuid.New()
	}

	return domain.NewUser(id, domain.UserParams{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
	}, now)
}
