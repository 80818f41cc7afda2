package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/mohammadpnp/travel-booking/internal/domain/travel"
)

var stagedUserColumns = []string{"job_id", "row_index", "id", "first_name", "last_name", "email", "phone_number"}

// upsertStagedUsersSQL keeps the last staged row per email. A staged id is
// replaced with a fresh one when it already belongs to a different email or
// when a later row of the chunk claims it for another email. Imported users
// get no password and must have one set before they can log in.
const upsertStagedUsersSQL = `
WITH latest AS (
    SELECT DISTINCT ON (s.email)
      s.row_index, s.id, s.first_name, s.last_name, s.email, s.phone_number
    FROM stg_users s
    WHERE s.job_id = $1
    ORDER BY s.email, s.row_index DESC
), staged AS (
    SELECT
      CASE
        WHEN row_number() OVER (PARTITION BY l.id ORDER BY l.row_index DESC) > 1 THEN gen_random_uuid()
        WHEN EXISTS (SELECT 1 FROM users u WHERE u.id = l.id AND u.email <> l.email) THEN gen_random_uuid()
        ELSE l.id
      END AS id,
      l.first_name, l.last_name, l.email, l.phone_number
    FROM latest l
)
INSERT INTO users (id, first_name, last_name, email, phone_number, created_at, updated_at)
SELECT id, first_name, last_name, email, phone_number, $2, $2
FROM staged
ON CONFLICT (email) DO UPDATE
  SET first_name = EXCLUDED.first_name,
      last_name = EXCLUDED.last_name,
      phone_number = EXCLUDED.phone_number,
      updated_at = EXCLUDED.updated_at
RETURNING (xmax = 0) AS inserted`

// UserBulkImportRepository writes validated import rows through a staging
// table: COPY into stg_users, then one upsert keyed by email.
type UserBulkImportRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewUserBulkImportRepository(pool *pgxpool.Pool) *UserBulkImportRepository {
	return &UserBulkImportRepository{
		pool: pool,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// ImportChunk stages and upserts one chunk in a single transaction. Rows
// sharing an email within the chunk collapse into one write and count as
// skipped.
func (r *UserBulkImportRepository) ImportChunk(ctx context.Context, jobID string, users []domain.User) (domain.ImportChunkResult, error) {
	if len(users) == 0 {
		return domain.ImportChunkResult{}, nil
	}

	var result domain.ImportChunkResult
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"stg_users"}, stagedUserColumns,
			pgx.CopyFromSlice(len(users), func(i int) ([]any, error) {
				u := users[i]
				return []any{jobID, int64(i), u.ID, u.FirstName, u.LastName, u.Email, u.PhoneNumber}, nil
			}),
		); err != nil {
			return fmt.Errorf("copy users staging: %w", err)
		}

		rows, err := tx.Query(ctx, upsertStagedUsersSQL, jobID, r.now())
		if err != nil {
			return fmt.Errorf("upsert users by email: %w", err)
		}
		inserted, err := pgx.CollectRows(rows, pgx.RowTo[bool])
		if err != nil {
			return fmt.Errorf("read upsert results: %w", err)
		}

		if _, err := tx.Exec(ctx, "DELETE FROM stg_users WHERE job_id = $1", jobID); err != nil {
			return fmt.Errorf("cleanup stg_users: %w", err)
		}

		result = tallyUpserts(int64(len(users)), inserted)
		return nil
	})
	if err != nil {
		return domain.ImportChunkResult{}, fmt.Errorf("import chunk for job %s: %w", jobID, err)
	}
	return result, nil
}

func tallyUpserts(staged int64, inserted []bool) domain.ImportChunkResult {
	var res domain.ImportChunkResult
	for _, ok := range inserted {
		if ok {
			res.ImportedCount++
		} else {
			res.UpdatedCount++
		}
	}
	res.SkippedCount = staged - res.ImportedCount - res.UpdatedCount
	return res
}
