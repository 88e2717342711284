package storage

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/jmoiron/sqlx"

	"resumebot/core/logger"
)

// Repository implements Store on top of Postgres via sqlx.
type Repository struct {
	db *sqlx.DB
}

var _ Store = (*Repository)(nil)

// NewRepository wraps an open database handle.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

const upsertUserQuery = `
INSERT INTO users (user_id, first_name, last_name, username, language, joined_date, last_activity)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NOW(), NOW())
ON CONFLICT (user_id) DO UPDATE SET
    language      = EXCLUDED.language,
    last_activity = NOW()`

// UpsertUser registers or refreshes a user in one round trip. Name and
// username are captured at first contact and intentionally not
// refreshed on later visits.
func (r *Repository) UpsertUser(ctx context.Context, p UpsertParams) error {
	_, err := r.db.ExecContext(ctx, upsertUserQuery,
		p.UserID, p.FirstName, p.LastName, p.Username, p.Language)
	if err != nil {
		return fmt.Errorf("upsert user %d: %w", p.UserID, err)
	}
	logger.DB.Debug("db.user_upserted",
		slog.Int64("user_id", p.UserID),
		slog.String("lang", p.Language),
	)
	return nil
}

const insertActionQuery = `
INSERT INTO user_actions (user_id, action, resume_type, action_date)
VALUES ($1, $2, NULLIF($3, ''), NOW())`

const touchActivityQuery = `
UPDATE users SET last_activity = NOW() WHERE user_id = $1`

// AppendAction records an action and bumps last_activity in one
// transaction so the two never drift apart.
func (r *Repository) AppendAction(ctx context.Context, userID int64, action, resumeType string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("append action: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertActionQuery, userID, action, resumeType); err != nil {
		return fmt.Errorf("append action %q for %d: %w", action, userID, err)
	}
	if _, err := tx.ExecContext(ctx, touchActivityQuery, userID); err != nil {
		return fmt.Errorf("touch activity for %d: %w", userID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("append action: commit: %w", err)
	}
	return nil
}

const listUsersQuery = `
SELECT u.user_id, u.first_name, u.last_name, u.username, u.language,
       u.joined_date, u.last_activity,
       COUNT(a.id) FILTER (WHERE a.action = 'download') AS downloads
FROM users u
LEFT JOIN user_actions a ON a.user_id = u.user_id
GROUP BY u.user_id
ORDER BY u.last_activity DESC`

func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := r.db.SelectContext(ctx, &users, listUsersQuery); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *Repository) UserIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, `SELECT user_id FROM users ORDER BY user_id`); err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *Repository) CountDownloads(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM user_actions WHERE action = 'download'`); err != nil {
		return 0, fmt.Errorf("count downloads: %w", err)
	}
	return n, nil
}
