package storage

import "context"

// UpsertParams carries the identity fields captured from an incoming
// update. Language is the user's current interface locale code.
type UpsertParams struct {
	UserID    int64
	FirstName string
	LastName  string
	Username  string
	Language  string
}

// Store is the persistence surface the bot depends on.
type Store interface {
	// UpsertUser inserts the user or, when the row exists, refreshes
	// language and last activity in a single statement.
	UpsertUser(ctx context.Context, p UpsertParams) error

	// AppendAction records one action and bumps the user's last
	// activity, atomically.
	AppendAction(ctx context.Context, userID int64, action, resumeType string) error

	// ListUsers returns all users with their download counts, most
	// recently active first.
	ListUsers(ctx context.Context) ([]User, error)

	// UserIDs returns every known user id, for broadcast fan-out.
	UserIDs(ctx context.Context) ([]int64, error)

	CountUsers(ctx context.Context) (int64, error)
	CountDownloads(ctx context.Context) (int64, error)
}
