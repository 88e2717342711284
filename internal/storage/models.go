// Package storage persists bot users and their actions in Postgres and
// derives the aggregate counters shown in the admin panel.
package storage

import (
	"database/sql"
	"time"
)

// Action kinds recorded in user_actions.
const (
	ActionStart     = "start"
	ActionDownload  = "download"
	ActionBroadcast = "broadcast_received"
)

// User is a row of the users table, optionally joined with the download
// counter derived from user_actions.
type User struct {
	UserID       int64          `db:"user_id"`
	FirstName    string         `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	Username     sql.NullString `db:"username"`
	Language     string         `db:"language"`
	JoinedDate   time.Time      `db:"joined_date"`
	LastActivity time.Time      `db:"last_activity"`
	Downloads    int64          `db:"downloads"`
}

// DisplayName builds a short label for user listings.
func (u User) DisplayName() string {
	name := u.FirstName
	if u.LastName.Valid && u.LastName.String != "" {
		name += " " + u.LastName.String
	}
	if u.Username.Valid && u.Username.String != "" {
		name += " (@" + u.Username.String + ")"
	}
	return name
}

// Action is a row of the user_actions table.
type Action struct {
	ID         int64          `db:"id"`
	UserID     int64          `db:"user_id"`
	Action     string         `db:"action"`
	ResumeType sql.NullString `db:"resume_type"`
	ActionDate time.Time      `db:"action_date"`
}
