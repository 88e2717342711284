// Package service sits between the Telegram handlers and the store.
// Persistence failures are logged and swallowed here: the chat flow
// must keep working even when the database is down, so read methods
// degrade to empty results and writes become best-effort.
package service

import (
	"context"

	"log/slog"

	"resumebot/core/logger"
	"resumebot/internal/storage"
)

// Service exposes the bot's persistence operations with the
// degrade-gracefully error policy applied.
type Service struct {
	store storage.Store
}

// New wraps a store.
func New(store storage.Store) *Service {
	return &Service{store: store}
}

// RegisterVisit upserts the user. A failure is logged and dropped.
func (s *Service) RegisterVisit(ctx context.Context, p storage.UpsertParams) {
	if err := s.store.UpsertUser(ctx, p); err != nil {
		logger.DB.Error("db.upsert_failed",
			slog.Int64("user_id", p.UserID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
}

// RecordAction appends one action row. A failure is logged and dropped.
func (s *Service) RecordAction(ctx context.Context, userID int64, action, resumeType string) {
	if err := s.store.AppendAction(ctx, userID, action, resumeType); err != nil {
		logger.DB.Error("db.action_failed",
			slog.Int64("user_id", userID),
			slog.String("action", action),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
}

// Users returns the user listing, or nil when the store fails.
func (s *Service) Users(ctx context.Context) []storage.User {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		logger.DB.Error("db.list_users_failed",
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return nil
	}
	return users
}

// Recipients returns all user ids for broadcast fan-out, or nil.
func (s *Service) Recipients(ctx context.Context) []int64 {
	ids, err := s.store.UserIDs(ctx)
	if err != nil {
		logger.DB.Error("db.user_ids_failed",
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return nil
	}
	return ids
}

// Stats holds the admin statistics counters.
type Stats struct {
	Users     int64
	Downloads int64
}

// Stats gathers the aggregate counters; failed counters report zero.
func (s *Service) Stats(ctx context.Context) Stats {
	var st Stats
	var err error
	if st.Users, err = s.store.CountUsers(ctx); err != nil {
		logger.DB.Error("db.count_users_failed",
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
	if st.Downloads, err = s.store.CountDownloads(ctx); err != nil {
		logger.DB.Error("db.count_downloads_failed",
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
	return st
}
