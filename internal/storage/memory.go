package storage

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"
)

// Memory is an in-process Store used in tests and as a fallback when no
// database is configured. It mirrors the Repository semantics, including
// the "names captured at first contact" rule.
type Memory struct {
	mu      sync.RWMutex
	users   map[int64]*User
	actions []Action
	nextID  int64
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{users: make(map[int64]*User), nextID: 1}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (m *Memory) UpsertUser(_ context.Context, p UpsertParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if u, ok := m.users[p.UserID]; ok {
		u.Language = p.Language
		u.LastActivity = now
		return nil
	}
	m.users[p.UserID] = &User{
		UserID:       p.UserID,
		FirstName:    p.FirstName,
		LastName:     nullable(p.LastName),
		Username:     nullable(p.Username),
		Language:     p.Language,
		JoinedDate:   now,
		LastActivity: now,
	}
	return nil
}

func (m *Memory) AppendAction(_ context.Context, userID int64, action, resumeType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.actions = append(m.actions, Action{
		ID:         m.nextID,
		UserID:     userID,
		Action:     action,
		ResumeType: nullable(resumeType),
		ActionDate: now,
	})
	m.nextID++
	if u, ok := m.users[userID]; ok {
		u.LastActivity = now
	}
	return nil
}

func (m *Memory) ListUsers(_ context.Context) ([]User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	downloads := make(map[int64]int64)
	for _, a := range m.actions {
		if a.Action == ActionDownload {
			downloads[a.UserID]++
		}
	}

	users := make([]User, 0, len(m.users))
	for _, u := range m.users {
		copied := *u
		copied.Downloads = downloads[u.UserID]
		users = append(users, copied)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].LastActivity.After(users[j].LastActivity)
	})
	return users, nil
}

func (m *Memory) UserIDs(_ context.Context) ([]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *Memory) CountUsers(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.users)), nil
}

func (m *Memory) CountDownloads(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, a := range m.actions {
		if a.Action == ActionDownload {
			n++
		}
	}
	return n, nil
}

// ActionCount reports how many actions are recorded, for tests.
func (m *Memory) ActionCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.actions)
}
