// Package session keeps per-user conversational state in memory. The
// state is intentionally ephemeral: a restart drops pending admin
// prompts, which is acceptable because re-entering them is one tap.
package session

import (
	"sync"

	"resumebot/internal/i18n"
	"resumebot/internal/resume"
)

// Pending tags what kind of input the admin flow is waiting for.
type Pending int

const (
	PendingNone Pending = iota
	PendingUpload
	PendingBroadcast
)

// AdminState is the admin workflow position for one user.
type AdminState struct {
	Pending Pending
	Variant resume.Variant // set only when Pending == PendingUpload
}

type state struct {
	locale      i18n.Locale
	localeSet   bool
	adminLocale i18n.Locale
	admin       AdminState
}

// Manager stores sessions keyed by Telegram user id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*state
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*state)}
}

func (m *Manager) get(id int64) *state {
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := &state{locale: i18n.DefaultLocale, adminLocale: i18n.DefaultLocale}
	m.sessions[id] = s
	return s
}

// Locale returns the user's interface locale, defaulting to Uzbek.
func (m *Manager) Locale(id int64) i18n.Locale {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s.locale
	}
	return i18n.DefaultLocale
}

// HasLocale reports whether the user has explicitly picked a language.
func (m *Manager) HasLocale(id int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return ok && s.localeSet
}

// SetLocale commits the user's language choice.
func (m *Manager) SetLocale(id int64, loc i18n.Locale) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.get(id)
	s.locale = loc
	s.localeSet = true
}

// AdminLocale returns the admin panel locale for the user.
func (m *Manager) AdminLocale(id int64) i18n.Locale {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s.adminLocale
	}
	return i18n.DefaultLocale
}

// SetAdminLocale commits the admin panel language choice.
func (m *Manager) SetAdminLocale(id int64, loc i18n.Locale) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id).adminLocale = loc
}

// Admin returns the current admin workflow state.
func (m *Manager) Admin(id int64) AdminState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s.admin
	}
	return AdminState{}
}

// AwaitUpload arms the upload prompt for a resume variant.
func (m *Manager) AwaitUpload(id int64, v resume.Variant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id).admin = AdminState{Pending: PendingUpload, Variant: v}
}

// AwaitBroadcast arms the broadcast text prompt.
func (m *Manager) AwaitBroadcast(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id).admin = AdminState{Pending: PendingBroadcast}
}

// ClearAdmin resets the admin workflow back to idle.
func (m *Manager) ClearAdmin(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.admin = AdminState{}
	}
}

// InProgress reports whether the user owns the next text or document
// update because an admin prompt is pending.
func (m *Manager) InProgress(id int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return ok && s.admin.Pending != PendingNone
}
