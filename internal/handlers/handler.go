// Package handlers implements the bot's chat surface: the user-facing
// menu flow and the operator-only admin panel.
package handlers

import (
	"context"

	tele "gopkg.in/telebot.v4"

	tghelpers "resumebot/core/telegram/helpers"
	"resumebot/internal/i18n"
	"resumebot/internal/resume"
	"resumebot/internal/service"
	"resumebot/internal/session"
	"resumebot/internal/storage"
)

// ContactLinks holds the outbound links shown on the contact screen.
type ContactLinks struct {
	TelegramURL string
	LinkedInURL string
}

// Handler bundles the dependencies shared by all chat handlers.
type Handler struct {
	svc      *service.Service
	sessions *session.Manager
	resumes  *resume.Store
	adminID  int64
	contact  ContactLinks
}

// New builds the handler set. adminID is the one Telegram user allowed
// into the admin panel.
func New(svc *service.Service, sessions *session.Manager, resumes *resume.Store, adminID int64, contact ContactLinks) *Handler {
	return &Handler{
		svc:      svc,
		sessions: sessions,
		resumes:  resumes,
		adminID:  adminID,
		contact:  contact,
	}
}

// locale resolves the interface language for the current sender.
func (h *Handler) locale(c tele.Context) i18n.Locale {
	return h.sessions.Locale(c.Sender().ID)
}

// upsertParams captures identity fields from the sender.
func upsertParams(sender *tele.User, loc i18n.Locale) storage.UpsertParams {
	return storage.UpsertParams{
		UserID:    sender.ID,
		FirstName: sender.FirstName,
		LastName:  sender.LastName,
		Username:  sender.Username,
		Language:  string(loc),
	}
}

// ctxFrom returns the request-scoped context built by middleware.
func ctxFrom(c tele.Context) context.Context {
	return tghelpers.BuildContext(c)
}

// isAdmin reports whether the current sender is the configured operator.
func (h *Handler) isAdmin(c tele.Context) bool {
	return c.Sender() != nil && c.Sender().ID == h.adminID
}

// NoAccess tells a non-operator that an admin command is off limits.
func (h *Handler) NoAccess(c tele.Context) error {
	return c.Send(i18n.T(h.locale(c), "no_access"))
}
