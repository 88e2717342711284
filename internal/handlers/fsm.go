package handlers

import (
	"strconv"
	"strings"

	"log/slog"

	tele "gopkg.in/telebot.v4"

	"resumebot/core/logger"
	"resumebot/internal/broadcast"
	"resumebot/internal/i18n"
	"resumebot/internal/session"
	"resumebot/internal/storage"
)

// InProgress reports whether the sender owns the next text or document
// update because an admin prompt is pending.
func (h *Handler) InProgress(userID int64) bool {
	return h.sessions.InProgress(userID)
}

// HandleText consumes a text update while an admin prompt is pending.
// /cancel always wins over the pending prompt.
func (h *Handler) HandleText(c tele.Context) error {
	id := c.Sender().ID
	loc := h.adminLocale(c)

	if strings.TrimSpace(c.Text()) == "/cancel" {
		h.sessions.ClearAdmin(id)
		return c.Send(i18n.T(loc, "cancelled"))
	}

	switch h.sessions.Admin(id).Pending {
	case session.PendingBroadcast:
		return h.runBroadcast(c, c.Text())
	case session.PendingUpload:
		// text while a file is expected: repeat the prompt
		return c.Send(i18n.T(loc, "admin_expect_document"))
	}
	return nil
}

// HandleDocument consumes a document update while an upload is pending.
func (h *Handler) HandleDocument(c tele.Context) error {
	id := c.Sender().ID
	loc := h.adminLocale(c)

	st := h.sessions.Admin(id)
	if st.Pending != session.PendingUpload {
		return nil
	}

	doc := c.Message().Document
	if doc == nil {
		return c.Send(i18n.T(loc, "admin_expect_document"))
	}

	rc, err := c.Bot().File(&doc.File)
	if err != nil {
		h.sessions.ClearAdmin(id)
		logger.L.Error("resume.download_failed",
			slog.String("variant", string(st.Variant)),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return c.Send(i18n.T(loc, "admin_upload_failed"))
	}
	defer rc.Close()

	info, err := h.resumes.Replace(st.Variant, rc)
	h.sessions.ClearAdmin(id)
	if err != nil {
		logger.L.Error("resume.replace_failed",
			slog.String("variant", string(st.Variant)),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return c.Send(i18n.T(loc, "admin_upload_failed"))
	}

	return c.Send(i18n.T(loc, "admin_upload_done", i18n.Params{
		"variant": st.Variant.Label(),
		"size":    formatSize(info.Size),
		"time":    info.ModTime.Format(timeLayout),
	}))
}

// runBroadcast fans the text out to every known user sequentially and
// reports the counts back to the operator.
func (h *Handler) runBroadcast(c tele.Context, text string) error {
	id := c.Sender().ID
	loc := h.adminLocale(c)
	h.sessions.ClearAdmin(id)

	ctx := ctxFrom(c)
	recipients := h.svc.Recipients(ctx)

	res := broadcast.Send(recipients, text, func(userID int64, body string) error {
		_, err := c.Bot().Send(&tele.User{ID: userID}, body)
		return err
	}, broadcast.Options{
		OnSent: func(userID int64) {
			h.svc.RecordAction(ctx, userID, storage.ActionBroadcast, "")
		},
	})

	return c.Send(i18n.T(loc, "broadcast_report", i18n.Params{
		"total":   strconv.Itoa(len(recipients)),
		"success": strconv.Itoa(res.Success),
		"failed":  strconv.Itoa(res.Failed),
	}))
}
