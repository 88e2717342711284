package handlers

import (
	"strconv"
	"time"

	tele "gopkg.in/telebot.v4"

	"resumebot/core/telegram/keyboard"
	"resumebot/internal/i18n"
	"resumebot/internal/resume"
)

// Callback tokens of the admin panel.
const (
	cbAdminLangUz = "lang_admin_uz"
	cbAdminLangRu = "lang_admin_ru"
	cbAdminLangEn = "lang_admin_en"
	cbUpdateUz    = "update_resume_uz"
	cbUpdateEng   = "update_resume_eng"
	cbUpdateRus   = "update_resume_rus"
	cbSendMessage = "send_message"
	cbStatistics  = "statistics"
	cbUsersList   = "users_list"
	cbFileInfo    = "file_info"
)

// updateCallbacks maps upload tokens to file variants.
var updateCallbacks = map[string]resume.Variant{
	cbUpdateUz:  resume.VariantUz,
	cbUpdateEng: resume.VariantEng,
	cbUpdateRus: resume.VariantRus,
}

const timeLayout = "2006-01-02 15:04"

func adminLanguageKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsNPerRow([]keyboard.InlineBtn{
		{Text: "🇺🇿 O'zbekcha", Unique: cbAdminLangUz},
		{Text: "🇷🇺 Русский", Unique: cbAdminLangRu},
		{Text: "🇬🇧 English", Unique: cbAdminLangEn},
	}, 3)
}

func adminMenuKeyboard(loc i18n.Locale) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: i18n.T(loc, "btn_admin_update_uz"), Unique: cbUpdateUz}},
		[]keyboard.InlineBtn{{Text: i18n.T(loc, "btn_admin_update_eng"), Unique: cbUpdateEng}},
		[]keyboard.InlineBtn{{Text: i18n.T(loc, "btn_admin_update_rus"), Unique: cbUpdateRus}},
		[]keyboard.InlineBtn{
			{Text: i18n.T(loc, "btn_admin_broadcast"), Unique: cbSendMessage},
			{Text: i18n.T(loc, "btn_admin_statistics"), Unique: cbStatistics},
		},
		[]keyboard.InlineBtn{
			{Text: i18n.T(loc, "btn_admin_users_list"), Unique: cbUsersList},
			{Text: i18n.T(loc, "btn_admin_file_info"), Unique: cbFileInfo},
		},
	)
}

// guardAdmin wraps an admin callback so that anyone who is not the
// operator gets an alert instead of the action. The buttons only appear
// in the operator's chat, but callback data is forgeable.
func (h *Handler) guardAdmin(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if !h.isAdmin(c) {
			return c.Respond(&tele.CallbackResponse{
				Text:      i18n.T(h.locale(c), "no_access"),
				ShowAlert: true,
			})
		}
		return next(c)
	}
}

// onAdmin opens the admin panel language picker. The command itself is
// gated by middleware; this handler assumes the sender is the operator.
func (h *Handler) onAdmin(c tele.Context) error {
	return c.Send(i18n.T(h.adminLocale(c), "admin_choose_language"), adminLanguageKeyboard())
}

func (h *Handler) adminLocale(c tele.Context) i18n.Locale {
	return h.sessions.AdminLocale(c.Sender().ID)
}

// onAdminLanguage commits the panel language and shows the admin menu.
func (h *Handler) onAdminLanguage(loc i18n.Locale) tele.HandlerFunc {
	return func(c tele.Context) error {
		h.sessions.SetAdminLocale(c.Sender().ID, loc)
		_ = c.Respond()
		return c.Edit(i18n.T(loc, "admin_menu"), adminMenuKeyboard(loc))
	}
}

// onUpdateResume arms the upload prompt for one variant.
func (h *Handler) onUpdateResume(v resume.Variant) tele.HandlerFunc {
	return func(c tele.Context) error {
		loc := h.adminLocale(c)
		h.sessions.AwaitUpload(c.Sender().ID, v)
		_ = c.Respond()
		return c.Edit(i18n.T(loc, "admin_prompt_upload", i18n.Params{"variant": v.Label()}))
	}
}

// onSendMessage arms the broadcast text prompt.
func (h *Handler) onSendMessage(c tele.Context) error {
	loc := h.adminLocale(c)
	h.sessions.AwaitBroadcast(c.Sender().ID)
	_ = c.Respond()
	return c.Edit(i18n.T(loc, "admin_prompt_broadcast"))
}

// onStatistics shows the aggregate counters.
func (h *Handler) onStatistics(c tele.Context) error {
	loc := h.adminLocale(c)
	_ = c.Respond()

	st := h.svc.Stats(ctxFrom(c))
	text := i18n.T(loc, "stats_text", i18n.Params{
		"users":     strconv.FormatInt(st.Users, 10),
		"downloads": strconv.FormatInt(st.Downloads, 10),
		"time":      time.Now().Format(timeLayout),
	})
	return c.Edit(text, adminMenuKeyboard(loc))
}

// onUsersList sends the user listing, chunked to stay under the message
// size limit. The menu message is reused for the header; overflow goes
// out as plain follow-up messages.
func (h *Handler) onUsersList(c tele.Context) error {
	loc := h.adminLocale(c)
	_ = c.Respond()

	users := h.svc.Users(ctxFrom(c))
	if len(users) == 0 {
		return c.Edit(i18n.T(loc, "users_list_empty"), adminMenuKeyboard(loc))
	}

	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, u.DisplayName()+
			" · "+u.Language+
			" · ⬇ "+strconv.FormatInt(u.Downloads, 10)+
			" · "+u.LastActivity.Format(timeLayout))
	}

	header := i18n.T(loc, "users_list_header", i18n.Params{
		"count": strconv.Itoa(len(users)),
	})
	chunks := chunkLines(lines, maxListChunkLen)

	if err := c.Edit(header+"\n"+chunks[0], adminMenuKeyboard(loc)); err != nil {
		return err
	}
	for _, chunk := range chunks[1:] {
		if err := c.Send(chunk); err != nil {
			return err
		}
	}
	return nil
}

// onFileInfo reports size and mtime for each stored resume variant.
func (h *Handler) onFileInfo(c tele.Context) error {
	loc := h.adminLocale(c)
	_ = c.Respond()

	text := i18n.T(loc, "file_info_header")
	for _, v := range resume.Variants() {
		info, err := h.resumes.Stat(v)
		if err != nil {
			text += "\n" + i18n.T(loc, "file_info_missing", i18n.Params{"variant": v.Label()})
			continue
		}
		text += "\n" + i18n.T(loc, "file_info_line", i18n.Params{
			"variant": v.Label(),
			"size":    formatSize(info.Size),
			"time":    info.ModTime.Format(timeLayout),
		})
	}
	return c.Edit(text, adminMenuKeyboard(loc))
}

// onCancel aborts a pending admin prompt, if any.
func (h *Handler) onCancel(c tele.Context) error {
	id := c.Sender().ID
	loc := h.adminLocale(c)
	if !h.sessions.InProgress(id) {
		return c.Send(i18n.T(loc, "nothing_to_cancel"))
	}
	h.sessions.ClearAdmin(id)
	return c.Send(i18n.T(loc, "cancelled"))
}
