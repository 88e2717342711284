package handlers

import (
	tele "gopkg.in/telebot.v4"

	"resumebot/core/telegram/keyboard"
	"resumebot/internal/i18n"
	"resumebot/internal/resume"
	"resumebot/internal/storage"
)

// Callback tokens of the user-facing flow. They are wire values carried
// in callback data and must stay stable across releases.
const (
	cbLangUz     = "lang_uz"
	cbLangRu     = "lang_ru"
	cbLangEn     = "lang_en"
	cbResumeUz   = "resume_uz"
	cbResumeEng  = "resume_eng"
	cbResumeRus  = "resume_rus"
	cbContact    = "contact"
	cbBackMenu   = "back_menu"
	cbChangeLang = "change_lang"
)

// resumeCallbacks maps delivery tokens to file variants.
var resumeCallbacks = map[string]resume.Variant{
	cbResumeUz:  resume.VariantUz,
	cbResumeEng: resume.VariantEng,
	cbResumeRus: resume.VariantRus,
}

func languageKeyboard() *tele.ReplyMarkup {
	return keyboard.InlineButtonsNPerRow([]keyboard.InlineBtn{
		{Text: "🇺🇿 O'zbekcha", Unique: cbLangUz},
		{Text: "🇷🇺 Русский", Unique: cbLangRu},
		{Text: "🇬🇧 English", Unique: cbLangEn},
	}, 3)
}

func mainMenuKeyboard(loc i18n.Locale) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: i18n.T(loc, "btn_resume_uz"), Unique: cbResumeUz}},
		[]keyboard.InlineBtn{{Text: i18n.T(loc, "btn_resume_eng"), Unique: cbResumeEng}},
		[]keyboard.InlineBtn{{Text: i18n.T(loc, "btn_resume_rus"), Unique: cbResumeRus}},
		[]keyboard.InlineBtn{
			{Text: i18n.T(loc, "btn_contact"), Unique: cbContact},
			{Text: i18n.T(loc, "btn_change_language"), Unique: cbChangeLang},
		},
	)
}

func backKeyboard(loc i18n.Locale) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: i18n.T(loc, "btn_back"), Unique: cbBackMenu},
	})
}

// onStart greets the user and opens the language picker. The visit is
// registered so the user shows up in the admin listing even before a
// language is chosen.
func (h *Handler) onStart(c tele.Context) error {
	sender := c.Sender()
	loc := h.locale(c)

	h.svc.RegisterVisit(ctxFrom(c), upsertParams(sender, loc))
	h.svc.RecordAction(ctxFrom(c), sender.ID, storage.ActionStart, "")

	welcome := i18n.T(loc, "welcome", i18n.Params{"name": sender.FirstName})
	if err := c.Send(welcome); err != nil {
		return err
	}
	return c.Send(i18n.T(loc, "choose_language"), languageKeyboard())
}

// onResumeCommand opens the main menu directly, or the language picker
// when the user has never chosen a language.
func (h *Handler) onResumeCommand(c tele.Context) error {
	if !h.sessions.HasLocale(c.Sender().ID) {
		return c.Send(i18n.T(h.locale(c), "choose_language"), languageKeyboard())
	}
	loc := h.locale(c)
	return c.Send(i18n.T(loc, "main_menu"), mainMenuKeyboard(loc))
}

// onLanguage commits the picked locale and shows the main menu.
func (h *Handler) onLanguage(loc i18n.Locale) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		h.sessions.SetLocale(sender.ID, loc)
		h.svc.RegisterVisit(ctxFrom(c), upsertParams(sender, loc))

		_ = c.Respond(&tele.CallbackResponse{Text: i18n.T(loc, "language_set")})
		return c.Edit(i18n.T(loc, "main_menu"), mainMenuKeyboard(loc))
	}
}

// onResumeDelivery sends the requested variant's PDF and confirms by
// editing the menu message.
func (h *Handler) onResumeDelivery(v resume.Variant) tele.HandlerFunc {
	return func(c tele.Context) error {
		loc := h.locale(c)
		_ = c.Respond()

		if !h.resumes.Exists(v) {
			return c.Edit(i18n.T(loc, "resume_missing"), backKeyboard(loc))
		}

		doc := &tele.Document{
			File:     tele.FromDisk(h.resumes.Path(v)),
			FileName: "resume_" + string(v) + ".pdf",
			MIME:     "application/pdf",
		}
		if err := c.Send(doc); err != nil {
			_ = c.Edit(i18n.T(loc, "generic_error"), backKeyboard(loc))
			return err
		}

		h.svc.RecordAction(ctxFrom(c), c.Sender().ID, storage.ActionDownload, string(v))
		return c.Edit(i18n.T(loc, "resume_sent"), backKeyboard(loc))
	}
}

// onContact shows the outbound links with a back button.
func (h *Handler) onContact(c tele.Context) error {
	loc := h.locale(c)
	_ = c.Respond()

	buttons := []keyboard.InlineBtn{}
	if h.contact.TelegramURL != "" {
		buttons = append(buttons, keyboard.InlineBtn{Text: i18n.T(loc, "btn_telegram"), URL: h.contact.TelegramURL})
	}
	if h.contact.LinkedInURL != "" {
		buttons = append(buttons, keyboard.InlineBtn{Text: i18n.T(loc, "btn_linkedin"), URL: h.contact.LinkedInURL})
	}
	buttons = append(buttons, keyboard.InlineBtn{Text: i18n.T(loc, "btn_back"), Unique: cbBackMenu})
	return c.Edit(i18n.T(loc, "contact_text"), keyboard.InlineButtons(buttons))
}

// onChangeLanguage re-opens the language picker.
func (h *Handler) onChangeLanguage(c tele.Context) error {
	loc := h.locale(c)
	_ = c.Respond()
	return c.Edit(i18n.T(loc, "choose_language"), languageKeyboard())
}

// onBackToMenu returns from a sub-screen to the main menu.
func (h *Handler) onBackToMenu(c tele.Context) error {
	loc := h.locale(c)
	_ = c.Respond()
	return c.Edit(i18n.T(loc, "main_menu"), mainMenuKeyboard(loc))
}

// onUnknownText routes stray text back to the menu instead of staying
// silent.
func (h *Handler) onUnknownText(c tele.Context) error {
	if !h.sessions.HasLocale(c.Sender().ID) {
		return c.Send(i18n.T(h.locale(c), "choose_language"), languageKeyboard())
	}
	loc := h.locale(c)
	return c.Send(i18n.T(loc, "main_menu"), mainMenuKeyboard(loc))
}
