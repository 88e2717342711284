package handlers

import (
	tg "resumebot/core/telegram"
	"resumebot/core/telegram/commands"
	"resumebot/internal/i18n"
)

// Register wires every command and callback into the registry.
func (h *Handler) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.onStart,
		Description: "Start the bot and pick a language",
	})
	reg.RegisterCommand("/resume", commands.Command{
		Handler:     h.onResumeCommand,
		Description: "Open the resume menu",
	})
	reg.RegisterCommand("/admin", commands.Command{
		Handler:     h.onAdmin,
		Description: "Open the admin panel",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     h.onCancel,
		Description: "Cancel the pending admin action",
		AdminOnly:   true,
		Hidden:      true,
	})

	// language pickers
	_ = reg.RegisterCallback(cbLangUz, h.onLanguage(i18n.Uzbek))
	_ = reg.RegisterCallback(cbLangRu, h.onLanguage(i18n.Russian))
	_ = reg.RegisterCallback(cbLangEn, h.onLanguage(i18n.English))

	// main menu
	for token, variant := range resumeCallbacks {
		_ = reg.RegisterCallback(token, h.onResumeDelivery(variant))
	}
	_ = reg.RegisterCallback(cbContact, h.onContact)
	_ = reg.RegisterCallback(cbChangeLang, h.onChangeLanguage)
	_ = reg.RegisterCallback(cbBackMenu, h.onBackToMenu)

	// admin panel, every entry behind the operator gate
	_ = reg.RegisterCallback(cbAdminLangUz, h.guardAdmin(h.onAdminLanguage(i18n.Uzbek)))
	_ = reg.RegisterCallback(cbAdminLangRu, h.guardAdmin(h.onAdminLanguage(i18n.Russian)))
	_ = reg.RegisterCallback(cbAdminLangEn, h.guardAdmin(h.onAdminLanguage(i18n.English)))
	for token, variant := range updateCallbacks {
		_ = reg.RegisterCallback(token, h.guardAdmin(h.onUpdateResume(variant)))
	}
	_ = reg.RegisterCallback(cbSendMessage, h.guardAdmin(h.onSendMessage))
	_ = reg.RegisterCallback(cbStatistics, h.guardAdmin(h.onStatistics))
	_ = reg.RegisterCallback(cbUsersList, h.guardAdmin(h.onUsersList))
	_ = reg.RegisterCallback(cbFileInfo, h.guardAdmin(h.onFileInfo))

	reg.SetTextFallback(h.onUnknownText)
}
