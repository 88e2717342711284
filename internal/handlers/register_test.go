package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tg "resumebot/core/telegram"
	"resumebot/internal/i18n"
	"resumebot/internal/resume"
	"resumebot/internal/service"
	"resumebot/internal/session"
	"resumebot/internal/storage"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	resumes, err := resume.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	return New(
		service.New(storage.NewMemory()),
		session.NewManager(),
		resumes,
		99,
		ContactLinks{TelegramURL: "https://t.me/example"},
	)
}

func TestRegisterWiresAllEndpoints(t *testing.T) {
	h := newTestHandler(t)
	reg := tg.NewRegistry()
	h.Register(reg)

	for _, cmd := range []string{"/start", "/resume", "/admin", "/cancel"} {
		_, _, ok := reg.LookupCommand(cmd)
		assert.True(t, ok, "command %s not registered", cmd)
	}

	expected := []string{
		cbLangUz, cbLangRu, cbLangEn,
		cbResumeUz, cbResumeEng, cbResumeRus,
		cbContact, cbChangeLang, cbBackMenu,
		cbAdminLangUz, cbAdminLangRu, cbAdminLangEn,
		cbUpdateUz, cbUpdateEng, cbUpdateRus,
		cbSendMessage, cbStatistics, cbUsersList, cbFileInfo,
	}
	for _, key := range expected {
		_, ok := reg.GetCallback(key)
		assert.True(t, ok, "callback %s not registered", key)
	}
	assert.Len(t, reg.ListCallbacks(), len(expected))
	assert.NotNil(t, reg.TextFallback())
}

func TestOnlyPublicCommandsVisible(t *testing.T) {
	h := newTestHandler(t)
	reg := tg.NewRegistry()
	h.Register(reg)

	visible := reg.ListCommands(true)
	names := make([]string, 0, len(visible))
	for _, cmd := range visible {
		names = append(names, cmd.Text)
	}
	assert.ElementsMatch(t, []string{"/start", "/resume"}, names)
}

func TestMenuKeyboardShapes(t *testing.T) {
	markup := mainMenuKeyboard(i18n.English)
	require.Len(t, markup.InlineKeyboard, 4)
	// three resume rows then contact + change language
	assert.Len(t, markup.InlineKeyboard[3], 2)

	admin := adminMenuKeyboard(i18n.Russian)
	require.Len(t, admin.InlineKeyboard, 5)

	lang := languageKeyboard()
	require.Len(t, lang.InlineKeyboard, 1)
	assert.Len(t, lang.InlineKeyboard[0], 3)
}

func TestResumeTokenMapping(t *testing.T) {
	assert.Equal(t, resume.VariantUz, resumeCallbacks[cbResumeUz])
	assert.Equal(t, resume.VariantEng, resumeCallbacks[cbResumeEng])
	assert.Equal(t, resume.VariantRus, resumeCallbacks[cbResumeRus])

	assert.Equal(t, resume.VariantUz, updateCallbacks[cbUpdateUz])
	assert.Equal(t, resume.VariantEng, updateCallbacks[cbUpdateEng])
	assert.Equal(t, resume.VariantRus, updateCallbacks[cbUpdateRus])
}
