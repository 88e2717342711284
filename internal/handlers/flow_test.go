package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"resumebot/internal/i18n"
	"resumebot/internal/resume"
	"resumebot/internal/service"
	"resumebot/internal/session"
	"resumebot/internal/storage"
)

// chatContext is a recording tele.Context stub. Only the methods the
// handlers touch are implemented; anything else panics via the embedded
// nil interface, which would flag an unexpected dependency.
type chatContext struct {
	tele.Context
	sender *tele.User
	text   string
	kv     map[string]any

	sent     []any
	edits    []any
	responds []*tele.CallbackResponse
}

func newChatContext(id int64, name string) *chatContext {
	return &chatContext{
		sender: &tele.User{ID: id, FirstName: name},
		kv:     make(map[string]any),
	}
}

func (c *chatContext) Sender() *tele.User { return c.sender }
func (c *chatContext) Chat() *tele.Chat {
	return &tele.Chat{ID: c.sender.ID, Type: tele.ChatPrivate}
}
func (c *chatContext) Update() tele.Update      { return tele.Update{ID: 1} }
func (c *chatContext) Text() string             { return c.text }
func (c *chatContext) Message() *tele.Message   { return nil }
func (c *chatContext) Callback() *tele.Callback { return nil }
func (c *chatContext) Get(key string) any       { return c.kv[key] }
func (c *chatContext) Set(key string, v any)    { c.kv[key] = v }

func (c *chatContext) Send(what any, _ ...any) error {
	c.sent = append(c.sent, what)
	return nil
}

func (c *chatContext) Edit(what any, _ ...any) error {
	c.edits = append(c.edits, what)
	return nil
}

func (c *chatContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		resp = []*tele.CallbackResponse{{}}
	}
	c.responds = append(c.responds, resp...)
	return nil
}

const operatorID int64 = 99

func newFlowFixture(t *testing.T) (*Handler, *storage.Memory, *resume.Store, *session.Manager) {
	t.Helper()
	mem := storage.NewMemory()
	resumes, err := resume.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	sessions := session.NewManager()
	h := New(service.New(mem), sessions, resumes, operatorID, ContactLinks{})
	return h, mem, resumes, sessions
}

func TestStartRegistersUserAndShowsPicker(t *testing.T) {
	h, mem, _, _ := newFlowFixture(t)
	c := newChatContext(7, "Alice")

	require.NoError(t, h.onStart(c))

	users, err := mem.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "uz", users[0].Language)
	assert.Equal(t, 1, mem.ActionCount())

	require.Len(t, c.sent, 2)
	assert.Contains(t, c.sent[0].(string), "Alice")
	assert.Equal(t, i18n.T(i18n.Uzbek, "choose_language"), c.sent[1])
}

func TestLanguageCommitPersistsAndRendersMenu(t *testing.T) {
	h, mem, _, sessions := newFlowFixture(t)
	c := newChatContext(7, "Alice")

	require.NoError(t, h.onLanguage(i18n.Russian)(c))

	assert.Equal(t, i18n.Russian, sessions.Locale(7))
	users, err := mem.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ru", users[0].Language)

	require.Len(t, c.edits, 1)
	assert.Equal(t, i18n.T(i18n.Russian, "main_menu"), c.edits[0])
}

func TestResumeDeliveryRecordsDownload(t *testing.T) {
	h, mem, resumes, sessions := newFlowFixture(t)
	sessions.SetLocale(7, i18n.English)
	_, err := resumes.Replace(resume.VariantEng, strings.NewReader("pdf-bytes"))
	require.NoError(t, err)

	c := newChatContext(7, "Alice")
	require.NoError(t, h.onResumeDelivery(resume.VariantEng)(c))

	require.Len(t, c.sent, 1)
	doc, ok := c.sent[0].(*tele.Document)
	require.True(t, ok, "expected a document, got %T", c.sent[0])
	assert.Equal(t, "application/pdf", doc.MIME)

	downloads, err := mem.CountDownloads(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), downloads)

	require.Len(t, c.edits, 1)
	assert.Equal(t, i18n.T(i18n.English, "resume_sent"), c.edits[0])
}

func TestResumeDeliveryMissingVariant(t *testing.T) {
	h, mem, _, sessions := newFlowFixture(t)
	sessions.SetLocale(7, i18n.English)

	c := newChatContext(7, "Alice")
	require.NoError(t, h.onResumeDelivery(resume.VariantRus)(c))

	assert.Empty(t, c.sent)
	require.Len(t, c.edits, 1)
	assert.Equal(t, i18n.T(i18n.English, "resume_missing"), c.edits[0])

	// no action row for a failed delivery
	assert.Equal(t, 0, mem.ActionCount())
	downloads, err := mem.CountDownloads(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), downloads)
}

func TestAdminCallbacksRejectNonOperator(t *testing.T) {
	h, _, _, sessions := newFlowFixture(t)

	inner := false
	guarded := h.guardAdmin(func(tele.Context) error {
		inner = true
		return nil
	})

	c := newChatContext(7, "Mallory")
	require.NoError(t, guarded(c))

	assert.False(t, inner, "guarded handler must not run for a non-operator")
	require.Len(t, c.responds, 1)
	assert.True(t, c.responds[0].ShowAlert)
	assert.Equal(t, i18n.T(i18n.Uzbek, "no_access"), c.responds[0].Text)
	assert.False(t, sessions.InProgress(7))
}

func TestAdminCallbacksPassOperatorThrough(t *testing.T) {
	h, _, _, _ := newFlowFixture(t)

	inner := false
	guarded := h.guardAdmin(func(tele.Context) error {
		inner = true
		return nil
	})

	c := newChatContext(operatorID, "Op")
	require.NoError(t, guarded(c))
	assert.True(t, inner)
	assert.Empty(t, c.responds)
}
