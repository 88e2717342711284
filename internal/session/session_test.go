package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumebot/internal/i18n"
	"resumebot/internal/resume"
)

func TestLocaleDefaultsToUzbek(t *testing.T) {
	m := NewManager()
	assert.Equal(t, i18n.Uzbek, m.Locale(1))
	assert.False(t, m.HasLocale(1))
}

func TestSetLocale(t *testing.T) {
	m := NewManager()
	m.SetLocale(1, i18n.Russian)
	assert.Equal(t, i18n.Russian, m.Locale(1))
	assert.True(t, m.HasLocale(1))
	// other users unaffected
	assert.Equal(t, i18n.Uzbek, m.Locale(2))
}

func TestAdminLocaleIndependentOfUserLocale(t *testing.T) {
	m := NewManager()
	m.SetLocale(1, i18n.English)
	m.SetAdminLocale(1, i18n.Russian)
	assert.Equal(t, i18n.English, m.Locale(1))
	assert.Equal(t, i18n.Russian, m.AdminLocale(1))
}

func TestAwaitUploadThenClear(t *testing.T) {
	m := NewManager()
	assert.False(t, m.InProgress(1))

	m.AwaitUpload(1, resume.VariantEng)
	assert.True(t, m.InProgress(1))
	st := m.Admin(1)
	assert.Equal(t, PendingUpload, st.Pending)
	assert.Equal(t, resume.VariantEng, st.Variant)

	m.ClearAdmin(1)
	assert.False(t, m.InProgress(1))
	assert.Equal(t, AdminState{}, m.Admin(1))
}

func TestAwaitBroadcastReplacesUpload(t *testing.T) {
	m := NewManager()
	m.AwaitUpload(1, resume.VariantUz)
	m.AwaitBroadcast(1)

	st := m.Admin(1)
	assert.Equal(t, PendingBroadcast, st.Pending)
	assert.Empty(t, st.Variant)
}

func TestManagerConcurrentAccess(t *testing.T) {
	m := NewManager()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.SetLocale(id, i18n.English)
			m.AwaitUpload(id, resume.VariantRus)
			_ = m.InProgress(id)
			m.ClearAdmin(id)
		}(int64(i))
	}
	wg.Wait()
}
