package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
telegram:
  token: "123:abc"
  admin_id: 99
  run_mode: longpoll
database:
  host: localhost
  port: "5432"
  user: bot
  password: secret
  name: resumebot
  sslmode: disable
resume:
  dir: /var/lib/resumebot
contact:
  telegram_url: https://t.me/example
digest:
  enabled: true
  at: "09:00"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Core.Telegram.AdminID)
	assert.Equal(t, "longpoll", cfg.Core.Telegram.RunMode)
	assert.Equal(t, "resumebot", cfg.Database.Name)
	assert.Equal(t, "/var/lib/resumebot", cfg.Resume.Dir)
	assert.Equal(t, "https://t.me/example", cfg.Contact.TelegramURL)
	assert.True(t, cfg.Digest.Enabled)
}

func TestLoadConfigDefaultsResumeDir(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
telegram:
  token: "123:abc"
  admin_id: 99
`))
	require.NoError(t, err)
	assert.Equal(t, "resumes", cfg.Resume.Dir)
	assert.False(t, cfg.Digest.Enabled)
}

func TestLoadConfigRequiresAdminID(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
telegram:
  token: "123:abc"
`))
	assert.Error(t, err)
}

func TestLoadConfigDigestNeedsTime(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
telegram:
  token: "123:abc"
  admin_id: 99
digest:
  enabled: true
`))
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
