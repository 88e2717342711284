package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumebot/internal/service"
	"resumebot/internal/storage"
)

type captureNotifier struct {
	userID int64
	texts  []string
}

func (n *captureNotifier) Notify(userID int64, text string) error {
	n.userID = userID
	n.texts = append(n.texts, text)
	return nil
}

func TestParseAt(t *testing.T) {
	hour, minute, err := parseAt("09:30")
	require.NoError(t, err)
	assert.Equal(t, uint(9), hour)
	assert.Equal(t, uint(30), minute)

	_, _, err = parseAt("25:00")
	assert.Error(t, err)
	_, _, err = parseAt("morning")
	assert.Error(t, err)
}

func TestNewDigestRejectsBadTime(t *testing.T) {
	svc := service.New(storage.NewMemory())
	_, err := NewDigest(svc, &captureNotifier{}, 99, "not-a-time")
	assert.Error(t, err)
}

func TestDigestRunSendsStats(t *testing.T) {
	mem := storage.NewMemory()
	svc := service.New(mem)
	notifier := &captureNotifier{}

	d, err := NewDigest(svc, notifier, 99, "08:00")
	require.NoError(t, err)
	t.Cleanup(d.Stop)

	d.run()

	assert.Equal(t, int64(99), notifier.userID)
	require.Len(t, notifier.texts, 1)
	assert.Contains(t, notifier.texts[0], "0")
}
