package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUpsertIsIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := m.UpsertUser(ctx, UpsertParams{UserID: 1, FirstName: "Alice", Language: "uz"})
		require.NoError(t, err)
	}

	n, err := m.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemoryUpsertLastLanguageWins(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.UpsertUser(ctx, UpsertParams{UserID: 1, FirstName: "Alice", Language: "uz"}))
	require.NoError(t, m.UpsertUser(ctx, UpsertParams{UserID: 1, FirstName: "ignored", Language: "ru"}))

	users, err := m.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "ru", users[0].Language)
	// identity fields keep the first-contact values
	assert.Equal(t, "Alice", users[0].FirstName)
}

func TestMemoryActionsAreAppendOnly(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.UpsertUser(ctx, UpsertParams{UserID: 1, FirstName: "Alice", Language: "uz"}))
	require.NoError(t, m.AppendAction(ctx, 1, ActionStart, ""))
	require.NoError(t, m.AppendAction(ctx, 1, ActionDownload, "eng"))
	require.NoError(t, m.AppendAction(ctx, 1, ActionDownload, "eng"))

	assert.Equal(t, 3, m.ActionCount())

	downloads, err := m.CountDownloads(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), downloads)
}

func TestMemoryDownloadAggregateMatchesActions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.UpsertUser(ctx, UpsertParams{UserID: 1, FirstName: "A", Language: "uz"}))
	require.NoError(t, m.UpsertUser(ctx, UpsertParams{UserID: 2, FirstName: "B", Language: "en"}))
	require.NoError(t, m.AppendAction(ctx, 1, ActionDownload, "uz"))
	require.NoError(t, m.AppendAction(ctx, 1, ActionDownload, "rus"))
	require.NoError(t, m.AppendAction(ctx, 2, ActionBroadcast, ""))

	users, err := m.ListUsers(ctx)
	require.NoError(t, err)

	perUser := make(map[int64]int64)
	var total int64
	for _, u := range users {
		perUser[u.UserID] = u.Downloads
		total += u.Downloads
	}
	assert.Equal(t, int64(2), perUser[1])
	assert.Equal(t, int64(0), perUser[2])

	downloads, err := m.CountDownloads(ctx)
	require.NoError(t, err)
	assert.Equal(t, downloads, total)
}

func TestMemoryUserIDsSorted(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	for _, id := range []int64{5, 1, 9} {
		require.NoError(t, m.UpsertUser(ctx, UpsertParams{UserID: id, FirstName: "u", Language: "uz"}))
	}

	ids, err := m.UserIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 5, 9}, ids)
}
