package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumebot/internal/storage"
)

// failingStore fails every operation, to verify the swallow policy.
type failingStore struct{}

var errDown = errors.New("connection refused")

func (failingStore) UpsertUser(context.Context, storage.UpsertParams) error { return errDown }
func (failingStore) AppendAction(context.Context, int64, string, string) error {
	return errDown
}
func (failingStore) ListUsers(context.Context) ([]storage.User, error) { return nil, errDown }
func (failingStore) UserIDs(context.Context) ([]int64, error)          { return nil, errDown }
func (failingStore) CountUsers(context.Context) (int64, error)         { return 0, errDown }
func (failingStore) CountDownloads(context.Context) (int64, error)     { return 0, errDown }

func TestServiceSwallowsStoreFailures(t *testing.T) {
	svc := New(failingStore{})
	ctx := context.Background()

	// must not panic or propagate errors
	svc.RegisterVisit(ctx, storage.UpsertParams{UserID: 1, FirstName: "A", Language: "uz"})
	svc.RecordAction(ctx, 1, storage.ActionDownload, "eng")

	assert.Nil(t, svc.Users(ctx))
	assert.Nil(t, svc.Recipients(ctx))
	assert.Equal(t, Stats{}, svc.Stats(ctx))
}

func TestServicePassesThroughOnSuccess(t *testing.T) {
	mem := storage.NewMemory()
	svc := New(mem)
	ctx := context.Background()

	svc.RegisterVisit(ctx, storage.UpsertParams{UserID: 7, FirstName: "Alice", Language: "en"})
	svc.RecordAction(ctx, 7, storage.ActionDownload, "eng")

	users := svc.Users(ctx)
	assert.Len(t, users, 1)
	assert.Equal(t, []int64{7}, svc.Recipients(ctx))

	st := svc.Stats(ctx)
	assert.Equal(t, int64(1), st.Users)
	assert.Equal(t, int64(1), st.Downloads)
}
