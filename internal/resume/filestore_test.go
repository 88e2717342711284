package resume

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	return s
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		got, ok := ParseVariant(string(v))
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
	_, ok := ParseVariant("de")
	assert.False(t, ok)
}

func TestStoreExistsAndStat(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.Exists(VariantUz))
	_, err := s.Stat(VariantUz)
	assert.Error(t, err)

	info, err := s.Replace(VariantUz, strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("pdf-bytes")), info.Size)

	assert.True(t, s.Exists(VariantUz))
	assert.False(t, s.Exists(VariantEng))
}

func TestReplaceOverwritesPrevious(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Replace(VariantEng, strings.NewReader("old"))
	require.NoError(t, err)
	_, err = s.Replace(VariantEng, strings.NewReader("new-content"))
	require.NoError(t, err)

	data, err := os.ReadFile(s.Path(VariantEng))
	require.NoError(t, err)
	assert.Equal(t, "new-content", string(data))
}

func TestReplaceLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Replace(VariantRus, strings.NewReader("content"))
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Dir(s.Path(VariantRus)))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(s.Path(VariantRus)), entries[0].Name())
}

func TestReplaceUnknownVariant(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Replace(Variant("de"), strings.NewReader("x"))
	assert.Error(t, err)
}

func TestReplaceFailureKeepsOldFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Replace(VariantUz, strings.NewReader("stable"))
	require.NoError(t, err)

	_, err = s.Replace(VariantUz, failingReader{})
	require.Error(t, err)

	data, err := os.ReadFile(s.Path(VariantUz))
	require.NoError(t, err)
	assert.Equal(t, "stable", string(data))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, os.ErrClosed }
