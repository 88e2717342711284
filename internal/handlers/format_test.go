package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkLinesSingleChunk(t *testing.T) {
	chunks := chunkLines([]string{"a", "b", "c"}, 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "a\nb\nc", chunks[0])
}

func TestChunkLinesSplitsAtLimit(t *testing.T) {
	lines := []string{
		strings.Repeat("x", 40),
		strings.Repeat("y", 40),
		strings.Repeat("z", 40),
	}
	chunks := chunkLines(lines, 90)
	require.Len(t, chunks, 2)
	assert.Equal(t, lines[0]+"\n"+lines[1], chunks[0])
	assert.Equal(t, lines[2], chunks[1])
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 90)
	}
}

func TestChunkLinesOversizedLineKeptWhole(t *testing.T) {
	long := strings.Repeat("x", 200)
	chunks := chunkLines([]string{"a", long, "b"}, 50)
	require.Len(t, chunks, 3)
	assert.Equal(t, long, chunks[1])
}

func TestChunkLinesEmpty(t *testing.T) {
	chunks := chunkLines(nil, 50)
	require.Len(t, chunks, 1)
	assert.Equal(t, "", chunks[0])
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatSize(tc.in), "input %d", tc.in)
	}
}
