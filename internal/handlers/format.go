package handlers

import (
	"fmt"
	"strings"
)

// maxListChunkLen keeps chunked listings under Telegram's 4096-char
// message limit with headroom for the header line.
const maxListChunkLen = 3500

// chunkLines joins lines into newline-separated chunks of at most limit
// characters each. A single oversized line becomes its own chunk rather
// than being split mid-line.
func chunkLines(lines []string, limit int) []string {
	if len(lines) == 0 {
		return []string{""}
	}

	var chunks []string
	var b strings.Builder
	for _, line := range lines {
		if b.Len() > 0 && b.Len()+1+len(line) > limit {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}

// formatSize renders a byte count in a human-friendly unit.
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMG"[exp])
}
