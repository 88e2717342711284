package resume

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"log/slog"

	"resumebot/core/logger"
)

// FileInfo describes a stored resume blob.
type FileInfo struct {
	Size    int64
	ModTime time.Time
}

// Store keeps the resume PDFs in a single directory, one fixed path per
// variant. Replacement is atomic: readers either see the old file or the
// new one, never a partial write.
type Store struct {
	dir   string
	paths map[Variant]string
}

// NewStore builds a Store over dir with the given per-variant file names.
func NewStore(dir string, names map[Variant]string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("resume: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("resume: create dir: %w", err)
	}
	paths := make(map[Variant]string, len(Variants()))
	for _, v := range Variants() {
		name := names[v]
		if name == "" {
			name = "resume_" + string(v) + ".pdf"
		}
		paths[v] = filepath.Join(dir, name)
	}
	return &Store{dir: dir, paths: paths}, nil
}

// Path returns the on-disk location for a variant.
func (s *Store) Path(v Variant) string {
	return s.paths[v]
}

// Exists reports whether the variant's file is present and regular.
func (s *Store) Exists(v Variant) bool {
	info, err := os.Stat(s.paths[v])
	return err == nil && info.Mode().IsRegular()
}

// Stat returns size and mtime for a variant's file.
func (s *Store) Stat(v Variant) (FileInfo, error) {
	info, err := os.Stat(s.paths[v])
	if err != nil {
		return FileInfo{}, err
	}
	return FileInfo{Size: info.Size(), ModTime: info.ModTime()}, nil
}

// Replace swaps in new content for a variant. The content is written to
// a temp file in the same directory, synced, then renamed over the
// target so the swap is atomic on POSIX filesystems.
func (s *Store) Replace(v Variant, r io.Reader) (FileInfo, error) {
	target, ok := s.paths[v]
	if !ok {
		return FileInfo{}, fmt.Errorf("resume: unknown variant %q", v)
	}

	tmp, err := os.CreateTemp(s.dir, "."+string(v)+"-*.tmp")
	if err != nil {
		return FileInfo{}, fmt.Errorf("resume: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	written, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return FileInfo{}, fmt.Errorf("resume: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return FileInfo{}, fmt.Errorf("resume: sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return FileInfo{}, fmt.Errorf("resume: close temp: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return FileInfo{}, fmt.Errorf("resume: rename: %w", err)
	}

	logger.L.Info("resume.replaced",
		slog.String("variant", string(v)),
		slog.String("path", target),
		slog.Int64("size_bytes", written),
	)

	info, err := s.Stat(v)
	if err != nil {
		return FileInfo{Size: written, ModTime: time.Now()}, nil
	}
	return info, nil
}
