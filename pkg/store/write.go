package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const backupStamp = "20060102T150405"

// WriteAtomic replaces path with data as a whole-document write: the
// bytes land in a sibling temp file first and are renamed into place,
// so a reader never observes a half-written document.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: ensure directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("store: replace %s: %w", path, err)
	}
	return nil
}

// BackupFile copies path to a sibling carrying a timestamp suffix and
// returns the backup location. The second-resolution suffix is
// collision-safe for user-paced saves. A missing source is not an
// error; there is nothing to preserve.
func BackupFile(path string, now time.Time) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("store: open %s: %w", path, err)
	}
	defer src.Close()

	backup := fmt.Sprintf("%s.bak.%s", path, now.Format(backupStamp))
	dst, err := os.Create(backup)
	if err != nil {
		return "", fmt.Errorf("store: create backup %s: %w", backup, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("store: copy to %s: %w", backup, err)
	}
	return backup, nil
}

// ReadFile loads a document, mapping absence to empty bytes so callers
// can synthesize a fresh document.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	return data, nil
}
