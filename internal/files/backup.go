package files

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/litigio-labs/consulta-cli/internal/logger"
)

// backupTimestampLayout matches the report file timestamps.
const backupTimestampLayout = "20060102_150405"

// BackupManager copies important files into the backup directory and
// sweeps out stale copies.
type BackupManager struct {
	dir string

	now func() time.Time
}

// NewBackupManager creates a backup manager rooted at dir.
func NewBackupManager(dir string) *BackupManager {
	return &BackupManager{dir: dir, now: time.Now}
}

// Backup copies the file at path into the backup directory under a
// timestamped name and returns the backup's path.
func (m *BackupManager) Backup(path string) (string, error) {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", fmt.Errorf("create backup directory %s: %w", m.dir, err)
	}

	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s for backup: %w", path, err)
	}
	defer src.Close()

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	name := fmt.Sprintf("%s_backup_%s%s", stem, m.now().Format(backupTimestampLayout), ext)
	target := filepath.Join(m.dir, name)

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create backup %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("copy %s to backup: %w", path, err)
	}

	logger.Info("backup created: %s", target)
	return target, nil
}

// Sweep removes backups older than maxAge and returns how many were
// removed. A sweep failure is logged, not fatal; housekeeping never
// blocks a run.
func (m *BackupManager) Sweep(maxAge time.Duration) int {
	return sweepOldFiles(m.dir, "*_backup_*", maxAge, m.now())
}

// sweepOldFiles removes files in dir matching pattern whose
// modification time is older than maxAge before now.
func sweepOldFiles(dir, pattern string, maxAge time.Duration, now time.Time) int {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		logger.Error("sweep glob failed in %s: %v", dir, err)
		return 0
	}

	cutoff := now.Add(-maxAge)
	removed := 0
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				logger.Warn("could not remove stale file %s: %v", path, err)
				continue
			}
			removed++
			logger.Debug("removed stale file %s", path)
		}
	}

	if removed > 0 {
		logger.Info("removed %d stale files from %s", removed, dir)
	}
	return removed
}
