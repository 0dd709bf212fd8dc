package files

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// logFilePrefix starts every log file name; one file per calendar day.
const logFilePrefix = "consulta_procesos"

// LogFileManager owns the day-stamped log files.
type LogFileManager struct {
	dir string

	now func() time.Time
}

// NewLogFileManager creates a log file manager rooted at dir.
func NewLogFileManager(dir string) *LogFileManager {
	return &LogFileManager{dir: dir, now: time.Now}
}

// Open opens (appending) today's log file, creating the directory and
// file if needed. The caller owns the returned file.
func (m *LogFileManager) Open() (*os.File, error) {
	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", m.dir, err)
	}

	name := fmt.Sprintf("%s_%s.log", logFilePrefix, m.now().Format("20060102"))
	path := filepath.Join(m.dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}

// Sweep removes log files older than maxAge and returns how many were
// removed.
func (m *LogFileManager) Sweep(maxAge time.Duration) int {
	return sweepOldFiles(m.dir, "*.log", maxAge, m.now())
}
