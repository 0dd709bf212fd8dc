package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupManager_Backup(t *testing.T) {
	t.Run("copies the file under a timestamped name", func(t *testing.T) {
		srcDir := t.TempDir()
		src := filepath.Join(srcDir, "resultados.csv")
		require.NoError(t, os.WriteFile(src, []byte("radicado,status\n"), 0644))

		manager := NewBackupManager(filepath.Join(srcDir, "backups"))
		manager.now = func() time.Time { return time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC) }

		target, err := manager.Backup(src)

		require.NoError(t, err)
		assert.Equal(t, "resultados_backup_20260828_143005.csv", filepath.Base(target))

		copied, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "radicado,status\n", string(copied))
	})

	t.Run("missing source is an error", func(t *testing.T) {
		manager := NewBackupManager(t.TempDir())

		_, err := manager.Backup(filepath.Join(t.TempDir(), "missing.csv"))

		assert.Error(t, err)
	})
}

func TestBackupManager_Sweep(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	stale := filepath.Join(dir, "resultados_backup_20260701_000000.csv")
	fresh := filepath.Join(dir, "resultados_backup_20260828_000000.csv")
	unrelated := filepath.Join(dir, "notas.txt")
	for _, path := range []string{stale, fresh, unrelated} {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	// Age the stale backup and the unrelated file past the cutoff.
	old := now.Add(-40 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(unrelated, old, old))

	removed := NewBackupManager(dir).Sweep(30 * 24 * time.Hour)

	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
	assert.FileExists(t, unrelated, "sweep must only touch backup files")
}

func TestLogFileManager_Open(t *testing.T) {
	t.Run("creates the day-stamped file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		manager := NewLogFileManager(dir)
		manager.now = func() time.Time { return time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC) }

		file, err := manager.Open()

		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "consulta_procesos_20260828.log", filepath.Base(file.Name()))
	})

	t.Run("appends across opens", func(t *testing.T) {
		manager := NewLogFileManager(t.TempDir())

		first, err := manager.Open()
		require.NoError(t, err)
		_, err = first.WriteString("uno\n")
		require.NoError(t, err)
		require.NoError(t, first.Close())

		second, err := manager.Open()
		require.NoError(t, err)
		_, err = second.WriteString("dos\n")
		require.NoError(t, err)
		require.NoError(t, second.Close())

		content, err := os.ReadFile(first.Name())
		require.NoError(t, err)
		assert.Equal(t, "uno\ndos\n", string(content))
	})
}

func TestLogFileManager_Sweep(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	stale := filepath.Join(dir, "consulta_procesos_20260801.log")
	fresh := filepath.Join(dir, "consulta_procesos_20260828.log")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0644))
	old := now.Add(-10 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	removed := NewLogFileManager(dir).Sweep(7 * 24 * time.Hour)

	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
}

func TestCheckDiskSpace(t *testing.T) {
	t.Run("passes with a tiny requirement", func(t *testing.T) {
		assert.NoError(t, CheckDiskSpace(t.TempDir(), 1))
	})

	t.Run("fails with an absurd requirement", func(t *testing.T) {
		err := CheckDiskSpace(t.TempDir(), 1<<40)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "insufficient disk space")
	})
}
