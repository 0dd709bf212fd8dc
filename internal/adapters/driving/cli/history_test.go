package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litigio-labs/consulta-cli/internal/adapters/driven/storage/sqlite"
	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

func TestHistoryCmd(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		out, err := execute(t, t.TempDir(), "history")

		require.NoError(t, err)
		assert.Contains(t, out, "No runs recorded yet.")
	})

	t.Run("lists and shows a recorded run", func(t *testing.T) {
		dir := t.TempDir()

		// Seed the history the way a finished run would.
		record := domain.NewCaseRecord("11001310300120200012300", domain.StatusSuccess)
		record.Court = "JUZGADO 001 CIVIL DEL CIRCUITO"
		record.Department = "BOGOTÁ"
		var stats domain.RunStatistics
		stats.Record(record.Status)
		run := domain.Run{
			ID:         uuid.NewString(),
			InputFile:  "radicados.xlsx",
			StartedAt:  time.Now().Add(-time.Minute),
			FinishedAt: time.Now(),
			Stats:      stats,
		}

		// The CLI keeps history under the config dir's data directory.
		store, err := sqlite.NewStore(filepath.Join(dir, "data"))
		require.NoError(t, err)
		require.NoError(t, store.SaveRun(context.Background(), run, []domain.CaseRecord{record}))
		require.NoError(t, store.Close())

		out, err := execute(t, dir, "history")
		require.NoError(t, err)
		assert.Contains(t, out, run.ID)
		assert.Contains(t, out, "radicados.xlsx")

		out, err = execute(t, dir, "history", "show", run.ID)
		require.NoError(t, err)
		assert.Contains(t, out, "11001310300120200012300")
		assert.Contains(t, out, "JUZGADO 001 CIVIL DEL CIRCUITO")
	})
}
