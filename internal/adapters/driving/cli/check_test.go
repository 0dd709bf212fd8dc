package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCheckCmd(t *testing.T) {
	t.Run("passes on a fresh environment", func(t *testing.T) {
		out, err := execute(t, t.TempDir(), "check")

		require.NoError(t, err)
		assert.Contains(t, out, "All checks passed.")
	})

	t.Run("validates a workbook", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "radicados.xlsx")
		workbook := excelize.NewFile()
		sheet := workbook.GetSheetName(0)
		require.NoError(t, workbook.SetCellValue(sheet, "A1", "Número de Radicación"))
		require.NoError(t, workbook.SetCellValue(sheet, "A2", "11001310300120200012300"))
		require.NoError(t, workbook.SetCellValue(sheet, "A3", "abc"))
		require.NoError(t, workbook.SaveAs(path))
		require.NoError(t, workbook.Close())

		out, err := execute(t, dir, "check", "--input", path)

		require.NoError(t, err)
		assert.Contains(t, out, "2 identifiers, 1 invalid")
	})

	t.Run("fails when the workbook is missing", func(t *testing.T) {
		dir := t.TempDir()

		out, err := execute(t, dir, "check", "--input", filepath.Join(dir, "missing.xlsx"))

		require.Error(t, err)
		assert.Contains(t, out, "FAIL")
	})
}
