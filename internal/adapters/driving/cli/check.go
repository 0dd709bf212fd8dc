package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/litigio-labs/consulta-cli/internal/adapters/driven/input"
	"github.com/litigio-labs/consulta-cli/internal/files"
)

var flagCheckInput string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the environment before a run",
	Long: `Verifies the configuration, the output directories, disk space
and, when --input is given, the workbook's identifiers - without
touching the consultation service.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&flagCheckInput, "input", "i", "", "Excel workbook to validate")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	failures := 0
	report := func(name string, err error) {
		if err != nil {
			failures++
			cmd.Printf("%s %s: %v\n", styleError.Render("FAIL"), name, err)
			return
		}
		cmd.Printf("%s %s\n", styleSuccess.Render("ok  "), name)
	}

	report("configuration", cfg.Validate())
	report("output directory", checkWritableDir(cfg.Paths.OutputDir))
	report("backup directory", checkWritableDir(cfg.Paths.BackupDir))
	report("log directory", checkWritableDir(cfg.Paths.LogDir))
	report("disk space", files.CheckDiskSpace(cfg.Paths.OutputDir, cfg.Retention.MinFreeDiskMB))

	if flagCheckInput != "" {
		report("input workbook", checkWorkbook(cmd, flagCheckInput))
	}

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}
	cmd.Println("\nAll checks passed.")
	return nil
}

// checkWritableDir verifies dir exists (creating it if needed) and is
// writable, via a throwaway file.
func checkWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".consulta_write_check")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return err
	}
	return os.Remove(probe)
}

// checkWorkbook scans the workbook and reports how many identifiers
// are usable. A run would drop the invalid ones.
func checkWorkbook(cmd *cobra.Command, path string) error {
	valid, invalid, err := input.NewXLSXReader().Scan(path)
	if err != nil {
		return err
	}

	for _, raw := range invalid {
		cmd.Printf("     %s invalid identifier %q\n", styleWarning.Render("warn"), raw)
	}

	cmd.Printf("     %d identifiers, %d invalid\n", len(valid)+len(invalid), len(invalid))
	if len(valid) == 0 {
		return errors.New("no valid identifiers in workbook")
	}
	return nil
}
