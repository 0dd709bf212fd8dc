package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/litigio-labs/consulta-cli/internal/adapters/driven/input"
	"github.com/litigio-labs/consulta-cli/internal/adapters/driven/reports"
	"github.com/litigio-labs/consulta-cli/internal/adapters/driven/storage/sqlite"
	"github.com/litigio-labs/consulta-cli/internal/connectors/ramajudicial"
	"github.com/litigio-labs/consulta-cli/internal/core/domain"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driven"
	"github.com/litigio-labs/consulta-cli/internal/core/ports/driving"
	"github.com/litigio-labs/consulta-cli/internal/core/services"
	"github.com/litigio-labs/consulta-cli/internal/files"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

var (
	flagInput       string
	flagOutput      string
	flagFormats     []string
	flagNoRateLimit bool
	flagYes         bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a batch lookup from an Excel workbook",
	Long: `Reads filing identifiers from column A of the given workbook
(first sheet, starting at row 2), looks each one up against the
consultation service, and writes consolidated reports.

The lookup is deliberately slow: calls are rate limited and spaced out
to stay within the service's tolerance. Interrupting the run (Ctrl-C)
keeps the results gathered so far.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Excel workbook with identifiers (required)")
	_ = runCmd.MarkFlagRequired("input")
	runCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output directory (default from config)")
	runCmd.Flags().StringSliceVar(&flagFormats, "formats", nil, "report formats: txt, csv, json, xlsx (default from config)")
	runCmd.Flags().BoolVar(&flagNoRateLimit, "no-rate-limit", false, "disable client-side rate limiting")
	runCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	outputDir := cfg.Paths.OutputDir
	if flagOutput != "" {
		outputDir = flagOutput
	}
	formats := cfg.Reports.Formats
	if len(flagFormats) > 0 {
		formats = flagFormats
	}

	writers, err := reports.NewWriters(formats)
	if err != nil {
		return err
	}

	identifiers, err := input.NewXLSXReader().Read(flagInput)
	if err != nil {
		return err
	}

	// Reports land in outputDir, so that is the volume to check.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outputDir, err)
	}
	if err := files.CheckDiskSpace(outputDir, cfg.Retention.MinFreeDiskMB); err != nil {
		return err
	}

	cmd.Println(styleTitle.Render("Consulta de Procesos Judiciales"))
	cmd.Printf("Identifiers to look up: %d\n", len(identifiers))
	cmd.Printf("Estimated duration:     %s\n", estimateDuration(len(identifiers)))
	cmd.Printf("Output directory:       %s\n", outputDir)
	cmd.Printf("Formats:                %s\n\n", strings.Join(formats, ", "))

	if !flagYes && !confirm(cmd) {
		cmd.Println("Aborted.")
		return nil
	}

	// Snapshot the workbook before the first lookup so the run's exact
	// input survives later edits.
	backups := files.NewBackupManager(cfg.Paths.BackupDir)
	backupFiles(backups, flagInput)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rpm := cfg.API.RequestsPerMinute
	if flagNoRateLimit {
		rpm = 0
		logger.Warn("rate limiting disabled for this run")
	}
	client := ramajudicial.NewClient(ramajudicial.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		RequestsPerMinute: rpm,
	})
	defer client.Close()

	runner := services.NewBatchRunner(
		services.NewAssembler(client),
		&consoleProgress{out: cmd.OutOrStdout()},
	)

	startedAt := time.Now()
	records, stats, runErr := runner.Run(ctx, identifiers)
	finishedAt := time.Now()

	aborted := errors.Is(runErr, domain.ErrRunAborted)
	if runErr != nil && !aborted {
		return runErr
	}
	if aborted {
		cmd.Println(styleWarning.Render("\nRun interrupted, keeping partial results."))
	}
	if len(records) == 0 {
		cmd.Println("No records to report.")
		return nil
	}

	written, err := writeReports(writers, outputDir, records, stats)
	if err != nil {
		return err
	}
	for _, path := range written {
		cmd.Printf("Report written: %s\n", path)
	}

	backupFiles(backups, written...)
	backups.Sweep(daysToDuration(cfg.Retention.BackupDays))

	saveHistory(cmd, domain.Run{
		ID:         uuid.NewString(),
		InputFile:  flagInput,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Stats:      stats,
	}, records)

	cmd.Println()
	cmd.Println(renderSummary(stats, finishedAt.Sub(startedAt)))
	return nil
}

// confirm asks the operator to proceed. Anything but y/yes declines.
func confirm(cmd *cobra.Command) bool {
	cmd.Print("Proceed with the lookup? [y/N]: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si", "sí":
		return true
	}
	return false
}

// estimateDuration predicts the wall-clock length of a batch from the
// per-case pauses. It is an estimate for the operator, not a promise.
func estimateDuration(count int) time.Duration {
	// Roughly: one second before the detail call plus three seconds
	// between cases, per identifier.
	perCase := 4 * time.Second
	return (time.Duration(count) * perCase).Round(time.Second)
}

func writeReports(writers []driven.ReportWriter, dir string, records []domain.CaseRecord, stats domain.RunStatistics) ([]string, error) {
	paths := make([]string, 0, len(writers))
	for _, writer := range writers {
		path, err := writer.Write(dir, records, stats)
		if err != nil {
			return nil, fmt.Errorf("write %s report: %w", writer.Format(), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// backupFiles copies each file into the backup directory. Backup
// failures are logged, never fatal.
func backupFiles(backups *files.BackupManager, paths ...string) {
	for _, path := range paths {
		if _, err := backups.Backup(path); err != nil {
			logger.Warn("backup failed for %s: %v", path, err)
		}
	}
}

// saveHistory records the run in the history database. History is
// best effort: a storage failure is reported but the reports on disk
// are the source of truth.
func saveHistory(cmd *cobra.Command, run domain.Run, records []domain.CaseRecord) {
	store, err := sqlite.NewStore(cfg.Paths.DataDir)
	if err != nil {
		logger.Warn("run history unavailable: %v", err)
		return
	}
	defer store.Close()

	if err := store.SaveRun(cmd.Context(), run, records); err != nil {
		logger.Warn("could not record run history: %v", err)
		return
	}
	logger.Info("run recorded in history as %s", run.ID)
}

// renderSummary draws the final statistics box.
func renderSummary(stats domain.RunStatistics, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Run summary") + "\n")
	fmt.Fprintf(&b, "Total:       %d\n", stats.Total)
	fmt.Fprintf(&b, "%s   %d\n", styleSuccess.Render("Success:"), stats.Succeeded)
	fmt.Fprintf(&b, "%s   %d\n", styleWarning.Render("Private:"), stats.Private)
	fmt.Fprintf(&b, "%s %d\n", styleWarning.Render("Not found:"), stats.NotFound)
	fmt.Fprintf(&b, "%s    %d\n", styleError.Render("Failed:"), stats.Failed)
	fmt.Fprintf(&b, "Success rate: %.1f%%\n", stats.SuccessRate())
	b.WriteString(styleMuted.Render(fmt.Sprintf("Elapsed: %s", elapsed.Round(time.Second))))
	return styleSummaryBox.Render(b.String())
}

// consoleProgress renders per-case progress lines.
type consoleProgress struct {
	out io.Writer
}

var _ driving.ProgressSink = (*consoleProgress)(nil)

func (p *consoleProgress) CaseStarted(index, total int, identifier string) {
	fmt.Fprintf(p.out, "%s %s\n",
		styleMuted.Render(fmt.Sprintf("[%d/%d]", index, total)), identifier)
}

func (p *consoleProgress) CaseFinished(index, total int, record domain.CaseRecord) {
	style := styleForStatus(record.Status)
	fmt.Fprintf(p.out, "%s %s -> %s\n",
		styleMuted.Render(fmt.Sprintf("[%d/%d]", index, total)),
		record.Identifier,
		style.Render(string(record.Status)))
}
