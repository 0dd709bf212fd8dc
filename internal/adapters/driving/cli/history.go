package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/litigio-labs/consulta-cli/internal/adapters/driven/storage/sqlite"
	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past runs",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run's per-case outcomes",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "how many runs to list")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistory() (*sqlite.Store, error) {
	store, err := sqlite.NewStore(cfg.Paths.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open run history: %w", err)
	}
	return store, nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(cmd.Context(), flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s  %s\n",
			styleTitle.Render(run.ID),
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			styleMuted.Render(run.InputFile))
		cmd.Printf("  total %d, success %d, private %d, not found %d, failed %d (%.1f%%), took %s\n",
			run.Stats.Total, run.Stats.Succeeded, run.Stats.Private,
			run.Stats.NotFound, run.Stats.Failed, run.Stats.SuccessRate(),
			run.Duration().Round(time.Second))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	run, records, err := store.GetRun(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("Run %s (%s, %s)\n\n",
		run.ID, run.InputFile, run.StartedAt.Local().Format("2006-01-02 15:04"))

	for _, record := range records {
		style := styleForStatus(record.Status)
		cmd.Printf("%s  %s\n", record.Identifier, style.Render(string(record.Status)))
		if record.Status == domain.StatusSuccess || record.Status == domain.StatusPrivate {
			cmd.Printf("  %s / %s\n", record.Court, record.Department)
		}
	}
	return nil
}
