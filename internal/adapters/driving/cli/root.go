// Package cli implements the command line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/litigio-labs/consulta-cli/internal/adapters/driven/config"
	"github.com/litigio-labs/consulta-cli/internal/files"
	"github.com/litigio-labs/consulta-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	// cfg is the loaded configuration, available to every command
	// after the persistent pre-run.
	cfg config.Config

	// cfgDir is the resolved config directory.
	cfgDir string

	// logFile is today's log file, closed by Execute when the command
	// finishes.
	logFile *os.File
)

var (
	flagVerbose   bool
	flagConfigDir string
)

var rootCmd = &cobra.Command{
	Use:   "consulta",
	Short: "Batch lookup of judicial case records",
	Long: `consulta looks up judicial case records from the Rama Judicial
consultation service in batch: it reads filing identifiers (radicados)
from an Excel workbook, queries each one, and writes consolidated
reports in several formats.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)

		dir := flagConfigDir
		if dir == "" {
			var err error
			if dir, err = config.DefaultDir(); err != nil {
				return err
			}
		}
		cfgDir = dir

		loaded, err := config.Load(dir)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		cfg = loaded

		// Everything the console shows at info level and above also
		// lands in today's log file, debug included.
		logs := files.NewLogFileManager(cfg.Paths.LogDir)
		if file, err := logs.Open(); err == nil {
			logFile = file
			logger.SetFile(file)
		} else {
			logger.Warn("file logging disabled: %v", err)
		}
		logs.Sweep(daysToDuration(cfg.Retention.LogDays))

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.consulta)")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if logFile != nil {
		logger.SetFile(nil)
		logFile.Close()
		logFile = nil
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func daysToDuration(days int) time.Duration {
	return time.Duration(days) * 24 * time.Hour
}
