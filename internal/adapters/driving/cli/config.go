package cli

import (
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/litigio-labs/consulta-cli/internal/adapters/driven/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encode configuration: %w", err)
		}
		cmd.Println(styleMuted.Render("# " + filepath.Join(cfgDir, config.FileName)))
		cmd.Print(string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Save(cfgDir, config.Default(cfgDir)); err != nil {
			return err
		}
		cmd.Printf("Configuration written to %s\n", filepath.Join(cfgDir, config.FileName))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
