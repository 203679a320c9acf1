package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change settings stored in the config file.

Keys:
  storage.data_dir      - Directory of the report database (default ~/.aaltjes/data)
  watch.per_minute      - Maximum inbox imports per minute
  pdf.prefer_pdftotext  - Use poppler's pdftotext when installed (true/false)
  export.sheet_name     - Worksheet name of exported trends`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one or all settings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if len(args) == 1 {
		value, err := settingsService.Value(args[0])
		if err != nil {
			return fmt.Errorf("failed to get setting: %w", err)
		}
		cmd.Println(value)
		return nil
	}

	for _, key := range settingsService.Keys() {
		value, err := settingsService.Value(key)
		if err != nil {
			return fmt.Errorf("failed to get setting: %w", err)
		}
		if value == "" {
			value = "(default)"
		}
		cmd.Printf("%-22s %s\n", key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configPath == "" {
		return errors.New("config file not configured")
	}
	cmd.Println(configPath)
	return nil
}
