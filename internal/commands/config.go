package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ktesfay/selam/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show the current configuration, or change a setting with
'selam config set <key> <value>'.

Keys: default_model, copy_to_clipboard, markdown_style`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setConfig(args[0], args[1])
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func showConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	fmt.Printf("config file:        %s\n", path)
	fmt.Printf("default_model:      %s\n", cfg.DefaultModel)
	fmt.Printf("copy_to_clipboard:  %t\n", cfg.CopyToClipboard)
	fmt.Printf("markdown_style:     %s\n", cfg.Markdown.Style)

	if config.APIKey() == "" {
		fmt.Printf("\n%s is not set\n", config.EnvAPIKey)
	}

	return nil
}

func setConfig(key, value string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	switch key {
	case "default_model":
		cfg.DefaultModel = value
	case "copy_to_clipboard":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", value)
		}
		cfg.CopyToClipboard = b
	case "markdown_style":
		cfg.Markdown.Style = value
	default:
		return fmt.Errorf("unknown key %q", key)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("set %s = %s\n", key, value)
	return nil
}
