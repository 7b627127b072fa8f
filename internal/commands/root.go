// Package commands provides the CLI commands for selam.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ktesfay/selam/internal/api"
	"github.com/ktesfay/selam/internal/config"
	"github.com/ktesfay/selam/internal/models"
)

var (
	// Global flags
	modelFlag  string
	outputFlag string
	fileFlag   string

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "selam [prompt]",
	Short: "Tigrinya chat assistant in your terminal",
	Long: `selam is a terminal chat client for a Tigrinya-speaking assistant
backed by the Gemini API. It needs a single credential, the GEMINI_API_KEY
environment variable.

Examples:
  selam chat                     Start the interactive chat
  selam "ከመይ ኣለኻ?"               Send a single query
  selam -f prompt.md             Read prompt from file
  cat prompt.md | selam          Read prompt from stdin
  selam "ሰላም" -o reply.md        Save the reply to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("selam %s (built %s)\n", Version, BuildTime)
			return nil
		}

		// Check for stdin input
		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data))
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data))
		}

		if len(args) > 0 {
			return runQuery(args[0])
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model to use (fast, pro)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read prompt from file")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(configCmd)
}

// getModel returns the model name to use (from flag or config).
func getModel() string {
	if modelFlag != "" {
		return modelFlag
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return models.DefaultModel.Name
	}

	return cfg.DefaultModel
}

// newClient builds a client from the environment credential and the
// selected model. There is exactly one credential and it is never stored.
func newClient() (*api.GeminiClient, error) {
	return api.NewClient(
		config.APIKey(),
		api.WithModel(models.ModelFromName(getModel())),
	)
}
