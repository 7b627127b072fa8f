package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktesfay/selam/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat session with the assistant.

The chat keeps conversation context across turns. Ctrl+N starts a fresh
conversation; type 'exit', 'quit', or press Ctrl+C to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat()
	},
}

func runChat() error {
	client, err := newClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	return tui.RunChat(client, client.GetModel().Name)
}
