package cli

import (
	"github.com/dferenc/hireflow/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Conversation service.ConversationService
	Sessions     service.AdminService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "hireflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "hireflow",
		Short: "Conversational hiring assistant for drafting roles",
	}

	root.AddCommand(
		newChatCmd(app),
		newAskCmd(app),
		newSessionCmd(app),
	)

	return root
}
