package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive hiring conversation",
		Long: `Start an interactive conversation with the hiring assistant. The
assistant asks follow-up questions until it knows enough about the role,
then generates a job description, hiring checklist, and timeline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("chat requires an interactive terminal; use 'hireflow ask' instead")
			}

			p := tea.NewProgram(newChatModel(app, sessionID))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID to continue")

	return cmd
}
