package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dferenc/hireflow/internal/cli/formatter"
	"github.com/dferenc/hireflow/internal/contract"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   `ask "<message>"`,
		Short: "Send a single message to the hiring assistant",
		Long: `Send one message and print the assistant's reply. Without --session
a new session is started; pass --session to continue an earlier one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewTurnRequest(sessionID, args[0])

			resp, err := app.Conversation.ProcessTurn(context.Background(), req)
			if err != nil {
				var turnErr *contract.TurnError
				if errors.As(err, &turnErr) {
					fmt.Print(formatter.FormatTurnError(turnErr))
					return nil
				}
				return err
			}

			fmt.Print(formatter.FormatTurnResponse(resp))
			if resp.SessionID != "" && !resp.Phase.Terminal() {
				fmt.Printf("\n%s\n", formatter.Dim(
					fmt.Sprintf("Continue with: hireflow ask --session %s \"...\"", resp.SessionID)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID to continue")

	return cmd
}
