package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/dferenc/hireflow/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage hiring sessions",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionShowCmd(app),
		newSessionArchiveCmd(app),
		newSessionUnarchiveCmd(app),
		newSessionDeleteCmd(app),
	)

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hiring sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Sessions.List(context.Background(), includeArchived)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSessionList(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "all", false, "Include archived sessions")

	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a session's context, transcript, and artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := app.Sessions.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSessionDetail(detail))
			return nil
		},
	}
}

func newSessionArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Archive(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Archived session %s\n", args[0])
			return nil
		},
	}
}

func newSessionUnarchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unarchive ID",
		Short: "Restore an archived session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Unarchive(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Restored session %s\n", args[0])
			return nil
		},
	}
}

func newSessionDeleteCmd(app *App) *cobra.Command {
	var force, yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Permanently delete a session and its transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.IsInteractive != nil && app.IsInteractive() {
				confirmed, err := confirmDelete(args[0])
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println(formatter.Dim("Cancelled."))
					return nil
				}
			}

			if err := app.Sessions.Delete(context.Background(), args[0], force); err != nil {
				return err
			}
			fmt.Printf("Deleted session %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if the session is not archived")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func confirmDelete(id string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete session %s? This cannot be undone.", id)).
				Affirmative("Delete").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(hireflowHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
