package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	syncService "github.com/mgpereira/registro/internal/services/sync"
)

func (h *Handler) syncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Synchronize with the external spreadsheet",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "pull",
			Short: "Import students and reserves from the source sheet",
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := h.syncService.PullRoster(cmd.Context(), &syncService.PullRosterInput{})
				if err != nil {
					return err
				}

				fmt.Printf("students: %d created, %d updated\nreserves: %d created, %d updated\n",
					out.StudentsCreated, out.StudentsUpdated, out.ReservesCreated, out.ReservesUpdated)
				return nil
			},
		},
		&cobra.Command{
			Use:   "push",
			Short: "Append the active session's served rows to the served sheet",
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := h.syncService.PushServed(cmd.Context(), &syncService.PushServedInput{})
				if err != nil {
					return err
				}

				fmt.Printf("%d rows appended, %d already present\n", out.RowsAppended, out.RowsSkipped)
				return nil
			},
		},
	)

	return cmd
}
