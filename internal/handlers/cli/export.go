package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	exportService "github.com/mgpereira/registro/internal/services/export"
)

func (h *Handler) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the active session's served rows to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.exportService.ExportSession(cmd.Context(), &exportService.ExportSessionInput{})
			if err != nil {
				return err
			}

			fmt.Printf("wrote %d rows to %s\n", out.Rows, out.Path)
			return nil
		},
	}
}
