package cli

import (
	"github.com/spf13/cobra"
)

// RootCommand builds the full command tree
func (h *Handler) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "registro",
		Short:         "Meal-serving session registration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		h.sessionCommand(),
		h.registerCommand(),
		h.undoCommand(),
		h.eligibleCommand(),
		h.metricsCommand(),
		h.syncCommand(),
		h.exportCommand(),
	)

	return root
}
