package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	sessionService "github.com/mgpereira/registro/internal/services/session"
)

// sessionCommand groups the session lifecycle subcommands
func (h *Handler) sessionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage serving sessions",
	}

	cmd.AddCommand(
		h.sessionStartCommand(),
		h.sessionActivateCommand(),
		h.sessionGroupsCommand(),
		h.sessionShowCommand(),
		h.sessionListCommand(),
		h.sessionSaveCommand(),
		h.sessionRestoreCommand(),
	)

	return cmd
}

func (h *Handler) sessionStartCommand() *cobra.Command {
	var (
		meal       string
		servedItem string
		period     string
		date       string
		hour       string
		groups     []string
	)

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new serving session and make it active",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.sessionService.StartSession(cmd.Context(), &sessionService.StartSessionInput{
				Meal:       meal,
				ServedItem: servedItem,
				Period:     period,
				Date:       date,
				Time:       hour,
				Groups:     groups,
			})
			if err != nil {
				return err
			}

			fmt.Printf("session %s started (%s %s %s)\n", out.Session.ID, out.Session.Meal, out.Session.Date, out.Session.Time)
			return nil
		},
	}

	cmd.Flags().StringVar(&meal, "meal", "lunch", "meal type: lunch or snack")
	cmd.Flags().StringVar(&servedItem, "item", "", "default served item (required for snack)")
	cmd.Flags().StringVar(&period, "period", "", "school period label")
	cmd.Flags().StringVar(&date, "date", "", "serving date DD/MM/YYYY")
	cmd.Flags().StringVar(&hour, "time", "", "serving time HH:MM")
	cmd.Flags().StringSliceVar(&groups, "groups", nil, "eligible groups, prefix with # to admit walk-ins")

	return cmd
}

func (h *Handler) sessionActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <session-id>",
		Short: "Make a previously created session active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.sessionService.ActivateSession(cmd.Context(), &sessionService.ActivateSessionInput{
				SessionID: args[0],
			})
			if err != nil {
				return err
			}

			fmt.Printf("session %s is now active\n", out.Session.ID)
			return nil
		},
	}
}

func (h *Handler) sessionGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "groups <group>...",
		Short: "Replace the active session's eligible groups",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.sessionService.UpdateGroups(cmd.Context(), &sessionService.UpdateGroupsInput{
				Groups: args,
			})
			if err != nil {
				return err
			}

			fmt.Printf("groups updated: %s\n", strings.Join(out.Session.Groups, ", "))
			return nil
		},
	}
}

func (h *Handler) sessionShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.sessionService.GetActiveSession(cmd.Context(), &sessionService.GetActiveSessionInput{})
			if err != nil {
				return err
			}

			s := out.Session
			fmt.Printf("id:     %s\nmeal:   %s\nitem:   %s\nperiod: %s\ndate:   %s\ntime:   %s\ngroups: %s\n",
				s.ID, s.Meal, s.ServedItem, s.Period, s.Date, s.Time, strings.Join(s.Groups, ", "))
			return nil
		},
	}
}

func (h *Handler) sessionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.sessionService.ListSessions(cmd.Context(), &sessionService.ListSessionsInput{})
			if err != nil {
				return err
			}

			for _, s := range out.Sessions {
				fmt.Printf("%s  %-5s %s %s  [%s]\n", s.ID, s.Meal, s.Date, s.Time, strings.Join(s.Groups, ", "))
			}
			return nil
		},
	}
}

func (h *Handler) sessionSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Snapshot the active session to disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.sessionService.SaveSnapshot(cmd.Context(), &sessionService.SaveSnapshotInput{
				Path: h.snapshotPath,
			})
			if err != nil {
				return err
			}

			fmt.Printf("snapshot written to %s\n", out.Path)
			return nil
		},
	}
}

func (h *Handler) sessionRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Re-activate the session recorded in the snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.sessionService.RestoreSnapshot(cmd.Context(), &sessionService.RestoreSnapshotInput{
				Path: h.snapshotPath,
			})
			if err != nil {
				return err
			}

			if !out.Restored {
				fmt.Println("no snapshot found")
				return nil
			}

			fmt.Printf("session %s restored and active\n", out.Session.ID)
			return nil
		},
	}
}
