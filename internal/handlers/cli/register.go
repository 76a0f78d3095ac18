package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	registrationService "github.com/mgpereira/registro/internal/services/registration"
)

func (h *Handler) registerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register <pront>",
		Short: "Register a consumption for a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.registrationService.RegisterConsumption(cmd.Context(), &registrationService.RegisterConsumptionInput{
				Pront: args[0],
			})
			if err != nil {
				// Double scans are routine, not failures
				if errors.Is(err, registrationService.ErrAlreadyConsumed) {
					fmt.Printf("%s is already registered for this session\n", args[0])
					return nil
				}
				return err
			}

			kind := "reserved"
			if out.WalkIn {
				kind = "walk-in"
			}
			fmt.Printf("%s (%s, %s) served %s at %s [%s]\n", out.Name, out.Pront, out.Group, out.Dish, out.Time, kind)
			return nil
		},
	}
}

func (h *Handler) undoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <consumption-id>",
		Short: "Delete a consumption record (operator correction)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := h.registrationService.UndoConsumption(cmd.Context(), &registrationService.UndoConsumptionInput{
				ConsumptionID: args[0],
			}); err != nil {
				return err
			}

			fmt.Printf("consumption %s removed\n", args[0])
			return nil
		},
	}
}

func (h *Handler) eligibleCommand() *cobra.Command {
	var (
		consumed bool
		pending  bool
	)

	cmd := &cobra.Command{
		Use:   "eligible",
		Short: "List students eligible for the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &registrationService.ListEligibleInput{}
			if consumed {
				v := true
				input.Consumed = &v
			} else if pending {
				v := false
				input.Consumed = &v
			}

			out, err := h.registrationService.ListEligible(cmd.Context(), input)
			if err != nil {
				return err
			}

			for _, stu := range out.Students {
				mark := " "
				if stu.Consumed {
					mark = "x"
				}
				fmt.Printf("[%s] %-12s %-30s %-8s %s %s\n", mark, stu.Pront, stu.Name, stu.Group, stu.Dish, stu.Time)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&consumed, "consumed", false, "only students already served")
	cmd.Flags().BoolVar(&pending, "pending", false, "only students not yet served")
	cmd.MarkFlagsMutuallyExclusive("consumed", "pending")

	return cmd
}

func (h *Handler) metricsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Show consumption counts for the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := h.registrationService.SessionMetrics(cmd.Context(), &registrationService.SessionMetricsInput{})
			if err != nil {
				return err
			}

			fmt.Printf("eligible:  %d\nconsumed:  %d\nwalk-ins:  %d\nremaining: %d\n",
				out.Eligible, out.Consumed, out.WalkIns, out.Remaining)
			return nil
		},
	}
}
