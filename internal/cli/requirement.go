package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Swyamk/rjagro-sub000/datasource/restsource"
	"github.com/Swyamk/rjagro-sub000/model"
)

func parseRequirementID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid requirement id %s", arg)
	}

	return id, nil
}

func approveCommand(settings *Settings) *cobra.Command {
	approval := restsource.Approval{}

	cmd := &cobra.Command{
		Use:   "approve <requirement_id>",
		Short: "Approve a batch requirement and allocate stock to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRequirementID(args[0])
			if err != nil {
				return err
			}

			if approval.AllocatedQty <= 0 {
				return fmt.Errorf("allocated quantity must be positive")
			}

			approval.RequirementID = id
			if approval.AllocationDate == "" {
				approval.AllocationDate = model.Today().String()
			}

			env, err := newEnvironment(settings)
			if err != nil {
				return err
			}

			if err := env.client.ApproveRequirement(cmd.Context(), approval); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Requirement %d approved\n", id)
			return err
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&approval.AllocatedQty, "qty", 0, "quantity to allocate")
	flags.StringVar(&approval.AllocationDate, "date", "", "allocation date as YYYY-MM-DD, today if empty")
	flags.Int64Var(&approval.AllocatedBy, "by", 0, "user id approving the requirement")

	return cmd
}

func declineCommand(settings *Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "decline <requirement_id>",
		Short: "Decline a batch requirement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRequirementID(args[0])
			if err != nil {
				return err
			}

			env, err := newEnvironment(settings)
			if err != nil {
				return err
			}

			if err := env.client.DeclineRequirement(cmd.Context(), id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Requirement %d declined\n", id)
			return err
		},
	}
}
