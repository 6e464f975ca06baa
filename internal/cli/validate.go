package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"recipekit/internal/app"
)

func newValidateCommand() *cobra.Command {
	opts := targetOptions{}
	cmd := &cobra.Command{
		Use:   "validate <recipe>[/<version>]",
		Short: "Check that a recipe supports a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, args[0], opts)
		},
	}
	bindTargetFlags(cmd, &opts)
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, reference string, opts targetOptions) error {
	target, err := targetRequest(cmd, reference, opts)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{TargetRequest: target})
	out := cmd.OutOrStdout()
	if err != nil {
		if result.Outcome.Reason != "" {
			fmt.Fprintf(out, "invalid: %s/%s: %s\n", result.Recipe, result.Version, result.Outcome.Reason)
		}
		return err
	}
	fmt.Fprintf(out, "validated: %s/%s\n", result.Recipe, result.Version)
	return nil
}
