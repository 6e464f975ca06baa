package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recipekit/internal/app"
)

type resolveOptions struct {
	targetOptions
	OutputDir string
	SBOM      bool
	SBOMDir   string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve <recipe>[/<version>]",
		Short: "Resolve a recipe for a target and write its metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, args[0], opts)
		},
	}
	bindTargetFlags(cmd, &opts.targetOptions)
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	cmd.Flags().BoolVar(&opts.SBOM, "sbom", false, "Also write an SPDX SBOM")
	cmd.Flags().StringVar(&opts.SBOMDir, "sbom-dir", "", "SBOM directory (defaults to the output directory)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("sbom", cmd.Flags().Lookup("sbom"))
	_ = viper.BindPFlag("sbom_dir", cmd.Flags().Lookup("sbom-dir"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, reference string, opts resolveOptions) error {
	target, err := targetRequest(cmd, reference, opts.targetOptions)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		TargetRequest: target,
		OutputDir:     resolveString(cmd, opts.OutputDir, "output", "output"),
		SBOM:          resolveBool(cmd, opts.SBOM, "sbom", "sbom"),
		SBOMDir:       resolveString(cmd, opts.SBOMDir, "sbom_dir", "sbom-dir"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "resolved: %s/%s\n", result.Recipe, result.Version)
	fmt.Fprintf(out, "resolution id: %s\n", result.ResolutionID)
	fmt.Fprintf(out, "requirements: %d, components: %d\n", result.Requirements, result.Components)
	if result.Source != nil {
		fmt.Fprintf(out, "source: %s\n", result.Source.URL)
	}
	fmt.Fprintf(out, "output: %s\n", result.OutputDir)
	return nil
}
