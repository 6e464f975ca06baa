package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recipekit/internal/app"
)

type inspectOptions struct {
	OutputDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarise previously written resolution outputs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "out", "Output directory")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(app.InspectRequest{
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report := result.Report
	fmt.Fprintf(out, "recipe: %s/%s (%s)\n", report.Recipe, report.Version, report.ResolutionID)
	fmt.Fprintf(out, "outcome: %s\n", report.Outcome)
	if report.SourceURL != "" {
		fmt.Fprintf(out, "source: %s (%d patches)\n", report.SourceURL, report.Patches)
	}
	fmt.Fprintf(out, "host requirements: %d\n", len(result.HostRequirements))
	for _, ref := range result.HostRequirements {
		fmt.Fprintf(out, "- %s\n", ref)
	}
	fmt.Fprintf(out, "build requirements: %d\n", len(result.BuildRequirements))
	for _, ref := range result.BuildRequirements {
		fmt.Fprintf(out, "- %s\n", ref)
	}
	fmt.Fprintf(out, "components: %s\n", strings.Join(result.Components, ", "))
	fmt.Fprintf(out, "defines: %s\n", strings.Join(result.Defines, " "))
	return nil
}
