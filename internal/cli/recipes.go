package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recipekit/internal/app"
)

type recipesOptions struct {
	RecipesDir string
}

func newRecipesCommand() *cobra.Command {
	opts := recipesOptions{}
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List available recipes and their options",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecipes(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.RecipesDir, "recipes-dir", "", "Directory holding <recipe>/config.yml")
	_ = viper.BindPFlag("recipes_dir", cmd.Flags().Lookup("recipes-dir"))
	return cmd
}

func runRecipes(cmd *cobra.Command, opts recipesOptions) error {
	service := newAppService()
	result, err := service.Recipes(app.RecipesRequest{
		RecipesDir: resolveString(cmd, opts.RecipesDir, "recipes_dir", "recipes-dir"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, recipe := range result.Recipes {
		fmt.Fprintf(out, "%s (default %s, %s): %s\n", recipe.Name, recipe.DefaultVersion, recipe.License, recipe.Description)
		var options []string
		for _, option := range recipe.Options {
			options = append(options, fmt.Sprintf("%s=%t", option.Name, option.Default))
		}
		fmt.Fprintf(out, "  options: %s\n", strings.Join(options, " "))
		if len(recipe.Versions) > 0 {
			fmt.Fprintf(out, "  versions: %s\n", strings.Join(recipe.Versions, ", "))
		}
	}
	return nil
}
