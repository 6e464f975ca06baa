package cli

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recipekit/internal/app"
)

// targetOptions are the flags shared by commands that evaluate a recipe
// against a target.
type targetOptions struct {
	Descriptor string
	Settings   []string
	Options    []string
	RecipesDir string
}

func bindTargetFlags(cmd *cobra.Command, opts *targetOptions) {
	cmd.Flags().StringVarP(&opts.Descriptor, "descriptor", "d", "", "Target descriptor file (.yaml, .yml or .toml)")
	cmd.Flags().StringArrayVarP(&opts.Settings, "setting", "s", nil, "Setting override, e.g. compiler.version=13")
	cmd.Flags().StringArrayVarP(&opts.Options, "option", "o", nil, "Option override, e.g. shared=True")
	cmd.Flags().StringVar(&opts.RecipesDir, "recipes-dir", "", "Directory holding <recipe>/config.yml and conandata.yml")
	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("settings", cmd.Flags().Lookup("setting"))
	_ = viper.BindPFlag("options", cmd.Flags().Lookup("option"))
	_ = viper.BindPFlag("recipes_dir", cmd.Flags().Lookup("recipes-dir"))
}

// targetRequest combines the "name[/version]" argument with the target
// flags, falling back to config values for flags left unset.
func targetRequest(cmd *cobra.Command, reference string, opts targetOptions) (app.TargetRequest, error) {
	name, version, _ := strings.Cut(strings.TrimSpace(reference), "/")
	if strings.TrimSpace(name) == "" {
		return app.TargetRequest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("recipe reference must be name or name/version")
	}
	return app.TargetRequest{
		Recipe:         name,
		Version:        version,
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		Settings:       resolveStrings(cmd, opts.Settings, "settings", "setting"),
		Options:        resolveStrings(cmd, opts.Options, "options", "option"),
		RecipesDir:     resolveString(cmd, opts.RecipesDir, "recipes_dir", "recipes-dir"),
	}, nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
