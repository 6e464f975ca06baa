package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"recipekit/internal/adapters"
	"recipekit/internal/core"
	"recipekit/internal/ports"
	"recipekit/internal/types"
)

type target struct {
	recipe     ports.RecipePort
	version    string
	descriptor types.TargetDescriptor
	source     *types.SourceEntry
}

// loadTarget turns a request into a recipe, a concrete version and a
// validated input descriptor. When a recipes directory is given the
// version must be listed there and its source entry is attached.
func (s Service) loadTarget(req TargetRequest) (target, error) {
	name := strings.TrimSpace(req.Recipe)
	if name == "" {
		return target{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("recipe name is required")
	}
	recipe, err := s.Catalog.Lookup(name)
	if err != nil {
		return target{}, err
	}
	version := strings.TrimSpace(req.Version)
	if version == "" {
		version = recipe.DefaultVersion()
	}

	descriptor := types.TargetDescriptor{Options: map[string]bool{}}
	if path := strings.TrimSpace(req.DescriptorPath); path != "" {
		descriptor, err = s.Descriptors.LoadDescriptor(path)
		if err != nil {
			return target{}, err
		}
	}
	descriptor, err = core.ApplyOverrides(descriptor, req.Settings, req.Options)
	if err != nil {
		return target{}, err
	}
	if err := core.ValidateDescriptor(descriptor); err != nil {
		return target{}, err
	}

	out := target{recipe: recipe, version: version, descriptor: descriptor}
	recipesDir := strings.TrimSpace(req.RecipesDir)
	if recipesDir == "" {
		return out, nil
	}
	data := adapters.NewRecipeDataFileAdapter(recipesDir)
	versions, err := data.Versions(recipe.Metadata().Name)
	if err != nil {
		return target{}, err
	}
	if !slices.Contains(versions, version) {
		return target{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("%s/%s is not a known version (have %s)", recipe.Metadata().Name, version, strings.Join(versions, ", ")))
	}
	source, err := data.Source(recipe.Metadata().Name, version)
	if err != nil {
		return target{}, err
	}
	out.source = &source
	return out, nil
}
