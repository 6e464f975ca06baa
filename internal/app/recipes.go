package app

import (
	"strings"

	"recipekit/internal/adapters"
)

// Recipes lists the registered recipes. Versions are filled in only when
// a recipes directory is supplied.
func (s Service) Recipes(req RecipesRequest) (RecipesResult, error) {
	recipesDir := strings.TrimSpace(req.RecipesDir)
	var result RecipesResult
	for _, name := range s.Catalog.Names() {
		recipe, err := s.Catalog.Lookup(name)
		if err != nil {
			return RecipesResult{}, err
		}
		meta := recipe.Metadata()
		summary := RecipeSummary{
			Name:           meta.Name,
			Description:    meta.Description,
			License:        meta.License,
			Homepage:       meta.Homepage,
			DefaultVersion: recipe.DefaultVersion(),
			Options:        recipe.Options(),
		}
		if recipesDir != "" {
			versions, err := adapters.NewRecipeDataFileAdapter(recipesDir).Versions(meta.Name)
			if err != nil {
				return RecipesResult{}, err
			}
			summary.Versions = versions
		}
		result.Recipes = append(result.Recipes, summary)
	}
	return result, nil
}
