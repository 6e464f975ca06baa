package ports

import "recipekit/internal/types"

// RecipeDataPort looks up per-version recipe data (source location and
// patches) kept outside the recipe code.
type RecipeDataPort interface {
	Versions(name string) ([]string, error)
	Source(name string, version string) (types.SourceEntry, error)
}
