// Package recipes holds the package recipes known to recipekit.
package recipes

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"recipekit/internal/ports"
	"recipekit/internal/shared"
)

type Catalog struct {
	recipes map[string]ports.RecipePort
}

// NewCatalog returns a catalog holding every built-in recipe.
func NewCatalog() Catalog {
	return NewCatalogOf(NewAUI(), NewCapstone())
}

func NewCatalogOf(recipes ...ports.RecipePort) Catalog {
	catalog := Catalog{recipes: map[string]ports.RecipePort{}}
	for _, recipe := range recipes {
		catalog.recipes[shared.NormalizeRecipeName(recipe.Metadata().Name)] = recipe
	}
	return catalog
}

func (c Catalog) Lookup(name string) (ports.RecipePort, error) {
	recipe, ok := c.recipes[shared.NormalizeRecipeName(name)]
	if !ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("recipe not found: %s", name))
	}
	return recipe, nil
}

func (c Catalog) Names() []string {
	return shared.SortedKeys(c.recipes)
}

var (
	_ ports.RecipeCatalogPort = Catalog{}
	_ ports.RecipePort        = AUI{}
	_ ports.RecipePort        = Capstone{}
)
