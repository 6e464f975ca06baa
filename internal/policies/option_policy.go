package policies

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"recipekit/internal/types"
)

// ApplyOptions merges caller-provided option values over the recipe's
// declared defaults. Options the recipe does not declare are rejected.
func ApplyOptions(recipe string, decls []types.OptionDecl, provided map[string]bool) (map[string]bool, error) {
	declared := make(map[string]bool, len(decls))
	for _, decl := range decls {
		declared[decl.Name] = decl.Default
	}
	var unknown []string
	for name := range provided {
		if _, ok := declared[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("option %s does not exist for recipe %s", unknown[0], recipe))
	}
	out := make(map[string]bool, len(declared))
	for name, value := range declared {
		out[name] = value
	}
	for name, value := range provided {
		out[name] = value
	}
	return out, nil
}

// RemoveSharedFPIC drops fPIC where it has no meaning: on Windows, and
// once the package is built as a shared library.
func RemoveSharedFPIC(descriptor *types.TargetDescriptor) {
	if _, ok := descriptor.Options["fPIC"]; !ok {
		return
	}
	if descriptor.OS == types.OSWindows {
		delete(descriptor.Options, "fPIC")
		return
	}
	if descriptor.Options["shared"] {
		delete(descriptor.Options, "fPIC")
	}
}
