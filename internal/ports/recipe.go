package ports

import "recipekit/internal/types"

// RecipePort is one package recipe. Every method is a pure function of
// the version and the effective descriptor handed in.
type RecipePort interface {
	Metadata() types.RecipeMetadata
	DefaultVersion() string
	Options() []types.OptionDecl

	// Configure prunes settings and options that do not affect the
	// produced binaries. It receives and returns a private copy.
	Configure(version string, descriptor types.TargetDescriptor) types.TargetDescriptor

	// CompilerMinimums returns the oldest supported version per compiler
	// identifier.
	CompilerMinimums() map[string]string

	Requirements(version string, descriptor types.TargetDescriptor) []types.Requirement
	BuildRequirements(version string, descriptor types.TargetDescriptor) []types.Requirement
	Toolchain(version string, descriptor types.TargetDescriptor) []types.ToolchainVariable
	PackageInfo(version string, descriptor types.TargetDescriptor) types.PackageInfo
}

type RecipeCatalogPort interface {
	Lookup(name string) (RecipePort, error)
	Names() []string
}
