package app

import "recipekit/internal/types"

// TargetRequest names a recipe and the target it is evaluated for. The
// descriptor file is optional when Settings supply os and arch.
type TargetRequest struct {
	Recipe         string
	Version        string
	DescriptorPath string
	Settings       []string
	Options        []string
	RecipesDir     string
}

type ValidateRequest struct {
	TargetRequest
}

type ValidateResult struct {
	Recipe     string
	Version    string
	Descriptor types.TargetDescriptor
	Outcome    types.ValidationOutcome
}

type ResolveRequest struct {
	TargetRequest
	OutputDir string
	SBOM      bool
	SBOMDir   string
}

type ResolveResult struct {
	Recipe       string
	Version      string
	ResolutionID string
	OutputDir    string
	Requirements int
	Components   int
	Source       *types.SourceEntry
}

type InspectRequest struct {
	OutputDir string
}

type InspectResult struct {
	Report            types.ResolutionReport
	HostRequirements  []string
	BuildRequirements []string
	Components        []string
	Defines           []string
}

type RecipesRequest struct {
	RecipesDir string
}

type RecipeSummary struct {
	Name           string
	Description    string
	License        string
	Homepage       string
	DefaultVersion string
	Options        []types.OptionDecl
	Versions       []string
}

type RecipesResult struct {
	Recipes []RecipeSummary
}
