package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"recipekit/internal/policies"
	"recipekit/internal/ports"
	"recipekit/internal/shared"
	"recipekit/internal/types"
)

type Resolver struct{}

func NewResolver() Resolver {
	return Resolver{}
}

// Validate computes the effective descriptor for a recipe and checks it
// against the recipe's compiler minimums. An unsupported compiler yields
// a failed outcome together with *policies.UnsupportedToolchainError.
func (r Resolver) Validate(ctx context.Context, recipe ports.RecipePort, version string, descriptor types.TargetDescriptor) (types.TargetDescriptor, types.ValidationOutcome, error) {
	if recipe == nil {
		return types.TargetDescriptor{}, types.ValidationOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a recipe")
	}
	name := recipe.Metadata().Name
	assert.NotEmpty(ctx, name, "recipe name must be set")
	if strings.TrimSpace(version) == "" {
		version = recipe.DefaultVersion()
	}
	if err := policies.CheckVersion(version); err != nil {
		return types.TargetDescriptor{}, types.ValidationOutcome{}, err
	}

	options, err := policies.ApplyOptions(name, recipe.Options(), descriptor.Options)
	if err != nil {
		return types.TargetDescriptor{}, types.ValidationOutcome{}, err
	}
	effective := descriptor.Clone()
	effective.Options = options
	effective = recipe.Configure(version, effective)

	err = policies.NewCompilerPolicy(recipe.CompilerMinimums()).Check(effective)
	var unsupported *policies.UnsupportedToolchainError
	switch {
	case err == nil:
	case errors.As(err, &unsupported):
		log.Ctx(ctx).Debug().Str("recipe", name).Str("compiler", unsupported.Compiler).Msg("toolchain rejected")
		return effective, types.ValidationOutcome{Passed: false, Reason: unsupported.Error()}, err
	default:
		return types.TargetDescriptor{}, types.ValidationOutcome{}, err
	}
	return effective, types.ValidationOutcome{Passed: true}, nil
}

// Resolve produces the requirements, build variables and artifact
// descriptors of a recipe for one target. It performs no I/O and yields
// identical output for identical input.
func (r Resolver) Resolve(ctx context.Context, recipe ports.RecipePort, version string, descriptor types.TargetDescriptor) (types.Resolution, error) {
	if recipe == nil {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a recipe")
	}
	version = strings.TrimSpace(version)
	if version == "" {
		version = recipe.DefaultVersion()
	}
	name := recipe.Metadata().Name

	effective, outcome, err := r.Validate(ctx, recipe, version, descriptor)
	resolution := types.Resolution{
		Recipe:     name,
		Version:    version,
		Descriptor: effective,
		Outcome:    outcome,
	}
	if err != nil {
		return resolution, err
	}

	requirements := append(recipe.Requirements(version, effective), recipe.BuildRequirements(version, effective)...)
	for _, req := range requirements {
		if err := CheckRequirement(req); err != nil {
			return types.Resolution{}, err
		}
	}
	sortRequirements(requirements)
	resolution.Requirements = requirements

	info := recipe.PackageInfo(version, effective)
	if err := CheckReferences(info, requirements); err != nil {
		return types.Resolution{}, err
	}
	resolution.PackageInfo = info
	resolution.ToolchainVariables = recipe.Toolchain(version, effective)
	resolution.ID = ResolutionID(resolution)

	log.Ctx(ctx).Debug().
		Str("recipe", name).
		Str("version", version).
		Int("requirements", len(requirements)).
		Int("components", len(info.Components)).
		Msg("recipe resolved")
	return resolution, nil
}

// ResolutionID derives a stable identifier from the recipe reference, the
// effective settings and options, and the selected requirements.
func ResolutionID(resolution types.Resolution) string {
	d := resolution.Descriptor
	var builder strings.Builder
	builder.WriteString(resolution.Recipe + "/" + resolution.Version + "\n")
	builder.WriteString("os=" + string(d.OS) + "\n")
	builder.WriteString("arch=" + d.Arch + "\n")
	builder.WriteString("build_type=" + string(d.BuildType) + "\n")
	builder.WriteString("compiler=" + d.Compiler.Name + "\n")
	builder.WriteString("compiler.version=" + d.Compiler.Version + "\n")
	builder.WriteString("compiler.runtime=" + d.Compiler.Runtime + "\n")
	builder.WriteString("compiler.cppstd=" + d.Compiler.CppStd + "\n")
	builder.WriteString("compiler.libcxx=" + d.Compiler.LibCxx + "\n")
	for _, name := range shared.SortedKeys(d.Options) {
		builder.WriteString(fmt.Sprintf("options.%s=%t\n", name, d.Options[name]))
	}
	for _, req := range resolution.Requirements {
		builder.WriteString(string(req.Context) + " " + req.Ref() + "\n")
	}
	sum := sha256.Sum256([]byte(builder.String()))
	return fmt.Sprintf("%s-%s", resolution.Recipe, hex.EncodeToString(sum[:])[:12])
}

func sortRequirements(requirements []types.Requirement) {
	sort.Slice(requirements, func(i, j int) bool {
		if requirements[i].Context != requirements[j].Context {
			return requirements[i].Context > requirements[j].Context
		}
		return requirements[i].Name < requirements[j].Name
	})
}
