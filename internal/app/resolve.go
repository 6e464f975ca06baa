package app

import (
	"context"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"recipekit/internal/adapters"
	"recipekit/internal/types"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	t, err := s.loadTarget(req.TargetRequest)
	if err != nil {
		return ResolveResult{}, err
	}
	resolution, err := s.Resolver.Resolve(ctx, t.recipe, t.version, t.descriptor)
	if err != nil {
		return ResolveResult{}, err
	}
	resolution.Source = t.source

	output := adapters.NewOutputFileAdapter(outputDir)
	if err := output.WriteRequirements(resolution.Requirements); err != nil {
		return ResolveResult{}, err
	}
	if err := output.WritePackageInfo(resolution.PackageInfo); err != nil {
		return ResolveResult{}, err
	}
	if err := output.WriteToolchain(resolution.ToolchainVariables); err != nil {
		return ResolveResult{}, err
	}
	report := buildResolutionReport(resolution, s.Clock)
	if err := output.WriteResolutionReport(report); err != nil {
		return ResolveResult{}, err
	}
	if req.SBOM {
		sbomDir := strings.TrimSpace(req.SBOMDir)
		if sbomDir == "" {
			sbomDir = outputDir
		}
		if err := s.SBOMWriter.WriteSBOM(sbomDir, resolution, report.CreatedAt); err != nil {
			return ResolveResult{}, err
		}
	}
	log.Ctx(ctx).Debug().Str("resolution_id", resolution.ID).Str("output", outputDir).Msg("outputs written")
	return ResolveResult{
		Recipe:       resolution.Recipe,
		Version:      resolution.Version,
		ResolutionID: resolution.ID,
		OutputDir:    outputDir,
		Requirements: len(resolution.Requirements),
		Components:   len(resolution.PackageInfo.Components),
		Source:       resolution.Source,
	}, nil
}

func buildResolutionReport(resolution types.Resolution, clock func() time.Time) types.ResolutionReport {
	now := time.Now().UTC()
	if clock != nil {
		now = clock().UTC()
	}
	report := types.ResolutionReport{
		Recipe:       resolution.Recipe,
		Version:      resolution.Version,
		ResolutionID: resolution.ID,
		CreatedAt:    now.Format(time.RFC3339),
		Outcome:      "passed",
	}
	if !resolution.Outcome.Passed {
		report.Outcome = "failed: " + resolution.Outcome.Reason
	}
	if resolution.Source != nil {
		report.SourceURL = resolution.Source.URL
		report.SourceSHA256 = resolution.Source.SHA256
		report.Patches = len(resolution.Source.Patches)
	}
	return report
}
