package app

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"recipekit/internal/adapters"
	"recipekit/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	requirements, err := s.OutputReader.ReadRequirements(filepath.Join(outputDir, adapters.RequirementsFile))
	if err != nil {
		return InspectResult{}, err
	}
	info, err := s.OutputReader.ReadPackageInfo(filepath.Join(outputDir, adapters.PackageInfoFile))
	if err != nil {
		return InspectResult{}, err
	}
	report, err := s.OutputReader.ReadResolutionReport(filepath.Join(outputDir, adapters.ResolutionReportFile))
	if err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{Report: report, Defines: info.Root.Defines}
	for _, req := range requirements {
		if req.Context == types.RequirementBuild {
			result.BuildRequirements = append(result.BuildRequirements, req.Ref())
			continue
		}
		result.HostRequirements = append(result.HostRequirements, req.Ref())
	}
	for _, component := range info.Components {
		result.Components = append(result.Components, component.Component)
	}
	return result, nil
}
