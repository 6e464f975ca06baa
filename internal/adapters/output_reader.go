package adapters

import (
	"os"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"recipekit/internal/ports"
	"recipekit/internal/types"
)

type OutputReaderAdapter struct{}

func NewOutputReaderAdapter() OutputReaderAdapter {
	return OutputReaderAdapter{}
}

func (a OutputReaderAdapter) ReadRequirements(path string) ([]types.Requirement, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("requirements.lock not found").
			WithCause(err)
	}
	var requirements []types.Requirement
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		scope, ref, ok := strings.Cut(strings.TrimSpace(line), " ")
		if !ok {
			return nil, invalidLockLine()
		}
		name, version, ok := strings.Cut(strings.TrimSpace(ref), "/")
		if !ok || name == "" || version == "" {
			return nil, invalidLockLine()
		}
		reqContext := types.RequirementContext(scope)
		if reqContext != types.RequirementHost && reqContext != types.RequirementBuild {
			return nil, invalidLockLine()
		}
		requirements = append(requirements, types.Requirement{
			Name:    name,
			Version: version,
			Context: reqContext,
		})
	}
	return requirements, nil
}

func (a OutputReaderAdapter) ReadPackageInfo(path string) (types.PackageInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.PackageInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package_info.yaml not found").
			WithCause(err)
	}
	var info types.PackageInfo
	if err := yaml.Unmarshal(content, &info); err != nil {
		return types.PackageInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid package_info.yaml format").
			WithCause(err)
	}
	return info, nil
}

func (a OutputReaderAdapter) ReadResolutionReport(path string) (types.ResolutionReport, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.ResolutionReport{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("resolution.report not found").
			WithCause(err)
	}
	report := types.ResolutionReport{}
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return types.ResolutionReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid resolution.report format")
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		switch key {
		case "recipe":
			report.Recipe = value
		case "version":
			report.Version = value
		case "resolution_id":
			report.ResolutionID = value
		case "created_at":
			report.CreatedAt = value
		case "outcome":
			report.Outcome = value
		case "source_url":
			report.SourceURL = value
		case "source_sha256":
			report.SourceSHA256 = value
		case "patches":
			count, err := strconv.Atoi(value)
			if err != nil {
				return types.ResolutionReport{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("invalid patches count in resolution.report").
					WithCause(err)
			}
			report.Patches = count
		}
	}
	if strings.TrimSpace(report.ResolutionID) == "" {
		return types.ResolutionReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolution.report missing resolution_id")
	}
	return report, nil
}

func invalidLockLine() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid requirements.lock format")
}

var _ ports.OutputReaderPort = OutputReaderAdapter{}
