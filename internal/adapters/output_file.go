package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"recipekit/internal/ports"
	"recipekit/internal/types"
)

const (
	RequirementsFile     = "requirements.lock"
	PackageInfoFile      = "package_info.yaml"
	ToolchainFile        = "toolchain.cmake"
	ResolutionReportFile = "resolution.report"
)

type OutputFileAdapter struct {
	Dir string
}

func NewOutputFileAdapter(dir string) OutputFileAdapter {
	return OutputFileAdapter{Dir: dir}
}

// WriteRequirements keeps the caller's order; the resolver already sorts.
func (a OutputFileAdapter) WriteRequirements(requirements []types.Requirement) error {
	path, err := a.ensurePath(RequirementsFile)
	if err != nil {
		return err
	}
	var lines []string
	for _, req := range requirements {
		lines = append(lines, fmt.Sprintf("%s %s", req.Context, req.Ref()))
	}
	return a.write(path, strings.Join(lines, "\n"))
}

func (a OutputFileAdapter) WritePackageInfo(info types.PackageInfo) error {
	path, err := a.ensurePath(PackageInfoFile)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(info)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal package info").
			WithCause(err)
	}
	return a.write(path, string(data))
}

func (a OutputFileAdapter) WriteToolchain(variables []types.ToolchainVariable) error {
	path, err := a.ensurePath(ToolchainFile)
	if err != nil {
		return err
	}
	var lines []string
	for _, variable := range variables {
		if variable.Cache {
			lines = append(lines, fmt.Sprintf("set(%s %s CACHE STRING \"\" FORCE)", variable.Name, strconv.Quote(variable.Value)))
			continue
		}
		lines = append(lines, fmt.Sprintf("set(%s %s)", variable.Name, strconv.Quote(variable.Value)))
	}
	return a.write(path, strings.Join(lines, "\n"))
}

func (a OutputFileAdapter) WriteResolutionReport(report types.ResolutionReport) error {
	path, err := a.ensurePath(ResolutionReportFile)
	if err != nil {
		return err
	}
	content := fmt.Sprintf(
		"recipe=%s\nversion=%s\nresolution_id=%s\ncreated_at=%s\noutcome=%s\nsource_url=%s\nsource_sha256=%s\npatches=%d\n",
		report.Recipe,
		report.Version,
		report.ResolutionID,
		report.CreatedAt,
		report.Outcome,
		report.SourceURL,
		report.SourceSHA256,
		report.Patches,
	)
	return a.write(path, content)
}

func (a OutputFileAdapter) write(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write %s", filepath.Base(path))).
			WithCause(err)
	}
	return nil
}

func (a OutputFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

var _ ports.OutputPort = OutputFileAdapter{}
