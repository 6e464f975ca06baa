package ports

import "recipekit/internal/types"

type OutputPort interface {
	WriteRequirements(requirements []types.Requirement) error
	WritePackageInfo(info types.PackageInfo) error
	WriteToolchain(variables []types.ToolchainVariable) error
	WriteResolutionReport(report types.ResolutionReport) error
}

type OutputReaderPort interface {
	ReadRequirements(path string) ([]types.Requirement, error)
	ReadPackageInfo(path string) (types.PackageInfo, error)
	ReadResolutionReport(path string) (types.ResolutionReport, error)
}

type SBOMPort interface {
	WriteSBOM(dir string, resolution types.Resolution, createdAt string) error
}
