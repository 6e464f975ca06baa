package types

type RequirementContext string

const (
	RequirementHost  RequirementContext = "host"
	RequirementBuild RequirementContext = "build"
)

// Requirement references another package by name and version (or
// version range) in either the host or the build context.
type Requirement struct {
	Name    string             `yaml:"name"`
	Version string             `yaml:"version"`
	Context RequirementContext `yaml:"context"`
}

// Ref renders the requirement in name/version form.
func (r Requirement) Ref() string {
	return r.Name + "/" + r.Version
}
