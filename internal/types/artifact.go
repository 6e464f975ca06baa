package types

// ArtifactDescriptor describes how consumers link against one installed
// component (or against the package as a whole when Component is empty).
type ArtifactDescriptor struct {
	Component   string   `yaml:"component,omitempty"`
	Libs        []string `yaml:"libs,omitempty"`
	IncludeDirs []string `yaml:"includedirs,omitempty"`
	Requires    []string `yaml:"requires,omitempty"`
	Defines     []string `yaml:"defines,omitempty"`
	SystemLibs  []string `yaml:"system_libs,omitempty"`
	Frameworks  []string `yaml:"frameworks,omitempty"`
}

// PackageInfo is the full set of artifact descriptors a recipe exposes.
type PackageInfo struct {
	Root       ArtifactDescriptor   `yaml:"root"`
	Components []ArtifactDescriptor `yaml:"components,omitempty"`
}

// Component returns the descriptor with the given name.
func (p PackageInfo) Component(name string) (ArtifactDescriptor, bool) {
	for _, component := range p.Components {
		if component.Component == name {
			return component, true
		}
	}
	return ArtifactDescriptor{}, false
}
