package recipes

import "recipekit/internal/types"

func host(name string, version string) types.Requirement {
	return types.Requirement{Name: name, Version: version, Context: types.RequirementHost}
}

func build(name string, version string) types.Requirement {
	return types.Requirement{Name: name, Version: version, Context: types.RequirementBuild}
}

func component(name string, lib string, requires ...string) types.ArtifactDescriptor {
	return types.ArtifactDescriptor{
		Component:   name,
		Libs:        []string{lib},
		IncludeDirs: []string{"include"},
		Requires:    requires,
	}
}

func variable(name string, value bool) types.ToolchainVariable {
	return types.ToolchainVariable{Name: name, Value: onOff(value)}
}

func cacheVariable(name string, value bool) types.ToolchainVariable {
	return types.ToolchainVariable{Name: name, Value: onOff(value), Cache: true}
}

func onOff(value bool) string {
	if value {
		return "ON"
	}
	return "OFF"
}
