package types

type RecipeMetadata struct {
	Name        string
	License     string
	URL         string
	Homepage    string
	Description string
	Topics      []string
}

// OptionDecl declares a boolean recipe option and its default.
type OptionDecl struct {
	Name    string
	Default bool
}

// ToolchainVariable is a variable handed to the external build system.
// Cache variables survive reconfiguration.
type ToolchainVariable struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
	Cache bool   `yaml:"cache"`
}

// SourceEntry is where the upstream sources for one recipe version live.
type SourceEntry struct {
	URL     string   `yaml:"url"`
	SHA256  string   `yaml:"sha256"`
	Patches []string `yaml:"patches,omitempty"`
}
