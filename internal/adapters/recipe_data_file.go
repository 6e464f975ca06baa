package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"recipekit/internal/policies"
	"recipekit/internal/ports"
	"recipekit/internal/types"
)

type recipeConfigFile struct {
	Versions map[string]struct {
		Folder string `yaml:"folder"`
	} `yaml:"versions"`
}

type conanDataPatch struct {
	PatchFile        string `yaml:"patch_file"`
	PatchDescription string `yaml:"patch_description,omitempty"`
}

type conanDataFile struct {
	Sources map[string]struct {
		URL    yaml.Node `yaml:"url"`
		SHA256 string    `yaml:"sha256"`
	} `yaml:"sources"`
	Patches map[string][]conanDataPatch `yaml:"patches,omitempty"`
}

// RecipeDataFileAdapter reads recipe data laid out as
// <root>/<name>/config.yml mapping versions to folders, each folder
// holding a conandata.yml with sources and patches.
type RecipeDataFileAdapter struct {
	Root string
}

func NewRecipeDataFileAdapter(root string) RecipeDataFileAdapter {
	return RecipeDataFileAdapter{Root: root}
}

func (a RecipeDataFileAdapter) Versions(name string) ([]string, error) {
	config, err := a.loadConfig(name)
	if err != nil {
		return nil, err
	}
	versions := make([]string, 0, len(config.Versions))
	for version := range config.Versions {
		versions = append(versions, version)
	}
	sort.Slice(versions, func(i, j int) bool {
		less, err := policies.VersionLess(versions[i], versions[j])
		if err != nil {
			return versions[i] < versions[j]
		}
		return less
	})
	return versions, nil
}

func (a RecipeDataFileAdapter) Source(name string, version string) (types.SourceEntry, error) {
	config, err := a.loadConfig(name)
	if err != nil {
		return types.SourceEntry{}, err
	}
	entry, ok := config.Versions[version]
	if !ok || strings.TrimSpace(entry.Folder) == "" {
		return types.SourceEntry{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("version %s not listed for recipe %s", version, name))
	}
	path := filepath.Join(a.Root, name, entry.Folder, "conandata.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SourceEntry{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("conandata file not found").
			WithCause(err)
	}
	var conanData conanDataFile
	if err := yaml.Unmarshal(data, &conanData); err != nil {
		return types.SourceEntry{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid conandata format").
			WithCause(err)
	}
	source, ok := conanData.Sources[version]
	if !ok {
		return types.SourceEntry{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no sources for %s/%s", name, version))
	}
	url, err := firstURL(source.URL)
	if err != nil {
		return types.SourceEntry{}, err
	}
	out := types.SourceEntry{URL: url, SHA256: source.SHA256}
	for _, patch := range conanData.Patches[version] {
		out.Patches = append(out.Patches, patch.PatchFile)
	}
	return out, nil
}

func (a RecipeDataFileAdapter) loadConfig(name string) (recipeConfigFile, error) {
	if strings.TrimSpace(a.Root) == "" {
		return recipeConfigFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("recipes directory is empty")
	}
	path := filepath.Join(a.Root, name, "config.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return recipeConfigFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("recipe config not found for %s", name)).
			WithCause(err)
	}
	var config recipeConfigFile
	if err := yaml.Unmarshal(data, &config); err != nil {
		return recipeConfigFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid recipe config format").
			WithCause(err)
	}
	return config, nil
}

// firstURL accepts both a single url and a list of mirrors.
func firstURL(node yaml.Node) (string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.SequenceNode:
		var urls []string
		if err := node.Decode(&urls); err == nil && len(urls) > 0 {
			return urls[0], nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("conandata source url must be a string or a list of strings")
}

var _ ports.RecipeDataPort = RecipeDataFileAdapter{}
