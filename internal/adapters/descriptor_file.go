package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"recipekit/internal/ports"
	"recipekit/internal/types"
)

// DescriptorFileAdapter loads target descriptors from YAML or TOML files,
// picked by file extension.
type DescriptorFileAdapter struct{}

func NewDescriptorFileAdapter() DescriptorFileAdapter {
	return DescriptorFileAdapter{}
}

func (a DescriptorFileAdapter) LoadDescriptor(path string) (types.TargetDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.TargetDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("descriptor file not found").
			WithCause(err)
	}
	var descriptor types.TargetDescriptor
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &descriptor)
	case ".toml":
		err = toml.Unmarshal(data, &descriptor)
	default:
		return types.TargetDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported descriptor format: %s", ext))
	}
	if err != nil {
		return types.TargetDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse descriptor").
			WithCause(err)
	}
	if descriptor.Options == nil {
		descriptor.Options = map[string]bool{}
	}
	return descriptor, nil
}

var _ ports.DescriptorPort = DescriptorFileAdapter{}
