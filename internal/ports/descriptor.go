package ports

import "recipekit/internal/types"

type DescriptorPort interface {
	LoadDescriptor(path string) (types.TargetDescriptor, error)
}
