package app

import (
	"time"

	"recipekit/internal/adapters"
	"recipekit/internal/core"
	"recipekit/internal/ports"
	"recipekit/internal/recipes"
)

type Service struct {
	Catalog      ports.RecipeCatalogPort
	Descriptors  ports.DescriptorPort
	OutputReader ports.OutputReaderPort
	SBOMWriter   ports.SBOMPort
	Resolver     core.Resolver
	Clock        func() time.Time
}

func NewService() Service {
	return Service{
		Catalog:      recipes.NewCatalog(),
		Descriptors:  adapters.NewDescriptorFileAdapter(),
		OutputReader: adapters.NewOutputReaderAdapter(),
		SBOMWriter:   adapters.NewSBOMWriterAdapter(),
		Resolver:     core.NewResolver(),
		Clock:        time.Now,
	}
}
