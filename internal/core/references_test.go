package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"recipekit/internal/types"
)

func TestCheckReferences(t *testing.T) {
	requirements := []types.Requirement{
		{Name: "fmt", Version: "9.1.0", Context: types.RequirementHost},
		{Name: "cmake", Version: "[>=3.16 <4]", Context: types.RequirementBuild},
	}
	info := types.PackageInfo{
		Components: []types.ArtifactDescriptor{
			{Component: "core", Requires: []string{"fmt::fmt"}},
			{Component: "views", Requires: []string{"core"}},
		},
	}
	require.NoError(t, CheckReferences(info, requirements))

	tests := []struct {
		name     string
		requires []string
	}{
		{name: "unselected package", requires: []string{"gtk::gtk"}},
		{name: "build requirement is not linkable", requires: []string{"cmake::cmake"}},
		{name: "unknown sibling", requires: []string{"audio"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := info
			broken.Components = append([]types.ArtifactDescriptor{{Component: "x", Requires: tt.requires}}, info.Components...)
			err := CheckReferences(broken, requirements)
			require.Error(t, err)
			require.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
		})
	}
}
