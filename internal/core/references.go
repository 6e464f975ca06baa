package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"recipekit/internal/types"
)

// CheckReferences verifies every component requirement points at
// something that exists for this target: "pkg::comp" must name a selected
// host requirement, a bare name must name a sibling component.
func CheckReferences(info types.PackageInfo, requirements []types.Requirement) error {
	hosts := map[string]struct{}{}
	for _, req := range requirements {
		if req.Context == types.RequirementHost {
			hosts[req.Name] = struct{}{}
		}
	}
	components := map[string]struct{}{}
	for _, component := range info.Components {
		components[component.Component] = struct{}{}
	}
	descriptors := append([]types.ArtifactDescriptor{info.Root}, info.Components...)
	for _, descriptor := range descriptors {
		for _, ref := range descriptor.Requires {
			pkg, _, qualified := strings.Cut(ref, "::")
			if qualified {
				if _, ok := hosts[pkg]; !ok {
					return danglingReference(descriptor.Component, ref)
				}
				continue
			}
			if _, ok := components[ref]; !ok {
				return danglingReference(descriptor.Component, ref)
			}
		}
	}
	return nil
}

func danglingReference(component string, ref string) error {
	if component == "" {
		component = "<root>"
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("component %s requires %s which is not selected for this target", component, ref))
}
