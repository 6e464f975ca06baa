package app

import (
	"context"
)

// Validate reports whether a recipe accepts a target. A rejected
// toolchain returns a result carrying the failed outcome alongside the
// error so callers can print the reason.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	t, err := s.loadTarget(req.TargetRequest)
	if err != nil {
		return ValidateResult{}, err
	}
	effective, outcome, err := s.Resolver.Validate(ctx, t.recipe, t.version, t.descriptor)
	result := ValidateResult{
		Recipe:     t.recipe.Metadata().Name,
		Version:    t.version,
		Descriptor: effective,
		Outcome:    outcome,
	}
	return result, err
}
