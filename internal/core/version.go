package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"recipekit/internal/types"
)

// rangeOps is the ordered list of operators accepted inside a version
// range. Longer tokens must precede shorter ones (">=" before ">").
var rangeOps = []string{">=", "<=", "==", "!=", "~=", ">", "<"}

// IsVersionRange reports whether a requirement version uses the bracketed
// range form, e.g. "[>=3.16 <4]".
func IsVersionRange(value string) bool {
	trimmed := strings.TrimSpace(value)
	return strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")
}

// ParseVersionRange converts a bracketed range into PEP 440 specifiers.
// Space or comma separated conditions are all required to hold.
func ParseVersionRange(value string) (pep440.Specifiers, error) {
	spec, err := toSpecifierString(value)
	if err != nil {
		return pep440.Specifiers{}, err
	}
	parsed, err := pep440.NewSpecifiers(spec)
	if err != nil {
		return pep440.Specifiers{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version range: %s", value)).
			WithCause(err)
	}
	return parsed, nil
}

// CheckRequirement verifies a requirement's name and version are usable.
// Literal versions are opaque (they may be dates or cci tags); ranges must
// parse.
func CheckRequirement(req types.Requirement) error {
	if strings.TrimSpace(req.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("requirement name must not be empty")
	}
	version := strings.TrimSpace(req.Version)
	if version == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("requirement %s has no version", req.Name))
	}
	if IsVersionRange(version) {
		_, err := ParseVersionRange(version)
		return err
	}
	if strings.ContainsAny(version, " []/") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version for %s: %s", req.Name, req.Version))
	}
	return nil
}

func toSpecifierString(value string) (string, error) {
	if !IsVersionRange(value) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("not a version range: %s", value))
	}
	trimmed := strings.TrimSpace(value)
	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	fields := strings.FieldsFunc(inner, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("empty version range: %s", value))
	}
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if (strings.HasPrefix(field, "~") && !strings.HasPrefix(field, "~=")) || strings.HasPrefix(field, "^") {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("unsupported range operator in %s", value))
		}
		parts = append(parts, withOperator(field))
	}
	return strings.Join(parts, ", "), nil
}

func withOperator(field string) string {
	for _, op := range rangeOps {
		if strings.HasPrefix(field, op) {
			return op + " " + strings.TrimSpace(field[len(op):])
		}
	}
	return "== " + field
}
