package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-playground/validator/v10"

	"recipekit/internal/types"
)

var descriptorValidator = validator.New()

// ValidateDescriptor checks the structural rules of a descriptor: an OS
// and arch are present, the build type is known, and any compiler
// carries a version. OS values are not restricted; recipes simply emit
// no platform branch for systems they do not special-case.
func ValidateDescriptor(descriptor types.TargetDescriptor) error {
	err := descriptorValidator.Struct(descriptor)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid target descriptor: %s failed %s", first.Namespace(), first.Tag())).
			WithCause(err)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid target descriptor").
		WithCause(err)
}

// ApplyOverrides layers "key=value" settings and options over a
// descriptor, the way command-line overrides take precedence over a
// descriptor file. The input is left untouched.
func ApplyOverrides(descriptor types.TargetDescriptor, settings []string, options []string) (types.TargetDescriptor, error) {
	out := descriptor.Clone()
	for _, raw := range settings {
		key, value, err := splitAssignment(raw)
		if err != nil {
			return types.TargetDescriptor{}, err
		}
		if err := applySetting(&out, key, value); err != nil {
			return types.TargetDescriptor{}, err
		}
	}
	for _, raw := range options {
		key, value, err := splitAssignment(raw)
		if err != nil {
			return types.TargetDescriptor{}, err
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return types.TargetDescriptor{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("option %s must be a boolean: %s", key, value))
		}
		out.Options[key] = parsed
	}
	return out, nil
}

func applySetting(d *types.TargetDescriptor, key string, value string) error {
	switch key {
	case "os":
		d.OS = types.OS(value)
	case "arch":
		d.Arch = value
	case "build_type":
		d.BuildType = types.BuildType(value)
	case "compiler":
		d.Compiler.Name = value
	case "compiler.version":
		d.Compiler.Version = value
	case "compiler.runtime":
		d.Compiler.Runtime = value
	case "compiler.cppstd":
		d.Compiler.CppStd = value
	case "compiler.libcxx":
		d.Compiler.LibCxx = value
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown setting: %s", key))
	}
	return nil
}

func splitAssignment(raw string) (string, string, error) {
	key, value, ok := strings.Cut(strings.TrimSpace(raw), "=")
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if !ok || key == "" || value == "" {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("expected key=value: %s", raw))
	}
	return key, value, nil
}
