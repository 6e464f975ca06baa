package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"

	"recipekit/internal/types"
)

// UnsupportedToolchainError rejects a target whose compiler is older than
// the minimum a recipe supports.
type UnsupportedToolchainError struct {
	Compiler string
	Version  string
	Minimum  string
}

func (e *UnsupportedToolchainError) Error() string {
	return fmt.Sprintf("%s < %s is not supported (found %s)", e.Compiler, e.Minimum, e.Version)
}

// CompilerPolicy holds per-compiler minimum versions keyed by compiler
// identifier. Compilers without an entry are accepted.
type CompilerPolicy struct {
	Minimums map[string]string
}

func NewCompilerPolicy(minimums map[string]string) CompilerPolicy {
	return CompilerPolicy{Minimums: minimums}
}

func (p CompilerPolicy) Check(descriptor types.TargetDescriptor) error {
	name := strings.TrimSpace(descriptor.Compiler.Name)
	minimum, ok := p.Minimums[name]
	if !ok {
		return nil
	}
	less, err := VersionLess(descriptor.Compiler.Version, minimum)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid %s version: %s", name, descriptor.Compiler.Version)).
			WithCause(err)
	}
	if less {
		return &UnsupportedToolchainError{
			Compiler: name,
			Version:  descriptor.Compiler.Version,
			Minimum:  minimum,
		}
	}
	return nil
}

// CheckVersion rejects version strings that cannot be ordered, such as
// "foo" or "v5".
func CheckVersion(version string) error {
	if _, err := debversion.NewVersion(strings.TrimSpace(version)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version: %q", version)).
			WithCause(err)
	}
	return nil
}

// VersionLess reports whether a is strictly lower than b. Dotted numeric
// components compare numerically, so "9" < "10" and "192" < "193".
func VersionLess(a string, b string) (bool, error) {
	v1, err := debversion.NewVersion(strings.TrimSpace(a))
	if err != nil {
		return false, err
	}
	v2, err := debversion.NewVersion(strings.TrimSpace(b))
	if err != nil {
		return false, err
	}
	return v1.LessThan(v2), nil
}
