package policies

import (
	"strings"

	"recipekit/internal/types"
)

// IsAppleOS reports whether the OS belongs to the Apple family.
func IsAppleOS(os types.OS) bool {
	return os == types.OSMacos || os == types.OSiOS
}

// IsMSVC reports whether the descriptor targets the Microsoft compiler.
func IsMSVC(descriptor types.TargetDescriptor) bool {
	return descriptor.Compiler.Name == types.CompilerMSVC
}

// IsMSVCStaticRuntime reports whether the descriptor links the static
// Microsoft C runtime.
func IsMSVCStaticRuntime(descriptor types.TargetDescriptor) bool {
	return IsMSVC(descriptor) && descriptor.Compiler.Runtime == "static"
}

// CompilerFamily maps a compiler identifier to its family. Unknown
// identifiers map to CompilerFamilyUnknown.
func CompilerFamily(name string) types.CompilerFamily {
	switch strings.TrimSpace(name) {
	case types.CompilerClang, types.CompilerAppleClang:
		return types.CompilerFamilyClang
	case types.CompilerGCC:
		return types.CompilerFamilyGCC
	case types.CompilerMSVC:
		return types.CompilerFamilyMSVC
	default:
		return types.CompilerFamilyUnknown
	}
}

// ClassifyArch buckets an architecture identifier by substring. The "arm"
// test runs before the "64" test so arm64 style identifiers never land in
// the x86_64 bucket. Identifiers without "64" (armv8 included) fall into
// the 32-bit bucket of their family.
func ClassifyArch(arch string) types.ArchClass {
	if strings.Contains(arch, "arm") {
		if strings.Contains(arch, "64") {
			return types.ArchARM64
		}
		return types.ArchARMV7
	}
	if strings.Contains(arch, "64") {
		return types.ArchX86_64
	}
	return types.ArchX86
}
