package policies

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"recipekit/internal/types"
)

func TestClassifyArch(t *testing.T) {
	tests := []struct {
		arch string
		want types.ArchClass
	}{
		{"arm64", types.ArchARM64},
		{"arm64ec", types.ArchARM64},
		{"armv7", types.ArchARMV7},
		{"armv7hf", types.ArchARMV7},
		{"armv8", types.ArchARMV7},
		{"x86_64", types.ArchX86_64},
		{"ppc64le", types.ArchX86_64},
		{"x86", types.ArchX86},
		{"wasm", types.ArchX86},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ClassifyArch(tt.arch)); diff != "" {
			t.Fatalf("ClassifyArch(%s) (-want +got):\n%s", tt.arch, diff)
		}
	}
}

func TestCompilerFamily(t *testing.T) {
	tests := map[string]types.CompilerFamily{
		"gcc":         types.CompilerFamilyGCC,
		"clang":       types.CompilerFamilyClang,
		"apple-clang": types.CompilerFamilyClang,
		"msvc":        types.CompilerFamilyMSVC,
		"intel-cc":    types.CompilerFamilyUnknown,
		"":            types.CompilerFamilyUnknown,
	}
	for name, want := range tests {
		if diff := cmp.Diff(want, CompilerFamily(name)); diff != "" {
			t.Fatalf("CompilerFamily(%q) (-want +got):\n%s", name, diff)
		}
	}
}

func TestIsMSVCStaticRuntime(t *testing.T) {
	static := types.TargetDescriptor{Compiler: types.Compiler{Name: "msvc", Version: "193", Runtime: "static"}}
	dynamic := types.TargetDescriptor{Compiler: types.Compiler{Name: "msvc", Version: "193", Runtime: "dynamic"}}
	gcc := types.TargetDescriptor{Compiler: types.Compiler{Name: "gcc", Version: "13", Runtime: "static"}}
	if !IsMSVCStaticRuntime(static) || IsMSVCStaticRuntime(dynamic) || IsMSVCStaticRuntime(gcc) {
		t.Fatalf("unexpected static runtime classification")
	}
}
