package recipes

import (
	"strings"

	"recipekit/internal/policies"
	"recipekit/internal/types"
)

// capstoneArchs lists the architecture modules that can be toggled. The
// order is the order of the generated CAPSTONE_<ARCH>_SUPPORT variables.
var capstoneArchs = []string{"arm", "m68k", "mips", "ppc", "sparc", "sysz", "xcore", "x86", "tms320c64x", "m680x", "evm"}

// Capstone packages the capstone disassembly framework.
type Capstone struct{}

func NewCapstone() Capstone {
	return Capstone{}
}

func (Capstone) Metadata() types.RecipeMetadata {
	return types.RecipeMetadata{
		Name:     "capstone",
		License:  "BSD-3-Clause",
		URL:      "https://github.com/conan-io/conan-center-index",
		Homepage: "http://www.capstone-engine.org",
		Description: "Capstone disassembly/disassembler framework: Core (Arm, Arm64, BPF, " +
			"EVM, M68K, M680X, MOS65xx, Mips, PPC, RISCV, Sparc, SystemZ, " +
			"TMS320C64x, Web Assembly, X86, X86_64, XCore) + bindings.",
		Topics: []string{
			"reverse-engineering", "disassembler", "security", "framework", "arm", "arm64",
			"x86", "sparc", "powerpc", "mips", "x86-64", "ethereum", "systemz",
			"webassembly", "m68k", "m0s65xx", "m680x", "tms320c64x", "bpf", "riscv",
		},
	}
}

func (Capstone) DefaultVersion() string {
	return "5.0.1"
}

func (Capstone) Options() []types.OptionDecl {
	decls := []types.OptionDecl{
		{Name: "shared", Default: false},
		{Name: "fPIC", Default: true},
		{Name: "use_default_alloc", Default: true},
	}
	for _, arch := range capstoneArchs {
		decls = append(decls, types.OptionDecl{Name: arch, Default: true})
	}
	return decls
}

// Configure drops the C++ settings since capstone is a C library.
func (Capstone) Configure(_ string, descriptor types.TargetDescriptor) types.TargetDescriptor {
	descriptor.Compiler.CppStd = ""
	descriptor.Compiler.LibCxx = ""
	policies.RemoveSharedFPIC(&descriptor)
	return descriptor
}

func (Capstone) CompilerMinimums() map[string]string {
	return nil
}

func (Capstone) Requirements(string, types.TargetDescriptor) []types.Requirement {
	return nil
}

func (Capstone) BuildRequirements(string, types.TargetDescriptor) []types.Requirement {
	return nil
}

func (Capstone) Toolchain(version string, d types.TargetDescriptor) []types.ToolchainVariable {
	shared := d.Options["shared"]
	legacy := before5(version)
	var vars []types.ToolchainVariable
	if legacy {
		vars = append(vars,
			cacheVariable("CAPSTONE_BUILD_STATIC", !shared),
			cacheVariable("CAPSTONE_BUILD_SHARED", shared),
		)
	}
	vars = append(vars,
		cacheVariable("CAPSTONE_BUILD_TESTS", false),
		cacheVariable("CAPSTONE_BUILD_CSTOOL", false),
		cacheVariable("CAPSTONE_ARCHITECUTRE_DEFAULT", false),
	)
	if legacy {
		vars = append(vars, cacheVariable("CAPSTONE_USE_SYS_DYN_MEM", d.Options["use_default_alloc"]))
	} else {
		vars = append(vars, cacheVariable("CAPSTONE_USE_DEFAULT_ALLOC", d.Options["use_default_alloc"]))
	}
	for _, arch := range capstoneArchs {
		vars = append(vars, cacheVariable("CAPSTONE_"+strings.ToUpper(arch)+"_SUPPORT", d.Options[arch]))
	}
	vars = append(vars, cacheVariable("CAPSTONE_BUILD_STATIC_RUNTIME", policies.IsMSVCStaticRuntime(d)))
	return vars
}

func (Capstone) PackageInfo(version string, d types.TargetDescriptor) types.PackageInfo {
	shared := d.Options["shared"]
	lib := "capstone"
	if policies.IsMSVC(d) && shared && before5(version) {
		lib += "_dll"
	}
	root := types.ArtifactDescriptor{Libs: []string{lib}}
	if shared {
		root.Defines = append(root.Defines, "CAPSTONE_SHARED")
	}
	return types.PackageInfo{Root: root}
}

// before5 reports whether version predates the 5.0 build layout. The
// resolver rejects unparsable versions before this runs.
func before5(version string) bool {
	less, err := policies.VersionLess(version, "5.0")
	if err != nil {
		return false
	}
	return less
}
