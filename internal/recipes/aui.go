package recipes

import (
	"recipekit/internal/policies"
	"recipekit/internal/types"
)

// AUI packages the aui declarative UI toolkit.
type AUI struct{}

func NewAUI() AUI {
	return AUI{}
}

func (AUI) Metadata() types.RecipeMetadata {
	return types.RecipeMetadata{
		Name:        "aui",
		License:     "MPL-2.0",
		URL:         "https://github.com/aui-framework/aui",
		Homepage:    "https://aui-framework.github.io/",
		Description: "Declarative UI toolkit for modern C++20",
		Topics:      []string{"ui", "gui", "framework", "cpp20", "declarative"},
	}
}

func (AUI) DefaultVersion() string {
	return "7.1.2"
}

func (AUI) Options() []types.OptionDecl {
	return []types.OptionDecl{
		{Name: "shared", Default: false},
		{Name: "fPIC", Default: true},
	}
}

// Configure keeps the descriptor as given. aui has no shared/fPIC pruning.
func (AUI) Configure(_ string, descriptor types.TargetDescriptor) types.TargetDescriptor {
	return descriptor
}

func (AUI) CompilerMinimums() map[string]string {
	return map[string]string{
		types.CompilerGCC:   "10",
		types.CompilerClang: "11",
		types.CompilerMSVC:  "193",
	}
}

func (AUI) BuildRequirements(_ string, d types.TargetDescriptor) []types.Requirement {
	reqs := []types.Requirement{build("cmake", "[>=3.16 <4]")}
	if d.OS == types.OSLinux {
		reqs = append(reqs, build("pkgconf", "2.1.0"))
	}
	return reqs
}

func (AUI) Requirements(_ string, d types.TargetDescriptor) []types.Requirement {
	reqs := []types.Requirement{
		host("zlib", "1.3.1"),
		host("fmt", "9.1.0"),
		host("range-v3", "0.12.0"),
		host("glm", "0.9.9.8"),
		host("openssl", "3.2.1"),
		host("libcurl", "8.6.0"),
		host("lunasvg", "2.3.2"),
		host("libwebp", "1.3.2"),
		host("freetype", "2.13.2"),
		host("opus", "1.4"),
		host("soxr", "0.1.3"),
		host("gtest", "1.14.0"),
		host("benchmark", "1.8.3"),
	}
	// Each clause is evaluated on its own; several may apply at once.
	if d.OS == types.OSLinux {
		reqs = append(reqs,
			host("libbacktrace", "cci.20240730"),
			host("pulseaudio", "14.2"),
			host("libx11", "1.8.7"),
			host("fontconfig", "2.15.0"),
			host("dbus", "1.13.18"),
			host("gtk", "3.24.24"),
		)
	}
	if d.OS == types.OSAndroid {
		reqs = append(reqs, host("oboe", "1.8.0"))
	}
	if hasGLEW(d.OS) {
		reqs = append(reqs, host("glew", "2.2.0"))
	}
	return reqs
}

func (AUI) Toolchain(_ string, _ types.TargetDescriptor) []types.ToolchainVariable {
	return []types.ToolchainVariable{
		variable("AUI_BUILD_EXAMPLES", false),
		variable("AUI_INSTALL_RUNTIME_DEPENDENCIES", false),
		variable("AUIB_NO_PRECOMPILED", true),
		variable("AUIB_DISABLE", true),
	}
}

func (a AUI) PackageInfo(_ string, d types.TargetDescriptor) types.PackageInfo {
	return types.PackageInfo{
		Root: types.ArtifactDescriptor{Defines: a.defines(d)},
		Components: []types.ArtifactDescriptor{
			a.audio(d),
			a.core(d),
			a.crypt(d),
			component("aui_curl", "aui.curl", "libcurl::libcurl"),
			component("aui_image", "aui.image", "lunasvg::lunasvg", "libwebp::libwebp"),
			component("aui_json", "aui.json"),
			a.network(d),
			{Component: "aui_toolbox", IncludeDirs: []string{"include"}},
			component("aui_uitests", "aui.uitests", "gtest::gtest", "benchmark::benchmark"),
			a.views(d),
			component("aui_xml", "aui.xml"),
		},
	}
}

func (AUI) audio(d types.TargetDescriptor) types.ArtifactDescriptor {
	c := component("aui_audio", "aui.audio", "opus::opus", "soxr::soxr")
	switch {
	case d.OS == types.OSLinux:
		c.Requires = append(c.Requires, "pulseaudio::pulseaudio")
	case d.OS == types.OSAndroid:
		c.Requires = append(c.Requires, "oboe::oboe")
	case d.OS == types.OSWindows:
		c.SystemLibs = []string{"winmm", "dsound", "dxguid"}
	case policies.IsAppleOS(d.OS):
		c.Frameworks = []string{"CoreAudio", "AVFoundation", "AudioToolbox"}
		if d.OS == types.OSMacos {
			c.Frameworks = append(c.Frameworks, "AppKit", "Cocoa", "CoreData", "Foundation", "QuartzCore")
		}
	}
	return c
}

func (AUI) core(d types.TargetDescriptor) types.ArtifactDescriptor {
	c := component("aui_core", "aui.core", "fmt::fmt", "range-v3::range-v3", "glm::glm")
	switch d.OS {
	case types.OSLinux:
		c.Requires = append(c.Requires, "libbacktrace::libbacktrace")
		c.SystemLibs = []string{"pthread", "dl"}
	case types.OSWindows:
		c.SystemLibs = []string{"dbghelp", "shell32", "shlwapi", "kernel32", "psapi"}
	case types.OSAndroid:
		c.SystemLibs = []string{"log"}
	}
	return c
}

func (AUI) crypt(d types.TargetDescriptor) types.ArtifactDescriptor {
	c := component("aui_crypt", "aui.crypt", "openssl::openssl")
	if d.OS == types.OSWindows {
		c.SystemLibs = []string{"wsock32", "ws2_32"}
	}
	return c
}

func (AUI) network(d types.TargetDescriptor) types.ArtifactDescriptor {
	c := component("aui_network", "aui.network")
	if d.OS == types.OSWindows {
		c.SystemLibs = []string{"wsock32", "ws2_32", "iphlpapi"}
	}
	return c
}

func (AUI) views(d types.TargetDescriptor) types.ArtifactDescriptor {
	c := component("aui_views", "aui.views", "freetype::freetype")
	if hasGLEW(d.OS) {
		c.Requires = append(c.Requires, "glew::glew")
	}
	switch d.OS {
	case types.OSLinux:
		c.Requires = append(c.Requires, "libx11::libx11", "dbus::dbus", "fontconfig::fontconfig", "gtk::gtk")
	case types.OSWindows:
		c.SystemLibs = []string{"dwmapi", "winmm", "shlwapi", "gdi32", "ole32", "opengl32", "uuid"}
	case types.OSAndroid:
		c.SystemLibs = []string{"EGL", "GLESv2", "GLESv3"}
	case types.OSiOS:
		c.Frameworks = []string{"OpenGLES"}
	case types.OSMacos:
		c.Frameworks = []string{"AppKit", "Cocoa", "CoreData", "Foundation", "QuartzCore", "UniformTypeIdentifiers", "OpenGL"}
	}
	return c
}

var auiImportDefines = []string{
	"API_AUI_AUDIO=AUI_IMPORT",
	"API_AUI_CORE=AUI_IMPORT",
	"API_AUI_CRYPT=AUI_IMPORT",
	"API_AUI_CURL=AUI_IMPORT",
	"API_AUI_DATA=AUI_IMPORT",
	"API_AUI_IMAGE=AUI_IMPORT",
	"API_AUI_JSON=AUI_IMPORT",
	"API_AUI_NETWORK=AUI_IMPORT",
	"API_AUI_UITESTS=AUI_IMPORT",
	"API_AUI_UPDATER=AUI_IMPORT",
	"API_AUI_VIEWS=AUI_IMPORT",
	"API_AUI_XML=AUI_IMPORT",
	"GLM_ENABLE_EXPERIMENTAL=1",
}

// defines assembles the package-wide defines. Order matters to
// consumers that diff generated build files, so it is fixed.
func (AUI) defines(d types.TargetDescriptor) []string {
	var defines []string
	if !d.Options["shared"] {
		defines = append(defines, "AUI_STATIC")
	}
	if d.BuildType == types.BuildTypeDebug {
		defines = append(defines, "AUI_DEBUG=1")
	} else {
		defines = append(defines, "AUI_DEBUG=0")
	}
	defines = append(defines, auiImportDefines...)

	switch d.OS {
	case types.OSWindows:
		defines = append(defines, "AUI_PLATFORM_WIN=1")
	case types.OSLinux:
		defines = append(defines, "AUI_PLATFORM_LINUX=1", "AUI_PLATFORM_UNIX=1")
	case types.OSMacos:
		defines = append(defines, "AUI_PLATFORM_APPLE=1", "AUI_PLATFORM_MACOS=1", "AUI_PLATFORM_UNIX=1")
	case types.OSAndroid:
		defines = append(defines, "AUI_PLATFORM_ANDROID=1", "AUI_PLATFORM_UNIX=1")
	case types.OSiOS:
		defines = append(defines, "AUI_PLATFORM_APPLE=1", "AUI_PLATFORM_IOS=1", "AUI_PLATFORM_UNIX=1")
	case types.OSEmscripten:
		defines = append(defines, "AUI_PLATFORM_EMSCRIPTEN=1")
	}

	switch policies.CompilerFamily(d.Compiler.Name) {
	case types.CompilerFamilyClang:
		defines = append(defines, "AUI_COMPILER_CLANG=1")
	case types.CompilerFamilyGCC:
		defines = append(defines, "AUI_COMPILER_GCC=1")
	case types.CompilerFamilyMSVC:
		defines = append(defines, "AUI_COMPILER_MSVC=1")
	}

	switch policies.ClassifyArch(d.Arch) {
	case types.ArchARM64:
		defines = append(defines, "AUI_ARCH_ARM_64=1")
	case types.ArchARMV7:
		defines = append(defines, "AUI_ARCH_ARM_V7=1")
	case types.ArchX86_64:
		defines = append(defines, "AUI_ARCH_X86_64=1")
	default:
		defines = append(defines, "AUI_ARCH_X86=1")
	}
	return defines
}

func hasGLEW(os types.OS) bool {
	return os == types.OSWindows || os == types.OSLinux || os == types.OSMacos
}
