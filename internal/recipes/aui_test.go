package recipes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipekit/internal/types"
)

func auiTarget(os types.OS, arch string, compiler string, buildType types.BuildType, shared bool) types.TargetDescriptor {
	return types.TargetDescriptor{
		OS:        os,
		Arch:      arch,
		Compiler:  types.Compiler{Name: compiler, Version: "193"},
		BuildType: buildType,
		Options:   map[string]bool{"shared": shared, "fPIC": true},
	}
}

func requirementNames(reqs []types.Requirement) []string {
	names := make([]string, 0, len(reqs))
	for _, req := range reqs {
		names = append(names, req.Name)
	}
	return names
}

func TestAUIWindowsStaticDebugDefines(t *testing.T) {
	recipe := NewAUI()
	d := auiTarget(types.OSWindows, "x86_64", "msvc", types.BuildTypeDebug, false)
	info := recipe.PackageInfo("7.1.2", d)

	defines := info.Root.Defines
	require.GreaterOrEqual(t, len(defines), 2)
	if diff := cmp.Diff([]string{"AUI_STATIC", "AUI_DEBUG=1"}, defines[:2]); diff != "" {
		t.Fatalf("unexpected leading defines (-want +got):\n%s", diff)
	}
	assert.Contains(t, defines, "AUI_PLATFORM_WIN=1")
	assert.Contains(t, defines, "AUI_COMPILER_MSVC=1")
	assert.Contains(t, defines, "AUI_ARCH_X86_64=1")
	assert.NotContains(t, defines, "AUI_PLATFORM_UNIX=1")

	core, ok := info.Component("aui_core")
	require.True(t, ok)
	if diff := cmp.Diff([]string{"dbghelp", "shell32", "shlwapi", "kernel32", "psapi"}, core.SystemLibs); diff != "" {
		t.Fatalf("unexpected aui_core system libs (-want +got):\n%s", diff)
	}
}

func TestAUISharedReleaseDefines(t *testing.T) {
	d := auiTarget(types.OSLinux, "x86_64", "gcc", types.BuildTypeRelease, true)
	defines := NewAUI().PackageInfo("7.1.2", d).Root.Defines
	assert.NotContains(t, defines, "AUI_STATIC")
	if diff := cmp.Diff("AUI_DEBUG=0", defines[0]); diff != "" {
		t.Fatalf("unexpected first define (-want +got):\n%s", diff)
	}
	assert.Contains(t, defines, "AUI_PLATFORM_LINUX=1")
	assert.Contains(t, defines, "AUI_PLATFORM_UNIX=1")
	assert.Contains(t, defines, "AUI_COMPILER_GCC=1")
}

func TestAUIDefinesOrder(t *testing.T) {
	d := auiTarget(types.OSMacos, "armv8", "apple-clang", types.BuildTypeRelease, false)
	defines := NewAUI().PackageInfo("7.1.2", d).Root.Defines
	want := append([]string{"AUI_STATIC", "AUI_DEBUG=0"}, auiImportDefines...)
	want = append(want,
		"AUI_PLATFORM_APPLE=1", "AUI_PLATFORM_MACOS=1", "AUI_PLATFORM_UNIX=1",
		"AUI_COMPILER_CLANG=1",
		"AUI_ARCH_ARM_V7=1",
	)
	if diff := cmp.Diff(want, defines); diff != "" {
		t.Fatalf("unexpected defines (-want +got):\n%s", diff)
	}
}

func TestAUIArchDefines(t *testing.T) {
	tests := []struct {
		arch string
		want string
	}{
		{"arm64", "AUI_ARCH_ARM_64=1"},
		{"armv7hf", "AUI_ARCH_ARM_V7=1"},
		{"x86_64", "AUI_ARCH_X86_64=1"},
		{"x86", "AUI_ARCH_X86=1"},
	}
	for _, tt := range tests {
		t.Run(tt.arch, func(t *testing.T) {
			defines := NewAUI().PackageInfo("7.1.2", auiTarget(types.OSLinux, tt.arch, "gcc", types.BuildTypeRelease, false)).Root.Defines
			if diff := cmp.Diff(tt.want, defines[len(defines)-1]); diff != "" {
				t.Fatalf("unexpected arch define (-want +got):\n%s", diff)
			}
			assert.NotContains(t, defines[:len(defines)-1], "AUI_ARCH_X86_64=1")
		})
	}
}

func TestAUIUnknownCompilerAddsNoCompilerDefine(t *testing.T) {
	defines := NewAUI().PackageInfo("7.1.2", auiTarget(types.OSLinux, "x86_64", "intel-cc", types.BuildTypeRelease, false)).Root.Defines
	for _, define := range defines {
		assert.NotContains(t, define, "AUI_COMPILER_")
	}
}

func TestAUIRequirementsAreAdditive(t *testing.T) {
	recipe := NewAUI()
	tests := []struct {
		os      types.OS
		present []string
		absent  []string
	}{
		{os: types.OSLinux, present: []string{"zlib", "pulseaudio", "gtk", "libbacktrace", "glew"}, absent: []string{"oboe"}},
		{os: types.OSAndroid, present: []string{"zlib", "oboe"}, absent: []string{"glew", "pulseaudio"}},
		{os: types.OSWindows, present: []string{"zlib", "glew"}, absent: []string{"oboe", "gtk"}},
		{os: types.OSMacos, present: []string{"glew"}, absent: []string{"gtk"}},
		{os: types.OSiOS, present: []string{"freetype"}, absent: []string{"glew", "oboe"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.os), func(t *testing.T) {
			names := requirementNames(recipe.Requirements("7.1.2", auiTarget(tt.os, "x86_64", "clang", "", false)))
			for _, name := range tt.present {
				assert.Contains(t, names, name)
			}
			for _, name := range tt.absent {
				assert.NotContains(t, names, name)
			}
		})
	}
}

func TestAUIBuildRequirements(t *testing.T) {
	linux := NewAUI().BuildRequirements("7.1.2", auiTarget(types.OSLinux, "x86_64", "gcc", "", false))
	if diff := cmp.Diff([]string{"cmake", "pkgconf"}, requirementNames(linux)); diff != "" {
		t.Fatalf("unexpected linux build requirements (-want +got):\n%s", diff)
	}
	windows := NewAUI().BuildRequirements("7.1.2", auiTarget(types.OSWindows, "x86_64", "msvc", "", false))
	if diff := cmp.Diff([]string{"cmake"}, requirementNames(windows)); diff != "" {
		t.Fatalf("unexpected windows build requirements (-want +got):\n%s", diff)
	}
}

// System libraries and frameworks must come from exactly one OS branch.
func TestAUILinkFieldsAreExclusivePerOS(t *testing.T) {
	allowed := map[types.OS]map[string]struct{}{}
	add := func(os types.OS, names ...string) {
		if allowed[os] == nil {
			allowed[os] = map[string]struct{}{}
		}
		for _, name := range names {
			allowed[os][name] = struct{}{}
		}
	}
	add(types.OSWindows, "winmm", "dsound", "dxguid", "dbghelp", "shell32", "shlwapi", "kernel32", "psapi",
		"wsock32", "ws2_32", "iphlpapi", "dwmapi", "gdi32", "ole32", "opengl32", "uuid")
	add(types.OSLinux, "pthread", "dl")
	add(types.OSAndroid, "log", "EGL", "GLESv2", "GLESv3")
	add(types.OSMacos, "CoreAudio", "AVFoundation", "AudioToolbox", "AppKit", "Cocoa", "CoreData",
		"Foundation", "QuartzCore", "UniformTypeIdentifiers", "OpenGL")
	add(types.OSiOS, "CoreAudio", "AVFoundation", "AudioToolbox", "OpenGLES")

	for _, os := range []types.OS{types.OSWindows, types.OSLinux, types.OSAndroid, types.OSMacos, types.OSiOS, types.OSEmscripten} {
		t.Run(string(os), func(t *testing.T) {
			info := NewAUI().PackageInfo("7.1.2", auiTarget(os, "x86_64", "clang", "", false))
			for _, c := range info.Components {
				for _, name := range append(append([]string{}, c.SystemLibs...), c.Frameworks...) {
					_, ok := allowed[os][name]
					assert.True(t, ok, "%s links %s on %s", c.Component, name, os)
				}
			}
		})
	}
}

func TestAUIConfigureKeepsOptions(t *testing.T) {
	for _, target := range []types.TargetDescriptor{
		auiTarget(types.OSLinux, "x86_64", "gcc", "", true),
		auiTarget(types.OSLinux, "x86_64", "gcc", "", false),
		auiTarget(types.OSWindows, "x86_64", "msvc", "", true),
	} {
		got := NewAUI().Configure("7.1.2", target)
		if diff := cmp.Diff(target, got); diff != "" {
			t.Fatalf("configure changed %s target (-want +got):\n%s", target.OS, diff)
		}
		_, ok := got.Options["fPIC"]
		assert.True(t, ok, "fPIC kept on %s", target.OS)
	}
}

func TestAUIToolchain(t *testing.T) {
	vars := NewAUI().Toolchain("7.1.2", auiTarget(types.OSLinux, "x86_64", "gcc", "", false))
	want := []types.ToolchainVariable{
		{Name: "AUI_BUILD_EXAMPLES", Value: "OFF"},
		{Name: "AUI_INSTALL_RUNTIME_DEPENDENCIES", Value: "OFF"},
		{Name: "AUIB_NO_PRECOMPILED", Value: "ON"},
		{Name: "AUIB_DISABLE", Value: "ON"},
	}
	if diff := cmp.Diff(want, vars); diff != "" {
		t.Fatalf("unexpected toolchain variables (-want +got):\n%s", diff)
	}
}
