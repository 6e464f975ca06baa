package types

type OS string

const (
	OSWindows    OS = "Windows"
	OSLinux      OS = "Linux"
	OSMacos      OS = "Macos"
	OSiOS        OS = "iOS"
	OSAndroid    OS = "Android"
	OSEmscripten OS = "Emscripten"
	OSFreeBSD    OS = "FreeBSD"
)

type BuildType string

const (
	BuildTypeDebug          BuildType = "Debug"
	BuildTypeRelease        BuildType = "Release"
	BuildTypeRelWithDebInfo BuildType = "RelWithDebInfo"
	BuildTypeMinSizeRel     BuildType = "MinSizeRel"
)

const (
	CompilerGCC        = "gcc"
	CompilerClang      = "clang"
	CompilerAppleClang = "apple-clang"
	CompilerMSVC       = "msvc"
)

type CompilerFamily string

const (
	CompilerFamilyUnknown CompilerFamily = ""
	CompilerFamilyGCC     CompilerFamily = "gcc"
	CompilerFamilyClang   CompilerFamily = "clang"
	CompilerFamilyMSVC    CompilerFamily = "msvc"
)

type ArchClass string

const (
	ArchARM64  ArchClass = "arm64"
	ArchARMV7  ArchClass = "armv7"
	ArchX86_64 ArchClass = "x86_64"
	ArchX86    ArchClass = "x86"
)
