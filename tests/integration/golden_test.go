package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"recipekit/internal/adapters"
	"recipekit/internal/core"
	"recipekit/internal/recipes"
	"recipekit/internal/types"
	"recipekit/tests/testutil"
)

type goldenCase struct {
	name       string
	recipe     string
	version    string
	descriptor string
}

var goldenCases = []goldenCase{
	{name: "aui-windows-msvc-debug", recipe: "aui", version: "7.1.2", descriptor: "windows-msvc-debug.yaml"},
	{name: "aui-linux-gcc13", recipe: "aui", version: "7.1.2", descriptor: "linux-gcc13.yaml"},
	{name: "capstone-4-macos-armv8", recipe: "capstone", version: "4.0.2", descriptor: "macos-armv8.toml"},
	{name: "capstone-5-windows-msvc", recipe: "capstone", version: "5.0.1", descriptor: "windows-msvc-debug.yaml"},
}

// TestGoldenResolve resolves each fixture target and compares the outputs
// against the golden files in testdata/golden. package_info.yaml is
// compared after decoding; the other files byte for byte.
//
// To update golden files after an intentional change, run the test with
// RECIPEKIT_UPDATE_GOLDEN=1 and commit the result.
func TestGoldenResolve(t *testing.T) {
	root := testutil.RepoRoot(t)
	catalog := recipes.NewCatalog()
	descriptors := adapters.NewDescriptorFileAdapter()

	for _, tc := range goldenCases {
		t.Run(tc.name, func(t *testing.T) {
			recipe, err := catalog.Lookup(tc.recipe)
			require.NoError(t, err)
			descriptor, err := descriptors.LoadDescriptor(testutil.Fixture(t, tc.descriptor))
			require.NoError(t, err)

			resolution, err := core.NewResolver().Resolve(t.Context(), recipe, tc.version, descriptor)
			require.NoError(t, err)

			outDir := t.TempDir()
			output := adapters.NewOutputFileAdapter(outDir)
			require.NoError(t, output.WriteRequirements(resolution.Requirements))
			require.NoError(t, output.WritePackageInfo(resolution.PackageInfo))
			require.NoError(t, output.WriteToolchain(resolution.ToolchainVariables))

			goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden", tc.name)
			for _, name := range []string{adapters.RequirementsFile, adapters.PackageInfoFile, adapters.ToolchainFile} {
				actual, err := os.ReadFile(filepath.Join(outDir, name))
				require.NoError(t, err)

				goldenPath := filepath.Join(goldenDir, name)
				if os.Getenv("RECIPEKIT_UPDATE_GOLDEN") != "" {
					require.NoError(t, os.MkdirAll(goldenDir, 0o755))
					require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
					continue
				}
				expected, err := os.ReadFile(goldenPath)
				require.NoError(t, err, "golden file %s is missing", goldenPath)

				if name == adapters.PackageInfoFile {
					var want, got types.PackageInfo
					require.NoError(t, yaml.Unmarshal(expected, &want))
					require.NoError(t, yaml.Unmarshal(actual, &got))
					if diff := cmp.Diff(want, got); diff != "" {
						t.Fatalf("golden mismatch for %s/%s (-want +got):\n%s", tc.name, name, diff)
					}
					continue
				}
				assert.Equal(t, string(expected), string(actual), "golden mismatch for %s/%s", tc.name, name)
			}
		})
	}
}

// TestGoldenResolveStructure verifies structural properties of the
// fixture resolutions independent of exact values.
func TestGoldenResolveStructure(t *testing.T) {
	catalog := recipes.NewCatalog()
	descriptors := adapters.NewDescriptorFileAdapter()

	resolve := func(t *testing.T, recipeName string, version string, fixture string) types.Resolution {
		t.Helper()
		recipe, err := catalog.Lookup(recipeName)
		require.NoError(t, err)
		descriptor, err := descriptors.LoadDescriptor(testutil.Fixture(t, fixture))
		require.NoError(t, err)
		resolution, err := core.NewResolver().Resolve(t.Context(), recipe, version, descriptor)
		require.NoError(t, err)
		return resolution
	}

	t.Run("windows debug static aui", func(t *testing.T) {
		resolution := resolve(t, "aui", "7.1.2", "windows-msvc-debug.yaml")
		defines := resolution.PackageInfo.Root.Defines
		assert.Contains(t, defines, "AUI_STATIC")
		assert.Contains(t, defines, "AUI_DEBUG=1")
		for _, component := range resolution.PackageInfo.Components {
			assert.Empty(t, component.Frameworks, component.Component)
		}
		fPIC, hasFPIC := resolution.Descriptor.Option("fPIC")
		assert.True(t, hasFPIC, "aui keeps fPIC on Windows")
		assert.True(t, fPIC)
	})

	t.Run("macos armv8 capstone is shared", func(t *testing.T) {
		resolution := resolve(t, "capstone", "4.0.2", "macos-armv8.toml")
		assert.Contains(t, resolution.PackageInfo.Root.Defines, "CAPSTONE_SHARED")
		assert.Equal(t, []string{"capstone"}, resolution.PackageInfo.Root.Libs)
		_, hasFPIC := resolution.Descriptor.Option("fPIC")
		assert.False(t, hasFPIC)
	})

	t.Run("capstone ignores cppstd", func(t *testing.T) {
		gcc := resolve(t, "capstone", "5.0.1", "linux-gcc13.yaml")
		assert.Empty(t, gcc.Descriptor.Compiler.CppStd)
		assert.Empty(t, gcc.Descriptor.Compiler.LibCxx)
	})
}
