package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipekit/internal/types"
)

func TestLoadDescriptorYAML(t *testing.T) {
	adapter := NewDescriptorFileAdapter()
	descriptor, err := adapter.LoadDescriptor("../../fixtures/windows-msvc-debug.yaml")
	require.NoError(t, err)

	want := types.TargetDescriptor{
		OS:        types.OSWindows,
		Arch:      "x86_64",
		BuildType: types.BuildTypeDebug,
		Compiler: types.Compiler{
			Name:    "msvc",
			Version: "193",
			Runtime: "static",
		},
		Options: map[string]bool{"shared": false},
	}
	if diff := cmp.Diff(want, descriptor); diff != "" {
		t.Fatalf("unexpected descriptor (-want +got):\n%s", diff)
	}
}

func TestLoadDescriptorTOML(t *testing.T) {
	adapter := NewDescriptorFileAdapter()
	descriptor, err := adapter.LoadDescriptor("../../fixtures/macos-armv8.toml")
	require.NoError(t, err)

	assert.Equal(t, types.OSMacos, descriptor.OS)
	assert.Equal(t, "armv8", descriptor.Arch)
	assert.Equal(t, "apple-clang", descriptor.Compiler.Name)
	assert.Equal(t, "libc++", descriptor.Compiler.LibCxx)
	shared, ok := descriptor.Option("shared")
	require.True(t, ok)
	assert.True(t, shared)
}

func TestLoadDescriptorInitialisesOptions(t *testing.T) {
	adapter := NewDescriptorFileAdapter()
	descriptor, err := adapter.LoadDescriptor("../../fixtures/linux-gcc9.yaml")
	require.NoError(t, err)
	require.NotNil(t, descriptor.Options)
	assert.Empty(t, descriptor.Options)
}

func TestLoadDescriptorErrors(t *testing.T) {
	dir := t.TempDir()
	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("os: [unterminated"), 0644))
	unknownExt := filepath.Join(dir, "target.json")
	require.NoError(t, os.WriteFile(unknownExt, []byte("{}"), 0644))

	tests := []struct {
		name string
		path string
		code errbuilder.ErrCode
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.yaml"), code: errbuilder.CodeNotFound},
		{name: "malformed yaml", path: badYAML, code: errbuilder.CodeInvalidArgument},
		{name: "unknown extension", path: unknownExt, code: errbuilder.CodeInvalidArgument},
	}
	adapter := NewDescriptorFileAdapter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapter.LoadDescriptor(tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.code, errbuilder.CodeOf(err))
		})
	}
}
