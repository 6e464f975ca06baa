package types

// Compiler identifies the toolchain a package is built with.
type Compiler struct {
	Name    string `yaml:"name" toml:"name"`
	Version string `yaml:"version" toml:"version" validate:"required_with=Name"`
	Runtime string `yaml:"runtime,omitempty" toml:"runtime" validate:"omitempty,oneof=static dynamic"`
	CppStd  string `yaml:"cppstd,omitempty" toml:"cppstd"`
	LibCxx  string `yaml:"libcxx,omitempty" toml:"libcxx"`
}

// TargetDescriptor is the set of settings and options a package is
// resolved for. It is supplied by the caller and never mutated; recipes
// derive an effective copy through Clone.
type TargetDescriptor struct {
	OS        OS              `yaml:"os" toml:"os" validate:"required"`
	Arch      string          `yaml:"arch" toml:"arch" validate:"required"`
	Compiler  Compiler        `yaml:"compiler" toml:"compiler"`
	BuildType BuildType       `yaml:"build_type,omitempty" toml:"build_type" validate:"omitempty,oneof=Debug Release RelWithDebInfo MinSizeRel"`
	Options   map[string]bool `yaml:"options,omitempty" toml:"options"`
}

// Option returns the value of a named option and whether it is set.
func (d TargetDescriptor) Option(name string) (bool, bool) {
	value, ok := d.Options[name]
	return value, ok
}

// Clone returns a deep copy so callers can derive effective settings
// without touching the original descriptor.
func (d TargetDescriptor) Clone() TargetDescriptor {
	out := d
	out.Options = make(map[string]bool, len(d.Options))
	for name, value := range d.Options {
		out.Options[name] = value
	}
	return out
}
