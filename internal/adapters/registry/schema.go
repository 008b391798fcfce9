package registry

// platformTable represents the structure of the platforms.yaml file: the
// closed set of platform identifiers with their toolchain metadata.
type platformTable struct {
	Platforms []platformEntry `yaml:"platforms"`
}

// platformEntry describes one supported platform.
type platformEntry struct {
	ID     string `yaml:"id"`
	Triple string `yaml:"triple"`
	Family string `yaml:"family"`
}

// packageDocument represents a package definition file under packages/.
type packageDocument struct {
	Name          string            `yaml:"name"`
	Version       string            `yaml:"version"`
	Description   string            `yaml:"description"`
	BuildInputs   []string          `yaml:"buildInputs"`
	RuntimeInputs []string          `yaml:"runtimeInputs"`
	Metadata      map[string]string `yaml:"metadata"`

	// Source is the locator shared by all platforms. Sources overrides it
	// per platform; a package without either entry for a platform is not
	// available there.
	Source  string            `yaml:"source"`
	Sources map[string]string `yaml:"sources"`
}
