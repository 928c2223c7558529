package mods

// Config represents a project configuration: the contents of the project file
// merged with defaults.
type Config struct {
	// Name is the name of the project.
	Name string

	// Root is the path to the directory containing the project file.  If no
	// project file was found, this is the directory the configuration was
	// loaded for.
	Root string

	// SearchPaths is the list of absolute directories searched for imports
	// that cannot be found relative to the importing file.
	SearchPaths []string

	// Output is the path the compiled IR is written to.  If this is empty,
	// the output is written next to the compiled file.
	Output string

	// LogLevel is the name of the default log level.
	LogLevel string

	// CacheSize is the maximum number of parsed modules kept in memory.
	CacheSize int

	// Libraries maps import paths to the absolute paths of the native
	// libraries or source files they should be loaded from.  These overrides
	// take precedence over all other import resolution.
	Libraries map[string]string
}

// DefaultCacheSize is the module cache size used when none is configured.
const DefaultCacheSize = 64

// DefaultConfig returns the configuration used for a directory containing no
// project file.
func DefaultConfig(dir string) *Config {
	return &Config{
		Root:      dir,
		LogLevel:  "verbose",
		CacheSize: DefaultCacheSize,
		Libraries: make(map[string]string),
	}
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (project name, import alias, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}
