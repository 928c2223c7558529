package mods

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"arcc/common"

	"github.com/pelletier/go-toml"
)

// tomlProjectFile represents the project file as it is encoded in TOML.
type tomlProjectFile struct {
	Project   *tomlProject      `toml:"project"`
	Libraries map[string]string `toml:"libraries,omitempty"`
}

// tomlProject represents the project table as it is encoded in TOML.
type tomlProject struct {
	Name        string   `toml:"name"`
	SearchPaths []string `toml:"search-paths,omitempty"`
	Output      string   `toml:"output,omitempty"`
	LogLevel    string   `toml:"log-level,omitempty"`
	CacheSize   int      `toml:"cache-size,omitempty"`
	Version     string   `toml:"arcc-version"`
}

// validLogLevels is the set of log level names accepted in project files.
var validLogLevels = map[string]struct{}{
	"silent":  {},
	"error":   {},
	"warn":    {},
	"verbose": {},
}

// LoadConfig loads the project configuration for the given directory.  If the
// directory contains no project file, the default configuration is returned.
// Relative paths in the project file are made absolute against the directory.
func LoadConfig(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig(absDir)

	// open file
	f, err := os.Open(filepath.Join(absDir, common.ConfigFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, err
	}
	defer f.Close()

	// unmarshal the contents
	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, fmt.Errorf("error parsing %s: %s", common.ConfigFileName, err.Error())
	}

	if err := validateProject(absDir, tpf); err != nil {
		return nil, err
	}

	// move all the relevant TOML attributes over to the configuration
	cfg.Name = tpf.Project.Name

	for _, sp := range tpf.Project.SearchPaths {
		cfg.SearchPaths = append(cfg.SearchPaths, absPathFrom(absDir, sp))
	}

	if tpf.Project.Output != "" {
		cfg.Output = absPathFrom(absDir, tpf.Project.Output)
	}

	if tpf.Project.LogLevel != "" {
		cfg.LogLevel = tpf.Project.LogLevel
	}

	if tpf.Project.CacheSize > 0 {
		cfg.CacheSize = tpf.Project.CacheSize
	}

	for importPath, libPath := range tpf.Libraries {
		cfg.Libraries[importPath] = absPathFrom(absDir, libPath)
	}

	return cfg, nil
}

// validateProject checks that the top level project contents are valid.
func validateProject(dir string, tpf *tomlProjectFile) error {
	if tpf.Project == nil {
		return fmt.Errorf("missing [project] table in project file at %s", dir)
	}

	if tpf.Project.Name == "" {
		return fmt.Errorf("missing project name for project at %s", dir)
	}

	if !IsValidIdentifier(tpf.Project.Name) {
		return errors.New("project name must be a valid identifier")
	}

	if tpf.Project.LogLevel != "" {
		if _, ok := validLogLevels[tpf.Project.LogLevel]; !ok {
			return fmt.Errorf("invalid log level: `%s`", tpf.Project.LogLevel)
		}
	}

	if tpf.Project.CacheSize < 0 {
		return errors.New("cache size cannot be negative")
	}

	return nil
}

// absPathFrom makes a path absolute relative to a base directory.
func absPathFrom(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(base, path)
}
