package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"arcc/common"

	"github.com/pelletier/go-toml"
)

// InitProject creates a new project file for a project with the given name in
// the given directory.
func InitProject(name, dir string) error {
	// convert the project directory to the path to project file
	projFilePath := filepath.Join(dir, common.ConfigFileName)

	// check to see if a project already exists
	_, err := os.Stat(projFilePath)
	if err == nil {
		return errors.New("project file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("project file error: %s", err.Error())
	}

	// validate project name
	if !IsValidIdentifier(name) {
		return errors.New("project name must be a valid identifier")
	}

	// create project
	tpf := &tomlProjectFile{
		Project: &tomlProject{
			Name:        name,
			SearchPaths: []string{"lib"},
			Output:      filepath.Join("out", name+common.IRFileExtension),
			LogLevel:    "verbose",
			CacheSize:   DefaultCacheSize,
			Version:     common.ArccVersion,
		},
	}

	// encode and save project to file
	f, err := os.Create(projFilePath)
	if err != nil {
		return fmt.Errorf("error creating project file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(tpf); err != nil {
		return fmt.Errorf("error encoding TOML %s", err.Error())
	}

	return nil
}
