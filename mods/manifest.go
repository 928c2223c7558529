package mods

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"arcc/common"

	"github.com/pelletier/go-toml"
)

// Manifest describes the functions exported by a native library.  It is read
// from a TOML file sitting next to the library with the same base name.
type Manifest struct {
	// Path is the absolute path of the library the manifest describes.
	Path string `toml:"-"`

	Functions map[string]*ManifestFunction `toml:"functions"`
}

// ManifestFunction is the signature of a single native library function.
// Types are written using source type labels: `int`, `string[]`, etc.
type ManifestFunction struct {
	Parameters []string `toml:"parameters"`
	Returns    string   `toml:"returns"`
}

// ManifestPath returns the path of the manifest for a native library.
func ManifestPath(libPath string) string {
	return strings.TrimSuffix(libPath, filepath.Ext(libPath)) + common.ManifestFileExt
}

// LoadManifest loads the manifest for the native library at the given path.
func LoadManifest(libPath string) (*Manifest, error) {
	mpath := ManifestPath(libPath)
	if mpath == libPath {
		return nil, fmt.Errorf("native library `%s` cannot be its own manifest", libPath)
	}

	buff, err := ioutil.ReadFile(mpath)
	if err != nil {
		return nil, fmt.Errorf("error loading manifest for native library `%s`: %s", libPath, err.Error())
	}

	m := &Manifest{}
	if err := toml.Unmarshal(buff, m); err != nil {
		return nil, fmt.Errorf("error parsing manifest `%s`: %s", mpath, err.Error())
	}

	for name, fn := range m.Functions {
		if !IsValidIdentifier(name) {
			return nil, fmt.Errorf("manifest `%s` declares invalid function name `%s`", mpath, name)
		}

		if fn == nil {
			m.Functions[name] = &ManifestFunction{}
		}
	}

	m.Path = libPath
	return m, nil
}
