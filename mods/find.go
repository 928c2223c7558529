package mods

import (
	"os"
	"path/filepath"

	"arcc/common"
)

// ResolveImport takes in an import path as written in source and attempts to
// determine the absolute path of the file it refers to.  Library overrides are
// checked first, then the directory of the importing file, then each of the
// search paths in order.  Paths written without an extension are also tried
// with the source file extension.
func (cfg *Config) ResolveImport(importerDir, path string) (string, bool) {
	// overrides take precedence over everything else
	if override, ok := cfg.Libraries[path]; ok {
		if checkPath(override) {
			return override, true
		}

		return "", false
	}

	if filepath.IsAbs(path) {
		return searchPath("", path)
	}

	// local paths are next in priority
	if importerDir != "" {
		if abspath, ok := searchPath(importerDir, path); ok {
			return abspath, true
		}
	}

	// check the search paths last
	for _, sp := range cfg.SearchPaths {
		if abspath, ok := searchPath(sp, path); ok {
			return abspath, true
		}
	}

	return "", false
}

// searchPath checks a directory for a file matching the import path, and
// returns the absolute path to that file if it exists.
func searchPath(dir, path string) (string, bool) {
	candidate := filepath.Join(dir, path)
	if checkPath(candidate) {
		return candidate, true
	}

	// imports may elide the source file extension
	if filepath.Ext(path) == "" {
		candidate += common.SrcFileExtension
		if checkPath(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// checkPath checks to see if a potential import path names a regular file.
func checkPath(abspath string) bool {
	finfo, err := os.Stat(abspath)
	if err != nil {
		return false
	}

	return !finfo.IsDir()
}
