package build

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"arcc/ast"
	"arcc/common"
	"arcc/logging"
	"arcc/mods"
	"arcc/syntax"
	"arcc/walk"

	lru "github.com/hashicorp/golang-lru"
)

// Compiler is the data structure responsible for maintaining all high-level
// state of the compiler: the project configuration and the cache of loaded
// modules shared between compilations.
type Compiler struct {
	// cfg is the configuration of the project being built
	cfg *mods.Config

	// cache holds the most recently loaded modules by absolute path
	cache *lru.Cache
}

// cachedModule is a loaded module along with the modification time of the
// file it was loaded from.  Entries are reloaded when the file changes.
type cachedModule struct {
	modTime time.Time
	mod     *walk.Module
}

// NewCompiler creates a new compiler for a given project configuration
func NewCompiler(cfg *mods.Config) (*Compiler, error) {
	size := cfg.CacheSize
	if size <= 0 {
		size = mods.DefaultCacheSize
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}

	return &Compiler{cfg: cfg, cache: cache}, nil
}

// ParseFile reads and parses a source file returning its AST along with its
// source text.  The source is returned even when parsing fails so that errors
// can be displayed.
func (c *Compiler) ParseFile(path string) (*ast.Program, string, error) {
	abspath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", err
	}

	buff, err := ioutil.ReadFile(abspath)
	if err != nil {
		return nil, "", err
	}

	src := string(buff)
	prog, err := syntax.Parse(abspath, src)
	return prog, src, err
}

// CompileFile compiles the source file at the given path.  It returns the
// output along with the file's source text for error display.
func (c *Compiler) CompileFile(path string) (*walk.Output, string, error) {
	logging.LogBeginPhase("Parsing")
	prog, src, err := c.ParseFile(path)
	if err != nil {
		return nil, src, err
	}
	logging.LogEndPhase()

	logging.LogBeginPhase("Compiling")
	out, err := walk.New(c).Compile(prog)
	if err != nil {
		return nil, src, err
	}
	logging.LogEndPhase()

	return out, src, nil
}

// CompileSource compiles source text which does not come from a file.  The
// name is used in error messages; imports are resolved relative to the
// project root.
func (c *Compiler) CompileSource(name, src string) (*walk.Output, error) {
	prog, err := syntax.Parse(name, src)
	if err != nil {
		return nil, err
	}

	return walk.New(c).Compile(prog)
}

// WriteOutput writes compiled output to a file creating any missing parent
// directories.
func (c *Compiler) WriteOutput(out *walk.Output, path string) error {
	logging.LogBeginPhase("Writing")

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("error creating output directory: %s", err.Error())
	}

	if err := ioutil.WriteFile(path, []byte(out.String()+"\n"), 0644); err != nil {
		return fmt.Errorf("error writing output: %s", err.Error())
	}

	logging.LogEndPhase()
	return nil
}

// OutputPath determines where the output for a compiled file is written: the
// explicitly requested path, the project's configured output or the source
// path with the IR extension.
func (c *Compiler) OutputPath(srcPath, requested string) string {
	if requested != "" {
		return requested
	}

	if c.cfg.Output != "" {
		return c.cfg.Output
	}

	return srcPath[:len(srcPath)-len(filepath.Ext(srcPath))] + common.IRFileExtension
}

// -----------------------------------------------------------------------------

// LoadModule implements walk.ModuleLoader.  Source modules are parsed and
// native libraries have their manifests loaded.  Loaded modules are cached
// until the file they were loaded from changes.
func (c *Compiler) LoadModule(importer, path string) (*walk.Module, error) {
	importerDir := c.cfg.Root
	if importer != "" && filepath.IsAbs(importer) {
		importerDir = filepath.Dir(importer)
	}

	abspath, ok := c.cfg.ResolveImport(importerDir, path)
	if !ok {
		return nil, fmt.Errorf("no module or library found at `%s`", path)
	}

	abspath, err := filepath.Abs(abspath)
	if err != nil {
		return nil, err
	}

	isSource := filepath.Ext(abspath) == common.SrcFileExtension
	statPath := abspath
	if !isSource {
		statPath = mods.ManifestPath(abspath)
	}

	finfo, err := os.Stat(statPath)
	if err != nil {
		return nil, err
	}

	if entry, ok := c.cache.Get(abspath); ok {
		cm := entry.(*cachedModule)
		if cm.modTime.Equal(finfo.ModTime()) {
			return cm.mod, nil
		}
	}

	var mod *walk.Module
	if isSource {
		prog, _, err := c.ParseFile(abspath)
		if err != nil {
			return nil, err
		}

		mod = &walk.Module{AbsPath: abspath, Program: prog}
	} else {
		manifest, err := mods.LoadManifest(abspath)
		if err != nil {
			return nil, err
		}

		mod = &walk.Module{AbsPath: abspath, Library: manifest}
	}

	c.cache.Add(abspath, &cachedModule{modTime: finfo.ModTime(), mod: mod})
	return mod, nil
}
