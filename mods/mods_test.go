package mods

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"arcc/common"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0644))
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	want := DefaultConfig(dir)
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, common.ConfigFileName), `
[project]
name = "demo"
search-paths = ["lib", "/opt/arc"]
output = "build/demo.arc"
log-level = "warn"
cache-size = 8
arcc-version = "0.1.0"

[libraries]
"math" = "native/libmath.so"
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, []string{filepath.Join(dir, "lib"), "/opt/arc"}, cfg.SearchPaths)
	assert.Equal(t, filepath.Join(dir, "build", "demo.arc"), cfg.Output)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 8, cfg.CacheSize)
	assert.Equal(t, map[string]string{"math": filepath.Join(dir, "native", "libmath.so")}, cfg.Libraries)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"missing table":  `name = "demo"`,
		"missing name":   "[project]\nlog-level = \"warn\"",
		"bad name":       "[project]\nname = \"1demo\"",
		"bad log level":  "[project]\nname = \"demo\"\nlog-level = \"loud\"",
		"negative cache": "[project]\nname = \"demo\"\ncache-size = -1",
		"bad toml":       "[project\nname = ",
	}

	for name, contents := range tests {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, common.ConfigFileName), contents)

		_, err := LoadConfig(dir)
		assert.Error(t, err, name)
	}
}

func TestInitProject(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, InitProject("demo", dir))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, []string{filepath.Join(dir, "lib")}, cfg.SearchPaths)
	assert.Equal(t, filepath.Join(dir, "out", "demo"+common.IRFileExtension), cfg.Output)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)

	assert.EqualError(t, InitProject("demo", dir), "project file already exists")
	assert.Error(t, InitProject("not valid", t.TempDir()))
}

func TestResolveImport(t *testing.T) {
	root := t.TempDir()
	local := filepath.Join(root, "src")
	lib := filepath.Join(root, "lib")
	override := filepath.Join(root, "native", "libfast.so")

	writeFile(t, filepath.Join(local, "util.arcs"), "")
	writeFile(t, filepath.Join(lib, "util.arcs"), "")
	writeFile(t, filepath.Join(lib, "shapes.arcs"), "")
	writeFile(t, filepath.Join(lib, "geo", "point.arcs"), "")
	writeFile(t, override, "")
	require.NoError(t, os.MkdirAll(filepath.Join(local, "dir.arcs"), 0755))

	cfg := DefaultConfig(root)
	cfg.SearchPaths = []string{lib}
	cfg.Libraries["fast"] = override
	cfg.Libraries["gone"] = filepath.Join(root, "missing.so")

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"util", filepath.Join(local, "util.arcs"), true},
		{"util.arcs", filepath.Join(local, "util.arcs"), true},
		{"shapes", filepath.Join(lib, "shapes.arcs"), true},
		{"geo/point", filepath.Join(lib, "geo", "point.arcs"), true},
		{"fast", override, true},
		{filepath.Join(lib, "shapes"), filepath.Join(lib, "shapes.arcs"), true},
		{"gone", "", false},
		{"missing", "", false},
		{"dir.arcs", "", false},
	}

	for _, test := range tests {
		got, ok := cfg.ResolveImport(local, test.path)
		assert.Equal(t, test.ok, ok, test.path)
		assert.Equal(t, test.want, got, test.path)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "libmath.so")
	writeFile(t, libPath, "")
	writeFile(t, filepath.Join(dir, "libmath.toml"), `
[functions.sqrt]
parameters = ["float"]
returns = "float"

[functions.seed]
parameters = ["int"]
`)

	m, err := LoadManifest(libPath)
	require.NoError(t, err)

	want := &Manifest{
		Path: libPath,
		Functions: map[string]*ManifestFunction{
			"sqrt": {Parameters: []string{"float"}, Returns: "float"},
			"seed": {Parameters: []string{"int"}},
		},
	}

	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadManifestErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadManifest(filepath.Join(dir, "libnone.so"))
	assert.Error(t, err)

	_, err = LoadManifest(filepath.Join(dir, "self.toml"))
	assert.Error(t, err)

	writeFile(t, filepath.Join(dir, "libbad.toml"), "[functions.\"not valid\"]\nreturns = \"int\"")
	_, err = LoadManifest(filepath.Join(dir, "libbad.so"))
	assert.Error(t, err)
}

func TestManifestPath(t *testing.T) {
	assert.Equal(t, "/lib/libm.toml", ManifestPath("/lib/libm.so"))
	assert.Equal(t, "/lib/libm.toml", ManifestPath("/lib/libm"))
}

func TestIsValidIdentifier(t *testing.T) {
	for _, s := range []string{"a", "_x", "Point2", "snake_case"} {
		assert.True(t, IsValidIdentifier(s), s)
	}

	for _, s := range []string{"", "2a", "a-b", "a b", "é"} {
		assert.False(t, IsValidIdentifier(s), s)
	}
}
