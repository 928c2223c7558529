package common

const (
	SrcFileExtension = ".arcs"
	IRFileExtension  = ".arc"
	ConfigFileName   = "arcc.toml"
	ManifestFileExt  = ".toml"
	ArccVersion      = "0.1.0"
)

// MainFunctionName is the name of the implicit function holding top-level
// statements.
const MainFunctionName = "main"
