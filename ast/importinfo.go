package ast

// ImportType classifies where an import resolved to, as determined by the
// external import resolver (spec §6). The binder never computes this
// itself — it only reacts to it.
type ImportType int

const (
	ImportUnknown ImportType = iota
	ImportLocal
	ImportThirdParty
	ImportBuiltIn
)

// ImplicitSubmodule is one entry of the parser/import-resolver-reported
// set of submodules implicitly bound by an import statement (e.g.
// "import a.b.c" implicitly touches submodule "b" of "a").
type ImplicitSubmodule struct {
	Name string
	Path string
}

// ImportInfo is parser-attached metadata living on module-name and
// import-from nodes, exactly as spec §6 describes it. The parser/import
// resolver populates this before the binder ever sees the tree. The
// binder does not treat a nil ImportInfo as an error: the import is
// bound as usual and no import-status diagnostic is reported for it.
type ImportInfo struct {
	ImportName        string
	IsImportFound     bool
	ImportType        ImportType
	IsStubFile        bool
	ResolvedPaths     []string
	ImplicitImports   []ImplicitSubmodule
}
