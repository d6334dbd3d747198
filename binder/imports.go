package binder

import (
	"strings"

	"github.com/kestrel-lang/kestrel/ast"
)

// bindImport implements spec §4's IMPORT HANDLING for plain `import`
// statements. A dotted path with no `as` clause binds only its first
// segment in the current scope; repeated imports sharing that first
// segment (`import a.b` followed later by `import a.c`) merge into a
// single AliasDeclaration whose LoaderActions tree grows an extra
// Implicit branch rather than producing a second, competing
// declaration — spec §4's "merge-on-same-root-name" rule.
func (w *walker) bindImport(n *ast.ImportStmt) {
	for _, alias := range n.Names {
		parts := strings.Split(alias.Path, ".")
		if alias.AsName != "" {
			sym := w.targetScope(alias.AsName).Table.GetOrCreate(alias.AsName)
			loader := newLoaderActions(alias.Path)
			sym.AddDeclaration(AliasDeclaration{
				declCommon: declCommon{Path: w.fileInfo.Path, Range: alias.Range},
				Loader:     loader,
			})
		} else {
			root := parts[0]
			sym := w.targetScope(root).Table.GetOrCreate(root)
			loader := mergeRootImportLoader(sym, root, w.fileInfo.Path, alias.Range)
			cur := loader
			path := root
			for _, p := range parts[1:] {
				path = path + "." + p
				cur = cur.child(p, path)
			}
		}
		reportImportStatus(w.fileInfo, alias.Info, alias.Range, alias.Path)
	}
}

// mergeRootImportLoader finds an existing AliasDeclaration on sym whose
// loader tree is already rooted at path, or creates one.
func mergeRootImportLoader(sym *Symbol, path, filePath string, rng ast.Range) *LoaderActions {
	for _, d := range sym.Declarations {
		if ad, ok := d.(AliasDeclaration); ok && ad.Loader != nil && ad.Loader.Path == path {
			return ad.Loader
		}
	}
	loader := newLoaderActions(path)
	sym.AddDeclaration(AliasDeclaration{
		declCommon:    declCommon{Path: filePath, Range: rng},
		FirstNamePart: path,
		Loader:        loader,
	})
	return loader
}

// bindImportFrom implements `from m import a, b as c` and wildcard
// `from m import *` (spec §4). A wildcard import binds, in the current
// scope, every name of the SymbolTable that FileInfo.ImportLookup
// returns for the module, skipping names that start with an
// underscore; implicit submodules of the module are not bound.
func (w *walker) bindImportFrom(n *ast.ImportFromStmt) {
	if n.IsWildcard {
		w.bindWildcardImport(n)
		return
	}
	for _, alias := range n.Names {
		bindingName := alias.AsName
		if bindingName == "" {
			bindingName = alias.Path
		}
		sym := w.targetScope(bindingName).Table.GetOrCreate(bindingName)
		sym.AddDeclaration(AliasDeclaration{
			declCommon: declCommon{Path: w.fileInfo.Path, Range: alias.Range},
			SymbolName: alias.Path,
			Loader:     newLoaderActions(n.Module),
		})
		reportImportStatus(w.fileInfo, alias.Info, alias.Range, qualifiedImportName(n.Module, alias.Path))
	}
}

func (w *walker) bindWildcardImport(n *ast.ImportFromStmt) {
	if n.Info != nil && n.Info.ImportType == ast.ImportThirdParty {
		report(w.fileInfo, RuleWildcardImportFromLibrary, n.Range,
			"wildcard import from a non-local module is discouraged", nil)
	}

	tbl, ok := w.importLookup(n.Module)
	if !ok {
		reportImportStatus(w.fileInfo, n.Info, n.Range, n.Module)
		return
	}
	for _, name := range tbl.Names() {
		if strings.HasPrefix(name, "_") {
			continue
		}
		sym := w.targetScope(name).Table.GetOrCreate(name)
		sym.AddDeclaration(AliasDeclaration{
			declCommon: declCommon{Path: w.fileInfo.Path, Range: n.Range},
			SymbolName: name,
			Loader:     newLoaderActions(n.Module),
		})
	}
}

func (w *walker) importLookup(path string) (*SymbolTable, bool) {
	if w.fileInfo == nil || w.fileInfo.ImportLookup == nil {
		return nil, false
	}
	return w.fileInfo.ImportLookup(path)
}

func qualifiedImportName(module, name string) string {
	if module == "" {
		return name
	}
	return module + "." + name
}

// reportImportStatus translates an *ast.ImportInfo the external import
// resolver attached onto the two diagnostics the binder itself owns
// (spec §4): an unresolved import is always reportMissingImports; a
// resolved third-party import with no type stub is reportMissingTypeStubs.
func reportImportStatus(fi *FileInfo, info *ast.ImportInfo, rng ast.Range, displayPath string) {
	if info == nil {
		return
	}
	if !info.IsImportFound {
		report(fi, RuleMissingImports, rng, `import "`+displayPath+`" could not be resolved`,
			&Action{Kind: "pyright.createtypestub", ModuleName: displayPath})
		return
	}
	if info.ImportType == ast.ImportThirdParty && !info.IsStubFile {
		report(fi, RuleMissingTypeStubs, rng, `stub file not found for "`+displayPath+`"`,
			&Action{Kind: "pyright.createtypestub", ModuleName: displayPath})
	}
}
