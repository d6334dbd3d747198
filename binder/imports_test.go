package binder

import (
	"testing"

	"github.com/kestrel-lang/kestrel/ast"
)

func foundImport(importType ast.ImportType) *ast.ImportInfo {
	return &ast.ImportInfo{IsImportFound: true, ImportType: importType}
}

func TestBindImportMergesRepeatedRootName(t *testing.T) {
	// import a.b
	// import a.c
	imp1 := &ast.ImportStmt{Names: []*ast.Alias{
		{Path: "a.b", Info: foundImport(ast.ImportLocal), Range: rng()},
	}, Range: rng()}
	imp2 := &ast.ImportStmt{Names: []*ast.Alias{
		{Path: "a.c", Info: foundImport(ast.ImportLocal), Range: rng()},
	}, Range: rng()}

	mod := module(imp1, imp2)
	scope := mustBind(t, mod, testFileInfo())

	sym := scope.Table.Lookup("a")
	if sym == nil {
		t.Fatalf("expected 'a' bound from `import a.b`/`import a.c`")
	}
	if len(sym.Declarations) != 1 {
		t.Fatalf("expected the two imports to merge into a single AliasDeclaration, got %d", len(sym.Declarations))
	}
	alias := sym.Declarations[0].(AliasDeclaration)
	if alias.Loader == nil || len(alias.Loader.Implicit) != 2 {
		t.Fatalf("expected the merged loader to carry both 'b' and 'c' implicit branches, got %+v", alias.Loader)
	}
	if _, ok := alias.Loader.Implicit["b"]; !ok {
		t.Fatalf("expected an implicit loader branch for 'b'")
	}
	if _, ok := alias.Loader.Implicit["c"]; !ok {
		t.Fatalf("expected an implicit loader branch for 'c'")
	}
}

func TestBindImportAsNameBindsFullPath(t *testing.T) {
	imp := &ast.ImportStmt{Names: []*ast.Alias{
		{Path: "a.b.c", AsName: "abc", Info: foundImport(ast.ImportLocal), Range: rng()},
	}, Range: rng()}
	mod := module(imp)
	scope := mustBind(t, mod, testFileInfo())

	if scope.Table.Lookup("a") != nil {
		t.Fatalf("`import a.b.c as abc` must not also bind 'a'")
	}
	sym := scope.Table.Lookup("abc")
	if sym == nil || len(sym.Declarations) != 1 {
		t.Fatalf("expected 'abc' bound once")
	}
}

func TestBindImportFromMissingReportsDiagnostic(t *testing.T) {
	imp := &ast.ImportFromStmt{
		Module: "nonexistent",
		Names: []*ast.Alias{
			{Path: "thing", Info: &ast.ImportInfo{IsImportFound: false}, Range: rng()},
		},
		Range: rng(),
	}
	mod := module(imp)
	fi := testFileInfo()
	mustBind(t, mod, fi)

	sink := fi.Diagnostics.(*CollectingSink)
	found := false
	for _, d := range sink.Diagnostics {
		if d.Rule == RuleMissingImports {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a reportMissingImports diagnostic, got %+v", sink.Diagnostics)
	}
}

func TestBindWildcardImportMergesExportedNames(t *testing.T) {
	exported := newSymbolTable()
	exported.GetOrCreate("public_name")
	exported.GetOrCreate("_private_name")

	imp := &ast.ImportFromStmt{
		Module:     "helpers",
		IsWildcard: true,
		Info:       foundImport(ast.ImportLocal),
		Range:      rng(),
	}
	mod := module(imp)
	fi := testFileInfo()
	fi.ImportLookup = func(path string) (*SymbolTable, bool) {
		if path == "helpers" {
			return exported, true
		}
		return nil, false
	}

	scope := mustBind(t, mod, fi)
	if scope.Table.Lookup("public_name") == nil {
		t.Fatalf("expected wildcard import to bind 'public_name'")
	}
	if scope.Table.Lookup("_private_name") != nil {
		t.Fatalf("expected wildcard import to skip underscore-prefixed names")
	}
}

func TestBindWildcardImportFromThirdPartyReportsDiagnostic(t *testing.T) {
	imp := &ast.ImportFromStmt{
		Module:     "numpy",
		IsWildcard: true,
		Info:       foundImport(ast.ImportThirdParty),
		Range:      rng(),
	}
	mod := module(imp)
	fi := testFileInfo()
	fi.ImportLookup = func(string) (*SymbolTable, bool) { return newSymbolTable(), true }
	mustBind(t, mod, fi)

	sink := fi.Diagnostics.(*CollectingSink)
	found := false
	for _, d := range sink.Diagnostics {
		if d.Rule == RuleWildcardImportFromLibrary {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a reportWildcardImportFromLibrary diagnostic, got %+v", sink.Diagnostics)
	}
}
