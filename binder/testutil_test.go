package binder

import "github.com/kestrel-lang/kestrel/ast"

// Small builder helpers so test cases can assemble *ast.Module trees by
// hand without a parser (spec.md places lexing/parsing out of scope for
// this component, so these tests construct syntax directly as literal
// trees rather than parsing source text).

func rng() ast.Range { return ast.Range{} }

func name(id string) *ast.Name { return &ast.Name{Id: id, Range: rng()} }

func numLit(raw string) *ast.NumberLit { return &ast.NumberLit{Raw: raw, Range: rng()} }

func boolLit(v bool) *ast.BoolLit { return &ast.BoolLit{Value: v, Range: rng()} }

func assign(target ast.Expr, value ast.Expr) *ast.Assign {
	return &ast.Assign{Targets: []ast.Expr{target}, Value: value, Range: rng()}
}

func exprStmt(e ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{X: e, Range: rng()} }

func passStmt() *ast.PassStmt { return &ast.PassStmt{Range: rng()} }

func returnStmt(e ast.Expr) *ast.ReturnStmt { return &ast.ReturnStmt{Value: e, Range: rng()} }

func params(names ...string) *ast.Parameters {
	p := &ast.Parameters{Range: rng()}
	for _, n := range names {
		p.Args = append(p.Args, &ast.Param{Name: name(n), Range: rng()})
	}
	return p
}

func funcDef(n string, p *ast.Parameters, body ...ast.Stmt) *ast.FunctionDef {
	return &ast.FunctionDef{Name: name(n), Params: p, Body: body, Range: rng()}
}

func classDef(n string, bases []ast.Expr, body ...ast.Stmt) *ast.ClassDef {
	return &ast.ClassDef{Name: name(n), Bases: bases, Body: body, Range: rng()}
}

func module(body ...ast.Stmt) *ast.Module {
	return &ast.Module{Path: "test_module", Body: body, Range: rng()}
}

func testFileInfo() *FileInfo {
	return &FileInfo{
		Path:            "test_module.py",
		LanguageVersion: LanguageVersion{Major: 3, Minor: 11},
		Diagnostics:     &CollectingSink{},
	}
}

func mustBind(t interface {
	Fatalf(format string, args ...any)
}, mod *ast.Module, fi *FileInfo) *Scope {
	scope, err := BindFile(mod, fi)
	if err != nil {
		t.Fatalf("BindFile: %v", err)
	}
	return scope
}
