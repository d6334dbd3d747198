package binder

import (
	"testing"

	"github.com/kestrel-lang/kestrel/ast"
)

func TestBindFunctionDefParametersAndForwardReference(t *testing.T) {
	// def f(a, b):
	//     return helper(a, b)
	// def helper(a, b):
	//     return a + b
	f := funcDef("f", params("a", "b"),
		returnStmt(&ast.Call{Func: name("helper"), Args: []ast.Expr{name("a"), name("b")}, Range: rng()}),
	)
	helper := funcDef("helper", params("a", "b"),
		returnStmt(&ast.BinOp{Left: name("a"), Op: ast.Add, Right: name("b"), Range: rng()}),
	)
	mod := module(f, helper)
	scope := mustBind(t, mod, testFileInfo())

	if scope.Table.Lookup("helper") == nil {
		t.Fatalf("expected 'helper' declared at module scope even though f is defined first (deferred body binding)")
	}

	fScope := f.Scope.(*Scope)
	if fScope.Table.Lookup("a") == nil || fScope.Table.Lookup("b") == nil {
		t.Fatalf("expected parameters a, b declared in f's scope")
	}

	ft, ok := f.Type.(*FunctionType)
	if !ok || ft.Name != "f" || ft.IsMethod {
		t.Fatalf("expected f.Type set to a non-method *FunctionType, got %#v", f.Type)
	}
}

func TestFunctionScopeAlwaysRaises(t *testing.T) {
	// def always_raises():
	//     raise ValueError()
	fn := funcDef("always_raises", params(),
		&ast.RaiseStmt{Exc: &ast.Call{Func: name("ValueError"), Range: rng()}, Range: rng()},
	)
	mod := module(fn)
	mustBind(t, mod, testFileInfo())

	scope := fn.Scope.(*Scope)
	if !scope.AlwaysRaises {
		t.Fatalf("expected function scope to be flagged AlwaysRaises")
	}
}

func TestDeadBranchStillDeclaresButFlagsInitiallyUnbound(t *testing.T) {
	// if False:
	//     dead = 1
	// live = 2
	ifStmt := &ast.IfStmt{
		Test: boolLit(false),
		Body: []ast.Stmt{assign(name("dead"), numLit("1"))},
		Range: rng(),
	}
	mod := module(ifStmt, assign(name("live"), numLit("2")))
	scope := mustBind(t, mod, testFileInfo())

	dead := scope.Table.Lookup("dead")
	if dead == nil {
		t.Fatalf("expected 'dead' to still be declared even though its branch is statically unreachable")
	}
	if dead.Flags&InitiallyUnbound == 0 {
		t.Fatalf("expected 'dead' to carry the InitiallyUnbound flag")
	}

	live := scope.Table.Lookup("live")
	if live == nil || live.Flags&InitiallyUnbound != 0 {
		t.Fatalf("expected 'live' declared normally without InitiallyUnbound")
	}
}

func TestIfTrueMarksElseUnexecuted(t *testing.T) {
	ifStmt := &ast.IfStmt{
		Test:   boolLit(true),
		Body:   []ast.Stmt{assign(name("taken"), numLit("1"))},
		Orelse: []ast.Stmt{assign(name("skipped"), numLit("2"))},
		Range:  rng(),
	}
	mod := module(ifStmt)
	scope := mustBind(t, mod, testFileInfo())

	taken := scope.Table.Lookup("taken")
	if taken == nil || taken.Flags&InitiallyUnbound != 0 {
		t.Fatalf("expected 'taken' declared normally")
	}
	skipped := scope.Table.Lookup("skipped")
	if skipped == nil || skipped.Flags&InitiallyUnbound == 0 {
		t.Fatalf("expected 'skipped' declared but flagged InitiallyUnbound")
	}
}

func TestLambdaGetsOwnDeferredScope(t *testing.T) {
	// f = lambda x: x + 1
	lam := &ast.Lambda{
		Params: params("x"),
		Body:   &ast.BinOp{Left: name("x"), Op: ast.Add, Right: numLit("1"), Range: rng()},
		Range:  rng(),
	}
	mod := module(assign(name("f"), lam))

	// The lambda's own scope is created when the lambda is reached but
	// not attached back to the (Scope-less) ast.Lambda node, so the
	// property under test is indirect: binding the module must not
	// panic or leave the module's own symbol table polluted with "x".
	scope := mustBind(t, mod, testFileInfo())
	if scope.Table.Lookup("x") != nil {
		t.Fatalf("lambda parameter 'x' must not leak into the module scope")
	}
}
