package binder

import (
	"testing"

	"github.com/kestrel-lang/kestrel/ast"
)

func TestBindFileSimpleAssignment(t *testing.T) {
	mod := module(
		assign(name("x"), numLit("1")),
	)
	scope := mustBind(t, mod, testFileInfo())

	sym := scope.Table.Lookup("x")
	if sym == nil {
		t.Fatalf("expected symbol %q bound in module scope", "x")
	}
	if len(sym.Declarations) != 1 {
		t.Fatalf("expected 1 declaration for x, got %d", len(sym.Declarations))
	}
	if _, ok := sym.Declarations[0].(VariableDeclaration); !ok {
		t.Fatalf("expected VariableDeclaration, got %T", sym.Declarations[0])
	}
}

func TestBindFileSeedsImplicitModuleDunders(t *testing.T) {
	mod := module(passStmt())
	scope := mustBind(t, mod, testFileInfo())

	for _, want := range []string{"__name__", "__file__", "__doc__", "__dict__"} {
		if scope.Table.Lookup(want) == nil {
			t.Fatalf("expected implicit module dunder %q to be seeded", want)
		}
	}
}

func TestBindFileCapturesModuleDocString(t *testing.T) {
	doc := &ast.StringLit{Raw: `"doc"`, Value: "doc", Range: rng()}
	mod := module(exprStmt(doc))
	scope := mustBind(t, mod, testFileInfo())

	if mod.DocString != doc {
		t.Fatalf("expected mod.DocString to be captured")
	}
	sym := scope.Table.Lookup("__doc__")
	if sym == nil || len(sym.Declarations) == 0 {
		t.Fatalf("expected __doc__ declared")
	}
	bi, ok := sym.LastDeclaration().(BuiltInDeclaration)
	if !ok || bi.Node != doc {
		t.Fatalf("expected __doc__'s declaration to point at the captured docstring node")
	}
}

func TestBindFileBuiltInStubFileGetsUnseededBuiltinParent(t *testing.T) {
	mod := module(passStmt())
	fi := testFileInfo()
	fi.IsBuiltInStubFile = true
	scope := mustBind(t, mod, fi)

	builtin := scope.Parent
	if builtin == nil || builtin.Kind != BuiltinScope {
		t.Fatalf("expected the module scope's parent to still be a BuiltinScope")
	}
	if builtin.Table.Lookup("len") != nil {
		t.Fatalf("expected the built-ins stub's own parent scope to carry no pre-seeded names")
	}
}

func TestBindFileGlobalRedirectsAssignmentToModuleScope(t *testing.T) {
	// def f():
	//     global counter
	//     counter = counter + 1
	// counter = 0
	fn := funcDef("f", params(),
		&ast.GlobalStmt{Names: []*ast.Name{name("counter")}, Range: rng()},
		assign(name("counter"), &ast.BinOp{Left: name("counter"), Op: ast.Add, Right: numLit("1"), Range: rng()}),
	)
	mod := module(fn, assign(name("counter"), numLit("0")))
	scope := mustBind(t, mod, testFileInfo())

	sym := scope.Table.Lookup("counter")
	if sym == nil {
		t.Fatalf("expected module-level symbol %q", "counter")
	}
	if len(sym.Declarations) != 2 {
		t.Fatalf("expected the function's `global counter` assignment to land on the module scope's symbol alongside the top-level one, got %d declarations", len(sym.Declarations))
	}

	fnScope, ok := fn.Scope.(*Scope)
	if !ok || fnScope == nil {
		t.Fatalf("expected fn.Scope to be set")
	}
	if fnScope.Table.Lookup("counter") != nil {
		t.Fatalf("`global counter` should prevent a local symbol from being created in the function scope")
	}
}
