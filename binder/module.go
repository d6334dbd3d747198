package binder

import "github.com/kestrel-lang/kestrel/ast"

// BindFile runs the full binding pass over mod (spec §1/§2): it builds
// (or reuses) the built-in scope, creates the module scope as its
// child, seeds the module's implicit dunders, walks the top-level body,
// and finally drains every function/lambda/method body the top-level
// walk deferred. It returns the finished module Scope, or an error if
// the walker hit a structural fault (spec §7) rather than a recoverable
// diagnostic.
//
// BindFile never returns an error for anything a Diagnostic could
// describe instead — only for violations of the binder's own
// invariants, which should not occur against a well-formed *ast.Module.
func BindFile(mod *ast.Module, fi *FileInfo) (scope *Scope, err error) {
	defer recoverFault(&err)

	if fi == nil {
		panic(internalFaultf("binder: BindFile called with a nil *FileInfo"))
	}
	if mod == nil {
		panic(internalFaultf("binder: BindFile called with a nil *ast.Module"))
	}

	builtins := builtinScopeFor(fi)
	moduleScope := newScope(ModuleScope, builtins, mod)
	mod.Scope = moduleScope
	seedModuleImplicitNames(moduleScope, mod, fi)

	var queue []deferredBinder
	w := newWalker(moduleScope, fi, &queue)
	w.walkStmts(mod.Body)

	for _, db := range queue {
		db.bindDeferred()
	}

	return moduleScope, nil
}

// seedModuleImplicitNames declares the handful of dunders every module
// carries without the source naming them (spec §4.2).
func seedModuleImplicitNames(scope *Scope, mod *ast.Module, fi *FileInfo) {
	seed := func(name string, rng ast.Range, node ast.Node) {
		sym := scope.Table.GetOrCreate(name)
		sym.Flags |= IgnoredForProtocolMatch
		sym.AddDeclaration(BuiltInDeclaration{
			declCommon: declCommon{Path: fi.Path, Range: rng},
			Node:       node,
		})
	}

	for _, name := range []string{
		"__name__", "__file__", "__loader__", "__package__",
		"__spec__", "__builtins__", "__dict__", "__path__", "__cached__",
	} {
		seed(name, mod.Range, mod)
	}

	doc := mod.DocString
	if doc == nil {
		doc = docStringOf(mod.Body)
		mod.DocString = doc
	}
	if doc != nil {
		seed("__doc__", doc.Range, doc)
	} else {
		seed("__doc__", mod.Range, mod)
	}
}
