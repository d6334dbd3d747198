package binder

import "github.com/kestrel-lang/kestrel/ast"

// bindClassDef implements spec §4.3's Class Binder: bases, keywords and
// decorators are walked in the enclosing scope (they execute there), a
// `metaclass=` keyword is recorded (erroring if given more than once)
// and a base-less class implicitly gets object as its base, the class's
// own name is declared immediately, and the class body is then walked
// immediately too — in place, sharing the caller's deferred queue, so
// any method defined in the body is queued alongside ordinary nested
// functions rather than getting a private deferral pass of its own.
func (w *walker) bindClassDef(n *ast.ClassDef) {
	for _, d := range n.Decorators {
		w.visitExprForEscape(d)
	}
	for _, b := range n.Bases {
		w.visitExprForEscape(b)
	}

	ct := &ClassType{Name: n.Name.Id, Node: n, Bases: n.Bases}

	seenMetaclass := false
	for _, k := range n.Keywords {
		w.visitExprForEscape(k.Value)
		if k.Name != "metaclass" {
			continue
		}
		if seenMetaclass {
			reportHardError(w.fileInfo, RuleConflictingMetaclass, k.Range,
				`class "`+n.Name.Id+`" specifies metaclass more than once`)
			continue
		}
		seenMetaclass = true
		ct.Metaclass = k.Value
	}
	if len(n.Bases) == 0 && n.Name.Id != "object" {
		ct.ImplicitObjectBase = true
	}

	sym := w.targetScope(n.Name.Id).Table.GetOrCreate(n.Name.Id)
	sym.AddDeclaration(ClassDeclaration{
		declCommon: declCommon{Path: w.fileInfo.Path, Range: n.Range},
		Node:       n,
	})

	scope := newScope(ClassScope, w.scope, n)
	ct.Scope = scope
	n.Scope = scope
	n.Type = ct
	seedClassImplicitNames(scope, n, w.fileInfo)

	bodyWalker := w.child(scope)
	bodyWalker.walkStmts(n.Body)
}

// seedClassImplicitNames declares the dunders every class carries
// without any source syntax naming them (spec §4.3). __qualname__ is
// gated on language version: languages before 3.3 never had it.
func seedClassImplicitNames(scope *Scope, n *ast.ClassDef, fi *FileInfo) {
	seed := func(name string, rng ast.Range, node ast.Node) {
		sym := scope.Table.GetOrCreate(name)
		sym.Flags |= ClassMember | IgnoredForProtocolMatch
		sym.AddDeclaration(BuiltInDeclaration{
			declCommon: declCommon{Path: fi.Path, Range: rng},
			Node:       node,
		})
	}
	seed("__name__", n.Range, n)
	seed("__module__", n.Range, n)
	seed("__dict__", n.Range, n)
	seed("__weakref__", n.Range, n)
	if fi.LanguageVersion.AtLeast(3, 3) {
		seed("__qualname__", n.Range, n)
	}
	if doc := docStringOf(n.Body); doc != nil {
		seed("__doc__", doc.Range, doc)
	}
}
