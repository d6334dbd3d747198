package binder

import "github.com/kestrel-lang/kestrel/ast"

// bindComprehension implements the comprehension-scoping rule
// DESIGN.md settles (spec §9 open question 2): the outermost `for`'s
// iterable is evaluated in the enclosing scope — it runs before the
// comprehension scope exists, exactly like CPython actually evaluates
// it — while every other clause, and the key/element expression, binds
// and evaluates inside the comprehension's own scope. Unlike a
// function or lambda body, a comprehension body is walked immediately:
// it has no deferred existence independent of the expression that
// creates it.
func (w *walker) bindComprehension(n *ast.Comprehension) {
	scope := newScope(ComprehensionScope, w.scope, n)
	inner := w.child(scope)

	for i, clause := range n.Clauses {
		switch c := clause.(type) {
		case *ast.ForClause:
			if i == 0 {
				w.visitExprForEscape(c.Iter)
			} else {
				inner.visitExprForEscape(c.Iter)
			}
			inner.bindTarget(c.Targets, c)
		case *ast.IfClause:
			inner.visitExprForEscape(c.Cond)
		}
	}

	inner.visitExprForEscape(n.Key)
	inner.visitExprForEscape(n.Element)
}
