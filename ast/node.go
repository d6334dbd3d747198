// Package ast defines the syntax-tree shapes the binder consumes.
//
// The lexer and parser that produce these trees are external
// collaborators (see spec §1): this package only fixes the node set and
// the traversal plumbing a binder needs, plus the small amount of
// parser-attached metadata (import info) the binder reads but never
// computes itself.
package ast

// Position is a 1-based line/column location in a source file, paired
// with a 0-based byte offset for hosts that prefer to recompute their
// own line table.
type Position struct {
	Line, Col int
	Offset    int
}

// Range is a half-open [Start, End) source span.
type Range struct {
	Start, End Position
}

// A Node is any node in the syntax tree.
type Node interface {
	Span() Range
}

// A Stmt is a statement node.
type Stmt interface {
	Node
	VisitableNode
	stmt()
}

// An Expr is an expression node.
type Expr interface {
	Node
	VisitableNode
	expr()
}

// Module is the root of a parsed source file.
type Module struct {
	Path  string
	Body  []Stmt
	Range Range

	// DocString is the module doc-string, if the first statement is a
	// bare (non-f-string) string literal.
	DocString *StringLit

	// Scope is set by the binder once the module has been bound; it is
	// an any to avoid an import cycle between ast and binder, the same
	// trick syntax.Ident.Scope/Index uses in google-starlark-go.
	Scope any
}

func (m *Module) Span() Range { return m.Range }
