package binder

import "github.com/kestrel-lang/kestrel/ast"

// ClassType and FunctionType are the "constructed type" objects spec §6
// requires every class/function node be annotated with: a skeleton the
// binder can produce purely from syntax, for a downstream type checker to
// fill in (member types, base-class MRO, parameter/return types). The
// binder never inspects or resolves these fields itself — constructing
// and attaching them is this package's whole contribution; interpreting
// them is out of scope (spec §1 Non-goals: type checking).
type ClassType struct {
	Name  string
	Node  *ast.ClassDef
	Scope *Scope

	// Bases holds the class's positional arguments, in source order
	// (spec §4.3: "positional arguments become base classes"). It is the
	// raw argument expressions, unresolved — resolving them to the
	// classes they name is the downstream type checker's job.
	Bases []ast.Expr
	// Metaclass is the value of a `metaclass=` keyword argument, or nil
	// if none was given.
	Metaclass ast.Expr
	// ImplicitObjectBase is true when Bases is empty and Name != "object"
	// (spec §4.3: every such class implicitly derives from object).
	ImplicitObjectBase bool
}

// FunctionType is attached to both `def` and methods; IsMethod records
// which declaration kind produced it without the consumer needing to
// re-derive it from the enclosing scope.
type FunctionType struct {
	Name     string
	Node     *ast.FunctionDef
	Scope    *Scope
	IsMethod bool
	IsAsync  bool
}
