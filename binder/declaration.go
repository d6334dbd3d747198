package binder

import "github.com/kestrel-lang/kestrel/ast"

// Declaration is the tagged union spec §3 describes: every concrete
// binding a symbol can accumulate implements it. Consumers switch on
// the concrete type the same way google-starlark-go's resolver switches
// on *syntax.Ident.Binding kinds.
type Declaration interface {
	// Span returns the declaring syntax's source range.
	Span() ast.Range
	// declPath is the source path of the file the declaration lives in
	// (FileInfo.Path, or "<builtins>" for seeded built-in names); every
	// declaration carries one so cross-file
	// consumers can resolve it without also holding a Scope.
	declPath() string
	declaration()
}

type declCommon struct {
	Path  string
	Range ast.Range
}

func (d declCommon) Span() ast.Range { return d.Range }
func (d declCommon) declPath() string { return d.Path }

// ClassDeclaration binds a class's name in its containing scope.
type ClassDeclaration struct {
	declCommon
	Node *ast.ClassDef
}

func (ClassDeclaration) declaration() {}

// FunctionDeclaration binds a plain (non-method) function's name.
type FunctionDeclaration struct {
	declCommon
	Node *ast.FunctionDef
}

func (FunctionDeclaration) declaration() {}

// MethodDeclaration binds a function defined directly in a class body.
// Kept distinct from FunctionDeclaration because consumers (e.g.
// override-checking, self/cls heuristics) need to know which one they
// have without inspecting the scope chain.
type MethodDeclaration struct {
	declCommon
	Node *ast.FunctionDef
	// IsStaticNew is set for a method literally named __new__, which the
	// target language implicitly treats as a static method (spec §4.4).
	IsStaticNew bool
}

func (MethodDeclaration) declaration() {}

// ParameterDeclaration binds one formal parameter inside a function or
// lambda scope.
type ParameterDeclaration struct {
	declCommon
	Node *ast.Param
}

func (ParameterDeclaration) declaration() {}

// VariableDeclaration binds any other assignment target: a plain name,
// a for-loop target, an except-as name, a with-as name, a comprehension
// target, or `self.attr`/`cls.attr` (in which case it lands on the
// class scope's table as an InstanceMember/ClassMember rather than the
// function scope's).
type VariableDeclaration struct {
	declCommon
	// Node is the binding-site syntax: *ast.Name for a plain target, or
	// the *ast.Attribute for a self/cls member assignment.
	Node ast.Node
	// IsConstant marks an ALL_CAPS module- or class-level name, per the
	// target language's naming convention for treating a variable as a
	// final/constant binding (spec §4.1 DESIGN NOTES).
	IsConstant bool
	// TypeAnnotation is the `: T` annotation expression, if the
	// assignment that produced this declaration carried one.
	TypeAnnotation ast.Expr
	// InferredTypeSource is the node type inference should consult for
	// the bound value: the value of an annotated assignment, or, for any
	// other target, the assignment statement, for statement, with-item
	// or comprehension for-clause that bound it. It is nil for an
	// except-as name and for an annotated declaration with no value.
	InferredTypeSource ast.Node
}

func (VariableDeclaration) declaration() {}

// AliasDeclaration binds an imported name — either a whole module
// (`import a.b.c` binds `a`) or one name pulled out of a module
// (`from a.b import c`).
type AliasDeclaration struct {
	declCommon
	// FirstNamePart is the leading path segment this declaration binds
	// in the importing scope (e.g. "a" for `import a.b.c`); empty for a
	// from-import, where Path/SymbolName fully describe the binding.
	FirstNamePart string
	// SymbolName is the name pulled out of Path for a from-import, or
	// empty for a plain `import a.b.c`.
	SymbolName string
	// Loader is the recursive import-step tree rooted at this
	// declaration (spec §4's LoaderActions), used by downstream
	// consumers to re-walk exactly the submodules this import touched.
	Loader *LoaderActions
}

func (AliasDeclaration) declaration() {}

// BuiltInDeclaration binds a name seeded into the built-in scope by the
// binder itself rather than by any user syntax (spec §4.2's "implicit
// dunders" and the documented built-in name list, spec §4.1).
type BuiltInDeclaration struct {
	declCommon
	// Node is the syntax the declaration is conceptually attached to
	// (e.g. the *ast.Module for `__name__`), or nil for names with no
	// single attachment point (ordinary built-ins like `len`).
	Node ast.Node
	// DeclaredType is an opaque, pre-resolved type descriptor supplied by
	// the host rather than inferred — forwarded verbatim to downstream
	// consumers (spec §4.1: the built-in scope's declarations "carry a
	// pre-resolved type rather than one inferred from syntax").
	DeclaredType any
}

func (BuiltInDeclaration) declaration() {}

// LoaderActions is the recursive import-loader-step tree spec §4
// (IMPORT HANDLING) describes: a dotted import such as `import a.b.c`
// produces one root step for `a` with a nested Implicit step for each
// following segment (`b`, then `c` inside it), so that a consumer re-running the loader reproduces exactly
// the submodule binding chain the binder saw.
type LoaderActions struct {
	Path     string
	Implicit map[string]*LoaderActions
}

func newLoaderActions(path string) *LoaderActions {
	return &LoaderActions{Path: path}
}

func (l *LoaderActions) child(name, path string) *LoaderActions {
	if l.Implicit == nil {
		l.Implicit = make(map[string]*LoaderActions)
	}
	if existing, ok := l.Implicit[name]; ok {
		return existing
	}
	c := newLoaderActions(path)
	l.Implicit[name] = c
	return c
}
