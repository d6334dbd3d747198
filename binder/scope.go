package binder

import (
	"golang.org/x/text/unicode/norm"
)

// ScopeKind is one of the five lexical scope kinds the target language
// defines (spec §3).
type ScopeKind uint8

const (
	BuiltinScope ScopeKind = iota
	ModuleScope
	ClassScope
	FunctionScope
	ComprehensionScope
)

func (k ScopeKind) String() string {
	switch k {
	case BuiltinScope:
		return "builtin"
	case ModuleScope:
		return "module"
	case ClassScope:
		return "class"
	case FunctionScope:
		return "function"
	case ComprehensionScope:
		return "comprehension"
	default:
		return "scope(?)"
	}
}

// Scope is one node of the parent-linked scope tree (spec §3). Scopes are
// created lazily at their owning node and live for the duration of
// analysis; there is no deletion, matching the "Lifecycle" note in spec §3.
type Scope struct {
	Kind   ScopeKind
	Parent *Scope
	Table  *SymbolTable

	// ExportFilter constrains unqualified lookup from outside the scope.
	// Only ever set on the built-in scope (spec §3 invariant 3).
	ExportFilter *orderedSet

	// AlwaysRaises is set the moment the walker executes a raise
	// statement anywhere in this scope's body, including inside a
	// conditional arm or a finally block (spec §4.1). It is sticky: once
	// set it is never cleared, even though a real control-flow path
	// through the body might avoid the raise entirely.
	AlwaysRaises bool

	// MayEscape is set when the walker sees a call to the target
	// language's reflective escape hatches (exec/eval/locals/globals/
	// vars) in reachable code of this scope. It is forwarded to downstream consumers exactly
	// like AlwaysRaises; the binder's own binding behavior never changes
	// because of it. See SPEC_FULL.md §4.5.
	MayEscape bool

	// IsAsync is set on a FunctionScope whose owner is an `async def`.
	// await/yield-from legality checks consult it (spec §4.1).
	IsAsync bool

	// Owner is the syntax node that introduced this scope (*ast.Module,
	// *ast.ClassDef, *ast.FunctionDef, *ast.Lambda, or *ast.Comprehension).
	Owner any
}

func newScope(kind ScopeKind, parent *Scope, owner any) *Scope {
	return &Scope{
		Kind:   kind,
		Parent: parent,
		Table:  newSymbolTable(),
		Owner:  owner,
	}
}

// GlobalScope returns the nearest enclosing scope of kind Module or
// Builtin (spec §3).
func (s *Scope) GlobalScope() *Scope {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Kind == ModuleScope || cur.Kind == BuiltinScope {
			return cur
		}
	}
	return nil
}

// EnclosingFunctionOrModule returns the nearest enclosing scope whose
// syntactic owner is a function or module node — skipping over
// intervening class and comprehension scopes, exactly the rule spec §3
// describes and §4.4 relies on for method-vs-function binder linkage.
func (s *Scope) EnclosingFunctionOrModule() *Scope {
	for cur := s; cur != nil; cur = cur.Parent {
		switch cur.Kind {
		case FunctionScope, ModuleScope, BuiltinScope:
			return cur
		}
	}
	return nil
}

// isGlobal reports whether s is a Module or Builtin scope.
func (s *Scope) isGlobal() bool {
	return s.Kind == ModuleScope || s.Kind == BuiltinScope
}

// normalizeName applies the same NFKC identifier folding CPython itself
// performs, so that two source spellings of "the same" identifier bind
// to a single symbol. See DESIGN.md for why this dependency (rather than
// a hand-rolled fold) earns its place here.
func normalizeName(name string) string {
	if norm.NFKC.IsNormalString(name) {
		return name
	}
	return norm.NFKC.String(name)
}

// orderedSet is an insertion-ordered set of names, used both for the
// built-in scope's export filter and anywhere else a deterministic,
// duplicate-free name list is needed.
type orderedSet struct {
	order []string
	has   map[string]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{has: make(map[string]struct{})}
}

func (s *orderedSet) Add(name string) {
	if _, ok := s.has[name]; ok {
		return
	}
	s.has[name] = struct{}{}
	s.order = append(s.order, name)
}

func (s *orderedSet) Contains(name string) bool {
	_, ok := s.has[name]
	return ok
}

func (s *orderedSet) Names() []string {
	return s.order
}
