package binder

import "golang.org/x/exp/slices"

// SymbolFlags mirrors the small set of per-symbol flags spec §3 names.
type SymbolFlags uint8

const (
	// InitiallyUnbound marks a symbol that received a declaration inside
	// a branch the walker proved statically unreachable (spec §3's
	// "possibly unbound" flag).
	InitiallyUnbound SymbolFlags = 1 << iota
	// ClassMember marks a symbol declared directly in a class body — a
	// variable bound there, a method, or an implicit class dunder — as
	// opposed to a member assigned on self inside a method.
	ClassMember
	// InstanceMember marks a symbol first seen as `self.name = ...`
	// (or the class's declared self-parameter name) inside a method.
	InstanceMember
	// IgnoredForProtocolMatch marks dunder names the binder seeds
	// implicitly (spec §4.2) that structural-typing consumers should
	// skip when comparing protocols.
	IgnoredForProtocolMatch
)

func (f SymbolFlags) Has(bit SymbolFlags) bool { return f&bit != 0 }

// TypeSourceID names one inferred-type slot on a Symbol. It is opaque to
// the binder: callers only ever receive IDs back from AddTypeSource and
// use them as a map key when they later fill in the actual inferred
// type. The binder itself never interprets the value.
type TypeSourceID int

// Symbol is one name bound somewhere in a scope, together with every
// declaration contributing to it (spec §3: a symbol is a set of
// declarations sharing a name within one scope).
type Symbol struct {
	Name         string
	Declarations []Declaration
	Flags        SymbolFlags

	// TypeSources records which declarations want an inferred-type slot,
	// keyed by an opaque ID minted in AddTypeSource. Downstream type
	// inference fills in the actual types; the binder only reserves ids.
	TypeSources map[TypeSourceID]Declaration

	nextTypeSource TypeSourceID
}

func newSymbol(name string) *Symbol {
	return &Symbol{Name: name}
}

// AddDeclaration appends decl to the symbol's declaration list, except
// it does not attempt to merge or dedupe: spec §3 treats repeated
// declarations (e.g. a variable assigned twice) as a multi-element list,
// not a single evolving entry.
func (s *Symbol) AddDeclaration(decl Declaration) {
	s.Declarations = append(s.Declarations, decl)
}

// AddTypeSource reserves a new inferred-type slot for decl and returns
// its id.
func (s *Symbol) AddTypeSource(decl Declaration) TypeSourceID {
	if s.TypeSources == nil {
		s.TypeSources = make(map[TypeSourceID]Declaration)
	}
	id := s.nextTypeSource
	s.nextTypeSource++
	s.TypeSources[id] = decl
	return id
}

// LastDeclaration returns the most recently added declaration, or nil.
func (s *Symbol) LastDeclaration() Declaration {
	if len(s.Declarations) == 0 {
		return nil
	}
	return s.Declarations[len(s.Declarations)-1]
}

// SymbolTable is an insertion-ordered name -> *Symbol map, generalizing
// a flat map[string]DeclKind scope table into the richer per-declaration
// model spec §3 requires, while keeping the same "declare on first
// sight, reuse on repeat" lookup shape.
type SymbolTable struct {
	order   []string
	symbols map[string]*Symbol
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Lookup returns the symbol bound to name in this table only (no parent
// traversal — that is Scope/the walker's job), or nil.
func (t *SymbolTable) Lookup(name string) *Symbol {
	name = normalizeName(name)
	return t.symbols[name]
}

// GetOrCreate returns the existing symbol for name, creating and
// recording one in insertion order if absent.
func (t *SymbolTable) GetOrCreate(name string) *Symbol {
	name = normalizeName(name)
	if sym, ok := t.symbols[name]; ok {
		return sym
	}
	sym := newSymbol(name)
	t.symbols[name] = sym
	t.order = append(t.order, name)
	return sym
}

// delete removes name's symbol entirely. The only caller is the
// global/nonlocal handling in declareNotLocal, which migrates a local
// symbol's declarations to the name's real target scope once a `global`
// or `nonlocal` statement redirects it there.
func (t *SymbolTable) delete(name string) {
	name = normalizeName(name)
	if _, ok := t.symbols[name]; !ok {
		return
	}
	delete(t.symbols, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Names returns every bound name, sorted for deterministic iteration —
// the table itself preserves insertion order internally, but callers
// that need to enumerate (diagnostics ordering, snapshot tests) want a
// stable, input-independent order.
func (t *SymbolTable) Names() []string {
	out := slices.Clone(t.order)
	slices.Sort(out)
	return out
}

// Len reports the number of distinct symbols in the table.
func (t *SymbolTable) Len() int { return len(t.order) }
