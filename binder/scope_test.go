package binder

import "testing"

func TestScopeGlobalScope(t *testing.T) {
	builtin := newScope(BuiltinScope, nil, nil)
	mod := newScope(ModuleScope, builtin, nil)
	cls := newScope(ClassScope, mod, nil)
	fn := newScope(FunctionScope, cls, nil)

	if got := fn.GlobalScope(); got != mod {
		t.Fatalf("GlobalScope from function nested in class = %v, want module scope", got)
	}
	if got := builtin.GlobalScope(); got != builtin {
		t.Fatalf("GlobalScope from builtin scope = %v, want itself", got)
	}
}

func TestScopeEnclosingFunctionOrModule(t *testing.T) {
	builtin := newScope(BuiltinScope, nil, nil)
	mod := newScope(ModuleScope, builtin, nil)
	outer := newScope(FunctionScope, mod, nil)
	cls := newScope(ClassScope, outer, nil)
	method := newScope(FunctionScope, cls, nil)

	if got := method.EnclosingFunctionOrModule(); got != method {
		t.Fatalf("EnclosingFunctionOrModule of a function scope should be itself, got %v", got)
	}
	if got := cls.EnclosingFunctionOrModule(); got != outer {
		t.Fatalf("EnclosingFunctionOrModule should skip the class scope and land on the enclosing function, got %v want %v", got, outer)
	}
}

func TestNormalizeNameFoldsCompatibilityForms(t *testing.T) {
	// U+2168 ROMAN NUMERAL NINE NFKC-decomposes to "IX" (two ASCII
	// letters), exactly the class of identifier CPython itself folds
	// before treating it as a name.
	got := normalizeName("Ⅸ")
	if got != "IX" {
		t.Fatalf("normalizeName(ROMAN NUMERAL NINE) = %q, want %q", got, "IX")
	}
	if got := normalizeName("plain_name"); got != "plain_name" {
		t.Fatalf("normalizeName should leave already-normalized names untouched, got %q", got)
	}
}

func TestOrderedSetPreservesInsertionOrderAndDedupes(t *testing.T) {
	s := newOrderedSet()
	s.Add("b")
	s.Add("a")
	s.Add("b")
	got := s.Names()
	want := []string{"b", "a"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if !s.Contains("a") || s.Contains("z") {
		t.Fatalf("Contains() behaved incorrectly: %v", s)
	}
}
