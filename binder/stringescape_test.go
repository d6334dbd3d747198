package binder

import (
	"testing"

	"github.com/kestrel-lang/kestrel/ast"
)

func TestStringEscapeFlagsUnrecognizedSequence(t *testing.T) {
	// x = "bad \d escape"
	lit := &ast.StringLit{Raw: `"bad \d escape"`, Value: "bad \\d escape", Range: rng()}
	mod := module(assign(name("x"), lit))
	fi := testFileInfo()
	mustBind(t, mod, fi)

	sink := fi.Diagnostics.(*CollectingSink)
	found := false
	for _, d := range sink.Diagnostics {
		if d.Rule == RuleInvalidStringEscapeSequence {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a reportInvalidStringEscapeSequence diagnostic, got %+v", sink.Diagnostics)
	}
}

func TestStringEscapeAllowsRecognizedSequences(t *testing.T) {
	lit := &ast.StringLit{Raw: `"line\nbreak\ttab"`, Value: "line\nbreak\ttab", Range: rng()}
	mod := module(assign(name("x"), lit))
	fi := testFileInfo()
	mustBind(t, mod, fi)

	sink := fi.Diagnostics.(*CollectingSink)
	for _, d := range sink.Diagnostics {
		if d.Rule == RuleInvalidStringEscapeSequence {
			t.Fatalf("expected no diagnostic for recognized escapes, got %+v", d)
		}
	}
}

func TestStringEscapeSkipsRawStrings(t *testing.T) {
	lit := &ast.StringLit{Raw: `r"bad \d escape"`, Value: "bad \\d escape", Range: rng()}
	mod := module(assign(name("x"), lit))
	fi := testFileInfo()
	mustBind(t, mod, fi)

	sink := fi.Diagnostics.(*CollectingSink)
	for _, d := range sink.Diagnostics {
		if d.Rule == RuleInvalidStringEscapeSequence {
			t.Fatalf("expected raw strings to be exempt from escape validation, got %+v", d)
		}
	}
}
