package binder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kestrel-lang/kestrel/ast"
)

func TestSeverityConfigOverride(t *testing.T) {
	var cfg SeverityConfig
	if got := cfg.resolve(RuleMissingImports); got != SeverityError {
		t.Fatalf("default severity for RuleMissingImports = %v, want SeverityError", got)
	}
	cfg.Set(RuleMissingImports, SeverityNone)
	if got := cfg.resolve(RuleMissingImports); got != SeverityNone {
		t.Fatalf("expected override to silence RuleMissingImports, got %v", got)
	}
}

func TestReportHonorsSeverityNone(t *testing.T) {
	sink := &CollectingSink{}
	fi := &FileInfo{Diagnostics: sink}
	fi.Severity.Set(RuleSelfClsParamName, SeverityNone)

	report(fi, RuleSelfClsParamName, rng(), "silenced", nil)
	report(fi, RuleMissingImports, rng(), "reported", nil)

	if len(sink.Diagnostics) != 1 {
		t.Fatalf("expected exactly 1 diagnostic to survive severity filtering, got %d", len(sink.Diagnostics))
	}
	if sink.Diagnostics[0].Rule != RuleMissingImports {
		t.Fatalf("expected the surviving diagnostic to be RuleMissingImports, got %v", sink.Diagnostics[0].Rule)
	}
}

func TestCollectingSinkSortedOrdersByPosition(t *testing.T) {
	sink := &CollectingSink{}
	sink.Report(Diagnostic{Rule: RuleMissingImports, Range: ast.Range{Start: ast.Position{Offset: 20}}})
	sink.Report(Diagnostic{Rule: RuleMissingTypeStubs, Range: ast.Range{Start: ast.Position{Offset: 5}}})

	sorted := sink.Sorted()
	if len(sorted) != 2 || sorted[0].Range.Start.Offset != 5 || sorted[1].Range.Start.Offset != 20 {
		t.Fatalf("expected diagnostics sorted by source offset, got %+v", sorted)
	}
}

func TestCollectingSinkSortedMatchesExpectedShape(t *testing.T) {
	sink := &CollectingSink{}
	sink.Report(Diagnostic{
		Severity: SeverityWarning, Rule: RuleMissingTypeStubs,
		Message: "stub file not found for \"numpy\"", Range: ast.Range{Start: ast.Position{Offset: 12}},
		Action: &Action{Kind: "createTypeStub", ModuleName: "numpy"},
	})
	sink.Report(Diagnostic{
		Severity: SeverityError, Rule: RuleMissingImports,
		Message: "import \"foo\" could not be resolved", Range: ast.Range{Start: ast.Position{Offset: 3}},
		Action: &Action{Kind: "createTypeStub", ModuleName: "foo"},
	})

	want := []Diagnostic{
		{Severity: SeverityError, Rule: RuleMissingImports, Message: "import \"foo\" could not be resolved",
			Range: ast.Range{Start: ast.Position{Offset: 3}}, Action: &Action{Kind: "createTypeStub", ModuleName: "foo"}},
		{Severity: SeverityWarning, Rule: RuleMissingTypeStubs, Message: "stub file not found for \"numpy\"",
			Range: ast.Range{Start: ast.Position{Offset: 12}}, Action: &Action{Kind: "createTypeStub", ModuleName: "numpy"}},
	}

	if diff := cmp.Diff(want, sink.Sorted()); diff != "" {
		t.Fatalf("Sorted() mismatch (-want +got):\n%s", diff)
	}
}

func TestBindFileReturnsInternalFaultOnNilModule(t *testing.T) {
	_, err := BindFile(nil, testFileInfo())
	if err == nil {
		t.Fatalf("expected BindFile(nil, ...) to return an error")
	}
	if _, ok := err.(*InternalFault); !ok {
		t.Fatalf("expected *InternalFault, got %T", err)
	}
}
