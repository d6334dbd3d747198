package binder

import (
	"sort"

	"github.com/kestrel-lang/kestrel/ast"
)

// Severity is the configured reporting level for one diagnostic rule
// (spec §6: hosts can silence or downgrade each rule independently).
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityError
)

// RuleID names one of the binder's diagnostic rules. The set is
// deliberately small: the binder only ever reports the handful of
// defects it can detect purely from name binding (spec §4.1, §4's
// IMPORT HANDLING, and §4.4's self/cls naming check).
type RuleID string

const (
	RuleMissingImports              RuleID = "reportMissingImports"
	RuleMissingTypeStubs            RuleID = "reportMissingTypeStubs"
	RuleInvalidStringEscapeSequence RuleID = "reportInvalidStringEscapeSequence"
	RuleSelfClsParamName            RuleID = "reportSelfClsParamName"
	RuleRedeclaration               RuleID = "reportRedeclaration"
	RuleWildcardImportFromLibrary   RuleID = "reportWildcardImportFromLibrary"

	// The rules below are never passed through SeverityConfig.resolve —
	// spec §7 hard-codes their severity at SeverityError regardless of
	// host configuration. See reportHardError.
	RuleNakedRaise                        RuleID = "reportNakedRaise"
	RuleYieldOutsideFunction              RuleID = "reportYieldOutsideFunction"
	RuleYieldFromInAsyncFunction          RuleID = "reportYieldFromInAsyncFunction"
	RuleAwaitOutsideAsyncFunction         RuleID = "reportAwaitOutsideAsyncFunction"
	RuleAssignedBeforeNotLocalDeclaration RuleID = "reportAssignedBeforeNotLocalDeclaration"
	RuleNonlocalAtModuleLevel             RuleID = "reportNonlocalAtModuleLevel"
	RuleConflictingGlobalNonlocal         RuleID = "reportConflictingGlobalNonlocal"
	RuleNonlocalNoBinding                 RuleID = "reportNonlocalNoBinding"
	RuleConflictingMetaclass              RuleID = "reportConflictingMetaclass"
)

// Action is a suggested remediation attached to a diagnostic (spec §6:
// "a missing-import diagnostic may carry a create-stub action naming
// the module").
type Action struct {
	Kind       string // e.g. "pyright.createtypestub"
	ModuleName string
}

// Diagnostic is one binder-produced finding.
type Diagnostic struct {
	Severity Severity
	Rule     RuleID
	Message  string
	Range    ast.Range
	Action   *Action
}

// DiagnosticSink receives diagnostics as the walker produces them. A
// *FileInfo with a nil Sink silently drops every diagnostic — useful for
// callers that only want the scope tree.
type DiagnosticSink interface {
	Report(Diagnostic)
}

// SeverityConfig holds the per-rule severity a host configured (spec
// §6). A zero-value SeverityConfig reports every rule at its default
// severity via resolve.
type SeverityConfig struct {
	overrides map[RuleID]Severity
}

func (c *SeverityConfig) Set(rule RuleID, sev Severity) {
	if c.overrides == nil {
		c.overrides = make(map[RuleID]Severity)
	}
	c.overrides[rule] = sev
}

func defaultSeverity(rule RuleID) Severity {
	switch rule {
	case RuleMissingImports, RuleRedeclaration:
		return SeverityError
	default:
		return SeverityWarning
	}
}

func (c *SeverityConfig) resolve(rule RuleID) Severity {
	if c == nil || c.overrides == nil {
		return defaultSeverity(rule)
	}
	if sev, ok := c.overrides[rule]; ok {
		return sev
	}
	return defaultSeverity(rule)
}

// report constructs a Diagnostic for rule, resolves its configured
// severity, and forwards it to the sink unless silenced. No-op if fi or
// its sink is nil; a SeverityConfig with no overrides reports every
// rule at its default severity.
func report(fi *FileInfo, rule RuleID, rng ast.Range, message string, action *Action) {
	if fi == nil || fi.Diagnostics == nil {
		return
	}
	sev := fi.Severity.resolve(rule)
	if sev == SeverityNone {
		return
	}
	fi.Diagnostics.Report(Diagnostic{
		Severity: sev,
		Rule:     rule,
		Message:  message,
		Range:    rng,
		Action:   action,
	})
}

// reportHardError emits a Diagnostic at a fixed SeverityError, bypassing
// SeverityConfig entirely. Spec §7 splits diagnostics into a warn-family
// a host can downgrade through SeverityConfig (report, above) and a
// small hard-coded set — naked raise, yield/await legality, global/
// nonlocal conflicts, duplicated metaclass — that always reports as an
// error because each one names a construct the target language itself
// rejects, not a style preference a host could reasonably silence.
func reportHardError(fi *FileInfo, rule RuleID, rng ast.Range, message string) {
	if fi == nil || fi.Diagnostics == nil {
		return
	}
	fi.Diagnostics.Report(Diagnostic{
		Severity: SeverityError,
		Rule:     rule,
		Message:  message,
		Range:    rng,
	})
}

// CollectingSink is a DiagnosticSink that buffers every report in the
// order it was reported (use Sorted for source order) — the sink the
// test suite and simple command-line hosts
// use instead of streaming diagnostics one at a time.
type CollectingSink struct {
	Diagnostics []Diagnostic
}

func (s *CollectingSink) Report(d Diagnostic) { s.Diagnostics = append(s.Diagnostics, d) }

// Sorted returns the collected diagnostics ordered by source position,
// breaking ties by rule name for determinism.
func (s *CollectingSink) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(s.Diagnostics))
	copy(out, s.Diagnostics)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Range.Start.Offset != b.Range.Start.Offset {
			return a.Range.Start.Offset < b.Range.Start.Offset
		}
		return a.Rule < b.Rule
	})
	return out
}
