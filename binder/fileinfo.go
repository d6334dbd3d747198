package binder

// LanguageVersion is the (major, minor) language version the host
// configured analysis for — spec §4.3 gates `__qualname__` seeding on
// it, and other checks may gate on it in the future.
type LanguageVersion struct {
	Major, Minor int
}

// AtLeast reports whether v is at least major.minor.
func (v LanguageVersion) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

// ExecutionEnvironment carries the handful of host-supplied facts that
// affect binding decisions without being part of the syntax itself
// (spec §6): which platform's stub variant to prefer, for instance.
type ExecutionEnvironment struct {
	Platform string
}

// FileInfo is the external interface spec §6 describes: everything the
// binder needs from its host about one file, gathered in one struct so
// BindFile takes a single argument beyond the syntax tree itself.
type FileInfo struct {
	Path string

	// LineOffsets is the host's pre-computed table of byte offsets where
	// each source line begins, for offset-to-range conversion (spec §6).
	// The binder itself never converts positions — ast.Range already
	// carries Line/Col/Offset — but it is part of the external interface
	// a host attaches to every FileInfo, so it is carried here for
	// downstream consumers that do their own offset arithmetic.
	LineOffsets []int

	LanguageVersion LanguageVersion
	ExecutionEnv    ExecutionEnvironment

	// Diagnostics receives every diagnostic the walker produces; nil
	// means diagnostics are dropped.
	Diagnostics DiagnosticSink
	Severity    SeverityConfig

	// ImportLookup resolves a dotted import path to the already-bound
	// SymbolTable of that module, for merging wildcard imports (spec §4
	// IMPORT HANDLING); other imports do not consult it. Returning
	// ok==false means "not resolved": the wildcard import binds no
	// names, and RuleMissingImports is reported if the statement's
	// ImportInfo says the import was not found.
	ImportLookup func(path string) (*SymbolTable, bool)

	// IsTypingStubFile relaxes the built-in export filter to also admit
	// the documented typing-module special forms (spec §4.1) — set when
	// binding the language's own typing stub, never for ordinary source.
	IsTypingStubFile bool

	// IsBuiltInStubFile marks the one file that defines the built-in
	// names themselves. Binding it must not inherit a built-in parent
	// scope pre-seeded with those same names — that would make every
	// built-in declaration in the stub compete with an identical
	// implicit one instead of being the sole source of it — so
	// builtinScopeFor gives it a bare, unseeded BuiltinScope instead.
	IsBuiltInStubFile bool

	// StaticEval overrides the binder's literal-only dead-branch
	// evaluator; nil uses the default (staticeval.go).
	StaticEval StaticEvalHook

	// PrebuiltBuiltins lets a host supply an already-bound built-in
	// scope (shared across many files) instead of having BindFile
	// construct a fresh one from builtins.go's name list every call.
	PrebuiltBuiltins *Scope
}
