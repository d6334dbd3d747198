package binder

import "github.com/kestrel-lang/kestrel/ast"

// StaticEvalHook lets a host plug in a real constant evaluator so the
// walker can prune branches it can prove dead (spec §4.5's
// "static-expression evaluator hook"). The binder ships a trivial
// literal-only evaluator (below) and uses whatever FileInfo.StaticEval
// supplies instead when one is configured, delegating constant folding
// to a pluggable evaluator rather than hardcoding it.
type StaticEvalHook interface {
	// EvalBool attempts to reduce e to a compile-time boolean. ok is
	// false if e is not something the evaluator can decide.
	EvalBool(e ast.Expr) (value bool, ok bool)
}

// literalStaticEval is the zero-configuration default: it only ever
// resolves the handful of syntactic forms that are unambiguously
// constant regardless of any name binding (spec §4.5 lists
// `if False:` / `if TYPE_CHECKING:`-style guards as the motivating
// case; TYPE_CHECKING itself needs a smarter, symbol-aware evaluator a
// host supplies separately).
type literalStaticEval struct{}

func (literalStaticEval) EvalBool(e ast.Expr) (bool, bool) {
	switch n := e.(type) {
	case *ast.BoolLit:
		return n.Value, true
	case *ast.NoneLit:
		return false, true
	case *ast.NumberLit:
		return n.Raw != "0" && n.Raw != "0.0", true
	case *ast.StringLit:
		return n.Value != "", true
	case *ast.UnaryOp:
		if n.Op == ast.Not {
			if v, ok := (literalStaticEval{}).EvalBool(n.Operand); ok {
				return !v, true
			}
		}
	}
	return false, false
}

func (fi *FileInfo) staticEval() StaticEvalHook {
	if fi != nil && fi.StaticEval != nil {
		return fi.StaticEval
	}
	return literalStaticEval{}
}

// evalStaticBool reports whether e is statically decidable (always)
// and, if so, its value. The walker acts on two outcomes (spec §4.5):
// an always-false test means Body is unreachable, an always-true test
// means Orelse is unreachable. An undecidable test (always == false)
// leaves both branches reachable.
func evalStaticBool(fi *FileInfo, e ast.Expr) (always bool, value bool) {
	v, ok := fi.staticEval().EvalBool(e)
	return ok, v
}
