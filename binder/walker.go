package binder

import "github.com/kestrel-lang/kestrel/ast"

// localKind records what a `global`/`nonlocal` statement said about one
// name for the remainder of the scope it appears in (spec §4.1's
// notLocalBindings map).
type localKind uint8

const (
	localNone localKind = iota
	localGlobal
	localNonlocal
)

// deferredBinder is a sub-scope binder discovered mid-walk whose body
// walk is postponed until the discovering scope's own top-level walk
// finishes (spec §4.5). Function and lambda binders implement it;
// class binders do not, because classes are always walked immediately
// in place (spec §4.3).
type deferredBinder interface {
	bindDeferred()
}

// classContext is non-nil on the walker used for a function body
// defined directly in a class's own body, letting bindTarget apply the
// self/cls member heuristic from spec §4.4.
type classContext struct {
	scope    *Scope // the class's own scope
	selfName string // the method's first parameter name
}

// walker is the self-redispatching AST visitor every scope binder
// (module, class, function, lambda) drives. It embeds ast.NoopVisitor
// purely so it satisfies ast.Visitor if a caller wants to hand it to
// ast.VisitWith directly; the binder itself never relies on that —
// it drives its own explicit statement dispatch (walkStmts/walkStmt)
// and expression walk (visitExprForEscape) in a single pass per scope,
// with no separate pre-scan and no Visit* overrides.
type walker struct {
	ast.NoopVisitor

	scope    *Scope
	fileInfo *FileInfo

	notLocal map[string]localKind

	// unexecuted is true while walking syntax the walker has proven is
	// dead (spec §4.5). Declarations are still produced while
	// unexecuted — see DESIGN.md's open-question decision — but no
	// MayEscape/AlwaysRaises signal is taken from dead code.
	unexecuted bool

	nestedExceptDepth int

	// queue is the FIFO this walker's own discoveries of nested
	// function/lambda binders append to. Function/lambda binders create
	// their own queue for walking their body; class binders share
	// whichever queue was active in the scope that discovered them, so
	// method bodies defer to the same pass as top-level functions.
	queue *[]deferredBinder

	classCtx *classContext
}

func newWalker(scope *Scope, fi *FileInfo, queue *[]deferredBinder) *walker {
	return &walker{
		scope:    scope,
		fileInfo: fi,
		notLocal: make(map[string]localKind),
		queue:    queue,
	}
}

func (w *walker) child(scope *Scope) *walker {
	return newWalker(scope, w.fileInfo, w.queue)
}

// enqueue records a deferred sub-scope binder on the active queue.
func (w *walker) enqueue(db deferredBinder) {
	if w.queue == nil {
		panic(internalFaultf("binder: no active deferred queue to enqueue into"))
	}
	*w.queue = append(*w.queue, db)
}

// targetScope resolves where a binding for name should actually land,
// honoring any `global`/`nonlocal` statement already seen in this scope
// (spec §4.1).
func (w *walker) targetScope(name string) *Scope {
	switch w.notLocal[normalizeName(name)] {
	case localGlobal:
		if g := w.scope.GlobalScope(); g != nil {
			return g
		}
	case localNonlocal:
		for cur := w.scope.Parent; cur != nil; cur = cur.Parent {
			if cur.Kind == FunctionScope {
				return cur
			}
			if cur.isGlobal() {
				break
			}
		}
	}
	return w.scope
}

// enclosingFunctionScope returns the nearest enclosing FunctionScope, or
// nil if w.scope is only ever nested in module/class/comprehension
// scopes. The yield/await legality checks in visitExprForEscape use
// this to tell "inside a function" from "inside a comprehension at
// module scope" and similar.
func (w *walker) enclosingFunctionScope() *Scope {
	s := w.scope.EnclosingFunctionOrModule()
	if s == nil || s.Kind != FunctionScope {
		return nil
	}
	return s
}

// hasEnclosingNonlocalBinding reports whether some function scope
// strictly between w.scope and the nearest enclosing global scope
// already binds name (class scopes on the way are skipped) — the
// existing binding `nonlocal` is required to redirect to
// (spec §4.1: "error if no binding for the name exists in any enclosing
// non-global scope").
func (w *walker) hasEnclosingNonlocalBinding(name string) bool {
	for cur := w.scope.Parent; cur != nil && !cur.isGlobal(); cur = cur.Parent {
		if cur.Kind == FunctionScope {
			if sym := cur.Table.Lookup(name); sym != nil && len(sym.Declarations) > 0 {
				return true
			}
		}
	}
	return false
}

// declareNotLocal records the effect of a global/nonlocal statement and
// eagerly materializes a symbol in the target scope, matching spec
// §4.1's note that `global x` alone (with no assignment) still makes
// `x` visible as a declared name in the global scope. It also implements
// every hard-coded diagnostic spec §4.1/§7 attaches to these statements:
// a name assigned in this scope before its global/nonlocal declaration,
// `nonlocal` at module level, a name declared both global and nonlocal
// in the same scope, and a `nonlocal` naming no enclosing binding.
func (w *walker) declareNotLocal(stmtRange ast.Range, names []*ast.Name, kind localKind) {
	if kind == localNonlocal && w.scope.isGlobal() {
		reportHardError(w.fileInfo, RuleNonlocalAtModuleLevel, stmtRange,
			"nonlocal declaration not allowed at module level")
	}

	word := "global"
	if kind == localNonlocal {
		word = "nonlocal"
	}

	for _, n := range names {
		key := normalizeName(n.Id)

		if prev, ok := w.notLocal[key]; ok && prev != kind {
			reportHardError(w.fileInfo, RuleConflictingGlobalNonlocal, n.Range,
				`name "`+n.Id+`" is nonlocal and global`)
		}

		if kind == localNonlocal && !w.hasEnclosingNonlocalBinding(n.Id) {
			reportHardError(w.fileInfo, RuleNonlocalNoBinding, n.Range,
				`no binding for nonlocal "`+n.Id+`" found in an enclosing scope`)
		}

		existing := w.scope.Table.Lookup(n.Id)
		if existing != nil && len(existing.Declarations) > 0 {
			reportHardError(w.fileInfo, RuleAssignedBeforeNotLocalDeclaration, n.Range,
				`"`+n.Id+`" is assigned before `+word+` declaration`)
		}

		w.notLocal[key] = kind
		target := w.targetScope(n.Id).Table.GetOrCreate(n.Id)
		if existing != nil && target != existing {
			for _, d := range existing.Declarations {
				target.AddDeclaration(d)
			}
			target.Flags |= existing.Flags
			w.scope.Table.delete(n.Id)
		}
	}
}

// bindSimple declares name in its target scope with a VariableDeclaration
// and returns the symbol, honoring global/nonlocal redirection and the
// self/cls member heuristic for attribute targets (handled separately
// in bindTarget).
func (w *walker) bindSimple(name *ast.Name, decl VariableDeclaration) *Symbol {
	decl.declCommon = declCommon{Path: w.fileInfo.Path, Range: name.Range}
	decl.Node = name
	scope := w.targetScope(name.Id)
	sym := scope.Table.GetOrCreate(name.Id)
	if scope.Kind == ClassScope {
		sym.Flags |= ClassMember
	}
	if w.unexecuted {
		sym.Flags |= InitiallyUnbound
	}
	sym.AddDeclaration(decl)
	return sym
}

// bindTarget dispatches an assignment target (plain name, tuple/list
// destructuring, `self.attr`, subscript, or starred target) to the
// right declaration kind. Subscript and non-self/cls attribute targets
// bind nothing new — they mutate an existing object, not a name — so
// they are walked only for MayEscape/nested-scope purposes.
func (w *walker) bindTarget(target ast.Expr, source ast.Node) {
	switch t := target.(type) {
	case *ast.Name:
		w.bindSimple(t, VariableDeclaration{IsConstant: isConstantName(t.Id), InferredTypeSource: source})
	case *ast.TupleExpr:
		for _, e := range t.Elts {
			w.bindTarget(e, source)
		}
	case *ast.ListExpr:
		for _, e := range t.Elts {
			w.bindTarget(e, source)
		}
	case *ast.Starred:
		w.bindTarget(t.Value, source)
	case *ast.Attribute:
		w.bindAttributeTarget(t)
	case *ast.Subscript:
		w.visitExprForEscape(t.Value)
		w.visitExprForEscape(t.Index)
	}
}

// bindAttributeTarget implements spec §4.4's self/cls member heuristic:
// `self.x = ...` inside a method whose first parameter is bound to the
// enclosing class's self/cls name declares `x` as an InstanceMember (or
// ClassMember, for `cls.x = ...`) directly on the class scope's table,
// in addition to leaving the attribute expression itself otherwise
// unbound (it is not a name in any scope).
func (w *walker) bindAttributeTarget(attr *ast.Attribute) {
	w.visitExprForEscape(attr.Value)
	if w.classCtx == nil {
		return
	}
	recv, ok := attr.Value.(*ast.Name)
	if !ok || recv.Id != w.classCtx.selfName {
		return
	}
	sym := w.classCtx.scope.Table.GetOrCreate(attr.Attr.Id)
	sym.Flags |= InstanceMember
	sym.AddDeclaration(VariableDeclaration{
		declCommon: declCommon{Path: w.fileInfo.Path, Range: attr.Range},
		Node:       attr,
	})
}

func (w *walker) bindAnnotated(n *ast.AnnAssign) {
	name, ok := n.Target.(*ast.Name)
	if !ok {
		w.bindTarget(n.Target, n)
		return
	}
	decl := VariableDeclaration{
		IsConstant:     isConstantName(name.Id),
		TypeAnnotation: n.Annotation,
	}
	if n.Value != nil {
		decl.InferredTypeSource = n.Value
	}
	w.bindSimple(name, decl)
}

// isConstantName applies the target language's ALL_CAPS convention for
// treating a module- or class-level name as effectively final (spec
// §4.1 DESIGN NOTES).
func isConstantName(id string) bool {
	if id == "" {
		return false
	}
	sawLetter := false
	for _, r := range id {
		switch {
		case r >= 'A' && r <= 'Z':
			sawLetter = true
		case r == '_' || (r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return sawLetter
}

// escapeCallees is the set of reflective/dynamic-execution built-ins
// whose presence anywhere in a scope sets that scope's MayEscape flag
// (spec §4.5).
var escapeCallees = map[string]bool{
	"exec": true, "eval": true, "locals": true, "globals": true, "vars": true,
}

// visitExprForEscape walks e looking for escape-hatch calls and nested
// scope-introducing expressions (lambda, comprehension), and binds
// walrus targets. It never resolves ordinary name references — that is
// outside this package's scope, spec §1 Non-goals.
func (w *walker) visitExprForEscape(e ast.Expr) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.Call:
		if name, ok := n.Func.(*ast.Name); ok && escapeCallees[name.Id] && !w.unexecuted {
			w.scope.MayEscape = true
		}
		w.visitExprForEscape(n.Func)
		for _, a := range n.Args {
			w.visitExprForEscape(a)
		}
		for _, k := range n.Keywords {
			w.visitExprForEscape(k.Value)
		}
	case *ast.BinOp:
		w.visitExprForEscape(n.Left)
		w.visitExprForEscape(n.Right)
	case *ast.UnaryOp:
		w.visitExprForEscape(n.Operand)
	case *ast.BoolOp:
		for _, v := range n.Values {
			w.visitExprForEscape(v)
		}
	case *ast.Compare:
		w.visitExprForEscape(n.Left)
		for _, c := range n.Comparators {
			w.visitExprForEscape(c)
		}
	case *ast.Attribute:
		w.visitExprForEscape(n.Value)
	case *ast.Subscript:
		w.visitExprForEscape(n.Value)
		w.visitExprForEscape(n.Index)
	case *ast.Slice:
		w.visitExprForEscape(n.Lower)
		w.visitExprForEscape(n.Upper)
		w.visitExprForEscape(n.Step)
	case *ast.TupleExpr:
		for _, el := range n.Elts {
			w.visitExprForEscape(el)
		}
	case *ast.ListExpr:
		for _, el := range n.Elts {
			w.visitExprForEscape(el)
		}
	case *ast.SetExpr:
		for _, el := range n.Elts {
			w.visitExprForEscape(el)
		}
	case *ast.DictExpr:
		for _, ent := range n.Entries {
			w.visitExprForEscape(ent.Key)
			w.visitExprForEscape(ent.Value)
		}
	case *ast.Starred:
		w.visitExprForEscape(n.Value)
	case *ast.IfExp:
		w.visitExprForEscape(n.Test)
		w.visitExprForEscape(n.Body)
		w.visitExprForEscape(n.Orelse)
	case *ast.NamedExpr:
		w.visitExprForEscape(n.Value)
		target := w.scope
		if target.Kind == ComprehensionScope {
			if enc := target.EnclosingFunctionOrModule(); enc != nil {
				target = enc
			}
		}
		sym := target.Table.GetOrCreate(n.Target.Id)
		sym.AddDeclaration(VariableDeclaration{
			declCommon: declCommon{Path: w.fileInfo.Path, Range: n.Target.Range},
			Node:       n.Target,
		})
	case *ast.Yield:
		w.visitExprForEscape(n.Value)
		if w.enclosingFunctionScope() == nil {
			reportHardError(w.fileInfo, RuleYieldOutsideFunction, n.Range,
				"yield not allowed outside of a function")
		}
	case *ast.YieldFrom:
		w.visitExprForEscape(n.Value)
		switch fn := w.enclosingFunctionScope(); {
		case fn == nil:
			reportHardError(w.fileInfo, RuleYieldOutsideFunction, n.Range,
				"yield not allowed outside of a function")
		case fn.IsAsync:
			reportHardError(w.fileInfo, RuleYieldFromInAsyncFunction, n.Range,
				"yield from not allowed in an async function")
		}
	case *ast.Await:
		w.visitExprForEscape(n.Value)
		if fn := w.enclosingFunctionScope(); fn == nil || !fn.IsAsync {
			reportHardError(w.fileInfo, RuleAwaitOutsideAsyncFunction, n.Range,
				"await not allowed outside of an async function")
		}
	case *ast.StringLit:
		validateStringEscapes(w.fileInfo, n)
		for _, p := range n.Parts {
			w.visitExprForEscape(p.Value)
		}
	case *ast.Lambda:
		w.bindLambda(n)
	case *ast.Comprehension:
		w.bindComprehension(n)
	}
}

// withUnexecuted runs fn with w.unexecuted forced true for its
// duration, restoring the previous value afterward.
func (w *walker) withUnexecuted(fn func()) {
	prev := w.unexecuted
	w.unexecuted = true
	fn()
	w.unexecuted = prev
}

// walkStmts binds every statement in order and reports whether control
// is guaranteed not to fall through past the list (a return/raise/
// break/continue, or an if/else whose every arm terminates).
func (w *walker) walkStmts(stmts []ast.Stmt) bool {
	terminated := false
	for _, s := range stmts {
		t := w.walkStmt(s)
		if terminated {
			continue
		}
		if t {
			terminated = true
		}
	}
	return terminated
}

func (w *walker) walkStmt(s ast.Stmt) bool {
	wasUnexecuted := w.unexecuted
	defer func() { w.unexecuted = wasUnexecuted }()

	switch n := s.(type) {
	case *ast.ExprStmt:
		w.visitExprForEscape(n.X)
		return false
	case *ast.Assign:
		w.visitExprForEscape(n.Value)
		for _, t := range n.Targets {
			w.bindTarget(t, n)
		}
		return false
	case *ast.AugAssign:
		w.visitExprForEscape(n.Value)
		w.visitExprForEscape(n.Target)
		w.bindTarget(n.Target, n)
		return false
	case *ast.AnnAssign:
		if n.Value != nil {
			w.visitExprForEscape(n.Value)
		}
		w.bindAnnotated(n)
		return false
	case *ast.ReturnStmt:
		w.visitExprForEscape(n.Value)
		return true
	case *ast.RaiseStmt:
		w.visitExprForEscape(n.Exc)
		w.visitExprForEscape(n.Cause)
		if !w.unexecuted {
			w.scope.AlwaysRaises = true
		}
		if n.Exc == nil && w.nestedExceptDepth == 0 {
			reportHardError(w.fileInfo, RuleNakedRaise, n.Range,
				"raise with no active exception to re-raise")
		}
		return true
	case *ast.PassStmt:
		return false
	case *ast.BreakStmt, *ast.ContinueStmt:
		return true
	case *ast.DeleteStmt:
		for _, t := range n.Targets {
			w.visitExprForEscape(t)
		}
		return false
	case *ast.GlobalStmt:
		w.declareNotLocal(n.Range, n.Names, localGlobal)
		return false
	case *ast.NonlocalStmt:
		w.declareNotLocal(n.Range, n.Names, localNonlocal)
		return false
	case *ast.IfStmt:
		return w.walkIf(n)
	case *ast.WhileStmt:
		w.visitExprForEscape(n.Test)
		ok, val := evalStaticBool(w.fileInfo, n.Test)
		if ok && !val {
			w.withUnexecuted(func() { w.walkStmts(n.Body) })
		} else {
			w.walkStmts(n.Body)
		}
		if ok && val {
			w.withUnexecuted(func() { w.walkStmts(n.Orelse) })
		} else {
			w.walkStmts(n.Orelse)
		}
		return false
	case *ast.ForStmt:
		w.visitExprForEscape(n.Iter)
		w.bindTarget(n.Target, n)
		w.walkStmts(n.Body)
		w.walkStmts(n.Orelse)
		return false
	case *ast.WithStmt:
		for _, item := range n.Items {
			w.visitExprForEscape(item.ContextExpr)
			if item.OptionalVars != nil {
				w.bindTarget(item.OptionalVars, item)
			}
		}
		return w.walkStmts(n.Body)
	case *ast.TryStmt:
		return w.walkTry(n)
	case *ast.FunctionDef:
		w.bindFunctionDef(n)
		return false
	case *ast.ClassDef:
		w.bindClassDef(n)
		return false
	case *ast.ImportStmt:
		w.bindImport(n)
		return false
	case *ast.ImportFromStmt:
		w.bindImportFrom(n)
		return false
	}
	return false
}

func (w *walker) walkIf(n *ast.IfStmt) bool {
	w.visitExprForEscape(n.Test)
	ok, val := evalStaticBool(w.fileInfo, n.Test)

	if ok && !val {
		w.withUnexecuted(func() { w.walkStmts(n.Body) })
		return w.walkStmts(n.Orelse)
	}
	if ok && val {
		bodyTerm := w.walkStmts(n.Body)
		w.withUnexecuted(func() { w.walkStmts(n.Orelse) })
		return bodyTerm
	}

	bodyTerm := w.walkStmts(n.Body)
	elseTerm := w.walkStmts(n.Orelse)
	if len(n.Orelse) == 0 {
		return false
	}
	return bodyTerm && elseTerm
}

func (w *walker) walkTry(n *ast.TryStmt) bool {
	bodyTerm := w.walkStmts(n.Body)

	allHandlersTerm := len(n.Handlers) > 0
	for _, h := range n.Handlers {
		w.visitExprForEscape(h.Type)
		if h.Name != nil {
			w.bindSimple(h.Name, VariableDeclaration{})
		}
		w.nestedExceptDepth++
		t := w.walkStmts(h.Body)
		w.nestedExceptDepth--
		if !t {
			allHandlersTerm = false
		}
	}

	w.walkStmts(n.Orelse)
	finallyTerm := w.walkStmts(n.Finally)

	if finallyTerm {
		return true
	}
	return bodyTerm && allHandlersTerm
}
