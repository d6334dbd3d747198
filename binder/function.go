package binder

import (
	"strings"

	"github.com/kestrel-lang/kestrel/ast"
)

// functionBinder is the deferred sub-scope binder spec §4.4 describes
// for both `def` and `lambda`: decorators, annotations and parameter
// defaults are walked immediately, in the enclosing scope, at the point
// bindFunctionDef/bindLambda runs; the parameter declarations and the
// body are deferred to bindDeferred, so forward references to names
// declared later in the enclosing scope resolve correctly (spec §4.5).
type functionBinder struct {
	scope    *Scope
	fileInfo *FileInfo
	params   *ast.Parameters
	body     []ast.Stmt // set for `def`
	exprBody ast.Expr   // set for `lambda`
	classCtx *classContext
}

func (fb *functionBinder) bindDeferred() {
	for _, p := range fb.params.All() {
		sym := fb.scope.Table.GetOrCreate(p.Name.Id)
		sym.AddDeclaration(ParameterDeclaration{
			declCommon: declCommon{Path: fb.fileInfo.Path, Range: p.Range},
			Node:       p,
		})
	}

	var ownQueue []deferredBinder
	w := newWalker(fb.scope, fb.fileInfo, &ownQueue)
	w.classCtx = fb.classCtx

	if fb.body != nil {
		w.walkStmts(fb.body)
	} else {
		w.visitExprForEscape(fb.exprBody)
	}

	for _, db := range ownQueue {
		db.bindDeferred()
	}
}

// bindFunctionDef declares n's name — as a MethodDeclaration if the
// enclosing scope is a class body, a FunctionDeclaration otherwise
// (spec §4.3/§4.4) — walks its decorators/annotations/defaults in the
// enclosing scope, and queues a functionBinder for its body.
func (w *walker) bindFunctionDef(n *ast.FunctionDef) {
	isMethod := w.scope.Kind == ClassScope

	for _, d := range n.Decorators {
		w.visitExprForEscape(d)
	}
	w.visitExprForEscape(n.Returns)
	for _, p := range n.Params.All() {
		w.visitExprForEscape(p.Annotation)
		w.visitExprForEscape(p.Default)
	}

	sym := w.targetScope(n.Name.Id).Table.GetOrCreate(n.Name.Id)
	common := declCommon{Path: w.fileInfo.Path, Range: n.Range}
	if isMethod {
		sym.Flags |= ClassMember
		sym.AddDeclaration(MethodDeclaration{
			declCommon:  common,
			Node:        n,
			IsStaticNew: n.Name.Id == "__new__",
		})
	} else {
		sym.AddDeclaration(FunctionDeclaration{declCommon: common, Node: n})
	}

	scope := newScope(FunctionScope, w.scope, n)
	scope.IsAsync = n.IsAsync
	n.Scope = scope
	n.Type = &FunctionType{Name: n.Name.Id, Node: n, Scope: scope, IsMethod: isMethod, IsAsync: n.IsAsync}

	fb := &functionBinder{scope: scope, fileInfo: w.fileInfo, params: n.Params, body: n.Body}
	if isMethod {
		selfName := ""
		if all := n.Params.All(); len(all) > 0 {
			selfName = all[0].Name.Id
		}
		fb.classCtx = &classContext{scope: w.scope, selfName: selfName}
		checkSelfClsParamName(w.fileInfo, n)
	}
	w.enqueue(fb)
}

// checkSelfClsParamName implements spec §4.4's self/cls naming check:
// an ordinary method's first parameter should be named "self";
// @classmethod and __new__ (implicitly static per IsStaticNew) should
// be named "cls". A method with no parameters at all has a separate,
// more fundamental problem the type checker reports — the binder stays
// quiet rather than duplicating it.
func checkSelfClsParamName(fi *FileInfo, n *ast.FunctionDef) {
	params := n.Params.All()
	if len(params) == 0 {
		return
	}
	first := params[0]

	isClassLike := n.Name.Id == "__new__"
	for _, d := range n.Decorators {
		if name, ok := d.(*ast.Name); ok && (name.Id == "classmethod" || name.Id == "staticmethod") {
			if name.Id == "staticmethod" {
				return
			}
			isClassLike = true
		}
	}

	want := "self"
	if isClassLike {
		want = "cls"
	}
	if first.Name.Id == want || strings.HasPrefix(first.Name.Id, "_") {
		return
	}
	report(fi, RuleSelfClsParamName, first.Range,
		`instance method's first parameter should be named "`+want+`"`, nil)
}

// bindLambda queues a functionBinder for a lambda expression, the same
// way bindFunctionDef does for `def` — lambdas get their own
// FunctionScope and their single-expression body is likewise deferred.
func (w *walker) bindLambda(n *ast.Lambda) {
	for _, p := range n.Params.All() {
		w.visitExprForEscape(p.Annotation)
		w.visitExprForEscape(p.Default)
	}
	scope := newScope(FunctionScope, w.scope, n)
	fb := &functionBinder{scope: scope, fileInfo: w.fileInfo, params: n.Params, exprBody: n.Body}
	w.enqueue(fb)
}
