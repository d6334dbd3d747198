package ast

// VisitableNode is implemented by every node the binder's walker needs
// to descend into — statements, expressions, and the small structural
// helpers (parameter lists, with-items, ...) that sit between them.
//
// The shape (VisitWith dispatches to one Visitor method per concrete
// type, VisitChildrenWith recurses into children) and the NoopVisitor/V
// self-redispatch idiom below follow the ast.Visitor/NoopVisitor and
// RemoveVisitor.V pattern used to stay virtual through embedding, since
// plain Go method embedding does not give an overridden method's
// callees dynamic dispatch back to the override.
type VisitableNode interface {
	VisitWith(v Visitor)
	VisitChildrenWith(v Visitor)
}

// Visitor has one method per visitable node type. NoopVisitor
// implements all of them; embed it and override only what you need.
type Visitor interface {
	VisitModule(n *Module)

	VisitExprStmt(n *ExprStmt)
	VisitAssign(n *Assign)
	VisitAugAssign(n *AugAssign)
	VisitAnnAssign(n *AnnAssign)
	VisitReturn(n *ReturnStmt)
	VisitDelete(n *DeleteStmt)
	VisitPass(n *PassStmt)
	VisitBreak(n *BreakStmt)
	VisitContinue(n *ContinueStmt)
	VisitIf(n *IfStmt)
	VisitWhile(n *WhileStmt)
	VisitFor(n *ForStmt)
	VisitWith(n *WithStmt)
	VisitRaise(n *RaiseStmt)
	VisitTry(n *TryStmt)
	VisitFunctionDef(n *FunctionDef)
	VisitClassDef(n *ClassDef)
	VisitGlobal(n *GlobalStmt)
	VisitNonlocal(n *NonlocalStmt)
	VisitImport(n *ImportStmt)
	VisitImportFrom(n *ImportFromStmt)

	VisitParameters(n *Parameters)
	VisitParam(n *Param)
	VisitWithItem(n *WithItem)
	VisitExceptHandler(n *ExceptHandler)
	VisitAlias(n *Alias)
	VisitDictEntry(n *DictEntry)
	VisitKeyword(n *Keyword)
	VisitForClause(n *ForClause)
	VisitIfClause(n *IfClause)

	VisitName(n *Name)
	VisitNumberLit(n *NumberLit)
	VisitStringLit(n *StringLit)
	VisitBytesLit(n *BytesLit)
	VisitBoolLit(n *BoolLit)
	VisitNoneLit(n *NoneLit)
	VisitEllipsisLit(n *EllipsisLit)
	VisitTupleExpr(n *TupleExpr)
	VisitListExpr(n *ListExpr)
	VisitSetExpr(n *SetExpr)
	VisitDictExpr(n *DictExpr)
	VisitStarred(n *Starred)
	VisitAttribute(n *Attribute)
	VisitSlice(n *Slice)
	VisitSubscript(n *Subscript)
	VisitCall(n *Call)
	VisitBinOp(n *BinOp)
	VisitUnaryOp(n *UnaryOp)
	VisitBoolOp(n *BoolOp)
	VisitCompare(n *Compare)
	VisitLambda(n *Lambda)
	VisitIfExp(n *IfExp)
	VisitNamedExpr(n *NamedExpr)
	VisitComprehension(n *Comprehension)
	VisitYield(n *Yield)
	VisitYieldFrom(n *YieldFrom)
	VisitAwait(n *Await)
	VisitModuleNameRef(n *ModuleNameRef)
}

// NoopVisitor recurses into every node's children and otherwise does
// nothing. Embed it and set V to yourself so that default methods keep
// dispatching through your overrides instead of looping back into the
// embedded NoopVisitor's own method set.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) self() Visitor {
	if nv.V != nil {
		return nv.V
	}
	return nv
}

func (nv *NoopVisitor) VisitModule(n *Module)                   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitExprStmt(n *ExprStmt)                { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitAssign(n *Assign)                     { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitAugAssign(n *AugAssign)               { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitAnnAssign(n *AnnAssign)               { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitReturn(n *ReturnStmt)                 { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitDelete(n *DeleteStmt)                 { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitPass(n *PassStmt)                     {}
func (nv *NoopVisitor) VisitBreak(n *BreakStmt)                   {}
func (nv *NoopVisitor) VisitContinue(n *ContinueStmt)             {}
func (nv *NoopVisitor) VisitIf(n *IfStmt)                         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitWhile(n *WhileStmt)                   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitFor(n *ForStmt)                       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitWith(n *WithStmt)                     { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitRaise(n *RaiseStmt)                   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitTry(n *TryStmt)                       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitFunctionDef(n *FunctionDef)           { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitClassDef(n *ClassDef)                 { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitGlobal(n *GlobalStmt)                 { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitNonlocal(n *NonlocalStmt)             { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitImport(n *ImportStmt)                 { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitImportFrom(n *ImportFromStmt)         { n.VisitChildrenWith(nv.self()) }

func (nv *NoopVisitor) VisitParameters(n *Parameters)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitParam(n *Param)                   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitWithItem(n *WithItem)             { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitExceptHandler(n *ExceptHandler)   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitAlias(n *Alias)                   {}
func (nv *NoopVisitor) VisitDictEntry(n *DictEntry)           { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitKeyword(n *Keyword)               { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitForClause(n *ForClause)           { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitIfClause(n *IfClause)             { n.VisitChildrenWith(nv.self()) }

func (nv *NoopVisitor) VisitName(n *Name)                 {}
func (nv *NoopVisitor) VisitNumberLit(n *NumberLit)       {}
func (nv *NoopVisitor) VisitStringLit(n *StringLit)       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitBytesLit(n *BytesLit)         {}
func (nv *NoopVisitor) VisitBoolLit(n *BoolLit)           {}
func (nv *NoopVisitor) VisitNoneLit(n *NoneLit)           {}
func (nv *NoopVisitor) VisitEllipsisLit(n *EllipsisLit)   {}
func (nv *NoopVisitor) VisitTupleExpr(n *TupleExpr)       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitListExpr(n *ListExpr)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitSetExpr(n *SetExpr)           { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitDictExpr(n *DictExpr)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitStarred(n *Starred)           { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitAttribute(n *Attribute)       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitSlice(n *Slice)               { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitSubscript(n *Subscript)       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitCall(n *Call)                 { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitBinOp(n *BinOp)               { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitUnaryOp(n *UnaryOp)           { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitBoolOp(n *BoolOp)             { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitCompare(n *Compare)           { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitLambda(n *Lambda)             { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitIfExp(n *IfExp)               { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitNamedExpr(n *NamedExpr)       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitComprehension(n *Comprehension) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitYield(n *Yield)               { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitYieldFrom(n *YieldFrom)       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitAwait(n *Await)               { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitModuleNameRef(n *ModuleNameRef) {}

// --- VisitWith / VisitChildrenWith --------------------------------------

func visitExpr(e Expr, v Visitor) {
	if e != nil {
		e.VisitWith(v)
	}
}

func visitStmts(stmts []Stmt, v Visitor) {
	for _, s := range stmts {
		s.VisitWith(v)
	}
}

func (n *Module) VisitWith(v Visitor)         { v.VisitModule(n) }
func (n *Module) VisitChildrenWith(v Visitor) { visitStmts(n.Body, v) }

func (n *ExprStmt) VisitWith(v Visitor)         { v.VisitExprStmt(n) }
func (n *ExprStmt) VisitChildrenWith(v Visitor) { visitExpr(n.X, v) }

func (n *Assign) VisitWith(v Visitor) { v.VisitAssign(n) }
func (n *Assign) VisitChildrenWith(v Visitor) {
	for _, t := range n.Targets {
		visitExpr(t, v)
	}
	visitExpr(n.Value, v)
}

func (n *AugAssign) VisitWith(v Visitor) { v.VisitAugAssign(n) }
func (n *AugAssign) VisitChildrenWith(v Visitor) {
	visitExpr(n.Target, v)
	visitExpr(n.Value, v)
}

func (n *AnnAssign) VisitWith(v Visitor) { v.VisitAnnAssign(n) }
func (n *AnnAssign) VisitChildrenWith(v Visitor) {
	visitExpr(n.Target, v)
	visitExpr(n.Annotation, v)
	visitExpr(n.Value, v)
}

func (n *ReturnStmt) VisitWith(v Visitor)         { v.VisitReturn(n) }
func (n *ReturnStmt) VisitChildrenWith(v Visitor) { visitExpr(n.Value, v) }

func (n *DeleteStmt) VisitWith(v Visitor) { v.VisitDelete(n) }
func (n *DeleteStmt) VisitChildrenWith(v Visitor) {
	for _, t := range n.Targets {
		visitExpr(t, v)
	}
}

func (n *PassStmt) VisitWith(v Visitor)         { v.VisitPass(n) }
func (n *PassStmt) VisitChildrenWith(v Visitor) {}

func (n *BreakStmt) VisitWith(v Visitor)         { v.VisitBreak(n) }
func (n *BreakStmt) VisitChildrenWith(v Visitor) {}

func (n *ContinueStmt) VisitWith(v Visitor)         { v.VisitContinue(n) }
func (n *ContinueStmt) VisitChildrenWith(v Visitor) {}

func (n *IfStmt) VisitWith(v Visitor) { v.VisitIf(n) }
func (n *IfStmt) VisitChildrenWith(v Visitor) {
	visitExpr(n.Test, v)
	visitStmts(n.Body, v)
	visitStmts(n.Orelse, v)
}

func (n *WhileStmt) VisitWith(v Visitor) { v.VisitWhile(n) }
func (n *WhileStmt) VisitChildrenWith(v Visitor) {
	visitExpr(n.Test, v)
	visitStmts(n.Body, v)
	visitStmts(n.Orelse, v)
}

func (n *ForStmt) VisitWith(v Visitor) { v.VisitFor(n) }
func (n *ForStmt) VisitChildrenWith(v Visitor) {
	visitExpr(n.Target, v)
	visitExpr(n.Iter, v)
	visitStmts(n.Body, v)
	visitStmts(n.Orelse, v)
}

func (n *WithStmt) VisitWith(v Visitor) { v.VisitWith(n) }
func (n *WithStmt) VisitChildrenWith(v Visitor) {
	for _, it := range n.Items {
		it.VisitWith(v)
	}
	visitStmts(n.Body, v)
}

func (n *RaiseStmt) VisitWith(v Visitor) { v.VisitRaise(n) }
func (n *RaiseStmt) VisitChildrenWith(v Visitor) {
	visitExpr(n.Exc, v)
	visitExpr(n.Cause, v)
}

func (n *TryStmt) VisitWith(v Visitor) { v.VisitTry(n) }
func (n *TryStmt) VisitChildrenWith(v Visitor) {
	visitStmts(n.Body, v)
	for _, h := range n.Handlers {
		h.VisitWith(v)
	}
	visitStmts(n.Orelse, v)
	visitStmts(n.Finally, v)
}

func (n *FunctionDef) VisitWith(v Visitor) { v.VisitFunctionDef(n) }
func (n *FunctionDef) VisitChildrenWith(v Visitor) {
	for _, d := range n.Decorators {
		visitExpr(d, v)
	}
	n.Name.VisitWith(v)
	n.Params.VisitWith(v)
	visitExpr(n.Returns, v)
	visitStmts(n.Body, v)
}

func (n *ClassDef) VisitWith(v Visitor) { v.VisitClassDef(n) }
func (n *ClassDef) VisitChildrenWith(v Visitor) {
	for _, d := range n.Decorators {
		visitExpr(d, v)
	}
	n.Name.VisitWith(v)
	for _, b := range n.Bases {
		visitExpr(b, v)
	}
	for _, kw := range n.Keywords {
		kw.VisitWith(v)
	}
	visitStmts(n.Body, v)
}

func (n *GlobalStmt) VisitWith(v Visitor) { v.VisitGlobal(n) }
func (n *GlobalStmt) VisitChildrenWith(v Visitor) {
	for _, id := range n.Names {
		id.VisitWith(v)
	}
}

func (n *NonlocalStmt) VisitWith(v Visitor) { v.VisitNonlocal(n) }
func (n *NonlocalStmt) VisitChildrenWith(v Visitor) {
	for _, id := range n.Names {
		id.VisitWith(v)
	}
}

func (n *ImportStmt) VisitWith(v Visitor) { v.VisitImport(n) }
func (n *ImportStmt) VisitChildrenWith(v Visitor) {
	for _, a := range n.Names {
		a.VisitWith(v)
	}
}

func (n *ImportFromStmt) VisitWith(v Visitor) { v.VisitImportFrom(n) }
func (n *ImportFromStmt) VisitChildrenWith(v Visitor) {
	for _, a := range n.Names {
		a.VisitWith(v)
	}
}

func (n *Parameters) VisitWith(v Visitor) { v.VisitParameters(n) }
func (n *Parameters) VisitChildrenWith(v Visitor) {
	for _, p := range n.All() {
		p.VisitWith(v)
	}
}

func (n *Param) VisitWith(v Visitor) { v.VisitParam(n) }
func (n *Param) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	visitExpr(n.Annotation, v)
	visitExpr(n.Default, v)
}

func (n *WithItem) VisitWith(v Visitor) { v.VisitWithItem(n) }
func (n *WithItem) VisitChildrenWith(v Visitor) {
	visitExpr(n.ContextExpr, v)
	visitExpr(n.OptionalVars, v)
}

func (n *ExceptHandler) VisitWith(v Visitor) { v.VisitExceptHandler(n) }
func (n *ExceptHandler) VisitChildrenWith(v Visitor) {
	visitExpr(n.Type, v)
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	visitStmts(n.Body, v)
}

func (n *Alias) VisitWith(v Visitor)         { v.VisitAlias(n) }
func (n *Alias) VisitChildrenWith(v Visitor) {}

func (n *DictEntry) VisitWith(v Visitor) { v.VisitDictEntry(n) }
func (n *DictEntry) VisitChildrenWith(v Visitor) {
	visitExpr(n.Key, v)
	visitExpr(n.Value, v)
}

func (n *Keyword) VisitWith(v Visitor)         { v.VisitKeyword(n) }
func (n *Keyword) VisitChildrenWith(v Visitor) { visitExpr(n.Value, v) }

func (n *ForClause) VisitWith(v Visitor) { v.VisitForClause(n) }
func (n *ForClause) VisitChildrenWith(v Visitor) {
	visitExpr(n.Targets, v)
	visitExpr(n.Iter, v)
}

func (n *IfClause) VisitWith(v Visitor)         { v.VisitIfClause(n) }
func (n *IfClause) VisitChildrenWith(v Visitor) { visitExpr(n.Cond, v) }

func (n *Name) VisitWith(v Visitor)         { v.VisitName(n) }
func (n *Name) VisitChildrenWith(v Visitor) {}

func (n *NumberLit) VisitWith(v Visitor)         { v.VisitNumberLit(n) }
func (n *NumberLit) VisitChildrenWith(v Visitor) {}

func (n *StringLit) VisitWith(v Visitor) { v.VisitStringLit(n) }
func (n *StringLit) VisitChildrenWith(v Visitor) {
	for _, p := range n.Parts {
		visitExpr(p.Value, v)
	}
}

func (n *BytesLit) VisitWith(v Visitor)         { v.VisitBytesLit(n) }
func (n *BytesLit) VisitChildrenWith(v Visitor) {}

func (n *BoolLit) VisitWith(v Visitor)         { v.VisitBoolLit(n) }
func (n *BoolLit) VisitChildrenWith(v Visitor) {}

func (n *NoneLit) VisitWith(v Visitor)         { v.VisitNoneLit(n) }
func (n *NoneLit) VisitChildrenWith(v Visitor) {}

func (n *EllipsisLit) VisitWith(v Visitor)         { v.VisitEllipsisLit(n) }
func (n *EllipsisLit) VisitChildrenWith(v Visitor) {}

func (n *TupleExpr) VisitWith(v Visitor) { v.VisitTupleExpr(n) }
func (n *TupleExpr) VisitChildrenWith(v Visitor) {
	for _, e := range n.Elts {
		visitExpr(e, v)
	}
}

func (n *ListExpr) VisitWith(v Visitor) { v.VisitListExpr(n) }
func (n *ListExpr) VisitChildrenWith(v Visitor) {
	for _, e := range n.Elts {
		visitExpr(e, v)
	}
}

func (n *SetExpr) VisitWith(v Visitor) { v.VisitSetExpr(n) }
func (n *SetExpr) VisitChildrenWith(v Visitor) {
	for _, e := range n.Elts {
		visitExpr(e, v)
	}
}

func (n *DictExpr) VisitWith(v Visitor) { v.VisitDictExpr(n) }
func (n *DictExpr) VisitChildrenWith(v Visitor) {
	for _, e := range n.Entries {
		e.VisitWith(v)
	}
}

func (n *Starred) VisitWith(v Visitor)         { v.VisitStarred(n) }
func (n *Starred) VisitChildrenWith(v Visitor) { visitExpr(n.Value, v) }

func (n *Attribute) VisitWith(v Visitor) { v.VisitAttribute(n) }
func (n *Attribute) VisitChildrenWith(v Visitor) {
	visitExpr(n.Value, v)
	n.Attr.VisitWith(v)
}

func (n *Slice) VisitWith(v Visitor) { v.VisitSlice(n) }
func (n *Slice) VisitChildrenWith(v Visitor) {
	visitExpr(n.Lower, v)
	visitExpr(n.Upper, v)
	visitExpr(n.Step, v)
}

func (n *Subscript) VisitWith(v Visitor) { v.VisitSubscript(n) }
func (n *Subscript) VisitChildrenWith(v Visitor) {
	visitExpr(n.Value, v)
	visitExpr(n.Index, v)
}

func (n *Call) VisitWith(v Visitor) { v.VisitCall(n) }
func (n *Call) VisitChildrenWith(v Visitor) {
	visitExpr(n.Func, v)
	for _, a := range n.Args {
		visitExpr(a, v)
	}
	for _, kw := range n.Keywords {
		kw.VisitWith(v)
	}
}

func (n *BinOp) VisitWith(v Visitor) { v.VisitBinOp(n) }
func (n *BinOp) VisitChildrenWith(v Visitor) {
	visitExpr(n.Left, v)
	visitExpr(n.Right, v)
}

func (n *UnaryOp) VisitWith(v Visitor)         { v.VisitUnaryOp(n) }
func (n *UnaryOp) VisitChildrenWith(v Visitor) { visitExpr(n.Operand, v) }

func (n *BoolOp) VisitWith(v Visitor) { v.VisitBoolOp(n) }
func (n *BoolOp) VisitChildrenWith(v Visitor) {
	for _, e := range n.Values {
		visitExpr(e, v)
	}
}

func (n *Compare) VisitWith(v Visitor) { v.VisitCompare(n) }
func (n *Compare) VisitChildrenWith(v Visitor) {
	visitExpr(n.Left, v)
	for _, e := range n.Comparators {
		visitExpr(e, v)
	}
}

func (n *Lambda) VisitWith(v Visitor) { v.VisitLambda(n) }
func (n *Lambda) VisitChildrenWith(v Visitor) {
	n.Params.VisitWith(v)
	visitExpr(n.Body, v)
}

func (n *IfExp) VisitWith(v Visitor) { v.VisitIfExp(n) }
func (n *IfExp) VisitChildrenWith(v Visitor) {
	visitExpr(n.Test, v)
	visitExpr(n.Body, v)
	visitExpr(n.Orelse, v)
}

func (n *NamedExpr) VisitWith(v Visitor) { v.VisitNamedExpr(n) }
func (n *NamedExpr) VisitChildrenWith(v Visitor) {
	n.Target.VisitWith(v)
	visitExpr(n.Value, v)
}

func (n *Comprehension) VisitWith(v Visitor) { v.VisitComprehension(n) }
func (n *Comprehension) VisitChildrenWith(v Visitor) {
	for _, c := range n.Clauses {
		c.(VisitableNode).VisitWith(v)
	}
	visitExpr(n.Key, v)
	visitExpr(n.Element, v)
}

func (n *Yield) VisitWith(v Visitor)         { v.VisitYield(n) }
func (n *Yield) VisitChildrenWith(v Visitor) { visitExpr(n.Value, v) }

func (n *YieldFrom) VisitWith(v Visitor)         { v.VisitYieldFrom(n) }
func (n *YieldFrom) VisitChildrenWith(v Visitor) { visitExpr(n.Value, v) }

func (n *Await) VisitWith(v Visitor)         { v.VisitAwait(n) }
func (n *Await) VisitChildrenWith(v Visitor) { visitExpr(n.Value, v) }

func (n *ModuleNameRef) VisitWith(v Visitor)         { v.VisitModuleNameRef(n) }
func (n *ModuleNameRef) VisitChildrenWith(v Visitor) {}
