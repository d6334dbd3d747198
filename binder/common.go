package binder

import "github.com/kestrel-lang/kestrel/ast"

// docStringOf returns the leading bare string-literal statement of
// body, if any and if it is not an f-string — the target language's
// convention for a docstring (spec §4.2/§4.3).
func docStringOf(body []ast.Stmt) *ast.StringLit {
	if len(body) == 0 {
		return nil
	}
	es, ok := body[0].(*ast.ExprStmt)
	if !ok {
		return nil
	}
	s, ok := es.X.(*ast.StringLit)
	if !ok || s.IsFString {
		return nil
	}
	return s
}
