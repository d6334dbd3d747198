package ast

// Name is an identifier reference or binding target. The binder records
// its declarations in the owning Scope's SymbolTable, not on the node.
type Name struct {
	Id    string
	Range Range
}

func (n *Name) Span() Range { return n.Range }
func (*Name) expr()         {}

type NumberLit struct {
	Raw   string
	Range Range
}

func (n *NumberLit) Span() Range { return n.Range }
func (*NumberLit) expr()         {}

// FStringExpr is one `{expr}` (or `{expr!conv:spec}`) substitution inside
// an f-string literal.
type FStringExpr struct {
	Value      Expr
	Conversion byte // 0, 's', 'r', or 'a'
	FormatSpec string
	Range      Range
}

type StringLit struct {
	Raw   string
	Value string

	// IsFString marks this literal as an f-string; Parts holds the
	// embedded format expressions in source order, already parsed into
	// sub-expressions by the (external) parser.
	IsFString bool
	Parts     []*FStringExpr

	Range Range
}

func (n *StringLit) Span() Range { return n.Range }
func (*StringLit) expr()         {}

type BytesLit struct {
	Raw   string
	Value []byte
	Range Range
}

func (n *BytesLit) Span() Range { return n.Range }
func (*BytesLit) expr()         {}

type BoolLit struct {
	Value bool
	Range Range
}

func (n *BoolLit) Span() Range { return n.Range }
func (*BoolLit) expr()         {}

type NoneLit struct{ Range Range }

func (n *NoneLit) Span() Range { return n.Range }
func (*NoneLit) expr()         {}

type EllipsisLit struct{ Range Range }

func (n *EllipsisLit) Span() Range { return n.Range }
func (*EllipsisLit) expr()         {}

type TupleExpr struct {
	Elts  []Expr
	Range Range
}

func (n *TupleExpr) Span() Range { return n.Range }
func (*TupleExpr) expr()         {}

type ListExpr struct {
	Elts  []Expr
	Range Range
}

func (n *ListExpr) Span() Range { return n.Range }
func (*ListExpr) expr()         {}

type SetExpr struct {
	Elts  []Expr
	Range Range
}

func (n *SetExpr) Span() Range { return n.Range }
func (*SetExpr) expr()         {}

// DictEntry is Key: Value, or Key==nil for a `**spread` entry whose
// Value is the dict being spread.
type DictEntry struct {
	Key, Value Expr
	Range      Range
}

func (n *DictEntry) Span() Range { return n.Range }

type DictExpr struct {
	Entries []*DictEntry
	Range   Range
}

func (n *DictExpr) Span() Range { return n.Range }
func (*DictExpr) expr()         {}

type Starred struct {
	Value Expr
	Range Range
}

func (n *Starred) Span() Range { return n.Range }
func (*Starred) expr()         {}

type Attribute struct {
	Value Expr
	Attr  *Name
	Range Range
}

func (n *Attribute) Span() Range { return n.Range }
func (*Attribute) expr()         {}

type Slice struct {
	Lower, Upper, Step Expr // any may be nil
	Range              Range
}

func (n *Slice) Span() Range { return n.Range }
func (*Slice) expr()         {}

type Subscript struct {
	Value Expr
	Index Expr // *Slice for a[lo:hi:step], any Expr otherwise
	Range Range
}

func (n *Subscript) Span() Range { return n.Range }
func (*Subscript) expr()         {}

// Keyword is a call keyword argument (Name=="" for **kwargs).
type Keyword struct {
	Name  string
	Value Expr
	Range Range
}

func (n *Keyword) Span() Range { return n.Range }

type Call struct {
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
	Range    Range
}

func (n *Call) Span() Range { return n.Range }
func (*Call) expr()         {}

type BinOp struct {
	Left, Right Expr
	Op          Token
	Range       Range
}

func (n *BinOp) Span() Range { return n.Range }
func (*BinOp) expr()         {}

type UnaryOp struct {
	Op      Token
	Operand Expr
	Range   Range
}

func (n *UnaryOp) Span() Range { return n.Range }
func (*UnaryOp) expr()         {}

// BoolOp is `a and b and c` or `a or b or c` (flattened, like Python's
// own ast.BoolOp).
type BoolOp struct {
	Op     Token
	Values []Expr
	Range  Range
}

func (n *BoolOp) Span() Range { return n.Range }
func (*BoolOp) expr()         {}

// Compare is a chained comparison: a < b <= c.
type Compare struct {
	Left        Expr
	Ops         []Token
	Comparators []Expr
	Range       Range
}

func (n *Compare) Span() Range { return n.Range }
func (*Compare) expr()         {}

type Lambda struct {
	Params *Parameters
	Body   Expr
	Range  Range
}

func (n *Lambda) Span() Range { return n.Range }
func (*Lambda) expr()         {}

type IfExp struct {
	Test, Body, Orelse Expr
	Range              Range
}

func (n *IfExp) Span() Range { return n.Range }
func (*IfExp) expr()         {}

// NamedExpr is the walrus operator: target := value.
type NamedExpr struct {
	Target *Name
	Value  Expr
	Range  Range
}

func (n *NamedExpr) Span() Range { return n.Range }
func (*NamedExpr) expr()         {}

type ComprehensionKind int

const (
	ListComp ComprehensionKind = iota
	SetComp
	DictComp
	GeneratorExp
)

// ForClause is `for Targets in Iter` inside a comprehension.
type ForClause struct {
	Targets Expr
	Iter    Expr
	IsAsync bool
	Range   Range
}

func (n *ForClause) Span() Range { return n.Range }

// IfClause is `if Cond` inside a comprehension.
type IfClause struct {
	Cond  Expr
	Range Range
}

func (n *IfClause) Span() Range { return n.Range }

// ComprehensionClause is *ForClause | *IfClause.
type ComprehensionClause interface {
	Node
	comprehensionClause()
}

func (*ForClause) comprehensionClause() {}
func (*IfClause) comprehensionClause()  {}

// Comprehension is a list/set/dict/generator comprehension. Key is used
// only for DictComp (Element is then the dict value).
type Comprehension struct {
	Kind    ComprehensionKind
	Key     Expr // dict key, DictComp only
	Element Expr
	Clauses []ComprehensionClause
	Range   Range
}

func (n *Comprehension) Span() Range { return n.Range }
func (*Comprehension) expr()         {}

type Yield struct {
	Value Expr // may be nil
	Range Range
}

func (n *Yield) Span() Range { return n.Range }
func (*Yield) expr()         {}

type YieldFrom struct {
	Value Expr
	Range Range
}

func (n *YieldFrom) Span() Range { return n.Range }
func (*YieldFrom) expr()         {}

type Await struct {
	Value Expr
	Range Range
}

func (n *Await) Span() Range { return n.Range }
func (*Await) expr()         {}

// ModuleNameRef is a bare dotted module-name reference carrying the
// ImportInfo the external import resolver attached (spec §6). The
// binder does not visit it: import statements carry their module names
// and ImportInfo on Alias and ImportFromStmt, and the "missing
// import"/"missing type stub" diagnostics use those nodes' ranges.
type ModuleNameRef struct {
	Dotted string
	Info   *ImportInfo
	Range  Range
}

func (n *ModuleNameRef) Span() Range { return n.Range }
func (*ModuleNameRef) expr()         {}
