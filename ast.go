// ast.go — the located, error-tolerant syntax tree.
//
// Every syntactic level (statement, target, expression, chop) is a closed
// variant set with an Invalid arm. The grammar layer substitutes an Invalid
// node at the smallest scope where it cannot complete a production and keeps
// parsing siblings; IsInvalid then propagates contagiously upward so a
// consumer can cheaply ask whether a subtree contains an unrecovered parse
// error. Invalidity never propagates downward: a bad subtree marks its
// ancestors, not its siblings.
package sflk

// Program is an ordered sequence of statements: the root of a parsed unit.
type Program struct {
	Stmts []*Node[Stmt]
}

// IsInvalid reports whether any statement in the program is invalid.
func (p *Program) IsInvalid() bool {
	for _, stmt := range p.Stmts {
		if stmt.Content.IsInvalid() {
			return true
		}
	}
	return false
}

// Stmt is one statement. The concrete types below are the only
// implementations.
type Stmt interface {
	IsInvalid() bool
	Tree() *StringTree
	isStmt()
}

type StmtNop struct{}

type StmtPrint struct {
	Expr *Node[Expr]
}

type StmtNewline struct{}

type StmtAssign struct {
	Target *Node[TargetExpr]
	Expr   *Node[Expr]
}

type StmtEvaluate struct {
	Expr *Node[Expr]
}

type StmtDo struct {
	Expr *Node[Expr]
}

type StmtDoHere struct {
	Expr *Node[Expr]
}

type StmtDoFileHere struct {
	Expr *Node[Expr]
}

// StmtIf holds optional branches; a nil branch means the branch was absent,
// which is distinct from an empty one.
type StmtIf struct {
	Cond *Node[Expr]
	Then *Node[Stmt]
	Else *Node[Stmt]
}

type StmtInvalid struct{}

func (StmtNop) isStmt()        {}
func (StmtPrint) isStmt()      {}
func (StmtNewline) isStmt()    {}
func (StmtAssign) isStmt()     {}
func (StmtEvaluate) isStmt()   {}
func (StmtDo) isStmt()         {}
func (StmtDoHere) isStmt()     {}
func (StmtDoFileHere) isStmt() {}
func (StmtIf) isStmt()         {}
func (StmtInvalid) isStmt()    {}

func (StmtNop) IsInvalid() bool     { return false }
func (StmtNewline) IsInvalid() bool { return false }
func (StmtInvalid) IsInvalid() bool { return true }

func (s StmtPrint) IsInvalid() bool    { return s.Expr.Content.IsInvalid() }
func (s StmtEvaluate) IsInvalid() bool { return s.Expr.Content.IsInvalid() }
func (s StmtDo) IsInvalid() bool       { return s.Expr.Content.IsInvalid() }
func (s StmtDoHere) IsInvalid() bool   { return s.Expr.Content.IsInvalid() }

func (s StmtDoFileHere) IsInvalid() bool { return s.Expr.Content.IsInvalid() }

func (s StmtAssign) IsInvalid() bool {
	return s.Target.Content.IsInvalid() || s.Expr.Content.IsInvalid()
}

func (s StmtIf) IsInvalid() bool {
	if s.Cond.Content.IsInvalid() {
		return true
	}
	if s.Then != nil && s.Then.Content.IsInvalid() {
		return true
	}
	if s.Else != nil && s.Else.Content.IsInvalid() {
		return true
	}
	return false
}

// TargetExpr is the left-hand side of an assignment.
type TargetExpr interface {
	IsInvalid() bool
	Tree() *StringTree
	isTargetExpr()
}

type TargetVariable struct {
	Name string
}

type TargetInvalid struct{}

func (TargetVariable) isTargetExpr() {}
func (TargetInvalid) isTargetExpr()  {}

func (TargetVariable) IsInvalid() bool { return false }
func (TargetInvalid) IsInvalid() bool  { return true }

// Expr is one expression.
type Expr interface {
	IsInvalid() bool
	Tree() *StringTree
	isExpr()
}

type ExprVariable struct {
	Name string
}

// ExprInteger keeps the literal's digit string; numeric conversion happens
// at lowering time.
type ExprInteger struct {
	Digits string
}

// ExprString holds the literal's text with escape sequences already
// resolved.
type ExprString struct {
	Text string
}

type ExprBlock struct {
	Stmts []*Node[Stmt]
}

// ExprChain is an initial expression followed by chained postfix operations
// applied left to right to the running value.
type ExprChain struct {
	Init  *Node[Expr]
	Chops []*Node[Chop]
}

type ExprInvalid struct{}

func (ExprVariable) isExpr() {}
func (ExprInteger) isExpr()  {}
func (ExprString) isExpr()   {}
func (ExprBlock) isExpr()    {}
func (ExprChain) isExpr()    {}
func (ExprInvalid) isExpr()  {}

func (ExprVariable) IsInvalid() bool { return false }
func (ExprInteger) IsInvalid() bool  { return false }
func (ExprString) IsInvalid() bool   { return false }
func (ExprInvalid) IsInvalid() bool  { return true }

func (e ExprBlock) IsInvalid() bool {
	for _, stmt := range e.Stmts {
		if stmt.Content.IsInvalid() {
			return true
		}
	}
	return false
}

func (e ExprChain) IsInvalid() bool {
	if e.Init.Content.IsInvalid() {
		return true
	}
	for _, chop := range e.Chops {
		if chop.Content.IsInvalid() {
			return true
		}
	}
	return false
}

// ChopKind tags a chained operation.
type ChopKind int

const (
	ChopPlus ChopKind = iota
	ChopMinus
	ChopStar
	ChopSlash
	ChopToRight
	ChopInvalid
)

func (k ChopKind) String() string {
	switch k {
	case ChopPlus:
		return "plus"
	case ChopMinus:
		return "minus"
	case ChopStar:
		return "star"
	case ChopSlash:
		return "slash"
	case ChopToRight:
		return "to_right"
	case ChopInvalid:
		return "invalid"
	}
	return "unknown"
}

// Chop is one chained operation with its operand. Operand is nil only when
// Kind is ChopInvalid.
type Chop struct {
	Kind    ChopKind
	Operand *Node[Expr]
}

func (c Chop) IsInvalid() bool {
	if c.Kind == ChopInvalid {
		return true
	}
	return c.Operand.Content.IsInvalid()
}
