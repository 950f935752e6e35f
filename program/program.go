// Package program defines the lowered intermediate representation produced
// by the front end and consumed by the execution engine. It is pure data:
// no behavior is attached, and structurally equal values compare equal with
// reflect.DeepEqual (no hidden identity or counters).
package program

import "math/big"

// Block is an ordered sequence of lowered statements.
type Block struct {
	Stmts []Stmt
}

// Stmt is one lowered statement.
type Stmt interface {
	isStmt()
}

type Nop struct{}

type Print struct {
	Expr Expr
}

type Newline struct{}

type Assign struct {
	Varname string
	Expr    Expr
}

type Evaluate struct {
	Expr Expr
}

type Do struct {
	Expr Expr
}

type DoHere struct {
	Expr Expr
}

type DoFileHere struct {
	Expr Expr
}

// If keeps absent branches as nil so the engine can distinguish "no branch"
// from "empty branch".
type If struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// Invalid marks a statement the parser could not make sense of. The engine
// must refuse to run a block containing one; it reaches the IR only so that
// diagnostics can point at it.
type Invalid struct{}

func (Nop) isStmt()        {}
func (Print) isStmt()      {}
func (Newline) isStmt()    {}
func (Assign) isStmt()     {}
func (Evaluate) isStmt()   {}
func (Do) isStmt()         {}
func (DoHere) isStmt()     {}
func (DoFileHere) isStmt() {}
func (If) isStmt()         {}
func (Invalid) isStmt()    {}

// Expr is one lowered expression.
type Expr interface {
	isExpr()
}

type Var struct {
	Varname string
}

type Const struct {
	Val Obj
}

// Chain applies Chops left to right to the value of Init.
type Chain struct {
	Init  Expr
	Chops []Chop
}

func (Var) isExpr()   {}
func (Const) isExpr() {}
func (Chain) isExpr() {}

// ChopKind tags a lowered chained operation.
type ChopKind int

const (
	Plus ChopKind = iota
	Minus
	Star
	Slash
	ToRight
)

// Chop is one lowered chained operation with its operand.
type Chop struct {
	Kind ChopKind
	Expr Expr
}

// Obj is a constant value a lowered expression can carry.
type Obj interface {
	isObj()
}

// Integer is an arbitrary-precision integer constant, so integer literals of
// any length lower without overflow.
type Integer struct {
	Value *big.Int
}

type String struct {
	Value string
}

// BlockObj makes a block of statements a first-class value, enabling
// deferred execution in the engine.
type BlockObj struct {
	Block Block
}

func (Integer) isObj()  {}
func (String) isObj()   {}
func (BlockObj) isObj() {}
