// lower.go — lowering: one bottom-up walk from the AST to the program IR.
//
// Lowering assumes the subtree it is given is not invalid. Callers must
// check IsInvalid and report before lowering; reaching an invalid expression
// or assignment target here is a programming error and panics. Invalid
// statements are the one exception: they lower to program.Invalid so that a
// block's shape is preserved 1:1.
package sflk

import (
	"math/big"

	"github.com/anima-libera/sflk/program"
)

// Lower converts the whole program into an executable block.
func (p *Program) Lower() program.Block {
	return lowerStmts(p.Stmts)
}

func lowerStmts(stmts []*Node[Stmt]) program.Block {
	block := program.Block{Stmts: make([]program.Stmt, 0, len(stmts))}
	for _, stmt := range stmts {
		block.Stmts = append(block.Stmts, lowerStmt(stmt.Content))
	}
	return block
}

func lowerStmt(stmt Stmt) program.Stmt {
	switch s := stmt.(type) {
	case StmtNop:
		return program.Nop{}
	case StmtPrint:
		return program.Print{Expr: lowerExpr(s.Expr.Content)}
	case StmtNewline:
		return program.Newline{}
	case StmtAssign:
		return program.Assign{
			Varname: lowerTarget(s.Target.Content),
			Expr:    lowerExpr(s.Expr.Content),
		}
	case StmtEvaluate:
		return program.Evaluate{Expr: lowerExpr(s.Expr.Content)}
	case StmtDo:
		return program.Do{Expr: lowerExpr(s.Expr.Content)}
	case StmtDoHere:
		return program.DoHere{Expr: lowerExpr(s.Expr.Content)}
	case StmtDoFileHere:
		return program.DoFileHere{Expr: lowerExpr(s.Expr.Content)}
	case StmtIf:
		out := program.If{Cond: lowerExpr(s.Cond.Content)}
		if s.Then != nil {
			out.Then = lowerStmt(s.Then.Content)
		}
		if s.Else != nil {
			out.Else = lowerStmt(s.Else.Content)
		}
		return out
	case StmtInvalid:
		return program.Invalid{}
	}
	panic("lowering: unhandled statement kind")
}

func lowerTarget(target TargetExpr) string {
	switch t := target.(type) {
	case TargetVariable:
		return t.Name
	case TargetInvalid:
		panic("lowering reached an invalid assignment target; check IsInvalid before lowering")
	}
	panic("lowering: unhandled target kind")
}

func lowerExpr(expr Expr) program.Expr {
	switch e := expr.(type) {
	case ExprVariable:
		return program.Var{Varname: e.Name}
	case ExprInteger:
		val, ok := new(big.Int).SetString(e.Digits, 10)
		if !ok {
			// The tokenizer only produces ASCII digit runs.
			panic("lowering: integer literal is not a digit string: " + e.Digits)
		}
		return program.Const{Val: program.Integer{Value: val}}
	case ExprString:
		return program.Const{Val: program.String{Value: e.Text}}
	case ExprBlock:
		return program.Const{Val: program.BlockObj{Block: lowerStmts(e.Stmts)}}
	case ExprChain:
		chops := make([]program.Chop, 0, len(e.Chops))
		for _, chop := range e.Chops {
			chops = append(chops, lowerChop(chop.Content))
		}
		return program.Chain{Init: lowerExpr(e.Init.Content), Chops: chops}
	case ExprInvalid:
		panic("lowering reached an invalid expression; check IsInvalid before lowering")
	}
	panic("lowering: unhandled expression kind")
}

func lowerChop(chop Chop) program.Chop {
	var kind program.ChopKind
	switch chop.Kind {
	case ChopPlus:
		kind = program.Plus
	case ChopMinus:
		kind = program.Minus
	case ChopStar:
		kind = program.Star
	case ChopSlash:
		kind = program.Slash
	case ChopToRight:
		kind = program.ToRight
	case ChopInvalid:
		panic("lowering reached an invalid chop; check IsInvalid before lowering")
	}
	return program.Chop{Kind: kind, Expr: lowerExpr(chop.Operand.Content)}
}
