package sflk

import "testing"

// helpers building bare nodes; the AST invariants do not depend on locations.

func exprNode(e Expr) *Node[Expr]                { return NodeFrom[Expr](e, Loc{}) }
func stmtNode(s Stmt) *Node[Stmt]                { return NodeFrom[Stmt](s, Loc{}) }
func targetNode(te TargetExpr) *Node[TargetExpr] { return NodeFrom[TargetExpr](te, Loc{}) }
func chopNode(c Chop) *Node[Chop]                { return NodeFrom(c, Loc{}) }

func Test_AST_LeavesAreValid(t *testing.T) {
	valid := []interface{ IsInvalid() bool }{
		StmtNop{},
		StmtNewline{},
		TargetVariable{Name: "x"},
		ExprVariable{Name: "x"},
		ExprInteger{Digits: "42"},
		ExprString{Text: "hi"},
	}
	for _, v := range valid {
		if v.IsInvalid() {
			t.Fatalf("%T reports invalid", v)
		}
	}
	invalid := []interface{ IsInvalid() bool }{
		StmtInvalid{},
		TargetInvalid{},
		ExprInvalid{},
		Chop{Kind: ChopInvalid},
	}
	for _, v := range invalid {
		if !v.IsInvalid() {
			t.Fatalf("%T reports valid", v)
		}
	}
}

func Test_AST_InvalidityPropagatesUpward(t *testing.T) {
	bad := StmtPrint{Expr: exprNode(ExprInvalid{})}
	if !bad.IsInvalid() {
		t.Fatalf("print of invalid expr should be invalid")
	}

	assign := StmtAssign{
		Target: targetNode(TargetInvalid{}),
		Expr:   exprNode(ExprInteger{Digits: "1"}),
	}
	if !assign.IsInvalid() {
		t.Fatalf("assign with invalid target should be invalid")
	}

	chain := ExprChain{
		Init: exprNode(ExprVariable{Name: "x"}),
		Chops: []*Node[Chop]{
			chopNode(Chop{Kind: ChopPlus, Operand: exprNode(ExprInteger{Digits: "1"})}),
			chopNode(Chop{Kind: ChopStar, Operand: exprNode(ExprInvalid{})}),
		},
	}
	if !chain.IsInvalid() {
		t.Fatalf("chain with invalid chop operand should be invalid")
	}

	block := ExprBlock{Stmts: []*Node[Stmt]{
		stmtNode(StmtNop{}),
		stmtNode(StmtInvalid{}),
	}}
	if !block.IsInvalid() {
		t.Fatalf("block literal with invalid statement should be invalid")
	}
}

func Test_AST_InvalidityDoesNotSpreadToSiblings(t *testing.T) {
	good1 := stmtNode(StmtPrint{Expr: exprNode(ExprString{Text: "hi"})})
	bad := stmtNode(StmtInvalid{})
	good2 := stmtNode(StmtNewline{})

	prog := &Program{Stmts: []*Node[Stmt]{good1, bad, good2}}
	if !prog.IsInvalid() {
		t.Fatalf("program with an invalid statement should be invalid")
	}
	if good1.Content.IsInvalid() || good2.Content.IsInvalid() {
		t.Fatalf("valid siblings must stay valid")
	}
}

func Test_AST_IfBranchInvalidity(t *testing.T) {
	cond := exprNode(ExprVariable{Name: "c"})

	noBranches := StmtIf{Cond: cond}
	if noBranches.IsInvalid() {
		t.Fatalf("if with absent branches should be valid")
	}

	badThen := StmtIf{Cond: cond, Then: stmtNode(StmtInvalid{})}
	if !badThen.IsInvalid() {
		t.Fatalf("if with invalid then branch should be invalid")
	}

	badElse := StmtIf{Cond: cond, Else: stmtNode(StmtInvalid{})}
	if !badElse.IsInvalid() {
		t.Fatalf("if with invalid else branch should be invalid")
	}

	badCond := StmtIf{Cond: exprNode(ExprInvalid{})}
	if !badCond.IsInvalid() {
		t.Fatalf("if with invalid condition should be invalid")
	}
}

func Test_AST_ValidProgramIsValid(t *testing.T) {
	prog := &Program{Stmts: []*Node[Stmt]{
		stmtNode(StmtPrint{Expr: exprNode(ExprChain{
			Init: exprNode(ExprInteger{Digits: "1"}),
			Chops: []*Node[Chop]{
				chopNode(Chop{Kind: ChopPlus, Operand: exprNode(ExprInteger{Digits: "2"})}),
			},
		})}),
		stmtNode(StmtNewline{}),
	}}
	if prog.IsInvalid() {
		t.Fatalf("fully valid program reports invalid")
	}
}
