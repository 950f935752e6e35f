package sflk

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anima-libera/sflk/program"
)

func lowerSrc(t *testing.T, src string) program.Block {
	t.Helper()
	prog, err := Parse(SourceUnitFromString(src, "test"))
	require.NoError(t, err)
	require.False(t, prog.IsInvalid(), "program must be valid before lowering")
	return prog.Lower()
}

func Test_Lower_IntegerLiteral(t *testing.T) {
	block := lowerSrc(t, "pr 42")
	require.Len(t, block.Stmts, 1)
	print_ := block.Stmts[0].(program.Print)
	assert.Equal(t,
		program.Const{Val: program.Integer{Value: big.NewInt(42)}},
		print_.Expr)
}

func Test_Lower_HugeIntegerLiteral(t *testing.T) {
	digits := "123456789012345678901234567890"
	block := lowerSrc(t, "pr "+digits)
	print_ := block.Stmts[0].(program.Print)
	want, _ := new(big.Int).SetString(digits, 10)
	assert.Equal(t, program.Const{Val: program.Integer{Value: want}}, print_.Expr)
}

func Test_Lower_StringLiteral(t *testing.T) {
	block := lowerSrc(t, `pr "hi"`)
	print_ := block.Stmts[0].(program.Print)
	assert.Equal(t, program.Const{Val: program.String{Value: "hi"}}, print_.Expr)
}

func Test_Lower_Chain(t *testing.T) {
	block := lowerSrc(t, "ev x + 1")
	eval := block.Stmts[0].(program.Evaluate)
	assert.Equal(t, program.Chain{
		Init: program.Var{Varname: "x"},
		Chops: []program.Chop{
			{Kind: program.Plus, Expr: program.Const{Val: program.Integer{Value: big.NewInt(1)}}},
		},
	}, eval.Expr)
}

func Test_Lower_AllChopKinds(t *testing.T) {
	block := lowerSrc(t, "ev a + 1 - 2 * 3 / 4 to f")
	eval := block.Stmts[0].(program.Evaluate)
	chain := eval.Expr.(program.Chain)
	want := []program.ChopKind{
		program.Plus, program.Minus, program.Star, program.Slash, program.ToRight,
	}
	require.Len(t, chain.Chops, len(want))
	for i, kind := range want {
		assert.Equal(t, kind, chain.Chops[i].Kind, "chop %d", i)
	}
}

func Test_Lower_Assign(t *testing.T) {
	block := lowerSrc(t, "st x 7")
	assign := block.Stmts[0].(program.Assign)
	assert.Equal(t, "x", assign.Varname)
	assert.Equal(t, program.Const{Val: program.Integer{Value: big.NewInt(7)}}, assign.Expr)
}

func Test_Lower_BlockLiteral(t *testing.T) {
	block := lowerSrc(t, "st b { nl np }")
	assign := block.Stmts[0].(program.Assign)
	constant := assign.Expr.(program.Const)
	blockVal := constant.Val.(program.BlockObj)
	assert.Equal(t, program.Block{
		Stmts: []program.Stmt{program.Newline{}, program.Nop{}},
	}, blockVal.Block)
}

func Test_Lower_StatementKinds(t *testing.T) {
	block := lowerSrc(t, `np nl pr 1 ev 2 do 3 dh 4 fh "f"`)
	require.Len(t, block.Stmts, 7)
	assert.IsType(t, program.Nop{}, block.Stmts[0])
	assert.IsType(t, program.Newline{}, block.Stmts[1])
	assert.IsType(t, program.Print{}, block.Stmts[2])
	assert.IsType(t, program.Evaluate{}, block.Stmts[3])
	assert.IsType(t, program.Do{}, block.Stmts[4])
	assert.IsType(t, program.DoHere{}, block.Stmts[5])
	assert.IsType(t, program.DoFileHere{}, block.Stmts[6])
}

func Test_Lower_IfKeepsAbsentBranchesAbsent(t *testing.T) {
	block := lowerSrc(t, "if x")
	ifStmt := block.Stmts[0].(program.If)
	assert.Equal(t, program.Var{Varname: "x"}, ifStmt.Cond)
	assert.Nil(t, ifStmt.Then)
	assert.Nil(t, ifStmt.Else)

	block = lowerSrc(t, "if x th nl el np")
	ifStmt = block.Stmts[0].(program.If)
	assert.Equal(t, program.Newline{}, ifStmt.Then)
	assert.Equal(t, program.Nop{}, ifStmt.Else)
}

func Test_Lower_InvalidStatementLowersToInvalid(t *testing.T) {
	prog, err := Parse(SourceUnitFromString("frobnicate nl", "test"))
	require.NoError(t, err)
	require.True(t, prog.IsInvalid())
	// A driver that chooses to lower anyway gets the statement-shaped hole.
	block := prog.Lower()
	require.Len(t, block.Stmts, 2)
	assert.IsType(t, program.Invalid{}, block.Stmts[0])
	assert.IsType(t, program.Newline{}, block.Stmts[1])
}

func Test_Lower_InvalidExpressionPanics(t *testing.T) {
	prog, err := Parse(SourceUnitFromString(`pr "unterminated`, "test"))
	require.NoError(t, err)
	require.True(t, prog.IsInvalid())
	assert.Panics(t, func() { prog.Lower() })
}

func Test_Lower_InvalidTargetPanics(t *testing.T) {
	prog, err := Parse(SourceUnitFromString("st 42 7", "test"))
	require.NoError(t, err)
	require.True(t, prog.IsInvalid())
	assert.Panics(t, func() { prog.Lower() })
}

func Test_Lower_Idempotent(t *testing.T) {
	prog, err := Parse(SourceUnitFromString(`pr "a" st x 1 + 2 if x th do { nl }`, "test"))
	require.NoError(t, err)
	require.False(t, prog.IsInvalid())
	first := prog.Lower()
	second := prog.Lower()
	assert.Equal(t, first, second)
}
