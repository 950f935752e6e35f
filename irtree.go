// irtree.go — diagnostic rendering of lowered programs. The program package
// itself stays pure data; display lives here with the other tree rendering.
package sflk

import (
	"fmt"

	"github.com/anima-libera/sflk/program"
)

// BlockTree renders a lowered block for inspection.
func BlockTree(block program.Block) *StringTree {
	children := make([]*StringTree, 0, len(block.Stmts))
	for _, stmt := range block.Stmts {
		children = append(children, irStmtTree(stmt))
	}
	return NewNode("block", StyleCyan, children...)
}

func irStmtTree(stmt program.Stmt) *StringTree {
	switch s := stmt.(type) {
	case program.Nop:
		return NewLeaf("nop", StyleNormal)
	case program.Print:
		return NewNode("print", StyleNormal, irExprTree(s.Expr))
	case program.Newline:
		return NewLeaf("newline", StyleNormal)
	case program.Assign:
		return NewNode("assign "+s.Varname, StyleNormal, irExprTree(s.Expr))
	case program.Evaluate:
		return NewNode("evaluate", StyleNormal, irExprTree(s.Expr))
	case program.Do:
		return NewNode("do", StyleNormal, irExprTree(s.Expr))
	case program.DoHere:
		return NewNode("do here", StyleNormal, irExprTree(s.Expr))
	case program.DoFileHere:
		return NewNode("do file here", StyleNormal, irExprTree(s.Expr))
	case program.If:
		children := []*StringTree{irExprTree(s.Cond)}
		if s.Then != nil {
			children = append(children, irStmtTree(s.Then))
		} else {
			children = append(children, NewLeaf("no then branch", StyleNormal))
		}
		if s.Else != nil {
			children = append(children, irStmtTree(s.Else))
		} else {
			children = append(children, NewLeaf("no else branch", StyleNormal))
		}
		return NewNode("if", StyleNormal, children...)
	case program.Invalid:
		return NewLeaf("invalid", StyleRed)
	}
	return NewLeaf("unknown statement", StyleRed)
}

func irExprTree(expr program.Expr) *StringTree {
	switch e := expr.(type) {
	case program.Var:
		return NewLeaf("var "+e.Varname, StyleNormal)
	case program.Const:
		return irObjTree(e.Val)
	case program.Chain:
		children := make([]*StringTree, 0, 1+len(e.Chops))
		children = append(children, irExprTree(e.Init))
		for _, chop := range e.Chops {
			children = append(children, irChopTree(chop))
		}
		return NewNode("chain", StyleBlue, children...)
	}
	return NewLeaf("unknown expression", StyleRed)
}

func irChopTree(chop program.Chop) *StringTree {
	var name string
	switch chop.Kind {
	case program.Plus:
		name = "plus"
	case program.Minus:
		name = "minus"
	case program.Star:
		name = "star"
	case program.Slash:
		name = "slash"
	case program.ToRight:
		name = "to_right"
	}
	return NewNode("chop "+name, StyleNormal, irExprTree(chop.Expr))
}

func irObjTree(obj program.Obj) *StringTree {
	switch o := obj.(type) {
	case program.Integer:
		return NewLeaf(fmt.Sprintf("const integer %s", o.Value.String()), StyleNormal)
	case program.String:
		return NewLeaf("const string "+escapeString(o.Value), StyleNormal)
	case program.BlockObj:
		tree := BlockTree(o.Block)
		tree.Label = "const block"
		return tree
	}
	return NewLeaf("unknown value", StyleRed)
}
