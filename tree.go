// tree.go — human-readable diagnostic trees for parsed programs.
//
// Every syntax kind knows how to render itself as a StringTree; NodeTree
// decorates a node's tree with its attached comments and warnings. Color is
// off by default so test output stays plain; the REPL turns it on.
package sflk

import (
	"fmt"
	"strings"
)

// EnableColor switches ANSI styling on tree rendering. REPL-only; tests can
// leave this false.
var EnableColor = false

const (
	colorReset = "\033[0m"
	colorRed   = "\033[91;1m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
	colorCyan  = "\033[36m"
)

// Style selects how a tree label is displayed when color is enabled.
type Style int

const (
	StyleNormal Style = iota
	StyleCyan
	StyleBlue
	StyleGreen
	StyleRed
)

func (s Style) paint(text string) string {
	if !EnableColor {
		return text
	}
	switch s {
	case StyleCyan:
		return colorCyan + text + colorReset
	case StyleBlue:
		return colorBlue + text + colorReset
	case StyleGreen:
		return colorGreen + text + colorReset
	case StyleRed:
		return colorRed + text + colorReset
	}
	return text
}

// StringTree is a labeled tree of display strings.
type StringTree struct {
	Label    string
	Style    Style
	Children []*StringTree
}

// NewLeaf makes a childless tree.
func NewLeaf(label string, style Style) *StringTree {
	return &StringTree{Label: label, Style: style}
}

// NewNode makes a tree with children.
func NewNode(label string, style Style, children ...*StringTree) *StringTree {
	return &StringTree{Label: label, Style: style, Children: children}
}

// Render draws the tree with box-drawing connectors, one label per line.
func (t *StringTree) Render() string {
	var b strings.Builder
	t.render(&b, "")
	return strings.TrimSuffix(b.String(), "\n")
}

func (t *StringTree) render(b *strings.Builder, childPrefix string) {
	b.WriteString(t.Style.paint(t.Label))
	b.WriteByte('\n')
	for i, child := range t.Children {
		last := i == len(t.Children)-1
		if last {
			b.WriteString(childPrefix + "└─")
			child.render(b, childPrefix+"  ")
		} else {
			b.WriteString(childPrefix + "├─")
			child.render(b, childPrefix+"│ ")
		}
	}
}

// Treeable is the single rendering capability every syntax kind implements.
type Treeable interface {
	Tree() *StringTree
}

// NodeTree renders a located node: the payload's own tree with the node's
// comments and warnings prepended as extra leaves.
func NodeTree[T Treeable](n *Node[T]) *StringTree {
	tree := n.Content.Tree()
	var extra []*StringTree
	for _, c := range n.Comments.Leading {
		extra = append(extra, NewLeaf(fmt.Sprintf("comment # %s #", c), StyleGreen))
	}
	for _, c := range n.Comments.Internal {
		extra = append(extra, NewLeaf(fmt.Sprintf("internal comment # %s #", c), StyleGreen))
	}
	for _, c := range n.Comments.Trailing {
		extra = append(extra, NewLeaf(fmt.Sprintf("trailing comment # %s #", c), StyleGreen))
	}
	for _, w := range n.Warnings {
		extra = append(extra, NewLeaf("warning: "+w.Message(), StyleRed))
	}
	if len(extra) > 0 {
		tree.Children = append(extra, tree.Children...)
	}
	return tree
}

// Tree renders the whole program.
func (p *Program) Tree() *StringTree {
	children := make([]*StringTree, 0, len(p.Stmts))
	for _, stmt := range p.Stmts {
		children = append(children, NodeTree(stmt))
	}
	return NewNode("program", StyleCyan, children...)
}

func (StmtNop) Tree() *StringTree     { return NewLeaf("nop", StyleNormal) }
func (StmtNewline) Tree() *StringTree { return NewLeaf("newline", StyleNormal) }
func (StmtInvalid) Tree() *StringTree { return NewLeaf("invalid", StyleRed) }

func (s StmtPrint) Tree() *StringTree {
	return NewNode("print", StyleNormal, NodeTree(s.Expr))
}

func (s StmtEvaluate) Tree() *StringTree {
	return NewNode("evaluate", StyleNormal, NodeTree(s.Expr))
}

func (s StmtDo) Tree() *StringTree {
	return NewNode("do", StyleNormal, NodeTree(s.Expr))
}

func (s StmtDoHere) Tree() *StringTree {
	return NewNode("do here", StyleNormal, NodeTree(s.Expr))
}

func (s StmtDoFileHere) Tree() *StringTree {
	return NewNode("do file here", StyleNormal, NodeTree(s.Expr))
}

func (s StmtAssign) Tree() *StringTree {
	return NewNode("assign", StyleNormal, NodeTree(s.Target), NodeTree(s.Expr))
}

func (s StmtIf) Tree() *StringTree {
	children := make([]*StringTree, 0, 3)
	children = append(children, NodeTree(s.Cond))
	if s.Then != nil {
		children = append(children, NodeTree(s.Then))
	} else {
		children = append(children, NewLeaf("no then branch", StyleNormal))
	}
	if s.Else != nil {
		children = append(children, NodeTree(s.Else))
	} else {
		children = append(children, NewLeaf("no else branch", StyleNormal))
	}
	return NewNode("if", StyleNormal, children...)
}

func (t TargetVariable) Tree() *StringTree {
	return NewLeaf("target variable "+t.Name, StyleNormal)
}

func (TargetInvalid) Tree() *StringTree { return NewLeaf("invalid", StyleRed) }

func (e ExprVariable) Tree() *StringTree {
	return NewLeaf("variable "+e.Name, StyleNormal)
}

func (e ExprInteger) Tree() *StringTree {
	return NewLeaf("integer "+e.Digits, StyleNormal)
}

func (e ExprString) Tree() *StringTree {
	return NewLeaf(fmt.Sprintf("string %s", escapeString(e.Text)), StyleNormal)
}

func (e ExprBlock) Tree() *StringTree {
	children := make([]*StringTree, 0, len(e.Stmts))
	for _, stmt := range e.Stmts {
		children = append(children, NodeTree(stmt))
	}
	return NewNode("block", StyleCyan, children...)
}

func (e ExprChain) Tree() *StringTree {
	children := make([]*StringTree, 0, 1+len(e.Chops))
	children = append(children, NodeTree(e.Init))
	for _, chop := range e.Chops {
		children = append(children, NodeTree(chop))
	}
	return NewNode("chain", StyleBlue, children...)
}

func (ExprInvalid) Tree() *StringTree { return NewLeaf("invalid", StyleRed) }

func (c Chop) Tree() *StringTree {
	if c.Kind == ChopInvalid {
		return NewLeaf("invalid", StyleRed)
	}
	return NewNode("chop "+c.Kind.String(), StyleNormal, NodeTree(c.Operand))
}

// escapeString renders a literal's text the way it could be written in
// source, with the escapes the parser understands.
func escapeString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
