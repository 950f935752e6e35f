// node.go — located nodes: the universal carrier between parser and AST
// consumers. A Node wraps a syntactic payload with its source span plus the
// comments and warnings the parser attached while recognizing it.
package sflk

import "fmt"

// Comments are the comment texts attached to a node, split by where the
// parser found them relative to the node's own tokens. The split is policy
// of the grammar layer; the buckets themselves accept any attachment policy.
type Comments struct {
	Leading  []string
	Trailing []string
	Internal []string
}

// WarningKind classifies a ParsingWarning.
type WarningKind int

const (
	// WarnMismatchedBracket: a grouping was closed with a bracket of a
	// different shape than the one that opened it, e.g. `( x ]`.
	WarnMismatchedBracket WarningKind = iota
	// WarnUnknownEscape: a string literal contained `\c` for an unknown c;
	// the character was taken literally.
	WarnUnknownEscape
)

// ParsingWarning records a recoverable anomaly the grammar layer noticed
// while building a node. Warnings never make a node invalid.
type ParsingWarning struct {
	Kind   WarningKind
	Loc    Loc
	Detail string
}

func (w ParsingWarning) Message() string {
	switch w.Kind {
	case WarnMismatchedBracket:
		return fmt.Sprintf("mismatched closing bracket %s at line %d", w.Detail, w.Loc.LineStart)
	case WarnUnknownEscape:
		return fmt.Sprintf("unknown escape sequence \\%s at line %d", w.Detail, w.Loc.LineStart)
	}
	return "unknown warning"
}

// Node wraps a syntactic payload with its location, comments and warnings.
// Nodes nest by exclusive ownership: a statement node owns its expression
// nodes, never shares them.
type Node[T any] struct {
	Content  T
	Loc      Loc
	Comments Comments
	Warnings []ParsingWarning
}

// NodeFrom wraps content at loc with empty comment buckets and no warnings.
func NodeFrom[T any](content T, loc Loc) *Node[T] {
	return &Node[T]{Content: content, Loc: loc}
}

// AddLoc widens the node's span to also cover extra. Used when secondary
// tokens (e.g. a closing bracket) turn out to belong to the node.
func (n *Node[T]) AddLoc(extra Loc) *Node[T] {
	n.Loc = n.Loc.Merge(extra)
	return n
}

// AddLeadingComments appends comment texts found before the node's first
// token.
func (n *Node[T]) AddLeadingComments(texts ...string) {
	n.Comments.Leading = append(n.Comments.Leading, texts...)
}

// AddTrailingComments appends comment texts found after the node's last
// token.
func (n *Node[T]) AddTrailingComments(texts ...string) {
	n.Comments.Trailing = append(n.Comments.Trailing, texts...)
}

// AddInternalComments appends comment texts found between the node's own
// tokens.
func (n *Node[T]) AddInternalComments(texts ...string) {
	n.Comments.Internal = append(n.Comments.Internal, texts...)
}

// AddWarning attaches a recoverable anomaly to the node.
func (n *Node[T]) AddWarning(w ParsingWarning) {
	n.Warnings = append(n.Warnings, w)
}

// MapNode transforms the wrapped content while preserving location, comments
// and warnings. Used to re-wrap a parsed value without losing provenance.
func MapNode[T, U any](n *Node[T], f func(T) U) *Node[U] {
	return &Node[U]{
		Content:  f(n.Content),
		Loc:      n.Loc,
		Comments: n.Comments,
		Warnings: n.Warnings,
	}
}
