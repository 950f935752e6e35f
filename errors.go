// errors.go — lexical error values and caret-snippet rendering.
//
// The reading head reports exactly two fatal conditions: an unterminated
// comment at end of input and a character the tokenizer cannot classify.
// Both abort the whole pass for their source unit; syntactic trouble above
// the token level is instead recorded in the tree as Invalid nodes (ast.go).
//
// WrapErrorWithSource upgrades either error to a readable multi-line snippet
// with a caret under the offending column:
//
//	parsing error in hello.sflk at 3:1: unexpected character `@`
//
//	   2 | pr x
//	   3 | @
//	     | ^
//	   4 | nl
package sflk

import (
	"fmt"
	"strings"
)

// EofInComment reports end-of-input reached while a `#`...`#` comment was
// still open. Loc points at the `#` that opened the comment.
type EofInComment struct {
	Loc Loc
}

func (e *EofInComment) Error() string {
	return fmt.Sprintf("end-of-file in comment started at line %d", e.Loc.LineStart)
}

// UnexpectedCharacter reports a character the tokenizer has no class for.
type UnexpectedCharacter struct {
	Ch  rune
	Loc Loc
}

func (e *UnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character `%c` at line %d", e.Ch, e.Loc.LineStart)
}

// WrapErrorWithSource returns an error whose message is a caret-annotated
// snippet of the source around the failure. Errors other than the two lexical
// kinds are returned unchanged.
func WrapErrorWithSource(err error) error {
	switch e := err.(type) {
	case *EofInComment:
		return fmt.Errorf("%s", snippet(e.Loc, e.Error()))
	case *UnexpectedCharacter:
		return fmt.Errorf("%s", snippet(e.Loc, e.Error()))
	default:
		return err
	}
}

// column returns the 1-based column of the span's first byte on its line.
func column(loc Loc) int {
	if loc.Scu == nil || loc.LineStart < 1 || loc.LineStart > loc.Scu.LineCount() {
		return 1
	}
	return loc.ByteStart - loc.Scu.LineOffsets[loc.LineStart-1] + 1
}

// snippet renders the error line with one line of context on each side and a
// caret under the error column. Coordinates are clamped so a damaged Loc can
// never crash rendering.
func snippet(loc Loc, msg string) string {
	scu := loc.Scu
	if scu == nil {
		return msg
	}
	line := loc.LineStart
	if line < 1 {
		line = 1
	}
	if line > scu.LineCount() {
		line = scu.LineCount()
	}
	col := column(loc)

	var b strings.Builder
	fmt.Fprintf(&b, "parsing error in %s at %d:%d: %s\n\n", scu.Name, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, scu.Line(line-1))
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, scu.Line(line))
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < scu.LineCount() {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, scu.Line(line+1))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
