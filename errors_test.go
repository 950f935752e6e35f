package sflk

import (
	"errors"
	"strings"
	"testing"
)

func Test_Errors_Messages(t *testing.T) {
	scu := SourceUnitFromString("# open\nmore", "test")
	eofErr := &EofInComment{Loc: Loc{Scu: scu, LineStart: 1, ByteStart: 0, ByteLength: 1}}
	if got := eofErr.Error(); got != "end-of-file in comment started at line 1" {
		t.Fatalf("message: %q", got)
	}

	unexpected := &UnexpectedCharacter{Ch: '@', Loc: Loc{Scu: scu, LineStart: 2, ByteStart: 7, ByteLength: 1}}
	if got := unexpected.Error(); got != "unexpected character `@` at line 2" {
		t.Fatalf("message: %q", got)
	}
}

func Test_Errors_SnippetRendering(t *testing.T) {
	scu := SourceUnitFromString("pr x\n@\nnl", "bad.sflk")
	rh := NewReadingHead(scu)
	var err error
	for err == nil {
		var tok Tok
		tok, _, err = rh.ReadToken()
		if err == nil && tok.IsVoid() {
			t.Fatalf("expected a lexical error")
		}
	}
	wrapped := WrapErrorWithSource(err)
	msg := wrapped.Error()
	wants := []string{
		"bad.sflk",
		"at 2:1",
		"unexpected character `@`",
		"   1 | pr x",
		"   2 | @",
		"     | ^",
		"   3 | nl",
	}
	for _, want := range wants {
		if !strings.Contains(msg, want) {
			t.Fatalf("snippet missing %q:\n%s", want, msg)
		}
	}
}

func Test_Errors_CaretColumn(t *testing.T) {
	scu := SourceUnitFromString("pr @", "test")
	rh := NewReadingHead(scu)
	_, _, err := rh.ReadToken()
	var unexpected *UnexpectedCharacter
	if !errors.As(err, &unexpected) {
		t.Fatalf("want UnexpectedCharacter, got %v", err)
	}
	msg := WrapErrorWithSource(err).Error()
	if !strings.Contains(msg, "     |    ^") {
		t.Fatalf("caret not under column 4:\n%s", msg)
	}
}

func Test_Errors_WrapLeavesOthersUntouched(t *testing.T) {
	plain := errors.New("something else")
	if got := WrapErrorWithSource(plain); got != plain {
		t.Fatalf("foreign error was wrapped: %v", got)
	}
}
