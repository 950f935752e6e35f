package sflk

import (
	"strings"
	"testing"
)

func Test_Tree_RenderShape(t *testing.T) {
	prog := parseSrc(t, `pr "hi" nl`)
	got := prog.Tree().Render()
	want := strings.Join([]string{
		"program",
		`├─print`,
		`│ └─string "hi"`,
		"└─newline",
	}, "\n")
	if got != want {
		t.Fatalf("tree:\n%s\nwant:\n%s", got, want)
	}
}

func Test_Tree_ChainAndIf(t *testing.T) {
	prog := parseSrc(t, "if x + 1 th st y 2")
	got := prog.Tree().Render()
	for _, want := range []string{
		"if", "chain", "variable x", "chop plus", "integer 1",
		"assign", "target variable y", "integer 2", "no else branch",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("tree missing %q:\n%s", want, got)
		}
	}
}

func Test_Tree_ShowsInvalidNodes(t *testing.T) {
	prog := parseSrc(t, "pr ( x")
	got := prog.Tree().Render()
	if !strings.Contains(got, "invalid") {
		t.Fatalf("tree does not show invalid node:\n%s", got)
	}
}

func Test_Tree_ShowsCommentsAndWarnings(t *testing.T) {
	prog := parseSrc(t, `# say hello # pr "a\qb"`)
	got := prog.Tree().Render()
	if !strings.Contains(got, "comment # say hello #") {
		t.Fatalf("tree missing comment leaf:\n%s", got)
	}
	if !strings.Contains(got, "warning: unknown escape sequence \\q") {
		t.Fatalf("tree missing warning leaf:\n%s", got)
	}
}

func Test_Tree_EscapesStringsForDisplay(t *testing.T) {
	prog := parseSrc(t, `pr "a\nb"`)
	got := prog.Tree().Render()
	if !strings.Contains(got, `string "a\nb"`) {
		t.Fatalf("string not escaped for display:\n%s", got)
	}
}

func Test_Tree_ColorOffByDefault(t *testing.T) {
	prog := parseSrc(t, "np")
	if got := prog.Tree().Render(); strings.Contains(got, "\033[") {
		t.Fatalf("ANSI escapes leaked into plain rendering:\n%q", got)
	}
}

func Test_Tree_IRRendering(t *testing.T) {
	prog := parseSrc(t, `st x 1 pr x if x th do { nl }`)
	block := prog.Lower()
	got := BlockTree(block).Render()
	for _, want := range []string{
		"block", "assign x", "const integer 1", "print", "var x",
		"if", "do", "const block", "newline", "no else branch",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("IR tree missing %q:\n%s", want, got)
		}
	}
}
